package tegraph

import (
	"github.com/gitsper/announcenet/mapf"
)

// Prune removes from g every position a defender has publicly committed to
// occupy up through the defender's own announced horizon at currT, and —
// when mitigation is enabled — every cell adjacent to that committed
// position other than the attacker's own nominal position at that time.
//
// For each defender (every agent except attackerName) and each future
// t in [1, min(makespan+2, announcements for that defender at currT)):
// the in-edge (prevOccupied -> occupied) and the node occupied are removed,
// since those are positions the defender has announced. With mitigation,
// cells adjacent to occupied that differ from the attacker's nominal
// position at t are removed too: a defender who announced its own
// position implicitly rules out an attacker sharing a cell one step away,
// unless that cell is where the attacker was supposed to be anyway.
func Prune(g *Graph, instance mapf.Instance, solution mapf.Solution, attackerName string, announcements mapf.Announcements, currT int, mitigation bool) {
	makespan := solution.Statistics.Makespan

	for _, agent := range instance.Agents {
		if agent.Name == attackerName {
			continue
		}
		upperBound := makespan + 2
		if h := announcements.Schedule[agent.Name][currT]; h < upperBound {
			upperBound = h
		}
		for t := 1; t < upperBound; t++ {
			attackerPosNominal := solution.Schedule[attackerName][t]
			prevOccupied := solution.Schedule[agent.Name][t-1]
			occupied := solution.Schedule[agent.Name][t]

			g.RemoveEdge(prevOccupied.AsTime(t-1), occupied.AsTime(t))
			g.RemoveNode(occupied)

			if !mitigation {
				continue
			}
			for _, n := range occupied.Coordinate().Neighborhood3x3() {
				observed := n.AsTime(t)
				if observed.Adj(occupied) && observed != attackerPosNominal {
					g.RemoveNode(observed)
				}
			}
		}
	}
}
