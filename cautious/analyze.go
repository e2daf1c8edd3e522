package cautious

import (
	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/mapf"
	"github.com/gitsper/announcenet/tegraph"
)

// Analyze runs one cautious-attacker attempt for the (attackerName, safe)
// pair against instance's solved schedule and announcement horizons.
func Analyze(instance mapf.Instance, solution mapf.Solution, announcements mapf.Announcements, attackerName string, safe geometry.Coordinate) AttemptResult {
	g := tegraph.Build(instance, solution, safe)
	res := AttemptResult{
		AttackerName:             attackerName,
		Safe:                     safe,
		MaxInterObservationTime:  solution.MaxInterObservationTime(attackerName),
		MinInterAnnouncementTime: announcements.MinInterAnnouncementTime(),
		MinLookahead:             announcements.MinLookahead(),
		AvgLookahead:             announcements.AvgLookahead(),
		Secured:                  true,
	}
	conflicts := make(map[geometry.TimedCoordinate]struct{})

	for t := 0; t <= solution.Statistics.Makespan; t++ {
		x := make(map[int]floodMap)
		s := 0
		x[t] = make(floodMap, len(instance.Agents))
		for _, agent := range instance.Agents {
			x[t][agent.Name] = coordSet{solution.Schedule[agent.Name][t].Coordinate(): {}}
		}

	outer:
		for disjoint(x[t+s][attackerName], defenderObserved(x[t+s], attackerName)) {
			x[t+s+1] = cloneFloodMap(x[t+s])
			for _, agent := range instance.Agents {
				newFlood, ok := reachable(solution, announcements, g, x[t+s+1][agent.Name], t, t+s, conflicts, false)
				if !ok {
					s = 0
					continue outer
				}
				x[t+s+1][agent.Name] = newFlood
			}

			x[t+s+1][attackerName] = difference(x[t+s+1][attackerName], unionExcept(x[t+s], attackerName))

			for _, defender := range instance.Agents {
				if defender.Name == attackerName {
					continue
				}
				x[t+s+1][defender.Name] = difference(x[t+s+1][defender.Name], x[t+s+1][attackerName])
			}

			x[t+s+1][attackerName] = difference(x[t+s+1][attackerName], unionExcept(x[t+s+1], attackerName))

			if floodMapsEqual(x[t+s], x[t+s+1]) {
				res.Secured = false
				return res
			}
			s++
		}

		observed := defenderObserved(x[t+s], attackerName)
		candidates := intersection(x[t+s][attackerName], observed)
		if p, ok := firstSorted(candidates); ok {
			if attackExists(solution, announcements, attackerName, safe, t, t+s, p, g, x, conflicts) {
				res.Secured = false
				return res
			}
		}
	}
	return res
}
