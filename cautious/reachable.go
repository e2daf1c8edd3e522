package cautious

import (
	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/mapf"
	"github.com/gitsper/announcenet/tegraph"
)

// moveRobot expands coord by one step from futTime to futTime+1. It honors,
// in order: (a) nominal-forced-move — if some agent's nominal path is at
// coord at futTime and that agent's announcement at currTime reaches past
// futTime+1, the only successor is that agent's own next nominal position
// (the agent is publicly committed to that move); (b) the ordinary
// 4-neighbor-plus-wait expansion, filtered against the time-expanded
// graph's actual nodes; (c) removal of cells any agent has announced it
// will occupy at futTime+1; (d) swap-conflict exclusion, when staying in
// place was itself excluded, of any agent moving into coord at futTime+1;
// (e) removal of cells already in the conflict set at futTime+1.
//
// Failure (no move survives) records coord as a new conflict at futTime
// and reports ok=false; the caller decides whether that propagates
// (non-attacker mode) or degrades to an empty contribution (attacker
// mode).
func moveRobot(solution mapf.Solution, announcements mapf.Announcements, g *tegraph.Graph, coord geometry.Coordinate, currTime, futTime int, conflicts map[geometry.TimedCoordinate]struct{}, attackerMode bool) (coordSet, bool) {
	if !attackerMode && futTime < solution.Statistics.Makespan {
		for name, path := range solution.Schedule {
			if path[futTime].Coordinate() == coord && announcements.Schedule[name][currTime] > futTime+1 {
				return coordSet{path[futTime+1].Coordinate(): {}}, true
			}
		}
	}

	res := make(coordSet)
	for _, n := range coord.Neighbors4() {
		if g.HasNode(n.AsTime(futTime + 1)) {
			res[n] = struct{}{}
		}
	}

	if futTime < solution.Statistics.Makespan {
		for name, path := range solution.Schedule {
			if announcements.Schedule[name][currTime] > futTime+1 {
				delete(res, path[futTime+1].Coordinate())
			}
		}
		if _, staying := res[coord]; !staying {
			for _, path := range solution.Schedule {
				if path[futTime+1].Coordinate() == coord {
					delete(res, path[futTime].Coordinate())
				}
			}
		}
	}

	for tc := range conflicts {
		if tc.T == futTime+1 {
			delete(res, tc.Coordinate())
		}
	}

	if len(res) == 0 {
		conflicts[coord.AsTime(futTime)] = struct{}{}
		return nil, false
	}
	return res, true
}

// reachable expands every cell in flood by one step. In attacker mode a
// per-cell failure just contributes nothing; otherwise the first failure
// fails the whole expansion, matching moveRobot's conflict-propagation
// contract.
func reachable(solution mapf.Solution, announcements mapf.Announcements, g *tegraph.Graph, flood coordSet, currTime, futTime int, conflicts map[geometry.TimedCoordinate]struct{}, attackerMode bool) (coordSet, bool) {
	newFlood := make(coordSet)
	for v := range flood {
		moved, ok := moveRobot(solution, announcements, g, v, currTime, futTime, conflicts, attackerMode)
		if !ok {
			if attackerMode {
				continue
			}
			return nil, false
		}
		for c := range moved {
			newFlood[c] = struct{}{}
		}
	}
	return newFlood, true
}

// defenderObserved unions the full Moore (3x3) neighborhood around every
// cell reachable by any agent other than attackerName — the region a
// defender's sensor could cover given where it might actually be.
func defenderObserved(floods floodMap, attackerName string) coordSet {
	observed := make(coordSet)
	for name, flood := range floods {
		if name == attackerName {
			continue
		}
		for c := range flood {
			for _, n := range c.Neighborhood3x3() {
				observed[n] = struct{}{}
			}
		}
	}
	return observed
}
