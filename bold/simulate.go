package bold

import (
	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/mapf"
	"github.com/gitsper/announcenet/tegraph"
)

// Simulate runs one bold-attacker attempt: attackerName tries to reach
// safe, deviating from solution's nominal schedule whenever it judges the
// deviation will go unnoticed, and falling back to its nominal trajectory
// otherwise. The simulation runs to solution's makespan unless a known-safe
// deviation chain is found, which commits Dangerous and ends it early.
func Simulate(instance mapf.Instance, solution mapf.Solution, announcements mapf.Announcements, attackerName string, safe geometry.Coordinate, mitigation bool) AttemptResult {
	g := tegraph.Build(instance, solution, safe)
	attackerPos := solution.Schedule[attackerName][0]
	deviation := make([]geometry.TimedCoordinate, 0, solution.Statistics.Makespan+1)

	res := AttemptResult{
		AttackerName:              attackerName,
		Safe:                      safe,
		MaxInterObservationTime:   solution.MaxInterObservationTime(attackerName),
		MinInterAnnouncementTime:  announcements.MinInterAnnouncementTime(),
		MinLookahead:              announcements.MinLookahead(),
		AvgLookahead:              announcements.AvgLookahead(),
	}

	for t := 0; t <= solution.Statistics.Makespan; t++ {
		deviation = append(deviation, attackerPos)

		if !deviationIsValid(instance, solution, attackerName, deviation, t) {
			res.Detected = true
		}
		res.MaxDeviatedDist = max(res.MaxDeviatedDist, attackerPos.ManhDist(solution.Schedule[attackerName][t]))

		tegraph.Prune(g, instance, solution, attackerName, announcements, t, mitigation)

		if mitigation && !g.HasNode(attackerPos) {
			res.Detected = true
		}
		if mitigation {
			for _, agent := range instance.Agents {
				if agent.Name == attackerName {
					continue
				}
				if solution.Schedule[agent.Name][t].Adj(solution.Schedule[attackerName][t]) &&
					attackerPos != solution.Schedule[attackerName][t] {
					res.Detected = true
				}
			}
		}

		if attackerPos.Coordinate() == safe {
			res.Dangerous = true
		}

		horizon := announcements.Schedule[attackerName][t]
		if res.Dangerous {
			attackerPos = stepTowardNominal(g, attackerPos, t, horizon, solution, attackerName)
			continue
		}

		obs, obsFound := nextObserved(instance, solution, attackerName, announcements, t)
		var foundKnownDev bool
		if obsFound {
			if fullInformation(announcements, t, obs.T) {
				foundKnownDev = tryKnownDeviation(g, attackerPos, safe, obs.T, horizon, solution, attackerName)
			}
			if foundKnownDev {
				// A known-safe chain exists, so the attack is committed to
				// right now; subsequent timesteps are never simulated, so
				// no detection channel is checked at any timestep after t.
				res.Dangerous = true
				return res
			}
			attackerPos = stepTowardNominal(g, attackerPos, t, horizon, solution, attackerName)
		} else {
			knownHorizon := minAnnouncedHorizon(announcements, t)
			foundKnownDev = tryKnownDeviation(g, attackerPos, safe, knownHorizon, horizon, solution, attackerName)
			if foundKnownDev {
				res.Dangerous = true
				return res
			}
			attackerPos = stepTowardSafe(g, attackerPos, safe, t)
		}
	}
	return res
}

// deviationIsValid checks the attacker's deviated trajectory so far against
// every other agent's unmodified nominal schedule, truncated to t+1 steps.
func deviationIsValid(instance mapf.Instance, solution mapf.Solution, attackerName string, deviation []geometry.TimedCoordinate, t int) bool {
	devSol := solution.Clone()
	devSol.Statistics.Makespan = t
	cp := make([]geometry.TimedCoordinate, len(deviation))
	copy(cp, deviation)
	devSol.Schedule[attackerName] = cp
	for name, sched := range devSol.Schedule {
		if len(sched) > t+1 {
			devSol.Schedule[name] = sched[:t+1]
		}
	}
	return devSol.Valid(instance)
}

// nextObserved returns the first future timestep, before the attacker's own
// announced horizon at currT, at which some other defender's own announced
// horizon at currT has not yet expired and that defender's nominal position
// is adjacent to the attacker's nominal position — i.e. the next time a
// defender is known, right now, to be watching the attacker's nominal cell.
func nextObserved(instance mapf.Instance, solution mapf.Solution, attackerName string, announcements mapf.Announcements, currT int) (geometry.TimedCoordinate, bool) {
	upper := solution.Statistics.Makespan + 2
	if h := announcements.Schedule[attackerName][currT]; h < upper {
		upper = h
	}
	for t := currT + 1; t < upper; t++ {
		for _, agent := range instance.Agents {
			if agent.Name == attackerName {
				continue
			}
			if t < announcements.Schedule[agent.Name][currT] &&
				solution.Schedule[agent.Name][t].Adj(solution.Schedule[attackerName][t]) {
				return solution.Schedule[attackerName][t], true
			}
		}
	}
	return geometry.TimedCoordinate{}, false
}

// fullInformation reports whether every agent's announcement horizon at t
// already extends past obsT — i.e. nothing announced so far could reveal a
// conflict before the observation at obsT occurs, so it is safe to search
// for a known-safe deviation chain against that bound.
func fullInformation(announcements mapf.Announcements, t, obsT int) bool {
	for _, sched := range announcements.Schedule {
		if sched[t] <= obsT {
			return false
		}
	}
	return true
}

// minAnnouncedHorizon returns the smallest announced horizon, across every
// agent, at timestep t.
func minAnnouncedHorizon(announcements mapf.Announcements, t int) int {
	min := -1
	for _, sched := range announcements.Schedule {
		if min == -1 || sched[t] < min {
			min = sched[t]
		}
	}
	return min
}

// tryKnownDeviation searches for a chain: a path from attackerPos to safe
// arriving at some intermediate time, followed by a path from that
// intermediate position back to the attacker's own nominal trajectory,
// both legs confined to times no later than loopBound, with the return leg
// additionally required to land before horizon. It reports whether such a
// chain exists.
func tryKnownDeviation(g *tegraph.Graph, attackerPos geometry.TimedCoordinate, safe geometry.Coordinate, loopBound, horizon int, solution mapf.Solution, attackerName string) bool {
	inter := attackerPos
	for inter.T < loopBound {
		pathToSafe, ok := AStar(g, attackerPos, func(finish geometry.TimedCoordinate) bool {
			return finish.T > inter.T && finish.Coordinate() == safe
		}, func(n geometry.TimedCoordinate) int {
			return safe.ManhDist(n.Coordinate())
		})
		if !ok {
			return false
		}
		inter = pathToSafe[len(pathToSafe)-1]

		_, reaches := AStar(g, inter,
			nominalGoal(-1, loopBound, horizon, solution, attackerName),
			nominalHeuristic(horizon, solution, attackerName))
		if reaches {
			return true
		}
	}
	return false
}

// stepTowardNominal plans one step back toward the attacker's own nominal
// trajectory, arriving strictly after afterT and before horizon. If no such
// path exists, it falls back to the first reachable successor in canonical
// neighbor order, or stays put if none remain.
func stepTowardNominal(g *tegraph.Graph, attackerPos geometry.TimedCoordinate, afterT, horizon int, solution mapf.Solution, attackerName string) geometry.TimedCoordinate {
	path, ok := AStar(g, attackerPos,
		nominalGoal(afterT, -1, horizon, solution, attackerName),
		nominalHeuristic(horizon, solution, attackerName))
	if ok {
		return path[1]
	}
	return firstSuccessor(g, attackerPos, afterT)
}

// stepTowardSafe plans one step toward safe with no time bound, falling
// back to the first reachable successor if no path exists.
func stepTowardSafe(g *tegraph.Graph, attackerPos geometry.TimedCoordinate, safe geometry.Coordinate, currT int) geometry.TimedCoordinate {
	path, ok := AStar(g, attackerPos, func(finish geometry.TimedCoordinate) bool {
		return finish.Coordinate() == safe
	}, func(n geometry.TimedCoordinate) int {
		return safe.ManhDist(n.Coordinate())
	})
	if ok {
		return path[1]
	}
	return firstSuccessor(g, attackerPos, currT)
}

// nominalGoal builds the "arrived back at the attacker's own nominal
// position" predicate shared by every return-to-nominal search. lowerExcl
// and upperIncl are time bounds; either may be passed as -1 to disable it.
func nominalGoal(lowerExcl, upperIncl, horizon int, solution mapf.Solution, attackerName string) func(geometry.TimedCoordinate) bool {
	return func(finish geometry.TimedCoordinate) bool {
		if lowerExcl >= 0 && finish.T <= lowerExcl {
			return false
		}
		if upperIncl >= 0 && finish.T > upperIncl {
			return false
		}
		if finish.T >= horizon {
			return false
		}
		return finish == solution.Schedule[attackerName][finish.T]
	}
}

// nominalHeuristic halves the Manhattan distance to the attacker's nominal
// position while still before horizon (nominal and deviation close the gap
// from both sides), and is zero once the search has passed horizon.
func nominalHeuristic(horizon int, solution mapf.Solution, attackerName string) func(geometry.TimedCoordinate) int {
	return func(n geometry.TimedCoordinate) int {
		if n.T < horizon {
			return n.ManhDist(solution.Schedule[attackerName][n.T]) / 2
		}
		return 0
	}
}

// firstSuccessor returns the first of pos's canonical 4-connected
// successors present in g, or pos re-timestamped to fallbackT if none
// remain reachable.
func firstSuccessor(g *tegraph.Graph, pos geometry.TimedCoordinate, fallbackT int) geometry.TimedCoordinate {
	for _, c := range pos.Coordinate().Neighbors4() {
		cand := c.AsTime(pos.T + 1)
		if g.HasEdge(pos, cand) {
			return cand
		}
	}
	return pos.AsTime(fallbackT)
}
