package experiment

import (
	"sort"

	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/mapf"
)

// pair is one candidate (attacker, safe cell) to analyze.
type pair struct {
	agent mapf.Agent
	safe  geometry.Coordinate
}

const maxCandidateAgents = 10
const maxCandidateObstacles = 10

// candidatePairs forms the Cartesian product of the first ten agents
// (instance order) and the first ten obstacle cells (sorted by (Y, X), so
// the selection is deterministic despite Obstacles being a Go map).
func candidatePairs(instance mapf.Instance) []pair {
	agents := instance.Agents
	if len(agents) > maxCandidateAgents {
		agents = agents[:maxCandidateAgents]
	}

	obstacles := make([]geometry.Coordinate, 0, len(instance.Map.Obstacles))
	for c := range instance.Map.Obstacles {
		obstacles = append(obstacles, c)
	}
	sort.Slice(obstacles, func(i, j int) bool {
		if obstacles[i].Y != obstacles[j].Y {
			return obstacles[i].Y < obstacles[j].Y
		}
		return obstacles[i].X < obstacles[j].X
	})
	if len(obstacles) > maxCandidateObstacles {
		obstacles = obstacles[:maxCandidateObstacles]
	}

	pairs := make([]pair, 0, len(agents)*len(obstacles))
	for _, a := range agents {
		for _, o := range obstacles {
			pairs = append(pairs, pair{agent: a, safe: o})
		}
	}
	return pairs
}
