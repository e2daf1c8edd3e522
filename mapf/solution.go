package mapf

import "github.com/gitsper/announcenet/geometry"

// Solution is a pre-planned joint schedule: one TimedCoordinate sequence
// per agent, indexed by t in [0, Statistics.Makespan], extended by
// ExtendStayInPlace to length Makespan+2 before any analysis consumes it.
type Solution struct {
	Statistics Statistics                              `yaml:"statistics"`
	Schedule   map[string][]geometry.TimedCoordinate `yaml:"schedule"`
}

// ExtendStayInPlace right-pads every agent's path by replicating its final
// position (incrementing T each step) until the path has length
// Makespan+2. Every downstream component assumes this precondition already
// holds; callers must run it once after loading a Solution.
func (s *Solution) ExtendStayInPlace() {
	for name, path := range s.Schedule {
		for len(path) <= s.Statistics.Makespan+1 {
			last := path[len(path)-1]
			path = append(path, last.AsTime(last.T+1))
		}
		s.Schedule[name] = path
	}
}

// Clone returns a deep copy of s; mutating the copy's schedule (as bold's
// per-timestep deviation construction does) never touches the original.
func (s Solution) Clone() Solution {
	out := Solution{Statistics: s.Statistics, Schedule: make(map[string][]geometry.TimedCoordinate, len(s.Schedule))}
	for name, path := range s.Schedule {
		cp := make([]geometry.TimedCoordinate, len(path))
		copy(cp, path)
		out.Schedule[name] = cp
	}
	return out
}

// Valid reports whether s satisfies the four MAPF schedule invariants with
// respect to instance: no vertex conflict, no edge conflict, no off-grid
// positions, and per-step dynamics of at most one Manhattan step.
func (s Solution) Valid(instance Instance) bool {
	for t := 0; t <= s.Statistics.Makespan; t++ {
		positions := make(map[geometry.Coordinate]struct{}, len(instance.Agents))
		for _, agent := range instance.Agents {
			path, ok := s.Schedule[agent.Name]
			if !ok || t >= len(path) {
				return false
			}
			pos := path[t].Coordinate()
			if !pos.InBounds(instance.Map.Dimensions) {
				return false
			}
			if _, dup := positions[pos]; dup {
				return false // vertex conflict
			}
			positions[pos] = struct{}{}
		}
		if t == s.Statistics.Makespan {
			break
		}
		for _, a := range instance.Agents {
			aPath := s.Schedule[a.Name]
			if aPath[t].ManhDist(aPath[t+1]) > 1 {
				return false // dynamics constraint
			}
			for _, b := range instance.Agents {
				if a.Name == b.Name {
					continue
				}
				bPath := s.Schedule[b.Name]
				if aPath[t].Coordinate() == bPath[t+1].Coordinate() && bPath[t].Coordinate() == aPath[t+1].Coordinate() {
					return false // edge conflict (swap)
				}
			}
		}
	}
	return true
}

// MaxInterObservationTime returns the longest run of consecutive timesteps
// during which no other agent is adjacent to attacker.
func (s Solution) MaxInterObservationTime(attacker string) int {
	iot, miot := 1, 1
	for t := 0; t <= s.Statistics.Makespan; t++ {
		observed := false
		for name, path := range s.Schedule {
			if name == attacker {
				continue
			}
			if t < len(path) && path[t].Adj(s.Schedule[attacker][t]) {
				observed = true
				break
			}
		}
		if observed {
			iot = 1
		} else {
			iot++
		}
		if iot > miot {
			miot = iot
		}
	}
	return miot
}
