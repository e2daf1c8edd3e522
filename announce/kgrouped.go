package announce

import "github.com/gitsper/announcenet/mapf"

// KGrouped discloses the horizon in piecewise-constant blocks of k
// timesteps: at the start of each block, h jumps forward by k.
// h[t] = k*ceil((t+1)/k) + 1, for all t in [0, makespan].
func KGrouped(agentNames []string, k, makespan int) mapf.Announcements {
	schedule := make(map[string][]int, len(agentNames))
	for _, name := range agentNames {
		horizons := make([]int, makespan+1)
		for t := 0; t <= makespan; t++ {
			block := t / k
			horizons[t] = (block+1)*k + 1
		}
		schedule[name] = horizons
	}
	return mapf.Announcements{Schedule: schedule}
}
