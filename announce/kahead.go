package announce

import "github.com/gitsper/announcenet/mapf"

// KAhead discloses a rolling window of k future steps to every agent:
// h[t] = t + k + 1 for all t in [0, makespan]. It is the simplest
// strategy: the disclosed horizon never depends on anyone's schedule.
func KAhead(agentNames []string, k, makespan int) mapf.Announcements {
	schedule := make(map[string][]int, len(agentNames))
	for _, name := range agentNames {
		horizons := make([]int, makespan+1)
		for t := 0; t <= makespan; t++ {
			horizons[t] = t + k + 1
		}
		schedule[name] = horizons
	}
	return mapf.Announcements{Schedule: schedule}
}
