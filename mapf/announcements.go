package mapf

// Announcements maps agent name to its sequence of announcement horizons
// h[t]: the first future timestep not yet disclosed by the announcement
// made at time t. Every generator in package announce guarantees
// h[t] > t for all t.
type Announcements struct {
	Schedule map[string][]int `yaml:"schedule"`
}

// anyAgentSchedule returns one agent's horizon slice as a representative
// sample; every generator produces equal-length sequences across agents,
// so any one of them stands in for "the" sequence length.
func (a Announcements) anyAgentSchedule() []int {
	for _, sched := range a.Schedule {
		return sched
	}
	return nil
}

// MinInterAnnouncementTime returns the minimum gap between any two
// timesteps at which some agent's announcement horizon changed. If no
// change ever occurs, it equals the sequence length.
func (a Announcements) MinInterAnnouncementTime() int {
	sample := a.anyAgentSchedule()
	miat := len(sample)
	iat := 1
	for t := 1; t < len(sample); t++ {
		changed := false
		for _, sched := range a.Schedule {
			if sched[t] != sched[t-1] {
				changed = true
				break
			}
		}
		if changed {
			if iat < miat {
				miat = iat
			}
			if miat == 1 {
				break
			}
			iat = 1
		} else {
			iat++
		}
	}
	return miat
}

// MinLookahead returns the minimum of h[t]-t-1 over all agents and all t.
func (a Announcements) MinLookahead() int {
	sample := a.anyAgentSchedule()
	mlahead := len(sample)
	for t := range sample {
		for _, sched := range a.Schedule {
			lookahead := sched[t] - t - 1
			if lookahead < mlahead {
				mlahead = lookahead
			}
		}
	}
	return mlahead
}

// AvgLookahead returns the mean of h[t]-t-1 over all agents and all t.
func (a Announcements) AvgLookahead() Lookahead {
	sample := a.anyAgentSchedule()
	var sum, count int
	for t := range sample {
		for _, sched := range a.Schedule {
			sum += sched[t] - t - 1
			count++
		}
	}
	return NewLookahead(float64(sum) / float64(count))
}
