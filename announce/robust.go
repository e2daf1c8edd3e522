package announce

import "github.com/gitsper/announcenet/mapf"

// Robust derives, per agent and per t, the smallest future time t' > t+1
// at which some *other* agent's nominal position at some s in (t, t')
// coincides with this agent's own nominal position at t'. Interpretation:
// "I cannot yet announce that I will be at position p at time t', because
// another agent currently occupies p at an earlier time s." If no such
// conflict exists before makespan, h[t] = makespan+1.
//
// Carry-forward: if the previous timestep's announcement already reaches
// beyond t+1 (the agent is still waiting for a conflict to clear), the
// previous value is reused unchanged rather than recomputed — this is
// what lets a blocked agent's horizon stay put instead of oscillating.
func Robust(instance mapf.Instance, solution mapf.Solution) mapf.Announcements {
	makespan := solution.Statistics.Makespan
	schedule := make(map[string][]int, len(instance.Agents))
	for _, agent := range instance.Agents {
		schedule[agent.Name] = make([]int, 0, makespan+1)
	}

	for t := 0; t <= makespan; t++ {
		for _, agent := range instance.Agents {
			if t > 0 && schedule[agent.Name][t-1] > t+1 {
				// Still waiting for the conflict seen at t-1 to clear.
				schedule[agent.Name] = append(schedule[agent.Name], schedule[agent.Name][t-1])
				continue
			}

			found := false
			for futT := t + 2; futT <= makespan && !found; futT++ {
				agentPosAtFut := solution.Schedule[agent.Name][futT].Coordinate()
				for s := t + 1; s < futT && !found; s++ {
					for _, conflictAgent := range instance.Agents {
						if conflictAgent.Name == agent.Name {
							continue
						}
						if solution.Schedule[conflictAgent.Name][s].Coordinate() == agentPosAtFut {
							schedule[agent.Name] = append(schedule[agent.Name], futT)
							found = true
							break
						}
					}
				}
			}
			if len(schedule[agent.Name]) < t+1 {
				schedule[agent.Name] = append(schedule[agent.Name], makespan+1)
			}
		}
	}
	return mapf.Announcements{Schedule: schedule}
}
