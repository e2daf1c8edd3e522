// Package bold simulates the bold attacker: at every timestep it greedily
// decides whether to head for the safe cell or fall back to its nominal
// schedule, replanning against the current state of the pruned
// time-expanded graph. Detection is three independent channels — a
// collision with the schedule's own validity invariants, a mitigation
// pruning the attacker's current position out of the graph, or a
// mitigation missing an expected co-observation — any of which sets
// Detected without stopping the simulation.
package bold
