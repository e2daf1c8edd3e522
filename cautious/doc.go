// Package cautious analyzes whether a perfectly patient attacker — one
// that never moves until it is certain no observation can catch it — can
// ever reach the safe cell undetected. Unlike package bold, this never
// simulates a single trajectory: it expands reachable-coordinate sets for
// every agent in lockstep, restarting on conflicts. A pair is not secure if
// the reachable sets stop changing while the attacker is still unobserved,
// or if a concrete attack chain is found when the attacker's set first
// meets what defenders could observe; it is secure if neither happens for
// any root time up to the makespan.
package cautious
