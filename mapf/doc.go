// Package mapf holds the input data model AnnounceNet analyzes: a solved
// Multi-Agent Path Finding instance (agents, map, and their joint
// schedule) plus the per-agent announcement schedule that partially
// discloses each agent's future trajectory.
//
// None of the types here plan paths or decide anything about attackers;
// this package only represents a solved instance faithfully, validates it,
// and exposes the handful of derived metrics (inter-observation time,
// inter-announcement time, lookahead) every downstream analysis reports
// alongside its verdict.
package mapf
