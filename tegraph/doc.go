// Package tegraph builds and prunes the time-expanded graph that the bold
// attacker searches. A node is a geometry.TimedCoordinate; an edge (u, v)
// means an agent occupying u's cell at u's time can be at v's cell at
// v's time, i.e. v.T == u.T+1 and u and v project to adjacent cells (or the
// same cell, a wait).
//
// The graph is a directed adjacency list protected by a sync.RWMutex,
// generalizing the teacher's graph.Graph (string-keyed adjacency list) to
// TimedCoordinate keys, plus a reverse (predecessor) index so that pruning
// a node — which the bold simulator does once per defender per timestep —
// does not require scanning every other node's neighbor set.
package tegraph
