package tegraph

import (
	"sync"

	"github.com/gitsper/announcenet/geometry"
)

// Graph is the time-expanded movement graph: nodes are TimedCoordinates,
// edges point from time t to time t+1. All mutations are protected by an
// internal mutex, following the teacher's graph.Graph convention.
type Graph struct {
	mu    sync.RWMutex
	nodes map[geometry.TimedCoordinate]struct{}
	succ  map[geometry.TimedCoordinate]map[geometry.TimedCoordinate]struct{}
	pred  map[geometry.TimedCoordinate]map[geometry.TimedCoordinate]struct{}
}

// NewGraph constructs an empty time-expanded graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[geometry.TimedCoordinate]struct{}),
		succ:  make(map[geometry.TimedCoordinate]map[geometry.TimedCoordinate]struct{}),
		pred:  make(map[geometry.TimedCoordinate]map[geometry.TimedCoordinate]struct{}),
	}
}

// AddNode adds tc to the graph. If tc is already present, this is a no-op.
func (g *Graph) AddNode(tc geometry.TimedCoordinate) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[tc]; ok {
		return
	}
	g.nodes[tc] = struct{}{}
	g.succ[tc] = make(map[geometry.TimedCoordinate]struct{})
	g.pred[tc] = make(map[geometry.TimedCoordinate]struct{})
}

// HasNode reports whether tc is present in the graph.
func (g *Graph) HasNode(tc geometry.TimedCoordinate) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[tc]
	return ok
}

// AddEdge adds a directed edge from -> to. Both endpoints must already be
// present; AddEdge is a no-op if either is missing (the builder always adds
// nodes before wiring edges between them).
func (g *Graph) AddEdge(from, to geometry.TimedCoordinate) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return
	}
	if _, ok := g.nodes[to]; !ok {
		return
	}
	g.succ[from][to] = struct{}{}
	g.pred[to][from] = struct{}{}
}

// RemoveEdge deletes the edge from -> to, if present.
func (g *Graph) RemoveEdge(from, to geometry.TimedCoordinate) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.succ[from], to)
	delete(g.pred[to], from)
}

// RemoveNode deletes tc and every edge incident to it. If tc is not present,
// this is a no-op.
func (g *Graph) RemoveNode(tc geometry.TimedCoordinate) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[tc]; !ok {
		return
	}
	for s := range g.succ[tc] {
		delete(g.pred[s], tc)
	}
	for p := range g.pred[tc] {
		delete(g.succ[p], tc)
	}
	delete(g.succ, tc)
	delete(g.pred, tc)
	delete(g.nodes, tc)
}

// Successors returns the nodes reachable from tc by a single edge. The
// returned slice is a fresh copy; callers may mutate it freely.
func (g *Graph) Successors(tc geometry.TimedCoordinate) []geometry.TimedCoordinate {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs := g.succ[tc]
	out := make([]geometry.TimedCoordinate, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	return out
}

// HasEdge reports whether the edge from -> to is present.
func (g *Graph) HasEdge(from, to geometry.TimedCoordinate) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.succ[from][to]
	return ok
}

// Len returns the number of nodes currently in the graph.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
