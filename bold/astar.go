package bold

import (
	"container/heap"

	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/tegraph"
)

// AStar searches g from start for the first node satisfying goal, guided by
// heuristic. Every edge has unit cost, generalizing the teacher's Dijkstra
// priority queue (graph/dijkstra.go's nodeItem/nodePQ) to accept an
// arbitrary goal predicate and heuristic instead of a single target ID —
// what the caller needs to plan against a time-expanded graph where "the
// destination" is a predicate over (position, time), not a fixed node.
//
// Returns the path from start to the first goal-satisfying node found
// (inclusive of both ends) and true, or nil and false if no such node is
// reachable.
func AStar(g *tegraph.Graph, start geometry.TimedCoordinate, goal func(geometry.TimedCoordinate) bool, heuristic func(geometry.TimedCoordinate) int) ([]geometry.TimedCoordinate, bool) {
	gScore := map[geometry.TimedCoordinate]int{start: 0}
	cameFrom := map[geometry.TimedCoordinate]geometry.TimedCoordinate{}
	closed := map[geometry.TimedCoordinate]bool{}

	open := &astarPQ{}
	heap.Init(open)
	heap.Push(open, &astarItem{node: start, f: heuristic(start)})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*astarItem).node
		if closed[cur] {
			continue
		}
		if goal(cur) {
			return reconstructPath(cameFrom, start, cur), true
		}
		closed[cur] = true

		for _, next := range g.Successors(cur) {
			if closed[next] {
				continue
			}
			tentative := gScore[cur] + 1
			if old, ok := gScore[next]; ok && tentative >= old {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = cur
			heap.Push(open, &astarItem{node: next, f: tentative + heuristic(next)})
		}
	}
	return nil, false
}

func reconstructPath(cameFrom map[geometry.TimedCoordinate]geometry.TimedCoordinate, start, goal geometry.TimedCoordinate) []geometry.TimedCoordinate {
	path := []geometry.TimedCoordinate{goal}
	for path[len(path)-1] != start {
		prev := cameFrom[path[len(path)-1]]
		path = append(path, prev)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type astarItem struct {
	node geometry.TimedCoordinate
	f    int
}

type astarPQ []*astarItem

func (pq astarPQ) Len() int           { return len(pq) }
func (pq astarPQ) Less(i, j int) bool { return pq[i].f < pq[j].f }
func (pq astarPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *astarPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*astarItem))
}
func (pq *astarPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
