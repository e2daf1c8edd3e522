package tegraph

import (
	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/mapf"
)

// Build constructs the time-expanded graph for instance across
// [0, solution.Statistics.Makespan]. safe names the one cell that is
// passable for the attacker even though it is listed as an obstacle on the
// map (the forbidden cell under analysis); every other obstacle cell is
// never added at any timestep, which transitively drops every edge that
// would have touched it.
func Build(instance mapf.Instance, solution mapf.Solution, safe geometry.Coordinate) *Graph {
	g := NewGraph()
	makespan := solution.Statistics.Makespan
	dims := instance.Map.Dimensions

	for t := 0; t <= makespan; t++ {
		for y := uint16(0); y < dims.Y; y++ {
			for x := uint16(0); x < dims.X; x++ {
				c := geometry.Coordinate{X: x, Y: y}
				if !instance.Map.Passable(c, safe) {
					continue
				}
				dest := c.AsTime(t)
				g.AddNode(dest)
				if t == 0 {
					continue
				}
				for _, prevCell := range c.Neighbors4() {
					if !prevCell.InBounds(dims) {
						continue
					}
					src := prevCell.AsTime(t - 1)
					if g.HasNode(src) {
						g.AddEdge(src, dest)
					}
				}
			}
		}
	}
	return g
}
