package geometry

// Coordinate is a single cell on the grid. Coordinates compare by value and
// are safe to use as map keys.
type Coordinate struct {
	X, Y uint16
}

// ManhDist returns the Manhattan distance between c and other.
func (c Coordinate) ManhDist(other Coordinate) int {
	return absInt(int(c.X)-int(other.X)) + absInt(int(c.Y)-int(other.Y))
}

// Adj reports whether c and other are 4-connected neighbors or identical
// (a "wait" move is adjacency with distance zero).
func (c Coordinate) Adj(other Coordinate) bool {
	return c.ManhDist(other) <= 1
}

// AsTime projects c into a TimedCoordinate carrying time t.
func (c Coordinate) AsTime(t int) TimedCoordinate {
	return TimedCoordinate{X: c.X, Y: c.Y, T: t}
}

// Neighbors4 returns the coordinates reachable from c by one 4-connected
// step or a wait, in canonical (y, x) order. Callers that must "pick any
// neighbor" deterministically (bold's firstSuccessor fallback, cautious's move
// enumeration) rely on this order to make results reproducible across
// runs, per the non-determinism design note on iteration order.
//
// Out-of-range neighbors (negative coordinates) are simply omitted; callers
// are responsible for filtering against map dimensions and obstacles.
func (c Coordinate) Neighbors4() []Coordinate {
	candidates := make([]Coordinate, 0, 5)
	type delta struct{ dx, dy int }
	deltas := []delta{
		{0, -1}, // up (smaller y first: canonical (y,x) order)
		{-1, 0}, // left
		{0, 0},  // wait
		{1, 0},  // right
		{0, 1},  // down
	}
	for _, d := range deltas {
		nx, ny := int(c.X)+d.dx, int(c.Y)+d.dy
		if nx < 0 || ny < 0 {
			continue
		}
		candidates = append(candidates, Coordinate{X: uint16(nx), Y: uint16(ny)})
	}
	return candidates
}

// Neighborhood3x3 returns the full Moore neighborhood of c (up to 9 cells:
// c itself plus its 4-connected and diagonal neighbors). Unlike Neighbors4,
// this includes the four diagonal cells; it is the shape a defender's
// sensor actually covers (cautious's observed-region construction),
// which is wider than the 4-connected movement graph.
//
// Out-of-range neighbors (negative coordinates) are omitted; callers filter
// against map dimensions themselves.
func (c Coordinate) Neighborhood3x3() []Coordinate {
	candidates := make([]Coordinate, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := int(c.X)+dx, int(c.Y)+dy
			if nx < 0 || ny < 0 {
				continue
			}
			candidates = append(candidates, Coordinate{X: uint16(nx), Y: uint16(ny)})
		}
	}
	return candidates
}

// InBounds reports whether c lies within a grid of the given dimensions.
func (c Coordinate) InBounds(dimensions Coordinate) bool {
	return c.X < dimensions.X && c.Y < dimensions.Y
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TimedCoordinate is a Coordinate tagged with a timestep. Time is not part
// of adjacency (two timed coordinates are adjacent iff their projections
// are adjacent); it is carried purely as an identity tag distinguishing the
// same cell at different moments in the time-expanded graph.
type TimedCoordinate struct {
	X, Y uint16
	T    int
}

// Coordinate projects tc down to its spatial component, discarding T. This
// is the left inverse of Coordinate.AsTime: for all t,
// tc.AsTime(t).Coordinate() == tc.Coordinate().
func (tc TimedCoordinate) Coordinate() Coordinate {
	return Coordinate{X: tc.X, Y: tc.Y}
}

// Adj reports whether tc and other project to adjacent coordinates; T is
// ignored.
func (tc TimedCoordinate) Adj(other TimedCoordinate) bool {
	return tc.Coordinate().Adj(other.Coordinate())
}

// ManhDist returns the Manhattan distance between the spatial projections
// of tc and other; T is ignored.
func (tc TimedCoordinate) ManhDist(other TimedCoordinate) int {
	return tc.Coordinate().ManhDist(other.Coordinate())
}

// AsTime returns tc with its timestamp replaced by newTime; X and Y are
// unchanged.
func (tc TimedCoordinate) AsTime(newTime int) TimedCoordinate {
	return TimedCoordinate{X: tc.X, Y: tc.Y, T: newTime}
}

// Before reports whether tc occurs strictly earlier than other. This is
// the total order promised by spec: TimedCoordinate ordering is by T alone.
func (tc TimedCoordinate) Before(other TimedCoordinate) bool {
	return tc.T < other.T
}
