package cautious

import "github.com/gitsper/announcenet/geometry"

type coordSet map[geometry.Coordinate]struct{}

type floodMap map[string]coordSet

func cloneSet(s coordSet) coordSet {
	out := make(coordSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

func cloneFloodMap(m floodMap) floodMap {
	out := make(floodMap, len(m))
	for name, set := range m {
		out[name] = cloneSet(set)
	}
	return out
}

func disjoint(a, b coordSet) bool {
	for c := range a {
		if _, ok := b[c]; ok {
			return false
		}
	}
	return true
}

func difference(a, b coordSet) coordSet {
	out := make(coordSet)
	for c := range a {
		if _, ok := b[c]; !ok {
			out[c] = struct{}{}
		}
	}
	return out
}

func intersection(a, b coordSet) coordSet {
	out := make(coordSet)
	for c := range a {
		if _, ok := b[c]; ok {
			out[c] = struct{}{}
		}
	}
	return out
}

// unionExcept unions every set in floods except the one named except.
func unionExcept(floods floodMap, except string) coordSet {
	out := make(coordSet)
	for name, set := range floods {
		if name == except {
			continue
		}
		for c := range set {
			out[c] = struct{}{}
		}
	}
	return out
}

func floodMapsEqual(a, b floodMap) bool {
	if len(a) != len(b) {
		return false
	}
	for name, setA := range a {
		setB, ok := b[name]
		if !ok || len(setA) != len(setB) {
			return false
		}
		for c := range setA {
			if _, ok := setB[c]; !ok {
				return false
			}
		}
	}
	return true
}

// firstSorted returns the lexicographically smallest (Y, X) coordinate in
// s, making "pick the first candidate" deterministic regardless of Go's
// randomized map iteration order.
func firstSorted(s coordSet) (geometry.Coordinate, bool) {
	first := geometry.Coordinate{}
	found := false
	for c := range s {
		if !found || c.Y < first.Y || (c.Y == first.Y && c.X < first.X) {
			first = c
			found = true
		}
	}
	return first, found
}
