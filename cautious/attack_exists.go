package cautious

import (
	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/mapf"
	"github.com/gitsper/announcenet/tegraph"
)

// attackExists runs a mirrored expansion of two sets from startTime to
// endTime: a tracks where the attacker could actually be, while b tracks
// the frontier of cells reached after the attacker is known to have
// touched safe at some past step. Both are pruned, at every step, by
// whatever a defender could observe at that step. If a ever contains
// safe, b adopts safe too (the moment of reaching safe becomes a new
// possible origin for the "already visited safe" frontier). An attack
// exists — the pair is not secure — iff b ends up containing obsCoord,
// the observation candidate the caller is testing.
//
// Both reachable expansions pass startTime as the announcement-check time
// for every step u, never u itself; this mirrors the original analysis
// exactly and is preserved rather than "corrected" to pass u.
func attackExists(solution mapf.Solution, announcements mapf.Announcements, attackerName string, safe geometry.Coordinate, startTime, endTime int, obsCoord geometry.Coordinate, g *tegraph.Graph, x map[int]floodMap, conflicts map[geometry.TimedCoordinate]struct{}) bool {
	a := cloneSet(x[startTime][attackerName])
	b := make(coordSet)

	for u := startTime; u < endTime; u++ {
		a, _ = reachable(solution, announcements, g, a, startTime, u, conflicts, true)
		b, _ = reachable(solution, announcements, g, b, startTime, u, conflicts, true)

		observed := defenderObserved(x[u], attackerName)
		a = difference(a, observed)
		b = difference(b, observed)

		if _, ok := a[safe]; ok {
			b[safe] = struct{}{}
		}
		if len(a) == 0 && len(b) == 0 {
			break
		}
	}

	_, found := b[obsCoord]
	return found
}
