package bold_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitsper/announcenet/announce"
	"github.com/gitsper/announcenet/bold"
	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/mapf"
)

func TestSimulateSoleAgentAlreadyAtSafeIsImmediatelyDangerous(t *testing.T) {
	m, err := mapf.NewMap(geometry.Coordinate{X: 5, Y: 5}, map[geometry.Coordinate]struct{}{
		{X: 2, Y: 2}: {},
	})
	require.NoError(t, err)
	instance, err := mapf.NewInstance([]mapf.Agent{
		{Name: "attacker", Start: geometry.Coordinate{X: 2, Y: 2}, Goal: geometry.Coordinate{X: 2, Y: 2}},
	}, m)
	require.NoError(t, err)

	solution := mapf.Solution{
		Statistics: mapf.Statistics{Makespan: 2},
		Schedule: map[string][]geometry.TimedCoordinate{
			"attacker": {{X: 2, Y: 2, T: 0}, {X: 2, Y: 2, T: 1}, {X: 2, Y: 2, T: 2}},
		},
	}
	announcements := announce.KAhead([]string{"attacker"}, 10, 2)

	res := bold.Simulate(instance, solution, announcements, "attacker", geometry.Coordinate{X: 2, Y: 2}, false)

	require.True(t, res.Dangerous)
	require.False(t, res.Detected)
	require.Equal(t, 4, res.MaxInterObservationTime)
	require.Equal(t, 1, res.MinInterAnnouncementTime)
	require.Equal(t, 10, res.MinLookahead)
	require.InDelta(t, 10.0, res.AvgLookahead.Float64(), 1e-9)
}

func TestSimulateNeverPanicsOnTwoAgentInstance(t *testing.T) {
	m, err := mapf.NewMap(geometry.Coordinate{X: 5, Y: 5}, map[geometry.Coordinate]struct{}{
		{X: 4, Y: 4}: {},
	})
	require.NoError(t, err)
	instance, err := mapf.NewInstance([]mapf.Agent{
		{Name: "attacker", Start: geometry.Coordinate{X: 0, Y: 0}, Goal: geometry.Coordinate{X: 1, Y: 0}},
		{Name: "defender", Start: geometry.Coordinate{X: 3, Y: 3}, Goal: geometry.Coordinate{X: 3, Y: 2}},
	}, m)
	require.NoError(t, err)

	solution := mapf.Solution{
		Statistics: mapf.Statistics{Makespan: 3},
		Schedule: map[string][]geometry.TimedCoordinate{
			"attacker": {{X: 0, Y: 0, T: 0}, {X: 1, Y: 0, T: 1}, {X: 1, Y: 0, T: 2}, {X: 1, Y: 0, T: 3}},
			"defender": {{X: 3, Y: 3, T: 0}, {X: 3, Y: 2, T: 1}, {X: 3, Y: 2, T: 2}, {X: 3, Y: 2, T: 3}},
		},
	}
	solution.ExtendStayInPlace()
	announcements := announce.KAhead([]string{"attacker", "defender"}, 2, 3)

	require.NotPanics(t, func() {
		bold.Simulate(instance, solution, announcements, "attacker", geometry.Coordinate{X: 4, Y: 4}, true)
	})
}
