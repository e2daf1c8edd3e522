package experiment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitsper/announcenet/announce"
	"github.com/gitsper/announcenet/experiment"
	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/mapf"
)

func TestRunBoldCoversEveryAgentObstaclePair(t *testing.T) {
	m, err := mapf.NewMap(geometry.Coordinate{X: 4, Y: 1}, map[geometry.Coordinate]struct{}{
		{X: 3, Y: 0}: {},
	})
	require.NoError(t, err)
	instance, err := mapf.NewInstance([]mapf.Agent{
		{Name: "a", Start: geometry.Coordinate{X: 0, Y: 0}, Goal: geometry.Coordinate{X: 2, Y: 0}},
	}, m)
	require.NoError(t, err)

	solution := mapf.Solution{
		Statistics: mapf.Statistics{Makespan: 2},
		Schedule: map[string][]geometry.TimedCoordinate{
			"a": {{X: 0, Y: 0, T: 0}, {X: 1, Y: 0, T: 1}, {X: 2, Y: 0, T: 2}},
		},
	}
	announcements := announce.KAhead([]string{"a"}, 5, 2)

	result := experiment.RunBold(context.Background(), instance, solution, announcements, false)

	require.Len(t, result.Attempts, 1)
	require.Equal(t, "a", result.Attempts[0].AttackerName)
	require.Equal(t, geometry.Coordinate{X: 3, Y: 0}, result.Attempts[0].Safe)
}

func TestRunCautiousCapsAtTenAgentsAndTenObstacles(t *testing.T) {
	obstacles := make(map[geometry.Coordinate]struct{}, 15)
	for i := uint16(0); i < 15; i++ {
		obstacles[geometry.Coordinate{X: i, Y: 1}] = struct{}{}
	}
	m, err := mapf.NewMap(geometry.Coordinate{X: 20, Y: 2}, obstacles)
	require.NoError(t, err)

	agents := make([]mapf.Agent, 15)
	schedule := make(map[string][]geometry.TimedCoordinate, 15)
	for i := 0; i < 15; i++ {
		name := string(rune('a' + i))
		agents[i] = mapf.Agent{Name: name, Start: geometry.Coordinate{X: uint16(i), Y: 0}, Goal: geometry.Coordinate{X: uint16(i), Y: 0}}
		schedule[name] = []geometry.TimedCoordinate{{X: uint16(i), Y: 0, T: 0}, {X: uint16(i), Y: 0, T: 1}}
	}
	instance, err := mapf.NewInstance(agents, m)
	require.NoError(t, err)

	solution := mapf.Solution{Statistics: mapf.Statistics{Makespan: 1}, Schedule: schedule}
	names := make([]string, 15)
	for i, a := range agents {
		names[i] = a.Name
	}
	announcements := announce.KAhead(names, 5, 1)

	result := experiment.RunCautious(context.Background(), instance, solution, announcements)

	require.Len(t, result.Attempts, 100)
}
