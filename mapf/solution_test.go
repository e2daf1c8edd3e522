package mapf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/mapf"
)

func twoAgentInstance() mapf.Instance {
	m, _ := mapf.NewMap(geometry.Coordinate{X: 5, Y: 5}, nil)
	instance, _ := mapf.NewInstance([]mapf.Agent{
		{Name: "a", Start: geometry.Coordinate{X: 0, Y: 0}, Goal: geometry.Coordinate{X: 2, Y: 0}},
		{Name: "b", Start: geometry.Coordinate{X: 4, Y: 4}, Goal: geometry.Coordinate{X: 2, Y: 4}},
	}, m)
	return instance
}

func TestExtendStayInPlace(t *testing.T) {
	sol := mapf.Solution{
		Statistics: mapf.Statistics{Makespan: 2},
		Schedule: map[string][]geometry.TimedCoordinate{
			"a": {{X: 0, Y: 0, T: 0}, {X: 1, Y: 0, T: 1}},
		},
	}
	sol.ExtendStayInPlace()
	require.GreaterOrEqual(t, len(sol.Schedule["a"]), sol.Statistics.Makespan+2)
	path := sol.Schedule["a"]
	last := path[len(path)-1]
	require.Equal(t, geometry.Coordinate{X: 1, Y: 0}, last.Coordinate())
}

func TestSolutionValidRejectsVertexConflict(t *testing.T) {
	instance := twoAgentInstance()
	sol := mapf.Solution{
		Statistics: mapf.Statistics{Makespan: 1},
		Schedule: map[string][]geometry.TimedCoordinate{
			"a": {{X: 0, Y: 1, T: 0}, {X: 1, Y: 1, T: 1}},
			"b": {{X: 1, Y: 0, T: 0}, {X: 1, Y: 1, T: 1}},
		},
	}
	require.False(t, sol.Valid(instance))
}

func TestSolutionValidRejectsEdgeConflict(t *testing.T) {
	instance := twoAgentInstance()
	sol := mapf.Solution{
		Statistics: mapf.Statistics{Makespan: 1},
		Schedule: map[string][]geometry.TimedCoordinate{
			"a": {{X: 0, Y: 0, T: 0}, {X: 1, Y: 0, T: 1}},
			"b": {{X: 1, Y: 0, T: 0}, {X: 0, Y: 0, T: 1}},
		},
	}
	require.False(t, sol.Valid(instance))
}

func TestSolutionValidAcceptsIndependentPaths(t *testing.T) {
	instance := twoAgentInstance()
	sol := mapf.Solution{
		Statistics: mapf.Statistics{Makespan: 2},
		Schedule: map[string][]geometry.TimedCoordinate{
			"a": {{X: 0, Y: 0, T: 0}, {X: 1, Y: 0, T: 1}, {X: 2, Y: 0, T: 2}},
			"b": {{X: 4, Y: 4, T: 0}, {X: 3, Y: 4, T: 1}, {X: 2, Y: 4, T: 2}},
		},
	}
	require.True(t, sol.Valid(instance))
}

func TestMaxInterObservationTimeNoNeighbors(t *testing.T) {
	sol := mapf.Solution{
		Statistics: mapf.Statistics{Makespan: 2},
		Schedule: map[string][]geometry.TimedCoordinate{
			"a": {{X: 0, Y: 0, T: 0}, {X: 1, Y: 0, T: 1}, {X: 2, Y: 0, T: 2}},
			"b": {{X: 4, Y: 4, T: 0}, {X: 4, Y: 4, T: 1}, {X: 4, Y: 4, T: 2}},
		},
	}
	require.Equal(t, 3, sol.MaxInterObservationTime("a"))
}

func TestMaxInterObservationTimeAlwaysAdjacent(t *testing.T) {
	sol := mapf.Solution{
		Statistics: mapf.Statistics{Makespan: 2},
		Schedule: map[string][]geometry.TimedCoordinate{
			"a": {{X: 0, Y: 0, T: 0}, {X: 1, Y: 0, T: 1}, {X: 2, Y: 0, T: 2}},
			"b": {{X: 0, Y: 1, T: 0}, {X: 1, Y: 1, T: 1}, {X: 2, Y: 1, T: 2}},
		},
	}
	require.Equal(t, 1, sol.MaxInterObservationTime("a"))
}
