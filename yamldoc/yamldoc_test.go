package yamldoc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gitsper/announcenet/bold"
	"github.com/gitsper/announcenet/cautious"
	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/yamldoc"
)

func TestLoadInstanceRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "instance.yaml")
	doc := `
agents:
  - name: a
    start: {x: 0, y: 0}
    goal: {x: 2, y: 0}
map:
  dimensions: {x: 5, y: 5}
  obstacles:
    - {x: 2, y: 2}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	instance, err := yamldoc.LoadInstance(path)
	require.NoError(t, err)
	require.Len(t, instance.Agents, 1)
	require.Equal(t, "a", instance.Agents[0].Name)
	require.Equal(t, geometry.Coordinate{X: 5, Y: 5}, instance.Map.Dimensions)
	_, ok := instance.Map.Obstacles[geometry.Coordinate{X: 2, Y: 2}]
	require.True(t, ok)
}

func TestLoadSolutionExtendsStayInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solution.yaml")
	doc := `
statistics:
  cost: 2
  makespan: 1
  runtime: 0.1
  highLevelExpanded: 0
  lowLevelExpanded: 0
schedule:
  a:
    - {x: 0, y: 0, t: 0}
    - {x: 1, y: 0, t: 1}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	solution, err := yamldoc.LoadSolution(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(solution.Schedule["a"]), solution.Statistics.Makespan+2)
}

func TestSaveBoldResultRefusesOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.yaml")
	result := bold.ExperimentResult{Attempts: []bold.AttemptResult{
		{AttackerName: "a", Safe: geometry.Coordinate{X: 1, Y: 1}},
	}}

	require.NoError(t, yamldoc.SaveBoldResult(path, result, false))
	err := yamldoc.SaveBoldResult(path, result, false)
	require.ErrorIs(t, err, yamldoc.ErrOutputExists)
	require.NoError(t, yamldoc.SaveBoldResult(path, result, true))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var roundTripped bold.ExperimentResult
	require.NoError(t, yaml.Unmarshal(raw, &roundTripped))
	require.Len(t, roundTripped.Attempts, 1)
	require.Equal(t, "a", roundTripped.Attempts[0].AttackerName)
}

func TestSaveCautiousResultRefusesOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.yaml")
	result := cautious.ExperimentResult{Attempts: []cautious.AttemptResult{
		{AttackerName: "a", Safe: geometry.Coordinate{X: 3, Y: 3}, Secured: true},
	}}

	require.NoError(t, yamldoc.SaveCautiousResult(path, result, false))
	err := yamldoc.SaveCautiousResult(path, result, false)
	require.ErrorIs(t, err, yamldoc.ErrOutputExists)
	require.NoError(t, yamldoc.SaveCautiousResult(path, result, true))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var roundTripped cautious.ExperimentResult
	require.NoError(t, yaml.Unmarshal(raw, &roundTripped))
	require.True(t, roundTripped.Attempts[0].Secured)
}

func TestLoadAnnouncementsRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "announcements.yaml")
	doc := `
schedule:
  a: [2, 2, 3]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	announcements, err := yamldoc.LoadAnnouncements(path)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 3}, announcements.Schedule["a"])
}
