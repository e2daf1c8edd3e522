package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/gitsper/announcenet/yamldoc"
)

func writeTestFixtures(t *testing.T, dir string) (instancePath, solutionPath string) {
	t.Helper()
	instancePath = filepath.Join(dir, "instance.yaml")
	require.NoError(t, os.WriteFile(instancePath, []byte(`
agents:
  - name: a
    start: {x: 0, y: 0}
    goal: {x: 2, y: 0}
map:
  dimensions: {x: 5, y: 5}
  obstacles:
    - {x: 2, y: 2}
`), 0o644))

	solutionPath = filepath.Join(dir, "solution.yaml")
	require.NoError(t, os.WriteFile(solutionPath, []byte(`
statistics:
  cost: 2
  makespan: 2
  runtime: 0.1
  highLevelExpanded: 0
  lowLevelExpanded: 0
schedule:
  a:
    - {x: 0, y: 0, t: 0}
    - {x: 1, y: 0, t: 1}
    - {x: 2, y: 0, t: 2}
`), 0o644))
	return instancePath, solutionPath
}

func testApp() *cli.App {
	return &cli.App{
		Name: "announcenet",
		// Keep cli from calling os.Exit on an ExitCoder so tests can
		// inspect the error app.Run returns.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			analyzeAttackersCommand(),
			generatePlotsCommand(),
			computeSecureAnnouncementsCommand(),
		},
	}
}

func TestAnalyzeAttackersBoldKaheadWritesResult(t *testing.T) {
	dir := t.TempDir()
	instancePath, solutionPath := writeTestFixtures(t, dir)
	outputPath := filepath.Join(dir, "result.yaml")

	app := testApp()
	err := app.Run([]string{
		"announcenet", "analyze-attackers",
		"-t", "bold",
		"-m", instancePath,
		"-s", solutionPath,
		"-a", "kahead",
		"-k", "1",
		"-o", outputPath,
	})
	require.NoError(t, err)

	result, err := yamldoc.LoadBoldResult(outputPath)
	require.NoError(t, err)
	require.Len(t, result.Attempts, 1)
}

func TestAnalyzeAttackersSkipLargeAbortsOnOversizedLookahead(t *testing.T) {
	dir := t.TempDir()
	instancePath, solutionPath := writeTestFixtures(t, dir)
	outputPath := filepath.Join(dir, "result.yaml")

	app := testApp()
	err := app.Run([]string{
		"announcenet", "analyze-attackers",
		"-t", "bold",
		"-m", instancePath,
		"-s", solutionPath,
		"-a", "kahead",
		"-k", "100",
		"-x",
		"-o", outputPath,
	})
	require.Error(t, err)
	_, statErr := os.Stat(outputPath)
	require.True(t, os.IsNotExist(statErr))
}

func TestAnalyzeAttackersRequiresLookaheadForKahead(t *testing.T) {
	dir := t.TempDir()
	instancePath, solutionPath := writeTestFixtures(t, dir)

	app := testApp()
	err := app.Run([]string{
		"announcenet", "analyze-attackers",
		"-t", "bold",
		"-m", instancePath,
		"-s", solutionPath,
		"-a", "kahead",
		"-o", filepath.Join(dir, "result.yaml"),
	})
	require.Error(t, err)
	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok)
	require.Equal(t, 1, exitErr.ExitCode())
}

func TestAnalyzeAttackersRequiresLookaheadForKgrouped(t *testing.T) {
	dir := t.TempDir()
	instancePath, solutionPath := writeTestFixtures(t, dir)

	app := testApp()
	err := app.Run([]string{
		"announcenet", "analyze-attackers",
		"-t", "bold",
		"-m", instancePath,
		"-s", solutionPath,
		"-a", "kgrouped",
		"-o", filepath.Join(dir, "result.yaml"),
	})
	require.Error(t, err)
	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok)
	require.Equal(t, 1, exitErr.ExitCode())
}

func TestAnalyzeAttackersRejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	instancePath, solutionPath := writeTestFixtures(t, dir)

	app := testApp()
	err := app.Run([]string{
		"announcenet", "analyze-attackers",
		"-t", "reckless",
		"-m", instancePath,
		"-s", solutionPath,
		"-a", "kahead",
		"-k", "1",
		"-o", filepath.Join(dir, "result.yaml"),
	})
	require.Error(t, err)
}

func TestComputeSecureAnnouncementsExitsNonzero(t *testing.T) {
	app := testApp()
	err := app.Run([]string{"announcenet", "compute-secure-announcements"})
	require.Error(t, err)
	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok)
	require.Equal(t, 1, exitErr.ExitCode())
}
