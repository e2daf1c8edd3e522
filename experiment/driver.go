package experiment

import (
	"context"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/gitsper/announcenet/bold"
	"github.com/gitsper/announcenet/cautious"
	"github.com/gitsper/announcenet/mapf"
)

// RunBold simulates every candidate (attacker, safe cell) pair with the
// bold attacker and collects the results. Attempts run concurrently,
// bounded to GOMAXPROCS workers; ctx cancellation stops dispatching new
// attempts but does not abort ones already in flight (an attempt never
// blocks, so there is nothing useful to cancel mid-flight).
func RunBold(ctx context.Context, instance mapf.Instance, solution mapf.Solution, announcements mapf.Announcements, mitigation bool) bold.ExperimentResult {
	pairs := candidatePairs(instance)
	results := make([]bold.AttemptResult, len(pairs))
	bar := progressbar.Default(int64(len(pairs)), "bold attempts")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			results[i] = bold.Simulate(instance, solution, announcements, p.agent.Name, p.safe, mitigation)
			return bar.Add(1)
		})
	}
	_ = g.Wait()

	return bold.ExperimentResult{Attempts: results}
}

// RunCautious analyzes every candidate (attacker, safe cell) pair with the
// cautious attacker and collects the results, under the same concurrency
// policy as RunBold.
func RunCautious(ctx context.Context, instance mapf.Instance, solution mapf.Solution, announcements mapf.Announcements) cautious.ExperimentResult {
	pairs := candidatePairs(instance)
	results := make([]cautious.AttemptResult, len(pairs))
	bar := progressbar.Default(int64(len(pairs)), "cautious attempts")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			results[i] = cautious.Analyze(instance, solution, announcements, p.agent.Name, p.safe)
			return bar.Add(1)
		})
	}
	_ = g.Wait()

	return cautious.ExperimentResult{Attempts: results}
}
