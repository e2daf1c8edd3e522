package plotting

import (
	"sort"

	"gonum.org/v1/plot/plotter"

	"github.com/gitsper/announcenet/bold"
	"github.com/gitsper/announcenet/cautious"
)

// bucketMeans buckets samples by an integer key (fixed lookahead,
// inter-announcement time, inter-observation time) and reduces each
// bucket to its mean, returning points sorted by key ascending.
type bucketMeans map[int][]float64

func (b bucketMeans) add(key int, value float64) {
	b[key] = append(b[key], value)
}

func (b bucketMeans) points() plotter.XYs {
	keys := make([]int, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	pts := make(plotter.XYs, len(keys))
	for i, k := range keys {
		pts[i] = plotter.XY{X: float64(k), Y: mean(b[k])}
	}
	return pts
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// boldSeries holds the four balanced-attacker rates the bold plots track,
// each bucketed against a different x-axis.
type boldSeries struct {
	success bucketMeans
	attempt bucketMeans
	miss    bucketMeans
	alarm   bucketMeans
}

func newBoldSeries() *boldSeries {
	return &boldSeries{
		success: bucketMeans{},
		attempt: bucketMeans{},
		miss:    bucketMeans{},
		alarm:   bucketMeans{},
	}
}

// addBold records one bold experiment result under the bucket key derived
// by keyOf from the result's representative attempt.
func (s *boldSeries) addBold(result bold.ExperimentResult, keyOf func(bold.AttemptResult) int) {
	if len(result.Attempts) == 0 {
		return
	}
	key := keyOf(result.Attempts[0])
	s.success.add(key, result.AttackSuccessRate())
	s.attempt.add(key, result.AttackAttemptRate())
	if missRate, ok := result.MissRate(); ok {
		s.miss.add(key, missRate)
	}
	if falseAlarmRate, ok := result.FalseAlarmRate(); ok {
		s.alarm.add(key, falseAlarmRate)
	}
}

// secureSeries holds the cautious analyzer's secure rate bucketed against
// a single x-axis.
type secureSeries struct {
	secure bucketMeans
}

func newSecureSeries() *secureSeries {
	return &secureSeries{secure: bucketMeans{}}
}

func (s *secureSeries) addCautious(result cautious.ExperimentResult, keyOf func(cautious.AttemptResult) int) {
	if len(result.Attempts) == 0 {
		return
	}
	key := keyOf(result.Attempts[0])
	s.secure.add(key, result.SecureRate())
}

// robustPoints collects one (avgLookahead, rate) scatter point per bold
// result document, since the robust strategy yields a continuous
// per-experiment average lookahead rather than a shared discrete key.
type robustPoints struct {
	success plotter.XYs
	attempt plotter.XYs
	miss    plotter.XYs
	alarm   plotter.XYs
}

func newRobustPoints() *robustPoints {
	return &robustPoints{}
}

func (r *robustPoints) addBold(result bold.ExperimentResult) {
	if len(result.Attempts) == 0 {
		return
	}
	x := result.Attempts[0].AvgLookahead.Float64()
	r.success = append(r.success, plotter.XY{X: x, Y: result.AttackSuccessRate()})
	r.attempt = append(r.attempt, plotter.XY{X: x, Y: result.AttackAttemptRate()})
	if missRate, ok := result.MissRate(); ok {
		r.miss = append(r.miss, plotter.XY{X: x, Y: missRate})
	}
	if falseAlarmRate, ok := result.FalseAlarmRate(); ok {
		r.alarm = append(r.alarm, plotter.XY{X: x, Y: falseAlarmRate})
	}
}
