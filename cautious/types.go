package cautious

import (
	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/mapf"
)

// AttemptResult is the outcome of analyzing one (attacker, safe cell) pair.
type AttemptResult struct {
	AttackerName              string              `yaml:"attacker_name"`
	Safe                      geometry.Coordinate `yaml:"safe"`
	MaxInterObservationTime   int                 `yaml:"max_inter_observation_time"`
	MinInterAnnouncementTime  int                 `yaml:"min_inter_announcement_time"`
	MinLookahead              int                 `yaml:"min_lookahead"`
	AvgLookahead              mapf.Lookahead      `yaml:"avg_lookahead"`
	Secured                   bool                `yaml:"secured"`
}

// ExperimentResult collects every attempt run across an (attacker, safe
// cell) sweep.
type ExperimentResult struct {
	Attempts []AttemptResult `yaml:"attempts"`
}

func (r ExperimentResult) SecureCount() int {
	count := 0
	for _, a := range r.Attempts {
		if a.Secured {
			count++
		}
	}
	return count
}

// SecureRate is the fraction of attempts found secure.
func (r ExperimentResult) SecureRate() float64 {
	return float64(r.SecureCount()) / float64(len(r.Attempts))
}
