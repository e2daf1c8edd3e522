package bold

import (
	"github.com/gitsper/announcenet/geometry"
	"github.com/gitsper/announcenet/mapf"
)

// AttemptResult is the outcome of simulating one (attacker, safe cell)
// pair to its makespan.
type AttemptResult struct {
	AttackerName              string              `yaml:"attacker_name"`
	Safe                      geometry.Coordinate `yaml:"safe"`
	Dangerous                 bool                `yaml:"dangerous"`
	Detected                  bool                `yaml:"detected"`
	MaxDeviatedDist           int                 `yaml:"max_deviated_dist"`
	MaxInterObservationTime   int                 `yaml:"max_inter_observation_time"`
	MinInterAnnouncementTime  int                 `yaml:"min_inter_announcement_time"`
	MinLookahead              int                 `yaml:"min_lookahead"`
	AvgLookahead              mapf.Lookahead      `yaml:"avg_lookahead"`
}

// Attempted reports whether the attacker ever deviated from its nominal
// path during the simulation.
func (r AttemptResult) Attempted() bool {
	return r.MaxDeviatedDist > 0
}

// ExperimentResult collects every attempt run across an (attacker, safe
// cell) sweep and exposes the aggregate rates that analyze-attackers and the
// bold plots report on.
type ExperimentResult struct {
	Attempts []AttemptResult `yaml:"attempts"`
}

func (r ExperimentResult) AttemptedCount() int {
	count := 0
	for _, a := range r.Attempts {
		if a.Attempted() {
			count++
		}
	}
	return count
}

func (r ExperimentResult) DangerousCount() int {
	count := 0
	for _, a := range r.Attempts {
		if a.Dangerous {
			count++
		}
	}
	return count
}

func (r ExperimentResult) NonDangerousCount() int {
	return len(r.Attempts) - r.DangerousCount()
}

func (r ExperimentResult) DangerousUndetectedCount() int {
	count := 0
	for _, a := range r.Attempts {
		if a.Dangerous && !a.Detected {
			count++
		}
	}
	return count
}

func (r ExperimentResult) NonDangerousDetectedCount() int {
	count := 0
	for _, a := range r.Attempts {
		if !a.Dangerous && a.Detected {
			count++
		}
	}
	return count
}

// AttackSuccessRate is the fraction of attempts that reached the safe cell.
func (r ExperimentResult) AttackSuccessRate() float64 {
	return float64(r.DangerousCount()) / float64(len(r.Attempts))
}

// AttackAttemptRate is the fraction of attempts where the attacker ever
// deviated at all.
func (r ExperimentResult) AttackAttemptRate() float64 {
	return float64(r.AttemptedCount()) / float64(len(r.Attempts))
}

// MissRate is the fraction of dangerous attempts that went undetected. Its
// second return is false when there were no dangerous attempts to rate.
func (r ExperimentResult) MissRate() (float64, bool) {
	if r.DangerousCount() == 0 {
		return 0, false
	}
	return float64(r.DangerousUndetectedCount()) / float64(r.DangerousCount()), true
}

// FalseAlarmRate is the fraction of non-dangerous attempts that were
// nonetheless detected. Its second return is false when there were no
// non-dangerous attempts to rate.
func (r ExperimentResult) FalseAlarmRate() (float64, bool) {
	if r.NonDangerousCount() == 0 {
		return 0, false
	}
	return float64(r.NonDangerousDetectedCount()) / float64(r.NonDangerousCount()), true
}
