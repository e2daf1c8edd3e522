package mapf

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Lookahead is a finite, totally-ordered average-lookahead value. It
// forbids NaN and Inf by construction so that averages of lookaheads can be
// compared, sorted, and used as map keys without the usual floating-point
// caveats — the representation the design notes call for in place of a
// bare float64.
type Lookahead struct {
	value float64
}

// NewLookahead constructs a Lookahead from v. It panics if v is NaN or
// infinite: average lookahead is always a ratio of non-negative integers
// over a positive count, so a non-finite result indicates a bug in the
// caller, not a representable edge case.
func NewLookahead(v float64) Lookahead {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("mapf: non-finite lookahead %v", v))
	}
	return Lookahead{value: v}
}

// Float64 returns the underlying value.
func (l Lookahead) Float64() float64 {
	return l.value
}

// Less reports whether l orders strictly before other.
func (l Lookahead) Less(other Lookahead) bool {
	return l.value < other.value
}

// String implements fmt.Stringer.
func (l Lookahead) String() string {
	return fmt.Sprintf("%g", l.value)
}

// MarshalYAML exposes the underlying float so Lookahead round-trips
// through result documents instead of marshaling as an empty mapping, the
// same exported-intermediate pattern Map uses for Obstacles.
func (l Lookahead) MarshalYAML() (interface{}, error) {
	return l.value, nil
}

// UnmarshalYAML rebuilds Lookahead from its underlying float, rejecting
// NaN/Inf the same way NewLookahead does rather than panicking on a
// malformed document.
func (l *Lookahead) UnmarshalYAML(value *yaml.Node) error {
	var v float64
	if err := value.Decode(&v); err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("mapf: non-finite lookahead %v", v)
	}
	l.value = v
	return nil
}
