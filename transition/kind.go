// Package transition advances the timed animations that move the creature
// from one evolutionary form to the next.
package transition

import (
	"fmt"

	"github.com/pthm-cable/hatch/evolution"
)

// Kind distinguishes regular crossfades from egg-cracking stages.
// An egg-cracking kind remembers the input that started the crack so the
// second stage knows which hatchling to produce.
type Kind struct {
	cracking bool
	input    evolution.Input
}

// Regular returns the crossfade kind.
func Regular() Kind {
	return Kind{}
}

// EggCracking returns the crack kind started by in.
func EggCracking(in evolution.Input) Kind {
	return Kind{cracking: true, input: in}
}

// IsCracking reports whether k is an egg-cracking stage.
func (k Kind) IsCracking() bool {
	return k.cracking
}

// Input returns the input carried by an egg-cracking kind.
func (k Kind) Input() evolution.Input {
	return k.input
}

func (k Kind) String() string {
	if k.cracking {
		return fmt.Sprintf("egg_cracking(%s)", k.input)
	}
	return "regular"
}

// MarshalCSV writes the kind name.
func (k Kind) MarshalCSV() (string, error) {
	return k.String(), nil
}

// Durations is the per-kind duration table in seconds.
type Durations struct {
	Regular  float32
	Cracking float32
}

// DefaultDurations returns the stock timings: a slow crossfade and a short crack.
func DefaultDurations() Durations {
	return Durations{
		Regular:  3.8,
		Cracking: 1.2,
	}
}

// Total returns the full duration of a transition of kind k.
func (d Durations) Total(k Kind) float32 {
	if k.cracking {
		return d.Cracking
	}
	return d.Regular
}

// Validate checks that every duration is positive.
func (d Durations) Validate() error {
	if d.Regular <= 0 {
		return fmt.Errorf("regular duration must be positive, got %v", d.Regular)
	}
	if d.Cracking <= 0 {
		return fmt.Errorf("cracking duration must be positive, got %v", d.Cracking)
	}
	return nil
}
