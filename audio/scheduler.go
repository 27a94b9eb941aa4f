package audio

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/hatch/evolution"
	"github.com/pthm-cable/hatch/transition"
)

// Sink plays a sound once at the given volume.
type Sink interface {
	Play(cue Cue, volume float32)
}

// Nop is a Sink that discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue, float32) {}

// Scheduler chooses the cue for a transition whose sound trigger fired
// and sends it to a Sink.
type Scheduler struct {
	sink    Sink
	rng     *rand.Rand
	volumes Volumes
}

// NewScheduler creates a scheduler. The rng drives the choice between the
// two scale cues; pass a seeded source for reproducible sessions.
func NewScheduler(sink Sink, rng *rand.Rand, volumes Volumes) *Scheduler {
	if sink == nil {
		sink = Nop{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Scheduler{sink: sink, rng: rng, volumes: volumes}
}

// Select returns the cue for t. Regular transitions pick a scale cue at
// random; egg-cracking stages pick the crack cue matching the goal stage.
func (s *Scheduler) Select(t *transition.Transition) Cue {
	if !t.Kind().IsCracking() {
		if s.rng.Intn(2) == 0 {
			return CueScale1
		}
		return CueScale2
	}
	switch evolution.CrackStage(t.Goal()) {
	case 1:
		return CueCrack1
	case 2:
		return CueCrack2
	default:
		panic(fmt.Sprintf("audio: cracking transition to non-crack form %s", t.Goal()))
	}
}

// Fire selects and plays the cue for t, returning it.
func (s *Scheduler) Fire(t *transition.Transition) Cue {
	cue := s.Select(t)
	s.sink.Play(cue, s.volumes.For(cue))
	return cue
}
