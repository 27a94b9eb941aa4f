package transition

import (
	"fmt"

	"github.com/pthm-cable/hatch/evolution"
)

// regularCueDivisor places the regular sound cue at total/1.9, a little
// past the midpoint cut.
const regularCueDivisor = 1.9

// Transition is one timed stage moving from a resting form to a goal form.
type Transition struct {
	from      evolution.State
	goal      evolution.State
	kind      Kind
	durations Durations

	elapsed float32
	total   float32

	soundTrigger bool // true only for the Advance call that crossed the threshold
	soundFired   bool
}

// New creates a transition from one form to another.
func New(from, goal evolution.State, kind Kind, d Durations) *Transition {
	return &Transition{
		from:      from,
		goal:      goal,
		kind:      kind,
		durations: d,
		total:     d.Total(kind),
	}
}

// Start creates the transition caused by clicking in while resting at from.
// Reset edges and pairs outside the evolution table panic: restart never
// animates, and disabled inputs must never reach here.
func Start(from evolution.State, in evolution.Input, d Durations) *Transition {
	step, ok := evolution.Lookup(from, in)
	if !ok {
		panic(fmt.Sprintf("transition: no edge for state %s with input %s", from, in))
	}
	switch step.Effect {
	case evolution.EffectCrack:
		return New(from, step.Goal, EggCracking(in), d)
	case evolution.EffectRegular:
		return New(from, step.Goal, Regular(), d)
	default:
		panic(fmt.Sprintf("transition: %s from %s with %s does not animate", step.Effect, from, in))
	}
}

// From returns the form being left.
func (t *Transition) From() evolution.State { return t.from }

// Goal returns the form being reached.
func (t *Transition) Goal() evolution.State { return t.goal }

// Kind returns the transition kind.
func (t *Transition) Kind() Kind { return t.kind }

// Elapsed returns the seconds spent so far, never more than Total.
func (t *Transition) Elapsed() float32 { return t.elapsed }

// Total returns the full duration in seconds.
func (t *Transition) Total() float32 { return t.total }

// Fraction returns progress in [0, 1].
func (t *Transition) Fraction() float32 {
	if t.total <= 0 {
		return 1
	}
	return t.elapsed / t.total
}

// Completed reports whether the transition has run its full duration.
func (t *Transition) Completed() bool {
	return t.elapsed >= t.total
}

// SoundTriggered reports whether the most recent Advance crossed the cue threshold.
func (t *Transition) SoundTriggered() bool { return t.soundTrigger }

// SoundFired reports whether the cue threshold has ever been crossed.
func (t *Transition) SoundFired() bool { return t.soundFired }

func (t *Transition) cueThreshold() float32 {
	if t.kind.cracking {
		return t.total
	}
	return t.total / regularCueDivisor
}

// Advance adds dt seconds, updates the sound trigger and clamps to Total.
// It returns the part of dt that went past completion (zero while running).
func (t *Transition) Advance(dt float32) (leftover float32) {
	if dt < 0 {
		dt = 0
	}
	t.elapsed += dt

	t.soundTrigger = false
	if !t.soundFired && t.elapsed >= t.cueThreshold() {
		t.soundTrigger = true
		t.soundFired = true
	}

	if t.elapsed >= t.total {
		leftover = t.elapsed - t.total
		t.elapsed = t.total
	}
	return leftover
}

// FollowUp returns the stage that chains after this one once it completes:
// crack one leads to crack two with the same kind, crack two leads to the
// hatchling as a regular transition. Everything else has no follow-up.
func (t *Transition) FollowUp() *Transition {
	if next, ok := evolution.NextCrack(t.goal); ok {
		return New(t.goal, next, t.kind, t.durations)
	}
	if evolution.CrackStage(t.goal) == 2 {
		if !t.kind.cracking {
			panic(fmt.Sprintf("transition: reached %s without a crack kind", t.goal))
		}
		h, ok := evolution.Hatchling(t.goal, t.kind.input)
		if !ok {
			panic(fmt.Sprintf("transition: no hatchling from %s started by %s", t.goal, t.kind.input))
		}
		return New(t.goal, h, Regular(), t.durations)
	}
	return nil
}

// Progress advances by dt. When the transition completes it returns the
// follow-up stage (if any) with the leftover time already applied once;
// otherwise it returns nil. Callers that must not skip stages under very
// large steps should loop on Advance and FollowUp instead.
func (t *Transition) Progress(dt float32) *Transition {
	leftover := t.Advance(dt)
	if !t.Completed() {
		return nil
	}
	next := t.FollowUp()
	if next != nil {
		next.Advance(leftover)
	}
	return next
}
