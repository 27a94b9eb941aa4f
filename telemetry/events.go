// Package telemetry records what happened during a play session and how
// fast the frames ran.
package telemetry

import (
	"github.com/pthm-cable/hatch/audio"
	"github.com/pthm-cable/hatch/evolution"
	"github.com/pthm-cable/hatch/transition"
)

// EventType identifies telemetry events.
type EventType uint8

const (
	EventClick EventType = iota
	EventTransitionStart
	EventStageComplete
	EventCue
	EventRestart

	eventTypeCount
)

func (t EventType) String() string {
	switch t {
	case EventClick:
		return "click"
	case EventTransitionStart:
		return "transition_start"
	case EventStageComplete:
		return "stage_complete"
	case EventCue:
		return "cue"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is a single session event.
type Event struct {
	Seq   int
	Clock float32 // session seconds
	Type  EventType
	From  evolution.State
	Goal  evolution.State

	// Optional fields depending on event type
	Input evolution.Input // click
	Kind  transition.Kind // transition start, stage complete, cue
	Cue   audio.Cue       // cue
}

// NewClickEvent creates a click event on a resting form.
func NewClickEvent(clock float32, resting evolution.State, in evolution.Input) Event {
	return Event{
		Type:  EventClick,
		Clock: clock,
		From:  resting,
		Goal:  resting,
		Input: in,
	}
}

// NewTransitionStartEvent creates an event for a newly installed stage.
func NewTransitionStartEvent(clock float32, t *transition.Transition) Event {
	return Event{
		Type:  EventTransitionStart,
		Clock: clock,
		From:  t.From(),
		Goal:  t.Goal(),
		Kind:  t.Kind(),
	}
}

// NewStageCompleteEvent creates an event for a finished stage.
func NewStageCompleteEvent(clock float32, t *transition.Transition) Event {
	return Event{
		Type:  EventStageComplete,
		Clock: clock,
		From:  t.From(),
		Goal:  t.Goal(),
		Kind:  t.Kind(),
	}
}

// NewCueEvent creates an event for a sound cue played by a stage.
func NewCueEvent(clock float32, t *transition.Transition, cue audio.Cue) Event {
	return Event{
		Type:  EventCue,
		Clock: clock,
		From:  t.From(),
		Goal:  t.Goal(),
		Kind:  t.Kind(),
		Cue:   cue,
	}
}

// NewRestartEvent creates a restart event from a terminal form.
func NewRestartEvent(clock float32, from evolution.State) Event {
	return Event{
		Type:  EventRestart,
		Clock: clock,
		From:  from,
		Goal:  evolution.Initial,
		Input: evolution.Restart,
	}
}

// EventRecord is the flat CSV row for an Event.
type EventRecord struct {
	Seq   int     `csv:"seq"`
	Clock float32 `csv:"clock"`
	Type  string  `csv:"type"`
	From  string  `csv:"from"`
	Goal  string  `csv:"goal"`
	Input string  `csv:"input"`
	Kind  string  `csv:"kind"`
	Cue   string  `csv:"cue"`
}

// Record flattens e into a CSV row, leaving unused optional fields empty.
func (e Event) Record() EventRecord {
	r := EventRecord{
		Seq:   e.Seq,
		Clock: e.Clock,
		Type:  e.Type.String(),
		From:  e.From.String(),
		Goal:  e.Goal.String(),
	}
	switch e.Type {
	case EventClick, EventRestart:
		r.Input = e.Input.String()
	case EventTransitionStart, EventStageComplete:
		r.Kind = e.Kind.String()
	case EventCue:
		r.Kind = e.Kind.String()
		r.Cue = e.Cue.String()
	}
	return r
}
