// Package world owns the game state: the resting form, the active
// transition and the input buttons. It is driven once per frame through
// HandleInput, Progress and Render.
package world

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hatch/audio"
	"github.com/pthm-cable/hatch/button"
	"github.com/pthm-cable/hatch/evolution"
	"github.com/pthm-cable/hatch/telemetry"
	"github.com/pthm-cable/hatch/transition"
)

// Pointer is one frame of pointer input in world coordinates.
type Pointer struct {
	X, Y float32
	Down bool
}

// Canvas receives draw calls from Render.
type Canvas interface {
	DrawArt(state evolution.State, alpha float32)
	DrawButton(in evolution.Input, r button.Rect, brightness float32)
}

// Recorder receives session events.
type Recorder interface {
	Record(e telemetry.Event)
}

type nopRecorder struct{}

func (nopRecorder) Record(telemetry.Event) {}

// Options configures a World. Zero values fall back to defaults; a nil
// Volumes uses audio.DefaultVolumes, so explicit zero volumes stay silent.
type Options struct {
	Durations transition.Durations
	Volumes   *audio.Volumes
	Layout    map[evolution.Input]button.Rect
	Rand      *rand.Rand
	Sink      audio.Sink
	Recorder  Recorder
}

// DefaultLayout places the three growth buttons along the bottom of the
// 2480x3508 canvas, with restart sharing the middle slot.
func DefaultLayout() map[evolution.Input]button.Rect {
	return map[evolution.Input]button.Rect{
		evolution.Sun:       {X: 240, Y: 2900, W: 520, H: 520},
		evolution.Water:     {X: 980, Y: 2900, W: 520, H: 520},
		evolution.Arrowhead: {X: 1720, Y: 2900, W: 520, H: 520},
		evolution.Restart:   {X: 980, Y: 2900, W: 520, H: 520},
	}
}

// World is the game aggregate.
type World struct {
	resting evolution.State
	active  *transition.Transition
	clock   float32

	// Buttons are entities in an ECS world, one per input.
	registry     *ecs.World
	buttonMap    *ecs.Map1[button.Button]
	buttonFilter *ecs.Filter1[button.Button]
	entities     [evolution.InputCount]ecs.Entity

	durations transition.Durations
	cues      *audio.Scheduler
	recorder  Recorder
}

// New creates a world resting at the initial form with the initial
// buttons enabled. A layout missing an input or a duration table with a
// non-positive entry panics.
func New(opts Options) *World {
	if opts.Durations == (transition.Durations{}) {
		opts.Durations = transition.DefaultDurations()
	}
	if err := opts.Durations.Validate(); err != nil {
		panic(fmt.Sprintf("world: %v", err))
	}
	volumes := audio.DefaultVolumes()
	if opts.Volumes != nil {
		volumes = *opts.Volumes
	}
	if opts.Layout == nil {
		opts.Layout = DefaultLayout()
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}

	registry := ecs.NewWorld()
	wd := &World{
		resting:      evolution.Initial,
		registry:     registry,
		buttonMap:    ecs.NewMap1[button.Button](registry),
		buttonFilter: ecs.NewFilter1[button.Button](registry),
		durations:    opts.Durations,
		cues:         audio.NewScheduler(opts.Sink, opts.Rand, volumes),
		recorder:     opts.Recorder,
	}

	for _, in := range evolution.AllInputs() {
		r, ok := opts.Layout[in]
		if !ok {
			panic(fmt.Sprintf("world: layout has no button for input %s", in))
		}
		b := button.New(in, r)
		wd.entities[in] = wd.buttonMap.NewEntity(&b)
	}
	wd.applyButtons()
	return wd
}

// Resting returns the form the creature is resting in.
func (w *World) Resting() evolution.State { return w.resting }

// Active returns the transition in progress, or nil.
func (w *World) Active() *transition.Transition { return w.active }

// Clock returns the seconds accumulated by Progress.
func (w *World) Clock() float32 { return w.clock }

// Enabled reports whether the button for in is enabled.
func (w *World) Enabled(in evolution.Input) bool {
	return w.buttonMap.Get(w.entities[in]).Enabled()
}

// EnabledButtons returns the enabled buttons in input order.
func (w *World) EnabledButtons() []button.Button {
	var out []button.Button
	query := w.buttonFilter.Query()
	for query.Next() {
		b := query.Get()
		if b.Enabled() {
			out = append(out, *b)
		}
	}
	return out
}

// HandleInput feeds one pointer sample to the buttons and applies the
// first click. Nothing is evaluated while a transition is running.
func (w *World) HandleInput(p Pointer) {
	if w.active != nil {
		return
	}

	clicked := -1
	query := w.buttonFilter.Query()
	for query.Next() {
		b := query.Get()
		if b.Update(p.X, p.Y, p.Down) && clicked < 0 {
			clicked = int(b.Input)
		}
	}
	if clicked >= 0 {
		w.click(evolution.Input(clicked))
	}
}

func (w *World) click(in evolution.Input) {
	w.recorder.Record(telemetry.NewClickEvent(w.clock, w.resting, in))

	step, ok := evolution.Lookup(w.resting, in)
	if !ok {
		panic(fmt.Sprintf("world: click on %s while resting at %s", in, w.resting))
	}
	if step.Effect == evolution.EffectReset {
		w.restart()
		return
	}

	w.install(transition.Start(w.resting, in, w.durations))
}

func (w *World) install(t *transition.Transition) {
	w.active = t
	w.applyButtons()
	w.recorder.Record(telemetry.NewTransitionStartEvent(w.clock, t))
}

func (w *World) restart() {
	from := w.resting
	w.resting = evolution.Initial
	w.active = nil
	w.applyButtons()
	w.recorder.Record(telemetry.NewRestartEvent(w.clock, from))
}

// Progress advances the active transition by dt seconds. Every stage that
// completes within dt is finalized in order, with its own cue, and the
// remaining time carries into the next stage.
func (w *World) Progress(dt float32) {
	if dt < 0 {
		dt = 0
	}
	w.clock += dt

	for w.active != nil {
		t := w.active
		dt = t.Advance(dt)
		if t.SoundTriggered() {
			cue := w.cues.Fire(t)
			w.recorder.Record(telemetry.NewCueEvent(w.clock, t, cue))
		}
		if !t.Completed() {
			return
		}
		w.finalize(t)
	}
}

func (w *World) finalize(t *transition.Transition) {
	w.resting = t.Goal()
	w.active = nil
	w.recorder.Record(telemetry.NewStageCompleteEvent(w.clock, t))

	if next := t.FollowUp(); next != nil {
		w.install(next)
		return
	}
	w.applyButtons()
}

// applyButtons enables exactly the inputs valid at the resting form, or
// none while a transition runs.
func (w *World) applyButtons() {
	query := w.buttonFilter.Query()
	for query.Next() {
		b := query.Get()
		b.SetEnabled(w.active == nil && evolution.Accepts(w.resting, b.Input))
	}
}

// Render draws the creature art and the enabled buttons.
func (w *World) Render(c Canvas) {
	if w.active == nil {
		c.DrawArt(w.resting, 1)
	} else {
		cur, goal := w.active.Blend()
		if cur > 0 {
			c.DrawArt(w.active.From(), cur)
		}
		if goal > 0 {
			c.DrawArt(w.active.Goal(), goal)
		}
	}

	query := w.buttonFilter.Query()
	for query.Next() {
		b := query.Get()
		if b.Enabled() {
			c.DrawButton(b.Input, b.Rect, b.Brightness())
		}
	}
}
