package main

import (
	"math/rand"

	"github.com/pthm-cable/hatch/audio"
	"github.com/pthm-cable/hatch/autoplay"
	"github.com/pthm-cable/hatch/evolution"
	"github.com/pthm-cable/hatch/telemetry"
	"github.com/pthm-cable/hatch/world"
)

// runResult summarizes one scripted session.
type runResult struct {
	Seed      int64   `csv:"seed"`
	Frames    int     `csv:"frames"`
	Clicks    int     `csv:"clicks"`
	Rounds    int     `csv:"rounds"` // terminal forms reached
	Restarts  int     `csv:"restarts"`
	MeanRound float64 `csv:"mean_round_sec"`

	roundSecs []float64
	terminals map[evolution.State]int
}

// runSession plays frames fixed steps of dt with the autoplay bot.
func runSession(opts world.Options, seed int64, frames int, dt float32, maxThink int) *runResult {
	session := telemetry.NewSession(nil)
	opts.Rand = rand.New(rand.NewSource(seed))
	opts.Sink = audio.Nop{}
	opts.Recorder = session

	w := world.New(opts)
	bot := autoplay.New(rand.New(rand.NewSource(seed+1)), maxThink)

	for i := 0; i < frames; i++ {
		w.HandleInput(bot.Next(w.EnabledButtons()))
		w.Progress(dt)
	}

	r := &runResult{
		Seed:      seed,
		Frames:    frames,
		terminals: make(map[evolution.State]int),
	}

	// A round runs from the start (or a restart) to the next terminal form.
	var roundStart float32
	for _, e := range session.Events() {
		switch e.Type {
		case telemetry.EventClick:
			r.Clicks++
		case telemetry.EventRestart:
			r.Restarts++
			roundStart = e.Clock
		case telemetry.EventStageComplete:
			if evolution.IsTerminal(e.Goal) {
				r.Rounds++
				r.terminals[e.Goal]++
				r.roundSecs = append(r.roundSecs, float64(e.Clock-roundStart))
			}
		}
	}

	for _, s := range r.roundSecs {
		r.MeanRound += s
	}
	if len(r.roundSecs) > 0 {
		r.MeanRound /= float64(len(r.roundSecs))
	}
	return r
}
