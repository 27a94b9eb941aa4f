package world

import (
	"github.com/pthm-cable/hatch/audio"
	"github.com/pthm-cable/hatch/button"
	"github.com/pthm-cable/hatch/config"
	"github.com/pthm-cable/hatch/evolution"
	"github.com/pthm-cable/hatch/transition"
)

// OptionsFromConfig builds durations, volumes and the button layout from a
// loaded config. Rand, Sink and Recorder are left for the caller.
func OptionsFromConfig(cfg *config.Config) Options {
	layout := make(map[evolution.Input]button.Rect, len(cfg.Derived.Inputs))
	for in, b := range cfg.Derived.Inputs {
		layout[in] = button.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
	}
	return Options{
		Durations: transition.Durations{
			Regular:  cfg.Transition.RegularSeconds,
			Cracking: cfg.Transition.CrackingSeconds,
		},
		Volumes: &audio.Volumes{
			Crack: cfg.Audio.CrackVolume,
			Scale: cfg.Audio.ScaleVolume,
		},
		Layout: layout,
	}
}
