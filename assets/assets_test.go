package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/hatch/audio"
	"github.com/pthm-cable/hatch/config"
	"github.com/pthm-cable/hatch/evolution"
)

func missingAssets(t *testing.T) config.AssetsConfig {
	return config.AssetsConfig{
		Dir:     filepath.Join(t.TempDir(), "missing"),
		ArtDir:  "art",
		IconDir: "icons",
		Sounds: config.SoundsConfig{
			Crack1: "crack_1.wav",
			Crack2: "crack_2.wav",
			Scale1: "scale_1.wav",
			Scale2: "scale_2.wav",
		},
	}
}

func TestLoaderQueuesSoundsOnlyWhenEnabled(t *testing.T) {
	cfg := missingAssets(t)

	_, silent := NewLoader(cfg, false).Count()
	if want := evolution.StateCount + evolution.InputCount; silent != want {
		t.Errorf("jobs without sound = %d, want %d", silent, want)
	}
	_, loud := NewLoader(cfg, true).Count()
	if want := evolution.StateCount + evolution.InputCount + audio.CueCount; loud != want {
		t.Errorf("jobs with sound = %d, want %d", loud, want)
	}
}

func TestLoaderStopsOnMissingFile(t *testing.T) {
	l := NewLoader(missingAssets(t), true)

	err := l.Step()
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Step error = %v, want not-exist", err)
	}
	if again := l.Step(); again != err {
		t.Errorf("second Step = %v, want the first error", again)
	}
	if l.Done() || l.Progress() != 0 {
		t.Errorf("done = %v, progress = %v after failure", l.Done(), l.Progress())
	}
}

func TestPlaySkipsUnloadedSounds(t *testing.T) {
	lib := NewLoader(missingAssets(t), true).Library()
	for i := 0; i < audio.CueCount; i++ {
		lib.Play(audio.Cue(i), 1)
	}
	lib.Unload()
}
