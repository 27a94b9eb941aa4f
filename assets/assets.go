// Package assets loads the artwork, button icons and sound cues.
//
// Loading is spread over frames so the window can show a progress bar;
// the game starts only once every asset resolved. Any failure is fatal.
package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hatch/audio"
	"github.com/pthm-cable/hatch/config"
	"github.com/pthm-cable/hatch/evolution"
)

// Library holds every loaded asset. Art is indexed by form, icons by input
// and sounds by cue. A sound with zero frames was never loaded.
type Library struct {
	Art    [evolution.StateCount]rl.Texture2D
	Icons  [evolution.InputCount]rl.Texture2D
	Sounds [audio.CueCount]rl.Sound
}

// Play implements audio.Sink. Cues without a loaded sound are skipped.
func (l *Library) Play(cue audio.Cue, volume float32) {
	s := l.Sounds[cue]
	if s.FrameCount == 0 {
		return
	}
	rl.SetSoundVolume(s, volume)
	rl.PlaySound(s)
}

// Unload frees textures and sounds. Must run before the window and audio
// device close.
func (l *Library) Unload() {
	for _, t := range l.Art {
		if t.ID != 0 {
			rl.UnloadTexture(t)
		}
	}
	for _, t := range l.Icons {
		if t.ID != 0 {
			rl.UnloadTexture(t)
		}
	}
	for _, s := range l.Sounds {
		if s.FrameCount != 0 {
			rl.UnloadSound(s)
		}
	}
}

type job struct {
	name string
	path string
	load func(path string) error
}

// Loader loads a Library one asset per Step.
type Loader struct {
	lib  *Library
	jobs []job
	next int
	err  error
}

// ArtPath returns the artwork file for a form.
func ArtPath(cfg config.AssetsConfig, s evolution.State) string {
	return filepath.Join(cfg.Dir, cfg.ArtDir, s.Slug()+".png")
}

// IconPath returns the icon file for a button.
func IconPath(cfg config.AssetsConfig, in evolution.Input) string {
	return filepath.Join(cfg.Dir, cfg.IconDir, in.String()+".png")
}

// SoundPath returns the sound file for a cue.
func SoundPath(cfg config.AssetsConfig, c audio.Cue) string {
	var name string
	switch c {
	case audio.CueCrack1:
		name = cfg.Sounds.Crack1
	case audio.CueCrack2:
		name = cfg.Sounds.Crack2
	case audio.CueScale1:
		name = cfg.Sounds.Scale1
	default:
		name = cfg.Sounds.Scale2
	}
	return filepath.Join(cfg.Dir, name)
}

// NewLoader queues every texture and, when withSound is set, every sound.
// The window must exist; sounds also need the audio device.
func NewLoader(cfg config.AssetsConfig, withSound bool) *Loader {
	lib := &Library{}
	l := &Loader{lib: lib}

	for _, s := range evolution.States() {
		l.jobs = append(l.jobs, job{
			name: "art " + s.String(),
			path: ArtPath(cfg, s),
			load: func(path string) error {
				t, err := loadTexture(path)
				lib.Art[s] = t
				return err
			},
		})
	}
	for _, in := range evolution.AllInputs() {
		l.jobs = append(l.jobs, job{
			name: "icon " + in.String(),
			path: IconPath(cfg, in),
			load: func(path string) error {
				t, err := loadTexture(path)
				lib.Icons[in] = t
				return err
			},
		})
	}
	if withSound {
		for i := 0; i < audio.CueCount; i++ {
			c := audio.Cue(i)
			l.jobs = append(l.jobs, job{
				name: "sound " + c.String(),
				path: SoundPath(cfg, c),
				load: func(path string) error {
					s, err := loadSound(path)
					lib.Sounds[c] = s
					return err
				},
			})
		}
	}
	return l
}

// Step loads the next queued asset. Once an asset fails, every later call
// returns the same error.
func (l *Loader) Step() error {
	if l.err != nil || l.Done() {
		return l.err
	}
	j := l.jobs[l.next]
	if err := j.load(j.path); err != nil {
		l.err = fmt.Errorf("loading %s: %w", j.name, err)
		return l.err
	}
	slog.Debug("asset_loaded", "asset", j.name, "path", j.path)
	l.next++
	return nil
}

// Done reports whether every queued asset loaded.
func (l *Loader) Done() bool {
	return l.next >= len(l.jobs)
}

// Progress returns the loaded fraction in [0, 1].
func (l *Loader) Progress() float32 {
	if len(l.jobs) == 0 {
		return 1
	}
	return float32(l.next) / float32(len(l.jobs))
}

// Count returns loaded and total asset counts.
func (l *Loader) Count() (loaded, total int) {
	return l.next, len(l.jobs)
}

// Library returns the loaded assets. Valid only once Done reports true;
// after a failure it still owns whatever loaded and should be unloaded.
func (l *Loader) Library() *Library {
	return l.lib
}

func loadTexture(path string) (rl.Texture2D, error) {
	// raylib only logs a missing file, so check first for a clear error.
	if _, err := os.Stat(path); err != nil {
		return rl.Texture2D{}, err
	}
	t := rl.LoadTexture(path)
	if t.ID == 0 {
		return t, fmt.Errorf("decoding %s failed", path)
	}
	rl.SetTextureFilter(t, rl.FilterBilinear)
	return t, nil
}

func loadSound(path string) (rl.Sound, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Sound{}, err
	}
	s := rl.LoadSound(path)
	if s.FrameCount == 0 {
		return s, fmt.Errorf("decoding %s failed", path)
	}
	return s, nil
}
