// Package game drives the world once per frame: it owns the window-side
// state (assets, camera, overlays) and the session telemetry.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/hatch/assets"
	"github.com/pthm-cable/hatch/audio"
	"github.com/pthm-cable/hatch/autoplay"
	"github.com/pthm-cable/hatch/camera"
	"github.com/pthm-cable/hatch/config"
	"github.com/pthm-cable/hatch/renderer"
	"github.com/pthm-cable/hatch/telemetry"
	"github.com/pthm-cable/hatch/ui"
	"github.com/pthm-cable/hatch/world"
)

// Options configures a game run.
type Options struct {
	Seed      int64
	OutputDir string // empty disables CSV output
	Headless  bool   // no window, no audio; the autoplay bot clicks
	Debug     bool   // start with the debug overlay shown
	LogStats  bool   // log perf summaries via slog
}

// Game holds the complete game state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	world   *world.World
	session *telemetry.Session

	// Telemetry
	outputManager *telemetry.OutputManager
	perfCollector *telemetry.PerfCollector
	logStats      bool

	// Window side, nil when headless
	loader  *assets.Loader
	library *assets.Library
	camera  *camera.Camera
	canvas  *renderer.Canvas
	hud     *ui.HUD
	loading *ui.LoadingScreen
	loadErr error

	// Headless driver
	bot *autoplay.Bot

	frame     int
	headless  bool
	debugMode bool

	screenWidth, screenHeight float32
}

// NewGame creates a game from the global configuration. In windowed mode
// the raylib window (and audio device when audio is enabled) must already
// be open; asset loading starts on the first Update.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	outputManager, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := outputManager.WriteConfig(cfg); err != nil {
		outputManager.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		session:       telemetry.NewSession(outputManager),
		outputManager: outputManager,
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:      opts.LogStats,
		headless:      opts.Headless,
		debugMode:     opts.Debug,
		screenWidth:   cfg.Derived.ScreenW32,
		screenHeight:  cfg.Derived.ScreenH32,
	}

	// Events are mirrored to events.csv; only the counters are read back.
	g.session.KeepEvents(false)

	if opts.Headless {
		// Own stream so the bot's choices do not shift the cue picks.
		g.bot = autoplay.New(rand.New(rand.NewSource(opts.Seed+1)), cfg.Screen.TargetFPS/2)
		g.startPlaying(audio.Nop{})
		return g, nil
	}

	g.camera = camera.New(g.screenWidth, g.screenHeight, cfg.World.Width, cfg.World.Height)
	g.hud = ui.NewHUD()
	g.loading = ui.NewLoadingScreen(cfg.Screen.Title)
	g.loader = assets.NewLoader(cfg.Assets, cfg.Audio.Enabled)
	return g, nil
}

// startPlaying creates the world once every asset is available.
func (g *Game) startPlaying(sink audio.Sink) {
	opts := world.OptionsFromConfig(g.cfg)
	opts.Rand = g.rng
	opts.Sink = sink
	opts.Recorder = g.session
	g.world = world.New(opts)

	slog.Info("game_started", "headless", g.headless, "form", g.world.Resting().String())
}

// Playing reports whether loading finished and the world exists.
func (g *Game) Playing() bool {
	return g.world != nil
}

// Frame returns the number of frames played since loading finished.
func (g *Game) Frame() int {
	return g.frame
}

// Update runs one frame of input and progress. A returned error is fatal.
func (g *Game) Update() error {
	if g.headless {
		g.updateHeadless()
		return nil
	}

	g.handleInput()

	if !g.Playing() {
		return g.updateLoading()
	}

	g.perfCollector.StartFrame()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.world.HandleInput(g.pointer())

	g.perfCollector.StartPhase(telemetry.PhaseProgress)
	g.world.Progress(frameTime())
	return nil
}

// updateLoading loads the next asset and starts the game after the last one.
func (g *Game) updateLoading() error {
	if g.loadErr != nil {
		return g.loadErr
	}
	if err := g.loader.Step(); err != nil {
		g.loadErr = err
		return err
	}
	if !g.loader.Done() {
		return nil
	}

	g.library = g.loader.Library()
	g.canvas = renderer.NewCanvas(g.library, g.camera)

	var sink audio.Sink = audio.Nop{}
	if g.cfg.Audio.Enabled {
		sink = g.library
	}
	_, total := g.loader.Count()
	slog.Info("assets_loaded", "count", total)
	g.startPlaying(sink)
	return nil
}

// Unload releases assets and closes telemetry output.
func (g *Game) Unload() {
	if g.loader != nil {
		g.loader.Library().Unload()
	}
	slog.Info("session_summary", "frames", g.frame, "summary", g.session.Summary())
	if err := g.outputManager.Close(); err != nil {
		slog.Warn("output_close_failed", "error", err)
	}
}
