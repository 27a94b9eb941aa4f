package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hatch/config"
	"github.com/pthm-cable/hatch/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without a window; a bot clicks the buttons")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	debug := flag.Bool("debug", false, "Show the debug overlay and log at debug level")
	logStats := flag.Bool("log-stats", false, "Output perf stats via slog")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		OutputDir: *outputDir,
		Headless:  *headless,
		Debug:     *debug,
		LogStats:  *logStats,
	}

	if *headless {
		if *maxFrames <= 0 {
			slog.Error("headless runs need -max-frames")
			os.Exit(1)
		}
		if err := runHeadless(opts, *maxFrames); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runWindowed(cfg, opts, *maxFrames); err != nil {
		slog.Error("game failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless plays maxFrames fixed-step frames without raylib.
func runHeadless(opts game.Options, maxFrames int) error {
	g, err := game.NewGame(opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	slog.Info("starting headless session", "seed", opts.Seed, "max_frames", maxFrames)

	for g.Frame() < maxFrames {
		if err := g.Update(); err != nil {
			return err
		}
	}
	slog.Info("max frames reached", "frame", g.Frame())
	return nil
}

// runWindowed opens the window and audio device and runs until closed.
func runWindowed(cfg *config.Config, opts game.Options, maxFrames int) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	if cfg.Audio.Enabled {
		rl.InitAudioDevice()
		defer rl.CloseAudioDevice()
	}

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		if err := g.Update(); err != nil {
			// Show the failure for one frame before exiting.
			g.Draw()
			return err
		}
		g.Draw()

		if maxFrames > 0 && g.Frame() >= maxFrames {
			slog.Info("max frames reached", "frame", g.Frame())
			break
		}
	}
	return nil
}
