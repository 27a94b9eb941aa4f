// Package main plays scripted headless sessions over several seeds and
// reports how long a round from egg to final form takes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/hatch/config"
	"github.com/pthm-cable/hatch/evolution"
	"github.com/pthm-cable/hatch/world"
)

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 8, "Number of seeded sessions")
	minutes := flag.Float64("minutes", 10, "Game minutes per session")
	think := flag.Int("think", 30, "Maximum idle frames between bot clicks")
	outputDir := flag.String("output", "", "Output directory for playtest.csv (empty = stdout only)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	opts := world.OptionsFromConfig(cfg)
	dt := 1 / float32(cfg.Screen.TargetFPS)
	frames := int(*minutes * 60 * float64(cfg.Screen.TargetFPS))

	fmt.Printf("Playing %d sessions of %d frames (%.0f game minutes each)\n", *seeds, frames, *minutes)

	var results []*runResult
	var allRounds []float64
	terminals := make(map[evolution.State]int)
	startTime := time.Now()

	for i := 0; i < *seeds; i++ {
		seed := int64(i*1000 + 42)
		r := runSession(opts, seed, frames, dt, *think)
		results = append(results, r)
		allRounds = append(allRounds, r.roundSecs...)
		for s, n := range r.terminals {
			terminals[s] += n
		}

		elapsed := time.Since(startTime)
		remaining := time.Duration(*seeds-i-1) * (elapsed / time.Duration(i+1))
		fmt.Printf("Seed %d: rounds=%d clicks=%d mean_round=%.1fs | elapsed: %s, ETA: %s\n",
			seed, r.Rounds, r.Clicks, r.MeanRound, formatDuration(elapsed), formatDuration(remaining))
	}

	if len(allRounds) == 0 {
		fmt.Println("\nNo round reached a final form.")
	} else {
		sort.Float64s(allRounds)
		fmt.Printf("\nRounds: %d  mean %.1fs  p50 %.1fs  p90 %.1fs\n",
			len(allRounds),
			stat.Mean(allRounds, nil),
			stat.Quantile(0.5, stat.Empirical, allRounds, nil),
			stat.Quantile(0.9, stat.Empirical, allRounds, nil))
	}

	fmt.Println("\nFinal forms:")
	for _, s := range evolution.States() {
		if n := terminals[s]; n > 0 {
			fmt.Printf("  %s: %d\n", s, n)
		}
	}

	if *outputDir == "" {
		return
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	f, err := os.Create(filepath.Join(*outputDir, "playtest.csv"))
	if err != nil {
		log.Fatalf("failed to create playtest.csv: %v", err)
	}
	defer f.Close()
	if err := gocsv.MarshalFile(&results, f); err != nil {
		log.Fatalf("failed to write playtest.csv: %v", err)
	}
	fmt.Printf("\nResults saved to: %s\n", f.Name())
}
