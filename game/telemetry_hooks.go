package game

import "log/slog"

// flushPerf writes a perf row each time a full window of frames is in.
func (g *Game) flushPerf() {
	if !g.perfCollector.Full() {
		return
	}

	perfStats := g.perfCollector.Stats()
	g.perfCollector.Reset()

	if g.logStats {
		perfStats.LogStats()
	}

	if err := g.outputManager.WritePerf(perfStats, g.frame); err != nil {
		slog.Warn("perf_write_failed", "error", err)
	}
}
