package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Phase names for one frame.
const (
	PhaseInput    = "input"
	PhaseProgress = "progress"
	PhaseRender   = "render"
)

var phases = []string{PhaseInput, PhaseProgress, PhaseRender}

// PerfCollector tracks frame timing over a rolling window.
type PerfCollector struct {
	windowSize  int
	deltas      []float64 // host frame deltas, seconds
	phaseSums   []map[string]time.Duration
	writeIndex  int
	sampleCount int

	currentPhases map[string]time.Duration
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of frames to summarize (e.g., 120 for two seconds at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 120
	}
	return &PerfCollector{
		windowSize:    windowSize,
		deltas:        make([]float64, windowSize),
		phaseSums:     make([]map[string]time.Duration, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes the frame and records the host delta in seconds.
func (p *PerfCollector) EndFrame(dt float32) {
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += time.Since(p.phaseStart)
		p.lastPhase = ""
	}

	p.deltas[p.writeIndex] = float64(dt)
	p.phaseSums[p.writeIndex] = p.currentPhases
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// Full reports whether a whole window has been collected since the last Reset.
func (p *PerfCollector) Full() bool {
	return p.sampleCount == p.windowSize
}

// Reset discards collected samples.
func (p *PerfCollector) Reset() {
	p.writeIndex = 0
	p.sampleCount = 0
}

// PerfStats holds aggregated frame statistics.
type PerfStats struct {
	Frames int

	MeanFrame time.Duration
	P50Frame  time.Duration
	P90Frame  time.Duration
	MaxFrame  time.Duration
	FPS       float64

	// Average time spent per phase, and its share of the summed phases
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		Frames:   p.sampleCount,
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}
	if p.sampleCount == 0 {
		return stats
	}

	sorted := make([]float64, p.sampleCount)
	copy(sorted, p.deltas[:p.sampleCount])
	sort.Float64s(sorted)

	mean := stat.Mean(sorted, nil)
	stats.MeanFrame = seconds(mean)
	stats.P50Frame = seconds(stat.Quantile(0.5, stat.Empirical, sorted, nil))
	stats.P90Frame = seconds(stat.Quantile(0.9, stat.Empirical, sorted, nil))
	stats.MaxFrame = seconds(floats.Max(sorted))
	if mean > 0 {
		stats.FPS = 1 / mean
	}

	var total time.Duration
	sums := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		for phase, d := range p.phaseSums[i] {
			sums[phase] += d
			total += d
		}
	}
	for phase, sum := range sums {
		stats.PhaseAvg[phase] = sum / time.Duration(p.sampleCount)
		if total > 0 {
			stats.PhasePct[phase] = float64(sum) / float64(total) * 100
		}
	}

	return stats
}

// LogStats logs frame statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"frames", s.Frames,
		"mean_frame_us", s.MeanFrame.Microseconds(),
		"p90_frame_us", s.P90Frame.Microseconds(),
		"max_frame_us", s.MaxFrame.Microseconds(),
		"fps", int(s.FPS),
	}
	for _, phase := range phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of frame statistics.
type PerfStatsCSV struct {
	Frame       int     `csv:"frame"`
	Frames      int     `csv:"frames"`
	MeanFrameUS int64   `csv:"mean_frame_us"`
	P50FrameUS  int64   `csv:"p50_frame_us"`
	P90FrameUS  int64   `csv:"p90_frame_us"`
	MaxFrameUS  int64   `csv:"max_frame_us"`
	FPS         float64 `csv:"fps"`
	InputPct    float64 `csv:"input_pct"`
	ProgressPct float64 `csv:"progress_pct"`
	RenderPct   float64 `csv:"render_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(frame int) PerfStatsCSV {
	return PerfStatsCSV{
		Frame:       frame,
		Frames:      s.Frames,
		MeanFrameUS: s.MeanFrame.Microseconds(),
		P50FrameUS:  s.P50Frame.Microseconds(),
		P90FrameUS:  s.P90Frame.Microseconds(),
		MaxFrameUS:  s.MaxFrame.Microseconds(),
		FPS:         s.FPS,
		InputPct:    s.PhasePct[PhaseInput],
		ProgressPct: s.PhasePct[PhaseProgress],
		RenderPct:   s.PhasePct[PhaseRender],
	}
}
