package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/hatch/audio"
	"github.com/pthm-cable/hatch/evolution"
)

// Session keeps the ordered event log of one play session and mirrors it
// to the output directory when one is configured. Summary reads only the
// counters, so long sessions can stop retaining events with KeepEvents.
type Session struct {
	out    *OutputManager
	events []Event
	seq    int
	drop   bool

	counts    [eventTypeCount]int
	cues      [audio.CueCount]int
	terminals map[evolution.State]int
}

// NewSession creates a session. out may be nil.
func NewSession(out *OutputManager) *Session {
	return &Session{
		out:       out,
		terminals: make(map[evolution.State]int),
	}
}

// KeepEvents sets whether recorded events are retained for Events and
// OfType. Sessions retain by default; counters and the CSV mirror are
// unaffected.
func (s *Session) KeepEvents(keep bool) {
	s.drop = !keep
	if s.drop {
		s.events = nil
	}
}

// Record numbers, logs, keeps and writes one event.
func (s *Session) Record(e Event) {
	e.Seq = s.seq
	s.seq++
	if !s.drop {
		s.events = append(s.events, e)
	}
	s.counts[e.Type]++

	switch e.Type {
	case EventCue:
		s.cues[e.Cue]++
		slog.Debug("cue", "clock", e.Clock, "cue", e.Cue.String(), "goal", e.Goal.String())
	case EventStageComplete:
		if evolution.IsTerminal(e.Goal) {
			s.terminals[e.Goal]++
			slog.Info("terminal_reached", "clock", e.Clock, "form", e.Goal.String())
		} else {
			slog.Debug("stage_complete", "clock", e.Clock, "from", e.From.String(), "goal", e.Goal.String())
		}
	case EventRestart:
		slog.Info("restart", "clock", e.Clock, "from", e.From.String())
	default:
		slog.Debug(e.Type.String(), "clock", e.Clock, "from", e.From.String(), "goal", e.Goal.String())
	}

	if err := s.out.WriteEvent(e); err != nil {
		slog.Warn("event_write_failed", "error", err)
	}
}

// Events returns the events recorded so far, oldest first.
func (s *Session) Events() []Event {
	return s.events
}

// OfType returns the recorded events of one type, oldest first.
func (s *Session) OfType(t EventType) []Event {
	var out []Event
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Summary aggregates a session.
type Summary struct {
	Clicks    int
	Stages    int
	Restarts  int
	Cues      map[string]int
	Terminals map[string]int
}

// Summary returns the aggregate counts so far.
func (s *Session) Summary() Summary {
	sum := Summary{
		Clicks:    s.counts[EventClick],
		Stages:    s.counts[EventStageComplete],
		Restarts:  s.counts[EventRestart],
		Cues:      make(map[string]int),
		Terminals: make(map[string]int),
	}
	for i, n := range s.cues {
		if n > 0 {
			sum.Cues[audio.Cue(i).String()] = n
		}
	}
	for form, n := range s.terminals {
		sum.Terminals[form.String()] = n
	}
	return sum
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("clicks", s.Clicks),
		slog.Int("stages", s.Stages),
		slog.Int("restarts", s.Restarts),
		slog.Any("cues", s.Cues),
		slog.Any("terminals", s.Terminals),
	)
}
