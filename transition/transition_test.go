package transition

import (
	"math"
	"testing"

	"github.com/pthm-cable/hatch/evolution"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestDurationsTotal(t *testing.T) {
	d := DefaultDurations()
	if d.Total(Regular()) <= d.Total(EggCracking(evolution.Sun)) {
		t.Errorf("regular (%v) should run longer than cracking (%v)", d.Regular, d.Cracking)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("default durations invalid: %v", err)
	}
	if err := (Durations{Regular: 1, Cracking: 0}).Validate(); err == nil {
		t.Error("expected error for zero cracking duration")
	}
}

func TestStartKinds(t *testing.T) {
	d := DefaultDurations()

	tr := Start(evolution.Egg, evolution.Sun, d)
	if tr.Goal() != evolution.EggCrack1 || !tr.Kind().IsCracking() || tr.Kind().Input() != evolution.Sun {
		t.Errorf("Egg+Sun: goal %s kind %s", tr.Goal(), tr.Kind())
	}
	if tr.Total() != d.Cracking {
		t.Errorf("crack total = %v, want %v", tr.Total(), d.Cracking)
	}

	tr = Start(evolution.Chick, evolution.Arrowhead, d)
	if tr.Goal() != evolution.Bird || tr.Kind().IsCracking() {
		t.Errorf("Chick+Arrowhead: goal %s kind %s", tr.Goal(), tr.Kind())
	}
	if tr.From() != evolution.Chick {
		t.Errorf("from = %s, want Chick", tr.From())
	}
}

func TestStartPanics(t *testing.T) {
	tests := []struct {
		name  string
		state evolution.State
		input evolution.Input
	}{
		{"restart is not animated", evolution.Duck, evolution.Restart},
		{"disabled input", evolution.Egg, evolution.Restart},
		{"crack stage", evolution.EggCrack1, evolution.Sun},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Start(%s, %s) did not panic", tt.state, tt.input)
				}
			}()
			Start(tt.state, tt.input, DefaultDurations())
		})
	}
}

func TestAdvanceMonotonicAndClamped(t *testing.T) {
	tr := New(evolution.Chick, evolution.Duckling, Regular(), DefaultDurations())

	prev := tr.Elapsed()
	for i := 0; i < 400; i++ {
		tr.Advance(0.016)
		if tr.Elapsed() < prev {
			t.Fatalf("elapsed went backwards: %v -> %v", prev, tr.Elapsed())
		}
		if tr.Elapsed() > tr.Total() {
			t.Fatalf("elapsed %v exceeds total %v", tr.Elapsed(), tr.Total())
		}
		prev = tr.Elapsed()
	}
	if !tr.Completed() {
		t.Fatal("expected completion after 6.4s")
	}

	tr.Advance(-5)
	if !tr.Completed() || tr.Elapsed() != tr.Total() {
		t.Errorf("negative delta changed a completed transition: elapsed %v", tr.Elapsed())
	}
	tr.Advance(1)
	if !tr.Completed() {
		t.Error("completed must stay true")
	}
}

func TestAdvanceLeftover(t *testing.T) {
	tr := New(evolution.Egg, evolution.EggCrack1, EggCracking(evolution.Sun), Durations{Regular: 4, Cracking: 1})
	if left := tr.Advance(0.75); left != 0 {
		t.Errorf("leftover while running = %v", left)
	}
	if left := tr.Advance(0.5); !approx(left, 0.25) {
		t.Errorf("leftover = %v, want 0.25", left)
	}
}

func countTriggers(tr *Transition, steps []float32) int {
	n := 0
	for _, dt := range steps {
		tr.Advance(dt)
		if tr.SoundTriggered() {
			n++
		}
	}
	return n
}

func TestSoundFiresOnceRegardlessOfStepSize(t *testing.T) {
	d := DefaultDurations()
	kinds := []Kind{Regular(), EggCracking(evolution.Water)}

	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			total := d.Total(k) + 0.05

			big := New(evolution.Egg, evolution.EggCrack1, k, d)
			oneStep := countTriggers(big, []float32{total})

			var small []float32
			n := 250
			for i := 0; i < n; i++ {
				small = append(small, total/float32(n))
			}
			// Keep stepping well past the end.
			small = append(small, 0.5, 0.5, 0.5)
			many := countTriggers(New(evolution.Egg, evolution.EggCrack1, k, d), small)

			if oneStep != 1 || many != 1 {
				t.Errorf("triggers: one step %d, many steps %d, want 1 and 1", oneStep, many)
			}
		})
	}
}

func TestSoundThresholds(t *testing.T) {
	d := Durations{Regular: 3.8, Cracking: 1.2}

	reg := New(evolution.Chick, evolution.Bird, Regular(), d)
	reg.Advance(1.9)
	if reg.SoundFired() {
		t.Error("regular cue fired before total/1.9")
	}
	reg.Advance(0.11)
	if !reg.SoundTriggered() {
		t.Error("regular cue should fire just past total/1.9")
	}
	reg.Advance(0.01)
	if reg.SoundTriggered() {
		t.Error("trigger is a one-step pulse")
	}
	if !reg.SoundFired() {
		t.Error("fired flag must latch")
	}

	crack := New(evolution.Egg, evolution.EggCrack1, EggCracking(evolution.Sun), d)
	crack.Advance(1.19)
	if crack.SoundFired() {
		t.Error("crack cue fired before the end")
	}
	crack.Advance(0.02)
	if !crack.SoundTriggered() || !crack.Completed() {
		t.Error("crack cue should fire on the completing step")
	}
}

func TestFollowUpRule(t *testing.T) {
	d := DefaultDurations()
	tests := []struct {
		name     string
		tr       *Transition
		wantNil  bool
		wantGoal evolution.State
		wantKind Kind
	}{
		{"crack one to crack two", New(evolution.Egg, evolution.EggCrack1, EggCracking(evolution.Sun), d), false, evolution.EggCrack2, EggCracking(evolution.Sun)},
		{"crack two hatches chick", New(evolution.EggCrack1, evolution.EggCrack2, EggCracking(evolution.Sun), d), false, evolution.Chick, Regular()},
		{"crack two hatches turtle", New(evolution.EggCrack1, evolution.EggCrack2, EggCracking(evolution.Water), d), false, evolution.BabyTurtle, Regular()},
		{"big crack two hatches kraken", New(evolution.BigEggCrack1, evolution.BigEggCrack2, EggCracking(evolution.Water), d), false, evolution.Kraken, Regular()},
		{"regular resting goal", New(evolution.Chick, evolution.Duckling, Regular(), d), true, 0, Kind{}},
		{"hatchling has no follow-up", New(evolution.EggCrack2, evolution.Chick, Regular(), d), true, 0, Kind{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := tt.tr.FollowUp()
			if tt.wantNil {
				if next != nil {
					t.Errorf("expected no follow-up, got %s", next.Goal())
				}
				return
			}
			if next == nil {
				t.Fatal("expected a follow-up")
			}
			if next.Goal() != tt.wantGoal || next.Kind() != tt.wantKind || next.From() != tt.tr.Goal() {
				t.Errorf("follow-up %s->%s %s, want goal %s kind %s", next.From(), next.Goal(), next.Kind(), tt.wantGoal, tt.wantKind)
			}
		})
	}
}

func TestProgressCarriesLeftoverOneHop(t *testing.T) {
	d := Durations{Regular: 4, Cracking: 1}
	tr := New(evolution.Egg, evolution.EggCrack1, EggCracking(evolution.Sun), d)

	if next := tr.Progress(0.5); next != nil {
		t.Fatal("no follow-up while running")
	}
	next := tr.Progress(0.8)
	if next == nil || next.Goal() != evolution.EggCrack2 {
		t.Fatalf("expected EggCrack2 follow-up, got %v", next)
	}
	if !approx(next.Elapsed(), 0.3) {
		t.Errorf("follow-up elapsed = %v, want 0.3 leftover", next.Elapsed())
	}
	if next.Completed() {
		t.Error("leftover must not complete the follow-up here")
	}

	// The resting-goal case returns nothing.
	reg := New(evolution.Chick, evolution.Bird, Regular(), d)
	if got := reg.Progress(10); got != nil || !reg.Completed() {
		t.Errorf("regular progress = %v completed %v", got, reg.Completed())
	}
}

func TestBlendRegular(t *testing.T) {
	d := Durations{Regular: 3.5, Cracking: 1}
	tests := []struct {
		name         string
		fraction     float32
		cur, goal    float32
		curInterior  bool
		goalInterior bool
	}{
		{"start", 0, 1, 0, false, false},
		{"hold before fade", 0.1, 1, 0, false, false},
		{"fading out", 0.3, 0, 0, true, false},
		{"midpoint cut", 0.5, 0, 0, false, false},
		{"fading in", 0.7, 0, 0, false, true},
		{"hold after fade", 0.9, 0, 1, false, false},
		{"end", 1, 0, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(evolution.Chick, evolution.Bird, Regular(), d)
			tr.Advance(tt.fraction * d.Regular)
			cur, goal := tr.Blend()
			if tt.curInterior {
				if cur <= 0 || cur >= 1 || goal != 0 {
					t.Errorf("blend = (%v, %v), want current mid-fade and goal 0", cur, goal)
				}
				return
			}
			if tt.goalInterior {
				if goal <= 0 || goal >= 1 || cur != 0 {
					t.Errorf("blend = (%v, %v), want goal mid-fade and current 0", cur, goal)
				}
				return
			}
			if !approx(cur, tt.cur) || !approx(goal, tt.goal) {
				t.Errorf("blend = (%v, %v), want (%v, %v)", cur, goal, tt.cur, tt.goal)
			}
		})
	}
}

func TestBlendRegularMonotoneHalves(t *testing.T) {
	tr := New(evolution.Chick, evolution.Bird, Regular(), Durations{Regular: 4, Cracking: 1})
	prevCur, prevGoal := float32(1), float32(0)
	for i := 0; i < 100; i++ {
		tr.Advance(0.04)
		cur, goal := tr.Blend()
		if cur > prevCur+1e-6 {
			t.Fatalf("current alpha rose at step %d: %v -> %v", i, prevCur, cur)
		}
		if goal < prevGoal-1e-6 {
			t.Fatalf("goal alpha fell at step %d: %v -> %v", i, prevGoal, goal)
		}
		if cur > 0 && goal > 0 {
			t.Fatalf("both alphas non-zero at step %d: %v, %v", i, cur, goal)
		}
		prevCur, prevGoal = cur, goal
	}
}

func TestBlendCrackingHardCut(t *testing.T) {
	tr := New(evolution.Egg, evolution.EggCrack1, EggCracking(evolution.Sun), Durations{Regular: 4, Cracking: 1})
	for i := 0; i < 9; i++ {
		tr.Advance(0.1)
		if cur, goal := tr.Blend(); cur != 1 || goal != 0 {
			t.Fatalf("crack blend at %v = (%v, %v), want (1, 0)", tr.Elapsed(), cur, goal)
		}
	}
	tr.Advance(0.5)
	if cur, goal := tr.Blend(); cur != 0 || goal != 1 {
		t.Errorf("completed crack blend = (%v, %v), want (0, 1)", cur, goal)
	}
}
