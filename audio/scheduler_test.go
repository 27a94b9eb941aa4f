package audio

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/hatch/evolution"
	"github.com/pthm-cable/hatch/transition"
)

type played struct {
	cue    Cue
	volume float32
}

type recordingSink struct {
	plays []played
}

func (r *recordingSink) Play(cue Cue, volume float32) {
	r.plays = append(r.plays, played{cue, volume})
}

func TestSelectCrackByStage(t *testing.T) {
	d := transition.DefaultDurations()
	s := NewScheduler(nil, rand.New(rand.NewSource(7)), DefaultVolumes())

	first := transition.New(evolution.Egg, evolution.EggCrack1, transition.EggCracking(evolution.Sun), d)
	if got := s.Select(first); got != CueCrack1 {
		t.Errorf("first stage cue = %s, want crack_1", got)
	}
	second := transition.New(evolution.BigEggCrack1, evolution.BigEggCrack2, transition.EggCracking(evolution.Water), d)
	if got := s.Select(second); got != CueCrack2 {
		t.Errorf("second stage cue = %s, want crack_2", got)
	}
}

func TestSelectScaleDeterministicWithSeed(t *testing.T) {
	d := transition.DefaultDurations()
	tr := transition.New(evolution.Chick, evolution.Bird, transition.Regular(), d)

	pick := func(seed int64) []Cue {
		s := NewScheduler(nil, rand.New(rand.NewSource(seed)), DefaultVolumes())
		var out []Cue
		for i := 0; i < 32; i++ {
			out = append(out, s.Select(tr))
		}
		return out
	}

	a, b := pick(42), pick(42)
	seen := map[Cue]bool{}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %s vs %s", i, a[i], b[i])
		}
		if a[i] != CueScale1 && a[i] != CueScale2 {
			t.Fatalf("regular transition picked %s", a[i])
		}
		seen[a[i]] = true
	}
	if len(seen) != 2 {
		t.Errorf("expected both scale cues over 32 picks, saw %v", seen)
	}
}

func TestFireUsesCategoryVolume(t *testing.T) {
	d := transition.DefaultDurations()
	sink := &recordingSink{}
	vol := Volumes{Crack: 0.9, Scale: 0.3}
	s := NewScheduler(sink, rand.New(rand.NewSource(1)), vol)

	s.Fire(transition.New(evolution.Egg, evolution.EggCrack1, transition.EggCracking(evolution.Sun), d))
	s.Fire(transition.New(evolution.Chick, evolution.Duckling, transition.Regular(), d))

	if len(sink.plays) != 2 {
		t.Fatalf("got %d plays, want 2", len(sink.plays))
	}
	if sink.plays[0].cue != CueCrack1 || sink.plays[0].volume != 0.9 {
		t.Errorf("crack play = %+v", sink.plays[0])
	}
	if sink.plays[1].cue.Category() != CategoryScale || sink.plays[1].volume != 0.3 {
		t.Errorf("scale play = %+v", sink.plays[1])
	}
}

func TestDefaultVolumesCracksLouder(t *testing.T) {
	v := DefaultVolumes()
	if v.For(CueCrack1) <= v.For(CueScale1) {
		t.Errorf("crack volume %v should exceed scale volume %v", v.Crack, v.Scale)
	}
}
