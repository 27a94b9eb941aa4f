package button

import (
	"testing"

	"github.com/pthm-cable/hatch/evolution"
)

type sample struct {
	x, y float32
	down bool
}

var (
	inside  = [2]float32{50, 50}
	outside = [2]float32{500, 500}
)

func in(down bool) sample { return sample{inside[0], inside[1], down} }
func out(down bool) sample { return sample{outside[0], outside[1], down} }

func newTestButton() Button {
	return New(evolution.Sun, Rect{X: 0, Y: 0, W: 100, H: 100})
}

func run(b *Button, samples []sample) (states []State, clicks int) {
	for _, s := range samples {
		if b.Update(s.x, s.y, s.down) {
			clicks++
		}
		states = append(states, b.State())
	}
	return states, clicks
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	tests := []struct {
		x, y float32
		want bool
	}{
		{10, 20, true},
		{40, 60, true},
		{25, 40, true},
		{9.9, 40, false},
		{25, 60.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if cx, cy := r.Center(); cx != 25 || cy != 40 {
		t.Errorf("Center() = (%v, %v)", cx, cy)
	}
}

func TestStateMachine(t *testing.T) {
	tests := []struct {
		name       string
		samples    []sample
		wantStates []State
		wantClicks int
	}{
		{
			name:       "hover then leave",
			samples:    []sample{out(false), in(false), out(false)},
			wantStates: []State{Idle, Hovered, Idle},
		},
		{
			name:       "click inside",
			samples:    []sample{in(false), in(true), in(true), in(false), in(false)},
			wantStates: []State{Hovered, Pressed, Pressed, Released, Hovered},
			wantClicks: 1,
		},
		{
			name:       "release off the button cancels",
			samples:    []sample{in(true), out(true), out(false)},
			wantStates: []State{Pressed, Pressed, Idle},
		},
		{
			name:       "drag out and back in still clicks",
			samples:    []sample{in(true), out(true), in(true), in(false)},
			wantStates: []State{Pressed, Pressed, Pressed, Released},
			wantClicks: 1,
		},
		{
			name:       "entering while held is only a hover",
			samples:    []sample{out(true), in(true), in(false)},
			wantStates: []State{Idle, Hovered, Hovered},
		},
		{
			name:       "released decays to idle off the button",
			samples:    []sample{in(true), in(false), out(false)},
			wantStates: []State{Pressed, Released, Idle},
			wantClicks: 1,
		},
		{
			name:       "two separate clicks",
			samples:    []sample{in(true), in(false), in(true), in(false)},
			wantStates: []State{Pressed, Released, Pressed, Released},
			wantClicks: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestButton()
			states, clicks := run(&b, tt.samples)
			if clicks != tt.wantClicks {
				t.Errorf("clicks = %d, want %d", clicks, tt.wantClicks)
			}
			for i := range tt.wantStates {
				if states[i] != tt.wantStates[i] {
					t.Errorf("frame %d: state %s, want %s (all %v)", i, states[i], tt.wantStates[i], states)
				}
			}
		})
	}
}

func TestDisabledShortCircuits(t *testing.T) {
	b := newTestButton()
	b.Update(inside[0], inside[1], true)
	if b.State() != Pressed {
		t.Fatalf("state = %s, want pressed", b.State())
	}

	b.SetEnabled(false)
	if b.State() != Idle {
		t.Errorf("disabling should reset to idle, got %s", b.State())
	}
	if b.Update(inside[0], inside[1], false) {
		t.Error("disabled button clicked")
	}
	if b.State() != Idle {
		t.Errorf("disabled button changed state to %s", b.State())
	}
}

func TestEnableDuringHeldPressDoesNotClick(t *testing.T) {
	b := newTestButton()
	b.SetEnabled(false)
	b.SetEnabled(true)

	// The pointer was already down when the button came back.
	_, clicks := run(&b, []sample{in(true), in(false)})
	if clicks != 0 {
		t.Errorf("held press carried into a re-enabled button: %d clicks", clicks)
	}

	_, clicks = run(&b, []sample{in(true), in(false)})
	if clicks != 1 {
		t.Errorf("fresh press after re-enable: %d clicks, want 1", clicks)
	}
}

func TestBrightness(t *testing.T) {
	b := newTestButton()
	if got := b.Brightness(); got != 0.8 {
		t.Errorf("idle brightness = %v", got)
	}
	b.Update(inside[0], inside[1], false)
	if got := b.Brightness(); got != 1 {
		t.Errorf("hovered brightness = %v", got)
	}
	b.Update(inside[0], inside[1], true)
	if got := b.Brightness(); got != 0.4 {
		t.Errorf("pressed brightness = %v", got)
	}
}
