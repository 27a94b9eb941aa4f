// Package button turns per-frame pointer samples into one-shot clicks for
// the fixed set of on-screen input buttons.
package button

import "github.com/pthm-cable/hatch/evolution"

// State is the interaction state of a button.
type State uint8

const (
	Idle State = iota
	Hovered
	Pressed
	Released // one-frame click pulse
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovered:
		return "hovered"
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (x, y float32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Button is one input button.
type Button struct {
	Input evolution.Input
	Rect  Rect

	enabled bool
	state   State
	wasDown bool
}

// New creates an enabled, idle button.
func New(in evolution.Input, r Rect) Button {
	return Button{Input: in, Rect: r, enabled: true}
}

// State returns the current interaction state.
func (b *Button) State() State { return b.state }

// Enabled reports whether the button takes part in input and drawing.
func (b *Button) Enabled() bool { return b.enabled }

// SetEnabled turns the button on or off. Disabling drops it back to Idle.
// Enabling treats the pointer as already held, so a press that started
// while the button was off cannot complete a click on it.
func (b *Button) SetEnabled(on bool) {
	if on == b.enabled {
		return
	}
	b.enabled = on
	b.state = Idle
	b.wasDown = true
}

// Update evaluates one frame of pointer input and reports a click.
// Disabled buttons are not evaluated and never click.
func (b *Button) Update(x, y float32, down bool) (clicked bool) {
	if !b.enabled {
		return false
	}

	inside := b.Rect.Contains(x, y)
	freshPress := down && !b.wasDown
	b.wasDown = down

	switch {
	case b.state == Pressed:
		// Stay pressed while held, wherever the pointer goes.
		if !down {
			if inside {
				b.state = Released
			} else {
				b.state = Idle
			}
		}
	case inside && freshPress:
		b.state = Pressed
	case inside:
		b.state = Hovered
	default:
		b.state = Idle
	}

	return b.state == Released
}

// Brightness returns the tint used when drawing the button.
func (b *Button) Brightness() float32 {
	switch b.state {
	case Pressed:
		return 0.4
	case Hovered, Released:
		return 1.0
	default:
		return 0.8
	}
}
