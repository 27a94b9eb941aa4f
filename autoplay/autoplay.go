// Package autoplay drives the world with a scripted pointer for headless runs.
package autoplay

import (
	"math/rand"

	"github.com/pthm-cable/hatch/button"
	"github.com/pthm-cable/hatch/world"
)

type phase uint8

const (
	phaseThink phase = iota
	phaseDown
	phaseUp
	phaseDone
)

// Bot picks a random enabled button, hovers it, presses it and lets go,
// one step per frame, then idles for a random number of frames.
type Bot struct {
	rng      *rand.Rand
	maxThink int
	phase    phase
	wait     int
	x, y     float32
	presses  int
}

// New creates a bot that idles up to maxThink frames between clicks.
func New(rng *rand.Rand, maxThink int) *Bot {
	if maxThink < 0 {
		maxThink = 0
	}
	return &Bot{rng: rng, maxThink: maxThink}
}

// Presses returns how many press-release cycles the bot completed.
func (b *Bot) Presses() int { return b.presses }

// Next returns the pointer sample for this frame given the buttons that
// are currently enabled. With nothing enabled the pointer rests, released.
func (b *Bot) Next(enabled []button.Button) world.Pointer {
	switch b.phase {
	case phaseThink:
		if b.wait > 0 {
			b.wait--
			return world.Pointer{X: b.x, Y: b.y}
		}
		if len(enabled) == 0 {
			return world.Pointer{X: b.x, Y: b.y}
		}
		target := enabled[b.rng.Intn(len(enabled))]
		b.x, b.y = target.Rect.Center()
		b.phase = phaseDown
		return world.Pointer{X: b.x, Y: b.y}
	case phaseDown:
		b.phase = phaseUp
		return world.Pointer{X: b.x, Y: b.y, Down: true}
	case phaseUp:
		b.phase = phaseDone
		return world.Pointer{X: b.x, Y: b.y}
	default:
		b.presses++
		b.phase = phaseThink
		if b.maxThink > 0 {
			b.wait = b.rng.Intn(b.maxThink + 1)
		}
		return world.Pointer{X: b.x, Y: b.y}
	}
}
