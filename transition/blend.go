package transition

import "github.com/tanema/gween/ease"

// Regular crossfade timing as fractions of the whole transition: the
// current art holds until fadeStart and is gone by the midpoint cut; the goal
// art takes the same window after the cut, so it is fully in at 6/7.
const (
	fadeStart  = float32(1.0 / 7.0)
	fadeCut    = float32(0.5)
	fadeWindow = fadeCut - fadeStart
)

// Blend returns the alpha of the current-form art and the goal-form art.
//
// Regular transitions dip through black: the current art eases out over
// [1/7, 1/2] and the goal art eases in over [1/2, 6/7], so the two never fade
// on the same half. Egg-cracking transitions are a hard cut: the current art
// stays fully visible until the stage completes.
func (t *Transition) Blend() (current, goal float32) {
	if t.kind.cracking {
		if t.Completed() {
			return 0, 1
		}
		return 1, 0
	}

	p := t.Fraction()
	if p < fadeCut {
		return 1 - sineIn(p-fadeStart), 0
	}
	return 0, sineIn(p - fadeCut)
}

// sineIn maps a time offset into the fade window to a 0..1 cosine ease.
func sineIn(x float32) float32 {
	if x <= 0 {
		return 0
	}
	if x >= fadeWindow {
		return 1
	}
	return ease.InOutSine(x, 0, 1, fadeWindow)
}
