package entity

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Explosion is a cosmetic burst left where an enemy died.
// Its radius grows along a tween; the explosion ends with the tween.
type Explosion struct {
	Base
	Radius    float64
	MaxRadius float64
	Duration  float64

	tween *gween.Tween
}

// NewExplosion creates an explosion centered on (cx, cy).
func NewExplosion(cx, cy, maxRadius, duration float64) *Explosion {
	return &Explosion{
		Base: Base{
			X:        cx,
			Y:        cy,
			Active:   true,
			Category: CategoryEffect,
		},
		MaxRadius: maxRadius,
		Duration:  duration,
		tween:     gween.New(0, float32(maxRadius), float32(duration), ease.OutQuad),
	}
}

// Update advances the tween by dt milliseconds.
func (e *Explosion) Update(dt float64) {
	if !e.Active {
		return
	}
	e.Age += dt
	r, done := e.tween.Update(float32(dt))
	e.Radius = float64(r)
	if done {
		e.Deactivate()
	}
}

// Progress returns the completed fraction in [0, 1].
func (e *Explosion) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	return min(1, e.Age/e.Duration)
}

// FloatingText is a rising label such as "+150".
type FloatingText struct {
	Base
	Text     string
	Rise     float64
	Duration float64

	startY float64
	tween  *gween.Tween
}

// NewFloatingText creates a label centered on (cx, cy) that rises by rise pixels.
func NewFloatingText(text string, cx, cy, rise, duration float64) *FloatingText {
	return &FloatingText{
		Base: Base{
			X:        cx,
			Y:        cy,
			Active:   true,
			Category: CategoryEffect,
		},
		Text:     text,
		Rise:     rise,
		Duration: duration,
		startY:   cy,
		tween:    gween.New(0, float32(rise), float32(duration), ease.OutCubic),
	}
}

// Update advances the rise by dt milliseconds.
func (t *FloatingText) Update(dt float64) {
	if !t.Active {
		return
	}
	t.Age += dt
	offset, done := t.tween.Update(float32(dt))
	t.Y = t.startY - float64(offset)
	if done {
		t.Deactivate()
	}
}

// Fade returns the remaining opacity in [0, 1].
func (t *FloatingText) Fade() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return max(0, 1-t.Age/t.Duration)
}
