package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RowFlashDuration is how long, in seconds, a cleared row keeps flashing.
const RowFlashDuration = 0.35

// Animation represents an instance of a running animation: a single value
// going from a start to an end over some time.
// It is cheap to copy the settings (start, end, duration) around, but each
// running animation needs its own Animation.
type Animation struct {
	tween *gween.Tween
	Value float32
	Done  bool
}

func NewAnimation(start, end, duration float32, easing ease.TweenFunc) (a Animation) {
	a.tween = gween.New(start, end, duration, easing)
	a.Value = start
	return
}

// NewFadeOut goes from fully opaque (1) to fully transparent (0).
func NewFadeOut(duration float32) Animation {
	return NewAnimation(1, 0, duration, ease.OutQuad)
}

func (a *Animation) Step(dt float32) {
	if a.Done {
		return
	}
	a.Value, a.Done = a.tween.Update(dt)
}
