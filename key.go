package main

import "math"

type KeyState int64

const (
	Released KeyState = iota
	JustPressed
	Pressed
)

// NoRepeat is the repeat threshold of a key that never repeats its action
// while held.
var NoRepeat = math.Inf(1)

// Key is the state of one logical button.
// - A key-down event while Released moves it to JustPressed. Key-down events
// in any other state are ignored, so the OS auto-repeat does nothing.
// - Whoever consumes JustPressed calls SetPressed.
// - While Pressed, the consumer accumulates hold time. Once the hold time goes
// over RepeatAfter, IsHoldDown reports it and the consumer calls SetPressed
// again, which restarts the count.
// - A key-up event always moves it to Released.
type Key struct {
	State       KeyState
	HoldTime    float64
	RepeatAfter float64
}

func NewKey(repeatAfter float64) Key {
	return Key{RepeatAfter: repeatAfter}
}

func (k *Key) Press() {
	if k.State == Released {
		k.State = JustPressed
	}
}

func (k *Key) Release() {
	k.State = Released
	k.HoldTime = 0
}

func (k *Key) SetPressed() {
	k.State = Pressed
	k.HoldTime = 0
}

func (k *Key) IsJustPressed() bool {
	return k.State == JustPressed
}

func (k *Key) IsPressed() bool {
	return k.State == Pressed
}

func (k *Key) IsHoldDown() bool {
	return k.State == Pressed && k.HoldTime > k.RepeatAfter
}

func (k *Key) AddHoldDownTime(dt float64) {
	k.HoldTime += dt
}
