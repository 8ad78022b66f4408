package main

// TemporaryAnimation represents an animation that appears in one place, runs
// for a while and then it goes away. It doesn't represent an ongoing entity in
// the World, it is a standalone effect, like the flash of a cleared row.
type TemporaryAnimation struct {
	Row       int64
	Animation Animation
}

// VisWorld is a world parallel to World that holds "visual logic". Its role is
// to store data and execute logic for ongoing visual effects like animations.
// Draw() relies on the information in VisWorld to draw things, just like it
// relies on World.
//
// VisWorld runs parallel to World and is meant to be updated alongside World,
// in the Update() function.
type VisWorld struct {
	Temporary []*TemporaryAnimation
}

func (v *VisWorld) Step(w *World) {
	// Step existing animations.
	for _, a := range v.Temporary {
		a.Animation.Step(DeltaTime)
	}

	// Filter out obsolete animations.
	n := 0
	for i := range v.Temporary {
		if !v.Temporary[i].Animation.Done {
			v.Temporary[n] = v.Temporary[i]
			n++
		}
	}
	v.Temporary = v.Temporary[:n]

	// Create new animations if necessary.
	for _, row := range w.JustClearedRows {
		v.Temporary = append(v.Temporary, &TemporaryAnimation{
			Row:       row,
			Animation: NewFadeOut(RowFlashDuration),
		})
	}
}

// Reset drops all running animations, for when the World is rewound.
func (v *VisWorld) Reset() {
	v.Temporary = v.Temporary[:0]
}
