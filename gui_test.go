package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestGui_Layout(t *testing.T) {
	var g Gui

	// Wide window: the game area is centered horizontally.
	w, h := g.Layout(1600, 400)
	assert.Equal(t, GameHeight, h)
	assert.Equal(t, GameWidth, int(g.gameArea.Width()))
	assert.Equal(t, int64(0), g.gameArea.Min.Y)
	assert.Equal(t, (int64(w)-GameWidth)/2, g.gameArea.Min.X)

	// Tall window: the game area is at the top.
	w, h = g.Layout(100, 1000)
	assert.Equal(t, GameWidth, w)
	assert.Greater(t, h, GameHeight)
	assert.Equal(t, Pt{0, 0}, g.gameArea.Min)

	// The debug area goes under the game area.
	g.enableDebugAreas = true
	_, h = g.Layout(GameWidth, GameHeight+DebugHeight)
	assert.Equal(t, GameHeight+DebugHeight, h)
	assert.Equal(t, g.gameArea.Max.Y, g.horizontalDebugArea.Min.Y)
	assert.Equal(t, g.gameArea.Min.X, g.horizontalDebugArea.Min.X)
	assert.Equal(t, Pt{5, 3},
		g.ScreenToDebug(g.horizontalDebugArea.Min.Plus(Pt{5, 3})))
}

func newReplayGui(nFrames int) *Gui {
	g := &Gui{}
	g.state = Playback
	g.playthrough = generatePlaythrough(17, nFrames)
	g.world = NewWorldFromPlaythrough(g.playthrough)
	return g
}

func TestGui_GoToFrame(t *testing.T) {
	g := newReplayGui(1500)

	// Reference: the World at every frame.
	states := [][]byte{}
	w := NewWorldFromPlaythrough(g.playthrough)
	states = append(states, w.StateBytes())
	for _, input := range g.playthrough.History {
		w.Step(input)
		states = append(states, w.StateBytes())
	}

	for _, target := range []int64{1000, 200, 200, 1499, 0, 1500, 750} {
		g.GoToFrame(target)
		require.Equal(t, target, g.frameIdx)
		require.Equal(t, states[target], g.world.StateBytes(), "frame %d",
			target)
	}

	// Out of range targets are clamped.
	g.GoToFrame(-5)
	assert.Equal(t, int64(0), g.frameIdx)
	g.GoToFrame(100000)
	assert.Equal(t, int64(1500), g.frameIdx)
	assert.Equal(t, states[1500], g.world.StateBytes())
}

func TestGui_StepWorldAnimatesClears(t *testing.T) {
	var g Gui
	g.state = Playback
	g.world = NewWorld(0, Board{})
	fillRow(g.world.Grid, NRows-1, 3)
	g.world.Shape = NewShape(0, g.world.Grid)
	g.world.Shape.Removed = true

	g.StepWorld(PlayerInput{})
	require.Len(t, g.visWorld.Temporary, 1)
	assert.Equal(t, int64(NRows-1), g.visWorld.Temporary[0].Row)
	assert.Equal(t, int64(100), g.world.Score)
}

func TestGui_RunHeadless(t *testing.T) {
	g := newReplayGui(300)
	g.state = Headless
	g.HeadlessTps = 20000
	g.RunHeadless()
	assert.Equal(t, int64(300), g.frameIdx)

	w := NewWorldFromPlaythrough(g.playthrough)
	for _, input := range g.playthrough.History {
		w.Step(input)
	}
	assert.Equal(t, w.StateBytes(), g.world.StateBytes())

	g = newReplayGui(10)
	g.HeadlessTps = 0
	assert.Panics(t, func() { g.RunHeadless() })
}

func TestGui_Dispose(t *testing.T) {
	var g Gui
	g.Dispose()
	assert.True(t, g.disposed)
}

func TestPaletteColor(t *testing.T) {
	assert.Equal(t, Palette[0], PaletteColor(0))
	assert.Equal(t, Palette[NShapes], PaletteColor(NShapes))
	assert.Panics(t, func() { PaletteColor(NShapes + 1) })
	assert.Panics(t, func() { PaletteColor(-1) })
}
