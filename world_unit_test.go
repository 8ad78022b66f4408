package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// newTestWorld makes a world with a vertical I at the spawn position, so that
// tests don't depend on which shape the generator picks.
func newTestWorld() World {
	w := NewWorld(0, Board{})
	w.Shape = NewShape(1, w.Grid)
	w.Shape.Pos = Pt{SpawnCol, 0}
	return w
}

func keyDown(k KeyName) (p PlayerInput) {
	p.KeysDown[k] = true
	return
}

func keyUp(k KeyName) (p PlayerInput) {
	p.KeysUp[k] = true
	return
}

// RInput is a utility for getting random but plausible input: most frames
// have no events.
func RInput() (p PlayerInput) {
	if RInt(0, 3) != 0 {
		return
	}
	k := KeyName(RInt(0, int64(NKeys)-1))
	if RInt(0, 1) == 0 {
		p.KeysDown[k] = true
	} else {
		p.KeysUp[k] = true
	}
	return
}

func TestEventOccurred(t *testing.T) {
	var p PlayerInput
	assert.False(t, p.EventOccurred())
	p.KeysDown[KeyUp] = true
	assert.True(t, p.EventOccurred())
	p = PlayerInput{}
	p.KeysUp[KeyLeft] = true
	assert.True(t, p.EventOccurred())
}

func TestKeyName_String(t *testing.T) {
	assert.Equal(t, "left", KeyLeft.String())
	assert.Equal(t, "up", KeyUp.String())
	assert.Equal(t, "KeyName(9)", KeyName(9).String())
}

func TestNewWorld(t *testing.T) {
	for range 10 {
		w := NewWorld(RInt(0, 10000), Board{})
		assert.Equal(t, int64(0), w.Score)
		assert.Equal(t, int64(1), w.Level)
		assert.Nil(t, w.Shape)
		assert.Empty(t, w.Grid.OccupiedCells())
		for range 3000 {
			require.NotPanics(t, func() {
				w.Step(RInput())
			})
		}
	}
}

func TestNewWorldFromPlaythrough(t *testing.T) {
	p := Playthrough{}
	p.SimulationVersion = 25
	require.Panics(t, func() {
		NewWorldFromPlaythrough(p)
	})
	p.SimulationVersion = SimulationVersion
	p.Board.Cells = []Cell{{Pt{0, NRows - 1}, 3}}
	require.NotPanics(t, func() {
		w := NewWorldFromPlaythrough(p)
		assert.Equal(t, int64(3), w.Grid.Color(0, NRows-1))
	})
}

func TestStep_SpawnsShape(t *testing.T) {
	w := NewWorld(0, Board{})
	w.Step(PlayerInput{})
	require.NotNil(t, w.Shape)
	assert.Equal(t, Pt{SpawnCol, 0}, w.Shape.Pos)
	assert.Equal(t, w.Shape.Type+1, w.Shape.Color)
}

func TestStep_Gravity(t *testing.T) {
	w := newTestWorld()
	// At level 1 the fall timer needs a bit more than a second to go over 1,
	// then the next frame moves the shape.
	for range TicksPerSecond {
		w.Step(PlayerInput{})
	}
	assert.Equal(t, int64(0), w.Shape.Pos.Y)
	for range 2 {
		w.Step(PlayerInput{})
	}
	assert.Equal(t, int64(1), w.Shape.Pos.Y)

	// Higher levels fall faster.
	slow := newTestWorld()
	fast := newTestWorld()
	fast.Level = 3
	for range 5 * TicksPerSecond {
		slow.Step(PlayerInput{})
		fast.Step(PlayerInput{})
	}
	assert.Greater(t, fast.Shape.Pos.Y, slow.Shape.Pos.Y)
}

func TestStep_TapMovesOnce(t *testing.T) {
	w := newTestWorld()
	w.Step(keyDown(KeyLeft))
	assert.Equal(t, int64(SpawnCol-1), w.Shape.Pos.X)
	assert.True(t, w.Keys[KeyLeft].IsPressed())
	w.Step(keyUp(KeyLeft))
	for range 30 {
		w.Step(PlayerInput{})
	}
	assert.Equal(t, int64(SpawnCol-1), w.Shape.Pos.X)

	w.Step(keyDown(KeyRight))
	w.Step(keyUp(KeyRight))
	assert.Equal(t, int64(SpawnCol), w.Shape.Pos.X)

	// Redundant key-down events, like the ones the OS sends while a key is
	// held, don't trigger extra moves.
	w.Step(keyDown(KeyRight))
	w.Step(keyDown(KeyRight))
	w.Step(keyDown(KeyRight))
	assert.Equal(t, int64(SpawnCol+1), w.Shape.Pos.X)
}

func TestStep_HoldRepeats(t *testing.T) {
	w := newTestWorld()
	w.Step(keyDown(KeyLeft))
	assert.Equal(t, int64(SpawnCol-1), w.Shape.Pos.X)
	// 0.15s at 60 frames per second is 9 frames. After a bit more than that
	// the move repeats.
	for range 9 {
		w.Step(PlayerInput{})
	}
	assert.Equal(t, int64(SpawnCol-1), w.Shape.Pos.X)
	for range 2 {
		w.Step(PlayerInput{})
	}
	assert.Equal(t, int64(SpawnCol-2), w.Shape.Pos.X)
}

func TestStep_HoldDownRepeats(t *testing.T) {
	w := newTestWorld()
	w.Step(keyDown(KeyDown))
	assert.Equal(t, int64(1), w.Shape.Pos.Y)
	for range 10 {
		w.Step(PlayerInput{})
	}
	// The down key was pressed once but the shape moved more than once.
	assert.Greater(t, w.Shape.Pos.Y, int64(2))

	// Without the key, gravity alone doesn't move it in that time.
	w2 := newTestWorld()
	for range 11 {
		w2.Step(PlayerInput{})
	}
	assert.Equal(t, int64(0), w2.Shape.Pos.Y)
}

func TestStep_RotateDoesNotRepeat(t *testing.T) {
	w := newTestWorld()
	w.Step(keyDown(KeyUp))
	assert.Equal(t, int64(1), w.Shape.Rotation)
	for range 100 {
		w.Step(PlayerInput{})
	}
	assert.Equal(t, int64(1), w.Shape.Rotation)
	w.Step(keyUp(KeyUp))
	w.Step(keyDown(KeyUp))
	assert.Equal(t, int64(2), w.Shape.Rotation)
}

func TestStep_LockAndClear(t *testing.T) {
	var test Test
	test.Rows = []string{
		"1111.11111",
		"2222.22222",
		"3333.33333",
		"4444.44444",
	}
	w := NewWorld(0, test.GetBoard())
	// Vertical I at x=3 drops into column 4.
	w.Shape = NewShape(1, w.Grid)
	w.Shape.Pos = Pt{SpawnCol, 0}

	// Soft-drop until the shape locks.
	for i := 0; i < 100 && !w.Shape.Removed; i++ {
		if i%2 == 0 {
			w.Step(keyDown(KeyDown))
		} else {
			w.Step(keyUp(KeyDown))
		}
	}
	require.True(t, w.Shape.Removed)

	// The next step clears the rows and spawns a new shape.
	w.Step(PlayerInput{})
	assert.Equal(t, []int64{19, 18, 17, 16}, w.JustClearedRows)
	assert.Equal(t, int64(400), w.Score)
	assert.Equal(t, int64(4), w.LinesCleared)
	assert.Empty(t, w.Grid.OccupiedCells())
	assert.False(t, w.Shape.Removed)

	w.Step(PlayerInput{})
	assert.Empty(t, w.JustClearedRows)
}

func TestClearLines_Level(t *testing.T) {
	fullRows := func(w *World, n int64) {
		for y := NRows - n; y < NRows; y++ {
			fillRow(w.Grid, y, 1)
		}
	}

	// Crossing one threshold.
	w := NewWorld(0, Board{})
	w.Score = 900
	fullRows(&w, 4)
	w.ClearLines()
	assert.Equal(t, int64(1300), w.Score)
	assert.Equal(t, int64(2), w.Level)

	// Crossing two thresholds at once only goes up one level.
	w = NewWorld(0, Board{})
	w.Score = 1950
	fullRows(&w, 4)
	w.ClearLines()
	assert.Equal(t, int64(2350), w.Score)
	assert.Equal(t, int64(2), w.Level)
	// The level catches up at the next clear.
	fullRows(&w, 1)
	w.ClearLines()
	assert.Equal(t, int64(2450), w.Score)
	assert.Equal(t, int64(3), w.Level)
	// Only the rows of the latest clear are reported.
	assert.Equal(t, []int64{19}, w.JustClearedRows)

	// Reaching the threshold exactly is not enough.
	w = NewWorld(0, Board{})
	w.Score = 900
	fullRows(&w, 1)
	w.ClearLines()
	assert.Equal(t, int64(1000), w.Score)
	assert.Equal(t, int64(1), w.Level)

	// No lines, nothing changes.
	w.ClearLines()
	assert.Equal(t, int64(1000), w.Score)
	assert.Empty(t, w.JustClearedRows)
}

func TestStep_GameOver(t *testing.T) {
	w := NewWorld(0, Board{})
	// Block the spawn area without making any row full.
	for y := int64(0); y < 4; y++ {
		fillRow(w.Grid, y, 2, NCols-1)
	}
	w.Score = 500
	w.Level = 2
	w.Step(PlayerInput{})

	assert.Equal(t, int64(1), w.NGamesOver)
	assert.Nil(t, w.Shape)
	assert.Equal(t, int64(0), w.Score)
	assert.Equal(t, int64(1), w.Level)
	assert.Equal(t, 0.0, w.FallTimer)
	assert.Empty(t, w.Grid.OccupiedCells())

	// The game goes on.
	w.Step(PlayerInput{})
	assert.NotNil(t, w.Shape)
	assert.Equal(t, int64(1), w.NGamesOver)
}

func TestStep_Invariants(t *testing.T) {
	RSeed(3)
	w := NewWorld(11, Board{})
	prevScore := int64(0)
	prevLevel := int64(1)
	prevGamesOver := int64(0)
	for range 20000 {
		w.Step(RInput())

		if w.NGamesOver == prevGamesOver {
			// Score never decreases and the level only goes up one at a time.
			require.GreaterOrEqual(t, w.Score, prevScore)
			require.Contains(t, []int64{prevLevel, prevLevel + 1}, w.Level)
		}
		prevScore, prevLevel, prevGamesOver = w.Score, w.Level, w.NGamesOver

		// A falling shape never overlaps the grid or leaves it.
		if w.Shape != nil && !w.Shape.Removed {
			for _, c := range w.Shape.Cells() {
				require.False(t, w.Grid.IsOccupied(c.Pos.X, c.Pos.Y))
				require.True(t, c.Pos.Y < NRows && c.Pos.X >= 0 && c.Pos.X < NCols)
			}
		}
	}
}
