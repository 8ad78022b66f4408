package main

import (
	"fmt"
)

// SimulationVersion identifies the rules of the World. If a change to the
// World makes the same input produce a different game, SimulationVersion
// must change. Playthroughs recorded with another SimulationVersion can't be
// replayed.
const SimulationVersion = 1

// World rules
// - There is at most one active shape. It falls one row every time the fall
// timer goes over 1. The timer advances by DeltaTime * Level each frame, so
// higher levels fall faster.
// - The player moves the shape left/right/down and rotates it. Moves that are
// not possible are ignored.
// - When the shape can't fall anymore it gets locked into the grid. In the
// next frame full rows are cleared, the score increases by 100 per row and a
// new random shape spawns at the top.
// - If the new shape doesn't fit where it spawns, the game is over and it
// starts again from an empty grid.

const NCols = 10
const NRows = 20
const SpawnCol = 3
const PointsPerLine = 100
const PointsPerLevel = 1000
const FallPeriod = 1.0

// TicksPerSecond is how many times per second the World is stepped. The
// World doesn't measure time, it assumes every Step lasts DeltaTime.
const TicksPerSecond = 60
const DeltaTime = 1.0 / TicksPerSecond

// The down key accumulates hold time this much faster than the others.
const DownHoldFactor = 10

type KeyName int64

const (
	KeyLeft KeyName = iota
	KeyRight
	KeyDown
	KeyUp
	NKeys
)

func (k KeyName) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	default:
		return fmt.Sprintf("KeyName(%d)", int64(k))
	}
}

// PlayerInput holds the key events that arrived during one frame.
type PlayerInput struct {
	KeysDown [NKeys]bool
	KeysUp   [NKeys]bool
}

func (p *PlayerInput) EventOccurred() bool {
	for i := range NKeys {
		if p.KeysDown[i] || p.KeysUp[i] {
			return true
		}
	}
	return false
}

type World struct {
	Grid      *Grid
	Shape     *Shape
	Keys      [NKeys]Key
	Score     int64
	Level     int64
	FallTimer float64
	Rand      Rand
	// JustClearedRows are the rows removed during the last Step, as indices
	// before the removal. Only meant for visual effects.
	JustClearedRows []int64
	LinesCleared    int64
	NGamesOver      int64
}

func NewKeys() (keys [NKeys]Key) {
	keys[KeyLeft] = NewKey(0.15)
	keys[KeyRight] = NewKey(0.15)
	keys[KeyDown] = NewKey(0.20)
	keys[KeyUp] = NewKey(NoRepeat)
	return
}

func NewWorld(seed int64, b Board) (w World) {
	w.Grid = NewGrid(NCols, NRows)
	w.Grid.Lock(b.Cells)
	w.Keys = NewKeys()
	w.Level = 1
	w.Rand = NewRand(seed)
	return
}

func NewWorldFromPlaythrough(p Playthrough) World {
	if p.SimulationVersion != SimulationVersion {
		Check(fmt.Errorf("can't replay a playthrough generated with "+
			"SimulationVersion %d, we are at SimulationVersion %d",
			p.SimulationVersion, SimulationVersion))
	}
	return NewWorld(p.Seed, p.Board)
}

func (w *World) Step(input PlayerInput) {
	w.JustClearedRows = w.JustClearedRows[:0]

	for i := range NKeys {
		if input.KeysDown[i] {
			w.Keys[i].Press()
		}
		if input.KeysUp[i] {
			w.Keys[i].Release()
		}
	}

	if w.Shape == nil || w.Shape.Removed {
		w.ClearLines()
		if !w.SpawnShape() {
			w.GameOver()
			return
		}
	}

	if w.FallTimer > FallPeriod {
		w.FallTimer = 0
		w.Shape.MoveDown()
	} else {
		w.FallTimer += DeltaTime * float64(w.Level)
	}

	left := &w.Keys[KeyLeft]
	if left.IsJustPressed() || left.IsHoldDown() {
		left.SetPressed()
		w.Shape.MoveLeft()
	} else if left.IsPressed() {
		left.AddHoldDownTime(DeltaTime * float64(w.Level))
	}

	right := &w.Keys[KeyRight]
	if right.IsJustPressed() || right.IsHoldDown() {
		right.SetPressed()
		w.Shape.MoveRight()
	} else if right.IsPressed() {
		right.AddHoldDownTime(DeltaTime * float64(w.Level))
	}

	down := &w.Keys[KeyDown]
	if down.IsJustPressed() || down.IsHoldDown() {
		down.SetPressed()
		w.FallTimer = 0
		w.Shape.MoveDown()
	} else if down.IsPressed() {
		down.AddHoldDownTime(DeltaTime * DownHoldFactor * float64(w.Level))
	}

	up := &w.Keys[KeyUp]
	if up.IsJustPressed() {
		up.SetPressed()
		w.Shape.RotateRight()
	}

	Assert(w.Shape.Removed || w.Shape.CanMove(w.Shape.Pos.X, w.Shape.Pos.Y),
		"active shape overlaps the grid at %v", w.Shape.Pos)
	Assert(w.Score >= 0 && w.Level >= 1, "invalid score %d or level %d",
		w.Score, w.Level)
}

// ClearLines removes full rows and updates the score and level.
// The level goes up by at most one per clear, even if the score jumps over
// more than one threshold.
func (w *World) ClearLines() {
	rows := w.Grid.ClearLines()
	w.JustClearedRows = append(w.JustClearedRows[:0], rows...)
	lines := int64(len(rows))
	if lines == 0 {
		return
	}
	w.LinesCleared += lines
	w.Score += lines * PointsPerLine
	if w.Score > w.Level*PointsPerLevel {
		w.Level++
	}
}

// SpawnShape puts a new random shape at the top of the grid and reports
// whether it fits there.
func (w *World) SpawnShape() bool {
	w.Shape = NewShape(w.Rand.RInt(0, NShapes-1), w.Grid)
	w.Shape.Pos = Pt{SpawnCol, 0}
	w.FallTimer = 0
	return w.Shape.CanMove(w.Shape.Pos.X, w.Shape.Pos.Y)
}

// GameOver resets the session. The keys and the random generator carry on.
func (w *World) GameOver() {
	w.Grid = NewGrid(NCols, NRows)
	w.Shape = nil
	w.Level = 1
	w.Score = 0
	w.FallTimer = 0
	w.NGamesOver++
}
