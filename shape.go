package main

import (
	"fmt"
	"math/bits"
)

const NShapes = 7
const NRotations = 4
const NCellsPerShape = 4

// ShapeMasks holds, for each shape type, the distinct rotations of the shape.
// Each rotation is a 4x4 box packed in 16 bits: bit i set means the cell at
// column i%4, row i/4 is occupied. Shapes with fewer than 4 distinct
// rotations reuse them cyclically.
var ShapeMasks = [NShapes][]uint16{
	{1632},                   // O
	{8738, 3840, 17476, 240}, // I
	{610, 114, 562, 624},     // T
	{802, 1136, 550, 113},    // J
	{1570, 116, 547, 368},    // L
	{561, 864, 1122, 54},     // S
	{306, 1584, 612, 99},     // Z
}

// Rotation is the set of occupied offsets inside a shape's 4x4 box.
type Rotation [NCellsPerShape]Pt

// shapeRotations is ShapeMasks decoded, so that nothing has to unpack bits
// during a frame.
var shapeRotations [NShapes][NRotations]Rotation

func init() {
	for t := range ShapeMasks {
		masks := ShapeMasks[t]
		for r := range NRotations {
			shapeRotations[t][r] = DecodeMask(masks[r%len(masks)])
		}
	}
}

// DecodeMask unpacks a 16-bit shape mask into offsets, ordered by bit index.
func DecodeMask(mask uint16) (r Rotation) {
	if bits.OnesCount16(mask) != NCellsPerShape {
		panic(fmt.Errorf("mask %d does not have exactly %d cells", mask,
			NCellsPerShape))
	}
	n := 0
	for i := int64(0); i < 16; i++ {
		if mask&(1<<i) != 0 {
			r[n] = Pt{i % 4, i / 4}
			n++
		}
	}
	return
}

type Shape struct {
	Type     int64
	Color    int64
	Rotation int64
	Pos      Pt
	// Removed is set once the shape is locked into the grid. From then on it
	// no longer moves and the World replaces it with a new shape.
	Removed bool
	grid    *Grid
}

func NewShape(shapeType int64, grid *Grid) *Shape {
	if shapeType < 0 || shapeType >= NShapes {
		panic(fmt.Errorf("invalid shape type: %d", shapeType))
	}
	return &Shape{
		Type:  shapeType,
		Color: shapeType + 1,
		grid:  grid,
	}
}

func (s *Shape) offsets(rotation int64) Rotation {
	return shapeRotations[s.Type][rotation]
}

// Cells returns the grid cells covered by the shape at its current position
// and rotation.
func (s *Shape) Cells() (cells [NCellsPerShape]Cell) {
	for i, o := range s.offsets(s.Rotation) {
		cells[i] = Cell{s.Pos.Plus(o), s.Color}
	}
	return
}

func (s *Shape) fits(rotation int64, x, y int64) bool {
	for _, o := range s.offsets(rotation) {
		col := x + o.X
		row := y + o.Y
		if col < 0 || col >= s.grid.NCols || row >= s.grid.NRows {
			return false
		}
		if s.grid.IsOccupied(col, row) {
			return false
		}
	}
	return true
}

// CanMove checks if the shape, with its current rotation, would fit at (x, y).
func (s *Shape) CanMove(x, y int64) bool {
	return s.fits(s.Rotation, x, y)
}

func (s *Shape) MoveLeft() {
	if s.Removed {
		return
	}
	if s.CanMove(s.Pos.X-1, s.Pos.Y) {
		s.Pos.X--
	}
}

func (s *Shape) MoveRight() {
	if s.Removed {
		return
	}
	if s.CanMove(s.Pos.X+1, s.Pos.Y) {
		s.Pos.X++
	}
}

// MoveDown drops the shape one row. If it can't drop, it gets locked into the
// grid where it is and marked as removed.
func (s *Shape) MoveDown() {
	if s.Removed {
		return
	}
	if s.CanMove(s.Pos.X, s.Pos.Y+1) {
		s.Pos.Y++
		return
	}
	cells := s.Cells()
	s.grid.Lock(cells[:])
	s.Removed = true
}

// RotateRight goes to the next rotation, unless the shape wouldn't fit in the
// new rotation at the current position. There are no wall kicks.
func (s *Shape) RotateRight() {
	if s.Removed {
		return
	}
	next := (s.Rotation + 1) % NRotations
	if s.fits(next, s.Pos.X, s.Pos.Y) {
		s.Rotation = next
	}
}
