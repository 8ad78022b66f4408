package main

// Grid rules
// - The grid has NCols columns and NRows rows. Row 0 is at the top.
// - A cell is either empty (color 0) or occupied by a color in [1, NColors).
// - Columns outside [0, NCols) and rows below the bottom are walls. Rows above
// the top are open space, so a piece may stick out above the visible area
// while it spawns.
// - A row whose cells are all occupied is removed. Everything above it drops
// by one row and an empty row appears at the top.

type Cell struct {
	Pos   Pt
	Color int64
}

type Grid struct {
	NCols int64
	NRows int64
	cells Mat
}

func NewGrid(nCols, nRows int64) *Grid {
	return &Grid{
		NCols: nCols,
		NRows: nRows,
		cells: NewMat(Pt{nCols, nRows}),
	}
}

// IsOccupied is meant for collision queries, so it answers the question "is
// this position blocked?" for positions outside the grid as well.
func (g *Grid) IsOccupied(col, row int64) bool {
	if col < 0 || col >= g.NCols || row >= g.NRows {
		return true
	}
	if row < 0 {
		return false
	}
	return g.cells.Get(Pt{col, row}) != 0
}

// Color returns the color index of a cell inside the grid, 0 if it is empty.
func (g *Grid) Color(col, row int64) int64 {
	return g.cells.Get(Pt{col, row})
}

// Lock makes cells a permanent part of the grid. Cells outside the grid are
// skipped.
func (g *Grid) Lock(cells []Cell) {
	for _, c := range cells {
		if !g.cells.InBounds(c.Pos) {
			continue
		}
		g.cells.Set(c.Pos, c.Color)
	}
}

// ClearLines removes all full rows and returns their indices, as they were
// before the removal, from bottom to top.
func (g *Grid) ClearLines() (removed []int64) {
	// Compact the grid towards the bottom: walk the rows from the bottom up and
	// copy every row that survives to the next free slot. Rows keep their
	// relative order.
	dst := g.NRows - 1
	for src := g.NRows - 1; src >= 0; src-- {
		if g.cells.RowFull(src) {
			removed = append(removed, src)
			continue
		}
		if dst != src {
			g.cells.CopyRow(src, dst)
		}
		dst--
	}
	for y := dst; y >= 0; y-- {
		g.cells.ClearRow(y)
	}
	return
}

// CheckLines removes all full rows and returns how many were removed.
func (g *Grid) CheckLines() int64 {
	return int64(len(g.ClearLines()))
}

// OccupiedCells lists the occupied cells in row-major order.
func (g *Grid) OccupiedCells() (cells []Cell) {
	for y := int64(0); y < g.NRows; y++ {
		for x := int64(0); x < g.NCols; x++ {
			if c := g.Color(x, y); c != 0 {
				cells = append(cells, Cell{Pt{x, y}, c})
			}
		}
	}
	return
}
