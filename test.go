package main

import "fmt"

// Board is the content of the grid at the start of a game.
type Board struct {
	Cells []Cell
}

// Test describes a starting board in a human-editable way, for debugging
// particular situations. Rows are aligned to the bottom of the grid. In a row,
// '.' is an empty cell and a digit from 1 to 7 is a cell of that color.
//
// Example:
//
//	Rows:
//	  - "....1....."
//	  - "1111.11111"
type Test struct {
	Rows []string `yaml:"Rows"`
}

func (t *Test) GetBoard() (b Board) {
	if int64(len(t.Rows)) > NRows {
		Check(fmt.Errorf("test has %d rows, the grid only has %d",
			len(t.Rows), NRows))
	}
	startRow := NRows - int64(len(t.Rows))
	for i, row := range t.Rows {
		if int64(len(row)) != NCols {
			Check(fmt.Errorf("row %d has %d cells instead of %d: %q", i,
				len(row), NCols, row))
		}
		for x, c := range row {
			switch {
			case c == '.':
			case c >= '1' && c <= '0'+NShapes:
				b.Cells = append(b.Cells, Cell{
					Pos:   Pt{int64(x), startRow + int64(i)},
					Color: int64(c - '0'),
				})
			default:
				Check(fmt.Errorf("invalid cell %q in row %d", c, i))
			}
		}
	}
	return
}
