package main

// Mat is a row-major matrix of int64 values. The zero value of a cell means
// "nothing there".
type Mat struct {
	cells []int64
	size  Pt
}

func NewMat(size Pt) Mat {
	m := Mat{}
	m.size = size
	m.cells = make([]int64, size.X*size.Y)
	return m
}

func (m *Mat) Set(pos Pt, val int64) {
	m.cells[pos.Y*m.size.X+pos.X] = val
}

func (m *Mat) Get(pos Pt) int64 {
	return m.cells[pos.Y*m.size.X+pos.X]
}

func (m *Mat) InBounds(pt Pt) bool {
	return pt.X >= 0 &&
		pt.Y >= 0 &&
		pt.Y < m.size.Y &&
		pt.X < m.size.X
}

// row returns the cells of row y. The returned slice shares memory with m.
func (m *Mat) row(y int64) []int64 {
	return m.cells[y*m.size.X : (y+1)*m.size.X]
}

// RowFull is true if no cell in row y is zero.
func (m *Mat) RowFull(y int64) bool {
	for _, v := range m.row(y) {
		if v == 0 {
			return false
		}
	}
	return true
}

// CopyRow overwrites row dst with the contents of row src.
func (m *Mat) CopyRow(src, dst int64) {
	copy(m.row(dst), m.row(src))
}

func (m *Mat) ClearRow(y int64) {
	clear(m.row(y))
}
