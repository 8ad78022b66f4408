package main

import "image"

// Rectangle is axis aligned. Min is the top-left corner, Max the bottom-right
// corner, exclusive, the same convention as image.Rectangle.
type Rectangle struct {
	Min Pt
	Max Pt
}

// NewRectangleI creates a rectangle from its top-left corner and its size.
func NewRectangleI(x, y, width, height int64) Rectangle {
	return Rectangle{Pt{x, y}, Pt{x + width, y + height}}
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	} else {
		return x
	}
}

func (r Rectangle) Width() int64 {
	return Abs(r.Max.X - r.Min.X)
}

func (r Rectangle) Height() int64 {
	return Abs(r.Max.Y - r.Min.Y)
}

func (r Rectangle) Center() Pt {
	return Pt{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func (r Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X < r.Max.X && pt.Y >= r.Min.Y && pt.Y < r.Max.Y
}

func (r Rectangle) ToImageRectangle() image.Rectangle {
	return image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
}
