package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"image/color"
)

// DrawRect fills a rectangle on screen.
// x and y are in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func DrawRect(screen *ebiten.Image, x, y, width, height float32, c color.Color) {
	minPt := screen.Bounds().Min
	vector.DrawFilledRect(screen, float32(minPt.X)+x, float32(minPt.Y)+y,
		width, height, c, false)
}

// DrawCell draws one cell of the grid. A 1 pixel gap is left on the right and
// at the bottom so that neighbouring cells stay distinguishable.
func DrawCell(screen *ebiten.Image, cell Pt, c color.Color) {
	pos := CellToGame(cell)
	DrawRect(screen, float32(pos.X), float32(pos.Y),
		CellPixelSize-1, CellPixelSize-1, c)
}

// DrawText writes message with its baseline starting at (x, y), in the same
// coordinate system as DrawRect.
func DrawText(screen *ebiten.Image, face font.Face, message string, x, y int,
	c color.Color) {
	minPt := screen.Bounds().Min
	text.Draw(screen, message, face, minPt.X+x, minPt.Y+y, c)
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r Rectangle) *ebiten.Image {
	// Do this because when dealing with sub-images in general I think in
	// relative coordinates. So for img2 = img1.SubImage(pt1, pt2) I now expect
	// that img2.At(0, 0) indicates the same pixel as img1.At(pt1). Ebitengine
	// doesn't do it like that. I still need to use img2.At(pt1) to indicate
	// pixel img1.At(pt1).
	rect := r.ToImageRectangle()
	minPt := screen.Bounds().Min
	rect.Min = rect.Min.Add(minPt)
	rect.Max = rect.Max.Add(minPt)
	return screen.SubImage(rect).(*ebiten.Image)
}
