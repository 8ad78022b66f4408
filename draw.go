package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"image/color"
)

// Palette maps color indices to colors. Index 0 is the empty cell, index
// t+1 is the color of shape type t.
var Palette = [NShapes + 1]color.NRGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x00, G: 0xa3, B: 0x00, A: 0xff},
	{R: 0x9f, G: 0x00, B: 0xa7, A: 0xff},
	{R: 0x60, G: 0x3c, B: 0xba, A: 0xff},
	{R: 0xff, G: 0xc4, B: 0x0d, A: 0xff},
	{R: 0xee, G: 0x11, B: 0x11, A: 0xff},
	{R: 0x99, G: 0xb4, B: 0x33, A: 0xff},
	{R: 0xff, G: 0x00, B: 0x97, A: 0xff},
}

var backgroundColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var textColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 255}

func PaletteColor(idx int64) color.NRGBA {
	if idx < 0 || idx >= int64(len(Palette)) {
		panic(fmt.Errorf("invalid color index: %d", idx))
	}
	return Palette[idx]
}

func (g *Gui) Draw(screen *ebiten.Image) {
	defer g.HandlePanic()

	// The screen bitmap has the aspect ratio of the application window. We fill
	// it with the background. Then, we select the area inside of screen on
	// which we draw all the actually interesting elements of our game.
	screen.Fill(backgroundColor)

	g.DrawPlayScreen(SubImage(screen, g.gameArea))

	if g.enableDebugAreas {
		g.DrawDebugControlsHorizontal(SubImage(screen, g.horizontalDebugArea))
	}
}

func (g *Gui) DrawPlayScreen(screen *ebiten.Image) {
	w := &g.world

	// Draw locked cells.
	for _, c := range w.Grid.OccupiedCells() {
		DrawCell(screen, c.Pos, PaletteColor(c.Color))
	}

	// Draw the falling shape on top.
	if w.Shape != nil && !w.Shape.Removed {
		for _, c := range w.Shape.Cells() {
			DrawCell(screen, c.Pos, PaletteColor(c.Color))
		}
	}

	// Flash the rows that were just cleared.
	for _, a := range g.visWorld.Temporary {
		alpha := uint8(255 * a.Animation.Value)
		pos := CellToGame(Pt{0, a.Row})
		DrawRect(screen, float32(pos.X), float32(pos.Y),
			PlayAreaWidth, CellPixelSize,
			color.NRGBA{R: 255, G: 255, B: 255, A: alpha})
	}

	DrawText(screen, g.defaultFont, fmt.Sprintf("Score: %d", w.Score),
		5, PlayAreaHeight-8, textColor)
	DrawText(screen, g.defaultFont, fmt.Sprintf("Level: %d", w.Level),
		PlayAreaWidth-45, PlayAreaHeight-8, textColor)
}

func (g *Gui) DrawDebugControlsHorizontal(screen *ebiten.Image) {
	// Background of playback bar.
	screen.Fill(color.NRGBA{R: 60, G: 60, B: 60, A: 255})

	// Play/pause button: a square when paused, a bar when playing.
	b := debugPlayButton
	if g.playbackPaused {
		DrawRect(screen, float32(b.Min.X+4), float32(b.Min.Y+4),
			float32(b.Width()-8), float32(b.Height()-8), textColor)
	} else {
		DrawRect(screen, float32(b.Min.X+8), float32(b.Min.Y+4),
			4, float32(b.Height()-8), textColor)
	}

	// Play bar.
	bar := debugPlayBar
	DrawRect(screen, float32(bar.Min.X), float32(bar.Center().Y-1),
		float32(bar.Width()), 2, textColor)

	// Playback bar cursor.
	nFrames := max(int64(len(g.playthrough.History)), 1)
	cursorX := bar.Min.X + g.frameIdx*bar.Width()/nFrames
	DrawRect(screen, float32(cursorX-2), float32(bar.Min.Y+4), 4,
		float32(bar.Height()-8), Palette[1])
}
