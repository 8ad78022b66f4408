package main

// Visual areas
// ------------
//
// - The play area: the space the World is drawn in. One cell of the grid is
// CellPixelSize pixels. The score and level are written under the grid.
// - The game area: in this game it's the same as the play area. It has a fixed
// size, known at compile time.
// - The debug area: an area under the game area, with playback controls. It
// has a fixed size known at compile time but the decision to display it or
// not happens at runtime.
// - The screen: contains the game area, the debug area if it is displayed and
// any margins necessary to fill in the application window on the OS. Its size
// is known only at run time.

const CellPixelSize = 18
const PlayAreaWidth = NCols * CellPixelSize
const PlayAreaHeight = 380
const GameWidth = PlayAreaWidth
const GameHeight = PlayAreaHeight
const DebugHeight = 20

// The areas below are relative to the debug area and are known at compile
// time.
var debugPlayButton = NewRectangleI(0, 0, DebugHeight, DebugHeight)
var debugPlayBar = NewRectangleI(DebugHeight+4, 0, GameWidth-DebugHeight-8,
	DebugHeight)

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	defer g.HandlePanic()

	// The screen bitmap returned here is scaled by Ebitengine to fit the
	// window, keeping its aspect ratio. Give it the window's aspect ratio so
	// the background covers the whole window, and make it just large enough
	// for the game area (plus the debug area when shown). The game area then
	// stays at the top, centered horizontally, at exactly GameWidth x
	// GameHeight logical pixels however the window is resized.
	if outsideWidth <= 0 || outsideHeight <= 0 {
		outsideWidth, outsideHeight = GameWidth, GameHeight
	}
	outsideAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	screenAspectRatio := outsideAspectRatio
	gameWidth := int64(GameWidth)
	gameHeight := int64(GameHeight)
	if g.enableDebugAreas {
		gameHeight += DebugHeight
	}
	gameAspectRatio := float64(gameWidth) / float64(gameHeight)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = int(gameWidth)
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = int(gameHeight)
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}

	// Define the game area relative to the total screen area.
	g.gameArea = NewRectangleI((int64(screenWidth)-gameWidth)/2, 0,
		GameWidth, GameHeight)

	// Define the debug area relative to the total screen area.
	g.horizontalDebugArea = NewRectangleI(
		g.gameArea.Min.X,
		g.gameArea.Max.Y,
		GameWidth,
		DebugHeight)
	return
}

func (g *Gui) ScreenToDebug(pt Pt) Pt {
	return pt.Minus(g.horizontalDebugArea.Min)
}

// CellToGame gives the top-left corner of a grid cell, in game area
// coordinates.
func CellToGame(cell Pt) Pt {
	return cell.Times(CellPixelSize)
}
