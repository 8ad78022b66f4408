package main

import (
	"embed"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// It's a hack but possibly a quick and very useful one.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible. We might be in the browser, in which
	// case we want to see an error in the developer console instead of a page
	// that keeps trying to load and reports nothing.
	previousVal := CheckCrashes
	if _, embedded := g.FSys.(*embed.FS); !embedded {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	g.UpdateWindowSize()

	if g.defaultFont == nil {
		fontData, err := opentype.Parse(goregular.TTF)
		Check(err)

		g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
			Size:    10,
			DPI:     72,
			Hinting: font.HintingVertical,
		})
		Check(err)
	}
}

func (g *Gui) UpdateWindowSize() {
	_, height := ebiten.ScreenSizeInFullscreen()
	windowHeight := height * 8 / 10
	windowWidth := windowHeight * GameWidth / GameHeight
	if windowHeight <= 0 {
		windowWidth, windowHeight = GameWidth*2, GameHeight*2
	}
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Tetris")
}
