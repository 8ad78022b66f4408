package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"slices"
)

// keyBindings maps the World's logical keys to keyboard keys.
var keyBindings = [NKeys]ebiten.Key{
	KeyLeft:  ebiten.KeyArrowLeft,
	KeyRight: ebiten.KeyArrowRight,
	KeyDown:  ebiten.KeyArrowDown,
	KeyUp:    ebiten.KeyArrowUp,
}

func (g *Gui) Update() error {
	defer g.HandlePanic()

	if g.disposed {
		return ebiten.Termination
	}

	if g.folderWatcher.FolderContentsChanged() {
		Log.Debugw("data folder changed, reloading")
		g.LoadGuiData()
	}

	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	return nil
}

// ReadPlayerInput turns this frame's keyboard events into a PlayerInput.
func ReadPlayerInput() (input PlayerInput) {
	for i, k := range keyBindings {
		input.KeysDown[i] = inpututil.IsKeyJustPressed(k)
		input.KeysUp[i] = inpututil.IsKeyJustReleased(k)
	}
	return
}

func (g *Gui) UpdatePlayScreen() {
	input := ReadPlayerInput()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if input.EventOccurred() {
		logKeyEvents(g.frameIdx, input)
		if g.RecordToFile {
			// IMPORTANT: save the playthrough before stepping the World. If
			// a bug in the World causes it to crash, we want to save the
			// input that caused the bug before the program crashes. Frames
			// without events are saved with the next event, or by
			// HandlePanic.
			WriteFile(g.RecordingFile, g.playthrough.Serialize())
		}
	}

	g.StepWorld(input)
	g.frameIdx++
}

func logKeyEvents(frameIdx int64, input PlayerInput) {
	for k := range NKeys {
		if input.KeysDown[k] {
			Log.Debugw("key down", "key", k.String(), "frame", frameIdx)
		}
		if input.KeysUp[k] {
			Log.Debugw("key up", "key", k.String(), "frame", frameIdx)
		}
	}
}

// StepWorld steps the World and everything that runs alongside it.
func (g *Gui) StepWorld(input PlayerInput) {
	score := g.world.Score
	level := g.world.Level
	nGamesOver := g.world.NGamesOver

	g.world.Step(input)
	g.visWorld.Step(&g.world)

	if len(g.world.JustClearedRows) > 0 {
		Log.Debugw("lines cleared", "rows", g.world.JustClearedRows,
			"score", g.world.Score, "level", g.world.Level)
	}
	if g.world.NGamesOver > nGamesOver {
		Log.Infow("game over", "score", score, "level", level,
			"frame", g.frameIdx)
		if g.state == PlayScreen {
			g.UploadPlaythrough()
		}
	}
}

// UploadPlaythrough hands a copy of the playthrough to the uploader. If the
// uploader is behind, the copy is dropped rather than blocking the game.
func (g *Gui) UploadPlaythrough() {
	if g.uploadChannel == nil {
		return
	}
	select {
	case g.uploadChannel <- g.playthrough.Clone():
	default:
		Log.Warnw("upload queue full, skipping playthrough upload",
			"id", g.playthrough.Id.String())
	}
}

// GoToFrame rebuilds the World as it was before frame targetFrameIdx was
// played. There is no better way to go back in time than redoing all the
// frames from the beginning.
func (g *Gui) GoToFrame(targetFrameIdx int64) {
	nFrames := int64(len(g.playthrough.History))
	targetFrameIdx = max(0, min(targetFrameIdx, nFrames))
	if targetFrameIdx < g.frameIdx {
		g.world = NewWorldFromPlaythrough(g.playthrough)
		g.visWorld.Reset()
		g.frameIdx = 0
	}
	for g.frameIdx < targetFrameIdx {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

// JustClickedDebug checks if the left mouse button was just pressed inside r,
// which is in debug area coordinates.
func (g *Gui) JustClickedDebug(r Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return r.ContainsPt(g.ScreenToDebug(Pt{int64(x), int64(y)}))
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))

	if g.JustPressed(ebiten.KeySpace) || g.JustClickedDebug(debugPlayButton) {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pos := g.ScreenToDebug(Pt{int64(x), int64(y)})
		if debugPlayBar.ContainsPt(pos) {
			dx := pos.X - debugPlayBar.Min.X
			targetFrameIdx = dx * nFrames / debugPlayBar.Width()
		}
	}

	if g.JustPressed(ebiten.KeyArrowLeft) && g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx -= g.FrameSkipAltArrow
	}

	if g.JustPressed(ebiten.KeyArrowRight) && g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx += g.FrameSkipAltArrow
	}

	if g.Pressed(ebiten.KeyArrowLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyArrowRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyArrowLeft) && !g.Pressed(ebiten.KeyShift) && !g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx -= g.FrameSkipArrow
	}

	if g.Pressed(ebiten.KeyArrowRight) && !g.Pressed(ebiten.KeyShift) && !g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx += g.FrameSkipArrow
	}

	if !g.playbackPaused && targetFrameIdx == g.frameIdx {
		targetFrameIdx++
	}

	targetFrameIdx = max(0, min(targetFrameIdx, nFrames))
	if targetFrameIdx == g.frameIdx+1 {
		// The usual case, play one frame with its visual effects.
		g.StepWorld(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	} else if targetFrameIdx != g.frameIdx {
		g.GoToFrame(targetFrameIdx)
	}
}

func (g *Gui) UpdateDebugCrash() {
	nFrames := int64(len(g.playthrough.History))

	// Go to the next frame.
	goToNextFrame := g.JustPressed(ebiten.KeyD) ||
		g.JustPressed(ebiten.KeyArrowRight)
	if goToNextFrame && g.frameIdx < nFrames {
		g.StepWorld(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}

	// Go to the previous frame.
	goToPreviousFrame := g.JustPressed(ebiten.KeyA) ||
		g.JustPressed(ebiten.KeyArrowLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		g.GoToFrame(g.frameIdx - 1)
	}
}
