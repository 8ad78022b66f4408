package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"os"
	"time"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play, either as a desktop executable or a .wasm in the browser. It is
// meant as a unique label for the functionality that a user/player is
// presented with.
// ReleaseVersion must change when SimulationVersion or InputVersion change.
// But it also changes for things that don't affect the simulation or the
// input format:
// - uploading playthroughs is enabled or disabled
// - asserts are enabled or disabled
// - graphics change
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	Playback
	DebugCrash
	Headless
)

type Gui struct {
	Config
	world               World
	visWorld            VisWorld
	FSys                FS
	folderWatcher       FolderWatcher
	defaultFont         font.Face
	playthrough         Playthrough
	frameIdx            int64
	state               GameState
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	FrameSkipAltArrow   int64
	FrameSkipShiftArrow int64
	FrameSkipArrow      int64
	enableDebugAreas    bool
	gameArea            Rectangle
	horizontalDebugArea Rectangle
	username            string
	uploadChannel       chan *Playthrough
	devModeEnabled      bool
	disposed            bool
}

type Config struct {
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	LoadTest      bool   `yaml:"LoadTest"`
	TestFile      string `yaml:"TestFile"`
	LogFile       string `yaml:"LogFile"`
	LogLevel      string `yaml:"LogLevel"`
	HeadlessTps   int64  `yaml:"HeadlessTps"`
}

func main() {
	var g Gui
	g.username = getUsername()
	g.FrameSkipAltArrow = 1
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Initialize the watcher with the current timestamps of files, so
		// that the first Update doesn't reload everything for nothing.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()
	InitLogger(g.LogFile, g.LogLevel)
	defer SyncLogger()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	switch g.StartState {
	case "Playback":
		g.state = Playback
		g.enableDebugAreas = true
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	case "DebugCrash":
		g.state = DebugCrash
		g.enableDebugAreas = true
		// Don't crash when we are debugging the crash. This is useful if the
		// crash was caused by one of my asserts: the World.Step() with the bug
		// can execute and I can see the results visually.
		CheckCrashes = false
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	case "Headless":
		g.state = Headless
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	case "Play":
		g.state = PlayScreen
		var b Board
		if g.LoadTest {
			var test Test
			LoadYAML(g.FSys, g.TestFile, &test)
			b = test.GetBoard()
		}
		g.playthrough = NewPlaythrough(time.Now().UnixNano(), b)
	default:
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	Log.Infow("starting", "state", g.StartState, "release", ReleaseVersion,
		"simulation", SimulationVersion, "user", g.username,
		"playthrough", g.playthrough.Id.String())

	g.world = NewWorldFromPlaythrough(g.playthrough)

	if g.state == Headless {
		g.RunHeadless()
		return
	}

	// The last input caused the crash, so run the whole playthrough except the
	// last input. This gives me a chance to see the current state of the world
	// visually, maybe place a breakpoint and inspect the state of the world
	// in the debugger, and then when I'm ready, trigger the bug.
	if g.state == DebugCrash {
		g.GoToFrame(int64(len(g.playthrough.History)) - 1)
	}

	if g.state == PlayScreen {
		// A channel size of 10 means the channel will buffer 10 playthroughs
		// before it is full. Uploads only happen at game over, so this is
		// plenty.
		g.uploadChannel = make(chan *Playthrough, 10)
		go UploadPlaythroughs(g.username, g.playthrough.Id, g.uploadChannel)
	}

	exposeDispose(&g)
	err := ebiten.RunGame(&g)
	Check(err)
	if g.uploadChannel != nil {
		close(g.uploadChannel)
	}
	Log.Infow("stopped", "frames", g.frameIdx)
}

// Dispose stops the game. The next Update ends the game loop.
func (g *Gui) Dispose() {
	g.disposed = true
}

// HandlePanic saves the playthrough before letting a panic go on, so that the
// crash can be replayed with StartState: DebugCrash.
func (g *Gui) HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	Log.Errorw("crash", "error", fmt.Sprint(r), "frame", g.frameIdx,
		"playthrough", g.playthrough.Id.String())
	if g.state == PlayScreen {
		WriteFile("crash.tetris", g.playthrough.Serialize())
	}
	SyncLogger()
	panic(r)
}
