package main

import (
	"context"
	"fmt"
)

// RunHeadless replays the playthrough without a window, HeadlessTps frames per
// second, and logs how the game went. It's meant for checking recordings
// from the command line, with StartState: Headless.
func (g *Gui) RunHeadless() {
	history := g.playthrough.History
	err := RunAtFixedRate(context.Background(), g.HeadlessTps,
		func(dt float64) bool {
			if g.frameIdx >= int64(len(history)) {
				return false
			}
			g.StepWorld(history[g.frameIdx])
			g.frameIdx++
			return true
		})
	if err != nil {
		Check(fmt.Errorf("headless replay failed: %w", err))
	}
	Log.Infow("headless replay finished",
		"frames", g.frameIdx,
		"score", g.world.Score,
		"level", g.world.Level,
		"lines", g.world.LinesCleared,
		"gamesOver", g.world.NGamesOver,
		"regressionId", RegressionId(&g.playthrough))
}
