package main

import (
	"context"
	"fmt"
	"time"
)

// RunAtFixedRate calls step tps times per second, passing it the duration of
// a tick in seconds, until step returns false or ctx is done.
// The interactive game doesn't need this, Ebitengine already calls Update at a
// fixed rate. It is for running the World without a window.
func RunAtFixedRate(ctx context.Context, tps int64, step func(dt float64) bool) error {
	if tps <= 0 || tps > int64(time.Second) {
		return fmt.Errorf("invalid tick rate: %d", tps)
	}
	dt := 1.0 / float64(tps)
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !step(dt) {
				return nil
			}
		}
	}
}
