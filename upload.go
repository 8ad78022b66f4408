package main

import (
	"fmt"
	"github.com/google/uuid"
)

// UploadPlaythroughs registers the session id and then uploads every
// playthrough it receives, one at a time, until the channel is closed. It runs
// in its own goroutine so that the game never waits for the network. A failed
// request is logged and skipped.
func UploadPlaythroughs(user string, id uuid.UUID, ch <-chan *Playthrough) {
	logFailure("playthrough registration failed", id, func() {
		InitializeIdInDbHttp(user, ReleaseVersion, SimulationVersion,
			InputVersion, id)
	})
	for p := range ch {
		logFailure("playthrough upload failed", p.Id, func() {
			UploadDataToDbHttp(user, p.ReleaseVersion, p.SimulationVersion,
				p.InputVersion, p.Id, p.Serialize())
			Log.Debugw("playthrough uploaded", "id", p.Id.String(),
				"frames", len(p.History))
		})
	}
}

func logFailure(msg string, id uuid.UUID, f func()) {
	defer func() {
		if r := recover(); r != nil {
			Log.Errorw(msg, "id", id.String(), "error", fmt.Sprint(r))
		}
	}()
	f()
}
