package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes
// they are considered "the same", even though they may be implemented
// differently.
//
// The world is "the same" if it has:
// - the same cells in the grid, with the same colors
// - the same active shape, at the same position and rotation
// - the same score, level and fall timer
// - the same key states
//
// The random generator is not included. If it diverges, the shapes diverge
// soon after and that is caught anyway.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	SerializeSlice(buf, w.Grid.OccupiedCells())
	if w.Shape == nil {
		Serialize(buf, false)
	} else {
		Serialize(buf, true)
		Serialize(buf, w.Shape.Type)
		Serialize(buf, w.Shape.Rotation)
		Serialize(buf, w.Shape.Pos)
		Serialize(buf, w.Shape.Removed)
	}
	Serialize(buf, w.Score)
	Serialize(buf, w.Level)
	Serialize(buf, w.FallTimer)
	for i := range w.Keys {
		Serialize(buf, w.Keys[i].State)
		Serialize(buf, w.Keys[i].HoldTime)
	}
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World. It is meant to check if the
// state of the World at each frame in the playthrough is the same after a
// refactorization of the World.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the implementation of the World.
// - Compute the RegressionId for the same playthrough.
// - If the RegressionId hasn't changed, the refactoring of World did not alter
// the playthrough.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()

	w := NewWorldFromPlaythrough(*p)
	hash.Write(w.StateBytes())

	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
