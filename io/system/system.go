// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events usually handled at the top-level
// program level.
package system

import "image"

// A ResizeEvent is generated when the logical size of the surface
// hosting the interface changes.
type ResizeEvent struct {
	// Size is the new dimensions of the surface.
	Size image.Point
}

// DestroyEvent is the last event sent through
// an event channel.
type DestroyEvent struct {
	// Err is nil for normal closures. If the surface
	// is prematurely lost, Err is the cause.
	Err error
}

// A StageEvent is generated whenever the stage of the
// surface changes.
type StageEvent struct {
	Stage Stage
}

// Stage of a surface.
type Stage uint8

const (
	// StagePaused is the Stage for inactive surfaces.
	// Inactive surfaces don't receive frames.
	StagePaused Stage = iota
	// StageRunning is for active surfaces.
	StageRunning
)

func (l Stage) String() string {
	switch l {
	case StagePaused:
		return "StagePaused"
	case StageRunning:
		return "StageRunning"
	default:
		panic("unexpected Stage value")
	}
}

func (ResizeEvent) ImplementsEvent()  {}
func (StageEvent) ImplementsEvent()   {}
func (DestroyEvent) ImplementsEvent() {}
