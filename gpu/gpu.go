// SPDX-License-Identifier: Unlicense OR MIT

// Package gpu prepares primitive trees for execution on a GPU
// device: it flattens a frame's scene into draw layers and schedules
// pre-recorded device jobs with viewport scoping.
//
// The device itself is an external collaborator behind the Device
// interface; this package never touches a graphics API.
package gpu

import (
	"image/color"

	"frostui.org/f32"
)

// Device is the boundary to a GPU implementation. Calls are issued
// in frame order from a single goroutine.
type Device interface {
	// BeginFrame starts a frame pass.
	BeginFrame()
	// EndFrame completes the frame and presents it.
	EndFrame()
	// Viewport restricts subsequent drawing to the given region in
	// physical pixels.
	Viewport(x, y, w, h float32)
	// Clear fills the current viewport.
	Clear(c color.NRGBA)
}

// Bundle is a pre-recorded sequence of device commands.
type Bundle interface {
	Execute(dev Device)
}

// Job pairs a command bundle with the bounds it draws into. Jobs
// enter the scene through a Custom primitive and are executed by
// Pipeline.Draw with the device viewport scoped to their bounds.
type Job struct {
	Bundle Bundle
	Bounds f32.Rectangle
}

// NewJob returns a job drawing bundle into bounds.
func NewJob(bundle Bundle, bounds f32.Rectangle) *Job {
	return &Job{Bundle: bundle, Bounds: bounds}
}

// Pipeline executes direct device jobs.
type Pipeline struct{}

// Draw executes jobs in order. Each job's viewport is its bounds
// scaled to physical pixels and intersected with the frame; jobs
// scoped away entirely are skipped. The bundles themselves are
// responsible for loading, not clearing, the target.
func (Pipeline) Draw(dev Device, jobs []*Job, frame f32.Rectangle, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	for _, job := range jobs {
		vp := scaleRect(job.Bounds, scale).Intersect(scaleRect(frame, scale))
		if vp.Empty() {
			continue
		}
		dev.Viewport(vp.Min.X, vp.Min.Y, vp.Dx(), vp.Dy())
		job.Bundle.Execute(dev)
	}
}

func scaleRect(r f32.Rectangle, scale float32) f32.Rectangle {
	return f32.Rectangle{Min: r.Min.Mul(scale), Max: r.Max.Mul(scale)}
}
