// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package device provides the minimal platform/window collaborator
// the renderer depends on, trimmed from the teacher's device.Device
// to just what accel2d needs: a size query, a buffer swap, and the
// resolved GPU function table. Real window creation, context binding,
// and function-pointer resolution are out of scope (spec.md §1
// Non-goals); callers supply their own Window implementation.
package device

import "github.com/gazed/accel2d/render/gpu"

// Window is the renderer's platform collaborator. The real window/
// context binding behind it is out of scope; this is a pure interface
// so the renderer core stays platform-neutral and testable.
type Window interface {
	// Size returns the window's usable drawing area in pixels.
	Size() (w, h int)
	// SwapBuffers presents the back buffer. Called once per
	// render_present; this is the home for spec.md §1's "the swap
	// call" — a platform/context operation, not a render/gpu.Funcs entry.
	SwapBuffers()
	// Funcs returns the GPU function table resolved against this
	// window's context (spec.md §1 "the GPU API itself... resolved
	// against a real context before handing it to the renderer").
	Funcs() gpu.Funcs
	// BinaryFormats reports the platform's supported precompiled
	// shader binary formats, most-preferred first (spec.md §4.3).
	BinaryFormats() []uint32
}

// EventKind enumerates the window events that invalidate renderer
// state (spec.md §4.9): size-change, show, and hide invalidate the
// current-context cache; minimize additionally forces a blocking
// GPU-side drain.
type EventKind int

const (
	Resized EventKind = iota
	Shown
	Hidden
	Minimized
)

// WindowEvent is a single notification from the platform layer.
type WindowEvent struct {
	Kind EventKind
	W, H int // populated for Kind == Resized
}
