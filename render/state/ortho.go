// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package state implements the GPU state-change minimizer described
// in spec.md §4.5-§4.6: the orthographic projection builder, and
// blend/program/scissor/viewport caches that skip redundant function-
// table calls.
package state

// Ortho builds the column-major orthographic projection matrix for a
// w x h viewport (spec.md §4.5). toTexture selects the sign of the Y
// term and the bottom-left-vs-top-left origin flip: rendering to a
// texture target keeps GL's bottom-left convention, rendering to the
// window flips Y since window coordinates are top-left-origin.
// Zero-area viewports are a no-op, returning the zero matrix.
func Ortho(w, h int, toTexture bool) [4][4]float32 {
	if w <= 0 || h <= 0 {
		return [4][4]float32{}
	}
	sx := 2 / float32(w)
	sy := 2 / float32(h)
	ty := float32(1)
	if !toTexture {
		sy = -sy
		ty = -1
	}
	return [4][4]float32{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, 0, 0},
		{-1, ty, 0, 1},
	}
}
