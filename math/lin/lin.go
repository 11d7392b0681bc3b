// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the small amount of linear math the 2D batching
// core needs: a 2D vector type (the render_copy_ex adapter's rotation
// pivot) and scalar degree/radian, clamp and almost-equals helpers.
// The orthographic projection lives in render/state and does not use
// this package. It is a trimmed descendant of the
// engine's original 3D math library; quaternions, 4x4 general matrices,
// and transform composition were dropped since nothing in a 2D
// orthographic batcher exercises them.
//
// Package lin is provided as part of the accel2d renderer core.
package lin

import "github.com/chewxy/math32"

// Various linear math constants.
const (
	PI     float32 = math32.Pi
	PIx2   float32 = PI * 2
	DegRad float32 = PIx2 / 360.0 // X degrees * DegRad = Y radians
	RadDeg float32 = 360.0 / PIx2 // Y radians * RadDeg = X degrees

	// Epsilon is used to distinguish when a float is close enough to a number.
	Epsilon float32 = 0.000001
)

// Rad converts degrees to radians.
func Rad(deg float32) float32 { return deg * DegRad }

// Deg converts radians to degrees.
func Deg(rad float32) float32 { return rad * RadDeg }

// Aeq (~=) almost-equals returns true if the difference between a and b is
// so small that it doesn't matter.
func Aeq(a, b float32) bool { return math32.Abs(a-b) < Epsilon }

// Clamp returns a scalar value (one of: s, lb, ub) guaranteed to be within
// the range given by lower bound lb and upper bound ub.
func Clamp(s, lb, ub float32) float32 {
	switch {
	case s < lb:
		return lb
	case s > ub:
		return ub
	}
	return s
}
