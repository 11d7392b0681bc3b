// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "github.com/chewxy/math32"

// V2 is a 2D vector. The render_copy_ex adapter uses it for the
// rotation pivot; render/batch's Vertex stores its fields as
// [2]float32 arrays instead.
type V2 struct {
	X, Y float32
}

// Eq (==) returns true if v and a have identical elements.
func (v V2) Eq(a V2) bool { return v.X == a.X && v.Y == a.Y }

// Aeq (~=) almost-equals returns true if v and a are close enough
// that the difference doesn't matter.
func (v V2) Aeq(a V2) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) }

// Add returns v+a.
func (v V2) Add(a V2) V2 { return V2{v.X + a.X, v.Y + a.Y} }

// Sub returns v-a.
func (v V2) Sub(a V2) V2 { return V2{v.X - a.X, v.Y - a.Y} }

// Scale returns v scaled by s.
func (v V2) Scale(s float32) V2 { return V2{v.X * s, v.Y * s} }

// Rotate returns v rotated by angleDeg degrees around the origin.
// No renderer path calls it: the copy-ex adapter flips by swapping
// texture coordinates, and per-vertex rotation around an arbitrary
// center is done in the vertex shader (see spec.md §9, "Angle on the
// GPU").
func (v V2) Rotate(angleDeg float32) V2 {
	rad := Rad(angleDeg)
	s, c := math32.Sincos(rad)
	return V2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Lerp returns the linear interpolation between v and a at ratio t (0..1).
func (v V2) Lerp(a V2, t float32) V2 {
	return V2{v.X + (a.X-v.X)*t, v.Y + (a.Y-v.Y)*t}
}
