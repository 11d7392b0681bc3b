// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package batch implements the vertex arena and command coalescer
// described in spec.md §4.1-§4.2: a pre-allocated interleaved vertex
// array plus a parallel command log, coalescing compatible draws into
// single draw_arrays calls and deciding when the batch must flush.
//
// This generalizes the teacher's render.Packets reuse pattern
// (github.com/gazed/vu/render/packet.go's Packets.GetPacket, which
// grows a reusable slice and resets entries in place rather than
// reallocating every frame) to a single flat vertex arena sized for
// GPU upload instead of a per-model packet list.
package batch

import "github.com/gazed/accel2d/render/gpu"

// Vertex is the fixed interleaved layout frozen by spec.md §3: 11
// floats bound to shader attribute indices 0..4 by name. Field order
// matches AttribPosition..AttribColor in render/gpu.
type Vertex struct {
	Pos    [2]float32
	Tex    [2]float32
	Angle  float32 // degrees; see spec.md §4.5 and §9 "Angle on the GPU"
	Center [2]float32
	Color  [4]float32 // normalized 0-1
}

// Stride is sizeof(Vertex) in float32 units, used for vertex_attrib_pointer.
const Stride = 11

// StrideBytes is sizeof(Vertex) in bytes, assuming 4-byte float32 fields.
const StrideBytes = Stride * 4

// The Offset* constants give the byte offset of each attribute within one
// Vertex, assuming 4-byte float32 fields in declaration order.
const (
	OffsetPos    = 0
	OffsetTex    = 2 * 4
	OffsetAngle  = 4 * 4
	OffsetCenter = 5 * 4
	OffsetColor  = 7 * 4
)

// BatchedTexture is the subset of texture state the batcher needs to
// track. A real texture.Texture satisfies this; keeping it as a
// narrow interface here avoids render/batch depending on render/texture.
type BatchedTexture interface {
	SetInBatch(bool)
}

// PrimitiveKind and BlendMode are re-exported so callers of this
// package don't need to also import render/gpu for the coalescing keys.
type PrimitiveKind = gpu.PrimitiveKind
type BlendMode = gpu.BlendMode

const (
	Points    = gpu.Points
	Lines     = gpu.Lines
	Triangles = gpu.Triangles
)

const (
	BlendNone  = gpu.BlendNone
	BlendBlend = gpu.BlendBlend
	BlendAdd   = gpu.BlendAdd
	BlendMod   = gpu.BlendMod
)
