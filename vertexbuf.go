// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package accel2d

import (
	"encoding/binary"
	"math"

	"github.com/gazed/accel2d/render/batch"
)

// vertexBytes packs vs into the little-endian byte layout
// buffer_sub_data uploads (spec.md §3 Vertex: 11 interleaved float32
// fields). gpu.Funcs takes []byte rather than a raw float pointer so
// it stays mockable (render/gpu.Fake); packing happens once per flush,
// not per vertex.
func vertexBytes(vs []batch.Vertex) []byte {
	out := make([]byte, len(vs)*batch.StrideBytes)
	for i, v := range vs {
		off := i * batch.StrideBytes
		putFloats(out[off:], v.Pos[0], v.Pos[1], v.Tex[0], v.Tex[1], v.Angle,
			v.Center[0], v.Center[1], v.Color[0], v.Color[1], v.Color[2], v.Color[3])
	}
	return out
}

func putFloats(dst []byte, fs ...float32) {
	for i, f := range fs {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(f))
	}
}
