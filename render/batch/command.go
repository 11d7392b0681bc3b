// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package batch

// Command is one GPU draw_arrays call's worth of state (spec.md §3
// DrawCommand). Commands form an ordered sequence; command n+1's
// VertexOffset equals command n's VertexOffset+VertexCount.
type Command struct {
	Kind         PrimitiveKind
	Blend        BlendMode
	Texture      BatchedTexture // nil for untextured fills/lines/points
	VertexOffset int
	VertexCount  int
}

// sameKeys reports whether a new draw with the given coalescing keys
// can extend this command in place (spec.md §4.2).
func (c *Command) sameKeys(tex BatchedTexture, blend BlendMode, kind PrimitiveKind) bool {
	return c.Texture == tex && c.Blend == blend && c.Kind == kind
}
