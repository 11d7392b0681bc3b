// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package state

import (
	"github.com/gazed/accel2d/render/gpu"
	"github.com/gazed/accel2d/render/shader"
)

// Rect is a local axis-aligned rectangle, kept separate from
// render/texture.Rect so this package doesn't need to import texture
// just for a four-int tuple.
type Rect struct{ X, Y, W, H int }

func (r Rect) intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 < x0 || y1 < y0 {
		return Rect{}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Minimizer caches the last-applied GPU state so redundant function-
// table calls are skipped (spec.md §4.5-§4.6). It holds no GPU
// resources of its own.
type Minimizer struct {
	funcs gpu.Funcs

	haveBlend bool
	blend     gpu.BlendMode

	haveProgram bool
	program     uint32

	haveViewport bool
	viewport     Rect
	viewportDirty bool

	scissorEnabled    bool
	haveScissorEnable bool
	haveScissorRect   bool
	scissorRect       Rect

	haveClearColor bool
	clearColor     [4]float32

	haveTexCoord bool
	texCoordOn   bool
}

// New builds a Minimizer bound to funcs.
func New(funcs gpu.Funcs) *Minimizer { return &Minimizer{funcs: funcs} }

// Blend applies mode via BlendFuncSeparate only if it differs from the
// last-applied mode.
func (m *Minimizer) Blend(mode gpu.BlendMode) {
	if m.haveBlend && m.blend == mode {
		return
	}
	m.funcs.EnableBlend(mode != gpu.BlendNone)
	m.funcs.BlendFuncSeparate(mode)
	m.haveBlend, m.blend = true, mode
}

// UseProgram applies handle via UseProgram only if it differs from the
// currently bound program.
func (m *Minimizer) UseProgram(handle uint32) {
	if m.haveProgram && m.program == handle {
		return
	}
	m.funcs.UseProgram(handle)
	m.haveProgram, m.program = true, handle
}

// Viewport applies r via Viewport only if it differs from the last-
// applied viewport, marking the projection dirty so the next draw
// re-uploads it regardless of which program is current (spec.md §4.5).
func (m *Minimizer) Viewport(r Rect) {
	if m.haveViewport && m.viewport == r {
		return
	}
	m.funcs.Viewport(r.X, r.Y, r.W, r.H)
	m.haveViewport, m.viewport = true, r
	m.viewportDirty = true
}

// NeedsProjectionUpload reports whether p's cached projection must be
// re-uploaded: true if p has never had one uploaded, if the computed
// matrix differs from p's cached copy, or if the viewport changed
// since the last upload to any program (spec.md §3 RendererState
// invariant on exactly-one-current-program/viewport/projection).
func (m *Minimizer) NeedsProjectionUpload(p *shader.Program, proj [4][4]float32) bool {
	return !p.HasProjection || p.LastProjection != proj || m.viewportDirty
}

// MarkProjectionUploaded records proj as p's current projection and
// clears the viewport-dirty flag (call immediately after the caller
// issues UniformMatrix4fv).
func (m *Minimizer) MarkProjectionUploaded(p *shader.Program, proj [4][4]float32) {
	p.LastProjection = proj
	p.HasProjection = true
	m.viewportDirty = false
}

// EnableTexCoord toggles the tex-coord vertex attribute array only if
// it differs from the last-applied state: enabled for textured
// draws, disabled for solid fills/lines/points (spec.md §2 "State
// minimizer... tex-coord-attribute").
func (m *Minimizer) EnableTexCoord(enabled bool) {
	if m.haveTexCoord && m.texCoordOn == enabled {
		return
	}
	if enabled {
		m.funcs.EnableVertexAttribArray(gpu.AttribTexCoord)
	} else {
		m.funcs.DisableVertexAttribArray(gpu.AttribTexCoord)
	}
	m.haveTexCoord, m.texCoordOn = true, enabled
}

// Scissor clips r to the active viewport and applies it via Scissor
// only if the clamped rect differs from the last-applied one
// (spec.md §7 "scissor rectangle intersection with viewport").
func (m *Minimizer) Scissor(r Rect) {
	clamped := r
	if m.haveViewport {
		clamped = r.intersect(m.viewport)
	}
	if m.haveScissorRect && m.scissorRect == clamped {
		return
	}
	m.funcs.Scissor(clamped.X, clamped.Y, clamped.W, clamped.H)
	m.haveScissorRect, m.scissorRect = true, clamped
}

// EnableScissorTest toggles the scissor test only if it differs from
// the last-applied state.
func (m *Minimizer) EnableScissorTest(enabled bool) {
	if m.haveScissorEnable && m.scissorEnabled == enabled {
		return
	}
	m.funcs.EnableScissorTest(enabled)
	m.haveScissorEnable, m.scissorEnabled = true, enabled
}

// Clear writes ClearColor only if it differs from the cached color,
// temporarily disabling the scissor test around the clear if it was
// enabled (spec.md §4.6), then restores it and issues Clear.
func (m *Minimizer) Clear(r, g, b, a float32) {
	color := [4]float32{r, g, b, a}
	if !m.haveClearColor || m.clearColor != color {
		m.funcs.ClearColor(r, g, b, a)
		m.haveClearColor, m.clearColor = true, color
	}
	wasEnabled := m.scissorEnabled
	if wasEnabled {
		m.funcs.EnableScissorTest(false)
	}
	m.funcs.Clear()
	if wasEnabled {
		m.funcs.EnableScissorTest(true)
	}
}

// Invalidate clears every cached state, forcing the next call of each
// kind to issue its GPU call unconditionally. Used on context switch
// and render-target change (spec.md §4.2 flush trigger (f)).
func (m *Minimizer) Invalidate() {
	*m = *New(m.funcs)
}
