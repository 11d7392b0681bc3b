// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package accel2d

import (
	"github.com/gazed/accel2d/internal/errs"
	"github.com/gazed/accel2d/math/lin"
	"github.com/gazed/accel2d/render/batch"
	"github.com/gazed/accel2d/render/gpu"
	"github.com/gazed/accel2d/render/shader"
	"github.com/gazed/accel2d/render/state"
	"github.com/gazed/accel2d/render/texture"
)

// colorArray returns c as the packed [4]float32 Vertex.Color layout.
func colorArray(c Color) [4]float32 { return [4]float32{c.R, c.G, c.B, c.A} }

// RenderClear fills the current render target with SetDrawColor's
// color (spec.md §8 S1). This forces a flush first: a clear is a
// whole-target operation that must not reorder against pending draws.
func (r *Renderer) RenderClear() error {
	r.batcher.RequestFlush(batch.FlushRenderTargetChange, r.flushBatch)
	r.state.Clear(r.drawColor.R, r.drawColor.G, r.drawColor.B, r.drawColor.A)
	r.drainErrors("RenderClear")
	return nil
}

// RenderDrawPoints submits one Points-kind draw per point, coalesced
// by the batcher into as few commands as fit the arena. Unlike the
// source this generalizes (spec.md §9 "TODO: make loop and draw by
// parts"), arbitrarily large point counts never fail: each point that
// doesn't fit the remaining arena space simply triggers a flush first.
func (r *Renderer) RenderDrawPoints(points []Point, color Color) error {
	if len(points) == 0 {
		return nil
	}
	col := colorArray(color)
	for _, p := range points {
		v := batch.Vertex{Pos: [2]float32{p.X, p.Y}, Color: col}
		r.batcher.Submit([]batch.Vertex{v}, nil, r.drawBlend, gpu.Points, r.flushBatch)
	}
	return nil
}

// RenderDrawLines submits one Lines-kind draw per consecutive pair of
// points (a line strip of len(points)-1 segments), one Submit call per
// segment so an arbitrarily long strip never overflows the arena in a
// single call (spec.md §9, same loop-instead-of-fail fix as RenderFillRects).
func (r *Renderer) RenderDrawLines(points []Point, color Color) error {
	if len(points) < 2 {
		return nil
	}
	col := colorArray(color)
	for i := 0; i < len(points)-1; i++ {
		segment := []batch.Vertex{
			{Pos: [2]float32{points[i].X, points[i].Y}, Color: col},
			{Pos: [2]float32{points[i+1].X, points[i+1].Y}, Color: col},
		}
		r.batcher.Submit(segment, nil, r.drawBlend, gpu.Lines, r.flushBatch)
	}
	return nil
}

// RenderFillRects submits one Triangles-kind draw, 6 vertices (two
// triangles, no index buffer, spec.md §4.1) per rect, one Submit call
// per rect. The source refuses batches larger than MAX_VERTICES/6 in
// a single call (spec.md §9 "TODO: make loop and draw by parts"); this
// loops instead, so rects longer than the arena capacity simply flush
// partway through rather than failing.
func (r *Renderer) RenderFillRects(rects []Rect, color Color) error {
	if len(rects) == 0 {
		return nil
	}
	col := colorArray(color)
	for _, rc := range rects {
		vs := rectVertices(rc, 0, 0, 1, 1, 0, lin.V2{}, col)
		r.batcher.Submit(vs, nil, r.drawBlend, gpu.Triangles, r.flushBatch)
	}
	return nil
}

// RenderCopy draws src from t's pixels into dst with no rotation/flip.
func (r *Renderer) RenderCopy(t *texture.Texture, src, dst Rect) error {
	return r.renderCopyEx(t, src, dst, 0, nil, FlipNone)
}

// RenderCopyEx draws src from t's pixels into dst, rotated
// angleDegrees around center (defaulting to dst's midpoint when nil)
// and mirrored per flip (spec.md §6, §7 supplemented flip flags).
// The shader receives 360-angle so rotation matches a top-left-origin,
// Y-down coordinate system (spec.md §6 constraints).
func (r *Renderer) RenderCopyEx(t *texture.Texture, src, dst Rect, angle float64, center *Point, flip Flip) error {
	return r.renderCopyEx(t, src, dst, float32(angle), center, flip)
}

func (r *Renderer) renderCopyEx(t *texture.Texture, src, dst Rect, angle float32, center *Point, flip Flip) error {
	if t == nil {
		return errs.New(errs.InvalidState, "accel2d.RenderCopyEx", "nil texture")
	}
	pivot := lin.V2{X: float32(dst.W) / 2, Y: float32(dst.H) / 2}
	if center != nil {
		pivot = lin.V2{X: center.X, Y: center.Y}
	}
	u0, v0 := float32(src.X)/float32(t.W), float32(src.Y)/float32(t.H)
	u1, v1 := float32(src.X+src.W)/float32(t.W), float32(src.Y+src.H)/float32(t.H)
	if flip&FlipHorizontal != 0 {
		u0, u1 = u1, u0
	}
	if flip&FlipVertical != 0 {
		v0, v1 = v1, v0
	}
	shaderAngle := 360 - angle // degrees; spec.md §6 "the shader receives 360-angle"
	col := [4]float32{1, 1, 1, 1}
	vs := rectVertices(dst, u0, v0, u1, v1, shaderAngle, pivot, col)
	r.batcher.Submit(vs, t, r.drawBlend, gpu.Triangles, r.flushBatch)
	return nil
}

// rectVertices builds the 6 non-indexed vertices (two triangles: TL,
// TR,BL then TR,BR,BL) for dst with the given UV corners, per-vertex
// angle/center/color (spec.md §4.1 "6 per rectangle or textured quad").
func rectVertices(dst Rect, u0, v0, u1, v1, angle float32, center lin.V2, color [4]float32) []batch.Vertex {
	x0, y0 := float32(dst.X), float32(dst.Y)
	x1, y1 := float32(dst.X+dst.W), float32(dst.Y+dst.H)
	c := [2]float32{center.X, center.Y}
	tl := batch.Vertex{Pos: [2]float32{x0, y0}, Tex: [2]float32{u0, v0}, Angle: angle, Center: c, Color: color}
	tr := batch.Vertex{Pos: [2]float32{x1, y0}, Tex: [2]float32{u1, v0}, Angle: angle, Center: c, Color: color}
	bl := batch.Vertex{Pos: [2]float32{x0, y1}, Tex: [2]float32{u0, v1}, Angle: angle, Center: c, Color: color}
	br := batch.Vertex{Pos: [2]float32{x1, y1}, Tex: [2]float32{u1, v1}, Angle: angle, Center: c, Color: color}
	return []batch.Vertex{tl, tr, bl, tr, br, bl}
}

// issueCommand resolves the program for cmd (§4.3-§4.4), applies
// blend/texture/projection state, and issues draw_arrays (spec.md
// §4.2 flush algorithm step 4). Errors from a shader/program cache
// miss invalidate nothing beyond this one command: the caller (flushBatch)
// logs and continues with the next command.
func (r *Renderer) issueCommand(cmd batch.Command) error {
	var fKind shader.Kind
	var tex *texture.Texture
	if cmd.Texture == nil {
		fKind = shader.KindForSolid()
	} else {
		var ok bool
		tex, ok = cmd.Texture.(*texture.Texture)
		if !ok {
			return errs.New(errs.InvalidState, "accel2d.issueCommand", "batched texture is not a *texture.Texture")
		}
		var targetFormat *texture.Format
		if r.target != nil {
			tf := r.target.Format
			targetFormat = &tf
		}
		kind, err := texture.FragmentKind(tex.Format, targetFormat)
		if err != nil {
			return err
		}
		fKind = kind
	}

	vEntry, err := r.shaders.Acquire(shader.VertexDefault, uint32(cmd.Blend))
	if err != nil {
		return err
	}
	fEntry, err := r.shaders.Acquire(fKind, uint32(cmd.Blend))
	if err != nil {
		return err
	}
	program, err := r.programs.Acquire(vEntry, fEntry, uint32(cmd.Blend))
	if err != nil {
		return err
	}

	r.state.UseProgram(program.ID)
	r.state.Blend(cmd.Blend)
	r.state.EnableTexCoord(tex != nil)

	if tex != nil {
		r.bindTextureUnits(tex)
	}

	w, h := r.OutputSize()
	proj := state.Ortho(w, h, r.target != nil)
	if r.state.NeedsProjectionUpload(program, proj) {
		r.funcs.UniformMatrix4fv(program.UniformLocations[0], proj)
		r.state.MarkProjectionUploaded(program, proj)
	}

	r.funcs.DrawArrays(cmd.Kind, cmd.VertexOffset, cmd.VertexCount)
	return nil
}

// bindTextureUnits binds tex's 1-3 GPU texture handles to the units
// the fragment shader samples (Y/RGBA on 0, U or UV on 1, V on 2).
func (r *Renderer) bindTextureUnits(tex *texture.Texture) {
	r.funcs.ActiveTexture(gpu.TexUnit0)
	r.funcs.BindTexture(gpu.TexUnit0, tex.GPUTextureY)
	if tex.GPUTextureU != 0 {
		r.funcs.ActiveTexture(gpu.TexUnit1)
		r.funcs.BindTexture(gpu.TexUnit1, tex.GPUTextureU)
	}
	if tex.GPUTextureV != 0 {
		r.funcs.ActiveTexture(gpu.TexUnit2)
		r.funcs.BindTexture(gpu.TexUnit2, tex.GPUTextureV)
	}
}

// BindTexture reports t's dimensions (spec.md §6 bind_texture), a
// no-op beyond the size query since this core holds no separate
// "currently bound for sampling outside a draw" state.
func (r *Renderer) BindTexture(t *texture.Texture) (w, h int) { return t.W, t.H }

// UnbindTexture is a no-op companion to BindTexture (spec.md §6);
// present for interface symmetry with the host 2D API.
func (r *Renderer) UnbindTexture(t *texture.Texture) {}
