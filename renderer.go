// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package accel2d

import (
	"log"

	"github.com/gazed/accel2d/config"
	"github.com/gazed/accel2d/internal/device"
	"github.com/gazed/accel2d/internal/errs"
	"github.com/gazed/accel2d/render/batch"
	"github.com/gazed/accel2d/render/gpu"
	"github.com/gazed/accel2d/render/shader"
	"github.com/gazed/accel2d/render/state"
	"github.com/gazed/accel2d/render/texture"
)

// Renderer is the batched 2D GPU renderer core (spec.md §1-§2). It is
// not safe for concurrent use: the GPU context it drives is strictly
// single-threaded (spec.md §5), a constraint documented here rather
// than enforced with a mutex, mirroring the teacher's engine/render
// thread-affinity convention.
type Renderer struct {
	win   device.Window
	funcs gpu.Funcs
	cfg   config.Config

	textures *texture.Cache
	shaders  *shader.Cache
	programs *shader.ProgramCache
	batcher  *batch.Batcher
	state    *state.Minimizer

	target *texture.Texture // nil selects the default window framebuffer

	drawColor Color
	drawBlend BlendMode

	clip        Rect
	clipEnabled bool

	vbo uint32
}

// NewRenderer builds a Renderer driven through win, applying any
// config.Attr overrides over config.Defaults (spec.md §6 create_renderer).
// Every subsystem is constructed before any can fail partially
// initialized state is torn down via Destroy on all error paths
// (spec.md §5).
func NewRenderer(win device.Window, opts ...config.Attr) (r *Renderer, err error) {
	cfg := config.New(opts...)
	funcs := win.Funcs()

	r = &Renderer{
		win:   win,
		funcs: funcs,
		cfg:   cfg,

		textures: texture.NewCache(funcs),
		batcher:  batch.NewBatcher(cfg.MaxVertices),
		state:    state.New(funcs),

		drawColor: Color{0, 0, 0, 1},
		drawBlend: BlendNone,
	}
	defer func() {
		if err != nil {
			r.Destroy()
			r = nil
		}
	}()

	instances, loadErr := LoadShaderConfig("")
	if loadErr != nil {
		return r, loadErr
	}
	r.shaders = shader.NewCache(funcs, win, instances)
	r.programs = shader.NewProgramCache(funcs, r.shaders, cfg.ProgramCapacity)

	r.textures.BeforeMutate = func(t *texture.Texture) {
		r.batcher.RequestFlush(batch.FlushTextureDestroy, r.flushBatch)
	}

	w, h := win.Size()
	if w <= 0 || h <= 0 {
		return r, errs.New(errs.InvalidState, "accel2d.NewRenderer", "non-positive window size %dx%d", w, h)
	}
	r.state.Viewport(state.Rect{X: 0, Y: 0, W: w, H: h})
	r.clip = Rect{X: 0, Y: 0, W: w, H: h}
	return r, nil
}

// Destroy tears down every GPU resource the renderer owns, in the
// order spec.md §5 specifies: vertex/command arena, shader cache,
// program cache, framebuffer pool (owned by the texture cache), GPU
// context. Safe to call on a partially constructed Renderer — every
// field is nil-checked since NewRenderer calls this on its own error
// paths before all subsystems exist.
func (r *Renderer) Destroy() {
	if r.batcher != nil {
		r.batcher.RequestFlush(batch.FlushContextSwitch, nil)
	}
	if r.shaders != nil {
		r.shaders.Destroy()
	}
	if r.programs != nil {
		r.programs.Destroy()
	}
	if r.textures != nil {
		r.textures.Destroy()
	}
}

// WindowEvent handles a platform notification (spec.md §4.9). Size
// change, show, and hide invalidate the state minimizer's cached
// context state; minimize additionally forces a blocking drain via
// Finish (spec.md §7 "supplemented... render-target renderer
// recreation invalidation").
func (r *Renderer) WindowEvent(ev device.WindowEvent) {
	switch ev.Kind {
	case device.Resized:
		r.batcher.RequestFlush(batch.FlushContextSwitch, r.flushBatch)
		r.state.Invalidate()
		r.state.Viewport(state.Rect{X: 0, Y: 0, W: ev.W, H: ev.H})
		r.clip = Rect{X: 0, Y: 0, W: ev.W, H: ev.H}
	case device.Shown, device.Hidden:
		r.state.Invalidate()
	case device.Minimized:
		r.batcher.RequestFlush(batch.FlushContextSwitch, r.flushBatch)
		r.funcs.Finish()
		r.state.Invalidate()
	}
	r.drainErrors("WindowEvent")
}

// OutputSize reports the current render target's pixel dimensions:
// the bound render-target texture's size, or the window's size when
// no target is bound.
func (r *Renderer) OutputSize() (w, h int) {
	if r.target != nil {
		return r.target.W, r.target.H
	}
	return r.win.Size()
}

// SetDrawColor sets the color render_clear fills with on the next
// call (spec.md §8 scenario S1 "set_color(10,20,30,40); render_clear").
func (r *Renderer) SetDrawColor(c Color) { r.drawColor = c }

// SetDrawBlendMode sets the blend mode applied to subsequent draw
// calls (spec.md §8 scenario S3 "Blend-mode split").
func (r *Renderer) SetDrawBlendMode(mode BlendMode) { r.drawBlend = mode }

// drainErrors logs every distinct GPU error code reported since the
// last drain, but only when debug mode is on: polling get_error
// forces a GPU sync, so it is skipped by default (spec.md §7).
func (r *Renderer) drainErrors(op string) {
	if !r.cfg.Debug {
		return
	}
	for {
		code := r.funcs.GetError()
		if code == gpu.NoError {
			return
		}
		log.Printf("accel2d: %s: gpu error %d", op, code)
	}
}

// flushBatch is the Batcher's onFlush callback: it uploads Used()
// vertices to the vertex buffer and issues one draw_arrays per
// Command (spec.md §4.2 flush algorithm steps 1-4). Per-command GPU
// errors are logged and skipped rather than aborting the rest of the
// batch (spec.md §7 propagation rules).
func (r *Renderer) flushBatch() {
	used := r.batcher.Arena.Used()
	if len(used) == 0 {
		return
	}
	data := vertexBytes(used)
	r.funcs.BindBuffer(r.vboHandle())
	r.funcs.BufferSubData(r.vboHandle(), 0, data)
	r.bindVertexAttribs()

	for _, cmd := range r.batcher.Commands {
		if err := r.issueCommand(cmd); err != nil {
			log.Printf("accel2d: flushBatch: %v", err)
			continue
		}
	}
	r.drainErrors("flushBatch")
}

// bindVertexAttribs re-points the five vertex attributes to their
// byte offsets inside Vertex with stride = sizeof(Vertex), once per
// flush (spec.md §4.2 flush algorithm step 3). The tex-coord
// attribute's enable/disable state is handled per-command by
// state.Minimizer since only textured commands need it bound.
func (r *Renderer) bindVertexAttribs() {
	r.funcs.EnableVertexAttribArray(gpu.AttribPosition)
	r.funcs.VertexAttribPointer(gpu.AttribPosition, 2, batch.StrideBytes, batch.OffsetPos)
	r.funcs.VertexAttribPointer(gpu.AttribTexCoord, 2, batch.StrideBytes, batch.OffsetTex)
	r.funcs.EnableVertexAttribArray(gpu.AttribAngle)
	r.funcs.VertexAttribPointer(gpu.AttribAngle, 1, batch.StrideBytes, batch.OffsetAngle)
	r.funcs.EnableVertexAttribArray(gpu.AttribCenter)
	r.funcs.VertexAttribPointer(gpu.AttribCenter, 2, batch.StrideBytes, batch.OffsetCenter)
	r.funcs.EnableVertexAttribArray(gpu.AttribColor)
	r.funcs.VertexAttribPointer(gpu.AttribColor, 4, batch.StrideBytes, batch.OffsetColor)
}

// vboHandle lazily allocates the single shared vertex buffer object
// the whole arena uploads through (spec.md §3 RendererState.vbo).
func (r *Renderer) vboHandle() uint32 {
	if r.vbo == 0 {
		r.vbo = r.funcs.GenBuffer()
	}
	return r.vbo
}
