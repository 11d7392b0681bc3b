// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package accel2d

import (
	"github.com/gazed/accel2d/internal/errs"
	"github.com/gazed/accel2d/render/batch"
	"github.com/gazed/accel2d/render/state"
	"github.com/gazed/accel2d/render/texture"
)

// SetRenderTarget forces a flush, then binds either the default window
// framebuffer (t == nil) or t's render target: the per-size pooled FBO
// obtained from the texture cache, with t's primary GPU texture
// (re-)attached at color attachment 0 and completeness re-checked.
// The attach happens here, every time a target is selected, rather
// than once at CreateTexture, because the pool is keyed by (w,h) and
// shared across every same-size AccessTarget texture — an earlier
// same-size texture's attachment would otherwise go stale the moment
// a second one is created (spec.md §4.6).
func (r *Renderer) SetRenderTarget(t *texture.Texture) error {
	r.batcher.RequestFlush(batch.FlushRenderTargetChange, r.flushBatch)
	r.state.Invalidate()
	if t == nil {
		r.funcs.BindFramebuffer(0)
		r.target = nil
		return nil
	}
	t.FBO = r.textures.Framebuffer(t.W, t.H)
	r.funcs.BindFramebuffer(t.FBO)
	r.funcs.FramebufferTexture2D(t.FBO, t.GPUTextureY)
	if !r.funcs.CheckFramebufferStatus() {
		return errs.New(errs.InvalidState, "Renderer.SetRenderTarget", "framebuffer incomplete for %dx%d target", t.W, t.H)
	}
	r.target = t
	return nil
}

// UpdateViewport applies the viewport for the current render target's
// size. When that differs from the last-applied viewport, the next
// draw re-uploads the projection (spec.md §4.5); an unchanged viewport
// is a no-op.
func (r *Renderer) UpdateViewport() {
	w, h := r.OutputSize()
	r.state.Viewport(state.Rect{X: 0, Y: 0, W: w, H: h})
}

// UpdateClipRect applies rect as the scissor region, clamped to the
// active viewport, or disables the scissor test when enabled is
// false (spec.md §6, §7 "scissor rectangle intersection with viewport").
func (r *Renderer) UpdateClipRect(rect Rect, enabled bool) {
	r.clip, r.clipEnabled = rect, enabled
	r.state.EnableScissorTest(enabled)
	if enabled {
		r.state.Scissor(state.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H})
	}
}

// RenderPresent flushes any pending batch and swaps the window's back
// buffer (spec.md §4.2 flush trigger (b); spec.md §8 invariant 1: the
// arena and command log are empty immediately afterward).
func (r *Renderer) RenderPresent() {
	r.batcher.RequestFlush(batch.FlushPresent, r.flushBatch)
	r.win.SwapBuffers()
	r.drainErrors("RenderPresent")
}
