// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package accel2d

import (
	"github.com/gazed/accel2d/render/batch"
	"github.com/gazed/accel2d/render/texture"
)

// CreateTexture allocates a new GPU-backed texture of the given
// format/access/size (spec.md §6 create_texture).
func (r *Renderer) CreateTexture(format texture.Format, access texture.Access, w, h int) (*texture.Texture, error) {
	t, err := r.textures.CreateTexture(format, access, w, h)
	r.drainErrors("CreateTexture")
	return t, err
}

// DestroyTexture flushes first if t is currently batched, then
// releases its GPU objects (spec.md §4.2 flush trigger (e); the
// flush itself happens inside textures.Cache's BeforeMutate hook,
// wired in NewRenderer to the batcher).
func (r *Renderer) DestroyTexture(t *texture.Texture) {
	r.textures.DestroyTexture(t)
	r.drainErrors("DestroyTexture")
}

// UpdateTexture uploads pixels covering rect into t, flushing first
// if t is currently batched (spec.md §4.2 flush trigger (d), §4.7).
// A non-positive rect is a no-op (spec.md §6 constraints).
func (r *Renderer) UpdateTexture(t *texture.Texture, rect Rect, pixels []byte, pitch int) error {
	if rect.W <= 0 || rect.H <= 0 {
		return nil
	}
	err := r.textures.UpdateTexture(t, rect, pixels, pitch)
	r.drainErrors("UpdateTexture")
	return err
}

// UpdateTextureYUV is UpdateTexture's three-independently-pitched-planes form.
func (r *Renderer) UpdateTextureYUV(t *texture.Texture, rect Rect, y []byte, yPitch int, u []byte, uPitch int, v []byte, vPitch int) error {
	if rect.W <= 0 || rect.H <= 0 {
		return nil
	}
	err := r.textures.UpdateTextureYUV(t, rect, y, yPitch, u, uPitch, v, vPitch)
	r.drainErrors("UpdateTextureYUV")
	return err
}

// LockTexture returns a CPU-side scratch buffer/pitch covering rect
// for a streaming texture (spec.md §7 supplemented lock/unlock pair).
func (r *Renderer) LockTexture(t *texture.Texture, rect Rect) (pixels []byte, pitch int, err error) {
	return t.Lock(rect)
}

// UnlockTexture re-uploads the whole texture regardless of which
// sub-rect was locked, flushing first if t is currently batched
// (spec.md §7 "preserve this conservative behavior"; Lock/Unlock
// bypass the Cache's own update path so the flush trigger is applied
// here rather than in render/texture).
func (r *Renderer) UnlockTexture(t *texture.Texture) {
	if t.InBatch() {
		r.batcher.RequestFlush(batch.FlushStreamingUpdate, r.flushBatch)
	}
	if err := t.Unlock(r.funcs); err != nil {
		return
	}
	r.drainErrors("UnlockTexture")
}
