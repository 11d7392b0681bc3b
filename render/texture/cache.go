// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"github.com/gazed/accel2d/render/gpu"
)

// Cache owns every live Texture plus the FramebufferPool render
// targets attach to (spec.md §3 "RendererState ... owns the function
// table, all caches"). It does not itself know about the batcher;
// BeforeMutate is called before any operation that must flush a
// currently-batched texture first, letting RendererState wire that up
// without texture importing render/batch.
type Cache struct {
	funcs gpu.Funcs
	fbos  FramebufferPool

	live map[*Texture]bool

	// BeforeMutate, if set, is invoked before Update/UpdateYUV/Destroy
	// on a texture that is currently batched (spec.md §4.2 flush
	// triggers (d) and (e)).
	BeforeMutate func(*Texture)
}

// NewCache builds an empty texture cache bound to funcs.
func NewCache(funcs gpu.Funcs) *Cache {
	return &Cache{funcs: funcs, live: map[*Texture]bool{}}
}

// CreateTexture allocates a new texture of the given format/access/size.
// AccessTarget textures are not attached to a pooled FBO here: the pool
// is keyed by (w,h) and shared by every same-size target texture, so
// attachment happens each time a texture is actually selected as the
// render target, via Framebuffer and SetRenderTarget (spec.md §4.6).
func (c *Cache) CreateTexture(format Format, access Access, w, h int) (*Texture, error) {
	t, err := New(c.funcs, format, access, w, h)
	if err != nil {
		return nil, err
	}
	c.live[t] = true
	return t, nil
}

// DestroyTexture flushes first if t is batched, then releases its GPU
// texture objects and forgets it (spec.md §4.2 flush trigger (e)).
func (c *Cache) DestroyTexture(t *Texture) {
	if t.InBatch() && c.BeforeMutate != nil {
		c.BeforeMutate(t)
	}
	t.Destroy(c.funcs)
	delete(c.live, t)
}

// UpdateTexture flushes first if t is batched, then uploads pixels
// covering rect (spec.md §4.2 flush trigger (d), §4.7).
func (c *Cache) UpdateTexture(t *Texture, rect Rect, pixels []byte, pitch int) error {
	if t.InBatch() && c.BeforeMutate != nil {
		c.BeforeMutate(t)
	}
	return t.Update(c.funcs, rect, pixels, pitch)
}

// UpdateTextureYUV is UpdateTexture's three-separately-pitched-planes form.
func (c *Cache) UpdateTextureYUV(t *Texture, rect Rect, y []byte, yPitch int, u []byte, uPitch int, v []byte, vPitch int) error {
	if t.InBatch() && c.BeforeMutate != nil {
		c.BeforeMutate(t)
	}
	return t.UpdateYUV(c.funcs, rect, y, yPitch, u, uPitch, v, vPitch)
}

// Framebuffer returns the pooled FBO for (w,h).
func (c *Cache) Framebuffer(w, h int) uint32 { return c.fbos.Get(c.funcs, w, h) }

// Destroy releases every live texture and the framebuffer pool
// (spec.md §5 destruction ordering).
func (c *Cache) Destroy() {
	for t := range c.live {
		t.Destroy(c.funcs)
	}
	c.live = map[*Texture]bool{}
	c.fbos.Destroy(c.funcs)
}

// Len reports the number of live textures (test hook).
func (c *Cache) Len() int { return len(c.live) }
