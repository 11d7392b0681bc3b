// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"github.com/gazed/accel2d/internal/errs"
	"github.com/gazed/accel2d/render/gpu"
)

// Texture is the GPU-backed image object described in spec.md §3.
// YUV planar formats own three GPU texture handles sampled on units
// 0/1/2; semi-planar formats own two (Y on 0, interleaved UV on 1);
// packed RGB(A) variants own one on unit 0. FBO is only set for
// AccessTarget textures, and only once SetRenderTarget attaches the
// pooled framebuffer for this texture's size (see render/texture.Cache).
type Texture struct {
	Format Format
	Access Access
	W, H   int

	GPUTextureY uint32
	GPUTextureU uint32
	GPUTextureV uint32

	Pixels []byte // CPU-side scratch for streaming updates and Lock/Unlock
	Pitch  int

	FBO uint32

	inBatch bool
}

// SetInBatch satisfies render/batch's BatchedTexture interface.
func (t *Texture) SetInBatch(v bool) { t.inBatch = v }

// InBatch reports whether t is referenced by an unflushed batch command.
func (t *Texture) InBatch() bool { return t.inBatch }

// New allocates GPU texture object(s) for a texture of the given
// format/access/size and returns the initialized Texture. The caller
// (Cache) is responsible for uploading any initial pixel data.
func New(funcs gpu.Funcs, format Format, access Access, w, h int) (*Texture, error) {
	if w <= 0 || h <= 0 {
		return nil, errs.New(errs.InvalidState, "texture.New", "non-positive dimensions %dx%d", w, h)
	}
	t := &Texture{Format: format, Access: access, W: w, H: h}

	t.GPUTextureY = funcs.GenTexture()
	funcs.BindTexture(gpu.TexUnit0, t.GPUTextureY)
	funcs.TexImage2D(t.GPUTextureY, w, h, nil)

	switch {
	case IsPlanar(format):
		t.GPUTextureU = funcs.GenTexture()
		funcs.BindTexture(gpu.TexUnit1, t.GPUTextureU)
		funcs.TexImage2D(t.GPUTextureU, w/2, h/2, nil)

		t.GPUTextureV = funcs.GenTexture()
		funcs.BindTexture(gpu.TexUnit2, t.GPUTextureV)
		funcs.TexImage2D(t.GPUTextureV, w/2, h/2, nil)
	case IsSemiPlanar(format):
		t.GPUTextureU = funcs.GenTexture()
		funcs.BindTexture(gpu.TexUnit1, t.GPUTextureU)
		funcs.TexImage2D(t.GPUTextureU, w/2, h/2, nil)
	}

	t.Pitch = w * BytesPerPixel(format)
	return t, nil
}

// Destroy releases every GPU texture object. A pooled FBO the texture
// was attached to is pool-owned and is neither detached nor deleted here.
func (t *Texture) Destroy(funcs gpu.Funcs) {
	if t.GPUTextureY != 0 {
		funcs.DeleteTexture(t.GPUTextureY)
	}
	if t.GPUTextureU != 0 {
		funcs.DeleteTexture(t.GPUTextureU)
	}
	if t.GPUTextureV != 0 {
		funcs.DeleteTexture(t.GPUTextureV)
	}
}
