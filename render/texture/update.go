// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"github.com/gazed/accel2d/internal/device"
	"github.com/gazed/accel2d/internal/errs"
	"github.com/gazed/accel2d/render/gpu"
)

// roundUpToPage pads n up to the host page size so repeated Lock/Unlock
// cycles on the same streaming texture don't churn the allocator across
// page boundaries; the tight stride used for GPU uploads (t.Pitch) is
// unaffected, only the backing buffer's capacity grows.
func roundUpToPage(n int) int {
	page := device.PageSize()
	if page <= 0 {
		return n
	}
	return (n + page - 1) / page * page
}

// pack tightens a row-strided buffer into a contiguous width*bpp*height
// buffer when pitch doesn't already match the tight stride (spec.md §4.7).
func pack(pixels []byte, pitch, width, height, bpp int) []byte {
	tight := width * bpp
	if pitch == tight {
		return pixels
	}
	out := make([]byte, tight*height)
	for row := 0; row < height; row++ {
		src := pixels[row*pitch : row*pitch+tight]
		copy(out[row*tight:(row+1)*tight], src)
	}
	return out
}

// Update uploads pixels covering rect into the primary plane (and, for
// planar/semi-planar formats, the chroma planes that follow it in the
// same buffer), packing non-tight rows first (spec.md §4.7). If t is
// currently batched the caller must flush before calling Update.
func (t *Texture) Update(funcs gpu.Funcs, rect Rect, pixels []byte, pitch int) error {
	if t.Access == AccessTarget {
		return errs.New(errs.InvalidState, "texture.Update", "cannot stream into a render-target texture")
	}
	bpp := BytesPerPixel(t.Format)

	switch {
	case IsPlanar(t.Format):
		return t.updatePlanarYUV(funcs, rect, pixels, pitch)
	case IsSemiPlanar(t.Format):
		return t.updateSemiPlanarNV(funcs, rect, pixels, pitch)
	default:
		tight := pack(pixels, pitch, rect.W, rect.H, bpp)
		funcs.BindTexture(gpu.TexUnit0, t.GPUTextureY)
		funcs.TexSubImage2D(t.GPUTextureY, rect.X, rect.Y, rect.W, rect.H, tight)
		return nil
	}
}

// updatePlanarYUV uploads the Y plane then the two sub-sampled chroma
// planes, in V-then-U order for YV12 and U-then-V order for IYUV,
// matching the original's byte layout (spec.md §4.7).
func (t *Texture) updatePlanarYUV(funcs gpu.Funcs, rect Rect, pixels []byte, pitch int) error {
	y := pack(pixels, pitch, rect.W, rect.H, 1)
	funcs.BindTexture(gpu.TexUnit0, t.GPUTextureY)
	funcs.TexSubImage2D(t.GPUTextureY, rect.X, rect.Y, rect.W, rect.H, y)

	pixels = pixels[rect.H*pitch:]
	cw, ch, cpitch := rect.W/2, rect.H/2, pitch/2

	first := pack(pixels, cpitch, cw, ch, 1)
	firstPlane, secondPlane := t.GPUTextureU, t.GPUTextureV
	firstUnit, secondUnit := gpu.TexUnit1, gpu.TexUnit2
	if t.Format == YV12 {
		firstPlane, secondPlane = t.GPUTextureV, t.GPUTextureU
		firstUnit, secondUnit = gpu.TexUnit2, gpu.TexUnit1
	}
	funcs.BindTexture(firstUnit, firstPlane)
	funcs.TexSubImage2D(firstPlane, rect.X/2, rect.Y/2, cw, ch, first)

	pixels = pixels[(rect.H*pitch)/4:]
	second := pack(pixels, cpitch, cw, ch, 1)
	funcs.BindTexture(secondUnit, secondPlane)
	funcs.TexSubImage2D(secondPlane, rect.X/2, rect.Y/2, cw, ch, second)
	return nil
}

// updateSemiPlanarNV uploads the Y plane then the interleaved UV
// plane (2 bytes/texel, sampled as LUMINANCE_ALPHA) at half resolution.
func (t *Texture) updateSemiPlanarNV(funcs gpu.Funcs, rect Rect, pixels []byte, pitch int) error {
	y := pack(pixels, pitch, rect.W, rect.H, 1)
	funcs.BindTexture(gpu.TexUnit0, t.GPUTextureY)
	funcs.TexSubImage2D(t.GPUTextureY, rect.X, rect.Y, rect.W, rect.H, y)

	pixels = pixels[rect.H*pitch:]
	cw, ch, cpitch := rect.W/2, rect.H/2, pitch
	uv := pack(pixels, cpitch, cw, ch, 2)
	funcs.BindTexture(gpu.TexUnit1, t.GPUTextureU)
	funcs.TexSubImage2D(t.GPUTextureU, rect.X/2, rect.Y/2, cw, ch, uv)
	return nil
}

// UpdateYUV uploads three independently-pitched planes directly,
// without the single-buffer-plus-offset layout Update assumes
// (spec.md §9 update_texture_yuv). Plane order is always Y, U, V
// regardless of whether the texture is IYUV or YV12; only the GPU
// texture each is bound to differs.
func (t *Texture) UpdateYUV(funcs gpu.Funcs, rect Rect, yPlane []byte, yPitch int, uPlane []byte, uPitch int, vPlane []byte, vPitch int) error {
	if !IsPlanar(t.Format) {
		return errs.New(errs.InvalidState, "texture.UpdateYUV", "texture format %d is not planar YUV", t.Format)
	}
	y := pack(yPlane, yPitch, rect.W, rect.H, 1)
	funcs.BindTexture(gpu.TexUnit0, t.GPUTextureY)
	funcs.TexSubImage2D(t.GPUTextureY, rect.X, rect.Y, rect.W, rect.H, y)

	cw, ch := rect.W/2, rect.H/2
	uTex, vTex := t.GPUTextureU, t.GPUTextureV
	if t.Format == YV12 {
		uTex, vTex = t.GPUTextureV, t.GPUTextureU
	}

	u := pack(uPlane, uPitch, cw, ch, 1)
	funcs.BindTexture(gpu.TexUnit1, uTex)
	funcs.TexSubImage2D(uTex, rect.X/2, rect.Y/2, cw, ch, u)

	v := pack(vPlane, vPitch, cw, ch, 1)
	funcs.BindTexture(gpu.TexUnit2, vTex)
	funcs.TexSubImage2D(vTex, rect.X/2, rect.Y/2, cw, ch, v)
	return nil
}

// Lock returns a CPU-side scratch buffer/pitch covering rect,
// allocating t.Pixels on first use. The returned slice aliases t.Pixels
// directly for the whole-texture case; callers write into it, then
// call Unlock.
func (t *Texture) Lock(rect Rect) (pixels []byte, pitch int, err error) {
	if t.Access != AccessStreaming {
		return nil, 0, errs.New(errs.InvalidState, "texture.Lock", "only streaming textures can be locked")
	}
	if t.Pixels == nil {
		t.Pitch = t.W * BytesPerPixel(t.Format)
		t.Pixels = make([]byte, roundUpToPage(t.Pitch*t.H))
	}
	offset := rect.Y*t.Pitch + rect.X*BytesPerPixel(t.Format)
	return t.Pixels[offset:], t.Pitch, nil
}

// Unlock always re-uploads the entire texture regardless of which
// sub-rect was locked — the original's conservative behavior,
// preserved per spec.md §9.
func (t *Texture) Unlock(funcs gpu.Funcs) error {
	if t.Pixels == nil {
		return nil
	}
	return t.Update(funcs, Rect{0, 0, t.W, t.H}, t.Pixels, t.Pitch)
}
