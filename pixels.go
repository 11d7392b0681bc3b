// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package accel2d

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gazed/accel2d/internal/errs"
	"github.com/gazed/accel2d/render/batch"
	"github.com/gazed/accel2d/render/texture"
)

// RenderReadPixels reads back rect from the current render target as
// RGBA8 (spec.md §4.8), flips it vertically when reading from the
// window (bottom-left GPU origin vs top-left caller origin), and
// converts to the caller's requested format.
func (r *Renderer) RenderReadPixels(rect Rect, format texture.Format) (pixels []byte, pitch int, err error) {
	r.batcher.RequestFlush(batch.FlushPresent, r.flushBatch)

	raw := r.funcs.ReadPixels(rect.X, rect.Y, rect.W, rect.H)
	if r.target == nil {
		raw = flipVertical(raw, rect.W, rect.H)
	}
	out, err := convertFromRGBA8(raw, rect.W, rect.H, format)
	if err != nil {
		return nil, 0, err
	}
	return out, rect.W * texture.BytesPerPixel(format), nil
}

// flipVertical mirrors a tightly-packed RGBA8 buffer top-to-bottom
// using golang.org/x/image/draw's affine transform support (spec.md
// §4.8 "flip rows vertically into a scratch buffer").
func flipVertical(rgba []byte, w, h int) []byte {
	src := &image.RGBA{Pix: rgba, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// Flip about the vertical midline: y' = (h-1) - y, expressed as the
	// affine matrix draw.Transform expects (row-major 2x3, y-scale -1
	// with a (h) translation).
	m := f64.Aff3{1, 0, 0, 0, -1, float64(h)}
	draw.NearestNeighbor.Transform(dst, m, src, src.Rect, draw.Src, nil)
	return dst.Pix
}

// convertFromRGBA8 reorders channels from a tightly-packed RGBA8
// source into one of the four supported packed destination formats
// (spec.md §4.8 "perform a format conversion to the caller's
// requested format"). Planar/semi-planar targets are not supported
// read-back destinations: producing chroma-subsampled output from an
// RGBA framebuffer read is out of scope (not a format this spec ever
// writes to a render target).
func convertFromRGBA8(rgba []byte, w, h int, format texture.Format) ([]byte, error) {
	switch format {
	case texture.ABGR8888:
		// ABGR8888's byte order (A,B,G,R) is RGBA8's (R,G,B,A) reversed.
		out := make([]byte, len(rgba))
		for i := 0; i+3 < len(rgba); i += 4 {
			out[i+0] = rgba[i+3]
			out[i+1] = rgba[i+2]
			out[i+2] = rgba[i+1]
			out[i+3] = rgba[i+0]
		}
		return out, nil
	case texture.ARGB8888:
		out := make([]byte, len(rgba))
		for i := 0; i+3 < len(rgba); i += 4 {
			out[i+0] = rgba[i+3]
			out[i+1] = rgba[i+0]
			out[i+2] = rgba[i+1]
			out[i+3] = rgba[i+2]
		}
		return out, nil
	case texture.RGB888:
		out := make([]byte, w*h*3)
		for px := 0; px < w*h; px++ {
			out[px*3+0] = rgba[px*4+0]
			out[px*3+1] = rgba[px*4+1]
			out[px*3+2] = rgba[px*4+2]
		}
		return out, nil
	case texture.BGR888:
		out := make([]byte, w*h*3)
		for px := 0; px < w*h; px++ {
			out[px*3+0] = rgba[px*4+2]
			out[px*3+1] = rgba[px*4+1]
			out[px*3+2] = rgba[px*4+0]
		}
		return out, nil
	}
	return nil, errs.New(errs.UnsupportedFormat, "accel2d.RenderReadPixels", "format %d is not a valid read_pixels destination", format)
}
