// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package texture implements the texture object model, the streaming
// and render-target update paths, and the framebuffer pool described
// in spec.md §3 and §4.6-§4.7.
package texture

import (
	"github.com/gazed/accel2d/internal/errs"
	"github.com/gazed/accel2d/render/shader"
)

// Format is the fixed set of pixel layouts this core accepts
// (spec.md §3 Texture). Planar YUV formats (IYUV, YV12) own three GPU
// textures; semi-planar (NV12, NV21) own two; the packed RGB(A)
// variants own one.
type Format int

const (
	ARGB8888 Format = iota
	ABGR8888
	RGB888
	BGR888
	IYUV
	YV12
	NV12
	NV21
)

// Access describes how a texture's pixel contents are mutated.
type Access int

const (
	AccessStatic Access = iota
	AccessStreaming
	AccessTarget
)

// BytesPerPixel returns the packed-format stride unit; 0 for planar/
// semi-planar formats, whose plane sizes are computed separately.
func BytesPerPixel(f Format) int {
	switch f {
	case ARGB8888, ABGR8888:
		return 4
	case RGB888, BGR888:
		return 3
	default:
		return 0
	}
}

// IsPlanar reports whether f stores its chroma in separate full
// sub-sampled planes (IYUV, YV12).
func IsPlanar(f Format) bool { return f == IYUV || f == YV12 }

// IsSemiPlanar reports whether f interleaves chroma into a single
// sub-sampled plane (NV12, NV21).
func IsSemiPlanar(f Format) bool { return f == NV12 || f == NV21 }

// shaderFormat maps a texture Format onto shader package's ImageFormat,
// the two enums kept distinct so render/shader never imports render/texture.
func shaderFormat(f Format) (shader.ImageFormat, error) {
	switch f {
	case ARGB8888:
		return shader.FormatARGB8888, nil
	case ABGR8888:
		return shader.FormatABGR8888, nil
	case RGB888:
		return shader.FormatRGB888, nil
	case BGR888:
		return shader.FormatBGR888, nil
	case IYUV:
		return shader.FormatIYUV, nil
	case YV12:
		return shader.FormatYV12, nil
	case NV12:
		return shader.FormatNV12, nil
	case NV21:
		return shader.FormatNV21, nil
	}
	return 0, errs.New(errs.UnsupportedFormat, "texture.shaderFormat", "unrecognized format %d", f)
}

// FragmentKind resolves the fragment shader kind this texture should
// be sampled with, given the render target's format (nil for the
// default window framebuffer), per spec.md §4.4.
func FragmentKind(src Format, target *Format) (shader.Kind, error) {
	srcFmt, err := shaderFormat(src)
	if err != nil {
		return 0, err
	}
	if target == nil {
		return shader.KindForTexture(srcFmt, nil)
	}
	targetFmt, err := shaderFormat(*target)
	if err != nil {
		return 0, err
	}
	return shader.KindForTexture(srcFmt, &targetFmt)
}

// Rect is an axis-aligned integer rectangle in pixel coordinates.
type Rect struct{ X, Y, W, H int }
