// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package shader implements the shader cache and program cache
// described in spec.md §4.3-§4.4: dedup of compiled shaders by
// (kind, blend_mode, binary_format), and an MRU program cache capped
// at 8 entries keyed on shader-entry pointer identity.
package shader

import "github.com/gazed/accel2d/internal/errs"

// Kind enumerates the fixed set of vertex/fragment shaders the core
// selects between. The vertex kind is always VertexDefault (spec.md §4.4).
type Kind int

const (
	VertexDefault Kind = iota
	FragmentSolid
	FragmentTextureABGR
	FragmentTextureARGB
	FragmentTextureRGB
	FragmentTextureBGR
	FragmentTextureYUV
	FragmentTextureNV12
	FragmentTextureNV21
)

// ImageFormat is the logical pixel layout of a texture or render
// target, kept local to this package (rather than importing
// render/texture's Format) to avoid a cache <-> texture import cycle:
// render/texture calls into this package to select fragment kinds.
type ImageFormat int

const (
	FormatARGB8888 ImageFormat = iota
	FormatABGR8888
	FormatRGB888
	FormatBGR888
	FormatIYUV
	FormatYV12
	FormatNV12
	FormatNV21
)

// KindForSolid returns the fragment kind for an untextured fill/line/point draw.
func KindForSolid() Kind { return FragmentSolid }

// KindForTexture selects the fragment shader kind for sampling a
// texture of format src, optionally composited into a render target
// of format *target (nil when rendering to the default window
// framebuffer), per spec.md §4.4's channel-swizzle selection table.
//
// When no render target is bound, the kind matches the texture's own
// layout directly. When a render target is bound and its format
// matches the texture's, the non-swizzling ABGR kind is used even if
// neither format is literally ABGR. When the formats differ, the
// table below picks the kind whose sampled channel order matches the
// target's layout; planar/semi-planar YUV sources never swizzle
// against the target since they are never themselves valid render
// target formats.
func KindForTexture(src ImageFormat, target *ImageFormat) (Kind, error) {
	if target == nil {
		switch src {
		case FormatARGB8888:
			return FragmentTextureARGB, nil
		case FormatABGR8888:
			return FragmentTextureABGR, nil
		case FormatRGB888:
			return FragmentTextureRGB, nil
		case FormatBGR888:
			return FragmentTextureBGR, nil
		case FormatIYUV, FormatYV12:
			return FragmentTextureYUV, nil
		case FormatNV12:
			return FragmentTextureNV12, nil
		case FormatNV21:
			return FragmentTextureNV21, nil
		}
		return 0, errs.New(errs.UnsupportedFormat, "shader.KindForTexture", "unsupported source format %v", src)
	}

	switch src {
	case FormatIYUV, FormatYV12:
		return FragmentTextureYUV, nil
	case FormatNV12:
		return FragmentTextureNV12, nil
	case FormatNV21:
		return FragmentTextureNV21, nil
	}

	if *target == src {
		// Formats match: use the non-color-mapping shader even when
		// neither side is literally ABGR.
		return FragmentTextureABGR, nil
	}

	if kind, ok := swizzleTable[swizzleKey{src, *target}]; ok {
		return kind, nil
	}
	return 0, errs.New(errs.UnsupportedFormat, "shader.KindForTexture",
		"no swizzle path from %v to render target %v", src, *target)
}

type swizzleKey struct {
	Src, Target ImageFormat
}

// swizzleTable is the cross-format channel-swizzle decision table for
// the four packed-RGB(A) source formats against a render target of a
// differing packed format (spec.md §4.4).
var swizzleTable = map[swizzleKey]Kind{
	{FormatARGB8888, FormatABGR8888}: FragmentTextureARGB,
	{FormatARGB8888, FormatBGR888}:   FragmentTextureARGB,
	{FormatARGB8888, FormatRGB888}:   FragmentTextureABGR,

	{FormatABGR8888, FormatARGB8888}: FragmentTextureARGB,
	{FormatABGR8888, FormatRGB888}:   FragmentTextureARGB,
	{FormatABGR8888, FormatBGR888}:   FragmentTextureABGR,

	{FormatRGB888, FormatABGR8888}: FragmentTextureARGB,
	{FormatRGB888, FormatARGB8888}: FragmentTextureBGR,
	{FormatRGB888, FormatBGR888}:   FragmentTextureARGB,

	{FormatBGR888, FormatABGR8888}: FragmentTextureBGR,
	{FormatBGR888, FormatARGB8888}: FragmentTextureRGB,
	{FormatBGR888, FormatRGB888}:   FragmentTextureARGB,
}
