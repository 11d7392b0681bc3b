// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package accel2d is the public Renderer API: it wires the GPU
// function table, the shader/program caches, the texture cache, the
// vertex batcher, and the state minimizer into a single renderer
// object that mirrors a host 2D rendering API 1:1 (spec.md §6).
package accel2d

import (
	"github.com/gazed/accel2d/render/batch"
	"github.com/gazed/accel2d/render/texture"
)

// Rect is re-exported from render/texture so callers of this package
// never need to import it directly just to build a rectangle.
type Rect = texture.Rect

// Point is a 2D coordinate, used by RenderDrawPoints/Lines and as the
// optional pivot override for RenderCopyEx.
type Point struct{ X, Y float32 }

// Color is a normalized (0..1) RGBA color.
type Color struct{ R, G, B, A float32 }

// BlendMode selects one of the four supported blend equations
// (spec.md §1 Non-goals: advanced blend equations are out of scope).
type BlendMode = batch.BlendMode

const (
	BlendNone  = batch.BlendNone
	BlendBlend = batch.BlendBlend
	BlendAdd   = batch.BlendAdd
	BlendMod   = batch.BlendMod
)

// Flip selects the horizontal/vertical mirroring RenderCopyEx applies
// to a texture copy (spec.md §7 "Flip flags for render_copy_ex",
// supplemented from the SDL_RendererFlip bit flags the distilled spec
// omitted from its prose but kept in its external interface signature).
type Flip uint32

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1 << 0
	FlipVertical   Flip = 1 << 1
)
