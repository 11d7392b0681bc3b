// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"testing"

	"github.com/gazed/accel2d/render/gpu"
	"github.com/gazed/accel2d/render/shader"
	"github.com/stretchr/testify/require"
)

func TestNewAllocatesOneHandleForPackedFormats(t *testing.T) {
	fake := gpu.NewFake()
	tex, err := New(fake, ABGR8888, AccessStatic, 4, 4)
	require.NoError(t, err)
	require.NotZero(t, tex.GPUTextureY)
	require.Zero(t, tex.GPUTextureU)
	require.Zero(t, tex.GPUTextureV)
}

func TestNewAllocatesThreeHandlesForPlanarYUV(t *testing.T) {
	fake := gpu.NewFake()
	tex, err := New(fake, IYUV, AccessStatic, 4, 4)
	require.NoError(t, err)
	require.NotZero(t, tex.GPUTextureY)
	require.NotZero(t, tex.GPUTextureU)
	require.NotZero(t, tex.GPUTextureV)
}

func TestNewAllocatesTwoHandlesForSemiPlanar(t *testing.T) {
	fake := gpu.NewFake()
	tex, err := New(fake, NV12, AccessStatic, 4, 4)
	require.NoError(t, err)
	require.NotZero(t, tex.GPUTextureY)
	require.NotZero(t, tex.GPUTextureU)
	require.Zero(t, tex.GPUTextureV)
}

func TestCreateTargetTextureDoesNotAttachFBO(t *testing.T) {
	fake := gpu.NewFake()
	fake.FramebufferStatusOK = false
	cache := NewCache(fake)

	// Attachment and completeness-checking happen when a target texture
	// is actually selected (accel2d.Renderer.SetRenderTarget), not at
	// creation: the pool is keyed by size and shared across same-size
	// target textures, so attaching here would be immediately stale.
	tex, err := cache.CreateTexture(ABGR8888, AccessTarget, 4, 4)
	require.NoError(t, err)
	require.Zero(t, tex.FBO)
	require.Equal(t, 1, cache.Len())
}

func TestDestroyTextureFlushesWhenBatched(t *testing.T) {
	fake := gpu.NewFake()
	cache := NewCache(fake)
	tex, err := cache.CreateTexture(ABGR8888, AccessStatic, 2, 2)
	require.NoError(t, err)

	flushed := false
	cache.BeforeMutate = func(*Texture) { flushed = true }
	tex.SetInBatch(true)

	cache.DestroyTexture(tex)
	require.True(t, flushed, "destroying a batched texture must flush first")
	require.Equal(t, 0, cache.Len())
}

func TestFragmentKindCrossFormatSwizzle(t *testing.T) {
	target := ABGR8888
	kind, err := FragmentKind(ARGB8888, &target)
	require.NoError(t, err)
	require.Equal(t, shader.FragmentTextureARGB, kind)

	same := ARGB8888
	kind, err = FragmentKind(ARGB8888, &same)
	require.NoError(t, err)
	require.Equal(t, shader.FragmentTextureABGR, kind, "identical source/target formats use the non-swizzling kind")
}
