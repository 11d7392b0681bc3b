// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package state

import (
	"testing"

	"github.com/gazed/accel2d/render/gpu"
	"github.com/gazed/accel2d/render/shader"
	"github.com/stretchr/testify/require"
)

func TestOrthoZeroAreaViewportIsNoOp(t *testing.T) {
	require.Equal(t, [4][4]float32{}, Ortho(0, 10, false))
	require.Equal(t, [4][4]float32{}, Ortho(10, 0, true))
}

func TestOrthoSignFlipForWindowVsTexture(t *testing.T) {
	window := Ortho(100, 200, false)
	tex := Ortho(100, 200, true)
	require.Equal(t, -window[1][1], tex[1][1])
	require.Equal(t, float32(-1), window[3][1])
	require.Equal(t, float32(1), tex[3][1])
}

func TestBlendSkipsRedundantCalls(t *testing.T) {
	fake := gpu.NewFake()
	m := New(fake)
	m.Blend(gpu.BlendBlend)
	m.Blend(gpu.BlendBlend)
	require.Len(t, fake.BlendFuncs, 1, "an unchanged blend mode must not re-issue BlendFuncSeparate")

	m.Blend(gpu.BlendAdd)
	require.Len(t, fake.BlendFuncs, 2)
}

func TestUseProgramSkipsRedundantCalls(t *testing.T) {
	fake := gpu.NewFake()
	m := New(fake)
	m.UseProgram(1)
	m.UseProgram(1)
	m.UseProgram(2)
	require.Equal(t, []uint32{1, 2}, fake.UsePrograms)
}

func TestViewportChangeMarksProjectionDirty(t *testing.T) {
	fake := gpu.NewFake()
	m := New(fake)
	p := &shader.Program{}
	proj := Ortho(640, 480, false)

	require.True(t, m.NeedsProjectionUpload(p, proj), "a program with no uploaded projection always needs one")
	m.MarkProjectionUploaded(p, proj)
	require.False(t, m.NeedsProjectionUpload(p, proj), "re-requesting the same projection on the same viewport is a no-op")

	m.Viewport(Rect{0, 0, 800, 600})
	require.True(t, m.NeedsProjectionUpload(p, proj), "a viewport change forces reupload on the next draw")
}

func TestScissorClampsToViewport(t *testing.T) {
	fake := gpu.NewFake()
	m := New(fake)
	m.Viewport(Rect{0, 0, 100, 100})

	m.Scissor(Rect{-10, -10, 1000, 1000})
	require.Len(t, fake.Scissors, 1)
	require.Equal(t, gpu.ScissorCall{X: 0, Y: 0, W: 100, H: 100}, fake.Scissors[0])

	m.Scissor(Rect{-20, -20, 2000, 2000})
	require.Len(t, fake.Scissors, 1, "a differently-specified rect that clamps to the same result must not re-issue Scissor")
}

func TestClearSkipsRedundantColorButAlwaysClears(t *testing.T) {
	fake := gpu.NewFake()
	m := New(fake)
	m.Clear(1, 0, 0, 1)
	m.Clear(1, 0, 0, 1)
	require.Len(t, fake.ClearColor_, 1, "an unchanged clear color must not reissue ClearColor")
	require.Equal(t, 2, fake.Clears, "Clear must always execute even when the color is cached")
}

func TestClearDisablesAndRestoresScissor(t *testing.T) {
	fake := gpu.NewFake()
	m := New(fake)
	m.EnableScissorTest(true)
	m.Clear(0, 0, 0, 1)
	// Enabled by the caller, then disabled around the clear and restored.
	require.Equal(t, []bool{true, false, true}, fake.ScissorTests)
	require.Equal(t, 1, fake.Clears)
}
