// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package accel2d

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gazed/accel2d/internal/device"
	"github.com/gazed/accel2d/render/gpu"
	"github.com/gazed/accel2d/render/texture"
)

// fakeWindow is the internal/device.Window collaborator used by this
// package's integration tests, modeled on render/gpu.Fake's role as a
// testable stand-in for a real GPU context (spec.md §9).
type fakeWindow struct {
	w, h  int
	funcs *gpu.Fake
	swaps int
}

func newFakeWindow(w, h int) *fakeWindow {
	return &fakeWindow{w: w, h: h, funcs: gpu.NewFake()}
}

func (f *fakeWindow) Size() (int, int)      { return f.w, f.h }
func (f *fakeWindow) SwapBuffers()          { f.swaps++ }
func (f *fakeWindow) Funcs() gpu.Funcs      { return f.funcs }
func (f *fakeWindow) BinaryFormats() []uint32 { return nil }

func newTestRenderer(t *testing.T) (*Renderer, *fakeWindow) {
	t.Helper()
	win := newFakeWindow(320, 240)
	r, err := NewRenderer(win)
	require.NoError(t, err)
	t.Cleanup(r.Destroy)
	return r, win
}

// S1: a single clear issues exactly one ClearColor and one Clear call,
// no draws, and leaves the arena empty (spec.md §8 S1, invariant 1).
func TestRenderClearScenario(t *testing.T) {
	r, win := newTestRenderer(t)
	r.SetDrawColor(Color{R: 10.0 / 255, G: 20.0 / 255, B: 30.0 / 255, A: 40.0 / 255})
	require.NoError(t, r.RenderClear())
	r.RenderPresent()

	fake := win.funcs
	require.Len(t, fake.ClearColor_, 1)
	require.Equal(t, float32(10.0/255), fake.ClearColor_[0].R)
	require.Equal(t, 1, fake.Clears)
	require.Empty(t, fake.DrawArrays_)
	require.Equal(t, 0, r.batcher.Arena.Offset)
	require.Equal(t, -1, r.batcher.OpenIndex())
}

// S2: 100 fill_rects calls of 2 rects each, same blend mode, coalesce
// into a single draw_arrays(TRIANGLES, 0, 1200) (spec.md §8 S2).
func TestCoalescedFillRectsScenario(t *testing.T) {
	r, win := newTestRenderer(t)
	rects := make([]Rect, 2)
	for i := 0; i < 100; i++ {
		require.NoError(t, r.RenderFillRects(rects, Color{R: 1, G: 1, B: 1, A: 1}))
	}
	require.Equal(t, 1200, r.batcher.Arena.Offset)
	r.RenderPresent()

	fake := win.funcs
	require.Len(t, fake.DrawArrays_, 1)
	require.Equal(t, 0, fake.DrawArrays_[0].First)
	require.Equal(t, 1200, fake.DrawArrays_[0].Count)
}

// S3: NONE, BLEND, NONE blend changes between three fill_rects produce
// three distinct draw_arrays calls with the blend state toggled
// between them (spec.md §8 S3).
func TestBlendModeSplitScenario(t *testing.T) {
	r, win := newTestRenderer(t)
	rect := []Rect{{X: 0, Y: 0, W: 10, H: 10}}

	r.SetDrawBlendMode(BlendNone)
	require.NoError(t, r.RenderFillRects(rect, Color{R: 1, G: 1, B: 1, A: 1}))
	r.SetDrawBlendMode(BlendBlend)
	require.NoError(t, r.RenderFillRects(rect, Color{R: 1, G: 1, B: 1, A: 1}))
	r.SetDrawBlendMode(BlendNone)
	require.NoError(t, r.RenderFillRects(rect, Color{R: 1, G: 1, B: 1, A: 1}))

	r.RenderPresent()

	fake := win.funcs
	require.Len(t, fake.DrawArrays_, 3)
	for _, call := range fake.DrawArrays_ {
		require.Equal(t, 6, call.Count)
	}
	require.Len(t, fake.BlendFuncs, 3, "each blend-mode change applies BlendFuncSeparate once")
	require.Equal(t, gpu.BlendMode(BlendNone), fake.BlendFuncs[0])
	require.Equal(t, gpu.BlendMode(BlendBlend), fake.BlendFuncs[1])
	require.Equal(t, gpu.BlendMode(BlendNone), fake.BlendFuncs[2])
}

// S4: streaming-texture update against a texture referenced by an
// open batch forces an implicit flush before the upload proceeds
// (spec.md §8 S4, invariant 2).
func TestTextureUpdateMidBatchForcesFlush(t *testing.T) {
	r, win := newTestRenderer(t)
	tex, err := r.CreateTexture(texture.ABGR8888, texture.AccessStreaming, 4, 4)
	require.NoError(t, err)

	dst := Rect{X: 0, Y: 0, W: 4, H: 4}
	for i := 0; i < 5; i++ {
		require.NoError(t, r.RenderCopy(tex, dst, dst))
	}
	require.True(t, tex.InBatch())

	fake := win.funcs
	drawsBefore := len(fake.DrawArrays_)
	require.NoError(t, r.UpdateTexture(tex, dst, make([]byte, 4*4*4), 16))

	require.False(t, tex.InBatch(), "texture must no longer be in_batch after the forced flush")
	require.Greater(t, len(fake.DrawArrays_), drawsBefore, "the implicit flush must have issued the pending draws")
}

// Selecting each of two same-size AccessTarget textures as the render
// target must re-attach that texture's own GPU texture to the shared
// pooled FBO each time: a stale attachment left over from creating the
// second texture must not survive a later SetRenderTarget back to the
// first (spec.md §4.6).
func TestSetRenderTargetReattachesSharedPooledFBO(t *testing.T) {
	r, win := newTestRenderer(t)
	first, err := r.CreateTexture(texture.ABGR8888, texture.AccessTarget, 8, 8)
	require.NoError(t, err)
	second, err := r.CreateTexture(texture.ABGR8888, texture.AccessTarget, 8, 8)
	require.NoError(t, err)

	require.NoError(t, r.SetRenderTarget(first))
	require.NoError(t, r.SetRenderTarget(second))
	require.NoError(t, r.SetRenderTarget(first))

	fake := win.funcs
	require.Equal(t, first.FBO, second.FBO, "same-size target textures share one pooled FBO")
	require.NotEmpty(t, fake.Attaches)
	last := fake.Attaches[len(fake.Attaches)-1]
	require.Equal(t, first.FBO, last.FBO)
	require.Equal(t, first.GPUTextureY, last.Tex, "the shared FBO must be re-attached to first's texture, not left pointing at second's")
}

// An incomplete framebuffer on selection surfaces as an error rather
// than silently binding a broken render target (spec.md §4.6).
func TestSetRenderTargetRejectsIncompleteFramebuffer(t *testing.T) {
	r, win := newTestRenderer(t)
	tex, err := r.CreateTexture(texture.ABGR8888, texture.AccessTarget, 4, 4)
	require.NoError(t, err)

	win.funcs.FramebufferStatusOK = false
	require.Error(t, r.SetRenderTarget(tex))
}

// Projection is uploaded exactly once across a run of draws that
// neither change program nor resize the viewport (spec.md §8
// invariant 9).
func TestProjectionUploadedOnceWithoutViewportChange(t *testing.T) {
	r, win := newTestRenderer(t)
	rect := []Rect{{X: 0, Y: 0, W: 10, H: 10}}
	for i := 0; i < 3; i++ {
		require.NoError(t, r.RenderFillRects(rect, Color{R: 1, G: 1, B: 1, A: 1}))
	}
	r.RenderPresent()

	fake := win.funcs
	// All three rects coalesce into one command (identical keys), so
	// issueCommand runs once and uploads the projection once.
	require.Len(t, fake.DrawArrays_, 1)
	require.Equal(t, 1, fake.MatrixUploads)
}
