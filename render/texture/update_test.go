// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"testing"

	"github.com/gazed/accel2d/render/gpu"
	"github.com/stretchr/testify/require"
)

func TestUpdatePacksNonTightPitch(t *testing.T) {
	fake := gpu.NewFake()
	tex, err := New(fake, ABGR8888, AccessStreaming, 2, 2)
	require.NoError(t, err)

	// pitch wider than tight 2*4=8 bytes/row: 10-byte stride with 2 padding bytes.
	pixels := make([]byte, 2*10)
	for row := 0; row < 2; row++ {
		pixels[row*10] = byte(row + 1) // marker at start of each row
	}

	err = tex.Update(fake, Rect{0, 0, 2, 2}, pixels, 10)
	require.NoError(t, err)
	require.Len(t, fake.TexSubImages, 1)
	up := fake.TexSubImages[0].Pixels
	require.Len(t, up, 2*8, "rows must be packed to the tight 8-byte stride")
	require.Equal(t, byte(1), up[0])
	require.Equal(t, byte(2), up[8])
}

func TestUpdatePlanarYUVOrdersVandUByFormat(t *testing.T) {
	fake := gpu.NewFake()

	iyuv, err := New(fake, IYUV, AccessStreaming, 4, 4)
	require.NoError(t, err)
	yv12, err := New(fake, YV12, AccessStreaming, 4, 4)
	require.NoError(t, err)

	// Y(16) + U(4) + V(4) contiguous buffer at tight pitch.
	buf := make([]byte, 16+4+4)
	require.NoError(t, iyuv.Update(fake, Rect{0, 0, 4, 4}, buf, 4))
	require.NoError(t, yv12.Update(fake, Rect{0, 0, 4, 4}, buf, 4))

	up := fake.TexSubImages
	require.Len(t, up, 6)
	require.Equal(t, []uint32{iyuv.GPUTextureY, iyuv.GPUTextureU, iyuv.GPUTextureV},
		[]uint32{up[0].Tex, up[1].Tex, up[2].Tex}, "IYUV uploads U then V")
	require.Equal(t, []uint32{yv12.GPUTextureY, yv12.GPUTextureV, yv12.GPUTextureU},
		[]uint32{up[3].Tex, up[4].Tex, up[5].Tex}, "YV12 uploads V then U")
}

func TestUpdateSemiPlanarNV(t *testing.T) {
	fake := gpu.NewFake()
	tex, err := New(fake, NV12, AccessStreaming, 4, 4)
	require.NoError(t, err)

	buf := make([]byte, 16+8) // Y(16) + interleaved UV at half-res, 2 bytes/texel
	require.NoError(t, tex.Update(fake, Rect{0, 0, 4, 4}, buf, 4))
}

func TestUpdateRejectsTargetTexture(t *testing.T) {
	fake := gpu.NewFake()
	cache := NewCache(fake)
	tex, err := cache.CreateTexture(ABGR8888, AccessTarget, 4, 4)
	require.NoError(t, err)

	err = tex.Update(fake, Rect{0, 0, 4, 4}, make([]byte, 4*4*4), 16)
	require.Error(t, err)
}

func TestLockUnlockReuploadsWholeTexture(t *testing.T) {
	fake := gpu.NewFake()
	tex, err := New(fake, ABGR8888, AccessStreaming, 4, 4)
	require.NoError(t, err)

	pixels, pitch, err := tex.Lock(Rect{1, 1, 2, 2})
	require.NoError(t, err)
	require.NotNil(t, pixels)
	require.Equal(t, 16, pitch) // 4 wide * 4 bpp

	require.NoError(t, tex.Unlock(fake))
	// The locked sub-rect was {1,1,2,2}; Unlock uploads the whole 4x4 texture.
	require.NotEmpty(t, fake.TexSubImages)
	last := fake.TexSubImages[len(fake.TexSubImages)-1]
	require.Equal(t, []int{0, 0, 4, 4}, []int{last.X, last.Y, last.W, last.H})
}

func TestLockRejectsNonStreamingTexture(t *testing.T) {
	fake := gpu.NewFake()
	tex, err := New(fake, ABGR8888, AccessStatic, 4, 4)
	require.NoError(t, err)

	_, _, err = tex.Lock(Rect{0, 0, 4, 4})
	require.Error(t, err)
}
