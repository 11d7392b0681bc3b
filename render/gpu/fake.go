// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package gpu

// Fake is an in-memory Funcs implementation used by the render/shader,
// render/texture, render/state, and root accel2d test suites. It
// hands out monotonically increasing handles and records every call
// so tests can assert on GPU call counts without a real context
// (spec.md §9, "Function-table indirection... testable against a mock
// table").
type Fake struct {
	nextHandle uint32

	Calls []string

	DrawArrays_    []DrawArraysCall
	ClearColor_    []ClearColorCall
	Clears         int
	Viewports      []ViewportCall
	Scissors       []ScissorCall
	BlendFuncs     []BlendMode
	UsePrograms    []uint32
	BufferSubDatas int
	Attaches       []FramebufferAttachCall
	ScissorTests   []bool
	MatrixUploads  int
	AttribBinds    []string
	Uniform1is     []int32
	TexSubImages   []TexSubImageCall

	FramebufferStatusOK bool
	CompileOK           bool
	LinkOK              bool

	ReadPixelsData []byte
}

type DrawArraysCall struct {
	Kind         PrimitiveKind
	First, Count int
}

type ClearColorCall struct{ R, G, B, A float32 }

type ViewportCall struct{ X, Y, W, H int }

type ScissorCall struct{ X, Y, W, H int }

type FramebufferAttachCall struct{ FBO, Tex uint32 }

type TexSubImageCall struct {
	Tex        uint32
	X, Y, W, H int
	Pixels     []byte
}

// NewFake returns a Fake with compile/link/framebuffer checks
// defaulting to success, matching a healthy GPU context.
func NewFake() *Fake {
	return &Fake{FramebufferStatusOK: true, CompileOK: true, LinkOK: true}
}

func (f *Fake) handle() uint32 {
	f.nextHandle++
	return f.nextHandle
}

func (f *Fake) GenTexture() uint32                                { return f.handle() }
func (f *Fake) BindTexture(unit TextureUnit, tex uint32)          {}
func (f *Fake) DeleteTexture(tex uint32)                          {}
func (f *Fake) TexImage2D(tex uint32, w, h int, pixels []byte)    {}
func (f *Fake) TexSubImage2D(tex uint32, x, y, w, h int, p []byte) {
	f.TexSubImages = append(f.TexSubImages, TexSubImageCall{tex, x, y, w, h, p})
}
func (f *Fake) TexParameteri(tex uint32, pname, value uint32)     {}
func (f *Fake) PixelStorei(pname, value uint32)                   {}

func (f *Fake) GenFramebuffer() uint32                  { return f.handle() }
func (f *Fake) DeleteFramebuffer(fbo uint32)             {}
func (f *Fake) BindFramebuffer(fbo uint32)               {}
func (f *Fake) FramebufferTexture2D(fbo, tex uint32) {
	f.Attaches = append(f.Attaches, FramebufferAttachCall{fbo, tex})
}
func (f *Fake) CheckFramebufferStatus() bool             { return f.FramebufferStatusOK }

func (f *Fake) CreateShader(stage ShaderStage) uint32 { return f.handle() }
func (f *Fake) DeleteShader(shader uint32)            {}
func (f *Fake) ShaderSource(shader uint32, source string) {}
func (f *Fake) ShaderBinary(shader uint32, binary []byte, format uint32) bool {
	return f.CompileOK
}
func (f *Fake) CompileShader(shader uint32) (bool, string) {
	if f.CompileOK {
		return true, ""
	}
	return false, "fake compile failure"
}
func (f *Fake) CreateProgram() uint32      { return f.handle() }
func (f *Fake) DeleteProgram(program uint32) {}
func (f *Fake) AttachShader(program, shader uint32) {}
func (f *Fake) LinkProgram(program uint32) (bool, string) {
	if f.LinkOK {
		return true, ""
	}
	return false, "fake link failure"
}
func (f *Fake) BindAttribLocation(program uint32, index uint32, name string) {
	f.AttribBinds = append(f.AttribBinds, name)
}
func (f *Fake) GetUniformLocation(program uint32, name string) int32 {
	return int32(f.handle())
}
func (f *Fake) UseProgram(program uint32) { f.UsePrograms = append(f.UsePrograms, program) }
func (f *Fake) Uniform1i(location int32, v int32) { f.Uniform1is = append(f.Uniform1is, v) }
func (f *Fake) UniformMatrix4fv(location int32, m [4][4]float32) { f.MatrixUploads++ }

func (f *Fake) GenBuffer() uint32 { return f.handle() }
func (f *Fake) BindBuffer(buf uint32) {}
func (f *Fake) BufferSubData(buf uint32, offset int, data []byte) { f.BufferSubDatas++ }
func (f *Fake) EnableVertexAttribArray(index uint32)  {}
func (f *Fake) DisableVertexAttribArray(index uint32) {}
func (f *Fake) VertexAttribPointer(index uint32, size int, stride, offset int) {}
func (f *Fake) DrawArrays(kind PrimitiveKind, first, count int) {
	f.DrawArrays_ = append(f.DrawArrays_, DrawArraysCall{kind, first, count})
}

func (f *Fake) Viewport(x, y, w, h int) { f.Viewports = append(f.Viewports, ViewportCall{x, y, w, h}) }
func (f *Fake) Scissor(x, y, w, h int)  { f.Scissors = append(f.Scissors, ScissorCall{x, y, w, h}) }
func (f *Fake) EnableScissorTest(enabled bool) { f.ScissorTests = append(f.ScissorTests, enabled) }
func (f *Fake) EnableBlend(enabled bool)       {}
func (f *Fake) BlendFuncSeparate(mode BlendMode) {
	f.BlendFuncs = append(f.BlendFuncs, mode)
}
func (f *Fake) ClearColor(r, g, b, a float32) {
	f.ClearColor_ = append(f.ClearColor_, ClearColorCall{r, g, b, a})
}
func (f *Fake) Clear() { f.Clears++ }

func (f *Fake) ReadPixels(x, y, w, h int) []byte {
	if f.ReadPixelsData != nil {
		return f.ReadPixelsData
	}
	return make([]byte, w*h*4)
}
func (f *Fake) ActiveTexture(unit TextureUnit) {}
func (f *Fake) GetError() uint32               { return NoError }
func (f *Fake) GetIntegerv(pname uint32) int32 { return 0 }
func (f *Fake) Finish()                        {}
