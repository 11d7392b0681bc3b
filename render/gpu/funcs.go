// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package gpu describes the GPU as a function table: an interface whose
// methods stand in for function pointers resolved once at init and called
// indirectly everywhere else in the core. This keeps the batching
// pipeline, caches, and state minimizer platform-neutral and testable
// against a mock table (see Fake in fake.go), following the same
// call-through-package approach the teacher's render/gl package uses
// for its generated OpenGL bindings (github.com/gazed/vu/render/gl).
//
// The GPU API itself — what these fields eventually call — is out of
// scope for this package; something resolves Funcs against a real
// context (EGL/GLX/WGL loader, Vulkan device, etc.) before handing it
// to the renderer.
package gpu

// PrimitiveKind selects the GPU draw topology for draw_arrays.
type PrimitiveKind uint32

const (
	Points PrimitiveKind = iota
	Lines
	Triangles
)

// BlendMode is one of the four blend equations this core supports.
// Advanced blend equations beyond these are a declared non-goal.
type BlendMode uint32

const (
	BlendNone BlendMode = iota
	BlendBlend
	BlendAdd
	BlendMod
)

// TextureUnit identifies one of the (at most 3) texture units the
// core binds: Y/RGBA on 0, U or UV on 1, V on 2.
type TextureUnit uint32

const (
	TexUnit0 TextureUnit = iota
	TexUnit1
	TexUnit2
)

// ShaderStage matches the teacher's load/shd.go shader stage naming.
type ShaderStage uint32

const (
	StageVertex ShaderStage = iota
	StageFragment
)

// Attribute indices bound by name, frozen per spec.md §3 because the
// Vertex layout is exposed to shaders at these stable locations.
const (
	AttribPosition uint32 = iota
	AttribTexCoord
	AttribAngle
	AttribCenter
	AttribColor
)

// NoError is the sentinel GL-style "no error" value get_error returns
// when nothing is wrong.
const NoError uint32 = 0

// Funcs is the function table every core subsystem calls through.
// Method names mirror the named GPU primitives from spec.md §1: each
// is a thin stand-in for one indirect call site resolved at init.
type Funcs interface {
	// Texture object lifecycle.
	GenTexture() uint32
	BindTexture(unit TextureUnit, tex uint32)
	DeleteTexture(tex uint32)
	TexImage2D(tex uint32, w, h int, pixels []byte)
	TexSubImage2D(tex uint32, x, y, w, h int, pixels []byte)
	TexParameteri(tex uint32, pname, value uint32)
	PixelStorei(pname, value uint32)

	// Framebuffer lifecycle.
	GenFramebuffer() uint32
	DeleteFramebuffer(fbo uint32)
	BindFramebuffer(fbo uint32)
	FramebufferTexture2D(fbo, tex uint32)
	CheckFramebufferStatus() bool

	// Shader/program lifecycle.
	CreateShader(stage ShaderStage) uint32
	DeleteShader(shader uint32)
	ShaderSource(shader uint32, source string)
	ShaderBinary(shader uint32, binary []byte, format uint32) bool
	CompileShader(shader uint32) (ok bool, infoLog string)
	CreateProgram() uint32
	DeleteProgram(program uint32)
	AttachShader(program, shader uint32)
	LinkProgram(program uint32) (ok bool, infoLog string)
	BindAttribLocation(program uint32, index uint32, name string)
	GetUniformLocation(program uint32, name string) int32
	UseProgram(program uint32)
	Uniform1i(location int32, v int32)
	UniformMatrix4fv(location int32, m [4][4]float32)

	// Vertex buffer / attribute pipeline.
	GenBuffer() uint32
	BindBuffer(buf uint32)
	BufferSubData(buf uint32, offset int, data []byte)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int, stride, offset int)
	DrawArrays(kind PrimitiveKind, first, count int)

	// Per-draw state.
	Viewport(x, y, w, h int)
	Scissor(x, y, w, h int)
	EnableScissorTest(enabled bool)
	EnableBlend(enabled bool)
	BlendFuncSeparate(mode BlendMode)
	ClearColor(r, g, b, a float32)
	Clear()

	// Readback & diagnostics.
	ReadPixels(x, y, w, h int) []byte
	ActiveTexture(unit TextureUnit)
	GetError() uint32
	GetIntegerv(pname uint32) int32
	Finish()
}

// SupportedBinaryFormats reports the platform's compiled-binary shader
// formats, most-preferred first. The sentinel "source" means compile
// from GLSL/SPIR-V-equivalent source text rather than loading a binary
// blob; it is always a valid fallback per spec.md §4.3.
type SupportedBinaryFormats interface {
	BinaryFormats() []uint32
}

// SourceFormat is the sentinel binary format meaning "compile from
// source text" rather than load a precompiled binary.
const SourceFormat uint32 = 0
