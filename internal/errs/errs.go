// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package errs defines the renderer's error-kind taxonomy (spec.md §7)
// as a single typed error, shared by render/shader, render/texture,
// render/state, and the root accel2d package so none of them needs to
// import another to report a classified failure.
package errs

import "fmt"

// Kind classifies a renderer error so callers can branch on errors.As
// without string matching.
type Kind int

const (
	// ResourceExhaustion covers OOM for host-side allocations and
	// too-many-vertices-for-one-call.
	ResourceExhaustion Kind = iota
	// GpuBackendError wraps any failure reported by the GPU function table.
	GpuBackendError
	// CompileLinkFailure covers shader compile or program link failure;
	// carries the infolog when the GPU backend provides one.
	CompileLinkFailure
	// UnsupportedFormat covers texture formats outside the allowed set
	// or cross-format render-target copies the swizzle table can't cover.
	UnsupportedFormat
	// InvalidState covers incomplete framebuffers, null draw arguments,
	// and operations on destroyed resources.
	InvalidState
)

func (k Kind) String() string {
	switch k {
	case ResourceExhaustion:
		return "resource exhaustion"
	case GpuBackendError:
		return "gpu backend error"
	case CompileLinkFailure:
		return "compile/link failure"
	case UnsupportedFormat:
		return "unsupported format"
	case InvalidState:
		return "invalid state"
	}
	return "unknown"
}

// Error is the single error type this module returns. Op names the
// failing operation (e.g. "shader.Cache.Acquire") so messages stay
// greppable without a stack trace.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("accel2d: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error, formatting format/args into the wrapped error
// the way the teacher's code builds plain errors with fmt.Errorf.
func New(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies an existing error under op/kind without reformatting it.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
