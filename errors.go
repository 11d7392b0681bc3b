// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package accel2d

import "github.com/gazed/accel2d/internal/errs"

// ErrorKind classifies why a Renderer operation failed (spec.md §7).
type ErrorKind = errs.Kind

const (
	ResourceExhaustion = errs.ResourceExhaustion
	GpuBackendError    = errs.GpuBackendError
	CompileLinkFailure = errs.CompileLinkFailure
	UnsupportedFormat  = errs.UnsupportedFormat
	InvalidState       = errs.InvalidState
)

// Error is re-exported from internal/errs so callers can errors.As
// against a single public type without reaching into an internal
// package.
type Error = errs.Error
