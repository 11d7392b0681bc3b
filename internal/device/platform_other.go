// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build !darwin && !linux

package device

// PageSize falls back to the common x86/ARM page size on platforms
// without a golang.org/x/sys/unix binding (see platform_unix.go).
func PageSize() int { return 4096 }
