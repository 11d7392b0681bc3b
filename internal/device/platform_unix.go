// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build darwin || linux

package device

import "golang.org/x/sys/unix"

// PageSize reports the host's memory page size, following the
// teacher's own use of golang.org/x/sys for low-level OS queries in
// internal/render/vk's sys_unix.go. The texture cache rounds its
// CPU-side pixel scratch allocations up to this boundary so repeated
// Lock/Unlock cycles on the same streaming texture don't churn the
// allocator across page boundaries.
func PageSize() int { return unix.Getpagesize() }
