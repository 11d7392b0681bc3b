// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import "github.com/gazed/accel2d/render/gpu"

// fboEntry is one node of the framebuffer pool's unordered singly-linked
// list (spec.md §3 FramebufferPool entry); lookup is linear by (w,h).
type fboEntry struct {
	w, h int
	fbo  uint32
	next *fboEntry
}

// FramebufferPool hands out one FBO per distinct (w,h) ever requested,
// reusing it on subsequent requests for the same size (spec.md §4.6).
type FramebufferPool struct {
	head *fboEntry
}

// Get returns the pooled FBO for (w,h), creating and linking one via
// funcs if this is the first request at that size.
func (p *FramebufferPool) Get(funcs gpu.Funcs, w, h int) uint32 {
	for e := p.head; e != nil; e = e.next {
		if e.w == w && e.h == h {
			return e.fbo
		}
	}
	fbo := funcs.GenFramebuffer()
	p.head = &fboEntry{w: w, h: h, fbo: fbo, next: p.head}
	return fbo
}

// Destroy releases every pooled FBO.
func (p *FramebufferPool) Destroy(funcs gpu.Funcs) {
	for e := p.head; e != nil; e = e.next {
		funcs.DeleteFramebuffer(e.fbo)
	}
	p.head = nil
}
