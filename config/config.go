// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package config reduces the NewRenderer API footprint using
// functional options, following the same pattern the teacher's
// top-level config.go uses for NewEngine.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis
package config

// Config contains the renderer attributes that can be set before
// the first draw call.
type Config struct {
	MaxVertices     int  // vertex arena capacity (spec.md §3 default 3600)
	ProgramCapacity int  // program cache MRU capacity (spec.md §4.4 default 8)
	Debug           bool // gate GPU error draining (spec.md §7)
	VSync           bool // hint passed through to the window collaborator
}

// Defaults provides reasonable defaults so the renderer runs even if
// no configuration attributes are set.
var Defaults = Config{
	MaxVertices:     3600,
	ProgramCapacity: 8,
	Debug:           false,
	VSync:           true,
}

// Attr defines an optional attribute override.
//
//	r, err := accel2d.NewRenderer(win,
//	    config.MaxVertices(7200),
//	    config.Debug(),
//	)
type Attr func(*Config)

// MaxVertices overrides the vertex arena capacity. Values below 6 (one
// textured quad) are ignored since no draw could ever fit.
func MaxVertices(n int) Attr {
	return func(c *Config) {
		if n >= 6 {
			c.MaxVertices = n
		}
	}
}

// ProgramCapacity overrides the program cache's MRU capacity. Values
// below 1 are ignored.
func ProgramCapacity(n int) Attr {
	return func(c *Config) {
		if n >= 1 {
			c.ProgramCapacity = n
		}
	}
}

// Debug enables GPU error draining and logging after RenderClear,
// RenderPresent, WindowEvent, the texture create/destroy/update/unlock
// operations, and every batch flush.
func Debug() Attr {
	return func(c *Config) { c.Debug = true }
}

// NoVSync disables the vsync-present hint.
func NoVSync() Attr {
	return func(c *Config) { c.VSync = false }
}

// New applies attrs over Defaults and returns the resulting Config.
func New(attrs ...Attr) Config {
	c := Defaults
	for _, attr := range attrs {
		attr(&c)
	}
	return c
}
