// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package config

import "testing"

func TestDefaults(t *testing.T) {
	c := New()
	if c.MaxVertices != 3600 {
		t.Fatalf("want default 3600 max vertices, got %d", c.MaxVertices)
	}
	if c.ProgramCapacity != 8 {
		t.Fatalf("want default program capacity 8, got %d", c.ProgramCapacity)
	}
	if c.Debug {
		t.Fatal("debug must default to off")
	}
	if !c.VSync {
		t.Fatal("vsync must default to on")
	}
}

func TestAttrOverrides(t *testing.T) {
	c := New(MaxVertices(7200), ProgramCapacity(16), Debug(), NoVSync())
	if c.MaxVertices != 7200 {
		t.Fatalf("want 7200, got %d", c.MaxVertices)
	}
	if c.ProgramCapacity != 16 {
		t.Fatalf("want 16, got %d", c.ProgramCapacity)
	}
	if !c.Debug {
		t.Fatal("Debug() must set Debug true")
	}
	if c.VSync {
		t.Fatal("NoVSync() must set VSync false")
	}
}

func TestAttrIgnoresUnreasonableValues(t *testing.T) {
	c := New(MaxVertices(3), ProgramCapacity(0))
	if c.MaxVertices != Defaults.MaxVertices {
		t.Fatalf("an arena too small for one quad must be ignored, got %d", c.MaxVertices)
	}
	if c.ProgramCapacity != Defaults.ProgramCapacity {
		t.Fatalf("a non-positive capacity must be ignored, got %d", c.ProgramCapacity)
	}
}
