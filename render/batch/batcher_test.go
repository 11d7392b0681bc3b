// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package batch

import "testing"

type fakeTex struct {
	name     string
	inBatch  bool
}

func (t *fakeTex) SetInBatch(v bool) { t.inBatch = v }

func quad() []Vertex {
	return make([]Vertex, 6) // two triangles, the fixed per-quad vertex count
}

func TestCoalescesSameKeyDraws(t *testing.T) {
	b := NewBatcher(3600)
	tex := &fakeTex{name: "a"}

	b.Submit(quad(), tex, BlendNone, Triangles, nil)
	b.Submit(quad(), tex, BlendNone, Triangles, nil)

	if len(b.Commands) != 1 {
		t.Fatalf("want 1 coalesced command, got %d", len(b.Commands))
	}
	if b.Commands[0].VertexCount != 12 {
		t.Fatalf("want 12 vertices in the coalesced command, got %d", b.Commands[0].VertexCount)
	}
	if !tex.inBatch {
		t.Fatal("texture referenced by an open command should be marked in_batch")
	}
}

func TestKeyChangeOpensNewCommand(t *testing.T) {
	b := NewBatcher(3600)
	texA := &fakeTex{name: "a"}
	texB := &fakeTex{name: "b"}

	b.Submit(quad(), texA, BlendNone, Triangles, nil)
	b.Submit(quad(), texB, BlendNone, Triangles, nil)
	b.Submit(quad(), texB, BlendNone, Triangles, nil)

	if len(b.Commands) != 2 {
		t.Fatalf("want 2 commands (a; b+b coalesced), got %d", len(b.Commands))
	}
	if b.Commands[0].VertexOffset != 0 || b.Commands[0].VertexCount != 6 {
		t.Fatalf("command 0 unexpected: %+v", b.Commands[0])
	}
	if b.Commands[1].VertexOffset != 6 || b.Commands[1].VertexCount != 12 {
		t.Fatalf("command 1 unexpected: %+v", b.Commands[1])
	}
	// command n+1's VertexOffset must equal command n's VertexOffset+VertexCount.
	if b.Commands[1].VertexOffset != b.Commands[0].VertexOffset+b.Commands[0].VertexCount {
		t.Fatalf("contiguity invariant broken: %+v %+v", b.Commands[0], b.Commands[1])
	}
}

func TestBlendChangeOpensNewCommand(t *testing.T) {
	b := NewBatcher(3600)
	tex := &fakeTex{name: "a"}

	b.Submit(quad(), tex, BlendNone, Triangles, nil)
	b.Submit(quad(), tex, BlendMod, Triangles, nil)

	if len(b.Commands) != 2 {
		t.Fatalf("want 2 commands for differing blend modes, got %d", len(b.Commands))
	}
}

func TestArenaOverflowTriggersExactlyOneFlush(t *testing.T) {
	b := NewBatcher(3600)
	tex := &fakeTex{name: "a"}

	flushes := 0
	onFlush := func() { flushes++ }

	for i := 0; i < 600; i++ {
		b.Submit(quad(), tex, BlendNone, Triangles, onFlush)
	}
	if b.Arena.Offset != 3600 {
		t.Fatalf("after 600 quads arena should be exactly full, got offset %d", b.Arena.Offset)
	}
	if flushes != 0 {
		t.Fatalf("filling the arena exactly should not flush yet, got %d flushes", flushes)
	}

	flushed := b.Submit(quad(), tex, BlendNone, Triangles, onFlush)
	if !flushed {
		t.Fatal("the 601st quad must trigger a flush")
	}
	if flushes != 1 {
		t.Fatalf("want exactly 1 flush, got %d", flushes)
	}
	if b.Arena.Offset != 6 {
		t.Fatalf("after the triggered flush the new quad should sit alone in the arena, got offset %d", b.Arena.Offset)
	}
	if len(b.Commands) != 1 || b.Commands[0].VertexOffset != 0 || b.Commands[0].VertexCount != 6 {
		t.Fatalf("post-flush command log unexpected: %+v", b.Commands)
	}
}

func TestRequestFlushIsNoOpWhenEmpty(t *testing.T) {
	b := NewBatcher(3600)
	called := false
	b.RequestFlush(FlushPresent, func() { called = true })
	if called {
		t.Fatal("RequestFlush on an empty batcher must not invoke onFlush")
	}
}

func TestFlushClearsInBatchOnReferencedTextures(t *testing.T) {
	b := NewBatcher(3600)
	tex := &fakeTex{name: "a"}
	b.Submit(quad(), tex, BlendNone, Triangles, nil)
	if !tex.inBatch || !b.IsBatched(tex) {
		t.Fatal("texture should be in_batch before flush")
	}
	b.RequestFlush(FlushPresent, nil)
	if tex.inBatch || b.IsBatched(tex) {
		t.Fatal("texture should no longer be in_batch after flush")
	}
	if b.OpenIndex() != -1 {
		t.Fatalf("open command index must reset to -1 after flush, got %d", b.OpenIndex())
	}
}
