// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package batch

// FlushReason records why a flush happened, for logging/debug-mode
// diagnostics only; it changes no behavior.
type FlushReason int

const (
	FlushArenaFull FlushReason = iota
	FlushPresent
	FlushRenderTargetChange
	FlushStreamingUpdate
	FlushTextureDestroy
	FlushContextSwitch
)

func (r FlushReason) String() string {
	switch r {
	case FlushArenaFull:
		return "arena full"
	case FlushPresent:
		return "present"
	case FlushRenderTargetChange:
		return "render target change"
	case FlushStreamingUpdate:
		return "streaming texture update"
	case FlushTextureDestroy:
		return "texture destroy"
	case FlushContextSwitch:
		return "context switch"
	}
	return "unknown"
}

// Batcher coalesces incoming draws into runs of compatible commands
// (spec.md §4.2) over a fixed-size Arena. It owns no GPU state itself:
// flushing is delegated to an onFlush callback supplied by the caller,
// which is expected to issue the actual vertex upload and draw_arrays
// sequence (spec.md §4.2, flush algorithm steps 1-4) using Arena.Used()
// and Commands before Batcher resets them.
type Batcher struct {
	Arena    *Arena
	Commands []Command

	openIndex int // draw_command_offset; -1 means no open command.
	batched   map[BatchedTexture]bool
}

// NewBatcher allocates a batcher with an arena sized for maxVertices
// (0 selects DefaultMaxVertices).
func NewBatcher(maxVertices int) *Batcher {
	return &Batcher{
		Arena:     NewArena(maxVertices),
		openIndex: -1,
		batched:   map[BatchedTexture]bool{},
	}
}

// OpenIndex exposes the open-command invariant: -1 denotes "no open command".
func (b *Batcher) OpenIndex() int { return b.openIndex }

// Submit appends vertices under the given coalescing keys
// (texture, blend mode, primitive kind), flushing first via onFlush if
// the arena lacks room (spec.md §4.1 step 1). Returns true if a flush
// occurred.
func (b *Batcher) Submit(vertices []Vertex, tex BatchedTexture, blend BlendMode, kind PrimitiveKind, onFlush func()) bool {
	flushed := false
	if !b.Arena.Fits(len(vertices)) {
		b.Flush(FlushArenaFull, onFlush)
		flushed = true
	}
	start := b.Arena.Append(vertices)
	b.coalesce(tex, blend, kind, len(vertices), start)
	if tex != nil {
		tex.SetInBatch(true)
		b.batched[tex] = true
	}
	return flushed
}

// coalesce extends the open command if its keys match, otherwise opens
// a new one starting where the previous ended (spec.md §4.2).
func (b *Batcher) coalesce(tex BatchedTexture, blend BlendMode, kind PrimitiveKind, count, start int) {
	if b.openIndex >= 0 {
		open := &b.Commands[b.openIndex]
		if open.sameKeys(tex, blend, kind) {
			open.VertexCount += count
			return
		}
	}
	b.Commands = append(b.Commands, Command{
		Kind: kind, Blend: blend, Texture: tex,
		VertexOffset: start, VertexCount: count,
	})
	b.openIndex = len(b.Commands) - 1
}

// RequestFlush forces a flush for an explicit trigger (present,
// render-target change, streaming texture update, texture destroy, or
// context switch) even though the arena may not be full. It is a
// no-op if nothing is queued.
func (b *Batcher) RequestFlush(reason FlushReason, onFlush func()) {
	if b.Arena.Offset == 0 && len(b.Commands) == 0 {
		return
	}
	b.Flush(reason, onFlush)
}

// Flush runs onFlush against the current Arena/Commands, then resets
// the arena, clears the command log, and clears in_batch on every
// texture referenced since the last flush (spec.md §4.2 step 5).
func (b *Batcher) Flush(reason FlushReason, onFlush func()) {
	if onFlush != nil {
		onFlush()
	}
	for tex := range b.batched {
		tex.SetInBatch(false)
		delete(b.batched, tex)
	}
	b.Arena.Reset()
	b.Commands = b.Commands[:0]
	b.openIndex = -1
}

// IsBatched reports whether t is referenced by an unflushed command.
func (b *Batcher) IsBatched(t BatchedTexture) bool { return b.batched[t] }
