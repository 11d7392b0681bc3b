// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shader

import (
	"github.com/gazed/accel2d/internal/errs"
	"github.com/gazed/accel2d/render/gpu"
)

// Instance is one candidate compiled form of a shader kind: either
// source text (BinaryFormat == gpu.SourceFormat) or a precompiled
// binary blob tagged with the platform binary format it was built
// for. A kind may register several instances; the cache picks the
// first whose format the platform reports support for (spec.md §4.3).
type Instance struct {
	BinaryFormat uint32
	Source       string
	Binary       []byte
}

// Entry is a cached, linked, compiled shader object (spec.md §3
// ShaderCacheEntry). The list is ordered most-recently-created at
// head; unlike the program cache this list is never reordered on a
// cache hit.
type Entry struct {
	ID         uint32
	Kind       Kind
	Blend      blendKey
	Handle     uint32
	References int

	prev, next *Entry
}

// blendKey is deliberately package-private: blend mode belongs to
// render/batch's gpu.BlendMode, but the shader cache only needs it as
// an opaque key component, so it is passed in as a uint32 to avoid a
// needless import coupling here.
type blendKey = uint32

type cacheKey struct {
	Kind   Kind
	Blend  blendKey
	Format uint32
}

// Cache deduplicates compiled shaders by (kind, blend_mode,
// binary_format) and refcounts them against program-cache pressure
// (spec.md §4.3). It never evicts on its own; Release is called by
// the program cache when a program referencing an entry is evicted.
type Cache struct {
	funcs     gpu.Funcs
	platform  gpu.SupportedBinaryFormats
	instances map[Kind][]Instance

	entries    map[cacheKey]*Entry
	head, tail *Entry
	nextID     uint32
}

// NewCache builds a shader cache against funcs/platform, with
// instances giving the compiled-form candidates for each Kind this
// renderer will ever request.
func NewCache(funcs gpu.Funcs, platform gpu.SupportedBinaryFormats, instances map[Kind][]Instance) *Cache {
	return &Cache{
		funcs:     funcs,
		platform:  platform,
		instances: instances,
		entries:   map[cacheKey]*Entry{},
	}
}

// selectInstance picks the first instance whose binary format the
// platform reports support for, in the platform's preference order,
// falling back to a source-text instance if one is registered.
func selectInstance(candidates []Instance, platform gpu.SupportedBinaryFormats) (Instance, bool) {
	if platform != nil {
		for _, format := range platform.BinaryFormats() {
			for _, inst := range candidates {
				if inst.BinaryFormat == format {
					return inst, true
				}
			}
		}
	}
	for _, inst := range candidates {
		if inst.BinaryFormat == gpu.SourceFormat {
			return inst, true
		}
	}
	return Instance{}, false
}

func stageFor(kind Kind) gpu.ShaderStage {
	if kind == VertexDefault {
		return gpu.StageVertex
	}
	return gpu.StageFragment
}

// Acquire returns the cached entry for (kind, blend), compiling and
// linking it into the cache on a miss. References is not touched here;
// the program cache increments it once the entry is bound into a
// linked program.
func (c *Cache) Acquire(kind Kind, blend uint32) (*Entry, error) {
	candidates := c.instances[kind]
	if len(candidates) == 0 {
		return nil, errs.New(errs.UnsupportedFormat, "shader.Cache.Acquire", "no registered instances for kind %d", kind)
	}
	inst, ok := selectInstance(candidates, c.platform)
	if !ok {
		return nil, errs.New(errs.UnsupportedFormat, "shader.Cache.Acquire", "no instance of kind %d matches a supported binary format", kind)
	}

	key := cacheKey{Kind: kind, Blend: blend, Format: inst.BinaryFormat}
	if entry, ok := c.entries[key]; ok {
		return entry, nil
	}

	handle := c.funcs.CreateShader(stageFor(kind))
	if inst.BinaryFormat == gpu.SourceFormat {
		c.funcs.ShaderSource(handle, inst.Source)
		ok, infoLog := c.funcs.CompileShader(handle)
		if !ok {
			c.funcs.DeleteShader(handle)
			return nil, errs.New(errs.CompileLinkFailure, "shader.Cache.Acquire", "compile failed for kind %d: %s", kind, infoLog)
		}
	} else {
		if ok := c.funcs.ShaderBinary(handle, inst.Binary, inst.BinaryFormat); !ok {
			c.funcs.DeleteShader(handle)
			return nil, errs.New(errs.CompileLinkFailure, "shader.Cache.Acquire", "binary load failed for kind %d, format %d", kind, inst.BinaryFormat)
		}
	}

	c.nextID++
	entry := &Entry{ID: c.nextID, Kind: kind, Blend: blend, Handle: handle}
	c.linkHead(entry)
	c.entries[key] = entry
	return entry, nil
}

func (c *Cache) linkHead(e *Entry) {
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *Cache) unlink(e *Entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

// Release decrements entry's refcount, evicting and deleting the GPU
// shader object once it reaches zero (spec.md §4.3: "Eviction happens
// only by program-cache pressure").
func (c *Cache) Release(entry *Entry) {
	entry.References--
	if entry.References > 0 {
		return
	}
	for key, e := range c.entries {
		if e == entry {
			delete(c.entries, key)
			break
		}
	}
	c.unlink(entry)
	c.funcs.DeleteShader(entry.Handle)
}

// Len reports the number of distinct cached shader entries (test hook).
func (c *Cache) Len() int { return len(c.entries) }

// Destroy deletes every remaining cached shader's GPU object and
// forgets it, regardless of refcount (spec.md §5 teardown ordering:
// "shader cache, program cache, framebuffer pool, GPU context").
func (c *Cache) Destroy() {
	for _, e := range c.entries {
		c.funcs.DeleteShader(e.Handle)
	}
	c.entries = map[cacheKey]*Entry{}
	c.head, c.tail = nil, nil
}
