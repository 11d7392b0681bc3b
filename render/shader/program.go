// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shader

import (
	"github.com/gazed/accel2d/internal/errs"
	"github.com/gazed/accel2d/render/gpu"
)

// DefaultCapacity is the program cache's fixed MRU capacity (spec.md §4.4).
const DefaultCapacity = 8

// attribute names bound at link time, matching the Vertex layout's
// fixed attribute indices in render/batch.
var attribNames = [5]string{
	gpu.AttribPosition: "a_position",
	gpu.AttribTexCoord: "a_texCoord",
	gpu.AttribAngle:    "a_angle",
	gpu.AttribCenter:   "a_center",
	gpu.AttribColor:    "a_color",
}

// Program is a linked, cached GPU program paired with its two
// shader-cache entries (spec.md §3 ProgramCacheEntry).
type Program struct {
	ID               uint32
	Blend            uint32
	Vertex, Fragment *Entry
	UniformLocations [4]int32 // projection, texture, texture_u, texture_v
	LastProjection   [4][4]float32
	HasProjection    bool

	prev, next *Program
}

const (
	uniformProjection = 0
	uniformTexture    = 1
	uniformTextureU   = 2
	uniformTextureV   = 3
)

type programKey struct{ Vertex, Fragment *Entry }

// ProgramCache is the MRU-ordered, capacity-limited cache of linked
// programs described in spec.md §4.4. Lookup keys on the two source
// Entry pointers by identity, since shader entries are interned by Cache.
type ProgramCache struct {
	funcs    gpu.Funcs
	shaders  *Cache
	capacity int

	entries    map[programKey]*Program
	head, tail *Program
}

// NewProgramCache builds a program cache with the given capacity (0
// selects DefaultCapacity), delegating shader eviction to shaders.
func NewProgramCache(funcs gpu.Funcs, shaders *Cache, capacity int) *ProgramCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ProgramCache{
		funcs:    funcs,
		shaders:  shaders,
		capacity: capacity,
		entries:  map[programKey]*Program{},
	}
}

// Acquire returns the program linking vertex and fragment, creating
// and linking one on a miss and evicting the MRU tail if the cache
// overflows its capacity. On a hit the entry moves to the head.
func (pc *ProgramCache) Acquire(vertex, fragment *Entry, blend uint32) (*Program, error) {
	key := programKey{vertex, fragment}
	if p, ok := pc.entries[key]; ok {
		pc.moveToHead(p)
		return p, nil
	}

	handle := pc.funcs.CreateProgram()
	pc.funcs.AttachShader(handle, vertex.Handle)
	pc.funcs.AttachShader(handle, fragment.Handle)
	for i, name := range attribNames {
		pc.funcs.BindAttribLocation(handle, uint32(i), name)
	}
	ok, infoLog := pc.funcs.LinkProgram(handle)
	if !ok {
		pc.funcs.DeleteProgram(handle)
		return nil, errs.New(errs.CompileLinkFailure, "shader.ProgramCache.Acquire", "link failed: %s", infoLog)
	}

	p := &Program{ID: handle, Blend: blend, Vertex: vertex, Fragment: fragment}
	p.UniformLocations[uniformProjection] = pc.funcs.GetUniformLocation(handle, "u_projection")
	p.UniformLocations[uniformTexture] = pc.funcs.GetUniformLocation(handle, "u_texture")
	p.UniformLocations[uniformTextureU] = pc.funcs.GetUniformLocation(handle, "u_texture_u")
	p.UniformLocations[uniformTextureV] = pc.funcs.GetUniformLocation(handle, "u_texture_v")

	pc.funcs.UseProgram(handle)
	pc.funcs.Uniform1i(p.UniformLocations[uniformTexture], 0)
	pc.funcs.Uniform1i(p.UniformLocations[uniformTextureU], 1)
	pc.funcs.Uniform1i(p.UniformLocations[uniformTextureV], 2)

	pc.linkHead(p)
	pc.entries[key] = p
	vertex.References++
	fragment.References++

	if len(pc.entries) > pc.capacity {
		pc.evictTail()
	}
	return p, nil
}

func (pc *ProgramCache) linkHead(p *Program) {
	p.next = pc.head
	if pc.head != nil {
		pc.head.prev = p
	}
	pc.head = p
	if pc.tail == nil {
		pc.tail = p
	}
}

func (pc *ProgramCache) unlink(p *Program) {
	if p.prev != nil {
		p.prev.next = p.next
	} else {
		pc.head = p.next
	}
	if p.next != nil {
		p.next.prev = p.prev
	} else {
		pc.tail = p.prev
	}
	p.prev, p.next = nil, nil
}

func (pc *ProgramCache) moveToHead(p *Program) {
	if pc.head == p {
		return
	}
	pc.unlink(p)
	pc.linkHead(p)
}

func (pc *ProgramCache) evictTail() {
	victim := pc.tail
	if victim == nil {
		return
	}
	pc.unlink(victim)
	delete(pc.entries, programKey{victim.Vertex, victim.Fragment})
	pc.funcs.DeleteProgram(victim.ID)
	pc.shaders.Release(victim.Vertex)
	pc.shaders.Release(victim.Fragment)
}

// Len reports the number of cached programs (test hook).
func (pc *ProgramCache) Len() int { return len(pc.entries) }

// Head returns the most-recently-used program, or nil if empty (test hook).
func (pc *ProgramCache) Head() *Program { return pc.head }

// Tail returns the least-recently-used program, or nil if empty (test hook).
func (pc *ProgramCache) Tail() *Program { return pc.tail }

// Destroy deletes every remaining cached program's GPU object and
// forgets it (spec.md §5 teardown ordering). It does not release the
// referenced shader entries; the caller destroys the shader cache
// separately.
func (pc *ProgramCache) Destroy() {
	for _, p := range pc.entries {
		pc.funcs.DeleteProgram(p.ID)
	}
	pc.entries = map[programKey]*Program{}
	pc.head, pc.tail = nil, nil
}
