// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package accel2d

import (
	"fmt"
	"os"

	"github.com/gazed/accel2d/internal/errs"
	"github.com/gazed/accel2d/render/gpu"
	"github.com/gazed/accel2d/render/shader"
	"gopkg.in/yaml.v3"
)

// kindNames maps the YAML override file's human-readable shader kind
// names onto shader.Kind, the same name-to-constant mapping style the
// teacher's load/shd.go uses for attribute/uniform name tables.
var kindNames = map[string]shader.Kind{
	"vertex_default":          shader.VertexDefault,
	"fragment_solid":          shader.FragmentSolid,
	"fragment_texture_abgr":   shader.FragmentTextureABGR,
	"fragment_texture_argb":   shader.FragmentTextureARGB,
	"fragment_texture_rgb":    shader.FragmentTextureRGB,
	"fragment_texture_bgr":    shader.FragmentTextureBGR,
	"fragment_texture_yuv":    shader.FragmentTextureYUV,
	"fragment_texture_nv12":   shader.FragmentTextureNV12,
	"fragment_texture_nv21":   shader.FragmentTextureNV21,
}

// shaderDoc is the on-disk shape of an optional shader override file
// (spec.md §3 "shader source selection... is opaque to this spec";
// this lets a deployment swap in real GLSL/SPIR-V text without a
// rebuild).
type shaderDoc struct {
	Shaders []shaderDocEntry `yaml:"shaders"`
}

type shaderDocEntry struct {
	Kind         string `yaml:"kind"`
	Source       string `yaml:"source"`
	BinaryFormat uint32 `yaml:"binaryFormat"`
}

// defaultInstances returns the built-in source-text fallback for
// every shader kind this core ever requests. The source text itself
// is a placeholder: the real GLSL/SPIR-V payload is an out-of-scope
// collaborator concern (spec.md §1), supplied in production via
// LoadShaderConfig.
func defaultInstances() map[shader.Kind][]shader.Instance {
	m := map[shader.Kind][]shader.Instance{}
	for name, kind := range kindNames {
		m[kind] = []shader.Instance{{
			BinaryFormat: gpu.SourceFormat,
			Source:       fmt.Sprintf("// %s (built-in placeholder source)", name),
		}}
	}
	return m
}

// LoadShaderConfig reads a YAML override file and merges its entries
// over the built-in defaults, keyed by kind: an override replaces the
// default instance list for that kind outright rather than appending
// to it, the same replace-not-merge semantics the teacher's config
// loading uses for named overrides.
func LoadShaderConfig(path string) (map[shader.Kind][]shader.Instance, error) {
	instances := defaultInstances()
	if path == "" {
		return instances, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidState, "accel2d.LoadShaderConfig", err)
	}
	var doc shaderDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errs.Wrap(errs.InvalidState, "accel2d.LoadShaderConfig", err)
	}
	overrides := map[shader.Kind][]shader.Instance{}
	for _, e := range doc.Shaders {
		kind, ok := kindNames[e.Kind]
		if !ok {
			return nil, errs.New(errs.UnsupportedFormat, "accel2d.LoadShaderConfig", "unknown shader kind %q", e.Kind)
		}
		inst := shader.Instance{BinaryFormat: e.BinaryFormat, Source: e.Source}
		overrides[kind] = append(overrides[kind], inst)
	}
	for kind, insts := range overrides {
		instances[kind] = insts
	}
	return instances, nil
}
