// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh turns raw parsed geometry, a list of vertex positions and
// a list of triangle vertex indices, into a renderer-ready indexed
// triangle mesh with position, synthesized normal, and placeholder
// texture coordinate buffers.
//
// [Build] is a pure function: it shares no state between calls and
// may be called concurrently for independent inputs.
package mesh

import (
	"fmt"

	"cogentcore.org/objmesh/math32"
)

// Topology is the primitive topology of a [Mesh].
type Topology int32

const (
	// TriangleList means each consecutive three indices form a triangle.
	TriangleList Topology = iota
)

func (tp Topology) String() string {
	if tp == TriangleList {
		return "TriangleList"
	}
	return fmt.Sprintf("Topology(%d)", int32(tp))
}

// RawGeometry is the output of a mesh-description parser:
// vertex positions and a flat list of triangle vertex indices.
// The number of indices is normally a multiple of 3, but this
// is not required.
type RawGeometry struct {
	Positions []math32.Vector3
	Indices   []uint32
}

// NumVertex returns the number of vertex positions.
func (rg *RawGeometry) NumVertex() int {
	return len(rg.Positions)
}

// NumIndex returns the number of indices.
func (rg *RawGeometry) NumIndex() int {
	return len(rg.Indices)
}

// Mesh is an indexed mesh ready for rendering. All attributes have
// one entry per vertex. A Mesh owns all of its buffers.
type Mesh struct {

	// Topology is always [TriangleList].
	Topology Topology

	// Position holds the vertex positions.
	Position Attribute

	// Normal holds the synthesized vertex normals.
	Normal Attribute

	// UV0 holds the placeholder texture coordinates.
	UV0 Attribute

	// Index is the triangle index buffer.
	Index math32.ArrayU32

	// BBox is the bounding box of the positions.
	BBox math32.Box3
}

// Assemble combines the given attributes and index buffer into a
// new [TriangleList] [Mesh]. The buffers are copied, so assembling
// twice from the same inputs gives equal, independent meshes.
// It returns an error wrapping [ErrAttributeLength] if the
// attributes do not all have the same number of vertices.
// Index values are not checked; see [Mesh.Validate].
func Assemble(position, normal, uv Attribute, index math32.ArrayU32) (*Mesh, error) {
	for _, at := range []Attribute{position, normal, uv} {
		if err := at.validate(); err != nil {
			return nil, err
		}
	}
	nv := position.Len()
	if normal.Len() != nv || uv.Len() != nv {
		return nil, fmt.Errorf("%w: %s %d, %s %d, %s %d", ErrAttributeLength,
			position.Name, nv, normal.Name, normal.Len(), uv.Name, uv.Len())
	}
	ms := &Mesh{
		Topology: TriangleList,
		Position: position.Clone(),
		Normal:   normal.Clone(),
		UV0:      uv.Clone(),
		Index:    index.Clone(),
	}
	if ms.Index == nil {
		ms.Index = math32.ArrayU32{}
	}
	ms.BBox = math32.B3FromArray(ms.Position.Data, 0, nv)
	return ms, nil
}

// Build runs the full pipeline on the given geometry: position ingest,
// normal synthesis, placeholder texture coordinates, and assembly.
// On error no mesh is returned.
func Build(raw RawGeometry, opts Options) (*Mesh, error) {
	pos := Positions(raw.Positions)
	nrm, err := SynthesizeNormals(raw.Positions, raw.Indices, opts)
	if err != nil {
		return nil, err
	}
	uv := PlaceholderUVs(len(raw.Positions))
	return Assemble(pos, nrm, uv, raw.Indices)
}

// NumVertex returns the number of vertices.
func (ms *Mesh) NumVertex() int {
	return ms.Position.Len()
}

// NumIndex returns the number of indices.
func (ms *Mesh) NumIndex() int {
	return len(ms.Index)
}

// NumTriangles returns the number of complete triangles in the index buffer.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Index) / 3
}

// Attributes returns the attribute buffers in a fixed order:
// [Position], [Normal], [UV0].
func (ms *Mesh) Attributes() []Attribute {
	return []Attribute{ms.Position, ms.Normal, ms.UV0}
}

// Attribute returns the attribute with the given name, if present.
func (ms *Mesh) Attribute(name AttributeName) (Attribute, bool) {
	for _, at := range ms.Attributes() {
		if at.Name == name {
			return at, true
		}
	}
	return Attribute{}, false
}

// Validate checks that every index refers to an existing vertex,
// returning an [*IndexError] for the first one that does not.
func (ms *Mesh) Validate() error {
	nv := ms.NumVertex()
	for i, vi := range ms.Index {
		if int64(vi) >= int64(nv) {
			return &IndexError{Offset: i, Index: vi, NumVertex: nv}
		}
	}
	return nil
}

func (ms *Mesh) String() string {
	return fmt.Sprintf("%v: %d vertices, %d indices, bbox %v", ms.Topology, ms.NumVertex(), ms.NumIndex(), ms.BBox)
}
