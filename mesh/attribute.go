// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/objmesh/math32"
)

// AttributeName is the name of a per-vertex attribute buffer.
type AttributeName string

const (
	// Position is the vertex position attribute, 3 floats per vertex.
	Position AttributeName = "POSITION"

	// Normal is the vertex normal attribute, 3 floats per vertex.
	Normal AttributeName = "NORMAL"

	// UV0 is the first texture coordinate set, 2 floats per vertex.
	UV0 AttributeName = "UV0"
)

// Attribute is a named per-vertex buffer of fixed-size float32 tuples,
// index-aligned with the mesh positions.
type Attribute struct {

	// Name of the attribute.
	Name AttributeName

	// Size is the number of float32 components per vertex.
	Size int

	// Data holds Size values for each vertex, packed in vertex order.
	Data math32.ArrayF32
}

// Len returns the number of vertices in the attribute.
func (at Attribute) Len() int {
	if at.Size <= 0 {
		return 0
	}
	return len(at.Data) / at.Size
}

// Vector3 returns the value for vertex i of a 3 component attribute.
func (at Attribute) Vector3(i int) math32.Vector3 {
	return at.Data.Vector3(i * 3)
}

// Vector2 returns the value for vertex i of a 2 component attribute.
func (at Attribute) Vector2(i int) math32.Vector2 {
	return at.Data.Vector2(i * 2)
}

// Clone returns a deep copy of the attribute.
func (at Attribute) Clone() Attribute {
	at.Data = at.Data.Clone()
	return at
}

// validate checks that the data is a whole number of Size-tuples.
func (at Attribute) validate() error {
	if at.Size <= 0 || len(at.Data)%at.Size != 0 {
		return fmt.Errorf("%w: %s has %d values, not a multiple of %d", ErrAttributeLength, at.Name, len(at.Data), at.Size)
	}
	return nil
}

// Positions returns the [Position] attribute for the given points,
// holding the same values in the same order.
func Positions(pos []math32.Vector3) Attribute {
	data := math32.NewArrayF32(0, len(pos)*3)
	data.AppendVector3(pos...)
	return Attribute{Name: Position, Size: 3, Data: data}
}

// PlaceholderUVs returns a [UV0] attribute for n vertices with every
// coordinate zero. The source geometry carries no texture coordinates,
// but downstream consumers expect a UV channel to exist.
func PlaceholderUVs(n int) Attribute {
	return Attribute{Name: UV0, Size: 2, Data: math32.NewArrayF32(n*2, n*2)}
}
