// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"errors"
	"strings"
	"testing"

	"cogentcore.org/objmesh/math32"
	"cogentcore.org/objmesh/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeSide = `# one side of a cube
mtllib cube.mtl
o side
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0 1.0
vt 0 0
vt 1 0
vn 0 0 1
usemtl gray
s off
f 1/1/1 2/2/1 3//1 4
`

func TestDecode(t *testing.T) {
	dec, err := Decode(strings.NewReader(cubeSide))
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0),
	}, dec.Vertices)
	// quad fan: (0,1,2) (0,2,3)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, dec.Indices)
	assert.Equal(t, []Object{{Name: "side", FirstIndex: 0, NumIndex: 6}}, dec.Objects)
	assert.Empty(t, dec.Warnings)

	raw := dec.Geometry()
	assert.Equal(t, 4, raw.NumVertex())
	assert.Equal(t, 6, raw.NumIndex())
}

func TestDecodeBytes(t *testing.T) {
	raw, err := DecodeBytes([]byte("v 0 0 0\r\nv 1 0 0\r\nv 0 1 0\r\nf 1 2 3"))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, raw.Indices)

	ms, err := mesh.Build(raw, mesh.Options{})
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(0, 0, -1), ms.Normal.Vector3(0))
}

func TestRelativeIndexes(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\nv 5 5 5\nf -4 -1 2\n"
	raw, err := DecodeBytes([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2, 0, 3, 1}, raw.Indices)
}

func TestObjects(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
g second
f 3 2 1
f 1 3 2
`
	dec, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []Object{
		{Name: "unnamed4", FirstIndex: 0, NumIndex: 3},
		{Name: "second", FirstIndex: 3, NumIndex: 6},
	}, dec.Objects)
}

func TestWarnings(t *testing.T) {
	dec, err := Decode(strings.NewReader("v 0 0 0\ncstype bezier\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"obj(2): field not supported: cstype"}, dec.Warnings)
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		src  string
		line int
		msg  string
	}{
		{"v 0 0\n", 1, "Less than 3 vertices"},
		{"\nv 0 x 0\n", 2, `invalid number "x"`},
		{"v 0 0 0\nf 1 1\n", 2, "Face line with less 3 fields"},
		{"v 0 0 0\nf 1 0 1\n", 2, "index value equal to 0"},
		{"v 0 0 0\nf 1 a 1\n", 2, "is not an integer"},
		{"v 0 0 0\nf 1 -2 1\n", 2, "before first vertex"},
		{"v 0 0 0\nf 1/-1 1 1\n", 2, "before first uv"},
		{"v 0 0 0\nvn 0 0 1\nf 1//-2 1 1\n", 3, "before first normal"},
		{"v 0 0 0\nf 1/1/1/1 1 1\n", 2, "more than 3 parts"},
		{"vn 0 1\n", 1, "Less than 3 normals"},
		{"vt\n", 1, "No texture coords"},
		{"o\n", 1, "Object line"},
		{"usemtl\n", 1, "usemtl with no fields"},
		{"s maybe\n", 1, "'s' with invalid value"},
	}
	for _, tt := range tests {
		_, err := DecodeBytes([]byte(tt.src))
		require.Error(t, err, tt.src)
		assert.ErrorIs(t, err, ErrFormat, tt.src)
		var fe *FormatError
		require.True(t, errors.As(err, &fe), tt.src)
		assert.Equal(t, tt.line, fe.Line, tt.src)
		assert.Contains(t, fe.Msg, tt.msg, tt.src)
	}
}

func TestForwardIndexPassesThrough(t *testing.T) {
	// the decoder does not range check indexes; mesh.Build does
	raw, err := DecodeBytes([]byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 3}, raw.Indices)

	_, err = mesh.Build(raw, mesh.Options{})
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
}

func TestEmpty(t *testing.T) {
	raw, err := DecodeBytes(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, raw.NumVertex())
	ms, err := mesh.Build(raw, mesh.Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, ms.NumVertex())
}
