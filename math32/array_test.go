// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayF32(t *testing.T) {
	a := NewArrayF32(0, 8)
	a.AppendVector3(Vec3(1, 2, 3), Vec3(4, 5, 6))
	a = append(a, 7, 8)
	assert.Len(t, a, 8)
	assert.Equal(t, Vec3(4, 5, 6), a.Vector3(3))
	assert.Equal(t, Vec2(7, 8), a.Vector2(6))

	c := a.Clone()
	c[0] = 100
	assert.Equal(t, float32(1), a[0])
	assert.Nil(t, ArrayF32(nil).Clone())
}

func TestArrayU32(t *testing.T) {
	a := ArrayU32{0, 1, 2}
	c := a.Clone()
	c[1] = 7
	assert.Equal(t, ArrayU32{0, 1, 2}, a)
	assert.Nil(t, ArrayU32(nil).Clone())
}

func TestBox3(t *testing.T) {
	bb := B3Empty()
	assert.True(t, bb.IsEmpty())
	assert.Equal(t, "[empty]", bb.String())

	vtx := ArrayF32{0, 0, 0, 1, 2, 3, -1, 5, 1}
	bb = B3FromArray(vtx, 0, 3)
	assert.Equal(t, B3(-1, 0, 0, 1, 5, 3), bb)
	assert.False(t, bb.IsEmpty())
	assert.Equal(t, "[(-1, 0, 0) - (1, 5, 3)]", bb.String())

	bb = B3FromArray(vtx, 1, 1)
	assert.Equal(t, B3(1, 2, 3, 1, 2, 3), bb)
	assert.False(t, bb.IsEmpty())

	bb.ExpandByPoint(Vec3(0, 0, 0))
	assert.Equal(t, B3(0, 0, 0, 1, 2, 3), bb)
	bb.SetEmpty()
	assert.True(t, bb.IsEmpty())
}
