// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// ArrayF32 is a slice of float32 with additional convenience methods
// for packing and unpacking vectors, as stored in vertex attribute buffers.
type ArrayF32 []float32

// NewArrayF32 creates a returns a new array of floats
// with the specified initial size and capacity
func NewArrayF32(size, capacity int) ArrayF32 {
	return make([]float32, size, capacity)
}

// AppendVector3 appends any number of Vector3 to the array
func (a *ArrayF32) AppendVector3(v ...Vector3) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y, v[i].Z)
	}
}

// Vector2 returns the Vector2 starting at the given float position
func (a ArrayF32) Vector2(pos int) Vector2 {
	return Vec2(a[pos], a[pos+1])
}

// Vector3 returns the Vector3 starting at the given float position
func (a ArrayF32) Vector3(pos int) Vector3 {
	return Vec3(a[pos], a[pos+1], a[pos+2])
}

// Clone returns a copy of the array that shares no memory with it.
func (a ArrayF32) Clone() ArrayF32 {
	if a == nil {
		return nil
	}
	c := make(ArrayF32, len(a))
	copy(c, a)
	return c
}

///////////////////////////////////////////////////////////////////////
//  ArrayU32

// ArrayU32 is a slice of uint32 with additional convenience methods,
// used for index buffers.
type ArrayU32 []uint32

// Clone returns a copy of the array that shares no memory with it.
func (a ArrayU32) Clone() ArrayU32 {
	if a == nil {
		return nil
	}
	c := make(ArrayU32, len(a))
	copy(c, a)
	return c
}
