// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"strings"

	"cogentcore.org/objmesh/math32"
)

// NormalMode selects how [SynthesizeNormals] walks the index stream.
type NormalMode int32

const (
	// NormalsWindowed slides a window of three indices across the index
	// stream one element at a time, so consecutive windows overlap by two,
	// and adds each window's unit normal to the first vertex of the window
	// only. This reproduces the normals of the reference .obj loader and
	// is the default.
	NormalsWindowed NormalMode = iota

	// NormalsFaces partitions the index stream into disjoint triangles
	// and adds each face's unit normal to all three of its corners,
	// the standard smooth-normal technique. A trailing partial
	// triangle is ignored.
	NormalsFaces
)

var normalModeNames = [...]string{"windowed", "faces"}

// NormalModes returns all valid NormalMode values.
func NormalModes() []NormalMode {
	return []NormalMode{NormalsWindowed, NormalsFaces}
}

func (nm NormalMode) String() string {
	if nm < 0 || int(nm) >= len(normalModeNames) {
		return fmt.Sprintf("NormalMode(%d)", int32(nm))
	}
	return normalModeNames[nm]
}

// SetString sets the mode from its string name, case insensitive.
func (nm *NormalMode) SetString(s string) error {
	for i, n := range normalModeNames {
		if strings.EqualFold(s, n) {
			*nm = NormalMode(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type NormalMode (windowed, faces)", s)
}

// Set implements the flag value interface.
func (nm *NormalMode) Set(s string) error {
	return nm.SetString(s)
}

// Type implements the flag value interface.
func (nm *NormalMode) Type() string {
	return "NormalMode"
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (nm NormalMode) MarshalText() ([]byte, error) {
	return []byte(nm.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (nm *NormalMode) UnmarshalText(text []byte) error {
	return nm.SetString(string(text))
}

// SynthesizeNormals computes one normal per vertex of pos from the
// index stream idx, returning them as a [Normal] attribute.
// The unit normal of each triangle (v0, v1, v2) is
// normalize(cross(v0 - v1, v2 - v1)), and degenerate triangles
// contribute the zero vector. Contributions are summed per vertex
// according to opts.Normals, and the sums are left unnormalized
// unless opts.Renormalize is set. Vertices that receive no
// contribution have a zero normal.
//
// Any index that is not less than len(pos) aborts the whole
// operation with an [*IndexError].
func SynthesizeNormals(pos []math32.Vector3, idx []uint32, opts Options) (Attribute, error) {
	norms := make([]math32.Vector3, len(pos))

	var err error
	switch opts.Normals {
	case NormalsWindowed:
		err = windowedNormals(pos, idx, norms)
	case NormalsFaces:
		err = faceNormals(pos, idx, norms)
	default:
		err = fmt.Errorf("mesh: invalid NormalMode %v", opts.Normals)
	}
	if err != nil {
		return Attribute{}, err
	}

	data := math32.NewArrayF32(0, len(norms)*3)
	for _, nrm := range norms {
		if opts.Renormalize {
			nrm = nrm.Normal()
		}
		data.AppendVector3(nrm)
	}
	return Attribute{Name: Normal, Size: 3, Data: data}, nil
}

// windowedNormals visits every run of three consecutive indices,
// adding the normal to the first vertex of the run.
func windowedNormals(pos []math32.Vector3, idx []uint32, norms []math32.Vector3) error {
	for w := 0; w+2 < len(idx); w++ {
		nrm, err := triangleNormal(pos, idx, w)
		if err != nil {
			return err
		}
		norms[idx[w]].SetAdd(nrm)
	}
	return nil
}

// faceNormals visits disjoint triangles, adding the normal to
// all three corners.
func faceNormals(pos []math32.Vector3, idx []uint32, norms []math32.Vector3) error {
	for t := 0; t+2 < len(idx); t += 3 {
		nrm, err := triangleNormal(pos, idx, t)
		if err != nil {
			return err
		}
		norms[idx[t]].SetAdd(nrm)
		norms[idx[t+1]].SetAdd(nrm)
		norms[idx[t+2]].SetAdd(nrm)
	}
	return nil
}

// triangleNormal returns the unit normal of the triangle whose
// indices start at offset off in idx.
func triangleNormal(pos []math32.Vector3, idx []uint32, off int) (math32.Vector3, error) {
	var tri math32.Triangle
	for k := 0; k < 3; k++ {
		vi := idx[off+k]
		if int64(vi) >= int64(len(pos)) {
			return math32.Vector3{}, &IndexError{Offset: off + k, Index: vi, NumVertex: len(pos)}
		}
	}
	tri.SetFromPointsAndIndices(pos, int(idx[off]), int(idx[off+1]), int(idx[off+2]))
	return tri.Normal(), nil
}
