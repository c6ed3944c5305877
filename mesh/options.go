// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Options are the settings for [Build].
// The zero value gives the reference behavior.
type Options struct {

	// Normals selects the normal synthesis algorithm.
	Normals NormalMode `default:"windowed"`

	// Renormalize scales each accumulated vertex normal to
	// unit length. When off, the normals are the raw sums of
	// the unit normals of the contributing triangles.
	Renormalize bool
}

// Defaults sets the reference behavior: overlapping windows,
// no renormalization.
func (op *Options) Defaults() {
	op.Normals = NormalsWindowed
	op.Renormalize = false
}
