// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/objmesh/base/errors"
)

var (
	// ErrIndexOutOfRange is returned when a vertex index refers past
	// the end of the position buffer.
	ErrIndexOutOfRange = errors.New("mesh: vertex index out of range")

	// ErrAttributeLength is returned by [Assemble] when the attribute
	// buffers do not all have one entry per vertex.
	ErrAttributeLength = errors.New("mesh: attribute buffer length mismatch")
)

// IndexError records an out-of-range vertex index and where it
// occurred in the index stream. It unwraps to [ErrIndexOutOfRange].
type IndexError struct {

	// Offset is the position of the bad value in the index stream.
	Offset int

	// Index is the offending vertex index.
	Index uint32

	// NumVertex is the number of vertices that were available.
	NumVertex int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("mesh: index %d at offset %d is out of range for %d vertices", e.Index, e.Offset, e.NumVertex)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
