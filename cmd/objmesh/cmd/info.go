// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"

	"cogentcore.org/objmesh/assets"
	"cogentcore.org/objmesh/cmd/objmesh/config"
)

// Info loads the given files and prints a summary of each mesh.
func Info(ctx context.Context, c *config.Config, w io.Writer, files ...string) error {
	st := newStore(c)
	if _, err := st.LoadAll(ctx, files...); err != nil {
		return err
	}
	for _, as := range st.Assets() {
		printAsset(w, as)
	}
	return nil
}

func printAsset(w io.Writer, as *assets.Asset) {
	ms := as.Mesh
	fmt.Fprintf(w, "%s: %s\n", as.Name, ms)
	fmt.Fprintf(w, "  triangles: %d\n", ms.NumTriangles())
	for _, at := range ms.Attributes() {
		fmt.Fprintf(w, "  %s: %d x %d\n", at.Name, at.Len(), at.Size)
	}
	if err := ms.Validate(); err != nil {
		fmt.Fprintf(w, "  invalid: %v\n", err)
	}
}
