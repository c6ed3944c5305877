// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"io"
	"log/slog"

	"cogentcore.org/objmesh/base/tomlx"
	"cogentcore.org/objmesh/cmd/objmesh/config"
	"cogentcore.org/objmesh/math32"
	"cogentcore.org/objmesh/mesh"
)

// exportFile is the TOML layout written by [Export].
type exportFile struct {
	Mesh []exportMesh
}

// exportMesh holds the GPU-ready buffers of one mesh.
type exportMesh struct {
	Name     string
	Path     string
	Topology string
	BBoxMin  [3]float32
	BBoxMax  [3]float32
	Position []float32
	Normal   []float32
	UV0      []float32
	Index    []uint32
}

// Export loads the given files and writes the buffers of
// each mesh to the [config.Export.Output] TOML file, or to w
// if the output is "-".
func Export(ctx context.Context, c *config.Config, w io.Writer, files ...string) error {
	st := newStore(c)
	if _, err := st.LoadAll(ctx, files...); err != nil {
		return err
	}
	ef := exportFile{}
	for _, as := range st.Assets() {
		ef.Mesh = append(ef.Mesh, newExportMesh(as.Name, as.Path, as.Mesh))
	}
	if c.Export.Output == "-" {
		return tomlx.Write(&ef, w)
	}
	if err := tomlx.Save(&ef, c.Export.Output); err != nil {
		return err
	}
	slog.Info("exported meshes", "n", len(ef.Mesh), "output", c.Export.Output)
	return nil
}

func newExportMesh(name, path string, ms *mesh.Mesh) exportMesh {
	em := exportMesh{
		Name:     name,
		Path:     path,
		Topology: ms.Topology.String(),
		Position: floats(ms.Position.Data),
		Normal:   floats(ms.Normal.Data),
		UV0:      floats(ms.UV0.Data),
		Index:    []uint32(ms.Index.Clone()),
	}
	if !ms.BBox.IsEmpty() {
		em.BBoxMin = ms.BBox.Min.Array()
		em.BBoxMax = ms.BBox.Max.Array()
	}
	return em
}

func floats(a math32.ArrayF32) []float32 {
	return []float32(a.Clone())
}
