// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/objmesh/base/tomlx"
	"cogentcore.org/objmesh/cmd/objmesh/config"
	"cogentcore.org/objmesh/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triObj = `# one triangle
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

func writeFile(t *testing.T, dir, name, src string) string {
	t.Helper()
	fp := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fp, []byte(src), 0666))
	return fp
}

func execute(t *testing.T, c *config.Config, args ...string) (string, error) {
	t.Helper()
	root := NewRoot(c)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	fp := writeFile(t, dir, "tri.obj", triObj)

	c := &config.Config{}
	out, err := execute(t, c, "info", fp)
	require.NoError(t, err)
	assert.Contains(t, out, "tri: TriangleList: 3 vertices, 3 indices")
	assert.Contains(t, out, "triangles: 1")
	assert.Contains(t, out, "NORMAL: 3 x 3")
	assert.Contains(t, out, "UV0: 3 x 2")
	assert.NotContains(t, out, "invalid")
	assert.Equal(t, 4, c.Concurrency)
	assert.Equal(t, mesh.NormalsWindowed, c.Mesh.Normals)

	_, err = execute(t, &config.Config{}, "info", filepath.Join(dir, "missing.obj"))
	assert.Error(t, err)

	_, err = execute(t, &config.Config{}, "info")
	assert.Error(t, err)
}

func TestConfigFlags(t *testing.T) {
	dir := t.TempDir()
	fp := writeFile(t, dir, "tri.obj", triObj)
	cfg := writeFile(t, dir, "objmesh.toml", "Concurrency = 2\n\n[Mesh]\nNormals = 'faces'\nRenormalize = true\n")

	c := &config.Config{}
	_, err := execute(t, c, "info", "--config", cfg, fp)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Concurrency)
	assert.Equal(t, mesh.NormalsFaces, c.Mesh.Normals)
	assert.True(t, c.Mesh.Renormalize)

	c = &config.Config{}
	_, err = execute(t, c, "info", "--config", cfg, "--normals", "windowed", "--concurrency", "1", fp)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Concurrency)
	assert.Equal(t, mesh.NormalsWindowed, c.Mesh.Normals)
	assert.True(t, c.Mesh.Renormalize)

	_, err = execute(t, &config.Config{}, "info", "--normals", "smooth", fp)
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	fp := writeFile(t, dir, "tri.obj", triObj)
	output := filepath.Join(dir, "out.toml")

	c := &config.Config{}
	_, err := execute(t, c, "export", "-o", output, fp)
	require.NoError(t, err)
	assert.Equal(t, output, c.Export.Output)

	ef := exportFile{}
	require.NoError(t, tomlx.Open(&ef, output))
	require.Len(t, ef.Mesh, 1)
	em := ef.Mesh[0]
	assert.Equal(t, "tri", em.Name)
	assert.Equal(t, "TriangleList", em.Topology)
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, em.Position)
	assert.Equal(t, []float32{0, 0, -1, 0, 0, 0, 0, 0, 0}, em.Normal)
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0}, em.UV0)
	assert.Equal(t, []uint32{0, 1, 2}, em.Index)
	assert.Equal(t, [3]float32{0, 0, 0}, em.BBoxMin)
	assert.Equal(t, [3]float32{1, 1, 0}, em.BBoxMax)
}

func TestExportStdout(t *testing.T) {
	dir := t.TempDir()
	fp := writeFile(t, dir, "tri.obj", triObj)

	out, err := execute(t, &config.Config{}, "export", "-o", "-", fp)
	require.NoError(t, err)

	ef := exportFile{}
	require.NoError(t, tomlx.Read(&ef, strings.NewReader(out)))
	require.Len(t, ef.Mesh, 1)
	assert.Equal(t, "tri", ef.Mesh[0].Name)
	assert.Equal(t, []uint32{0, 1, 2}, ef.Mesh[0].Index)
	assert.NoFileExists(t, "-")
}

func TestWatchDone(t *testing.T) {
	dir := t.TempDir()
	fp := writeFile(t, dir, "tri.obj", triObj)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	var out bytes.Buffer
	require.NoError(t, Watch(ctx, &config.Config{}, &out, fp))
	assert.Contains(t, out.String(), "tri: TriangleList")
}
