// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"cogentcore.org/objmesh/math32"
	"cogentcore.org/objmesh/mesh"
	"cogentcore.org/objmesh/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangle = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func TestLoadBytes(t *testing.T) {
	rg := Default(mesh.Options{})
	ms, err := rg.LoadBytes(context.Background(), "tri.OBJ", []byte(triangle))
	require.NoError(t, err)
	assert.Equal(t, 3, ms.NumVertex())
	assert.Equal(t, math32.Vec3(0, 0, -1), ms.Normal.Vector3(0))
	assert.Equal(t, []string{".obj"}, rg.Extensions())
}

func TestOptions(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	rg := Default(mesh.Options{Normals: mesh.NormalsFaces})
	ms, err := rg.LoadBytes(context.Background(), "tri.obj", []byte(src))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, math32.Vec3(0, 0, -1), ms.Normal.Vector3(i))
	}
}

func TestNoLoader(t *testing.T) {
	rg := Default(mesh.Options{})
	_, err := rg.LoadBytes(context.Background(), "tri.stl", []byte(triangle))
	assert.ErrorIs(t, err, ErrNoLoader)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "tri.stl", le.Path)

	_, err = rg.LoadFile(context.Background(), "does/not/matter.fbx")
	assert.ErrorIs(t, err, ErrNoLoader)
}

func TestFormatError(t *testing.T) {
	rg := Default(mesh.Options{})
	_, err := rg.LoadBytes(context.Background(), "bad.obj", []byte("v 0 0\n"))
	assert.ErrorIs(t, err, ErrFormat)
	assert.ErrorIs(t, err, obj.ErrFormat)
	var fe *obj.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 1, fe.Line)
}

func TestBinaryRejected(t *testing.T) {
	rg := Default(mesh.Options{})
	png := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 32)...)
	_, err := rg.LoadBytes(context.Background(), "image.obj", png)
	assert.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "image/png")
}

func TestIndexOutOfRange(t *testing.T) {
	rg := Default(mesh.Options{})
	ms, err := rg.LoadBytes(context.Background(), "tri.obj", []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"))
	assert.Nil(t, ms)
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
	assert.NotErrorIs(t, err, ErrFormat)
}

func TestCanceled(t *testing.T) {
	rg := Default(mesh.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := rg.LoadBytes(ctx, "tri.obj", []byte(triangle))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = rg.LoadFile(ctx, "tri.obj")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "tri.obj")
	require.NoError(t, os.WriteFile(fn, []byte(triangle), 0666))

	rg := Default(mesh.Options{})
	ms, err := rg.LoadFile(context.Background(), fn)
	require.NoError(t, err)
	assert.Equal(t, 3, ms.NumIndex())

	_, err = rg.LoadFile(context.Background(), filepath.Join(dir, "missing.obj"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, filepath.Join(dir, "missing.obj"), le.Path)
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"models/tri.obj": {Data: []byte(triangle)},
		"models/bad.obj": {Data: []byte("v 0 0\n")},
		"models/tri.fbx": {Data: []byte(triangle)},
	}
	rg := Default(mesh.Options{})
	ms, err := rg.LoadFS(context.Background(), fsys, "models/tri.obj")
	require.NoError(t, err)
	assert.Equal(t, 3, ms.NumVertex())

	_, err = rg.LoadFS(context.Background(), fsys, "models/bad.obj")
	assert.ErrorIs(t, err, ErrFormat)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "models/bad.obj", le.Path)

	_, err = rg.LoadFS(context.Background(), fsys, "models/tri.fbx")
	assert.ErrorIs(t, err, ErrNoLoader)
	_, err = rg.LoadFS(context.Background(), fsys, "models/none.obj")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

type countLoader struct {
	mu sync.Mutex
	n  int
}

func (cl *countLoader) Extensions() []string { return []string{".Count"} }

func (cl *countLoader) Load(ctx context.Context, data []byte) (*mesh.Mesh, error) {
	cl.mu.Lock()
	cl.n++
	cl.mu.Unlock()
	if len(data) == 0 {
		return nil, errors.New("empty")
	}
	return mesh.Build(mesh.RawGeometry{}, mesh.Options{})
}

func TestRegister(t *testing.T) {
	cl := &countLoader{}
	rg := Default(mesh.Options{})
	rg.Register(cl)
	assert.Equal(t, []string{".count", ".obj"}, rg.Extensions())

	ld, err := rg.ForPath("a.COUNT")
	require.NoError(t, err)
	assert.Same(t, cl, ld)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := rg.LoadBytes(context.Background(), "x.count", []byte("data"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, cl.n)

	_, err = rg.LoadBytes(context.Background(), "x.count", nil)
	assert.EqualError(t, err, `loading "x.count": empty`)
}
