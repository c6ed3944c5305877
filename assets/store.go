// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets provides a named collection of loaded meshes,
// with concurrent loading and reloading of changed files.
package assets

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"cogentcore.org/objmesh/base/errors"
	"cogentcore.org/objmesh/base/fsx"
	"cogentcore.org/objmesh/base/ordmap"
	"cogentcore.org/objmesh/loader"
	"cogentcore.org/objmesh/mesh"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when a mesh name is not in the [Store].
var ErrNotFound = errors.New("assets: mesh not found")

// Asset is a loaded mesh and the file it was loaded from.
type Asset struct {

	// Name is the unique name of the mesh in the store.
	Name string

	// Path is the file the mesh was loaded from.
	Path string

	// Mesh is the loaded mesh.
	Mesh *mesh.Mesh
}

// Store is a named, ordered collection of meshes loaded through
// a [loader.Registry]. Meshes are named by the base name of their
// file. It is safe for concurrent use.
type Store struct {

	// Registry is used to load files.
	Registry *loader.Registry

	// Concurrency is the maximum number of files loaded at
	// the same time by [Store.LoadAll]; <= 0 means no limit.
	Concurrency int

	// OnReload, if set, is called after [Store.Watch]
	// has successfully reloaded an asset.
	OnReload func(as *Asset)

	// OnReloadError, if set, is called when [Store.Watch] fails to
	// reload an asset, after which the asset keeps its previous mesh.
	OnReloadError func(as *Asset, err error)

	mu     sync.Mutex
	assets ordmap.Map[string, *Asset]
}

// NewStore returns a new store using the given registry.
func NewStore(rg *loader.Registry) *Store {
	return &Store{Registry: rg}
}

// Load loads the given file and adds it to the store under
// its base name. A mesh previously loaded from the same path is
// replaced, and a mesh of the same name from a different path is
// kept by giving the new one a unique name, as in [Store.AddUnique].
func (st *Store) Load(ctx context.Context, fpath string) (*mesh.Mesh, error) {
	ms, err := st.Registry.LoadFile(ctx, fpath)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.add(&Asset{Name: fsx.BaseName(fpath), Path: fpath, Mesh: ms})
	return ms, nil
}

// LoadAll loads all of the given files concurrently, adding them
// to the store in the given order, named as in [Store.Load].
// The first error cancels the remaining loads, and nothing is
// added to the store in that case.
func (st *Store) LoadAll(ctx context.Context, fpaths ...string) ([]*mesh.Mesh, error) {
	meshes := make([]*mesh.Mesh, len(fpaths))
	eg, ctx := errgroup.WithContext(ctx)
	if st.Concurrency > 0 {
		eg.SetLimit(st.Concurrency)
	}
	for i, fp := range fpaths {
		i, fp := i, fp
		eg.Go(func() error {
			ms, err := st.Registry.LoadFile(ctx, fp)
			if err != nil {
				return err
			}
			slog.Debug("loaded mesh", "path", fp, "vertices", ms.NumVertex(), "indices", ms.NumIndex())
			meshes[i] = ms
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	for i, fp := range fpaths {
		st.add(&Asset{Name: fsx.BaseName(fp), Path: fp, Mesh: meshes[i]})
	}
	return meshes, nil
}

// Set adds the given asset, replacing any existing asset of the same name.
func (st *Store) Set(as *Asset) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.assets.Add(as.Name, as)
}

// AddUnique adds the given asset, ensuring that it has
// a unique name if one already exists by appending
// the number of assets to its name.
func (st *Store) AddUnique(as *Asset) string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.addUnique(as)
}

func (st *Store) addUnique(as *Asset) string {
	nm := as.Name
	for n := st.assets.Len(); ; n++ {
		if _, has := st.assets.ValueByKeyTry(nm); !has {
			break
		}
		nm = fmt.Sprintf("%s_%d", as.Name, n)
	}
	as.Name = nm
	st.assets.Add(nm, as)
	return nm
}

// add adds a loaded asset, replacing one loaded from the same path
// and otherwise renaming it to be unique. st.mu must be held.
func (st *Store) add(as *Asset) {
	if old, has := st.assets.ValueByKeyTry(as.Name); has && old.Path != as.Path {
		st.addUnique(as)
		return
	}
	st.assets.Add(as.Name, as)
}

// Mesh returns the mesh with the given name, or nil if not found.
func (st *Store) Mesh(name string) *mesh.Mesh {
	ms, _ := st.MeshTry(name)
	return ms
}

// MeshTry returns the mesh with the given name, or an error wrapping
// [ErrNotFound] if not found.
func (st *Store) MeshTry(name string) (*mesh.Mesh, error) {
	as, err := st.AssetTry(name)
	if err != nil {
		return nil, err
	}
	return as.Mesh, nil
}

// AssetTry returns the asset with the given name, or an error wrapping
// [ErrNotFound] if not found.
func (st *Store) AssetTry(name string) (*Asset, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	as, ok := st.assets.ValueByKeyTry(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return as, nil
}

// Assets returns the assets in the order they were added.
func (st *Store) Assets() []*Asset {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.assets.Values()
}

// Names returns the mesh names in the order they were added.
func (st *Store) Names() []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.assets.Keys()
}

// Len returns the number of meshes in the store.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.assets.Len()
}

// Delete removes the mesh with the given name, returning
// false if it was not found.
func (st *Store) Delete(name string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.assets.DeleteKey(name)
}

// Reset removes all meshes.
func (st *Store) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.assets.Reset()
}
