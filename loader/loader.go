// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loader dispatches mesh files to format-specific loaders
// by file extension. Each load is a single, independent operation
// that returns either a complete [mesh.Mesh] or a [*LoadError].
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/objmesh/base/errors"
	"cogentcore.org/objmesh/base/fsx"
	"cogentcore.org/objmesh/mesh"
	"cogentcore.org/objmesh/obj"
	"github.com/h2non/filetype"
)

var (
	// ErrFormat is returned when the file contents cannot be parsed.
	ErrFormat = errors.New("loader: invalid file format")

	// ErrNoLoader is returned when no loader is registered for a file extension.
	ErrNoLoader = errors.New("loader: no loader for file extension")
)

// LoadError is the failure of one load operation.
type LoadError struct {

	// Path is the file that failed to load.
	Path string

	// Err is the underlying error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader turns the contents of a file into a [mesh.Mesh].
// Implementations must be safe to call concurrently.
type Loader interface {

	// Extensions returns the lower-case file extensions handled
	// by this loader, including the leading dot.
	Extensions() []string

	// Load decodes the given file contents into a new mesh.
	Load(ctx context.Context, data []byte) (*mesh.Mesh, error)
}

// ObjLoader loads Wavefront .obj files.
type ObjLoader struct {

	// Options for building the mesh from the decoded geometry.
	Options mesh.Options
}

func (ol *ObjLoader) Extensions() []string {
	return []string{".obj"}
}

func (ol *ObjLoader) Load(ctx context.Context, data []byte) (*mesh.Mesh, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := obj.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return mesh.Build(raw, ol.Options)
}

// Registry is the list of loaders, indexed by file extension.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
}

// NewRegistry returns a new registry with the given loaders registered.
func NewRegistry(lds ...Loader) *Registry {
	rg := &Registry{loaders: make(map[string]Loader)}
	for _, ld := range lds {
		rg.Register(ld)
	}
	return rg
}

// Default returns a registry with the standard loaders,
// building meshes with the given options.
func Default(opts mesh.Options) *Registry {
	return NewRegistry(&ObjLoader{Options: opts})
}

// Register adds the loader for all of its extensions,
// replacing any existing loader for them.
func (rg *Registry) Register(ld Loader) {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	for _, ext := range ld.Extensions() {
		rg.loaders[strings.ToLower(ext)] = ld
	}
}

// Extensions returns the sorted list of registered extensions.
func (rg *Registry) Extensions() []string {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	exts := make([]string, 0, len(rg.loaders))
	for ext := range rg.loaders {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// ForPath returns the loader for the extension of the given path,
// which is matched case insensitively.
func (rg *Registry) ForPath(fpath string) (Loader, error) {
	ext := fsx.ExtLower(fpath)
	rg.mu.RLock()
	ld, ok := rg.loaders[ext]
	rg.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q not found for file %v", ErrNoLoader, ext, fpath)
	}
	return ld, nil
}

// LoadBytes loads the given file contents using the loader for
// the extension of fpath. Contents that are recognized as a known
// binary file type (image, archive, etc) are rejected with [ErrFormat].
func (rg *Registry) LoadBytes(ctx context.Context, fpath string, data []byte) (*mesh.Mesh, error) {
	ld, err := rg.ForPath(fpath)
	if err != nil {
		return nil, &LoadError{Path: fpath, Err: err}
	}
	if kind, _ := filetype.Match(data); kind != filetype.Unknown {
		return nil, &LoadError{Path: fpath, Err: fmt.Errorf("%w: found %s content", ErrFormat, kind.MIME.Value)}
	}
	ms, err := ld.Load(ctx, data)
	if err != nil {
		return nil, &LoadError{Path: fpath, Err: err}
	}
	return ms, nil
}

// LoadFile reads and loads the given file.
func (rg *Registry) LoadFile(ctx context.Context, fpath string) (*mesh.Mesh, error) {
	fsys, fname, err := fsx.DirFS(fpath)
	if err != nil {
		return nil, &LoadError{Path: fpath, Err: err}
	}
	ms, err := rg.LoadFS(ctx, fsys, fname)
	var le *LoadError
	if errors.As(err, &le) {
		le.Path = fpath
	}
	return ms, err
}

// LoadFS reads and loads the given file from the given filesystem,
// which allows meshes to be loaded from embedded files.
func (rg *Registry) LoadFS(ctx context.Context, fsys fs.FS, fname string) (*mesh.Mesh, error) {
	if _, err := rg.ForPath(fname); err != nil {
		return nil, &LoadError{Path: fname, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Path: fname, Err: err}
	}
	data, err := fs.ReadFile(fsys, fname)
	if err != nil {
		return nil, &LoadError{Path: fname, Err: err}
	}
	return rg.LoadBytes(ctx, fname, data)
}
