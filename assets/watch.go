// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/objmesh/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the assets of a [Store] when their files change.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
}

// NewWatcher returns a new [Watcher] watching the directories of all
// assets currently in the store. Directories are watched rather than
// files so that files replaced by editors keep being tracked.
// Call [Watcher.Run] to process changes.
func (st *Store) NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dirs := map[string]bool{}
	for _, as := range st.Assets() {
		dir := filepath.Dir(as.Path)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
		dirs[dir] = true
	}
	return &Watcher{store: st, watcher: fw}, nil
}

// Watch reloads assets whose files change until ctx is done.
func (st *Store) Watch(ctx context.Context) error {
	w, err := st.NewWatcher()
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

// Run processes file change events until ctx is done,
// and then closes the watcher. A file that fails to reload
// is logged and its previous mesh is kept.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload(ctx, event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

// reload reloads every asset loaded from the given path.
func (w *Watcher) reload(ctx context.Context, fpath string) {
	st := w.store
	fpath = filepath.Clean(fpath)
	for _, as := range st.Assets() {
		if filepath.Clean(as.Path) != fpath {
			continue
		}
		ms, err := st.Registry.LoadFile(ctx, as.Path)
		if err != nil {
			slog.Warn("keeping previous mesh after failed reload", "name", as.Name, "err", err)
			if st.OnReloadError != nil {
				st.OnReloadError(as, err)
			}
			continue
		}
		nas := &Asset{Name: as.Name, Path: as.Path, Mesh: ms}
		st.Set(nas)
		slog.Debug("reloaded mesh", "name", as.Name, "vertices", ms.NumVertex())
		if st.OnReload != nil {
			st.OnReload(nas)
		}
	}
}
