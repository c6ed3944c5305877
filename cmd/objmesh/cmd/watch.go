// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"cogentcore.org/objmesh/assets"
	"cogentcore.org/objmesh/cmd/objmesh/config"
)

// Watch loads the given files, prints a summary of each mesh, and then
// prints an updated summary whenever a file is changed, until ctx is done.
func Watch(ctx context.Context, c *config.Config, w io.Writer, files ...string) error {
	st := newStore(c)
	if _, err := st.LoadAll(ctx, files...); err != nil {
		return err
	}
	var mu sync.Mutex
	for _, as := range st.Assets() {
		printAsset(w, as)
	}
	st.OnReload = func(as *assets.Asset) {
		slog.Info("reloaded mesh", "name", as.Name, "path", as.Path)
		mu.Lock()
		printAsset(w, as)
		mu.Unlock()
	}
	st.OnReloadError = func(as *assets.Asset, err error) {
		mu.Lock()
		fmt.Fprintf(w, "%s: reload failed: %v\n", as.Name, err)
		mu.Unlock()
	}
	slog.Info("watching meshes", "n", st.Len())
	return st.Watch(ctx)
}
