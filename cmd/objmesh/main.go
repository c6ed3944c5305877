// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command objmesh loads Wavefront OBJ files into triangle meshes
// with synthesized normals, and prints, exports, or watches them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"cogentcore.org/objmesh/base/logx"
	"cogentcore.org/objmesh/cmd/objmesh/cmd"
	"cogentcore.org/objmesh/cmd/objmesh/config"
)

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := cmd.NewRoot(&config.Config{}).ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "objmesh:", err)
		stop()
		os.Exit(1)
	}
}
