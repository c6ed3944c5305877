// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"cogentcore.org/objmesh/base/fsx"
	"cogentcore.org/objmesh/base/tomlx"
)

// Options are the options for opening config files.
type Options struct {

	// IncludePaths is the list of directories searched for
	// config files and their includes. The current directory
	// is used if it is empty.
	IncludePaths []string
}

// includer is implemented by config types with an Includes field
// listing other config files to open first.
type includer interface {
	IncludesPtr() *[]string
}

// Open sets the given config object from its defaults and then,
// if file is not empty, from the given TOML config file and any
// files it includes.
func Open(opts *Options, cfg any, file string) error {
	if err := SetFromDefaults(cfg); err != nil {
		return err
	}
	if file == "" {
		return nil
	}
	return openWithIncludes(opts, cfg, file, map[string]bool{file: true})
}

// openWithIncludes reads the config struct from the given config file
// using the given options, looking on [Options.IncludePaths] for the file.
// It opens any Includes specified in the given config file in the natural
// include order so that includers overwrite included settings.
// It returns an error if any of the include files cannot be found.
func openWithIncludes(opts *Options, cfg any, file string, seen map[string]bool) error {
	paths := opts.IncludePaths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files := fsx.FindFilesOnPaths(paths, file)
	if len(files) == 0 {
		return fmt.Errorf("cli.Open: no files found for %q", file)
	}
	err := tomlx.OpenFiles(cfg, files...)
	if err != nil {
		return err
	}
	incfg, ok := cfg.(includer)
	if !ok {
		return nil
	}
	incs := *incfg.IncludesPtr()
	if len(incs) == 0 {
		return nil
	}
	*incfg.IncludesPtr() = nil
	for _, inc := range incs {
		if seen[inc] {
			continue
		}
		seen[inc] = true
		if err := openWithIncludes(opts, cfg, inc, seen); err != nil {
			return err
		}
	}
	// reopen original
	err = tomlx.OpenFiles(cfg, files...)
	*incfg.IncludesPtr() = incs
	return err
}
