// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/objmesh/base/errors"
)

// DirFS returns the directory part of given file path as an os.DirFS
// and the filename as a string. These can then be used to access the file
// using the FS-based interface, consistent with embed and other use-cases.
func DirFS(fpath string) (fs.FS, string, error) {
	fabs, err := filepath.Abs(fpath)
	if err != nil {
		return nil, "", err
	}
	dir, fname := filepath.Split(fabs)
	dfs := os.DirFS(dir)
	return dfs, fname, nil
}

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// Directories do not count as files.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
// Absolute file names are returned as-is when they exist.
func FindFilesOnPaths(paths []string, file string) []string {
	if filepath.IsAbs(file) {
		if ok, _ := FileExists(file); ok {
			return []string{file}
		}
		return nil
	}
	var res []string
	for _, path := range paths {
		fp := filepath.Join(path, file)
		if ok, _ := FileExists(fp); ok {
			res = append(res, errors.Log1(filepath.Abs(fp)))
		}
	}
	return res
}

// ExtLower returns the lower-cased file name extension of the given path,
// including the leading dot, e.g., ".obj" for "Teapot.OBJ".
func ExtLower(fpath string) string {
	return strings.ToLower(filepath.Ext(fpath))
}

// BaseName returns the file name of the given path without its extension,
// e.g., "teapot" for "models/teapot.obj".
func BaseName(fpath string) string {
	base := filepath.Base(fpath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
