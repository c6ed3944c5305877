// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for the objmesh tool.
package config

import "cogentcore.org/objmesh/mesh"

// Config is the main config struct that contains all of the configuration
// options for the objmesh tool. It is set from `default:` tags, then from
// the TOML config file, and finally from command line flags.
type Config struct {

	// Includes are other config files to open before this one.
	Includes []string

	// Mesh are the options used to build every mesh.
	Mesh mesh.Options

	// Concurrency is the maximum number of files loaded at the same time.
	Concurrency int `default:"4"`

	// Verbose is whether to print info level log messages.
	Verbose bool

	// VeryVerbose is whether to print debug level log messages.
	VeryVerbose bool

	// Quiet is whether to only print error level log messages.
	Quiet bool

	// Export has the configuration options for the export command.
	Export Export
}

// Export has the configuration options for the export command.
type Export struct {

	// Output is the TOML file the mesh buffers are written to,
	// or "-" for standard output.
	Output string `default:"mesh.toml"`
}

func (c *Config) IncludesPtr() *[]string { return &c.Includes }
