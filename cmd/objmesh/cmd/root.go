// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions of the objmesh tool.
package cmd

import (
	"cogentcore.org/objmesh/assets"
	"cogentcore.org/objmesh/base/logx"
	"cogentcore.org/objmesh/cli"
	"cogentcore.org/objmesh/cmd/objmesh/config"
	"cogentcore.org/objmesh/loader"
	"github.com/spf13/cobra"
)

// NewRoot returns the root objmesh command with all of its subcommands.
// The commands operate on c, which is filled in before any command runs.
func NewRoot(c *config.Config) *cobra.Command {
	var (
		configFile string
		opts       cli.Options
		fl         config.Config
	)
	root := &cobra.Command{
		Use:           "objmesh",
		Short:         "objmesh loads Wavefront OBJ files into renderable triangle meshes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "TOML config file")
	pf.StringSliceVar(&opts.IncludePaths, "include-path", nil, "directories searched for config files")
	pf.Var(&fl.Mesh.Normals, "normals", "normal synthesis mode (windowed or faces)")
	pf.BoolVar(&fl.Mesh.Renormalize, "renormalize", false, "scale accumulated normals to unit length")
	pf.IntVar(&fl.Concurrency, "concurrency", 0, "maximum number of files loaded at the same time")
	pf.BoolVarP(&fl.Verbose, "verbose", "v", false, "print info level log messages")
	pf.BoolVar(&fl.VeryVerbose, "vv", false, "print debug level log messages")
	pf.BoolVarP(&fl.Quiet, "quiet", "q", false, "only print error level log messages")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cli.Open(&opts, c, configFile); err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("normals") {
			c.Mesh.Normals = fl.Mesh.Normals
		}
		if flags.Changed("renormalize") {
			c.Mesh.Renormalize = fl.Mesh.Renormalize
		}
		if flags.Changed("concurrency") {
			c.Concurrency = fl.Concurrency
		}
		c.Verbose = c.Verbose || fl.Verbose
		c.VeryVerbose = c.VeryVerbose || fl.VeryVerbose
		c.Quiet = c.Quiet || fl.Quiet
		if flags.Changed("output") {
			c.Export.Output = fl.Export.Output
		}
		logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
		return nil
	}

	info := &cobra.Command{
		Use:   "info <files...>",
		Short: "Print a summary of each mesh",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Info(cmd.Context(), c, cmd.OutOrStdout(), args...)
		},
	}
	export := &cobra.Command{
		Use:   "export <files...>",
		Short: "Write the buffers of each mesh to a TOML file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Export(cmd.Context(), c, cmd.OutOrStdout(), args...)
		},
	}
	export.Flags().StringVarP(&fl.Export.Output, "output", "o", "", "output TOML file, or - for standard output")
	watch := &cobra.Command{
		Use:   "watch <files...>",
		Short: "Load meshes and reload them whenever their files change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Watch(cmd.Context(), c, cmd.OutOrStdout(), args...)
		},
	}
	root.AddCommand(info, export, watch)
	return root
}

// newStore returns a new asset store configured from c.
func newStore(c *config.Config) *assets.Store {
	st := assets.NewStore(loader.Default(c.Mesh))
	st.Concurrency = c.Concurrency
	return st
}
