// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-statviz/viz"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	stylePath string
	verbose   bool

	vis *viz.Visualizer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "vizplot",
		Short:        "Draw statistical charts of a data set",
		SilenceUsage: true,
		// Errors are logged by the caller.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if a.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			viz.Warning.SetOutput(cmd.ErrOrStderr())
			return a.loadStyle(logger)
		},
	}
	root.PersistentFlags().StringVar(&a.stylePath, "style", "", "read the chart style from TOML `file`")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	for _, c := range charts {
		root.AddCommand(a.newChartCmd(c))
	}
	root.AddCommand(newColumnsCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(a.newBatchCmd())
	return root
}

func (a *app) loadStyle(logger *log.Logger) error {
	style := viz.DefaultStyle()
	if a.stylePath != "" {
		var err error
		if style, err = viz.LoadStyle(a.stylePath); err != nil {
			return err
		}
		logger.Debug("loaded style", "path", a.stylePath, "palette", style.Palette)
	}
	vis, err := viz.New(style)
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}
	a.vis = vis
	return nil
}
