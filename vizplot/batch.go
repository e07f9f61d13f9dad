// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

func (a *app) newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch script",
		Short: "Run a script of vizplot commands",
		Long: `Batch runs each line of script as a vizplot command line. Lines are
split into words with shell quoting rules; blank lines and lines
starting with # are skipped, and a leading "vizplot" word is optional.
The --style and --verbose flags given to batch apply to every line.
Batch stops at the first failing line. A script of "-" is read from
standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			return a.runBatch(cmd, args[0], r)
		},
	}
}

func (a *app) runBatch(cmd *cobra.Command, name string, r io.Reader) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		words, err := shellquote.Split(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineno, err)
		}
		if len(words) > 0 && words[0] == "vizplot" {
			words = words[1:]
		}
		if len(words) == 0 {
			continue
		}
		if words[0] == "batch" {
			return fmt.Errorf("%s:%d: batch scripts cannot run batch", name, lineno)
		}

		var global []string
		if a.stylePath != "" {
			global = append(global, "--style", a.stylePath)
		}
		if a.verbose {
			global = append(global, "--verbose")
		}

		logger.Debug("running", "line", lineno, "args", words)
		sub := newRootCmd()
		sub.SetArgs(append(global, words...))
		sub.SetIn(cmd.InOrStdin())
		sub.SetOut(cmd.OutOrStdout())
		sub.SetErr(cmd.ErrOrStderr())
		if err := sub.ExecuteContext(ctx); err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineno, err)
		}
	}
	return scanner.Err()
}
