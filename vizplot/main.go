// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vizplot draws statistical charts of a data set.
//
// Usage:
//
//	vizplot [--style file.toml] [-v] <kind> -i input [-o output] [flags]
//
// The input may be a CSV, TSV or XLSX file, Go benchmark results, or
// "-" for CSV on standard input. The output format is taken from the
// output file's extension; without -o, vizplot writes SVG to standard
// output.
//
// The chart kinds are kde, kde-by, regression, bar, scatter, box,
// violin, missing and waffle. kde, kde-by, scatter, box and violin
// draw one panel per column when -x is repeated or --all is given.
//
// "vizplot columns" prints the columns of a data set with their types
// and missing-value counts, "vizplot convert" rewrites a data set as
// an XLSX workbook, and "vizplot batch" runs a script of vizplot
// command lines.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, newRootCmd())
	cancel()
	os.Exit(code)
}

// execute runs root and returns the process exit code. Errors are
// logged with the logger of the command that failed.
func execute(ctx context.Context, root *cobra.Command) int {
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}
	commandLogger(cmd).Error(err)
	return 1
}
