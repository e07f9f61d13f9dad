// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-statviz/tableio"
	"github.com/aclements/go-statviz/viz"
	"github.com/spf13/cobra"
)

func newColumnsCmd() *cobra.Command {
	var input, sheet string
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Print the columns of a data set",
		Long: `Columns prints one line per column of the input with its element type,
whether charts treat it as numeric and the number of missing values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := tableio.Open(input, sheet, cmd.InOrStdin())
			if err != nil {
				return err
			}
			table.Fprint(cmd.OutOrStdout(), schema(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "read data from `file` (- for CSV on stdin)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "read `sheet` of an XLSX input (default first)")
	cmd.MarkFlagRequired("input")
	return cmd
}

// schema returns a table describing the columns of t.
func schema(t *table.Table) *table.Table {
	numeric := map[string]bool{}
	for _, col := range viz.NumericColumns(t) {
		numeric[col] = true
	}
	var names, types, kinds []string
	var missing []int
	for _, mc := range viz.MissingCounts(t) {
		names = append(names, mc.Column)
		types = append(types, reflect.TypeOf(t.Column(mc.Column)).Elem().String())
		kind := "text"
		if numeric[mc.Column] {
			kind = "numeric"
		}
		kinds = append(kinds, kind)
		missing = append(missing, mc.Count)
	}
	return new(table.Builder).
		Add("column", names).
		Add("type", types).
		Add("kind", kinds).
		Add("missing", missing).
		Done()
}
