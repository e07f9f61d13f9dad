// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-statviz/tableio"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var input, sheet, output, outSheet string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Rewrite a data set as an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := tableio.Open(input, sheet, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := tableio.WriteXLSX(output, outSheet, data); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("wrote workbook", "output", output, "rows", data.Len())
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&input, "input", "i", "", "read data from `file` (- for CSV on stdin)")
	fl.StringVar(&sheet, "sheet", "", "read `sheet` of an XLSX input (default first)")
	fl.StringVarP(&output, "output", "o", "", "write the workbook to `file`")
	fl.StringVar(&outSheet, "output-sheet", "", "name of the written `sheet` (default Sheet1)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}
