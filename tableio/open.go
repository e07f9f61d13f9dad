// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tableio loads data sets from files into go-gg tables.
//
// Delimited text, Excel workbooks and Go benchmark results are
// supported. Numeric columns are loaded as []float64 with NaN for
// missing values and everything else as []string with "" for
// missing values, which is what package viz expects.
package tableio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Open reads the data set at path, choosing the format from its
// extension: ".csv", ".tsv", ".xlsx", or ".bench" and ".txt" for Go
// benchmark results. The path "-" reads CSV from stdin, or from
// os.Stdin if stdin is nil. sheet selects the sheet of an Excel
// workbook and is ignored otherwise.
func Open(path, sheet string, stdin io.Reader) (*table.Table, error) {
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return ReadCSV(stdin, ',')
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		return ReadXLSX(path, sheet)
	}

	var read func(io.Reader) (*table.Table, error)
	switch ext {
	case ".csv":
		read = func(r io.Reader) (*table.Table, error) { return ReadCSV(r, ',') }
	case ".tsv":
		read = func(r io.Reader) (*table.Table, error) { return ReadCSV(r, '\t') }
	case ".bench", ".txt":
		read = ReadBench
	default:
		return nil, fmt.Errorf("%s: unknown data format %q", path, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
