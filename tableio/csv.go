// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// ReadCSV reads a delimited text table from r. The first record is
// the header. Fields are separated by the comma rune, such as ',' or
// '\t'.
func ReadCSV(r io.Reader, comma rune) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	return build(records[0], records[1:])
}

// build makes a table from a header and rows of cells. Rows shorter
// than the header are padded with missing cells; longer rows are an
// error.
//
// A column whose non-missing cells all parse as numbers is a
// []float64 column with NaN for missing cells. Any other column is a
// []string column with "" for missing cells.
func build(header []string, rows [][]string) (*table.Table, error) {
	seen := map[string]bool{}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("column %d has no name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
		header[i] = name
	}
	for i, row := range rows {
		if len(row) > len(header) {
			// Header is line 1.
			return nil, fmt.Errorf("line %d: %d fields, header has %d", i+2, len(row), len(header))
		}
	}

	b := new(table.Builder)
	for j, name := range header {
		cells := make([]string, len(rows))
		for i, row := range rows {
			if j < len(row) {
				cells[i] = strings.TrimSpace(row[j])
			}
			if isMissing(cells[i]) {
				cells[i] = ""
			}
		}
		if xs, ok := parseFloats(cells); ok {
			b.Add(name, xs)
		} else {
			b.Add(name, cells)
		}
	}
	return b.Done(), nil
}

func isMissing(cell string) bool {
	switch strings.ToLower(cell) {
	case "", "na", "nan", "n/a", "null":
		return true
	}
	return false
}

// parseFloats parses every cell as a float64. Empty cells are NaN. It
// fails if any cell is not a number or if every cell is empty.
func parseFloats(cells []string) ([]float64, bool) {
	xs := make([]float64, len(cells))
	numeric := false
	for i, cell := range cells {
		if cell == "" {
			xs[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		xs[i] = x
		numeric = true
	}
	return xs, numeric || len(cells) == 0
}
