// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableio

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/table"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads one sheet of an Excel workbook. If sheet is "", it
// reads the first sheet. The first row of the sheet is the header.
func ReadXLSX(path, sheet string) (t *table.Table, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: sheet %q has no header row", path, sheet)
	}
	return build(rows[0], rows[1:])
}

// WriteXLSX writes t to a new workbook at path with a single sheet
// named sheet, or "Sheet1" if sheet is "". The first row holds the
// column names. Missing values are written as blank cells.
func WriteXLSX(path, sheet string, t *table.Table) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if sheet != "" && sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	} else {
		sheet = "Sheet1"
	}

	cols := t.Columns()
	header := make([]interface{}, len(cols))
	for i, col := range cols {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	seqs := make([]reflect.Value, len(cols))
	for i, col := range cols {
		seqs[i] = reflect.ValueOf(t.Column(col))
	}
	row := make([]interface{}, len(cols))
	for r := 0; r < t.Len(); r++ {
		for i, seq := range seqs {
			row[i] = cellValue(seq.Index(r))
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// cellValue converts a table element to a value excelize writes as a
// plain number or string. Durations become integer nanoseconds.
func cellValue(v reflect.Value) interface{} {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		x := v.Float()
		if math.IsNaN(x) {
			return nil
		}
		return x
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.String:
		if v.String() == "" {
			return nil
		}
		return v.String()
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return fmt.Sprint(v.Interface())
	}
	return fmt.Sprint(v.Interface())
}
