// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// NumericColumns returns the names of the non-text columns of t in
// table order. A text column is one whose elements are strings or
// interface values.
func NumericColumns(t *table.Table) []string {
	var cols []string
	for _, col := range t.Columns() {
		if !isText(reflect.TypeOf(t.Column(col)).Elem()) {
			cols = append(cols, col)
		}
	}
	return cols
}

func isText(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.String, reflect.Interface:
		return true
	}
	return false
}

func isNumeric(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func column(t *table.Table, col string) (interface{}, error) {
	if col == "" {
		return nil, fmt.Errorf("%w: no column given", ErrInvalidArgument)
	}
	seq := t.Column(col)
	if seq == nil {
		return nil, fmt.Errorf("unknown column %q", col)
	}
	return seq, nil
}

// floats returns column col of t as float64s. The result may share
// storage with t and must not be modified.
func floats(t *table.Table, col string) ([]float64, error) {
	seq, err := column(t, col)
	if err != nil {
		return nil, err
	}
	if !isNumeric(reflect.TypeOf(seq).Elem()) {
		return nil, fmt.Errorf("column %q is not numeric", col)
	}
	var xs []float64
	slice.Convert(&xs, seq)
	return xs, nil
}

// labels returns column col of t formatted as strings.
func labels(t *table.Table, col string) ([]string, error) {
	seq, err := column(t, col)
	if err != nil {
		return nil, err
	}
	if ss, ok := seq.([]string); ok {
		return ss, nil
	}
	rv := reflect.ValueOf(seq)
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return out, nil
}

// levels returns the distinct values of xs in order of first
// appearance and the index of each element's level.
func levels(xs []string) (names []string, idx []int) {
	seen := map[string]int{}
	idx = make([]int, len(xs))
	for i, x := range xs {
		j, ok := seen[x]
		if !ok {
			j = len(names)
			seen[x] = j
			names = append(names, x)
		}
		idx[i] = j
	}
	return
}

// dropNaN returns the finite values of xs.
func dropNaN(col string, xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	if n := len(xs) - len(out); n > 0 {
		Warning.Warn("dropping non-finite values", "column", col, "count", n)
	}
	return out
}

// finite returns a copy of t restricted to the rows where every
// column in cols is finite.
func finite(t *table.Table, cols ...string) (*table.Table, error) {
	keep := make([]bool, t.Len())
	for i := range keep {
		keep[i] = true
	}
	for _, col := range cols {
		xs, err := floats(t, col)
		if err != nil {
			return nil, err
		}
		for i, x := range xs {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				keep[i] = false
			}
		}
	}
	var rows []int
	for i, k := range keep {
		if k {
			rows = append(rows, i)
		}
	}
	if len(rows) == t.Len() {
		return t, nil
	}
	Warning.Warn("dropping rows with non-finite values", "columns", cols, "count", t.Len()-len(rows))

	b := new(table.Builder)
	for _, col := range t.Columns() {
		b.Add(col, slice.Select(t.Column(col), rows))
	}
	return b.Done(), nil
}
