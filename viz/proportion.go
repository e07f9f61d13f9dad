// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"reflect"
	"sort"

	"github.com/aclements/go-gg/table"
)

// A Proportion is the share of rows with one value of a column.
type Proportion struct {
	Value interface{}
	Label string
	Count int
	Share float64
}

// Proportions returns the share of rows of t taken by each distinct
// value of column col, largest first. Values with equal counts stay
// in order of first appearance. Missing values are not counted, so
// the shares sum to 1 unless col has no values at all, in which case
// the result is empty.
func Proportions(t *table.Table, col string) ([]Proportion, error) {
	seq, err := column(t, col)
	if err != nil {
		return nil, err
	}
	names, err := labels(t, col)
	if err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(seq)
	index := map[string]int{}
	var out []Proportion
	total := 0
	for i, name := range names {
		x := rv.Index(i)
		if isMissing(x) {
			continue
		}
		j, ok := index[name]
		if !ok {
			j = len(out)
			index[name] = j
			out = append(out, Proportion{Value: x.Interface(), Label: name})
		}
		out[j].Count++
		total++
	}
	if n := len(names) - total; n > 0 {
		Warning.Warn("ignoring missing values", "column", col, "count", n)
	}

	for i := range out {
		out[i].Share = float64(out[i].Count) / float64(total)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out, nil
}
