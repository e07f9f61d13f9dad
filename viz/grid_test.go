// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"errors"
	"testing"
)

func TestGridSize(t *testing.T) {
	for _, test := range []struct {
		n        int
		in, want Layout
	}{
		{1, Layout{}, Layout{1, 1}},
		{2, Layout{}, Layout{1, 2}},
		{4, Layout{}, Layout{2, 2}},
		{5, Layout{}, Layout{2, 3}},
		{10, Layout{}, Layout{3, 4}},
		{7, Layout{Cols: 2}, Layout{4, 2}},
		{10, Layout{Rows: 3}, Layout{3, 4}},
		{1, Layout{Rows: 3}, Layout{3, 1}},
		{6, Layout{Rows: 2, Cols: 3}, Layout{2, 3}},
		{5, Layout{Rows: 2, Cols: 4}, Layout{2, 4}},
	} {
		got, err := GridSize(test.n, test.in)
		if err != nil {
			t.Errorf("GridSize(%d, %+v): unexpected error %v", test.n, test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("GridSize(%d, %+v): want %+v; got %+v", test.n, test.in, test.want, got)
		}
	}
}

func TestGridSizeFits(t *testing.T) {
	for n := 1; n <= 200; n++ {
		l, err := GridSize(n, Layout{})
		if err != nil {
			t.Fatalf("GridSize(%d): %v", n, err)
		}
		if l.Rows*l.Cols < n {
			t.Errorf("GridSize(%d) = %+v has fewer than %d cells", n, l, n)
		}
		if l.Cols > 1 && (l.Cols-1)*l.Rows >= n {
			t.Errorf("GridSize(%d) = %+v has a spare column", n, l)
		}
		if l.Rows > l.Cols {
			t.Errorf("GridSize(%d) = %+v is taller than wide", n, l)
		}
	}
}

func TestGridSizeInvalid(t *testing.T) {
	for _, test := range []struct {
		n  int
		in Layout
	}{
		{0, Layout{}},
		{-1, Layout{}},
		{3, Layout{Rows: -1}},
		{3, Layout{Cols: -2}},
		{5, Layout{Rows: 2, Cols: 2}},
	} {
		_, err := GridSize(test.n, test.in)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("GridSize(%d, %+v): want ErrInvalidArgument; got %v", test.n, test.in, err)
		}
	}
}
