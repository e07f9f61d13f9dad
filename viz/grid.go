// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"math"
)

// Layout is the shape of a facet grid. A zero Rows or Cols means the
// dimension is unset and should be derived from the panel count.
type Layout struct {
	Rows, Cols int
}

// GridSize returns a layout with room for n panels.
//
// If neither dimension of l is set, the grid is as close to square as
// possible, preferring extra columns: Cols = ceil(sqrt(n)) and
// Rows = ceil(n/Cols). If one dimension is set, the other is the
// smallest value that fits n panels. If both are set, l is returned
// as long as it has room for n panels.
func GridSize(n int, l Layout) (Layout, error) {
	if n <= 0 {
		return Layout{}, fmt.Errorf("%w: grid for %d panels", ErrInvalidArgument, n)
	}
	if l.Rows < 0 || l.Cols < 0 {
		return Layout{}, fmt.Errorf("%w: negative grid dimension %dx%d", ErrInvalidArgument, l.Rows, l.Cols)
	}

	switch {
	case l.Rows == 0 && l.Cols == 0:
		l.Cols = int(math.Ceil(math.Sqrt(float64(n))))
		l.Rows = ceilDiv(n, l.Cols)
	case l.Rows == 0:
		l.Rows = ceilDiv(n, l.Cols)
	case l.Cols == 0:
		l.Cols = ceilDiv(n, l.Rows)
	case l.Rows*l.Cols < n:
		return Layout{}, fmt.Errorf("%w: %dx%d grid cannot hold %d panels", ErrInvalidArgument, l.Rows, l.Cols, n)
	}
	return l, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
