// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// A PanelFunc draws one chart of data into panel p.
type PanelFunc func(p *plot.Plot, data *table.Table, s Spec) error

// Draw draws fn into a new single-panel figure of size s.Width by
// s.Height, or the style's figure size if those are zero.
func (v *Visualizer) Draw(fn PanelFunc, data *table.Table, s Spec) (*Figure, error) {
	w, h := v.figureSize(s, Layout{Rows: 1, Cols: 1})
	fig := v.newFigure(1, Layout{Rows: 1, Cols: 1}, w, h)
	if err := fn(fig.Panel(0), data, s); err != nil {
		return nil, err
	}
	return fig, nil
}

// DrawMultiple draws fn once for each column in cols into a grid of
// panels laid out by GridSize(len(cols), l). If cols is nil, it uses
// the numeric columns of data.
//
// Each call to fn gets a copy of s with X and Title set to the
// column; s.Title is used as the figure title. The figure size
// defaults to the style's figure size times the grid dimensions.
// DrawMultiple stops at and returns the first error from fn.
func (v *Visualizer) DrawMultiple(fn PanelFunc, data *table.Table, cols []string, l Layout, s Spec) (*Figure, error) {
	if cols == nil {
		cols = NumericColumns(data)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no columns to plot", ErrInvalidArgument)
	}
	l, err := GridSize(len(cols), l)
	if err != nil {
		return nil, err
	}

	w, h := v.figureSize(s, l)
	fig := v.newFigure(len(cols), l, w, h)
	fig.Title = s.Title
	for i, col := range cols {
		ps := s
		ps.X, ps.Title = col, col
		if err := fn(fig.Panel(i), data, ps); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

func (v *Visualizer) figureSize(s Spec, l Layout) (w, h vg.Length) {
	w, h = s.Width, s.Height
	if w == 0 {
		w = v.width * vg.Length(l.Cols)
	}
	if h == 0 {
		h = v.height * vg.Length(l.Rows)
	}
	return
}

// DrawKDE draws a density plot of s.X.
func (v *Visualizer) DrawKDE(data *table.Table, s Spec) (*Figure, error) {
	return v.Draw(v.KDE, data, s)
}

// DrawMultipleKDE draws a density plot of each column in cols.
func (v *Visualizer) DrawMultipleKDE(data *table.Table, cols []string, l Layout, s Spec) (*Figure, error) {
	return v.DrawMultiple(v.KDE, data, cols, l, s)
}

// DrawKDEByCategory draws a density plot of s.X stacked by
// s.Category.
func (v *Visualizer) DrawKDEByCategory(data *table.Table, s Spec) (*Figure, error) {
	return v.Draw(v.KDEByCategory, data, s)
}

// DrawMultipleKDEByCategory draws a stacked density plot of each
// column in cols.
func (v *Visualizer) DrawMultipleKDEByCategory(data *table.Table, cols []string, l Layout, s Spec) (*Figure, error) {
	return v.DrawMultiple(v.KDEByCategory, data, cols, l, s)
}

// DrawRegression draws a regression plot of s.Y against s.X.
func (v *Visualizer) DrawRegression(data *table.Table, s Spec) (*Figure, error) {
	return v.Draw(v.Regression, data, s)
}

// DrawBar draws a bar plot of the mean of s.Y for each s.X.
func (v *Visualizer) DrawBar(data *table.Table, s Spec) (*Figure, error) {
	return v.Draw(v.Bar, data, s)
}

// DrawScatter draws a scatter plot of s.Y against s.X.
func (v *Visualizer) DrawScatter(data *table.Table, s Spec) (*Figure, error) {
	return v.Draw(v.Scatter, data, s)
}

// DrawMultipleScatter draws a scatter plot of s.Y against each column
// in cols.
func (v *Visualizer) DrawMultipleScatter(data *table.Table, cols []string, l Layout, s Spec) (*Figure, error) {
	return v.DrawMultiple(v.Scatter, data, cols, l, s)
}

// DrawBox draws a box plot of s.X.
func (v *Visualizer) DrawBox(data *table.Table, s Spec) (*Figure, error) {
	return v.Draw(v.Box, data, s)
}

// DrawMultipleBox draws a box plot of each column in cols.
func (v *Visualizer) DrawMultipleBox(data *table.Table, cols []string, l Layout, s Spec) (*Figure, error) {
	return v.DrawMultiple(v.Box, data, cols, l, s)
}

// DrawViolin draws a violin plot of s.X.
func (v *Visualizer) DrawViolin(data *table.Table, s Spec) (*Figure, error) {
	return v.Draw(v.Violin, data, s)
}

// DrawMultipleViolin draws a violin plot of each column in cols.
func (v *Visualizer) DrawMultipleViolin(data *table.Table, cols []string, l Layout, s Spec) (*Figure, error) {
	return v.DrawMultiple(v.Violin, data, cols, l, s)
}
