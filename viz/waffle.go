// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var defaultCells = Layout{Rows: 10, Cols: 10}

// waffle is a plotter that draws a grid of square cells and a
// two-column legend beneath it. It draws in canvas coordinates and
// ignores the plot's axes.
type waffle struct {
	cells  Layout
	fills  []color.Color // column-major from the bottom left
	labels []string
	colors []color.Color
	text   text.Style
}

// Plot implements plot.Plotter.
func (w *waffle) Plot(c draw.Canvas, _ *plot.Plot) {
	lineH := w.text.Height("M") * 1.4
	legendH := lineH * vg.Length((len(w.labels)+1)/2)
	area := draw.Crop(c, 0, 0, legendH+lineH/2, 0)

	size := (area.Max.X - area.Min.X) / vg.Length(w.cells.Cols)
	if h := (area.Max.Y - area.Min.Y) / vg.Length(w.cells.Rows); h < size {
		size = h
	}
	if size <= 0 {
		return
	}
	gap := size / 10
	ctr := area.Center()
	x0 := ctr.X - size*vg.Length(w.cells.Cols)/2
	y0 := ctr.Y - size*vg.Length(w.cells.Rows)/2
	for i, fill := range w.fills {
		col, row := i/w.cells.Rows, i%w.cells.Rows
		min := vg.Point{X: x0 + vg.Length(col)*size + gap/2, Y: y0 + vg.Length(row)*size + gap/2}
		max := vg.Point{X: min.X + size - gap, Y: min.Y + size - gap}
		c.FillPolygon(fill, []vg.Point{min, {X: max.X, Y: min.Y}, max, {X: min.X, Y: max.Y}})
	}

	colW := (c.Max.X - c.Min.X) / 2
	sq := lineH * 0.7
	for i, label := range w.labels {
		x := c.Min.X + vg.Length(i%2)*colW + lineH/2
		y := c.Min.Y + legendH - vg.Length(i/2+1)*lineH
		c.FillPolygon(w.colors[i], []vg.Point{
			{X: x, Y: y}, {X: x + sq, Y: y}, {X: x + sq, Y: y + sq}, {X: x, Y: y + sq},
		})
		c.FillText(w.text, vg.Point{X: x + sq + lineH/3, Y: y}, label)
	}
}

// Waffle draws the proportions of the values of column s.X as a grid
// of s.Cells cells, each standing for an equal share of the rows.
// Each value gets floor(share * cells) cells, so a few cells may be
// left empty. The legend gives each value's share as a percentage.
func (v *Visualizer) Waffle(p *plot.Plot, data *table.Table, s Spec) error {
	v.setupPanel(p, s, panelOpts{})
	p.HideAxes()

	cells := s.Cells
	if cells.Rows == 0 && cells.Cols == 0 {
		cells = defaultCells
	}
	if cells.Rows <= 0 || cells.Cols <= 0 {
		return fmt.Errorf("%w: waffle grid %dx%d", ErrInvalidArgument, cells.Rows, cells.Cols)
	}

	props, err := Proportions(data, s.X)
	if err != nil {
		return err
	}
	grad, err := gradient(v.paletteName(s))
	if err != nil {
		return err
	}

	w := &waffle{cells: cells, text: v.textStyle(v.style.FontSize - 2)}
	total := cells.Rows * cells.Cols
	for i, n := range cellCounts(props, total) {
		pr := props[i]
		clr := grad.Map(float64(i) / float64(len(props)))
		w.labels = append(w.labels, fmt.Sprintf("%s (%.1f%%)", pr.Label, 100*pr.Share))
		w.colors = append(w.colors, clr)
		for j := 0; j < n; j++ {
			w.fills = append(w.fills, clr)
		}
	}
	if lost := total - len(w.fills); lost > 0 && len(props) > 0 {
		Warning.Warn("waffle cells left empty by rounding", "column", s.X, "cells", lost)
	}
	p.Add(w)
	return nil
}

// cellCounts returns the number of cells out of total for each
// proportion, rounding down. It works from the row counts so that
// exact shares such as 29/100 are not lost to floating-point error.
func cellCounts(props []Proportion, total int) []int {
	rows := 0
	for _, pr := range props {
		rows += pr.Count
	}
	counts := make([]int, len(props))
	if rows == 0 {
		return counts
	}
	for i, pr := range props {
		counts[i] = pr.Count * total / rows
	}
	return counts
}

// DrawWaffle draws a waffle chart of column s.X. If s.Y is set, it
// draws one chart for each value of s.Y side by side, each titled by
// that value. Otherwise the single chart is titled s.X. s.Title is
// the figure title.
func (v *Visualizer) DrawWaffle(data *table.Table, s Spec) (*Figure, error) {
	parts, subsets, err := waffleParts(data, s)
	if err != nil {
		return nil, err
	}

	l := Layout{Rows: 1, Cols: len(parts)}
	w, h := v.figureSize(s, l)
	fig := v.newFigure(len(parts), l, w, h)
	fig.Title = s.Title
	for i, part := range parts {
		ps := s
		ps.Title = part
		if err := v.Waffle(fig.Panel(i), subsets[i], ps); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

// waffleParts splits data into the rows of each value of s.Y, in
// order of first appearance, keeping only column s.X. Rows with a
// missing s.Y are dropped. Without s.Y there is one part, named s.X.
func waffleParts(data *table.Table, s Spec) (parts []string, subsets []*table.Table, err error) {
	xcol, err := column(data, s.X)
	if err != nil {
		return nil, nil, err
	}
	if s.Y == "" {
		return []string{s.X}, []*table.Table{data}, nil
	}

	ycol, err := column(data, s.Y)
	if err != nil {
		return nil, nil, err
	}
	keys, err := labels(data, s.Y)
	if err != nil {
		return nil, nil, err
	}
	yv := reflect.ValueOf(ycol)
	index := map[string]int{}
	var rows [][]int
	for i, key := range keys {
		if isMissing(yv.Index(i)) {
			continue
		}
		j, ok := index[key]
		if !ok {
			j = len(parts)
			index[key] = j
			parts = append(parts, key)
			rows = append(rows, nil)
		}
		rows[j] = append(rows[j], i)
	}
	if len(parts) == 0 {
		return nil, nil, fmt.Errorf("%w: column %q has no values", ErrInvalidArgument, s.Y)
	}
	for _, r := range rows {
		subsets = append(subsets, new(table.Builder).Add(s.X, slice.Select(xcol, r)).Done())
	}
	return parts, subsets, nil
}
