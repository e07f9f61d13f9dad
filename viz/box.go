// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// fliersize is the diameter of outlier points in box plots.
const fliersize = 3

// Box draws a vertical box plot of column s.X. If s.Y is set, there
// is one box for each of its values, laid out along the x axis.
func (v *Visualizer) Box(p *plot.Plot, data *table.Table, s Spec) error {
	v.setupPanel(p, s, panelOpts{xlabel: s.Y, ylabel: s.X})

	names, groups, err := groupFloats(data, s.X, s.Y)
	if err != nil {
		return err
	}
	colors, err := paletteColors(v.paletteName(s), len(names))
	if err != nil {
		return err
	}

	edge := v.edgeStyle()
	for i, vals := range groups {
		b, err := plotter.NewBoxPlot(vg.Points(3*v.style.FontSize), float64(i), plotter.Values(vals))
		if err != nil {
			return err
		}
		b.FillColor = colors[i]
		b.BoxStyle = edge
		b.MedianStyle = edge
		b.WhiskerStyle = edge
		b.GlyphStyle.Color = v.edge
		b.GlyphStyle.Radius = vg.Points(fliersize / 2.0)
		b.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(b)
	}
	if s.Y != "" {
		p.NominalX(names...)
	} else {
		p.HideX()
	}
	return nil
}

// groupFloats returns the finite values of column col split by the
// values of column by, in order of first appearance. If by is "",
// all values are in one group named col.
func groupFloats(t *table.Table, col, by string) (names []string, groups [][]float64, err error) {
	xs, err := floats(t, col)
	if err != nil {
		return nil, nil, err
	}
	keys := make([]string, len(xs))
	if by != "" {
		if keys, err = labels(t, by); err != nil {
			return nil, nil, err
		}
	} else {
		for i := range keys {
			keys[i] = col
		}
	}

	index := map[string]int{}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		j, ok := index[keys[i]]
		if !ok {
			j = len(names)
			index[keys[i]] = j
			names = append(names, keys[i])
			groups = append(groups, nil)
		}
		groups[j] = append(groups[j], x)
	}
	if len(groups) == 0 {
		return nil, nil, fmt.Errorf("%w: column %q has no finite values", ErrInvalidArgument, col)
	}
	return names, groups, nil
}
