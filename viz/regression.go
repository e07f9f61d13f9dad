// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Regression draws a scatter plot of column s.Y against column s.X
// with a least-squares line through it. Rows where either value is
// not finite are dropped.
func (v *Visualizer) Regression(p *plot.Plot, data *table.Table, s Spec) error {
	v.setupPanel(p, s, panelOpts{xlabel: s.X, ylabel: s.Y})

	tab, err := finite(data, s.X, s.Y)
	if err != nil {
		return err
	}
	if tab.Len() == 0 {
		return fmt.Errorf("%w: no finite (%s, %s) pairs", ErrInvalidArgument, s.X, s.Y)
	}
	colors, err := paletteColors(v.paletteName(s), 1)
	if err != nil {
		return err
	}
	xys, err := columnXYs(tab, s.X, s.Y)
	if err != nil {
		return err
	}

	dots, rings, err := v.scatter(xys, colors[0])
	if err != nil {
		return err
	}
	p.Add(dots, rings)

	// A single point, or a single distinct x, has no fit.
	if lo, hi := xRange(xys); lo == hi {
		return nil
	}
	fit := table.Flatten(ggstat.LeastSquares{X: s.X, Y: s.Y}.F(tab))
	var fx, fy []float64
	slice.Convert(&fx, fit.MustColumn(s.X))
	slice.Convert(&fy, fit.MustColumn(s.Y))
	line, err := plotter.NewLine(pairs(fx, fy))
	if err != nil {
		return err
	}
	line.LineStyle = draw.LineStyle{Color: v.edge, Width: v.wideLineWidth()}
	p.Add(line)
	return nil
}

// scatter returns the plotters for a set of filled points with a
// thin highlight-colored edge.
func (v *Visualizer) scatter(xys plotter.XYs, fill color.Color) (dots, rings *plotter.Scatter, err error) {
	radius := vg.Points(v.style.FontSize / 4)

	dots, err = plotter.NewScatter(xys)
	if err != nil {
		return nil, nil, err
	}
	dots.GlyphStyle = draw.GlyphStyle{
		Color:  withAlpha(fill, v.style.Alpha),
		Radius: radius,
		Shape:  draw.CircleGlyph{},
	}

	rings, err = plotter.NewScatter(xys)
	if err != nil {
		return nil, nil, err
	}
	rings.GlyphStyle = draw.GlyphStyle{
		Color:  v.highlight,
		Radius: radius,
		Shape:  draw.RingGlyph{},
	}
	return dots, rings, nil
}

func columnXYs(t *table.Table, xcol, ycol string) (plotter.XYs, error) {
	xs, err := floats(t, xcol)
	if err != nil {
		return nil, err
	}
	ys, err := floats(t, ycol)
	if err != nil {
		return nil, err
	}
	return pairs(xs, ys), nil
}

func pairs(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xys {
		xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return xys
}

func xRange(xys plotter.XYs) (lo, hi float64) {
	lo, hi = xys[0].X, xys[0].X
	for _, xy := range xys[1:] {
		if xy.X < lo {
			lo = xy.X
		}
		if xy.X > hi {
			hi = xy.X
		}
	}
	return
}
