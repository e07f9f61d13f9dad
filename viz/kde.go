// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

const densityCol = "probability density"

// KDE draws a filled kernel density estimate of column s.X. The
// y axis is hidden and a dashed vertical grid is drawn unless
// s.HideGrid is set.
func (v *Visualizer) KDE(p *plot.Plot, data *table.Table, s Spec) error {
	v.setupPanel(p, s, panelOpts{xlabel: s.X, grid: true, hideY: true})

	xs, err := floats(data, s.X)
	if err != nil {
		return err
	}
	xs = dropNaN(s.X, xs)
	if len(xs) == 0 {
		return fmt.Errorf("%w: column %q has no finite values", ErrInvalidArgument, s.X)
	}
	colors, err := paletteColors(v.paletteName(s), 1)
	if err != nil {
		return err
	}

	tab := new(table.Builder).Add(s.X, xs).Done()
	est := table.Flatten(density(tab, s.X, bandwidth(xs), kdeCut, false))
	var gx, gy []float64
	slice.Convert(&gx, est.MustColumn(s.X))
	slice.Convert(&gy, est.MustColumn(densityCol))

	_, err = v.addBand(p, gx, nil, gy, colors[0])
	return err
}

// KDEByCategory draws kernel density estimates of column s.X for
// each value of column s.Category, stacked on top of each other.
// Each layer is scaled by its category's share of the rows, so the
// top of the stack is the density of the whole column.
func (v *Visualizer) KDEByCategory(p *plot.Plot, data *table.Table, s Spec) error {
	v.setupPanel(p, s, panelOpts{xlabel: s.X, grid: true, hideY: true})

	xs, err := floats(data, s.X)
	if err != nil {
		return err
	}
	cats, err := labels(data, s.Category)
	if err != nil {
		return err
	}
	var fx []float64
	var fc []string
	for i, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			fx = append(fx, x)
			fc = append(fc, cats[i])
		}
	}
	if len(fx) == 0 {
		return fmt.Errorf("%w: column %q has no finite values", ErrInvalidArgument, s.X)
	}

	// All groups share the bandwidth and the sample points, which
	// is what makes the layers stackable.
	tab := new(table.Builder).Add(s.X, fx).Add(s.Category, fc).Done()
	groups := table.GroupBy(tab, s.Category)
	est := density(groups, s.X, bandwidth(fx), kdeCut, false)

	gids := est.Tables()
	colors, err := paletteColors(v.paletteName(s), len(gids))
	if err != nil {
		return err
	}
	var base []float64
	for i, gid := range gids {
		var gx, gy []float64
		slice.Convert(&gx, est.Table(gid).MustColumn(s.X))
		slice.Convert(&gy, est.Table(gid).MustColumn(densityCol))
		if base == nil {
			base = make([]float64, len(gx))
		}
		if len(gx) != len(base) {
			continue
		}

		share := float64(groups.Table(gid).Len()) / float64(len(fx))
		top := make([]float64, len(gy))
		for j, y := range gy {
			top[j] = base[j] + share*y
		}
		poly, err := v.addBand(p, gx, base, top, colors[i])
		if err != nil {
			return err
		}
		p.Legend.Add(fmt.Sprint(gid.Label()), poly)
		base = top
	}
	return nil
}

// addBand fills the area between lo and hi over xs and outlines hi.
// A nil lo is the x axis.
func (v *Visualizer) addBand(p *plot.Plot, xs, lo, hi []float64, fill color.Color) (*plotter.Polygon, error) {
	ring := make(plotter.XYs, 0, 2*len(xs))
	for i, x := range xs {
		ring = append(ring, plotter.XY{X: x, Y: hi[i]})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		y := 0.0
		if lo != nil {
			y = lo[i]
		}
		ring = append(ring, plotter.XY{X: xs[i], Y: y})
	}
	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return nil, err
	}
	poly.Color = withAlpha(fill, v.style.Alpha)
	poly.LineStyle.Width = 0

	line, err := plotter.NewLine(ring[:len(xs)])
	if err != nil {
		return nil, err
	}
	line.LineStyle = v.edgeStyle()

	p.Add(poly, line)
	return poly, nil
}

// bandwidth returns the KDE bandwidth for xs. It uses Scott's rule,
// falling back to the standard deviation when the interquartile range
// is zero and to 1 when xs is constant.
func bandwidth(xs []float64) float64 {
	s := stats.Sample{Xs: xs}
	if bw := stats.BandwidthScott(s); bw > 0 {
		return bw
	}
	if sd := s.StdDev(); sd > 0 {
		return 1.06 * sd * math.Pow(float64(len(xs)), -1.0/5)
	}
	return 1
}
