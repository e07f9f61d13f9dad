// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Violin draws a vertical violin plot of column s.X: a mirrored
// density estimate with the quartiles and median drawn inside. If s.Y
// is set there is one violin for each of its values along the x
// axis, and if s.Category is also set each of those is split by it.
//
// Every violin has the same maximum width.
func (v *Visualizer) Violin(p *plot.Plot, data *table.Table, s Spec) error {
	v.setupPanel(p, s, panelOpts{xlabel: s.Y, ylabel: s.X})

	xs, err := floats(data, s.X)
	if err != nil {
		return err
	}
	keys := []string{}
	cols := map[string][]string{}
	for _, c := range []string{s.Y, s.Category} {
		if c == "" {
			continue
		}
		ls, err := labels(data, c)
		if err != nil {
			return err
		}
		keys = append(keys, c)
		cols[c] = ls
	}

	// Build a table of the finite samples with the grouping
	// columns as strings.
	var rows []int
	for i, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: column %q has no finite values", ErrInvalidArgument, s.X)
	}
	fx := slice.Select(xs, rows).([]float64)
	b := new(table.Builder).Add(s.X, fx)
	for _, c := range keys {
		b.Add(c, slice.Select(cols[c], rows))
	}
	var g table.Grouping = b.Done()
	if len(keys) > 0 {
		g = table.GroupBy(g, keys...)
	}

	// The mirrored density of each group.
	est := density(g, s.X, bandwidth(fx), violinCut, true)

	var groupNames, hueNames []string
	groupIdx, hueIdx := map[string]int{}, map[string]int{}
	intern := func(names *[]string, idx map[string]int, name string) int {
		i, ok := idx[name]
		if !ok {
			i = len(*names)
			idx[name] = i
			*names = append(*names, name)
		}
		return i
	}
	type violin struct {
		group, hue int
		ys, ds     []float64
		sample     []float64
	}
	var violins []violin
	for _, gid := range est.Tables() {
		grp, hue := s.X, ""
		switch {
		case s.Y != "" && s.Category != "":
			grp, hue = fmt.Sprint(gid.Parent().Label()), fmt.Sprint(gid.Label())
		case s.Y != "":
			grp = fmt.Sprint(gid.Label())
		case s.Category != "":
			hue = fmt.Sprint(gid.Label())
		}
		vl := violin{
			group: intern(&groupNames, groupIdx, grp),
			hue:   intern(&hueNames, hueIdx, hue),
		}
		slice.Convert(&vl.ys, est.Table(gid).MustColumn(s.X))
		slice.Convert(&vl.ds, est.Table(gid).MustColumn(densityCol))
		slice.Convert(&vl.sample, g.Table(gid).MustColumn(s.X))
		violins = append(violins, vl)
	}

	ncolors := len(hueNames)
	if s.Category == "" {
		ncolors = len(groupNames)
	}
	colors, err := paletteColors(v.paletteName(s), ncolors)
	if err != nil {
		return err
	}

	width := barGroupWidth / float64(len(hueNames))
	legend := make([]*plotter.Polygon, len(hueNames))
	for _, vl := range violins {
		center := float64(vl.group) - barGroupWidth/2 + width*(float64(vl.hue)+0.5)
		fill := colors[vl.hue]
		if s.Category == "" {
			fill = colors[vl.group]
		}
		poly, err := v.violinBody(center, width/2, vl.ys, vl.ds, fill)
		if err != nil {
			return err
		}
		if poly == nil {
			continue
		}
		p.Add(poly)
		if legend[vl.hue] == nil {
			legend[vl.hue] = poly
		}
		if err := v.violinInner(p, center, vl.sample); err != nil {
			return err
		}
	}

	if s.Category != "" {
		for i, name := range hueNames {
			if legend[i] != nil {
				p.Legend.Add(name, legend[i])
			}
		}
	}
	if s.Y != "" {
		p.NominalX(groupNames...)
	} else {
		p.HideX()
	}
	return nil
}

// violinBody returns the outline of a density mirrored about x =
// center and scaled so its widest point is half wide. It returns nil
// if the density is empty.
func (v *Visualizer) violinBody(center, half float64, ys, ds []float64, fill color.Color) (*plotter.Polygon, error) {
	max := 0.0
	for _, d := range ds {
		if d > max {
			max = d
		}
	}
	if len(ys) == 0 || max == 0 || math.IsNaN(max) {
		return nil, nil
	}

	ring := make(plotter.XYs, 0, 2*len(ys))
	for i, y := range ys {
		ring = append(ring, plotter.XY{X: center + half*ds[i]/max, Y: y})
	}
	for i := len(ys) - 1; i >= 0; i-- {
		ring = append(ring, plotter.XY{X: center - half*ds[i]/max, Y: ys[i]})
	}
	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	poly.LineStyle = v.edgeStyle()
	return poly, nil
}

// violinInner draws the whiskers, interquartile bar and median of
// sample at x = center.
func (v *Visualizer) violinInner(p *plot.Plot, center float64, sample []float64) error {
	sorted := append([]float64(nil), sample...)
	sort.Float64s(sorted)
	st := stats.Sample{Xs: sorted, Sorted: true}
	q1, med, q3 := st.Quantile(0.25), st.Quantile(0.5), st.Quantile(0.75)

	// Whiskers reach the most extreme samples within 1.5 IQR.
	lo, hi := q1-1.5*(q3-q1), q3+1.5*(q3-q1)
	wlo, whi := med, med
	for _, x := range sorted {
		if x >= lo && x < wlo {
			wlo = x
		}
		if x <= hi && x > whi {
			whi = x
		}
	}

	whisker, err := plotter.NewLine(plotter.XYs{{X: center, Y: wlo}, {X: center, Y: whi}})
	if err != nil {
		return err
	}
	whisker.LineStyle = v.edgeStyle()

	box, err := plotter.NewLine(plotter.XYs{{X: center, Y: q1}, {X: center, Y: q3}})
	if err != nil {
		return err
	}
	box.LineStyle = draw.LineStyle{Color: v.edge, Width: 4 * v.lineWidth()}

	dot, err := plotter.NewScatter(plotter.XYs{{X: center, Y: med}})
	if err != nil {
		return err
	}
	dot.GlyphStyle = draw.GlyphStyle{
		Color:  v.highlight,
		Radius: vg.Points(1.5 * v.style.LineWidth),
		Shape:  draw.CircleGlyph{},
	}

	p.Add(whisker, box, dot)
	return nil
}
