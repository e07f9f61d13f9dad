// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// barGroupWidth is the fraction of each category slot covered by its
// bars.
const barGroupWidth = 0.8

type barKey struct {
	x, hue string
}

// barStat is the height and error bar of one bar. lo and hi are
// infinite when the group is too small to have an interval.
type barStat struct {
	mean, lo, hi float64
}

// Bar draws the mean of column s.Y for each value of column s.X as a
// bar, with a 95% confidence interval of the mean as an error bar.
// If s.Category is set, the bars of each s.X value are split by it
// and colored by category. Otherwise each s.X value gets its own
// color.
func (v *Visualizer) Bar(p *plot.Plot, data *table.Table, s Spec) error {
	v.setupPanel(p, s, panelOpts{xlabel: s.X, ylabel: s.Y})

	ys, err := floats(data, s.Y)
	if err != nil {
		return err
	}
	xl, err := labels(data, s.X)
	if err != nil {
		return err
	}
	var hl []string
	if s.Category != "" {
		if hl, err = labels(data, s.Category); err != nil {
			return err
		}
	}

	// Gather the finite samples of each bar.
	var fx, fh []string
	var fy []float64
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		k := barKey{x: xl[i]}
		if hl != nil {
			k.hue = hl[i]
			fh = append(fh, k.hue)
		}
		fx = append(fx, k.x)
		fy = append(fy, y)
	}
	if len(fy) == 0 {
		return fmt.Errorf("%w: column %q has no finite values", ErrInvalidArgument, s.Y)
	}

	keys := []string{s.X}
	b := new(table.Builder).Add(s.X, fx).Add(s.Y, fy)
	if hl != nil {
		keys = append(keys, s.Category)
		b.Add(s.Category, fh)
	}
	bars, err := barStats(b.Done(), keys, s.Y)
	if err != nil {
		return err
	}

	xnames, _ := levels(fx)
	hnames := []string{""}
	if hl != nil {
		hnames, _ = levels(fh)
	}
	ncolors := len(hnames)
	if hl == nil {
		ncolors = len(xnames)
	}
	colors, err := paletteColors(v.paletteName(s), ncolors)
	if err != nil {
		return err
	}

	width := barGroupWidth / float64(len(hnames))
	for hi, hue := range hnames {
		var centers plotter.XYs
		var errs plotter.YErrors
		var thumb *plotter.Polygon
		for xi, x := range xnames {
			k := barKey{x, hue}
			st, ok := bars[k]
			if !ok {
				continue
			}
			center := float64(xi) - barGroupWidth/2 + width*(float64(hi)+0.5)
			fill := colors[hi]
			if hl == nil {
				fill = colors[xi]
			}
			bar, err := v.bar(center-width/2, center+width/2, st.mean, fill)
			if err != nil {
				return err
			}
			p.Add(bar)
			if thumb == nil {
				thumb = bar
			}

			if math.IsInf(st.lo, 0) || math.IsNaN(st.lo) {
				continue
			}
			centers = append(centers, plotter.XY{X: center, Y: st.mean})
			errs = append(errs, struct{ Low, High float64 }{st.mean - st.lo, st.hi - st.mean})
		}

		if len(centers) > 0 {
			eb, err := plotter.NewYErrorBars(struct {
				plotter.XYs
				plotter.YErrors
			}{centers, errs})
			if err != nil {
				return err
			}
			eb.LineStyle.Color = v.edge
			eb.LineStyle.Width = v.wideLineWidth()
			eb.CapWidth = 0
			p.Add(eb)
		}
		if hl != nil && thumb != nil {
			p.Legend.Add(hue, thumb)
		}
	}
	p.NominalX(xnames...)
	return nil
}

// barStats returns the mean of column y and its 95% confidence
// interval for each distinct (x, hue) pair of t, where keys names the
// x column and optionally the hue column.
func barStats(t *table.Table, keys []string, y string) (map[barKey]barStat, error) {
	agg := table.Flatten(ggstat.Agg(keys...)(ggstat.AggMean(y), aggMeanCI(0.95, y)).F(t))
	xs, err := labels(agg, keys[0])
	if err != nil {
		return nil, err
	}
	var hs []string
	if len(keys) > 1 {
		if hs, err = labels(agg, keys[1]); err != nil {
			return nil, err
		}
	}
	ms, err := floats(agg, "mean "+y)
	if err != nil {
		return nil, err
	}
	los, his := agg.MustColumn("lo "+y).([]float64), agg.MustColumn("hi "+y).([]float64)

	out := make(map[barKey]barStat, len(ms))
	for i, m := range ms {
		k := barKey{x: xs[i]}
		if hs != nil {
			k.hue = hs[i]
		}
		out[k] = barStat{m, los[i], his[i]}
	}
	return out, nil
}

// aggMeanCI returns an aggregate function that computes the bounds of
// the confidence interval of the mean of col as columns "lo <col>"
// and "hi <col>".
func aggMeanCI(confidence float64, col string) ggstat.Aggregator {
	return func(input table.Grouping, out *table.Builder) {
		var los, his, xs []float64
		for _, gid := range input.Tables() {
			slice.Convert(&xs, input.Table(gid).MustColumn(col))
			_, lo, hi := stats.MeanCI(xs, confidence)
			los = append(los, lo)
			his = append(his, hi)
		}
		out.Add("lo "+col, los).Add("hi "+col, his)
	}
}

// bar returns an outlined bar spanning [x0, x1] from 0 to height.
func (v *Visualizer) bar(x0, x1, height float64, fill color.Color) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(plotter.XYs{
		{X: x0, Y: 0}, {X: x1, Y: 0}, {X: x1, Y: height}, {X: x0, Y: height},
	})
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	poly.LineStyle = v.edgeStyle()
	return poly, nil
}
