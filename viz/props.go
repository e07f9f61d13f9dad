// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Spec describes one chart. X, Y and Category name columns of the
// dataset; which of them a chart uses is documented on the chart's
// method. The remaining fields are cosmetic.
type Spec struct {
	X, Y, Category string

	// Title is the panel title, or the figure title for charts
	// that draw several panels.
	Title string

	// XLabel and YLabel override the axis labels, which default to
	// the X and Y column names.
	XLabel, YLabel string

	// Width and Height are the figure size. Zero uses the style's
	// figure size, scaled by the grid for multi-panel figures.
	Width, Height vg.Length

	// HideGrid disables the dashed vertical grid of density plots.
	HideGrid bool

	// LegendTitle shows the Category column name above the legend
	// entries.
	LegendTitle bool

	// Palette overrides the style's palette for this chart.
	Palette string

	// TableOrder lists the columns of the missing-value heat map
	// in table order instead of by count.
	TableOrder bool

	// Cells is the waffle chart cell grid. It defaults to 10x10.
	Cells Layout
}

// panelOpts are the chart-specific parts of the common panel setup.
type panelOpts struct {
	xlabel, ylabel string
	grid           bool
	hideY          bool
}

// setupPanel applies the style to p and sets its title and labels.
// It must be called before any data is added, since the grid is
// drawn beneath the data.
func (v *Visualizer) setupPanel(p *plot.Plot, s Spec, o panelOpts) {
	size := v.style.FontSize

	p.BackgroundColor = v.plotFace
	p.Title.Text = s.Title
	v.setFont(&p.Title.TextStyle, size+2)
	p.Title.Padding = vg.Points(size / 2)

	if s.XLabel != "" {
		o.xlabel = s.XLabel
	}
	if s.YLabel != "" {
		o.ylabel = s.YLabel
	}
	p.X.Label.Text, p.Y.Label.Text = o.xlabel, o.ylabel
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		v.setFont(&ax.Label.TextStyle, size)
		v.setFont(&ax.Tick.Label, size-2)
		ax.LineStyle.Color = v.edge
		ax.Tick.LineStyle.Color = v.edge
		ax.Tick.Length = vg.Points(4)
	}

	// Only the left and bottom borders are ever drawn; hiding Y
	// also removes the left one.
	if o.hideY {
		p.HideY()
		p.Y.Label.Text = ""
	}

	v.setFont(&p.Legend.TextStyle, size-2)
	p.Legend.Top = true
	p.Legend.ThumbnailWidth = vg.Points(size)
	if s.LegendTitle && s.Category != "" {
		p.Legend.Add(s.Category)
	}

	if o.grid && !s.HideGrid {
		g := plotter.NewGrid()
		g.Vertical = draw.LineStyle{
			Color:  v.grid,
			Width:  vg.Points(0.5),
			Dashes: []vg.Length{vg.Points(1), vg.Points(5)},
		}
		g.Horizontal.Color = nil
		p.Add(g)
	}
}

func (v *Visualizer) setFont(sty *text.Style, size float64) {
	sty.Font = font.From(v.font, vg.Points(size))
	sty.Handler = plot.DefaultTextHandler
}

// edgeStyle is the outline style for filled shapes.
func (v *Visualizer) edgeStyle() draw.LineStyle {
	return draw.LineStyle{Color: v.edge, Width: v.lineWidth()}
}
