// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-statviz/tableio"
	"github.com/aclements/go-statviz/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

// A chart is one chart kind. multi is nil for kinds that only draw a
// single panel.
type chart struct {
	name, short string
	single      func(*viz.Visualizer, *table.Table, viz.Spec) (*viz.Figure, error)
	multi       func(*viz.Visualizer, *table.Table, []string, viz.Layout, viz.Spec) (*viz.Figure, error)
}

var charts = []chart{
	{"kde", "Density plot of numeric columns",
		(*viz.Visualizer).DrawKDE, (*viz.Visualizer).DrawMultipleKDE},
	{"kde-by", "Density plot stacked by a category column (-c)",
		(*viz.Visualizer).DrawKDEByCategory, (*viz.Visualizer).DrawMultipleKDEByCategory},
	{"regression", "Scatter plot of -y against -x with a least-squares line",
		(*viz.Visualizer).DrawRegression, nil},
	{"bar", "Mean of -y for each value of -x with 95% confidence intervals",
		(*viz.Visualizer).DrawBar, nil},
	{"scatter", "Scatter plot of -y against -x, colored by -c",
		(*viz.Visualizer).DrawScatter, (*viz.Visualizer).DrawMultipleScatter},
	{"box", "Box plot of -x, grouped by -y",
		(*viz.Visualizer).DrawBox, (*viz.Visualizer).DrawMultipleBox},
	{"violin", "Violin plot of -x, grouped by -y and split by -c",
		(*viz.Visualizer).DrawViolin, (*viz.Visualizer).DrawMultipleViolin},
	{"missing", "Heat map of missing values per column",
		(*viz.Visualizer).DrawMissingValues, nil},
	{"waffle", "Waffle chart of the proportions of -x, one per value of -y",
		(*viz.Visualizer).DrawWaffle, nil},
}

// chartFlags are the flags shared by every chart command.
type chartFlags struct {
	input, sheet, output, format string

	xs          []string
	y, category string
	all         bool

	title, xlabel, ylabel string
	rows, cols            int
	width, height         float64
	noGrid, legendTitle   bool
	tableOrder            bool
	palette               string
}

func (f *chartFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "read data from `file` (- for CSV on stdin)")
	fl.StringVar(&f.sheet, "sheet", "", "read `sheet` of an XLSX input (default first)")
	fl.StringVarP(&f.output, "output", "o", "", "write the chart to `file` (default stdout)")
	fl.StringVar(&f.format, "format", "svg", "image `format` when writing to stdout")
	fl.StringArrayVarP(&f.xs, "x", "x", nil, "x `column`; repeat for one panel per column")
	fl.StringVarP(&f.y, "y", "y", "", "y `column`")
	fl.StringVarP(&f.category, "category", "c", "", "category `column` for colors")
	fl.BoolVar(&f.all, "all", false, "one panel for every numeric column")
	fl.StringVarP(&f.title, "title", "t", "", "chart `title`")
	fl.StringVar(&f.xlabel, "xlabel", "", "x axis `label`")
	fl.StringVar(&f.ylabel, "ylabel", "", "y axis `label`")
	fl.IntVar(&f.rows, "rows", 0, "panel grid rows, or waffle cell rows")
	fl.IntVar(&f.cols, "cols", 0, "panel grid columns, or waffle cell columns")
	fl.Float64Var(&f.width, "width", 0, "figure width in `inches`")
	fl.Float64Var(&f.height, "height", 0, "figure height in `inches`")
	fl.BoolVar(&f.noGrid, "no-grid", false, "hide the density plot grid")
	fl.BoolVar(&f.legendTitle, "legend-title", false, "show the category column name in the legend")
	fl.BoolVar(&f.tableOrder, "table-order", false, "list missing-value heat map columns in table order instead of by count")
	fl.StringVar(&f.palette, "palette", "", "ColorBrewer `palette` (default from the style)")
	cmd.MarkFlagRequired("input")
}

// options returns the chart description given by f.
func (f *chartFlags) options() viz.Spec {
	s := viz.Spec{
		Y:           f.y,
		Category:    f.category,
		Title:       f.title,
		XLabel:      f.xlabel,
		YLabel:      f.ylabel,
		Width:       vg.Length(f.width) * vg.Inch,
		Height:      vg.Length(f.height) * vg.Inch,
		HideGrid:    f.noGrid,
		LegendTitle: f.legendTitle,
		Palette:     f.palette,
		TableOrder:  f.tableOrder,
	}
	if len(f.xs) > 0 {
		s.X = f.xs[0]
	}
	return s
}

func (a *app) newChartCmd(c chart) *cobra.Command {
	var f chartFlags
	cmd := &cobra.Command{
		Use:   c.name,
		Short: c.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runChart(cmd, c, &f)
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) runChart(cmd *cobra.Command, c chart, f *chartFlags) error {
	logger := loggerFromContext(cmd.Context())

	start := time.Now()
	data, err := tableio.Open(f.input, f.sheet, cmd.InOrStdin())
	if err != nil {
		return err
	}
	timed(logger, start, "loaded data", "input", f.input, "rows", data.Len(), "columns", len(data.Columns()))

	s := f.options()
	layout := viz.Layout{Rows: f.rows, Cols: f.cols}
	multi := f.all || len(f.xs) > 1

	start = time.Now()
	var fig *viz.Figure
	switch {
	case multi && c.multi == nil:
		return fmt.Errorf("%s draws a single panel; give one -x column", c.name)
	case multi:
		var cols []string
		if !f.all {
			cols = f.xs
		}
		fig, err = c.multi(a.vis, data, cols, layout, s)
	default:
		if c.name == "waffle" {
			s.Cells = layout
		}
		fig, err = c.single(a.vis, data, s)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", c.name, err)
	}
	timed(logger, start, "drew chart", "kind", c.name, "panels", fig.Len())

	if f.output == "" || f.output == "-" {
		return fig.Encode(cmd.OutOrStdout(), f.format)
	}
	if err := fig.Save(f.output); err != nil {
		return err
	}
	logger.Info("wrote chart", "kind", c.name, "output", f.output)
	return nil
}
