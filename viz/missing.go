// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// MissingCount is the number of missing values in one column.
type MissingCount struct {
	Column string
	Count  int
}

// MissingCounts returns the number of missing values in each column
// of t, in table order. NaN is missing in floating-point columns, ""
// in string columns and nil in interface columns. Other columns have
// no missing values.
func MissingCounts(t *table.Table) []MissingCount {
	var out []MissingCount
	for _, col := range t.Columns() {
		out = append(out, MissingCount{col, countMissing(t.Column(col))})
	}
	return out
}

func countMissing(seq interface{}) int {
	n := 0
	switch s := seq.(type) {
	case []float64:
		for _, x := range s {
			if math.IsNaN(x) {
				n++
			}
		}
	case []string:
		for _, x := range s {
			if x == "" {
				n++
			}
		}
	default:
		rv := reflect.ValueOf(seq)
		for i := 0; i < rv.Len(); i++ {
			if isMissing(rv.Index(i)) {
				n++
			}
		}
	}
	return n
}

// isMissing reports whether x is a missing value: NaN, "" or nil.
func isMissing(x reflect.Value) bool {
	switch x.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(x.Float())
	case reflect.String:
		return x.String() == ""
	case reflect.Interface:
		return x.IsNil()
	}
	return false
}

// missingRows returns the heat map rows of data from top to bottom.
func missingRows(data *table.Table, tableOrder bool) []MissingCount {
	counts := MissingCounts(data)
	if !tableOrder {
		sort.SliceStable(counts, func(i, j int) bool {
			return counts[i].Count < counts[j].Count
		})
	}
	return counts
}

// missingGrid is a single-column heat map grid. Row 0 is at the
// bottom, so counts are stored bottom-up.
type missingGrid []float64

func (g missingGrid) Dims() (c, r int)   { return 1, len(g) }
func (g missingGrid) Z(c, r int) float64 { return g[r] }
func (g missingGrid) X(c int) float64    { return 0 }
func (g missingGrid) Y(r int) float64    { return float64(r) }

// MissingValues draws a heat map of the number of missing values in
// each column of data, annotated with the counts. Columns are listed
// top to bottom by ascending count, or in table order if
// s.TableOrder is set. The color scale runs from 0 to the number of
// rows.
func (v *Visualizer) MissingValues(p *plot.Plot, data *table.Table, s Spec) error {
	v.setupPanel(p, s, panelOpts{})

	counts := missingRows(data, s.TableOrder)
	if len(counts) == 0 {
		return fmt.Errorf("%w: table has no columns", ErrInvalidArgument)
	}

	grad, err := gradient(v.paletteName(s))
	if err != nil {
		return err
	}
	pal := sample(grad, 256, true)

	n := len(counts)
	grid := make(missingGrid, n)
	names := make([]string, n)
	for i, c := range counts {
		grid[n-1-i] = float64(c.Count)
		names[n-1-i] = c.Column
	}
	hm := plotter.NewHeatMap(grid, pal)
	hm.Min, hm.Max = 0, math.Max(float64(data.Len()), 1)
	p.Add(hm)

	var xys plotter.XYs
	var strs []string
	for r, z := range grid {
		xys = append(xys, plotter.XY{X: 0, Y: float64(r)})
		strs = append(strs, strconv.Itoa(int(z)))
	}
	ann, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return err
	}
	for r := range ann.TextStyle {
		sty := v.textStyle(v.style.FontSize - 2)
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YCenter
		sty.Color = contrast(cellColor(pal, grid[r], hm.Min, hm.Max))
		ann.TextStyle[r] = sty
	}
	p.Add(ann)

	p.HideX()
	p.NominalY(names...)
	return nil
}

// DrawMissingValues draws MissingValues into a new figure. The
// default size is 5 inches wide and a third of an inch per column
// tall.
func (v *Visualizer) DrawMissingValues(data *table.Table, s Spec) (*Figure, error) {
	if s.Width == 0 {
		s.Width = 5 * vg.Inch
	}
	if s.Height == 0 {
		s.Height = vg.Length(math.Ceil(float64(len(data.Columns()))/3)) * vg.Inch
		if s.Height < vg.Inch {
			s.Height = vg.Inch
		}
	}
	return v.Draw(v.MissingValues, data, s)
}

// cellColor returns the color HeatMap uses for z.
func cellColor(pal sampledPalette, z, min, max float64) color.Color {
	i := int((z-min)*float64(len(pal)-1)/(max-min) + 0.5)
	if i < 0 {
		i = 0
	} else if i >= len(pal) {
		i = len(pal) - 1
	}
	return pal[i]
}

// contrast returns black or white, whichever is more legible on c.
func contrast(c color.Color) color.Color {
	g := color.GrayModel.Convert(c).(color.Gray)
	if g.Y < 128 {
		return color.White
	}
	return color.Black
}
