// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Figure is a grid of panels with an optional title, filled in
// row-major order.
type Figure struct {
	Title         string
	Layout        Layout
	Width, Height vg.Length

	face       color.Color
	titleStyle text.Style
	pad        vg.Length
	panels     []*plot.Plot
}

// newFigure returns a figure with n empty panels in layout l.
func (v *Visualizer) newFigure(n int, l Layout, w, h vg.Length) *Figure {
	f := &Figure{
		Layout: l,
		Width:  w,
		Height: h,
		face:   v.figFace,
		pad:    vg.Points(v.style.FontSize / 2),
		panels: make([]*plot.Plot, n),
	}
	f.titleStyle = v.textStyle(v.style.FontSize + 4)
	f.titleStyle.XAlign = draw.XCenter
	f.titleStyle.YAlign = draw.YTop
	for i := range f.panels {
		f.panels[i] = plot.New()
	}
	return f
}

// Len returns the number of panels in f.
func (f *Figure) Len() int {
	return len(f.panels)
}

// Panel returns the i'th panel of f.
func (f *Figure) Panel(i int) *plot.Plot {
	return f.panels[i]
}

// Draw draws f to c.
func (f *Figure) Draw(c draw.Canvas) {
	c.SetColor(f.face)
	c.Fill(c.Rectangle.Path())

	if f.Title != "" {
		c.FillText(f.titleStyle, vg.Point{X: c.Center().X, Y: c.Max.Y - f.pad}, f.Title)
		h := f.titleStyle.Rectangle(f.Title).Size().Y
		c = draw.Crop(c, 0, 0, 0, -(h + f.pad))
	}

	tiles := draw.Tiles{
		Rows:      f.Layout.Rows,
		Cols:      f.Layout.Cols,
		PadTop:    f.pad,
		PadBottom: f.pad,
		PadLeft:   f.pad,
		PadRight:  f.pad,
		PadX:      2 * f.pad,
		PadY:      2 * f.pad,
	}
	for i, p := range f.panels {
		p.Draw(tiles.At(c, i%f.Layout.Cols, i/f.Layout.Cols))
	}
}

// Encode writes f to w in the given image format. The formats are
// those of gonum.org/v1/plot: "svg", "png", "jpg", "pdf", "eps",
// "tif" and "tex".
func (f *Figure) Encode(w io.Writer, format string) error {
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return err
	}
	f.Draw(draw.New(c))
	_, err = c.WriteTo(w)
	return err
}

// Save writes f to the named file. The format is taken from the
// file's extension.
func (f *Figure) Save(path string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return fmt.Errorf("%w: no image format for %q", ErrInvalidArgument, path)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := out.Close(); err == nil {
			err = e
		}
	}()
	return f.Encode(out, format)
}
