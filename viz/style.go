// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Style is the set of styling constants shared by every chart a
// Visualizer draws. Colors are color names or "#rrggbb" strings.
// Figure sizes are in inches and font sizes in points.
type Style struct {
	Palette        string  `toml:"palette"`
	FontSize       float64 `toml:"font_size"`
	FontWeight     string  `toml:"font_weight"`
	FontFamily     string  `toml:"font_family"`
	EdgeColor      string  `toml:"edge_color"`
	HighlightColor string  `toml:"highlight_color"`
	GridColor      string  `toml:"grid_color"`
	FigureFace     string  `toml:"figure_face"`
	PlotFace       string  `toml:"plot_face"`
	FigureWidth    float64 `toml:"figure_width"`
	FigureHeight   float64 `toml:"figure_height"`
	Alpha          float64 `toml:"alpha"`
	LineWidth      float64 `toml:"line_width"`
	WideLineWidth  float64 `toml:"wide_line_width"`
}

// DefaultStyle returns the default style: a Paired palette, 12pt
// normal-weight sans-serif text, black edges on a near-white face,
// and 4x3 inch panels.
func DefaultStyle() Style {
	return Style{
		Palette:        "Paired",
		FontSize:       12,
		FontWeight:     "normal",
		FontFamily:     "sans-serif",
		EdgeColor:      "black",
		HighlightColor: "white",
		GridColor:      "gray",
		FigureFace:     "#fafafa",
		PlotFace:       "#fafafa",
		FigureWidth:    4,
		FigureHeight:   3,
		Alpha:          0.6,
		LineWidth:      1,
		WideLineWidth:  1.5,
	}
}

// LoadStyle reads a TOML style file. Keys missing from the file keep
// their DefaultStyle values. Unknown keys are an error.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Style{}, err
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return Style{}, fmt.Errorf("%w: unknown style keys in %s: %s", ErrInvalidArgument, path, strings.Join(names, ", "))
	}
	return s, nil
}

// A Visualizer draws charts using a compiled Style. It is immutable
// and safe to share.
type Visualizer struct {
	style Style

	edge, highlight, grid color.Color
	figFace, plotFace     color.Color

	font          font.Font
	width, height vg.Length
}

// New validates s and returns a Visualizer that draws with it.
func New(s Style) (*Visualizer, error) {
	v := &Visualizer{style: s}

	if _, err := brewerVariants(s.Palette); err != nil {
		return nil, err
	}
	if s.FontSize <= 0 {
		return nil, fmt.Errorf("%w: font size %v", ErrInvalidArgument, s.FontSize)
	}
	if s.Alpha < 0 || s.Alpha > 1 {
		return nil, fmt.Errorf("%w: alpha %v outside [0, 1]", ErrInvalidArgument, s.Alpha)
	}
	if s.LineWidth <= 0 || s.WideLineWidth <= 0 {
		return nil, fmt.Errorf("%w: line widths must be positive", ErrInvalidArgument)
	}
	if s.FigureWidth <= 0 || s.FigureHeight <= 0 {
		return nil, fmt.Errorf("%w: figure size %vx%v", ErrInvalidArgument, s.FigureWidth, s.FigureHeight)
	}
	v.width = vg.Length(s.FigureWidth) * vg.Inch
	v.height = vg.Length(s.FigureHeight) * vg.Inch

	for _, c := range []struct {
		dst  *color.Color
		name string
	}{
		{&v.edge, s.EdgeColor},
		{&v.highlight, s.HighlightColor},
		{&v.grid, s.GridColor},
		{&v.figFace, s.FigureFace},
		{&v.plotFace, s.PlotFace},
	} {
		clr, err := parseColor(c.name)
		if err != nil {
			return nil, err
		}
		*c.dst = clr
	}

	fnt, err := parseFont(s.FontFamily, s.FontWeight)
	if err != nil {
		return nil, err
	}
	v.font = fnt
	return v, nil
}

// Style returns the style v was built from.
func (v *Visualizer) Style() Style {
	return v.style
}

// namedColors are the color names accepted in addition to hex codes.
var namedColors = map[string]color.Color{
	"black": color.Black,
	"white": color.White,
	"gray":  color.RGBA{128, 128, 128, 255},
	"grey":  color.RGBA{128, 128, 128, 255},
	"red":   color.RGBA{255, 0, 0, 255},
	"green": color.RGBA{0, 128, 0, 255},
	"blue":  color.RGBA{0, 0, 255, 255},
	"none":  color.Transparent,
}

func parseColor(s string) (color.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: color %q", ErrInvalidArgument, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

func parseFont(family, weight string) (font.Font, error) {
	fnt := font.Font{Typeface: "Liberation"}
	switch family {
	case "sans-serif", "sans":
		fnt.Variant = "Sans"
	case "serif":
		fnt.Variant = "Serif"
	case "monospace", "mono":
		fnt.Variant = "Mono"
	default:
		return font.Font{}, fmt.Errorf("%w: font family %q", ErrInvalidArgument, family)
	}
	switch weight {
	case "normal", "":
		fnt.Weight = xfont.WeightNormal
	case "bold":
		fnt.Weight = xfont.WeightBold
	case "light":
		fnt.Weight = xfont.WeightLight
	default:
		return font.Font{}, fmt.Errorf("%w: font weight %q", ErrInvalidArgument, weight)
	}
	return fnt, nil
}

// textStyle returns the text style for text of the given point size.
func (v *Visualizer) textStyle(size float64) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(v.font, vg.Points(size)),
		Handler: plot.DefaultTextHandler,
	}
}

func (v *Visualizer) lineWidth() vg.Length {
	return vg.Points(v.style.LineWidth)
}

func (v *Visualizer) wideLineWidth() vg.Length {
	return vg.Points(v.style.WideLineWidth)
}
