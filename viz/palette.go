// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/palette/brewer"
)

// brewerVariants returns the number of levels of every variant of the
// named palette, largest first.
func brewerVariants(name string) ([]int, error) {
	variants, ok := brewer.ByName[name]
	if !ok || len(variants) == 0 {
		return nil, fmt.Errorf("%w: unknown palette %q", ErrInvalidArgument, name)
	}
	var levels []int
	for n := range variants {
		levels = append(levels, n)
	}
	// Insertion sort; palettes have at most a dozen variants.
	for i := 1; i < len(levels); i++ {
		for j := i; j > 0 && levels[j] > levels[j-1]; j-- {
			levels[j], levels[j-1] = levels[j-1], levels[j]
		}
	}
	return levels, nil
}

// paletteColors returns n colors from the named palette. It uses the
// smallest variant with at least n levels, or cycles through the
// largest variant if n exceeds every variant.
func paletteColors(name string, n int) ([]color.Color, error) {
	levels, err := brewerVariants(name)
	if err != nil {
		return nil, err
	}
	pick := levels[0]
	for _, l := range levels {
		if l >= n {
			pick = l
		}
	}
	variant := brewer.ByName[name][pick]
	out := make([]color.Color, n)
	for i := range out {
		out[i] = variant[i%len(variant)]
	}
	return out, nil
}

// gradient returns a continuous colormap that interpolates through the
// largest variant of the named palette.
func gradient(name string) (palette.RGBGradient, error) {
	levels, err := brewerVariants(name)
	if err != nil {
		return palette.RGBGradient{}, err
	}
	variant := brewer.ByName[name][levels[0]]
	g := palette.RGBGradient{Colors: make([]color.RGBA, len(variant))}
	for i, c := range variant {
		g.Colors[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return g, nil
}

// sampledPalette is a fixed list of colors. It implements the gonum
// palette.Palette interface.
type sampledPalette []color.Color

func (p sampledPalette) Colors() []color.Color { return p }

// sample returns n evenly spaced colors from c. If reverse is set the
// colors run from c.Map(1) down to c.Map(0).
func sample(c palette.Continuous, n int, reverse bool) sampledPalette {
	p := make(sampledPalette, n)
	for i := range p {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		if reverse {
			x = 1 - x
		}
		p[i] = c.Map(x)
	}
	return p
}

// withAlpha scales the opacity of c by alpha.
func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}

// paletteName returns the palette to use for a chart described by s.
func (v *Visualizer) paletteName(s Spec) string {
	if s.Palette != "" {
		return s.Palette
	}
	return v.style.Palette
}
