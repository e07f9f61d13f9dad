// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeStyle(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte(body), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStyle(t *testing.T) {
	path := writeStyle(t, `
palette = "Set2"
font_size = 10
edge_color = "#336699"
figure_width = 6.5
`)
	s, err := LoadStyle(path)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultStyle()
	want.Palette = "Set2"
	want.FontSize = 10
	want.EdgeColor = "#336699"
	want.FigureWidth = 6.5
	if s != want {
		t.Errorf("want %+v; got %+v", want, s)
	}

	v, err := New(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.RGBAModel.Convert(v.edge).(color.RGBA); got != (color.RGBA{0x33, 0x66, 0x99, 0xff}) {
		t.Errorf("edge color: want #336699; got %v", got)
	}
}

func TestLoadStyleUnknownKey(t *testing.T) {
	path := writeStyle(t, "palete = \"Set2\"\n")
	if _, err := LoadStyle(path); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument; got %v", err)
	}
}

func TestLoadStyleMissing(t *testing.T) {
	if _, err := LoadStyle(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Errorf("want error for missing file")
	}
}

func TestNewInvalid(t *testing.T) {
	for _, test := range []struct {
		name string
		edit func(*Style)
	}{
		{"palette", func(s *Style) { s.Palette = "NoSuchPalette" }},
		{"font size", func(s *Style) { s.FontSize = 0 }},
		{"font family", func(s *Style) { s.FontFamily = "cursive" }},
		{"font weight", func(s *Style) { s.FontWeight = "heavy" }},
		{"alpha", func(s *Style) { s.Alpha = 1.5 }},
		{"line width", func(s *Style) { s.WideLineWidth = -1 }},
		{"figure size", func(s *Style) { s.FigureHeight = 0 }},
		{"edge color", func(s *Style) { s.EdgeColor = "#12" }},
		{"face color", func(s *Style) { s.PlotFace = "chartreuse-ish" }},
	} {
		s := DefaultStyle()
		test.edit(&s)
		if _, err := New(s); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: want ErrInvalidArgument; got %v", test.name, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		in   string
		want color.RGBA
	}{
		{"black", color.RGBA{0, 0, 0, 0xff}},
		{"White", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"#fafafa", color.RGBA{0xfa, 0xfa, 0xfa, 0xff}},
		{"none", color.RGBA{}},
	} {
		c, err := parseColor(test.in)
		if err != nil {
			t.Errorf("parseColor(%q): %v", test.in, err)
			continue
		}
		if got := color.RGBAModel.Convert(c).(color.RGBA); got != test.want {
			t.Errorf("parseColor(%q): want %v; got %v", test.in, test.want, got)
		}
	}
}

func TestPaletteColors(t *testing.T) {
	for _, n := range []int{1, 3, 5, 12, 20} {
		cs, err := paletteColors("Paired", n)
		if err != nil {
			t.Fatal(err)
		}
		if len(cs) != n {
			t.Errorf("paletteColors(Paired, %d): got %d colors", n, len(cs))
		}
	}

	// Past the largest variant the colors repeat.
	cs, _ := paletteColors("Paired", 20)
	for i := 12; i < 20; i++ {
		if cs[i] != cs[i-12] {
			t.Errorf("paletteColors(Paired, 20)[%d] = %v; want %v", i, cs[i], cs[i-12])
		}
	}

	if _, err := paletteColors("NoSuchPalette", 3); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument for unknown palette; got %v", err)
	}
}

func TestBrewerVariants(t *testing.T) {
	levels, err := brewerVariants("Paired")
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] >= levels[i-1] {
			t.Fatalf("levels not descending: %v", levels)
		}
	}
	if levels[0] != 12 {
		t.Errorf("largest Paired variant: want 12; got %d", levels[0])
	}
}

func TestWithAlpha(t *testing.T) {
	c := withAlpha(color.RGBA{10, 20, 30, 255}, 0.6)
	n := c.(color.NRGBA)
	if n.R != 10 || n.G != 20 || n.B != 30 || n.A != 153 {
		t.Errorf("withAlpha: got %v", n)
	}
}
