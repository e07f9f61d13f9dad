// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

// sampleTable returns a small deterministic data set with two numeric
// columns, two grouping columns and a few missing values.
func sampleTable() *table.Table {
	const n = 60
	var x, y, z []float64
	var group, hue []string
	for i := 0; i < n; i++ {
		fi := float64(i)
		x = append(x, math.Sin(fi)*3+fi/10)
		y = append(y, 2*fi+math.Cos(fi*7))
		zi := fi * fi / 100
		if i%7 == 0 {
			zi = math.NaN()
		}
		z = append(z, zi)
		group = append(group, []string{"low", "mid", "high"}[i%3])
		hue = append(hue, []string{"on", "off"}[(i/3)%2])
	}
	return new(table.Builder).
		Add("x", x).
		Add("y", y).
		Add("z", z).
		Add("group", group).
		Add("hue", hue).
		Done()
}

func encodeSVG(t *testing.T, name string, fig *Figure, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: %v", name, err)
		return
	}
	var buf bytes.Buffer
	if err := fig.Encode(&buf, "svg"); err != nil {
		t.Errorf("%s: encoding: %v", name, err)
		return
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("%s: output is not SVG", name)
	}
}

func TestRender(t *testing.T) {
	v := testVisualizer(t)
	data := sampleTable()
	cols := []string{"x", "y", "z"}

	for _, test := range []struct {
		name string
		draw func() (*Figure, error)
	}{
		{"kde", func() (*Figure, error) { return v.DrawKDE(data, Spec{X: "z"}) }},
		{"kde multiple", func() (*Figure, error) { return v.DrawMultipleKDE(data, nil, Layout{}, Spec{Title: "densities"}) }},
		{"kde by category", func() (*Figure, error) {
			return v.DrawKDEByCategory(data, Spec{X: "x", Category: "group", LegendTitle: true})
		}},
		{"kde by category multiple", func() (*Figure, error) {
			return v.DrawMultipleKDEByCategory(data, cols, Layout{Rows: 1}, Spec{Category: "hue"})
		}},
		{"regression", func() (*Figure, error) { return v.DrawRegression(data, Spec{X: "x", Y: "z"}) }},
		{"bar", func() (*Figure, error) { return v.DrawBar(data, Spec{X: "group", Y: "y"}) }},
		{"bar hue", func() (*Figure, error) { return v.DrawBar(data, Spec{X: "group", Y: "z", Category: "hue"}) }},
		{"scatter", func() (*Figure, error) { return v.DrawScatter(data, Spec{X: "x", Y: "y", Category: "group"}) }},
		{"scatter multiple", func() (*Figure, error) {
			return v.DrawMultipleScatter(data, []string{"x", "z"}, Layout{}, Spec{Y: "y", HideGrid: true})
		}},
		{"box", func() (*Figure, error) { return v.DrawBox(data, Spec{X: "y"}) }},
		{"box grouped", func() (*Figure, error) { return v.DrawBox(data, Spec{X: "z", Y: "group"}) }},
		{"box multiple", func() (*Figure, error) { return v.DrawMultipleBox(data, cols, Layout{Cols: 3}, Spec{}) }},
		{"violin", func() (*Figure, error) { return v.DrawViolin(data, Spec{X: "x"}) }},
		{"violin split", func() (*Figure, error) { return v.DrawViolin(data, Spec{X: "y", Y: "group", Category: "hue"}) }},
		{"violin multiple", func() (*Figure, error) { return v.DrawMultipleViolin(data, nil, Layout{}, Spec{Y: "hue"}) }},
		{"missing", func() (*Figure, error) { return v.DrawMissingValues(data, Spec{Title: "missing"}) }},
		{"missing table order", func() (*Figure, error) {
			return v.DrawMissingValues(data, Spec{TableOrder: true, Palette: "Blues"})
		}},
		{"waffle", func() (*Figure, error) { return v.DrawWaffle(data, Spec{X: "group"}) }},
		{"waffle split", func() (*Figure, error) {
			return v.DrawWaffle(data, Spec{X: "group", Y: "hue", Title: "groups", Cells: Layout{Rows: 5, Cols: 8}})
		}},
	} {
		fig, err := test.draw()
		encodeSVG(t, test.name, fig, err)
	}
}

func TestRenderErrors(t *testing.T) {
	v := testVisualizer(t)
	data := sampleTable()

	for _, test := range []struct {
		name string
		draw func() (*Figure, error)
	}{
		{"kde unknown", func() (*Figure, error) { return v.DrawKDE(data, Spec{X: "nope"}) }},
		{"kde text", func() (*Figure, error) { return v.DrawKDE(data, Spec{X: "group"}) }},
		{"kde by unknown category", func() (*Figure, error) { return v.DrawKDEByCategory(data, Spec{X: "x", Category: "nope"}) }},
		{"regression unknown", func() (*Figure, error) { return v.DrawRegression(data, Spec{X: "x", Y: "nope"}) }},
		{"bar text y", func() (*Figure, error) { return v.DrawBar(data, Spec{X: "group", Y: "hue"}) }},
		{"scatter no y", func() (*Figure, error) { return v.DrawScatter(data, Spec{X: "x"}) }},
		{"box unknown group", func() (*Figure, error) { return v.DrawBox(data, Spec{X: "x", Y: "nope"}) }},
		{"violin text", func() (*Figure, error) { return v.DrawViolin(data, Spec{X: "hue"}) }},
		{"waffle unknown", func() (*Figure, error) { return v.DrawWaffle(data, Spec{X: "nope"}) }},
		{"waffle bad cells", func() (*Figure, error) { return v.DrawWaffle(data, Spec{X: "group", Cells: Layout{Rows: -1, Cols: 2}}) }},
		{"multiple unknown", func() (*Figure, error) { return v.DrawMultipleKDE(data, []string{"x", "nope"}, Layout{}, Spec{}) }},
	} {
		if _, err := test.draw(); err == nil {
			t.Errorf("%s: want error", test.name)
		}
	}

	empty := new(table.Builder).Done()
	if _, err := v.DrawMissingValues(empty, Spec{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("missing values of empty table: want ErrInvalidArgument; got %v", err)
	}
}

func TestFigureSave(t *testing.T) {
	v := testVisualizer(t)
	fig, err := v.DrawKDE(sampleTable(), Spec{X: "x"})
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	for _, name := range []string{"kde.svg", "kde.png", "kde.pdf"} {
		path := filepath.Join(dir, name)
		if err := fig.Save(path); err != nil {
			t.Errorf("Save(%s): %v", name, err)
			continue
		}
		if st, err := os.Stat(path); err != nil || st.Size() == 0 {
			t.Errorf("Save(%s) wrote nothing", name)
		}
	}
	if err := fig.Save(filepath.Join(dir, "kde")); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Save without extension: want ErrInvalidArgument; got %v", err)
	}
	if err := fig.Save(filepath.Join(dir, "kde.bmp")); err == nil {
		t.Errorf("Save(kde.bmp): want error")
	}
}
