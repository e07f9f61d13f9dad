// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Scatter draws column s.Y against column s.X. If s.Category is set,
// each of its values gets its own color and legend entry.
func (v *Visualizer) Scatter(p *plot.Plot, data *table.Table, s Spec) error {
	v.setupPanel(p, s, panelOpts{xlabel: s.X, ylabel: s.Y})

	tab, err := finite(data, s.X, s.Y)
	if err != nil {
		return err
	}
	if tab.Len() == 0 {
		return fmt.Errorf("%w: no finite (%s, %s) pairs", ErrInvalidArgument, s.X, s.Y)
	}
	xys, err := columnXYs(tab, s.X, s.Y)
	if err != nil {
		return err
	}

	if s.Category == "" {
		colors, err := paletteColors(v.paletteName(s), 1)
		if err != nil {
			return err
		}
		dots, rings, err := v.scatter(xys, colors[0])
		if err != nil {
			return err
		}
		p.Add(dots, rings)
		return nil
	}

	cats, err := labels(tab, s.Category)
	if err != nil {
		return err
	}
	names, idx := levels(cats)
	colors, err := paletteColors(v.paletteName(s), len(names))
	if err != nil {
		return err
	}
	groups := make([]plotter.XYs, len(names))
	for i, xy := range xys {
		groups[idx[i]] = append(groups[idx[i]], xy)
	}
	for i, g := range groups {
		dots, rings, err := v.scatter(g, colors[i])
		if err != nil {
			return err
		}
		p.Add(dots, rings)
		p.Legend.Add(names[i], dots)
	}
	return nil
}
