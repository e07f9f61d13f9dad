// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viz draws common statistical charts of go-gg tables with a
// consistent look.
//
// A Visualizer holds a compiled Style. Each chart type is a method
// with the PanelFunc signature, which draws into a single gonum/plot
// panel. Draw wraps a PanelFunc in a one-panel Figure and DrawMultiple
// lays out one panel per column in a facet grid:
//
//	v, _ := viz.New(viz.DefaultStyle())
//	fig, err := v.DrawMultiple(v.KDE, tab, nil, viz.Layout{}, viz.Spec{Title: "Features"})
//	...
//	err = fig.Save("features.svg")
package viz

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
)

// ErrInvalidArgument is returned (wrapped) when a caller passes a
// grid, column selection or style that cannot be drawn.
var ErrInvalidArgument = errors.New("invalid argument")

// Warning is a logger for reporting conditions that don't prevent a
// chart from being drawn, but may indicate a problem with the data.
var Warning = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "viz",
	Level:  log.WarnLevel,
})
