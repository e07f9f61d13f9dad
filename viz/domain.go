// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// Density estimates are drawn this many bandwidths past the data on
// each side, so the tails reach close to zero.
const (
	kdeCut    = 3
	violinCut = 2
)

// cutDomain is a ggstat.FunctionDomainer that spans the data extended
// by cut bandwidths on each side. Unlike ggstat.DomainData, it has
// nonzero width for a constant column.
type cutDomain struct {
	bandwidth, cut float64

	// split gives each group its own domain. Otherwise all groups
	// share the domain of the combined data, which lets their
	// densities be stacked.
	split bool
}

var _ ggstat.FunctionDomainer = cutDomain{}

func (d cutDomain) FunctionDomain(g table.Grouping, col string) func(gid table.GroupID) (min, max float64) {
	bounds := func(gids ...table.GroupID) (min, max float64) {
		min, max = math.NaN(), math.NaN()
		var xs []float64
		for _, gid := range gids {
			slice.Convert(&xs, g.Table(gid).MustColumn(col))
			if len(xs) == 0 {
				continue
			}
			lo, hi := stats.Bounds(xs)
			if lo < min || math.IsNaN(min) {
				min = lo
			}
			if hi > max || math.IsNaN(max) {
				max = hi
			}
		}
		if math.IsNaN(min) {
			// No data.
			return
		}
		pad := d.cut * d.bandwidth
		return min - pad, max + pad
	}

	if d.split {
		return func(gid table.GroupID) (min, max float64) {
			return bounds(gid)
		}
	}
	min, max := bounds(g.Tables()...)
	return func(table.GroupID) (float64, float64) {
		return min, max
	}
}

// density returns the kernel density estimate of column x for each
// group of g, sampled over a cutDomain.
func density(g table.Grouping, x string, bw, cut float64, split bool) table.Grouping {
	return ggstat.Density{
		X:         x,
		Bandwidth: bw,
		Domain:    cutDomain{bandwidth: bw, cut: cut, split: split},
	}.F(g)
}
