// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/quad"
)

// evaluateHorizontalCoords fills every patch's X, Y arrays from the domain
// Bounds and the global element partition, placing GLL nodes within each
// element and sharing the coincident boundary node between adjacent
// elements, the same tensor-product construction colop.Layout uses for the
// vertical column (§3 "Grid geometry").
func (o *Grid) evaluateHorizontalCoords() {
	for _, p := range o.Patches {
		xs := axisCoords(p.Box.NElementsA(), p.Box.ABegin, o.NElemA, o.Bounds.XMin, o.Bounds.XMax, o.Ph)
		ys := axisCoords(p.Box.NElementsB(), p.Box.BBegin, o.NElemB, o.Bounds.YMin, o.Bounds.YMax, o.Ph)
		for i := 0; i < p.NA; i++ {
			for j := 0; j < p.NB; j++ {
				p.X[i][j] = xs[i]
				p.Y[i][j] = ys[j]
			}
		}
	}
}

// axisCoords builds the physical GLL coordinates of the nElemLocal elements
// starting at global element index globalElemBegin, out of totalElemGlobal
// elements uniformly partitioning [low, high] of order p.
func axisCoords(nElemLocal, globalElemBegin, totalElemGlobal int, low, high float64, p int) []float64 {
	if high <= low {
		chk.Panic("grid: axisCoords needs high > low, got low=%v high=%v", low, high)
	}
	n := nElemLocal*p + 1
	coords := make([]float64, n)
	dx := (high - low) / float64(totalElemGlobal)
	for le := 0; le < nElemLocal; le++ {
		ge := globalElemBegin + le
		eLo := low + float64(ge)*dx
		eHi := low + float64(ge+1)*dx
		pts := quad.Points(p, eLo, eHi)
		for j, v := range pts {
			coords[le*p+j] = v
		}
	}
	return coords
}
