// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/dynacore/colop"
	"github.com/cpmech/dynacore/mesh"
)

// GridPatch owns the per-DOF coordinate, metric and state arrays for one
// horizontal mesh.Box. It carries a non-owning handle back to the owning
// Grid (no lifetime cycle, §9 Design Notes "Cyclic ownership").
type GridPatch struct {
	Box  *mesh.Box
	grid *Grid

	NA, NB int // horizontal GLL node counts along a,b over the interior elements (no halo nodes are allocated)

	X, Y       [][]float64 // [ia][ib] horizontal physical coordinates
	Zs         [][]float64 // [ia][ib] topography
	DaZs, DbZs [][]float64 // [ia][ib] topography slopes

	// node (level) vertical arrays: [ia][ib][k]
	ZNode    [][][]float64
	DaZNode  [][][]float64
	DbZNode  [][][]float64
	DxiZNode [][][]float64

	// interface vertical arrays: [ia][ib][k]
	ZEdge    [][][]float64
	DaZEdge  [][][]float64
	DbZEdge  [][][]float64
	DxiZEdge [][][]float64

	// metric tensors, node locations: [ia][ib][k], each a Metric3 value
	MetricNode [][][]Metric3
	MetricEdge [][][]Metric3

	// state slots, indexed the same way as Grid.SlotNames
	Slots    []*StateSlot
	refState *StateSlot // time-independent reference state, stored once

	// Rayleigh sponge strength sampled per node DOF, [ia][ib][k]
	RayleighNode [][][]float64
	RayleighEdge [][][]float64
}

// Grid returns the non-owning handle to the owning Grid
func (o *GridPatch) Grid() *Grid { return o.grid }

func newGridPatch(g *Grid, box *mesh.Box, ph, pv int) *GridPatch {
	na := (box.NElementsA())*ph + 1
	nb := (box.NElementsB())*ph + 1
	p := &GridPatch{Box: box, grid: g, NA: na, NB: nb}
	p.X = la.MatAlloc(na, nb)
	p.Y = la.MatAlloc(na, nb)
	p.Zs = la.MatAlloc(na, nb)
	p.DaZs = la.MatAlloc(na, nb)
	p.DbZs = la.MatAlloc(na, nb)

	nLevel := g.VLayout.NNode()
	nEdge := g.VLayout.NInterface()
	p.ZNode = alloc3(na, nb, nLevel)
	p.DaZNode = alloc3(na, nb, nLevel)
	p.DbZNode = alloc3(na, nb, nLevel)
	p.DxiZNode = alloc3(na, nb, nLevel)
	p.ZEdge = alloc3(na, nb, nEdge)
	p.DaZEdge = alloc3(na, nb, nEdge)
	p.DbZEdge = alloc3(na, nb, nEdge)
	p.DxiZEdge = alloc3(na, nb, nEdge)
	p.RayleighNode = alloc3(na, nb, nLevel)
	p.RayleighEdge = alloc3(na, nb, nEdge)

	p.MetricNode = make([][][]Metric3, na)
	p.MetricEdge = make([][][]Metric3, na)
	for i := 0; i < na; i++ {
		p.MetricNode[i] = make([][]Metric3, nb)
		p.MetricEdge[i] = make([][]Metric3, nb)
		for j := 0; j < nb; j++ {
			p.MetricNode[i][j] = make([]Metric3, nLevel)
			p.MetricEdge[i][j] = make([]Metric3, nEdge)
		}
	}
	return p
}

func alloc2(n, m int) [][]float64 { return la.MatAlloc(n, m) }

func alloc3(n, m, k int) [][][]float64 {
	a := make([][][]float64, n)
	for i := range a {
		a[i] = make([][]float64, m)
		for j := range a[i] {
			a[i][j] = make([]float64, k)
		}
	}
	return a
}

// columnLayout returns the vertical operator layout shared by every patch
func (o *Grid) columnLayout() *colop.Layout { return o.VLayout }
