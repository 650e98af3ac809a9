// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vert

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/grid"
	"github.com/cpmech/dynacore/phys"
	"github.com/cpmech/dynacore/testcase"
)

func newTestGrid(tc testcase.TestCase, slots []string) *grid.Grid {
	g := grid.New(grid.Config{
		Phys:     phys.NewEarth(38.5),
		Bounds:   grid.Bounds{XMin: 0, XMax: 1000, YMin: 0, YMax: 1000, ZMin: 0, ZMax: tc.GetZtop()},
		Stagger:  grid.LEVELS,
		VelRep:   grid.Contravariant,
		Ph:       3,
		Pv:       3,
		NElemA:   2,
		NElemB:   2,
		NElemV:   2,
		Halo:     1,
		NPatchA:  1,
		NPatchB:  1,
		LateralA: grid.Reflective,
		LateralB: grid.Reflective,
		Dim:      3,
	})
	g.InitializeData(slots, 1)
	if err := g.EvaluateTopography(tc); err != nil {
		panic(err)
	}
	if err := g.EvaluateGeometricTerms(tc.GetZtop()); err != nil {
		panic(err)
	}
	return g
}

func TestSolveColumnsProducesFiniteState(tst *testing.T) {
	chk.PrintTitle("SolveColumnsProducesFiniteState")
	tc := testcase.NewThermalBubble()
	g := newTestGrid(tc, []string{"active", "next", "work1", "work2"})
	if err := g.EvaluateTestCase("active", 0, tc); err != nil {
		tst.Fatalf("EvaluateTestCase failed: %v", err)
	}
	o := New(g, DefaultConfig(0.5))
	if err := o.SolveColumns("active", "next", 0.5, true); err != nil {
		tst.Fatalf("SolveColumns failed: %v", err)
	}
	out := g.Patches[0].Slot("next")
	for c := eqset.Component(0); c < eqset.NComponents; c++ {
		for k := range out.Node[c] {
			for i := range out.Node[c][k] {
				for j := range out.Node[c][k][i] {
					v := out.Node[c][k][i][j]
					if math.IsNaN(v) || math.IsInf(v, 0) {
						tst.Fatalf("component %d at (k,i,j)=(%d,%d,%d) is not finite after column solve: %v", c, k, i, j, v)
					}
				}
			}
		}
	}
}

func TestSolveColumnsPreservesRestState(tst *testing.T) {
	chk.PrintTitle("SolveColumnsPreservesRestState")
	tc := testcase.NewThermalBubble()
	g := newTestGrid(tc, []string{"active", "next", "work1", "work2"})
	if err := g.EvaluateTestCase("active", 0, tc); err != nil {
		tst.Fatalf("EvaluateTestCase failed: %v", err)
	}
	before := g.Patches[0].Slot("active")
	massBefore := 0.0
	for k := range before.Node[eqset.Rho] {
		for i := range before.Node[eqset.Rho][k] {
			for j := range before.Node[eqset.Rho][k][i] {
				massBefore += before.Node[eqset.Rho][k][i][j]
			}
		}
	}
	o := New(g, DefaultConfig(0.1))
	if err := o.SolveColumns("active", "next", 0.1, true); err != nil {
		tst.Fatalf("SolveColumns failed: %v", err)
	}
	after := g.Patches[0].Slot("next")
	massAfter := 0.0
	for k := range after.Node[eqset.Rho] {
		for i := range after.Node[eqset.Rho][k] {
			for j := range after.Node[eqset.Rho][k][i] {
				massAfter += after.Node[eqset.Rho][k][i][j]
			}
		}
	}
	if math.Abs(massAfter-massBefore) > 0.05*math.Abs(massBefore) {
		tst.Fatalf("expected density sum to stay close over a small implicit step: before=%v after=%v", massBefore, massAfter)
	}
}
