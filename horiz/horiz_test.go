// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package horiz

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

func TestComputeTendencyIsFinite(tst *testing.T) {
	chk.PrintTitle("ComputeTendencyIsFinite")
	tc := testcase.NewThermalBubble()
	g := newTestGrid(tc, []string{"active", "tend", "hvisc", "work"})
	if err := g.EvaluateTestCase("active", 0, tc); err != nil {
		tst.Fatalf("EvaluateTestCase failed: %v", err)
	}
	o := New(g, Config{NuScalar: 0.01, NuDiv: 0.01, ReferenceLength: 1000})
	if err := o.ComputeTendency("active", "tend", "hvisc"); err != nil {
		tst.Fatalf("ComputeTendency failed: %v", err)
	}
	out := g.Patches[0].Slot("tend")
	for c := eqset.Component(0); c < eqset.NComponents; c++ {
		for k := range out.Node[c] {
			for i := range out.Node[c][k] {
				for j := range out.Node[c][k][i] {
					v := out.Node[c][k][i][j]
					if math.IsNaN(v) || math.IsInf(v, 0) {
						tst.Fatalf("tendency component %d at (k,i,j)=(%d,%d,%d) is not finite: %v", c, k, i, j, v)
					}
				}
			}
		}
	}
}

func TestComputeTendencySucceedsWithoutHyperviscosity(tst *testing.T) {
	chk.PrintTitle("ComputeTendencySucceedsWithoutHyperviscosity")
	tc := testcase.NewThermalBubble()
	g := newTestGrid(tc, []string{"active", "tend", "hvisc", "work"})
	if err := g.EvaluateTestCase("active", 0, tc); err != nil {
		tst.Fatalf("EvaluateTestCase failed: %v", err)
	}
	o := New(g, Config{})
	if err := o.ComputeTendency("active", "tend", "hvisc"); err != nil {
		tst.Fatalf("ComputeTendency failed: %v", err)
	}
}
