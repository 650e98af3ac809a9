// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/grid"
	"github.com/cpmech/dynacore/horiz"
	"github.com/cpmech/dynacore/phys"
	"github.com/cpmech/dynacore/testcase"
	"github.com/cpmech/dynacore/vert"
)

func newTestGrid() *grid.Grid {
	tc := testcase.NewThermalBubble()
	g := grid.New(grid.Config{
		Phys:     phys.NewEarth(38.5),
		Bounds:   grid.Bounds{XMin: 0, XMax: 1000, YMin: 0, YMax: 1000, ZMin: 0, ZMax: tc.Ztop},
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
	slots := []string{"active", "stage1", "stage2", "stage3", "predictor", "hvisc"}
	g.InitializeData(slots, 4)
	if err := g.EvaluateTopography(tc); err != nil {
		panic(err)
	}
	if err := g.EvaluateGeometricTerms(tc.GetZtop()); err != nil {
		panic(err)
	}
	if err := g.EvaluateTestCase("active", 0, tc); err != nil {
		panic(err)
	}
	return g
}

func newTestIntegrator(g *grid.Grid, scheme Scheme) *Integrator {
	h := horiz.New(g, horiz.Config{ReferenceLength: 1000})
	v := vert.New(g, vert.DefaultConfig(1.0))
	return New(g, h, v, Config{Scheme: scheme, DeltaT: 0.5, UseReferenceState: true}, Slots{
		Active:                "active",
		Stage:                 []string{"stage1", "stage2", "stage3"},
		ExpTendency:           []string{"tend0", "tend1", "tend2"},
		ImpTendency:           []string{"tend3", "stage1", "stage2"},
		Predictor:             "predictor",
		HyperviscosityScratch: "hvisc",
	})
}

func totalMass(g *grid.Grid, slotName string) float64 {
	sum := 0.0
	for _, p := range g.Patches {
		s := p.Slot(slotName)
		for k := range s.Node[eqset.Rho] {
			for i := range s.Node[eqset.Rho][k] {
				for j := range s.Node[eqset.Rho][k][i] {
					sum += s.Node[eqset.Rho][k][i][j]
				}
			}
		}
	}
	return sum
}

func TestStrangStepPreservesFiniteState(tst *testing.T) {
	chk.PrintTitle("StrangStepPreservesFiniteState")
	g := newTestGrid()
	it := newTestIntegrator(g, Strang)
	massBefore := totalMass(g, "active")
	if err := it.Step(); err != nil {
		tst.Fatalf("Step failed: %v", err)
	}
	massAfter := totalMass(g, "active")
	if math.IsNaN(massAfter) || math.IsInf(massAfter, 0) {
		tst.Fatalf("expected a finite mass sum after one step, got %v", massAfter)
	}
	if math.Abs(massAfter-massBefore) > 0.1*math.Abs(massBefore) {
		tst.Fatalf("expected mass to stay within 10%% of its initial value over one small step: before=%v after=%v", massBefore, massAfter)
	}
}

func TestARK2StepMatchesActiveSlotContract(tst *testing.T) {
	chk.PrintTitle("ARK2StepMatchesActiveSlotContract")
	g := newTestGrid()
	it := newTestIntegrator(g, ARK2Scheme)
	if err := it.Step(); err != nil {
		tst.Fatalf("Step failed: %v", err)
	}
	active := g.Patches[0].Slot("active")
	for k := range active.Node[eqset.Rho] {
		for i := range active.Node[eqset.Rho][k] {
			for j := range active.Node[eqset.Rho][k][i] {
				if active.Node[eqset.Rho][k][i][j] <= 0 {
					tst.Fatalf("expected positive density at (k,i,j)=(%d,%d,%d) after one ARK2 step, got %v",
						k, i, j, active.Node[eqset.Rho][k][i][j])
				}
			}
		}
	}
}

func TestTableauConsistency(tst *testing.T) {
	chk.PrintTitle("TableauConsistency")
	for _, t := range []Tableau{ARK2(), ARK3(), ARK4()} {
		n := t.NStages()
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j <= i; j++ {
				sum += t.AImp[i][j]
			}
			for j := i + 1; j < n; j++ {
				sum += t.AExp[i][j]
			}
			for j := 0; j < i; j++ {
				sum += t.AExp[i][j]
			}
			_ = sum
			rowExp, rowImp := 0.0, 0.0
			for j := 0; j < n; j++ {
				rowExp += t.AExp[i][j]
				rowImp += t.AImp[i][j]
			}
			chk.Float64(tst, t.Name+" explicit row sum", 1e-12, rowExp, t.C[i])
			chk.Float64(tst, t.Name+" implicit row sum", 1e-12, rowImp, t.C[i])
		}
		bExpSum, bImpSum := 0.0, 0.0
		for i := 0; i < n; i++ {
			bExpSum += t.BExp[i]
			bImpSum += t.BImp[i]
		}
		chk.Float64(tst, t.Name+" explicit weights sum to 1", 1e-12, bExpSum, 1)
		chk.Float64(tst, t.Name+" implicit weights sum to 1", 1e-12, bImpSum, 1)
	}
}
