// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/phys"
	"github.com/cpmech/dynacore/testcase"
)

func newTestGridSinglePatch() (*Grid, testcase.TestCase) {
	tc := testcase.NewThermalBubble()
	g := New(Config{
		Phys:     phys.NewEarth(38.5),
		Bounds:   Bounds{XMin: 0, XMax: 1000, YMin: 0, YMax: 1000, ZMin: 0, ZMax: tc.Ztop},
		Stagger:  LEVELS,
		VelRep:   Contravariant,
		Ph:       3,
		Pv:       3,
		NElemA:   2,
		NElemB:   2,
		NElemV:   2,
		Halo:     1,
		NPatchA:  1,
		NPatchB:  1,
		LateralA: Reflective,
		LateralB: Reflective,
		Dim:      3,
	})
	g.InitializeData([]string{"active", "work1", "work2", "work3"}, 1)
	if err := g.EvaluateTopography(tc); err != nil {
		panic(err)
	}
	if err := g.EvaluateGeometricTerms(tc.GetZtop()); err != nil {
		panic(err)
	}
	if err := g.EvaluateTestCase("active", 0, tc); err != nil {
		panic(err)
	}
	return g, tc
}

func TestEvaluateTestCaseProducesFiniteState(tst *testing.T) {
	chk.PrintTitle("EvaluateTestCaseProducesFiniteState")
	g, _ := newTestGridSinglePatch()
	s := g.Patches[0].Slot("active")
	for c := eqset.Component(0); c < eqset.NComponents; c++ {
		for k := range s.Node[c] {
			for i := range s.Node[c][k] {
				for j := range s.Node[c][k][i] {
					v := s.Node[c][k][i][j]
					if math.IsNaN(v) || math.IsInf(v, 0) {
						tst.Fatalf("component %d at (k,i,j)=(%d,%d,%d) is not finite: %v", c, k, i, j, v)
					}
				}
			}
		}
	}
	for k := range s.Node[eqset.Rho] {
		for i := range s.Node[eqset.Rho][k] {
			for j := range s.Node[eqset.Rho][k][i] {
				if s.Node[eqset.Rho][k][i][j] <= 0 {
					tst.Fatalf("expected positive density at (k,i,j)=(%d,%d,%d), got %v", k, i, j, s.Node[eqset.Rho][k][i][j])
				}
			}
		}
	}
}

func TestApplyDSSIsIdempotent(tst *testing.T) {
	chk.PrintTitle("ApplyDSSIsIdempotent")
	g, _ := newTestGridSinglePatch()
	g.ApplyDSS("active")
	s := g.Patches[0].Slot("active")
	before := cloneSlotRho(s)
	g.ApplyDSS("active")
	after := cloneSlotRho(s)
	for k := range before {
		for i := range before[k] {
			for j := range before[k][i] {
				chk.Float64(tst, "rho unchanged by second DSS pass", 1e-12, after[k][i][j], before[k][i][j])
			}
		}
	}
}

func cloneSlotRho(s *StateSlot) [][][]float64 {
	out := make([][][]float64, len(s.Node[eqset.Rho]))
	for k := range s.Node[eqset.Rho] {
		out[k] = make([][]float64, len(s.Node[eqset.Rho][k]))
		for i := range s.Node[eqset.Rho][k] {
			out[k][i] = append([]float64{}, s.Node[eqset.Rho][k][i]...)
		}
	}
	return out
}

func TestApplyBoundaryConditionsEnforcesNoFlowAtGroundAndLid(tst *testing.T) {
	chk.PrintTitle("ApplyBoundaryConditionsEnforcesNoFlowAtGroundAndLid")
	g, _ := newTestGridSinglePatch()
	g.ApplyBoundaryConditions("active")
	p := g.Patches[0]
	s := p.Slot("active")
	nLevel := len(s.Node[eqset.W])
	for i := 0; i < p.NA; i++ {
		for j := 0; j < p.NB; j++ {
			for _, k := range []int{0, nLevel - 1} {
				met := p.MetricNode[i][j][k]
				dxiZ := p.DxiZNode[i][j][k]
				u := s.Node[eqset.U][k][i][j]
				v := s.Node[eqset.V][k][i][j]
				rho := s.Node[eqset.Rho][k][i][j]
				w := s.Node[eqset.W][k][i][j] / rho
				gXiA, gXiB, gXiXi := met.Gctr[0][1], met.Gctr[0][2], met.Gctr[0][0]
				contraW := gXiXi*dxiZ*w + gXiA*u + gXiB*v
				if math.Abs(contraW) > 1e-9 {
					tst.Fatalf("expected ~zero contravariant velocity through boundary at (k,i,j)=(%d,%d,%d), got %v", k, i, j, contraW)
				}
			}
		}
	}
}
