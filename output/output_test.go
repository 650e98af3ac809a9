// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"math"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/grid"
	"github.com/cpmech/dynacore/phys"
	"github.com/cpmech/dynacore/testcase"
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
	g.InitializeData([]string{"active"}, 1)
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

func TestSampleAndWriteRoundTrip(tst *testing.T) {
	chk.PrintTitle("SampleAndWriteRoundTrip")
	g := newTestGrid()
	dir, err := os.MkdirTemp("", "dynacore-output-test")
	if err != nil {
		tst.Fatalf("MkdirTemp failed: %v", err)
	}
	defer os.RemoveAll(dir)

	w, err := New(g, Config{OutputDir: dir, FnKey: "test", EncType: "gob"})
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	f := w.Sample("active", 1.5, false)
	if err := w.Write(f, 0); err != nil {
		tst.Fatalf("Write failed: %v", err)
	}

	got, err := ReadFrame(dir, "test", "gob", 0)
	if err != nil {
		tst.Fatalf("ReadFrame failed: %v", err)
	}
	chk.Float64(tst, "frame time round-trips", 1e-12, got.Time, f.Time)
	if len(got.Vars["rho"]) != len(f.Vars["rho"]) {
		tst.Fatalf("expected %d patches of rho, got %d", len(f.Vars["rho"]), len(got.Vars["rho"]))
	}
}

func TestSampleSubtractsReferenceState(tst *testing.T) {
	chk.PrintTitle("SampleSubtractsReferenceState")
	g := newTestGrid()
	w, err := New(g, Config{OutputDir: tst.TempDir(), FnKey: "test", EncType: "gob"})
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	raw := w.Sample("active", 0, false)
	perturbed := w.Sample("active", 0, true)
	rawRho := raw.Vars["rho"][0][0][0][0]
	perturbedRho := perturbed.Vars["rho"][0][0][0][0]
	// far from the bubble the state is close to the reference, so
	// subtracting it should shrink the sampled magnitude sharply
	if math.Abs(perturbedRho) >= math.Abs(rawRho) {
		tst.Fatalf("expected reference-state subtraction to shrink the far-field value: raw=%v subtracted=%v", rawRho, perturbedRho)
	}
}
