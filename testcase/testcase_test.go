// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testcase

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/phys"
)

func TestThermalBubbleAddsPositivePerturbationAtCenter(tst *testing.T) {
	chk.PrintTitle("ThermalBubbleAddsPositivePerturbationAtCenter")
	tc := NewThermalBubble()
	c := phys.NewEarth(0)
	var ref, pert [5]float64
	tc.EvaluateReferenceState(c, tc.Zc, tc.Xc, 0, &ref)
	tc.EvaluatePointwiseState(c, 0, tc.Zc, tc.Xc, 0, &pert, nil)
	if pert[2] <= ref[2] {
		tst.Fatalf("expected a warm perturbation at the bubble center: ref theta=%v, perturbed theta=%v", ref[2], pert[2])
	}
}

func TestThermalBubbleVanishesOutsideRadius(tst *testing.T) {
	chk.PrintTitle("ThermalBubbleVanishesOutsideRadius")
	tc := NewThermalBubble()
	c := phys.NewEarth(0)
	z := tc.Zc + 10*tc.Rc
	var ref, pert [5]float64
	tc.EvaluateReferenceState(c, z, tc.Xc, 0, &ref)
	tc.EvaluatePointwiseState(c, 0, z, tc.Xc, 0, &pert, nil)
	chk.Float64(tst, "theta unperturbed far from bubble", 1e-12, pert[2], ref[2])
}

func TestThermalBubbleReferenceStateIsHydrostatic(tst *testing.T) {
	chk.PrintTitle("ThermalBubbleReferenceStateIsHydrostatic")
	tc := NewThermalBubble()
	c := phys.NewEarth(0)
	var low, high [5]float64
	tc.EvaluateReferenceState(c, 0, 0, 0, &low)
	tc.EvaluateReferenceState(c, 500, 0, 0, &high)
	if high[4] >= low[4] {
		tst.Fatalf("expected density to decrease with height: rho(0)=%v, rho(500)=%v", low[4], high[4])
	}
	if math.IsNaN(high[4]) || math.IsInf(high[4], 0) {
		tst.Fatalf("expected a finite density, got %v", high[4])
	}
}

func TestInertialGravityWaveHasBackgroundWind(tst *testing.T) {
	chk.PrintTitle("InertialGravityWaveHasBackgroundWind")
	tc := NewInertialGravityWave()
	c := phys.NewEarth(0)
	var out [5]float64
	tc.EvaluateReferenceState(c, 0, 0, 0, &out)
	chk.Float64(tst, "background u matches Ubar", 1e-12, out[0], tc.Ubar)
	chk.Float64(tst, "background v is zero", 1e-12, out[1], 0)
}

func TestBaseDefaultsHaveNoRayleighFriction(tst *testing.T) {
	chk.PrintTitle("BaseDefaultsHaveNoRayleighFriction")
	tc := NewThermalBubble()
	if tc.HasRayleighFriction() {
		tst.Fatalf("expected the thermal bubble test case not to enable Rayleigh friction by default")
	}
	if tc.GetTracerCount() != 0 {
		tst.Fatalf("expected zero tracers by default, got %d", tc.GetTracerCount())
	}
}
