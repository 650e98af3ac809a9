// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqset

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/phys"
)

func TestConvertComponentsRoundTrip(tst *testing.T) {
	chk.PrintTitle("ConvertComponentsRoundTrip")
	eq := New(phys.NewEarth(38.5), 3)
	prim := [NComponents]float64{U: 5.0, V: -2.0, Theta: 300.0, W: 0.1, Rho: 1.1}
	cons := eq.ToConservative(prim)
	back := eq.ToPrimitive(cons)
	for c := Component(0); c < NComponents; c++ {
		chk.Float64(tst, "round-trip", 1e-12, back[c], prim[c])
	}
}

func TestPressurePositive(tst *testing.T) {
	chk.PrintTitle("PressurePositive")
	eq := New(phys.NewEarth(38.5), 3)
	p := eq.Pressure(1.1, 300.0)
	if p <= 0 {
		tst.Fatalf("expected positive pressure, got %v", p)
	}
	c2 := eq.SoundSpeedSq(1.1, 300.0)
	if c2 <= 0 {
		tst.Fatalf("expected positive sound-speed squared, got %v", c2)
	}
}
