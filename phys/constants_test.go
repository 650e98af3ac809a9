// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestKappaMatchesRdOverCp(tst *testing.T) {
	chk.PrintTitle("KappaMatchesRdOverCp")
	c := NewEarth(38.5)
	chk.Float64(tst, "kappa", 1e-12, c.Kappa(), c.Rd/c.Cp)
}

func TestCoriolisFVanishesAtEquator(tst *testing.T) {
	chk.PrintTitle("CoriolisFVanishesAtEquator")
	c := NewEarth(0)
	chk.Float64(tst, "f at equator", 1e-12, c.CoriolisF(), 0)
}

func TestCoriolisFPositiveInNorthernHemisphere(tst *testing.T) {
	chk.PrintTitle("CoriolisFPositiveInNorthernHemisphere")
	c := NewEarth(45)
	if c.CoriolisF() <= 0 {
		tst.Fatalf("expected positive Coriolis parameter at 45N, got %v", c.CoriolisF())
	}
}
