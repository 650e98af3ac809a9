// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestGllWeightsSumToIntervalLength(tst *testing.T) {
	//verbose()
	chk.PrintTitle("GllWeightsSumToIntervalLength")
	for p := MinOrder; p <= MaxOrder; p++ {
		w := Weights(p, 2.0, 7.0)
		sum := 0.0
		for _, wi := range w {
			sum += wi
		}
		chk.Float64(tst, "sum(w)", 1e-12, sum, 5.0)
	}
}

func TestGllPointsEndpoints(tst *testing.T) {
	chk.PrintTitle("GllPointsEndpoints")
	for p := MinOrder; p <= MaxOrder; p++ {
		x := Points(p, -1.0, 1.0)
		chk.Float64(tst, "x[0]", 1e-14, x[0], -1.0)
		chk.Float64(tst, "x[n-1]", 1e-14, x[len(x)-1], 1.0)
	}
}

func TestLagrangeCoeffsPartitionOfUnity(tst *testing.T) {
	chk.PrintTitle("LagrangeCoeffsPartitionOfUnity")
	x := Points(4, 0.0, 1.0)
	for _, xs := range []float64{0.1, 0.37, 0.92} {
		L := InterpCoeffs(x, xs)
		sum := 0.0
		for _, v := range L {
			sum += v
		}
		chk.Float64(tst, "sum(L)", 1e-11, sum, 1.0)
	}
}

func TestLagrangeDerivSumsToZero(tst *testing.T) {
	chk.PrintTitle("LagrangeDerivSumsToZero")
	x := Points(5, -1.0, 1.0)
	for _, xs := range []float64{-0.8, 0.0, 0.5} {
		Lp := DerivCoeffs(x, xs)
		sum := 0.0
		for _, v := range Lp {
			sum += v
		}
		chk.Float64(tst, "sum(L')", 1e-10, sum, 0.0)
	}
}
