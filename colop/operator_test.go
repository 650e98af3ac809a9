// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colop

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func uniformBounds(n int) []float64 {
	b := make([]float64, n+1)
	for i := range b {
		b[i] = float64(i) / float64(n)
	}
	return b
}

func TestDerivFluxCorrectionZeroOnConstant(tst *testing.T) {
	chk.PrintTitle("DerivFluxCorrectionZeroOnConstant")
	lay := NewLayout(4, uniformBounds(6))
	D := lay.DerivFluxCorrection(false)
	in := make([]float64, lay.NNode())
	for i := range in {
		in[i] = 3.5
	}
	out := D.Apply(in)
	for _, v := range out {
		chk.Float64(tst, "D(const)", 1e-9, v, 0.0)
	}
}

func TestDerivFluxCorrectionLinear(tst *testing.T) {
	chk.PrintTitle("DerivFluxCorrectionLinear")
	lay := NewLayout(4, uniformBounds(6))
	D := lay.DerivFluxCorrection(false)
	slope := 2.3
	in := make([]float64, lay.NNode())
	for e := 0; e < lay.NElem; e++ {
		for j, x := range lay.ElemNodes[e] {
			in[lay.NodeIndex(e, j)] = slope * x
		}
	}
	out := D.Apply(in)
	for _, v := range out {
		chk.Float64(tst, "D(linear)", 1e-8, v, slope)
	}
}

func TestInterpRowsSumToOne(tst *testing.T) {
	chk.PrintTitle("InterpRowsSumToOne")
	lay := NewLayout(3, uniformBounds(5))
	out := []float64{0.02, 0.21, 0.5, 0.77, 0.99}
	op := lay.Interp(Nodes, out, false)
	for _, row := range op.Rows {
		sum := 0.0
		for _, c := range row.Coeffs {
			sum += c
		}
		chk.Float64(tst, "sum(row)", 1e-10, sum, 1.0)
	}
}

func TestOperatorRoundTrip(tst *testing.T) {
	// interp node->interface then diff interface->node; apply to sin(pi*reta)
	chk.PrintTitle("OperatorRoundTrip")
	lay := NewLayout(4, uniformBounds(4))
	toIface := lay.Interp(Nodes, lay.ElemBounds, false)
	diffBack := lay.DerivInterface(Interfaces, flattenNodes(lay))

	in := make([]float64, lay.NNode())
	for e := 0; e < lay.NElem; e++ {
		for j, x := range lay.ElemNodes[e] {
			in[lay.NodeIndex(e, j)] = math.Sin(math.Pi * x)
		}
	}
	iface := toIface.Apply(in)
	out := diffBack.Apply(iface)
	for e := 0; e < lay.NElem; e++ {
		for j, x := range lay.ElemNodes[e] {
			want := math.Pi * math.Cos(math.Pi*x)
			chk.Float64(tst, "pi*cos(pi*reta)", 1e-3, out[lay.NodeIndex(e, j)], want)
		}
	}
}

func flattenNodes(lay *Layout) []float64 {
	out := make([]float64, lay.NNode())
	for e := 0; e < lay.NElem; e++ {
		for j, x := range lay.ElemNodes[e] {
			out[lay.NodeIndex(e, j)] = x
		}
	}
	return out
}
