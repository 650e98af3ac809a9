// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colop

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/quad"
)

// Rep identifies a vertical representation: discontinuous per-element nodes
// or continuous element-boundary interfaces (§3 "Vertical staggering").
type Rep int

const (
	Nodes Rep = iota
	Interfaces
)

// samplesInElement returns the source locations of element e in the given
// representation and the input-array index of the first of them.
func (o *Layout) samplesInElement(e int, in Rep) (pts []float64, begin int) {
	switch in {
	case Nodes:
		return o.ElemNodes[e], o.NodeIndex(e, 0)
	case Interfaces:
		return []float64{o.ElemBounds[e], o.ElemBounds[e+1]}, e
	}
	chk.Panic("colop: unknown vertical representation %v", in)
	return nil, 0
}

// Interp builds the interpolation ("FEM") operator mapping the given input
// representation to sample locations "out" (which may themselves be a Nodes
// or Interfaces array of a -- possibly different -- Layout), per §4.2.
// zeroBoundaries, when true, leaves the rows at the global top and bottom
// identically zero (used to enforce a Dirichlet condition downstream).
func (o *Layout) Interp(in Rep, out []float64, zeroBoundaries bool) *Operator {
	nIn := o.NNode()
	if in == Interfaces {
		nIn = o.NInterface()
	}
	op := &Operator{NIn: nIn}
	for l, xo := range out {
		if zeroBoundaries && (l == 0 || l == len(out)-1) {
			op.Rows = append(op.Rows, Row{Begin: 0, End: 0})
			continue
		}
		op.Rows = append(op.Rows, o.interpRow(in, xo))
	}
	return op
}

// interpRow builds one row of the interpolation operator, blending the two
// one-sided interpolants at internal element interfaces per §4.2's
// error-weighted average.
func (o *Layout) interpRow(in Rep, xo float64) Row {
	elem, onIface := o.FindElement(xo)
	if !onIface || elem >= o.NElem-1 {
		return o.onesidedInterpRow(in, elem, xo)
	}
	// average the left element's and right element's one-sided interpolants
	left := o.onesidedInterpRow(in, elem, xo)
	right := o.onesidedInterpRow(in, elem+1, xo)
	dL := o.ElemBounds[elem+1] - o.ElemBounds[elem]
	dR := o.ElemBounds[elem+2] - o.ElemBounds[elem+1]
	p := float64(o.P)
	wL := pow(dR, p) / (pow(dL, p) + pow(dR, p))
	wR := pow(dL, p) / (pow(dL, p) + pow(dR, p))
	return blendRows(left, wL, right, wR)
}

// onesidedInterpRow builds the Lagrange row over the samples of a single
// element containing xo.
func (o *Layout) onesidedInterpRow(in Rep, e int, xo float64) Row {
	pts, begin := o.samplesInElement(e, in)
	coeffs := quad.InterpCoeffs(pts, xo)
	return Row{Begin: begin, End: begin + len(coeffs), Coeffs: coeffs}
}

// blendRows combines two rows with possibly disjoint supports into one row
// spanning their union, weighted wL*left + wR*right.
func blendRows(left Row, wL float64, right Row, wR float64) Row {
	begin := left.Begin
	if right.Begin < begin {
		begin = right.Begin
	}
	end := left.End
	if right.End > end {
		end = right.End
	}
	coeffs := make([]float64, end-begin)
	for i := left.Begin; i < left.End; i++ {
		coeffs[i-begin] += wL * left.Coeffs[i-left.Begin]
	}
	for i := right.Begin; i < right.End; i++ {
		coeffs[i-begin] += wR * right.Coeffs[i-right.Begin]
	}
	return Row{Begin: begin, End: end, Coeffs: coeffs}
}

func pow(x float64, n float64) float64 {
	r := 1.0
	for i := 0; i < int(n); i++ {
		r *= x
	}
	return r
}
