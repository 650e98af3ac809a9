// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colop

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/dynacore/quad"
)

// DerivInterface builds the "interface method" first-derivative operator
// (§4.2): differentiate the linear interpolant through the two interface
// points that bound the element containing each output location, blending
// one-sided derivatives at internal element edges with the same
// error-weighting used by Interp. The derivative is therefore constant
// within an element; no higher-degree polynomial through more interface
// points is used. If in==Nodes, the interpolation operator to Interfaces is
// composed in first.
func (o *Layout) DerivInterface(in Rep, out []float64) *Operator {
	op := &Operator{NIn: o.NInterface()}
	for _, xo := range out {
		op.Rows = append(op.Rows, o.derivInterfaceRow(xo))
	}
	if in == Nodes {
		toIface := o.Interp(Nodes, o.ElemBounds, false)
		return Compose(toIface, op)
	}
	return op
}

func (o *Layout) derivInterfaceRow(xo float64) Row {
	elem, onIface := o.FindElement(xo)
	if !onIface || elem >= o.NElem-1 {
		return o.onesidedDerivRow(elem, xo)
	}
	left := o.onesidedDerivRow(elem, xo)
	right := o.onesidedDerivRow(elem+1, xo)
	dL := o.ElemBounds[elem+1] - o.ElemBounds[elem]
	dR := o.ElemBounds[elem+2] - o.ElemBounds[elem+1]
	p := float64(o.P)
	wL := pow(dR, p) / (pow(dL, p) + pow(dR, p))
	wR := pow(dL, p) / (pow(dL, p) + pow(dR, p))
	return blendRows(left, wL, right, wR)
}

func (o *Layout) onesidedDerivRow(e int, xo float64) Row {
	pts := []float64{o.ElemBounds[e], o.ElemBounds[e+1]}
	coeffs := quad.DerivCoeffs(pts, xo)
	return Row{Begin: e, End: e + 2, Coeffs: coeffs}
}

// SecondDeriv assembles the GLL second-derivative operator on the node
// (discontinuous) representation as D2 = -M^-1 (D^T M D) per element, each
// element's block placed on its own nodes. Elements are not coupled: no
// doubled shared-interface mass weight is applied on contact nodes and no
// +-D_boundary/W_boundary flux terms are added at the global top/bottom.
func (o *Layout) SecondDeriv() *Operator {
	n := o.NNode()
	dense := make([][]float64, n)
	for i := range dense {
		dense[i] = make([]float64, n)
	}
	for e := 0; e < o.NElem; e++ {
		pts := o.ElemNodes[e]
		np := len(pts)
		w := quad.Weights(o.P, o.ElemBounds[e], o.ElemBounds[e+1])
		// local D: D[i][j] = L'_j(x_i)
		D := make([][]float64, np)
		for i := 0; i < np; i++ {
			D[i] = quad.DerivCoeffs(pts, pts[i])
		}
		// D2_local = -M^-1 (D^T M D), M diagonal with entries w, assembled the
		// same way the teacher's element routines build K += coef*tr(B)*D*B
		// (la.MatTrMulAdd3) out of a strain-displacement matrix and a
		// constitutive matrix.
		Wdiag := la.MatAlloc(np, np)
		for k := 0; k < np; k++ {
			Wdiag[k][k] = w[k]
		}
		local := la.MatAlloc(np, np)
		la.MatTrMulAdd3(local, 1, D, Wdiag, D)
		base := o.NodeIndex(e, 0)
		for i := 0; i < np; i++ {
			la.VecScale(local[i], 0, -1/w[i], local[i])
			for j := 0; j < np; j++ {
				dense[base+i][base+j] += local[i][j]
			}
		}
	}
	op := &Operator{NIn: n}
	for i := 0; i < n; i++ {
		begin, end := 0, n
		for begin < n && dense[i][begin] == 0 {
			begin++
		}
		for end > begin && dense[i][end-1] == 0 {
			end--
		}
		coeffs := append([]float64{}, dense[i][begin:end]...)
		op.Rows = append(op.Rows, Row{Begin: begin, End: end, Coeffs: coeffs})
	}
	return op
}
