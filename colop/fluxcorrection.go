// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colop

import "github.com/cpmech/dynacore/quad"

// DerivFluxCorrection builds the discontinuous-Galerkin derivative operator
// on the node (discontinuous) representation (§4.2, "derivative operator -
// flux-correction method"): the local strong derivative plus a correction
// term built from the right-Radau flux-correction function of order p+1,
// blending edge-extrapolated one-sided values into a single averaged flux
// at internal element edges (a simple, unweighted average of the two sides)
// or a one-sided value at
// domain boundaries unless fZeroBoundaries is set with a single element.
func (o *Layout) DerivFluxCorrection(fZeroBoundaries bool) *Operator {
	n := o.NNode()
	op := &Operator{NIn: n}

	// one-sided edge-extrapolated rows (value at element boundary expressed
	// in terms of the element's own node DOFs), used to build averaged fluxes
	leftEdge := make([]Row, o.NElem)  // value at ElemBounds[e] from element e
	rightEdge := make([]Row, o.NElem) // value at ElemBounds[e+1] from element e
	for e := 0; e < o.NElem; e++ {
		pts := o.ElemNodes[e]
		base := o.NodeIndex(e, 0)
		leftEdge[e] = Row{Begin: base, End: base + len(pts), Coeffs: quad.InterpCoeffs(pts, o.ElemBounds[e])}
		rightEdge[e] = Row{Begin: base, End: base + len(pts), Coeffs: quad.InterpCoeffs(pts, o.ElemBounds[e+1])}
	}

	// averaged flux at each global interface (continuous uhat); internal
	// edges are tangent-weighted (here: simple average), domain boundaries
	// are one-sided unless fZeroBoundaries && NElem==1
	avgFlux := make([]Row, o.NInterface())
	for k := 0; k < o.NInterface(); k++ {
		switch {
		case k == 0:
			if fZeroBoundaries && o.NElem == 1 {
				avgFlux[k] = scaleRow(leftEdge[0], 0) // zero BC: flux pinned to zero contribution
			} else {
				avgFlux[k] = leftEdge[0]
			}
		case k == o.NInterface()-1:
			e := o.NElem - 1
			if fZeroBoundaries && o.NElem == 1 {
				avgFlux[k] = scaleRow(rightEdge[e], 0)
			} else {
				avgFlux[k] = rightEdge[e]
			}
		default:
			avgFlux[k] = blendRows(rightEdge[k-1], 0.5, leftEdge[k], 0.5)
		}
	}

	for e := 0; e < o.NElem; e++ {
		pts := o.ElemNodes[e]
		np := len(pts)
		dx := o.ElemBounds[e+1] - o.ElemBounds[e]
		base := o.NodeIndex(e, 0)

		// local strong derivative multiplied by the element width, then the
		// edge corrections added, and the whole row divided by dx at the end
		// to restore units
		for i := 0; i < np; i++ {
			localD := quad.DerivCoeffs(pts, pts[i])
			row := scaleRow(Row{Begin: base, End: base + np, Coeffs: localD}, dx)

			// reference coordinate of node i within [-1,1]
			xiNode := 2*(pts[i]-o.ElemBounds[e])/dx - 1.0
			gprimeAtNodeFromLeft := radauLeftDeriv(o.P, xiNode)
			gprimeAtNodeFromRight := quad.RadauRightDeriv(o.P, xiNode)

			// uhat - ubar contributions at the two edges of this element
			uhatL := avgFlux[e]
			uhatR := avgFlux[e+1]
			uL := leftEdge[e]
			uR := rightEdge[e]

			corrL := blendRows(uhatL, 0.5*gprimeAtNodeFromLeft, uL, -0.5*gprimeAtNodeFromLeft)
			corrR := blendRows(uhatR, -0.5*gprimeAtNodeFromRight, uR, 0.5*gprimeAtNodeFromRight)

			row = addRows(row, corrL)
			row = addRows(row, corrR)
			row = scaleRow(row, 1.0/dx)
			op.Rows = append(op.Rows, row)
		}
	}
	return op
}

// radauLeftDeriv evaluates the derivative of the left-Radau correction
// function, g_L(xi) = (-1)^p*g_p(-xi) reflected, used for the lower edge of
// an element (the flux-correction family is symmetric about xi=0).
func radauLeftDeriv(p int, xi float64) float64 {
	return -quad.RadauRightDeriv(p, -xi)
}

func scaleRow(r Row, s float64) Row {
	coeffs := make([]float64, len(r.Coeffs))
	for i, c := range r.Coeffs {
		coeffs[i] = c * s
	}
	return Row{Begin: r.Begin, End: r.End, Coeffs: coeffs}
}

func addRows(a, b Row) Row {
	begin := a.Begin
	if b.Begin < begin {
		begin = b.Begin
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	coeffs := make([]float64, end-begin)
	for i := a.Begin; i < a.End; i++ {
		coeffs[i-begin] += a.Coeffs[i-a.Begin]
	}
	for i := b.Begin; i < b.End; i++ {
		coeffs[i-begin] += b.Coeffs[i-b.Begin]
	}
	return Row{Begin: begin, End: end, Coeffs: coeffs}
}
