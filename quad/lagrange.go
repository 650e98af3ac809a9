// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import "github.com/cpmech/gosl/chk"

// InterpCoeffs returns the barycentric Lagrange interpolation coefficients
// L_i(xStar) for i=0..n-1, given n sample points x. By construction
// sum(L_i(xStar)) == 1 for any xStar (§4.1 invariant).
func InterpCoeffs(x []float64, xStar float64) []float64 {
	n := len(x)
	if n < 2 {
		chk.Panic("InterpCoeffs requires at least 2 sample points; got %d", n)
	}

	// exact hit: avoid the 0/0 barycentric singularity
	for i, xi := range x {
		if xStar == xi {
			L := make([]float64, n)
			L[i] = 1
			return L
		}
	}

	w := barycentricWeights(x)
	num := make([]float64, n)
	den := 0.0
	for i := range x {
		num[i] = w[i] / (xStar - x[i])
		den += num[i]
	}
	L := make([]float64, n)
	for i := range x {
		L[i] = num[i] / den
	}
	return L
}

// DerivCoeffs returns the Lagrange derivative coefficients L'_i(xStar), i.e.
// d/dx of the unique degree-(n-1) interpolant through (x_i) evaluated at
// xStar. By construction sum(L'_i(xStar)) == 0 (§4.1 invariant).
func DerivCoeffs(x []float64, xStar float64) []float64 {
	n := len(x)
	if n < 2 {
		chk.Panic("DerivCoeffs requires at least 2 sample points; got %d", n)
	}
	w := barycentricWeights(x)

	// if xStar coincides with a node, use the standard closed-form row
	for j, xj := range x {
		if xStar == xj {
			Lp := make([]float64, n)
			for i := range x {
				if i == j {
					continue
				}
				Lp[i] = (w[i] / w[j]) / (xj - x[i])
				Lp[j] -= Lp[i]
			}
			return Lp
		}
	}

	// barycentric form (Berrut & Trefethen 2004), for xStar not a node:
	// L'_i(x*) = L_i(x*) * ( s2/s - 1/(x*-x_i) ),
	// s = sum_k w_k/(x*-x_k), s2 = sum_k w_k/(x*-x_k)^2
	L := InterpCoeffs(x, xStar)
	s, s2 := 0.0, 0.0
	for i := range x {
		d := xStar - x[i]
		s += w[i] / d
		s2 += w[i] / (d * d)
	}
	Lp := make([]float64, n)
	for i := range x {
		Lp[i] = L[i] * (s2/s - 1.0/(xStar-x[i]))
	}
	return Lp
}

// barycentricWeights computes the barycentric weights w_i = 1/prod_{j!=i}(x_i-x_j)
func barycentricWeights(x []float64) []float64 {
	n := len(x)
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		w[i] = 1
		for j := 0; j < n; j++ {
			if i != j {
				w[i] /= (x[i] - x[j])
			}
		}
	}
	return w
}
