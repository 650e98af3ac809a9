// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package quad implements the pure-function numerical kernels shared by the
// column operators: Gauss-Lobatto-Legendre points and weights, barycentric
// Lagrange interpolation and differentiation coefficients, and the
// right-Radau flux-correction function used by the discontinuous-Galerkin
// derivative operator.
package quad

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// MaxOrder is the highest supported GLL order (§4.1)
const MaxOrder = 8

// MinOrder is the lowest supported GLL order; order 1 is the two-endpoint
// rule used by single-order vertical columns (2D slices)
const MinOrder = 1

// Points returns the p+1 GLL points on [-1,1] for order p (1<=p<=8), found
// by Newton's method applied to (1-x^2) P'_p(x) = 0 with the Legendre
// recursion, then maps them onto [a,b].
func Points(p int, a, b float64) []float64 {
	if p < MinOrder || p > MaxOrder {
		chk.Panic("GLL order must be in [%d,%d]; p=%d is out of range", MinOrder, MaxOrder, p)
	}
	n := p + 1
	x := make([]float64, n)
	x[0] = -1
	x[n-1] = 1
	if n > 2 {
		interior := gllInteriorRoots(p)
		for i, v := range interior {
			x[i+1] = v
		}
	}
	for i := range x {
		x[i] = 0.5*(1-x[i])*a + 0.5*(1+x[i])*b
	}
	return x
}

// Weights returns the GLL quadrature weights on [a,b] for order p, satisfying
// sum(w) = b-a (§4.1 numerical policy).
func Weights(p int, a, b float64) []float64 {
	if p < MinOrder || p > MaxOrder {
		chk.Panic("GLL order must be in [%d,%d]; p=%d is out of range", MinOrder, MaxOrder, p)
	}
	n := p + 1
	xi := Points(p, -1, 1)
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		Lp := legendre(p, xi[i])
		w[i] = 2.0 / (float64(p*(p+1)) * Lp * Lp)
	}
	scale := (b - a) / 2.0
	for i := range w {
		w[i] *= scale
	}
	return w
}

// legendre evaluates the Legendre polynomial P_n at x via the three-term
// recurrence.
func legendre(n int, x float64) float64 {
	if n == 0 {
		return 1
	}
	if n == 1 {
		return x
	}
	p0, p1 := 1.0, x
	for k := 2; k <= n; k++ {
		p2 := ((2*float64(k)-1)*x*p1 - (float64(k)-1)*p0) / float64(k)
		p0, p1 = p1, p2
	}
	return p1
}

// legendreDeriv evaluates P'_n(x); at the endpoints x=+-1, where the
// closed form below is 0/0, it returns P'_n(+-1) = (+-1)^(n+1) n(n+1)/2.
func legendreDeriv(n int, x float64) float64 {
	if n == 0 {
		return 0
	}
	if 1-math.Abs(x) < 1e-12 {
		d := float64(n*(n+1)) / 2
		if x < 0 && n%2 == 0 {
			d = -d
		}
		return d
	}
	return float64(n) / (x*x - 1) * (x*legendre(n, x) - legendre(n-1, x))
}

// gllInteriorRoots finds the p-1 interior roots of P'_p, i.e. of
// (1-x^2)P'_p(x)=0 restricted to (-1,1), by Newton iteration from Chebyshev
// starting guesses.
func gllInteriorRoots(p int) []float64 {
	roots := make([]float64, p-1)
	for i := 1; i < p; i++ {
		x := -math.Cos(math.Pi * float64(i) / float64(p)) // Chebyshev-Gauss-Lobatto seed
		for it := 0; it < 100; it++ {
			f := legendreDeriv(p, x)
			// second derivative via the Legendre ODE: (1-x^2)P'' = 2x P' - p(p+1) P
			d2 := (2*x*legendreDeriv(p, x) - float64(p*(p+1))*legendre(p, x)) / (1 - x*x)
			dx := -f / d2
			x += dx
			if math.Abs(dx) < 1e-15 {
				break
			}
		}
		roots[i-1] = x
	}
	return roots
}
