// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

// RadauRightDeriv evaluates g'(xi) for the right-Radau flux-correction
// function of order p+1 used by the discontinuous-Galerkin derivative
// operator (§4.2, "derivative operator - flux-correction method"). Only the
// "type 2" (right Radau) family is implemented; Huynh's parameter space has
// other families but the active code path only exercises this one.
//
// g_p(xi) = (-1)^p / 2 * ( P_p(xi) - P_{p+1}(xi) )
//
// on the reference interval xi in [-1,1], with P_n the Legendre polynomial
// of degree n. Its derivative is obtained from the Legendre derivative
// recursion used in gll.go.
func RadauRightDeriv(p int, xi float64) float64 {
	sign := 1.0
	if p%2 == 1 {
		sign = -1.0
	}
	return 0.5 * sign * (legendreDeriv(p, xi) - legendreDeriv(p+1, xi))
}

// RadauRight evaluates g_p(xi) itself (used when constructing correction
// weights that require the function value rather than the derivative).
func RadauRight(p int, xi float64) float64 {
	sign := 1.0
	if p%2 == 1 {
		sign = -1.0
	}
	return 0.5 * sign * (legendre(p, xi) - legendre(p+1, xi))
}
