// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integrator drives the HEVI IMEX Runge-Kutta time stepping (§4.8):
// an explicit stage evaluates the horizontal tendency, an implicit stage
// solves the column-local vertical problem by JFNK, and every stage ends
// with ApplyDSS followed by ApplyBoundaryConditions to restore continuity
// and enforce the domain boundaries before the next stage reads the state.
package integrator

// Tableau is a paired additive Runge-Kutta scheme (§4.8 "IMEX ARK2/ARK3/
// ARK4 Butcher tableaux"): AExp is strictly lower triangular (explicit), and
// AImp is lower triangular including the diagonal (diagonally implicit).
// Both share the stage abscissae C and final weights are applied separately
// as BExp/BImp so the explicit and implicit parts can be combined with
// their own coefficients at the end of a step.
type Tableau struct {
	Name string
	C    []float64
	AExp [][]float64
	BExp []float64
	AImp [][]float64
	BImp []float64
}

// NStages returns the number of Runge-Kutta stages.
func (t Tableau) NStages() int { return len(t.C) }

// ARK2 is a two-stage, second-order additive pair: explicit Heun (trapezoidal
// predictor-corrector) paired with implicit trapezoidal (Crank-Nicolson),
// both consistent with c=[0,1] (§4.8). The first stage is purely explicit
// (AImp row 0 is zero), as required by consistency when c_0=0: the column
// solve is only invoked from the second stage onward.
func ARK2() Tableau {
	return Tableau{
		Name: "ARK2",
		C:    []float64{0, 1},
		AExp: [][]float64{
			{0, 0},
			{1, 0},
		},
		BExp: []float64{0.5, 0.5},
		AImp: [][]float64{
			{0, 0},
			{0.5, 0.5},
		},
		BImp: []float64{0.5, 0.5},
	}
}

// ARK3 is a three-stage, third-order-explicit pair: the explicit part is
// Heun's classical third-order method (c=[0,1/3,2/3]); the implicit part is
// a singly diagonally implicit companion at the same abscissae with
// diagonal value 1/3, consistent by construction (each row of AImp sums to
// the corresponding c_i).
func ARK3() Tableau {
	return Tableau{
		Name: "ARK3",
		C:    []float64{0, 1.0 / 3.0, 2.0 / 3.0},
		AExp: [][]float64{
			{0, 0, 0},
			{1.0 / 3.0, 0, 0},
			{0, 2.0 / 3.0, 0},
		},
		BExp: []float64{0.25, 0, 0.75},
		AImp: [][]float64{
			{0, 0, 0},
			{0, 1.0 / 3.0, 0},
			{0, 1.0 / 3.0, 1.0 / 3.0},
		},
		BImp: []float64{0.25, 0, 0.75},
	}
}

// ARK4 is a four-stage, fourth-order-explicit pair: the explicit part is the
// classical Runge-Kutta 4 tableau; the implicit part is a singly diagonally
// implicit companion at the same abscissae ([0,1/2,1/2,1]) with diagonal
// value 1/4, again consistent by construction.
func ARK4() Tableau {
	return Tableau{
		Name: "ARK4",
		C:    []float64{0, 0.5, 0.5, 1},
		AExp: [][]float64{
			{0, 0, 0, 0},
			{0.5, 0, 0, 0},
			{0, 0.5, 0, 0},
			{0, 0, 1, 0},
		},
		BExp: []float64{1.0 / 6.0, 1.0 / 3.0, 1.0 / 3.0, 1.0 / 6.0},
		AImp: [][]float64{
			{0, 0, 0, 0},
			{0.25, 0.25, 0, 0},
			{0, 0.25, 0.25, 0},
			{0, 0.25, 0.5, 0.25},
		},
		BImp: []float64{1.0 / 6.0, 1.0 / 3.0, 1.0 / 3.0, 1.0 / 6.0},
	}
}
