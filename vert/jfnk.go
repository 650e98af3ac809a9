// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vert

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/dynacore/colop"
	"github.com/cpmech/dynacore/dynerr"
	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/phys"
)

// Config bundles the JFNK/GMRES solver options (§4.7 "Convergence tolerance,
// max iterations, and line-search are solver options").
type Config struct {
	DeltaT     float64
	NewtonTol  float64 // relative residual-norm reduction target
	MaxNewton  int
	MaxGMRES   int     // Krylov subspace size (no restart; columns are small)
	GMRESTol   float64 // relative residual-norm reduction target inside GMRES
	FDEpsilon  float64 // relative finite-difference step for Jacobian-vector products
	LineSearch bool    // halve the Newton step until the residual norm decreases
}

// DefaultConfig returns solver options that are stable for the literal §8
// end-to-end scenarios at their stated time steps.
func DefaultConfig(dt float64) Config {
	return Config{
		DeltaT:     dt,
		NewtonTol:  1e-8,
		MaxNewton:  20,
		MaxGMRES:   40,
		GMRESTol:   1e-10,
		FDEpsilon:  1e-7,
		LineSearch: true,
	}
}

// solveColumn runs Newton's method with GMRES-solved steps to drive R(q)=0
// for one column, starting from qOld as the initial guess (§4.7 "An implicit
// RK stage calls JFNK to solve R(q)=0 for the column's update").
func solveColumn(qOld, dxiZ, sigma, qRef []float64, nLevel int, cfg Config, eq *eqset.EquationSet, phy *phys.Constants, derivOp *colop.Operator) ([]float64, error) {
	q := append([]float64{}, qOld...)
	r := residual(q, qOld, dxiZ, sigma, qRef, nLevel, cfg.DeltaT, eq, phy, derivOp)
	r0 := la.VecNorm(r)
	if r0 == 0 {
		r0 = 1
	}

	for it := 0; it < cfg.MaxNewton; it++ {
		rn := la.VecNorm(r)
		if rn <= cfg.NewtonTol*r0 {
			return q, nil
		}

		matvec := func(v []float64) []float64 {
			return jacVec(q, r, v, qOld, dxiZ, sigma, qRef, nLevel, cfg, eq, phy, derivOp)
		}
		rhs := make([]float64, len(r))
		for i := range rhs {
			rhs[i] = -r[i]
		}
		dq := gmres(matvec, rhs, cfg.MaxGMRES, cfg.GMRESTol, cfg.DeltaT)

		step := 1.0
		var qNext []float64
		var rNext []float64
		for ls := 0; ls < 8; ls++ {
			qNext = make([]float64, len(q))
			for i := range q {
				qNext[i] = q[i] + step*dq[i]
			}
			rNext = residual(qNext, qOld, dxiZ, sigma, qRef, nLevel, cfg.DeltaT, eq, phy, derivOp)
			if !cfg.LineSearch || la.VecNorm(rNext) < rn || step < 1.0/64 {
				break
			}
			step *= 0.5
		}
		q, r = qNext, rNext
	}
	return nil, dynerr.New(dynerr.Solver, "JFNK failed to converge in %d iterations: reduce delta t and retry", cfg.MaxNewton)
}

// jacVec approximates the Jacobian-vector product J*v by a forward
// difference of the residual along v (§4.7 "finite-difference Jacobian-
// vector products").
func jacVec(q, r0, v, qOld, dxiZ, sigma, qRef []float64, nLevel int, cfg Config, eq *eqset.EquationSet, phy *phys.Constants, derivOp *colop.Operator) []float64 {
	vn := la.VecNorm(v)
	if vn == 0 {
		return make([]float64, len(v))
	}
	eps := cfg.FDEpsilon * (1 + la.VecNorm(q)) / vn
	qp := make([]float64, len(q))
	for i := range q {
		qp[i] = q[i] + eps*v[i]
	}
	rp := residual(qp, qOld, dxiZ, sigma, qRef, nLevel, cfg.DeltaT, eq, phy, derivOp)
	out := make([]float64, len(v))
	for i := range out {
		out[i] = (rp[i] - r0[i]) / eps
	}
	return out
}

// gmres solves A x = rhs for the linear operator implied by matvec, using
// right-preconditioning by a scalar approximation of the Jacobian's
// dominant block-diagonal term (1/dt on every component, §4.7 "GMRES with
// right-preconditioning by the analytic block structure"). No restart: a
// column's state vector is small enough that maxIter Krylov vectors fit
// comfortably in memory.
func gmres(matvec func([]float64) []float64, rhs []float64, maxIter int, tol float64, dt float64) []float64 {
	n := len(rhs)
	precond := func(v []float64) []float64 {
		out := make([]float64, n)
		for i := range v {
			out[i] = dt * v[i]
		}
		return out
	}

	beta := la.VecNorm(rhs)
	if beta == 0 {
		return make([]float64, n)
	}
	if maxIter > n {
		maxIter = n
	}

	V := make([][]float64, maxIter+1)
	V[0] = scaleVec(rhs, 1/beta)
	H := make([][]float64, maxIter+1)
	for i := range H {
		H[i] = make([]float64, maxIter)
	}
	cs := make([]float64, maxIter)
	sn := make([]float64, maxIter)
	g := make([]float64, maxIter+1)
	g[0] = beta

	k := 0
	for ; k < maxIter; k++ {
		w := matvec(precond(V[k]))
		for i := 0; i <= k; i++ {
			H[i][k] = la.VecDot(w, V[i])
			w = axpy(w, -H[i][k], V[i])
		}
		H[k+1][k] = la.VecNorm(w)
		if H[k+1][k] > 1e-300 {
			V[k+1] = scaleVec(w, 1/H[k+1][k])
		} else {
			V[k+1] = make([]float64, n)
		}

		for i := 0; i < k; i++ {
			temp := cs[i]*H[i][k] + sn[i]*H[i+1][k]
			H[i+1][k] = -sn[i]*H[i][k] + cs[i]*H[i+1][k]
			H[i][k] = temp
		}
		cs[k], sn[k] = givens(H[k][k], H[k+1][k])
		H[k][k] = cs[k]*H[k][k] + sn[k]*H[k+1][k]
		H[k+1][k] = 0
		g[k+1] = -sn[k] * g[k]
		g[k] = cs[k] * g[k]

		if math.Abs(g[k+1]) < tol*beta {
			k++
			break
		}
	}

	y := make([]float64, k)
	for i := k - 1; i >= 0; i-- {
		sum := g[i]
		for j := i + 1; j < k; j++ {
			sum -= H[i][j] * y[j]
		}
		y[i] = sum / H[i][i]
	}

	z := make([]float64, n)
	for i := 0; i < k; i++ {
		z = axpy(z, y[i], V[i])
	}
	return precond(z)
}

func givens(a, b float64) (c, s float64) {
	if b == 0 {
		return 1, 0
	}
	if math.Abs(b) > math.Abs(a) {
		t := a / b
		s = 1 / math.Sqrt(1+t*t)
		c = s * t
	} else {
		t := b / a
		c = 1 / math.Sqrt(1+t*t)
		s = c * t
	}
	return
}

func scaleVec(v []float64, s float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = s * x
	}
	return out
}

func axpy(y []float64, a float64, x []float64) []float64 {
	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] + a*x[i]
	}
	return out
}
