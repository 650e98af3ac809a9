// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vert

import (
	"github.com/cpmech/dynacore/colop"
	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/phys"
)

// residual assembles R(q) for one column (§4.7): vertical advection via the
// column derivative operator, the hydrostatic pressure-gradient/gravity
// coupling between theta, rho and w, and Rayleigh friction dq/dt +=
// -sigma(z)*(q - q_ref) applied uniformly to every component.
func residual(q, qOld, dxiZ, sigma, qRef []float64, nLevel int, dt float64, eq *eqset.EquationSet, c *phys.Constants, derivOp *colop.Operator) []float64 {
	rho := component(q, eqset.Rho, nLevel)
	u := component(q, eqset.U, nLevel)
	v := component(q, eqset.V, nLevel)
	rhoTheta := component(q, eqset.Theta, nLevel)
	rhoW := component(q, eqset.W, nLevel)

	theta := make([]float64, nLevel)
	w := make([]float64, nLevel)
	press := make([]float64, nLevel)
	for k := 0; k < nLevel; k++ {
		theta[k] = rhoTheta[k] / rho[k]
		w[k] = rhoW[k] / rho[k]
		press[k] = eq.Pressure(rho[k], theta[k])
	}

	dRhoWdReta := derivOp.Apply(rhoW)
	dPdReta := derivOp.Apply(press)
	dRhoThetadReta := derivOp.Apply(rhoTheta)

	res := make([]float64, len(q))
	for k := 0; k < nLevel; k++ {
		dz := dxiZ[k]
		dRhoWdz := dRhoWdReta[k] / dz
		dPdz := dPdReta[k] / dz
		dRhoThetadz := dRhoThetadReta[k] / dz
		sig := sigma[k]

		res[idx(eqset.Rho, k, nLevel)] = (rho[k]-qOld[idx(eqset.Rho, k, nLevel)])/dt +
			dRhoWdz + sig*(rho[k]-qRef[idx(eqset.Rho, k, nLevel)])

		res[idx(eqset.Theta, k, nLevel)] = (rhoTheta[k]-qOld[idx(eqset.Theta, k, nLevel)])/dt +
			w[k]*dRhoThetadz + sig*(rhoTheta[k]-qRef[idx(eqset.Theta, k, nLevel)])

		res[idx(eqset.W, k, nLevel)] = (rhoW[k]-qOld[idx(eqset.W, k, nLevel)])/dt +
			dPdz + c.G*rho[k] + sig*(rhoW[k]-qRef[idx(eqset.W, k, nLevel)])

		res[idx(eqset.U, k, nLevel)] = (u[k]-qOld[idx(eqset.U, k, nLevel)])/dt +
			sig*(u[k]-qRef[idx(eqset.U, k, nLevel)])

		res[idx(eqset.V, k, nLevel)] = (v[k]-qOld[idx(eqset.V, k, nLevel)])/dt +
			sig*(v[k]-qRef[idx(eqset.V, k, nLevel)])
	}
	return res
}

func component(q []float64, c eqset.Component, nLevel int) []float64 {
	return q[idx(c, 0, nLevel) : idx(c, 0, nLevel)+nLevel]
}
