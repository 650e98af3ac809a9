// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eqset enumerates the prognostic variables of the compressible
// Euler equations and converts between their primitive and conservative
// forms (§4.5).
package eqset

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/phys"
)

// Component indexes the five prognostic variables, in the fixed order the
// rest of the core assumes: (u,v,theta,w,rho) primitive, (u,v,rho*theta,
// rho*w,rho) conservative (only rho*theta, rho*w are actually "conserved";
// u,v stay un-weighted in both representations per §4.5).
type Component int

const (
	U Component = iota
	V
	Theta
	W
	Rho
	NComponents = 5
)

// EquationSet bundles the physical constants and the spatial dimensionality
// (2 for an x-z slice, 3 for full 3D; §4.5 requires vertical order 1 in 2D).
type EquationSet struct {
	Phys *phys.Constants
	Dim  int // 2 or 3
}

// New validates dim and returns an EquationSet
func New(p *phys.Constants, dim int) *EquationSet {
	if dim != 2 && dim != 3 {
		chk.Panic("EquationSet: dimensionality must be 2 or 3, got %d", dim)
	}
	return &EquationSet{Phys: p, Dim: dim}
}

// ToConservative converts primitive (u,v,theta,w,rho) into conservative
// (u,v,rho*theta,rho*w,rho)
func (o *EquationSet) ToConservative(prim [NComponents]float64) (cons [NComponents]float64) {
	rho := prim[Rho]
	cons[U] = prim[U]
	cons[V] = prim[V]
	cons[Theta] = rho * prim[Theta]
	cons[W] = rho * prim[W]
	cons[Rho] = rho
	return
}

// ToPrimitive converts conservative (u,v,rho*theta,rho*w,rho) into primitive
// (u,v,theta,w,rho)
func (o *EquationSet) ToPrimitive(cons [NComponents]float64) (prim [NComponents]float64) {
	rho := cons[Rho]
	prim[U] = cons[U]
	prim[V] = cons[V]
	prim[Theta] = cons[Theta] / rho
	prim[W] = cons[W] / rho
	prim[Rho] = rho
	return
}

// Pressure evaluates p = p0 * (Rd*rho*theta/p0)^(Cp/Cv) (§4.5)
func (o *EquationSet) Pressure(rho, theta float64) float64 {
	c := o.Phys
	return c.P0 * math.Pow(c.Rd*rho*theta/c.P0, c.Cp/c.Cv)
}

// SoundSpeedSq evaluates c^2 = Cp*Rd*theta/Cv * (p/p0)^(Rd/Cp - 1) (§4.5)
func (o *EquationSet) SoundSpeedSq(rho, theta float64) float64 {
	c := o.Phys
	p := o.Pressure(rho, theta)
	return c.Cp * c.Rd * theta / c.Cv * math.Pow(p/c.P0, c.Rd/c.Cp-1.0)
}

// ExnerFunction evaluates Pi = (p/p0)^kappa, the common normalized-pressure
// factor used by the hydrostatic-balance reference-state callbacks
func (o *EquationSet) ExnerFunction(rho, theta float64) float64 {
	return math.Pow(o.Pressure(rho, theta)/o.Phys.P0, o.Phys.Kappa())
}
