// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid owns all per-DOF arrays, metric tensors, and the DSS/
// boundary-condition machinery described in spec.md §4.4, generalizing the
// teacher's fem.Domain (which owns FEM nodes/elements/equations/solution
// arrays) to a per-DOF array/metric/state-slot owner.
package grid

import "github.com/cpmech/gosl/chk"

// Stagger selects the vertical variable placement (§3 "Vertical staggering")
type Stagger int

const (
	LEVELS Stagger = iota
	INTERFACES
	CHARNEY_PHILLIPS
)

// VelocityRep selects contravariant (default) or covariant velocity
// components; a runtime enum per §9 Design Notes ("compile-time velocity
// representation" reformulated as a runtime choice with matching metric
// contraction routines).
type VelocityRep int

const (
	Contravariant VelocityRep = iota
	Covariant
)

// LateralBC selects the lateral boundary condition on a lateral side
type LateralBC int

const (
	Periodic LateralBC = iota
	Reflective
)

// Bounds describes the Cartesian domain (§3 "Grid geometry")
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
	RefLatDeg  float64 // optional reference latitude for Coriolis f, beta
}

// VStretch maps the reference vertical coordinate REta in [0,1] to a
// normalized height fraction F(REta), with derivative dF; used together
// with topography to build physical height z = zs + (ztop-zs)*F(REta).
type VStretch interface {
	F(reta float64) float64
	DF(reta float64) float64
}

// GalChenSomerville is the standard linear (identity) stretch F(reta)=reta,
// the only stretch kept active per §9 Open Question (a): the Schar
// exponential-decay branch is dropped, "preserve only the active Gal-Chen
// form unless a test case requires otherwise."
type GalChenSomerville struct{}

func (GalChenSomerville) F(reta float64) float64  { return reta }
func (GalChenSomerville) DF(reta float64) float64 { return 1.0 }

func checkDim(dim int) {
	if dim != 2 && dim != 3 {
		chk.Panic("grid: dimensionality must be 2 or 3, got %d", dim)
	}
}
