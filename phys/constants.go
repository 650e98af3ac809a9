// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phys holds the immutable bundle of physical constants shared by
// every other package in the dynamical core. There is no process-global
// mutable copy: a *Constants value is built once (NewEarth) and passed by
// reference.
package phys

import "math"

// Constants bundles the physical constants needed by the equation set, the
// Coriolis terms and the vertical-coordinate mapping. It is read-only after
// construction.
type Constants struct {
	G       float64 // gravitational acceleration [m/s^2]
	Rd      float64 // dry-air gas constant [J/(kg.K)]
	Cp      float64 // specific heat at constant pressure [J/(kg.K)]
	Cv      float64 // specific heat at constant volume [J/(kg.K)]
	P0      float64 // reference pressure [Pa]
	Omega   float64 // planetary rotation rate [rad/s]
	Radius  float64 // planetary radius [m]
	RefLat  float64 // reference latitude [rad], used for f and beta-plane Coriolis
}

// NewEarth returns the standard bundle used by the literature test cases
// (Giraldo 2007, Skamarock-Klemp 1994, Schar mountain).
func NewEarth(refLatDeg float64) *Constants {
	return &Constants{
		G:      9.80616,
		Rd:     287.0,
		Cp:     1004.5,
		Cv:     717.5,
		P0:     1.0e5,
		Omega:  7.29212e-5,
		Radius: 6.37122e6,
		RefLat: refLatDeg * math.Pi / 180.0,
	}
}

// Kappa returns R_d/C_p, the exponent used in the Exner/pressure relation
func (o *Constants) Kappa() float64 { return o.Rd / o.Cp }

// CoriolisF returns the Coriolis parameter f = 2*Omega*sin(RefLat)
func (o *Constants) CoriolisF() float64 {
	return 2.0 * o.Omega * math.Sin(o.RefLat)
}

// CoriolisBeta returns df/dy = 2*Omega*cos(RefLat)/Radius, the beta-plane term
func (o *Constants) CoriolisBeta() float64 {
	return 2.0 * o.Omega * math.Cos(o.RefLat) / o.Radius
}
