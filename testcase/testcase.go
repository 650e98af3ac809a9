// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package testcase declares the test-case callback contract (§6 "Test case
// callback contract") the grid and integrator require, and provides the
// two literal end-to-end scenarios from §8: the Giraldo (2007) thermal
// rising bubble and the Skamarock-Klemp (1994) inertial gravity wave.
package testcase

import "github.com/cpmech/dynacore/phys"

// TestCase is the pure-function hook set a simulation driver supplies; out
// of scope for this package's own implementation per spec.md §1, but its
// interface is specified here so grid/integrator can depend on it.
type TestCase interface {
	// GetTracerCount returns the number of extra tracer fields carried
	GetTracerCount() int

	// GetZtop returns the (positive) top of the physical domain
	GetZtop() float64

	// HasReferenceState reports whether EvaluateReferenceState should be used
	HasReferenceState() bool

	// EvaluateReferenceState populates out[5] = (u,v,theta,w,rho) in
	// hydrostatic balance; velocities must be zero. Only called if
	// HasReferenceState() is true.
	EvaluateReferenceState(phys *phys.Constants, z, x, y float64, out *[5]float64)

	// EvaluateTopography returns z_s(x,y), in [0, ztop)
	EvaluateTopography(phys *phys.Constants, x, y float64) float64

	// EvaluatePointwiseState samples the initial condition at (t,z,x,y)
	EvaluatePointwiseState(phys *phys.Constants, t, z, x, y float64, out *[5]float64, tracers []float64)

	// HasRayleighFriction reports whether a sponge layer is active
	HasRayleighFriction() bool

	// EvaluateRayleighStrength returns sigma(z,x,y), the sponge strength
	EvaluateRayleighStrength(z, x, y float64) float64
}

// Base provides default (no-op) implementations of the optional hooks so a
// concrete test case need only embed Base and override what it needs.
type Base struct{}

func (Base) GetTracerCount() int                       { return 0 }
func (Base) HasReferenceState() bool                   { return false }
func (Base) HasRayleighFriction() bool                 { return false }
func (Base) EvaluateRayleighStrength(z, x, y float64) float64 { return 0 }
func (Base) EvaluateReferenceState(p *phys.Constants, z, x, y float64, out *[5]float64) {}
