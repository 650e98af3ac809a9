// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testcase

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/phys"
)

// ThermalBubble implements the Giraldo (2007) rising thermal bubble (§8
// scenario 1): a warm, circular potential-temperature perturbation rising
// in a neutrally-stratified, hydrostatically-balanced background.
type ThermalBubble struct {
	Base
	Ztop        float64
	ThetaBar    float64 // background potential temperature
	ThetaC      float64 // perturbation amplitude
	Rc          float64 // perturbation radius
	Xc, Zc      float64 // perturbation center
}

// NewThermalBubble returns the literal §8 scenario-1 configuration
func NewThermalBubble() *ThermalBubble {
	tc := &ThermalBubble{
		Ztop:     1000,
		ThetaBar: 300,
		ThetaC:   0.5,
		Rc:       250,
		Xc:       500,
		Zc:       350,
	}
	tc.checkParams()
	return tc
}

// checkParams guards against a misconfigured scenario (e.g. a zero bubble
// radius dividing the cosine bell below to NaN) the same way the teacher's
// analytic test cases validate their own closed-form parameters.
func (o *ThermalBubble) checkParams() {
	if o.Rc <= 0 {
		chk.Panic("dynacore/testcase: ThermalBubble.Rc must be positive, got %v", o.Rc)
	}
	if o.Ztop <= 0 {
		chk.Panic("dynacore/testcase: ThermalBubble.Ztop must be positive, got %v", o.Ztop)
	}
	if o.ThetaBar <= 0 {
		chk.Panic("dynacore/testcase: ThermalBubble.ThetaBar must be positive, got %v", o.ThetaBar)
	}
}

func (o *ThermalBubble) GetZtop() float64 { return o.Ztop }

func (o *ThermalBubble) HasReferenceState() bool { return true }

func (o *ThermalBubble) EvaluateReferenceState(c *phys.Constants, z, x, y float64, out *[5]float64) {
	// isentropic background at constant theta: hydrostatic balance gives
	// the Exner function pi(z) = 1 - g*z/(Cp*thetaBar), rho from p,theta
	theta := o.ThetaBar
	pi := 1.0 - c.G*z/(c.Cp*theta)
	p := c.P0 * math.Pow(pi, c.Cp/c.Rd)
	rho := p / (c.Rd * theta * pi)
	out[0], out[1] = 0, 0
	out[2] = theta
	out[3] = 0
	out[4] = rho
}

func (o *ThermalBubble) EvaluateTopography(c *phys.Constants, x, y float64) float64 { return 0 }

func (o *ThermalBubble) EvaluatePointwiseState(c *phys.Constants, t, z, x, y float64, out *[5]float64, tracers []float64) {
	o.EvaluateReferenceState(c, z, x, y, out)
	r := math.Sqrt((x-o.Xc)*(x-o.Xc) + (z-o.Zc)*(z-o.Zc))
	if r <= o.Rc {
		dtheta := o.ThetaC * 0.5 * (1 + math.Cos(math.Pi*r/o.Rc))
		out[2] += dtheta
	}
}
