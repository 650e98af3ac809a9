// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testcase

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/phys"
)

// InertialGravityWave implements the Skamarock-Klemp (1994) analytic
// inertial-gravity-wave test (§8 scenario 2): a sinusoidal theta
// perturbation superimposed on a constant-Brunt-Vaisala-frequency
// background, in a periodic 300km x 10km box.
type InertialGravityWave struct {
	Base
	Ztop       float64
	ThetaBar   float64
	BruntVaisala float64 // N, background stability
	Amp        float64  // perturbation amplitude
	Lx         float64  // domain length (for the along-x wavenumber)
	Ubar       float64  // background horizontal wind
}

// NewInertialGravityWave returns the literal §8 scenario-2 configuration
func NewInertialGravityWave() *InertialGravityWave {
	tc := &InertialGravityWave{
		Ztop:         10000,
		ThetaBar:     300,
		BruntVaisala: 0.01,
		Amp:          0.01,
		Lx:           300000,
		Ubar:         20,
	}
	tc.checkParams()
	return tc
}

// checkParams guards the analytic background against a degenerate
// configuration, matching the defensive style of the teacher's own
// closed-form test cases.
func (o *InertialGravityWave) checkParams() {
	if o.Ztop <= 0 {
		chk.Panic("dynacore/testcase: InertialGravityWave.Ztop must be positive, got %v", o.Ztop)
	}
	if o.Lx <= 0 {
		chk.Panic("dynacore/testcase: InertialGravityWave.Lx must be positive, got %v", o.Lx)
	}
	if o.BruntVaisala <= 0 {
		chk.Panic("dynacore/testcase: InertialGravityWave.BruntVaisala must be positive, got %v", o.BruntVaisala)
	}
}

func (o *InertialGravityWave) GetZtop() float64 { return o.Ztop }

func (o *InertialGravityWave) HasReferenceState() bool { return true }

func (o *InertialGravityWave) thetaBackground(z float64) float64 {
	N2 := o.BruntVaisala * o.BruntVaisala
	return o.ThetaBar * math.Exp(N2*z/9.80616)
}

func (o *InertialGravityWave) EvaluateReferenceState(c *phys.Constants, z, x, y float64, out *[5]float64) {
	theta := o.thetaBackground(z)
	N2 := o.BruntVaisala * o.BruntVaisala
	pi := 1.0 + c.G*c.G/(c.Cp*o.ThetaBar*N2)*(math.Exp(-N2*z/c.G)-1.0)
	p := c.P0 * math.Pow(pi, c.Cp/c.Rd)
	rho := p / (c.Rd * theta * pi)
	out[0], out[1] = o.Ubar, 0
	out[2] = theta
	out[3] = 0
	out[4] = rho
}

func (o *InertialGravityWave) EvaluateTopography(c *phys.Constants, x, y float64) float64 { return 0 }

func (o *InertialGravityWave) EvaluatePointwiseState(c *phys.Constants, t, z, x, y float64, out *[5]float64, tracers []float64) {
	o.EvaluateReferenceState(c, z, x, y, out)
	d := o.Lx / 5.0
	bump := math.Sin(math.Pi*z/o.Ztop) / (1.0 + math.Pow((x-o.Lx/2)/d, 2))
	out[2] += o.Amp * bump
}
