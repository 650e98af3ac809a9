// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"github.com/cpmech/dynacore/dynerr"
	"github.com/cpmech/dynacore/grid"
	"github.com/cpmech/dynacore/horiz"
	"github.com/cpmech/dynacore/vert"
)

// Scheme selects the time-stepping scheme (§4.8).
type Scheme int

// schemes
const (
	Strang Scheme = iota
	ARK2Scheme
	ARK3Scheme
	ARK4Scheme
)

// Slots names the grid state slots an Integrator reads and writes across a
// step. Active must always hold the accepted state on entry and on return
// (§4.8 "the integrator... guarantees the active slot holds the accepted
// state at step end"). Stage, ExpTendency and ImpTendency must each have at
// least as many entries as the scheme's stage count (1 for Strang).
type Slots struct {
	Active                string
	Stage                 []string
	ExpTendency           []string
	ImpTendency           []string
	Predictor             string
	HyperviscosityScratch string
}

// Config bundles the scheme selection, time step and Rayleigh-friction
// target for the column solver (§4.7, §4.8).
type Config struct {
	Scheme            Scheme
	DeltaT            float64
	UseReferenceState bool
}

// Integrator advances one Grid's named "active" slot forward in time using
// the horizontal and vertical operators of the HEVI split. It plays the role
// the teaser's fem.Solver plays for the FEM time loop, generalized to a
// named-slot, stage-driven update (§4.8).
type Integrator struct {
	Grid  *grid.Grid
	Horiz *horiz.Operator
	Vert  *vert.Operator
	Cfg   Config
	Slots Slots

	tableau Tableau
}

// New validates the slot configuration against the chosen scheme's stage
// count and returns a ready-to-step Integrator.
func New(g *grid.Grid, h *horiz.Operator, v *vert.Operator, cfg Config, slots Slots) *Integrator {
	o := &Integrator{Grid: g, Horiz: h, Vert: v, Cfg: cfg, Slots: slots}
	n := 1
	switch cfg.Scheme {
	case ARK2Scheme:
		o.tableau = ARK2()
		n = o.tableau.NStages()
	case ARK3Scheme:
		o.tableau = ARK3()
		n = o.tableau.NStages()
	case ARK4Scheme:
		o.tableau = ARK4()
		n = o.tableau.NStages()
	case Strang:
		n = 1
	default:
		dynerr.Fatal(dynerr.Configuration, "integrator: unknown scheme %d", cfg.Scheme)
	}
	if len(slots.Stage) < n || len(slots.ExpTendency) < n || len(slots.ImpTendency) < n {
		dynerr.Fatal(dynerr.Configuration,
			"integrator: scheme needs %d stage/tendency slots, got stage=%d exp=%d imp=%d",
			n, len(slots.Stage), len(slots.ExpTendency), len(slots.ImpTendency))
	}
	if slots.Predictor == "" || slots.HyperviscosityScratch == "" || slots.Active == "" {
		dynerr.Fatal(dynerr.Configuration, "integrator: Active, Predictor and HyperviscosityScratch slot names are required")
	}
	return o
}

// Step advances the active slot by one time step (§4.8).
func (o *Integrator) Step() error {
	if o.Cfg.Scheme == Strang {
		return o.stepStrang()
	}
	return o.stepIMEX()
}

// stepStrang implements H(dt/2) . V(dt) . H(dt/2) (§4.8 "Strang splitting"):
// an explicit half-step, a full implicit column solve, and a second explicit
// half-step, each followed by ApplyDSS and ApplyBoundaryConditions.
func (o *Integrator) stepStrang() error {
	dt := o.Cfg.DeltaT
	half := dt / 2
	active := o.Slots.Active
	work := o.Slots.Stage[0]
	fexp := o.Slots.ExpTendency[0]

	if err := o.Horiz.ComputeTendency(active, fexp, o.Slots.HyperviscosityScratch); err != nil {
		return err
	}
	combine(o.Grid, work, active, half, []term{{1, fexp}})
	o.Grid.ApplyDSS(work)
	o.Grid.ApplyBoundaryConditions(work)

	if err := o.Vert.SolveColumns(work, active, dt, o.Cfg.UseReferenceState); err != nil {
		return err
	}
	o.Grid.ApplyDSS(active)
	o.Grid.ApplyBoundaryConditions(active)

	if err := o.Horiz.ComputeTendency(active, fexp, o.Slots.HyperviscosityScratch); err != nil {
		return err
	}
	combine(o.Grid, work, active, half, []term{{1, fexp}})
	o.Grid.ApplyDSS(work)
	o.Grid.ApplyBoundaryConditions(work)

	copySlot(o.Grid, active, work)
	return nil
}

// stepIMEX implements the additive Runge-Kutta stage loop (§4.8): stage 0 is
// the accepted state itself (c_0=0 forces a purely explicit first stage);
// later stages build a predictor from every earlier stage's explicit and
// implicit tendencies, solve the column problem with effective step
// dt*AImp[i][i], and recover that stage's implicit tendency algebraically
// from the solved state. The final state is the weighted sum of every
// stage's tendencies.
func (o *Integrator) stepIMEX() error {
	dt := o.Cfg.DeltaT
	t := o.tableau
	n := t.NStages()
	active := o.Slots.Active

	if err := o.Horiz.ComputeTendency(active, o.Slots.ExpTendency[0], o.Slots.HyperviscosityScratch); err != nil {
		return err
	}
	zeroSlot(o.Grid, o.Slots.ImpTendency[0])

	for i := 1; i < n; i++ {
		stage := o.Slots.Stage[i]
		terms := make([]term, 0, 2*i)
		for j := 0; j < i; j++ {
			terms = append(terms, term{t.AExp[i][j], o.Slots.ExpTendency[j]})
			terms = append(terms, term{t.AImp[i][j], o.Slots.ImpTendency[j]})
		}
		combine(o.Grid, o.Slots.Predictor, active, dt, terms)

		aii := t.AImp[i][i]
		if aii == 0 {
			copySlot(o.Grid, stage, o.Slots.Predictor)
		} else if err := o.Vert.SolveColumns(o.Slots.Predictor, stage, dt*aii, o.Cfg.UseReferenceState); err != nil {
			return err
		}
		o.Grid.ApplyDSS(stage)
		o.Grid.ApplyBoundaryConditions(stage)

		if err := o.Horiz.ComputeTendency(stage, o.Slots.ExpTendency[i], o.Slots.HyperviscosityScratch); err != nil {
			return err
		}
		if aii != 0 {
			recoverImplicitTendency(o.Grid, o.Slots.ImpTendency[i], stage, o.Slots.Predictor, dt*aii)
		} else {
			zeroSlot(o.Grid, o.Slots.ImpTendency[i])
		}
	}

	finalTerms := make([]term, 0, 2*n)
	for i := 0; i < n; i++ {
		finalTerms = append(finalTerms, term{t.BExp[i], o.Slots.ExpTendency[i]})
		finalTerms = append(finalTerms, term{t.BImp[i], o.Slots.ImpTendency[i]})
	}
	combine(o.Grid, active, active, dt, finalTerms)
	o.Grid.ApplyDSS(active)
	o.Grid.ApplyBoundaryConditions(active)
	return nil
}

func zeroSlot(g *grid.Grid, name string) {
	for _, p := range g.Patches {
		p.Slot(name).Reset()
	}
}

func copySlot(g *grid.Grid, dst, src string) {
	for _, p := range g.Patches {
		p.Slot(dst).CopyFrom(p.Slot(src))
	}
}
