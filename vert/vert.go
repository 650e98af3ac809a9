// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vert

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/colop"
	"github.com/cpmech/dynacore/grid"
)

// Operator evaluates the column-local implicit update of the compressible
// Euler equations (§4.7) on one Grid. The vertical derivative operator is
// built once from the grid's shared column layout and reused for every
// column: it is read-only and safe to share (§5 "Column operators are
// constructed once per grid and thereafter read-only").
type Operator struct {
	Grid    *grid.Grid
	Cfg     Config
	derivOp *colop.Operator
}

// New returns a vertical-dynamics operator bound to g, selecting the
// discontinuous flux-correction derivative for the node (LEVELS) vertical
// representation (§4.7 "flux-correction for discontinuous; interface
// method for continuous").
func New(g *grid.Grid, cfg Config) *Operator {
	return &Operator{Grid: g, Cfg: cfg, derivOp: g.VLayout.DerivFluxCorrection(false)}
}

// SolveColumns runs the JFNK column solve at every horizontal DOF, reading
// inSlot as both the previous-stage state and the Newton initial guess, and
// overwriting outSlot with the implicit update (§4.7, §4.8 "vertical
// dynamics to solve an implicit column problem"). The Rayleigh-friction
// target is the patch's own time-independent reference state
// (GridPatch.RefStateSlot, populated by grid.EvaluateTestCase when the test
// case implements HasReferenceState); useReference selects it, otherwise
// the friction term relaxes toward the column's own previous state (a
// no-op sponge, for test cases without a reference state).
func (o *Operator) SolveColumns(inSlot, outSlot string, dt float64, useReference bool) error {
	if dt <= 0 {
		chk.Panic("vert: SolveColumns requires a positive time step, got %v", dt)
	}
	cfg := o.Cfg
	cfg.DeltaT = dt
	for _, p := range o.Grid.Patches {
		in := p.Slot(inSlot)
		out := p.Slot(outSlot)
		ref := in
		if useReference {
			ref = p.RefStateSlot()
		}
		nLevel := len(in.Node[0])
		for i := 0; i < p.NA; i++ {
			for j := 0; j < p.NB; j++ {
				qOld := packColumn(in, i, j, nLevel)
				dxiZ := columnMetric(p, i, j, nLevel)
				sigma := columnRayleigh(p, i, j, nLevel)
				qRef := packColumn(ref, i, j, nLevel)

				q, err := solveColumn(qOld, dxiZ, sigma, qRef, nLevel, cfg, o.Grid.Eq, o.Grid.Phys, o.derivOp)
				if err != nil {
					return err
				}
				unpackColumn(out, i, j, nLevel, q)
			}
		}
	}
	return nil
}
