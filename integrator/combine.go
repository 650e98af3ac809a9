// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/grid"
)

// term is one dt-scaled tendency slot contributing to a predictor or to the
// final stage combination.
type term struct {
	weight float64
	slot   string
}

// combine writes dst = base + dt * sum(terms) into every patch's dst slot,
// over the node and edge component arrays (tracers are carried unchanged by
// the caller via CopyFrom, since hyperviscosity and column tendencies do not
// currently act on them).
func combine(g *grid.Grid, dstName, baseName string, dt float64, terms []term) {
	for _, p := range g.Patches {
		dst := p.Slot(dstName)
		base := p.Slot(baseName)
		for c := eqset.Component(0); c < eqset.NComponents; c++ {
			combineField(dst.Node[c], base.Node[c], dt, terms, p, c, false)
			combineField(dst.Edge[c], base.Edge[c], dt, terms, p, c, true)
		}
	}
}

// combineField assembles dst[k][i] = base[k][i] + dt * sum(weight*term[k][i])
// row by row, using la.VecCopy to seed the accumulator and la.VecAdd for
// each scaled term, the same accumulate-in-place style the teacher's own
// time-stepping code uses to build a star-variable from a base state plus
// weighted stage contributions.
func combineField(dst, base [][][]float64, dt float64, terms []term, p *grid.GridPatch, c eqset.Component, edge bool) {
	for k := range dst {
		for i := range dst[k] {
			la.VecCopy(dst[k][i], 1, base[k][i])
			for _, t := range terms {
				if t.weight == 0 {
					continue
				}
				s := p.Slot(t.slot)
				if edge {
					la.VecAdd(dst[k][i], dt*t.weight, s.Edge[c][k][i])
				} else {
					la.VecAdd(dst[k][i], dt*t.weight, s.Node[c][k][i])
				}
			}
		}
	}
}

// recoverImplicitTendency writes fimp = (stage - predictor) / dt into
// outSlot, the implicit tendency implied by a completed column solve
// (§4.8: the JFNK solve produces the stage value directly, so the
// tendency used by later stages and by the final combination is recovered
// algebraically rather than evaluated separately).
func recoverImplicitTendency(g *grid.Grid, outSlot, stageSlot, predictorSlot string, dt float64) {
	for _, p := range g.Patches {
		out := p.Slot(outSlot)
		stage := p.Slot(stageSlot)
		pred := p.Slot(predictorSlot)
		for c := eqset.Component(0); c < eqset.NComponents; c++ {
			diffField(out.Node[c], stage.Node[c], pred.Node[c], dt)
			diffField(out.Edge[c], stage.Edge[c], pred.Edge[c], dt)
		}
	}
}

func diffField(out, stage, pred [][][]float64, dt float64) {
	for k := range out {
		for i := range out[k] {
			la.VecAdd2(out[k][i], 1/dt, stage[k][i], -1/dt, pred[k][i])
		}
	}
}
