// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/dynacore/colop"
	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/testcase"
)

// EvaluateTestCase populates the node and edge state slots using the
// test-case callback, separately fills the reference state, converts
// primitive to conservative via the equation set, and optionally samples
// Rayleigh strength per DOF (§4.4 "EvaluateTestCase").
func (o *Grid) EvaluateTestCase(slotName string, t float64, tc testcase.TestCase) error {
	lay := o.VLayout
	nodeReta := flattenLayout(lay, colop.Nodes)
	edgeReta := lay.ElemBounds

	for _, p := range o.Patches {
		slot := p.Slot(slotName)
		for i := 0; i < p.NA; i++ {
			for j := 0; j < p.NB; j++ {
				x, y := p.X[i][j], p.Y[i][j]
				for k, reta := range nodeReta {
					_ = reta
					z := p.ZNode[i][j][k]
					var prim [5]float64
					tracers := make([]float64, o.NTracers)
					tc.EvaluatePointwiseState(o.Phys, t, z, x, y, &prim, tracers)
					cons := o.Eq.ToConservative(toEqsetArray(prim))
					for c := eqset.Component(0); c < eqset.NComponents; c++ {
						slot.Node[c][k][i][j] = cons[c]
					}
					for tr, v := range tracers {
						slot.Tracers[tr][k][i][j] = v
					}
					if tc.HasRayleighFriction() {
						p.RayleighNode[i][j][k] = tc.EvaluateRayleighStrength(z, x, y)
					}
				}
				for k := range edgeReta {
					z := p.ZEdge[i][j][k]
					var prim [5]float64
					tracers := make([]float64, o.NTracers)
					tc.EvaluatePointwiseState(o.Phys, t, z, x, y, &prim, tracers)
					cons := o.Eq.ToConservative(toEqsetArray(prim))
					for c := eqset.Component(0); c < eqset.NComponents; c++ {
						slot.Edge[c][k][i][j] = cons[c]
					}
					if tc.HasRayleighFriction() {
						p.RayleighEdge[i][j][k] = tc.EvaluateRayleighStrength(z, x, y)
					}
				}

				if tc.HasReferenceState() {
					ref := p.RefStateSlot()
					for k, reta := range nodeReta {
						_ = reta
						z := p.ZNode[i][j][k]
						var prim [5]float64
						tc.EvaluateReferenceState(o.Phys, z, x, y, &prim)
						cons := o.Eq.ToConservative(toEqsetArray(prim))
						for c := eqset.Component(0); c < eqset.NComponents; c++ {
							ref.Node[c][k][i][j] = cons[c]
						}
					}
					for k := range edgeReta {
						z := p.ZEdge[i][j][k]
						var prim [5]float64
						tc.EvaluateReferenceState(o.Phys, z, x, y, &prim)
						cons := o.Eq.ToConservative(toEqsetArray(prim))
						for c := eqset.Component(0); c < eqset.NComponents; c++ {
							ref.Edge[c][k][i][j] = cons[c]
						}
					}
				}
			}
		}
	}
	if o.ShowMsg {
		io.Pf(">> EvaluateTestCase: slot %q populated from test-case callbacks\n", slotName)
	}
	return nil
}

func toEqsetArray(a [5]float64) [eqset.NComponents]float64 {
	var o [eqset.NComponents]float64
	copy(o[:], a[:])
	return o
}
