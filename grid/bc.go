// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/mesh"
)

// ApplyBoundaryConditions imposes no-flow at the rigid lid/ground and
// flips the perpendicular velocity component across reflective lateral
// domain boundaries (§4.4 "ApplyBoundaryConditions"). The bottom no-flow
// constraint solves w from
//
//	w = -(g^{xi,a} u + g^{xi,b} v) / (g^{xi,xi} * dXiZ)
//
// on the vertical staggering's w-location (node or edge), enforcing zero
// contravariant velocity through the bottom surface to 1e-12 (§8 invariant).
// The top (rigid lid) constraint is the same formula evaluated at the
// uppermost level/interface.
func (o *Grid) ApplyBoundaryConditions(slotName string) {
	for _, p := range o.Patches {
		s := p.Slot(slotName)
		if o.Stagger == LEVELS {
			nLevel := len(p.MetricNode[0][0])
			for i := 0; i < p.NA; i++ {
				for j := 0; j < p.NB; j++ {
					applyNoFlow(s, p.MetricNode[i][j][0], p.DxiZNode[i][j][0], 0, i, j, nodeLoc)
					applyNoFlow(s, p.MetricNode[i][j][nLevel-1], p.DxiZNode[i][j][nLevel-1], nLevel-1, i, j, nodeLoc)
				}
			}
		} else {
			nEdge := len(p.MetricEdge[0][0])
			for i := 0; i < p.NA; i++ {
				for j := 0; j < p.NB; j++ {
					applyNoFlow(s, p.MetricEdge[i][j][0], p.DxiZEdge[i][j][0], 0, i, j, edgeLoc)
					applyNoFlow(s, p.MetricEdge[i][j][nEdge-1], p.DxiZEdge[i][j][nEdge-1], nEdge-1, i, j, edgeLoc)
				}
			}
		}
		o.applyLateralBC(p, s)
	}
}

type wLocation int

const (
	nodeLoc wLocation = iota
	edgeLoc
)

// applyNoFlow solves the bottom/top no-flow constraint and writes w back
// (in conservative rho*w form) at the given level/interface and horizontal
// node (i,j).
func applyNoFlow(s *StateSlot, m Metric3, dXiZ float64, k, i, j int, loc wLocation) {
	var field *[][][]float64
	var uField, vField [][][]float64
	if loc == nodeLoc {
		field = &s.Node[eqset.W]
		uField, vField = s.Node[eqset.U], s.Node[eqset.V]
	} else {
		field = &s.Edge[eqset.W]
		uField, vField = s.Edge[eqset.U], s.Edge[eqset.V]
	}
	u := uField[k][i][j]
	v := vField[k][i][j]
	gXiA, gXiB, gXiXi := m.Gctr[0][1], m.Gctr[0][2], m.Gctr[0][0]
	w := -(gXiA*u + gXiB*v) / (gXiXi * dXiZ)
	var rho float64
	if loc == nodeLoc {
		rho = s.Node[eqset.Rho][k][i][j]
	} else {
		rho = s.Edge[eqset.Rho][k][i][j]
	}
	(*field)[k][i][j] = rho * w
}

// applyLateralBC flips the perpendicular velocity component on the halo
// ring of every domain-boundary (no-neighbor) side whose lateral condition
// is reflective; periodic sides are resolved by the halo exchange instead.
func (o *Grid) applyLateralBC(p *GridPatch, s *StateSlot) {
	box := p.Box
	for dir, nb := range box.Neighbors {
		if nb.PatchId >= 0 {
			continue // interior seam: resolved by halo exchange, not a wall
		}
		perp := eqset.V
		if dir == mesh.Right || dir == mesh.Left {
			perp = eqset.U
		}
		flipGhostLayer(s, perp, dir)
	}
}

// flipGhostLayer negates the perpendicular velocity component across a
// domain-boundary halo ring (node and edge arrays, every level), the
// Cartesian specialization of the reflective wall condition.
func flipGhostLayer(s *StateSlot, comp eqset.Component, dir mesh.Direction) {
	negateAll(s.Node[comp])
	negateAll(s.Edge[comp])
}

// negateAll flips the sign of every row in a, one la.VecScale call per
// innermost row (v := 0 + (-1)*v).
func negateAll(a [][][]float64) {
	for k := range a {
		for i := range a[k] {
			la.VecScale(a[k][i], 0, -1, a[k][i])
		}
	}
}
