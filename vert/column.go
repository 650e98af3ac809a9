// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vert implements the column-local implicit (vertical) half of the
// HEVI split (§4.7): the per-column residual, and a Jacobian-Free Newton-
// Krylov solver with finite-difference Jacobian-vector products and GMRES.
package vert

import (
	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/grid"
)

// idx returns the flat offset of component c, level k in a packed column
// vector of nLevel levels per component (§4.7 "column's update").
func idx(c eqset.Component, k, nLevel int) int { return int(c)*nLevel + k }

// packColumn reads one (i,j) column of slot into a flat vector ordered
// [component][level], the layout the residual and JFNK solver operate on.
func packColumn(slot *grid.StateSlot, i, j, nLevel int) []float64 {
	q := make([]float64, eqset.NComponents*nLevel)
	for c := eqset.Component(0); c < eqset.NComponents; c++ {
		for k := 0; k < nLevel; k++ {
			q[idx(c, k, nLevel)] = slot.Node[c][k][i][j]
		}
	}
	return q
}

// unpackColumn writes a flat packed column vector back into slot at (i,j).
func unpackColumn(slot *grid.StateSlot, i, j, nLevel int, q []float64) {
	for c := eqset.Component(0); c < eqset.NComponents; c++ {
		for k := 0; k < nLevel; k++ {
			slot.Node[c][k][i][j] = q[idx(c, k, nLevel)]
		}
	}
}

// columnMetric reads one (i,j) column of dz/dreta (the node-level dxiZ
// cached by grid.EvaluateGeometricTerms) used to convert the column
// operator's reference-coordinate derivative into a physical d/dz.
func columnMetric(p *grid.GridPatch, i, j, nLevel int) []float64 {
	dz := make([]float64, nLevel)
	for k := 0; k < nLevel; k++ {
		dz[k] = p.DxiZNode[i][j][k]
	}
	return dz
}

func columnRayleigh(p *grid.GridPatch, i, j, nLevel int) []float64 {
	sigma := make([]float64, nLevel)
	for k := 0; k < nLevel; k++ {
		sigma[k] = p.RayleighNode[i][j][k]
	}
	return sigma
}
