// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/dynacore/dynerr"
	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/quad"
)

// interpTol is the out-of-domain tolerance for InterpolateData (§4.4).
const interpTol = 1.0e-10

// ComputeCurlAndDiv computes, for every patch and every node level, the
// vertical-vorticity and horizontal-divergence diagnostics (§4.4
// "ComputeCurlAndDiv"):
//
//	omega = (da(u_b) - db(u_a)) / J2D
//	div   = (da(J u^a) + db(J u^b)) / J2D
//
// On this Cartesian specialization J2D == 1. As in the active code this
// generalizes from (§9 Open Question (b)): the partial derivatives are taken
// of the raw u, v components rather than their covariant counterparts, which
// is only exact for an identity horizontal metric; this is preserved as-is
// and flagged here rather than silently "fixed" for non-Cartesian grids.
func (o *Grid) ComputeCurlAndDiv(slotName string) (vort, div [][][][]float64) {
	vort = make([][][][]float64, len(o.Patches))
	div = make([][][][]float64, len(o.Patches))
	for pi, p := range o.Patches {
		s := p.Slot(slotName)
		xCoords := columnCoords(p, true)
		yCoords := columnCoords(p, false)
		da := buildHorizDeriv(p.NA, xCoords)
		db := buildHorizDeriv(p.NB, yCoords)

		nLevel := len(s.Node[eqset.U])
		vort[pi] = make([][][]float64, nLevel)
		div[pi] = make([][][]float64, nLevel)
		for k := 0; k < nLevel; k++ {
			u := s.Node[eqset.U][k]
			v := s.Node[eqset.V][k]
			Ju := alloc2(p.NA, p.NB)
			Jv := alloc2(p.NA, p.NB)
			for i := 0; i < p.NA; i++ {
				for j := 0; j < p.NB; j++ {
					J := p.MetricNode[i][j][k].J
					Ju[i][j] = J * u[i][j]
					Jv[i][j] = J * v[i][j]
				}
			}
			dv_da := applyRowDeriv(da, v)
			du_db := applyColDeriv(db, u)
			dJu_da := applyRowDeriv(da, Ju)
			dJv_db := applyColDeriv(db, Jv)

			vort[pi][k] = alloc2(p.NA, p.NB)
			div[pi][k] = alloc2(p.NA, p.NB)
			for i := 0; i < p.NA; i++ {
				for j := 0; j < p.NB; j++ {
					vort[pi][k][i][j] = dv_da[i][j] - du_db[i][j]
					div[pi][k][i][j] = dJu_da[i][j] + dJv_db[i][j]
				}
			}
		}
	}
	return vort, div
}

// applyRowDeriv computes d(field)/da at every (i,j) using the per-patch
// along-a derivative matrix built by buildHorizDeriv.
func applyRowDeriv(da [][]float64, field [][]float64) [][]float64 {
	na, nb := len(field), len(field[0])
	out := alloc2(na, nb)
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			s := 0.0
			for k := 0; k < na; k++ {
				s += da[i][k] * field[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// applyColDeriv computes d(field)/db at every (i,j) using the per-patch
// along-b derivative matrix built by buildHorizDeriv.
func applyColDeriv(db [][]float64, field [][]float64) [][]float64 {
	na, nb := len(field), len(field[0])
	out := alloc2(na, nb)
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			s := 0.0
			for k := 0; k < nb; k++ {
				s += db[j][k] * field[i][k]
			}
			out[i][j] = s
		}
	}
	return out
}

// InterpolateData samples a named slot's components at an arbitrary
// diagnostic point (x, y) on a given node level using the patch's full-extent
// Lagrange basis (§4.4 "InterpolateData"). It reports a GeometryError if the
// point lies outside every patch's domain by more than interpTol. If
// subtractReference is true and the grid's test case populated a reference
// state, the reference value is removed from the result first.
func (o *Grid) InterpolateData(slotName string, level int, x, y float64, subtractReference bool) ([eqset.NComponents]float64, error) {
	var out [eqset.NComponents]float64
	p := o.findPatch(x, y)
	if p == nil {
		return out, dynerr.New(dynerr.Geometry, "InterpolateData: point (x=%v,y=%v) outside every patch domain (tol=%v)", x, y, interpTol)
	}
	s := p.Slot(slotName)
	xCoords := columnCoords(p, true)
	yCoords := columnCoords(p, false)
	wa := quad.InterpCoeffs(xCoords, x)
	wb := quad.InterpCoeffs(yCoords, y)
	for c := eqset.Component(0); c < eqset.NComponents; c++ {
		out[c] = interp2(wa, wb, s.Node[c][level])
		if subtractReference {
			ref := p.RefStateSlot()
			out[c] -= interp2(wa, wb, ref.Node[c][level])
		}
	}
	return out, nil
}

// interp2 evaluates the tensor-product bilinear form wa^T * field * wb,
// using la.MatVecMul for the field*wb contraction (the same "matrix times
// vector" building block the teacher's element routines use to assemble
// fi from a B matrix) and a plain scalar reduction for the final dot with
// wa.
func interp2(wa, wb []float64, field [][]float64) float64 {
	rows := make([]float64, len(wa))
	la.MatVecMul(rows, 1, field, wb)
	s := 0.0
	for i, a := range wa {
		s += a * rows[i]
	}
	return s
}

// findPatch returns the patch whose physical bounding box contains (x, y)
// within interpTol, or nil if no patch does.
func (o *Grid) findPatch(x, y float64) *GridPatch {
	for _, p := range o.Patches {
		xLo, xHi := p.X[0][0], p.X[p.NA-1][0]
		yLo, yHi := p.Y[0][0], p.Y[0][p.NB-1]
		if x < xLo-interpTol || x > xHi+interpTol {
			continue
		}
		if y < yLo-interpTol || y > yHi+interpTol {
			continue
		}
		return p
	}
	return nil
}
