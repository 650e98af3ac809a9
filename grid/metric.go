// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/dynacore/dynerr"
)

// minJacobian bounds the determinant computed by la.MatInv away from zero,
// the same "MINDET" role the teacher's shp package plays for its own
// Jacobian inversion (§4.4 "GeometryError: metric Jacobian non-positive").
const minJacobian = 1.0e-12

// Metric3 bundles the full 3D covariant/contravariant metric tensor and
// Jacobian at one (k,i,j) point (§3 "Metric tensors"). The horizontal 2D
// Jacobian and metric are identity on this Cartesian specialization, so only
// the terrain-following vertical coupling is stored explicitly.
type Metric3 struct {
	Gcov [3][3]float64 // covariant metric g_ab (a,b in {xi,a,b} order: index 0 = xi)
	Gctr [3][3]float64 // contravariant metric g^ab
	J    float64        // pointwise 3D Jacobian = dXiZ * J2D (J2D=1 on Cartesian)
}

// buildMetric3 assembles the covariant metric from the terrain-following
// mapping's partial derivatives (daZ, dbZ, dxiZ), inverts it for the
// contravariant metric via la.MatInv (mirroring the teacher's
// shp.Shape.InvMap / CalcVars Jacobian inversion, §4.4), and reports a
// GeometryError if the Jacobian is non-positive.
func buildMetric3(daZ, dbZ, dxiZ float64) (Metric3, error) {
	var m Metric3
	// covariant basis: e_xi=(0,0,dxiZ), e_a=(1,0,daZ), e_b=(0,1,dbZ)
	m.Gcov = [3][3]float64{
		{dxiZ * dxiZ, dxiZ * daZ, dxiZ * dbZ},
		{dxiZ * daZ, 1 + daZ*daZ, daZ * dbZ},
		{dxiZ * dbZ, daZ * dbZ, 1 + dbZ*dbZ},
	}
	Gcov := toDense(m.Gcov)
	Gctr := la.MatAlloc(3, 3)
	det, err := la.MatInv(Gctr, Gcov, minJacobian)
	if err != nil {
		return m, dynerr.Wrap(dynerr.Geometry, err, "metric tensor inversion failed")
	}
	if det <= 0 {
		return m, dynerr.New(dynerr.Geometry, "non-positive metric determinant: det=%v", det)
	}
	m.Gctr = fromDense(Gctr)
	m.J = dxiZ // J2D == 1 on Cartesian, so J3D == dxiZ * 1
	if m.J <= 0 {
		return m, dynerr.New(dynerr.Geometry, "non-positive Jacobian: dxiZ=%v", dxiZ)
	}
	return m, nil
}

func toDense(m [3][3]float64) [][]float64 {
	d := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d[i][j] = m[i][j]
		}
	}
	return d
}

func fromDense(d [][]float64) [3][3]float64 {
	var m [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = d[i][j]
		}
	}
	return m
}

// CheckIdentity verifies g^ab g_bc = delta^a_c to the given tolerance
// (§8 "Metric identity" / invariant list)
func (m Metric3) CheckIdentity(tol float64) error {
	for a := 0; a < 3; a++ {
		for c := 0; c < 3; c++ {
			s := 0.0
			for b := 0; b < 3; b++ {
				s += m.Gctr[a][b] * m.Gcov[b][c]
			}
			want := 0.0
			if a == c {
				want = 1.0
			}
			if abs(s-want) > tol {
				return dynerr.New(dynerr.Geometry, "g^ab g_bc != delta: [%d][%d]=%v", a, c, s)
			}
		}
	}
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
