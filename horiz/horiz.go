// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package horiz implements the horizontal (explicit) half of the HEVI
// split (§4.6): spectral-element advection and pressure-gradient terms plus
// optional hyperviscosity, reading one named state slot and writing a
// tendency slot. Boundary seams are left for the grid's ApplyDSS to resolve;
// this operator is explicit and local to one element column per output row.
package horiz

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/grid"
)

// Config bundles the hyperviscosity parameters (§4.6 "Hyperviscosity uses
// the spectral derivative matrix applied twice... strength scales as
// (dxdy)^2 * referenceLength^-2 * nuHoriz").
type Config struct {
	NuScalar        float64 // scalar (Laplacian) hyperviscosity coefficient, 0 disables
	NuDiv           float64 // divergence-damping coefficient, 0 disables
	ReferenceLength float64 // normalization length for the hyperviscosity strength
}

// Operator evaluates the horizontal tendency of the compressible Euler
// equations on one Grid.
type Operator struct {
	Grid *grid.Grid
	Cfg  Config
}

// New returns a horizontal-dynamics operator bound to g
func New(g *grid.Grid, cfg Config) *Operator {
	return &Operator{Grid: g, Cfg: cfg}
}

// ComputeTendency reads inSlot and writes the horizontal tendency into
// outSlot (§4.6). If the configured hyperviscosity coefficients are
// nonzero, scratchSlot is used as DSS-synchronized workspace for the
// twice-applied spectral derivative and the result is added into outSlot.
func (o *Operator) ComputeTendency(inSlot, outSlot, scratchSlot string) error {
	eq := o.Grid.Eq
	for _, p := range o.Grid.Patches {
		in := p.Slot(inSlot)
		out := p.Slot(outSlot)
		da, db := p.HorizDeriv()

		nLevel := len(in.Node[eqset.U])
		for k := 0; k < nLevel; k++ {
			rho := in.Node[eqset.Rho][k]
			u := in.Node[eqset.U][k]
			v := in.Node[eqset.V][k]
			rhoTheta := in.Node[eqset.Theta][k]
			rhoW := in.Node[eqset.W][k]

			na, nb := p.NA, p.NB
			theta := alloc2(na, nb)
			press := alloc2(na, nb)
			for i := 0; i < na; i++ {
				for j := 0; j < nb; j++ {
					theta[i][j] = rhoTheta[i][j] / rho[i][j]
					press[i][j] = eq.Pressure(rho[i][j], theta[i][j])
				}
			}

			rhoU := mul(rho, u)
			rhoV := mul(rho, v)
			dRhoUda := applyRowDeriv(da, rhoU)
			dRhoVdb := applyColDeriv(db, rhoV)

			dUda := applyRowDeriv(da, u)
			dUdb := applyColDeriv(db, u)
			dVda := applyRowDeriv(da, v)
			dVdb := applyColDeriv(db, v)
			dPda := applyRowDeriv(da, press)
			dPdb := applyColDeriv(db, press)

			dRhoThetaUda := applyRowDeriv(da, mul(rhoTheta, u))
			dRhoThetaVdb := applyColDeriv(db, mul(rhoTheta, v))
			dRhoWUda := applyRowDeriv(da, mul(rhoW, u))
			dRhoWVdb := applyColDeriv(db, mul(rhoW, v))

			for i := 0; i < na; i++ {
				for j := 0; j < nb; j++ {
					out.Node[eqset.Rho][k][i][j] = -(dRhoUda[i][j] + dRhoVdb[i][j])
					out.Node[eqset.U][k][i][j] = -(u[i][j]*dUda[i][j] + v[i][j]*dUdb[i][j]) - dPda[i][j]/rho[i][j]
					out.Node[eqset.V][k][i][j] = -(u[i][j]*dVda[i][j] + v[i][j]*dVdb[i][j]) - dPdb[i][j]/rho[i][j]
					out.Node[eqset.Theta][k][i][j] = -(dRhoThetaUda[i][j] + dRhoThetaVdb[i][j])
					out.Node[eqset.W][k][i][j] = -(dRhoWUda[i][j] + dRhoWVdb[i][j])
				}
			}
		}
	}

	if o.Cfg.NuScalar != 0 || o.Cfg.NuDiv != 0 {
		if err := o.addHyperviscosity(inSlot, outSlot, scratchSlot); err != nil {
			return err
		}
	}
	return nil
}

// addHyperviscosity applies the spectral derivative matrix twice, with an
// ApplyDSS in between to restore continuity of the intermediate gradient,
// and adds the scaled result into outSlot (§4.6).
func (o *Operator) addHyperviscosity(inSlot, outSlot, scratchSlot string) error {
	for _, p := range o.Grid.Patches {
		in := p.Slot(inSlot)
		scratch := p.Slot(scratchSlot)
		da, db := p.HorizDeriv()
		nLevel := len(in.Node[eqset.U])
		for c := eqset.Component(0); c < eqset.NComponents; c++ {
			for k := 0; k < nLevel; k++ {
				field := in.Node[c][k]
				lap := addMat(applyRowDeriv(da, field), applyColDeriv(db, field))
				copy2(scratch.Node[c][k], lap)
			}
		}
	}
	o.Grid.ApplyDSS(scratchSlot)

	for _, p := range o.Grid.Patches {
		scratch := p.Slot(scratchSlot)
		out := p.Slot(outSlot)
		da, db := p.HorizDeriv()
		dx, dy := p.HorizSpacing()
		strength := (dx * dy) * (dx * dy) / (o.Cfg.ReferenceLength * o.Cfg.ReferenceLength)
		nLevel := len(scratch.Node[eqset.U])
		for c := eqset.Component(0); c < eqset.NComponents; c++ {
			nu := o.Cfg.NuScalar
			if c == eqset.U || c == eqset.V {
				nu += o.Cfg.NuDiv
			}
			if nu == 0 {
				continue
			}
			for k := 0; k < nLevel; k++ {
				field := scratch.Node[c][k]
				lap2 := addMat(applyRowDeriv(da, field), applyColDeriv(db, field))
				scale := nu * strength
				for i := range lap2 {
					la.VecAdd(out.Node[c][k][i], scale, lap2[i])
				}
			}
		}
	}
	return nil
}

func alloc2(n, m int) [][]float64 { return la.MatAlloc(n, m) }

func mul(a, b [][]float64) [][]float64 {
	out := alloc2(len(a), len(a[0]))
	for i := range a {
		for j := range a[i] {
			out[i][j] = a[i][j] * b[i][j]
		}
	}
	return out
}

// addMat sums a and b row by row via la.VecAdd2 (out := 1*a + 1*b), the
// same accumulator the teacher uses for strain/stress superposition.
func addMat(a, b [][]float64) [][]float64 {
	out := alloc2(len(a), len(a[0]))
	for i := range a {
		la.VecAdd2(out[i], 1, a[i], 1, b[i])
	}
	return out
}

func copy2(dst, src [][]float64) {
	for i := range src {
		la.VecCopy(dst[i], 1, src[i])
	}
}

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
