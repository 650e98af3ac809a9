// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/dynacore/colop"
	"github.com/cpmech/dynacore/dynerr"
	"github.com/cpmech/dynacore/quad"
	"github.com/cpmech/dynacore/testcase"
)

// horizDerivMatrices caches the per-patch Lagrange derivative matrices (one
// per GLL node) used to differentiate topography and to build the
// horizontal metric terms and ComputeCurlAndDiv (§4.6's "spectral derivative
// matrix applied twice").
type horizDerivMatrices struct {
	Da [][]float64 // Da[i][*]: row of d/da coefficients at node i, over the patch's NA points
	Db [][]float64
}

func buildHorizDeriv(n int, coords []float64) [][]float64 {
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = quad.DerivCoeffs(coords, coords[i])
	}
	return rows
}

// EvaluateTopography samples the test-case topography at GLL nodes and
// computes its horizontal derivatives via the spectral derivative matrix
// (§4.4 "EvaluateTopography"). Returns a ConfigurationError if topography
// meets or exceeds ztop anywhere.
func (o *Grid) EvaluateTopography(tc testcase.TestCase) error {
	ztop := tc.GetZtop()
	if ztop <= 0 {
		return dynerr.New(dynerr.Configuration, "ztop must be positive; got %v", ztop)
	}
	for _, p := range o.Patches {
		xCoords := columnCoords(p, true)
		yCoords := columnCoords(p, false)
		for i := 0; i < p.NA; i++ {
			for j := 0; j < p.NB; j++ {
				zs := tc.EvaluateTopography(o.Phys, p.X[i][j], p.Y[i][j])
				if zs < 0 || zs >= ztop {
					return dynerr.New(dynerr.Configuration, "topography z_s=%v out of [0,ztop=%v) at (x=%v,y=%v)", zs, ztop, p.X[i][j], p.Y[i][j])
				}
				p.Zs[i][j] = zs
			}
		}
		da := buildHorizDeriv(p.NA, xCoords)
		db := buildHorizDeriv(p.NB, yCoords)
		for i := 0; i < p.NA; i++ {
			for j := 0; j < p.NB; j++ {
				s := 0.0
				for k := 0; k < p.NA; k++ {
					s += da[i][k] * p.Zs[k][j]
				}
				p.DaZs[i][j] = s
				s = 0.0
				for k := 0; k < p.NB; k++ {
					s += db[j][k] * p.Zs[i][k]
				}
				p.DbZs[i][j] = s
			}
		}
	}
	return nil
}

// HorizDeriv returns this patch's along-a and along-b spectral derivative
// matrices, the same ones EvaluateTopography builds for differentiating
// z_s, for reuse by the horizontal-dynamics and diagnostic operators.
func (p *GridPatch) HorizDeriv() (da, db [][]float64) {
	da = buildHorizDeriv(p.NA, columnCoords(p, true))
	db = buildHorizDeriv(p.NB, columnCoords(p, false))
	return
}

// HorizSpacing returns this patch's average along-a and along-b node
// spacing, used by the horizontal hyperviscosity strength scaling
// (dx*dy)^2 * referenceLength^-2 * nuHoriz (§4.6).
func (p *GridPatch) HorizSpacing() (dx, dy float64) {
	xCoords := columnCoords(p, true)
	yCoords := columnCoords(p, false)
	dx = (xCoords[len(xCoords)-1] - xCoords[0]) / float64(len(xCoords)-1)
	dy = dx
	if len(yCoords) > 1 {
		dy = (yCoords[len(yCoords)-1] - yCoords[0]) / float64(len(yCoords)-1)
	}
	return
}

// columnCoords returns the NA (or NB) distinct physical coordinates along
// the requested horizontal direction for patch p, reusing the first row/
// column since the mesh is tensor-product.
func columnCoords(p *GridPatch, alongA bool) []float64 {
	if alongA {
		c := make([]float64, p.NA)
		for i := range c {
			c[i] = p.X[i][0]
		}
		return c
	}
	c := make([]float64, p.NB)
	for j := range c {
		c[j] = p.Y[0][j]
	}
	return c
}

// EvaluateGeometricTerms computes z, da z, db z, dxi z and all metric
// tensors at node and interface vertical positions (§3, §4.4
// "EvaluateGeometricTerms"). Verifies sum(W_node)=1 and sum(W_edge)=1 to
// 1e-13 (§4.4, §8).
func (o *Grid) EvaluateGeometricTerms(ztop float64) error {
	lay := o.VLayout
	wNode := gllColumnWeights(lay, colop.Nodes)
	wEdge := gllColumnWeights(lay, colop.Interfaces)
	if err := checkPartitionOfUnity(wNode, lay.ElemBounds[len(lay.ElemBounds)-1]-lay.ElemBounds[0]); err != nil {
		return err
	}
	if err := checkPartitionOfUnity(wEdge, lay.ElemBounds[len(lay.ElemBounds)-1]-lay.ElemBounds[0]); err != nil {
		return err
	}

	nodeReta := flattenLayout(lay, colop.Nodes)
	edgeReta := lay.ElemBounds

	for _, p := range o.Patches {
		for i := 0; i < p.NA; i++ {
			for j := 0; j < p.NB; j++ {
				zs := p.Zs[i][j]
				daZs, dbZs := p.DaZs[i][j], p.DbZs[i][j]
				for k, reta := range nodeReta {
					F := o.Stretch.F(reta)
					dF := o.Stretch.DF(reta)
					z := zs + (ztop-zs)*F
					daZ := daZs * (1 - F) // dz/da = dzs/da*(1-F) since d(ztop-zs)/da = -dzs/da
					dbZ := dbZs * (1 - F)
					dxiZ := (ztop - zs) * dF
					p.ZNode[i][j][k] = z
					p.DaZNode[i][j][k] = daZ
					p.DbZNode[i][j][k] = dbZ
					p.DxiZNode[i][j][k] = dxiZ
					m, err := buildMetric3(daZ, dbZ, dxiZ)
					if err != nil {
						return err
					}
					p.MetricNode[i][j][k] = m
				}
				for k, reta := range edgeReta {
					F := o.Stretch.F(reta)
					dF := o.Stretch.DF(reta)
					z := zs + (ztop-zs)*F
					daZ := daZs * (1 - F)
					dbZ := dbZs * (1 - F)
					dxiZ := (ztop - zs) * dF
					p.ZEdge[i][j][k] = z
					p.DaZEdge[i][j][k] = daZ
					p.DbZEdge[i][j][k] = dbZ
					p.DxiZEdge[i][j][k] = dxiZ
					m, err := buildMetric3(daZ, dbZ, dxiZ)
					if err != nil {
						return err
					}
					p.MetricEdge[i][j][k] = m
				}
			}
		}
	}
	if o.ShowMsg {
		io.Pf(">> EvaluateGeometricTerms: geometry built for %d patches\n", len(o.Patches))
	}
	return nil
}

// gllColumnWeights returns the GLL quadrature weight of every DOF in the
// requested representation: the order-P element weights kept separate per
// node (levels, discontinuous), or the two-point element weights (half the
// element width at each end) with shared-boundary weights combined
// (interfaces).
func gllColumnWeights(lay *colop.Layout, rep colop.Rep) []float64 {
	switch rep {
	case colop.Nodes:
		w := make([]float64, lay.NNode())
		for e := 0; e < lay.NElem; e++ {
			ew := quad.Weights(lay.P, lay.ElemBounds[e], lay.ElemBounds[e+1])
			for j, v := range ew {
				w[lay.NodeIndex(e, j)] = v
			}
		}
		return w
	case colop.Interfaces:
		w := make([]float64, lay.NInterface())
		for e := 0; e < lay.NElem; e++ {
			h := 0.5 * (lay.ElemBounds[e+1] - lay.ElemBounds[e])
			w[e] += h
			w[e+1] += h
		}
		return w
	}
	panic("unreachable")
}

func checkPartitionOfUnity(w []float64, length float64) error {
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	if abs(sum-length) > 1e-13 {
		return dynerr.New(dynerr.Geometry, "normalized-area check failed: sum(W)=%v, expected %v", sum, length)
	}
	return nil
}

func flattenLayout(lay *colop.Layout, rep colop.Rep) []float64 {
	if rep == colop.Interfaces {
		return lay.ElemBounds
	}
	out := make([]float64, lay.NNode())
	for e := 0; e < lay.NElem; e++ {
		for j, x := range lay.ElemNodes[e] {
			out[lay.NodeIndex(e, j)] = x
		}
	}
	return out
}
