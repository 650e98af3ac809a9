// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/mesh"
)

// ApplyDSS averages shared-edge contributions across patch seams, correcting
// velocity-component orientation via the connectivity side flags (§4.4
// "ApplyDSS"). Interior element edges within a patch need no averaging: the
// horizontal layout already stores one value per shared node (see
// GridPatch.X/Y sizing in newGridPatch), so only patch-to-patch seams carry a
// duplicated DOF. Every seam is processed exactly once, from a snapshot of
// both sides' pre-update values, so the result does not depend on patch
// iteration order and a second call is a no-op (§8 "DSS is idempotent").
func (o *Grid) ApplyDSS(slotName string) {
	for _, p := range o.Patches {
		s := p.Slot(slotName)
		for dir, nb := range p.Box.Neighbors {
			if nb.PatchId < 0 {
				continue // domain boundary: no seam to average
			}
			if !isCanonicalSeam(p.Box.Id, dir, nb.PatchId) {
				continue // the paired (neighbor, oppositeDir) visit handles it
			}
			neighbor := o.Patches[nb.PatchId]
			ns := neighbor.Slot(slotName)
			averageSeam(p, s, dir, neighbor, ns, nb)
		}
	}
}

// isCanonicalSeam picks one of the two (patch,dir) / (neighbor,oppositeDir)
// visits to a shared seam so ApplyDSS processes it exactly once. Ordinary
// seams are canonicalized by patch id; a patch that wraps onto itself
// (periodic single-patch direction) is canonicalized by direction.
func isCanonicalSeam(patchId int, dir mesh.Direction, neighborId int) bool {
	if patchId != neighborId {
		return patchId < neighborId
	}
	switch dir {
	case mesh.Right, mesh.Top, mesh.TopRight, mesh.BottomRight:
		return true
	default:
		return false
	}
}

// oppositeDirection mirrors the side-to-side mapping a regular Cartesian
// patch topology uses (same table as mesh.Topology's internal wiring).
func oppositeDirection(dir mesh.Direction) mesh.Direction {
	switch dir {
	case mesh.Right:
		return mesh.Left
	case mesh.Left:
		return mesh.Right
	case mesh.Top:
		return mesh.Bottom
	case mesh.Bottom:
		return mesh.Top
	case mesh.TopRight:
		return mesh.BottomLeft
	case mesh.BottomLeft:
		return mesh.TopRight
	case mesh.TopLeft:
		return mesh.BottomRight
	case mesh.BottomRight:
		return mesh.TopLeft
	}
	return dir
}

// averageSeam matches own and neighbor boundary DOFs along dir, averages
// every component at every vertical node/interface level, and writes the
// averaged value back into both patches (sign-corrected for the neighbor's
// orientation).
func averageSeam(p *GridPatch, s *StateSlot, dir mesh.Direction, neighbor *GridPatch, ns *StateSlot, nb mesh.Neighbor) {
	ownPts := boundaryPoints(dir, p.NA, p.NB)
	nbrPts := boundaryPoints(oppositeDirection(dir), neighbor.NA, neighbor.NB)
	if nb.ReverseOrder {
		reversePoints(nbrPts)
	}
	n := len(ownPts)
	if len(nbrPts) != n {
		chk.Panic("grid: ApplyDSS seam length mismatch: own=%d nbr=%d", n, len(nbrPts))
	}
	for c := eqset.Component(0); c < eqset.NComponents; c++ {
		sign := seamSign(dir, c, nb)
		for idx := 0; idx < n; idx++ {
			a, b := ownPts[idx], nbrPts[idx]
			averageSeamColumn(s.Node[c], ns.Node[c], a, b, sign)
			averageSeamColumn(s.Edge[c], ns.Edge[c], a, b, sign)
		}
	}
}

func averageSeamColumn(own, nbr [][][]float64, a, b seamPoint, sign float64) {
	nLevel := len(own)
	for k := 0; k < nLevel; k++ {
		ownVal := own[k][a.i][a.j]
		nbrVal := nbr[k][b.i][b.j]
		avg := 0.5 * (ownVal + sign*nbrVal)
		own[k][a.i][a.j] = avg
		nbr[k][b.i][b.j] = sign * avg
	}
}

// seamSign reports the sign correction applied to the neighbor's value of
// component c before averaging with the owning patch's value, per the
// connectivity switchParallel/switchPerpendicular flags (§4.3). Only the
// two horizontal velocity components can be rotated by a panel mapping;
// every other component (theta, w, rho) is a scalar under the mapping.
func seamSign(dir mesh.Direction, c eqset.Component, nb mesh.Neighbor) float64 {
	if c != eqset.U && c != eqset.V {
		return 1.0
	}
	flip := nb.SwitchParallel
	if c == perpComponentFor(dir) {
		flip = nb.SwitchPerpendicular
	}
	if flip {
		return -1.0
	}
	return 1.0
}

func perpComponentFor(dir mesh.Direction) eqset.Component {
	if dir == mesh.Right || dir == mesh.Left {
		return eqset.U
	}
	return eqset.V
}

type seamPoint struct{ i, j int }

// boundaryPoints lists the (i,j) node indices along one side of a patch's
// full NA x NB extent, in a fixed traversal order (increasing j for the
// vertical sides, increasing i for the horizontal sides).
func boundaryPoints(dir mesh.Direction, na, nb int) []seamPoint {
	switch dir {
	case mesh.Right:
		pts := make([]seamPoint, nb)
		for j := 0; j < nb; j++ {
			pts[j] = seamPoint{na - 1, j}
		}
		return pts
	case mesh.Left:
		pts := make([]seamPoint, nb)
		for j := 0; j < nb; j++ {
			pts[j] = seamPoint{0, j}
		}
		return pts
	case mesh.Top:
		pts := make([]seamPoint, na)
		for i := 0; i < na; i++ {
			pts[i] = seamPoint{i, nb - 1}
		}
		return pts
	case mesh.Bottom:
		pts := make([]seamPoint, na)
		for i := 0; i < na; i++ {
			pts[i] = seamPoint{i, 0}
		}
		return pts
	case mesh.TopRight:
		return []seamPoint{{na - 1, nb - 1}}
	case mesh.TopLeft:
		return []seamPoint{{0, nb - 1}}
	case mesh.BottomLeft:
		return []seamPoint{{0, 0}}
	case mesh.BottomRight:
		return []seamPoint{{na - 1, 0}}
	}
	return nil
}

func reversePoints(pts []seamPoint) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
