// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh implements the patch box and connectivity abstraction (§4.3):
// a rectangular index space with halo rings, per-side neighbor descriptors,
// and the exchange contract the transport layer (gosl/mpi, out of scope per
// spec.md §1) is built against.
package mesh

import "github.com/cpmech/gosl/chk"

// Direction enumerates the eight sides/corners a patch can border
type Direction int

// directions
const (
	Right Direction = iota
	Top
	Left
	Bottom
	TopRight
	TopLeft
	BottomLeft
	BottomRight
)

// Neighbor describes one side's connectivity to an adjacent patch
type Neighbor struct {
	Dir                 Direction
	PatchId             int  // -1 if this side has no neighbor (domain boundary)
	SwitchParallel      bool // velocity-component sign flip, parallel to the side
	SwitchPerpendicular bool // velocity-component sign flip, perpendicular to the side
	ReverseOrder        bool // the neighbor's shared edge is stored in reverse index order
}

// Box is a rectangular index space: [ABegin,AEnd) x [BBegin,BEnd) interior
// element indices, surrounded by a halo of H elements on each side.
type Box struct {
	Id                         int
	ABegin, AEnd, BBegin, BEnd int // interior element index ranges
	Halo                       int // halo width in elements, same on every side
	Neighbors                  map[Direction]Neighbor
}

// NewBox builds a patch box with the given interior extents and halo width
func NewBox(id, aBegin, aEnd, bBegin, bEnd, halo int) *Box {
	if aEnd <= aBegin || bEnd <= bBegin {
		chk.Panic("patch %d has a non-positive interior extent: a=[%d,%d) b=[%d,%d)", id, aBegin, aEnd, bBegin, bEnd)
	}
	if halo < 0 {
		chk.Panic("patch %d: halo width must be >= 0, got %d", id, halo)
	}
	return &Box{Id: id, ABegin: aBegin, AEnd: aEnd, BBegin: bBegin, BEnd: bEnd, Halo: halo, Neighbors: make(map[Direction]Neighbor)}
}

// NElementsA returns the interior element count along the A direction
func (o *Box) NElementsA() int { return o.AEnd - o.ABegin }

// NElementsB returns the interior element count along the B direction
func (o *Box) NElementsB() int { return o.BEnd - o.BBegin }

// FullABegin / FullAEnd / FullBBegin / FullBEnd give the index ranges
// including the halo ring, i.e. the full allocated extent of this box
func (o *Box) FullABegin() int { return o.ABegin - o.Halo }
func (o *Box) FullAEnd() int   { return o.AEnd + o.Halo }
func (o *Box) FullBBegin() int { return o.BBegin - o.Halo }
func (o *Box) FullBEnd() int   { return o.BEnd + o.Halo }

// IsInterior reports whether element (a,b) lies in the owned interior
func (o *Box) IsInterior(a, b int) bool {
	return a >= o.ABegin && a < o.AEnd && b >= o.BBegin && b < o.BEnd
}

// IsHalo reports whether element (a,b) lies in the halo ring (allocated but
// not owned)
func (o *Box) IsHalo(a, b int) bool {
	if o.IsInterior(a, b) {
		return false
	}
	return a >= o.FullABegin() && a < o.FullAEnd() && b >= o.FullBBegin() && b < o.FullBEnd()
}

// SetNeighbor records the connectivity descriptor for one side
func (o *Box) SetNeighbor(n Neighbor) { o.Neighbors[n.Dir] = n }

// DeltaA returns the element width along A for a uniform partition spanning
// a domain of length lenA, used when caching element deltas for the grid
func (o *Box) DeltaA(lenA float64, nGlobalA int) float64 { return lenA / float64(nGlobalA) }

// DeltaB returns the element width along B for a uniform partition spanning
// a domain of length lenB, used when caching element deltas for the grid
func (o *Box) DeltaB(lenB float64, nGlobalB int) float64 { return lenB / float64(nGlobalB) }

// opposite returns the direction on the opposite side of the box for the
// default (Cartesian, identity) connectivity of a regular grid of patches.
func opposite(d Direction) Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Top:
		return Bottom
	case Bottom:
		return Top
	case TopRight:
		return BottomLeft
	case BottomLeft:
		return TopRight
	case TopLeft:
		return BottomRight
	case BottomRight:
		return TopLeft
	}
	chk.Panic("unknown direction %v", d)
	return Right
}
