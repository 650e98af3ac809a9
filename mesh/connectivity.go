// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// Exchanger is the contract the patch layer requires from a transport
// implementation (MPI or otherwise, out of scope per spec.md §1): a
// blocking send/recv per side with a wait-all barrier, establishing the
// happens-before edge from "sender finished stage" to "receiver begins DSS"
// (spec.md §5).
type Exchanger interface {
	// Send posts an outgoing halo buffer for (patchId, side) to whichever
	// process owns the neighboring patch.
	Send(patchId int, side Direction, buf []float64) error

	// Recv blocks until the halo buffer for (patchId, side) has arrived and
	// copies it into buf.
	Recv(patchId int, side Direction, buf []float64) error

	// WaitAll blocks until every Send/Recv posted since the last WaitAll has
	// completed.
	WaitAll() error
}

// Topology owns a rectangular array of patch Boxes and their connectivity.
// The Cartesian specialization (this type) uses identity neighbor mappings
// on every interior seam; the abstraction exists so a cubed-sphere variant
// can retag Neighbor.SwitchParallel/SwitchPerpendicular/ReverseOrder without
// touching the DSS/boundary-condition code that consumes them (§9 Design
// Notes, "dynamic dispatch across grid kinds").
type Topology struct {
	NPatchesA, NPatchesB int
	Boxes                []*Box // row-major, length NPatchesA*NPatchesB
	PeriodicA, PeriodicB bool   // lateral boundary condition: periodic or reflective
}

// NewCartesianTopology builds a regular NPatchesA x NPatchesB array of
// patches, each with nElemA x nElemB interior elements and the given halo
// width, wiring identity (non-reversed, non-sign-flipped) neighbor
// descriptors between adjacent patches (§4.3, "The Cartesian specialization
// uses identity mappings").
func NewCartesianTopology(nPatchesA, nPatchesB, nElemA, nElemB, halo int, periodicA, periodicB bool) *Topology {
	if nPatchesA <= 0 || nPatchesB <= 0 {
		chk.Panic("mesh: NewCartesianTopology needs at least one patch per axis, got %dx%d", nPatchesA, nPatchesB)
	}
	if nElemA <= 0 || nElemB <= 0 {
		chk.Panic("mesh: NewCartesianTopology needs at least one element per patch axis, got %dx%d", nElemA, nElemB)
	}
	o := &Topology{NPatchesA: nPatchesA, NPatchesB: nPatchesB, PeriodicA: periodicA, PeriodicB: periodicB}
	o.Boxes = make([]*Box, nPatchesA*nPatchesB)
	for j := 0; j < nPatchesB; j++ {
		for i := 0; i < nPatchesA; i++ {
			id := j*nPatchesA + i
			o.Boxes[id] = NewBox(id, i*nElemA, (i+1)*nElemA, j*nElemB, (j+1)*nElemB, halo)
		}
	}
	for j := 0; j < nPatchesB; j++ {
		for i := 0; i < nPatchesA; i++ {
			box := o.at(i, j)
			o.wireSide(box, i, j, Right, i+1, j, nPatchesA, periodicA)
			o.wireSide(box, i, j, Left, i-1, j, nPatchesA, periodicA)
			o.wireSide(box, i, j, Top, i, j+1, nPatchesB, periodicB)
			o.wireSide(box, i, j, Bottom, i, j-1, nPatchesB, periodicB)
		}
	}
	return o
}

func (o *Topology) at(i, j int) *Box { return o.Boxes[j*o.NPatchesA+i] }

// wireSide sets the Right/Left/Top/Bottom neighbor descriptor for box (i,j),
// wrapping indices when the corresponding direction is periodic and leaving
// PatchId=-1 (a reflective or open domain boundary) otherwise.
func (o *Topology) wireSide(box *Box, i, j int, dir Direction, ni, nj, n int, periodic bool) {
	id := -1
	switch dir {
	case Right, Left:
		if ni >= 0 && ni < n {
			id = o.at(ni, j).Id
		} else if periodic {
			id = o.at((ni+n)%n, j).Id
		}
	case Top, Bottom:
		if nj >= 0 && nj < n {
			id = o.at(i, nj).Id
		} else if periodic {
			id = o.at(i, (nj+n)%n).Id
		}
	}
	box.SetNeighbor(Neighbor{Dir: dir, PatchId: id})
}
