// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/dynacore/eqset"
)

// StateSlot is one named data instance (§3 "State slots"): a node-resident
// field, an edge-resident field, and per-instance tracer arrays, all sized
// to one GridPatch.
type StateSlot struct {
	Name string

	// Node field: [component][level][ia][ib]
	Node [eqset.NComponents][][][]float64

	// Edge field: [component][interface][ia][ib]
	Edge [eqset.NComponents][][][]float64

	// Tracers: [tracer][level][ia][ib]
	Tracers [][][][]float64
}

func newStateSlot(name string, na, nb, nLevel, nEdge, nTracers int) *StateSlot {
	s := &StateSlot{Name: name}
	for c := 0; c < eqset.NComponents; c++ {
		s.Node[c] = alloc3(nLevel, na, nb)
		s.Edge[c] = alloc3(nEdge, na, nb)
	}
	s.Tracers = make([][][][]float64, nTracers)
	for t := range s.Tracers {
		s.Tracers[t] = alloc3(nLevel, na, nb)
	}
	return s
}

// Reset zeroes every array in this slot, mirroring ele.Solution.Reset's
// clear-on-reuse pattern for time-integrator work slots.
func (s *StateSlot) Reset() {
	for c := 0; c < eqset.NComponents; c++ {
		zero3(s.Node[c])
		zero3(s.Edge[c])
	}
	for _, tr := range s.Tracers {
		zero3(tr)
	}
}

func zero3(a [][][]float64) {
	for i := range a {
		for j := range a[i] {
			la.VecFill(a[i][j], 0)
		}
	}
}

// CopyFrom overwrites s in place with src's contents (same shape assumed),
// used by the integrator to seed work slots from "active" at each stage.
func (s *StateSlot) CopyFrom(src *StateSlot) {
	for c := 0; c < eqset.NComponents; c++ {
		copy3(s.Node[c], src.Node[c])
		copy3(s.Edge[c], src.Edge[c])
	}
	for t := range s.Tracers {
		copy3(s.Tracers[t], src.Tracers[t])
	}
}

func copy3(dst, src [][][]float64) {
	for i := range src {
		for j := range src[i] {
			la.VecCopy(dst[i][j], 1, src[i][j])
		}
	}
}
