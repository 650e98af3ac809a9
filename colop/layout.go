// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package colop implements the linear column operators that interpolate and
// differentiate between the level-based (discontinuous, nodal) and
// interface-based (continuous, edge) vertical representations (§4.2).
package colop

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/quad"
)

// eps is the location tolerance used when deciding which finite element
// contains an output point (§4.2)
const eps = 1e-12

// Layout describes the vertical finite-element mesh a column operator is
// built against: NElem elements of order P on the reference interval [0,1],
// each holding P+1 GLL nodes local to the element (discontinuous across
// element boundaries) plus NElem+1 shared interface points at the element
// boundaries.
type Layout struct {
	P          int
	NElem      int
	ElemBounds []float64   // [NElem+1] REta interface coordinates
	ElemNodes  [][]float64 // [NElem][P+1] REta node coordinates, per element
}

// NewLayout builds a Layout from NElem equal-order elements spanning the
// monotone reference-coordinate boundaries in bounds (length NElem+1; not
// necessarily uniform -- refinement ratios are allowed).
func NewLayout(p int, bounds []float64) *Layout {
	if len(bounds) < 2 {
		chk.Panic("NewLayout requires at least 2 element boundaries; got %d", len(bounds))
	}
	o := &Layout{P: p, NElem: len(bounds) - 1, ElemBounds: append([]float64{}, bounds...)}
	o.ElemNodes = make([][]float64, o.NElem)
	for e := 0; e < o.NElem; e++ {
		o.ElemNodes[e] = quad.Points(p, bounds[e], bounds[e+1])
	}
	return o
}

// NNode returns the total number of (discontinuous) nodal DOFs
func (o *Layout) NNode() int { return o.NElem * (o.P + 1) }

// NInterface returns the total number of (continuous) interface DOFs
func (o *Layout) NInterface() int { return o.NElem + 1 }

// NodeIndex returns the global node index of local node j (0..P) in element e
func (o *Layout) NodeIndex(e, j int) int { return e*(o.P+1) + j }

// FindElement locates the element containing reta (within eps tolerance),
// returning the element index and whether reta sits on an internal
// interface (within 2*eps of an interior boundary).
func (o *Layout) FindElement(reta float64) (elem int, onInterface bool) {
	n := o.NElem
	for e := 0; e < n; e++ {
		lo, hi := o.ElemBounds[e], o.ElemBounds[e+1]
		if reta >= lo-eps && reta <= hi+eps {
			elem = e
			if e > 0 && math.Abs(reta-lo) < 2*eps {
				onInterface = true
			}
			if e < n-1 && math.Abs(reta-hi) < 2*eps {
				onInterface = true
				elem = e // caller averages with e+1
			}
			return
		}
	}
	chk.Panic("FindElement: reta=%v lies outside the column domain [%v,%v]", reta, o.ElemBounds[0], o.ElemBounds[n])
	return
}
