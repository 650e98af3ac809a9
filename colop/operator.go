// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colop

import "github.com/cpmech/gosl/chk"

// Row is one output row of a banded column Operator: the output value is a
// linear combination of input[Begin:End] weighted by Coeffs.
type Row struct {
	Begin, End int // half-open support [Begin,End) into the input array
	Coeffs     []float64
}

// Apply evaluates this row against the full input array
func (r Row) Apply(in []float64) float64 {
	s := 0.0
	for i := r.Begin; i < r.End; i++ {
		s += r.Coeffs[i-r.Begin] * in[i]
	}
	return s
}

// Operator is a banded matrix mapping an input column array to an output
// column array (§3 "Column operators", §4.2). Immutable after construction.
type Operator struct {
	NIn  int
	Rows []Row // one per output DOF
}

// Apply maps in (length NIn) to a freshly-allocated output array
func (o *Operator) Apply(in []float64) []float64 {
	if len(in) != o.NIn {
		chk.Panic("Operator.Apply: expected input of length %d, got %d", o.NIn, len(in))
	}
	out := make([]float64, len(o.Rows))
	for l, row := range o.Rows {
		out[l] = row.Apply(in)
	}
	return out
}

// Bandwidth returns the widest row support, used to check the stable-
// bandwidth invariant (<= 2*(p+1), §4.2)
func (o *Operator) Bandwidth() int {
	w := 0
	for _, r := range o.Rows {
		if r.End-r.Begin > w {
			w = r.End - r.Begin
		}
	}
	return w
}

// Compose returns the operator equivalent to applying a then b (b after a),
// expressed as a dense matrix product over the union of supports, as §4.2
// specifies for derivative-after-interpolation compositions.
func Compose(a, b *Operator) *Operator {
	if len(a.Rows) != b.NIn {
		chk.Panic("Compose: a produces %d outputs but b expects %d inputs", len(a.Rows), b.NIn)
	}
	out := &Operator{NIn: a.NIn}
	for _, rowB := range b.Rows {
		begin, end := a.NIn, 0
		for k := rowB.Begin; k < rowB.End; k++ {
			rowA := a.Rows[k]
			if rowA.Begin < begin {
				begin = rowA.Begin
			}
			if rowA.End > end {
				end = rowA.End
			}
		}
		if end <= begin {
			out.Rows = append(out.Rows, Row{Begin: 0, End: 0, Coeffs: nil})
			continue
		}
		coeffs := make([]float64, end-begin)
		for k := rowB.Begin; k < rowB.End; k++ {
			wk := rowB.Coeffs[k-rowB.Begin]
			rowA := a.Rows[k]
			for i := rowA.Begin; i < rowA.End; i++ {
				coeffs[i-begin] += wk * rowA.Coeffs[i-rowA.Begin]
			}
		}
		out.Rows = append(out.Rows, Row{Begin: begin, End: end, Coeffs: coeffs})
	}
	return out
}
