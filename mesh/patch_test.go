// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestCartesianTopologyPeriodicWrap(tst *testing.T) {
	chk.PrintTitle("CartesianTopologyPeriodicWrap")
	topo := NewCartesianTopology(3, 2, 4, 4, 1, true, false)
	first := topo.at(0, 0)
	last := topo.at(2, 0)
	if first.Neighbors[Left].PatchId != last.Id {
		tst.Fatalf("periodic-A wrap: expected patch 0's Left neighbor to be patch %d, got %d", last.Id, first.Neighbors[Left].PatchId)
	}
	if last.Neighbors[Right].PatchId != first.Id {
		tst.Fatalf("periodic-A wrap: expected last patch's Right neighbor to be patch %d, got %d", first.Id, last.Neighbors[Right].PatchId)
	}
	top := topo.at(0, 1)
	if top.Neighbors[Top].PatchId != -1 {
		tst.Fatalf("non-periodic-B: expected no Top neighbor at the domain edge, got %d", top.Neighbors[Top].PatchId)
	}
}

func TestBoxInteriorAndHalo(tst *testing.T) {
	chk.PrintTitle("BoxInteriorAndHalo")
	b := NewBox(0, 2, 6, 2, 6, 1)
	if !b.IsInterior(2, 2) || !b.IsInterior(5, 5) {
		tst.Fatal("expected (2,2) and (5,5) to be interior")
	}
	if b.IsInterior(1, 2) {
		tst.Fatal("expected (1,2) to be outside the interior")
	}
	if !b.IsHalo(1, 2) {
		tst.Fatal("expected (1,2) to be in the halo ring")
	}
	if b.IsHalo(10, 10) {
		tst.Fatal("expected (10,10) to be outside the allocated extent")
	}
}
