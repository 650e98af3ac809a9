// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/dynacore/colop"
	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/mesh"
	"github.com/cpmech/dynacore/phys"
)

// Grid owns all per-DOF arrays, metric tensors, state slots and the mesh
// topology for one simulation (§4.4). It plays the role the teacher's
// fem.Domain plays for FEM DOFs/equations, generalized to array-based
// per-DOF state.
type Grid struct {
	Phys    *phys.Constants
	Eq      *eqset.EquationSet
	Topo    *mesh.Topology
	Stagger Stagger
	VelRep  VelocityRep
	Bounds  Bounds
	Ph, Pv  int
	Stretch VStretch

	VLayout *colop.Layout // vertical FE layout shared by every patch/column

	NElemA, NElemB int // global (domain-wide) horizontal element counts

	Patches []*GridPatch

	// named state slots, in creation order; SlotIndex maps name->index.
	// Each GridPatch owns its own per-name StateSlot array plus a single
	// time-independent reference-state slot (GridPatch.RefStateSlot).
	SlotNames []string
	SlotIndex map[string]int

	NTracers int

	Verbose bool
	ShowMsg bool
}

// Config bundles the construction-time parameters (§6 "persisted geometry")
type Config struct {
	Phys     *phys.Constants
	Bounds   Bounds
	Stagger  Stagger
	VelRep   VelocityRep
	Ph, Pv   int
	NElemA   int
	NElemB   int
	NElemV   int
	Halo     int
	NPatchA  int
	NPatchB  int
	LateralA LateralBC
	LateralB LateralBC
	NTracers int
	Dim      int
	Stretch  VStretch
}

// New validates the configuration and builds the patch topology and vertical
// layout, but does not yet allocate per-DOF arrays: call InitializeData
// after construction (§4.4 "InitializeData: after mesh topology is fixed...").
func New(cfg Config) *Grid {
	checkDim(cfg.Dim)
	if cfg.Dim == 2 && cfg.Pv != 1 {
		chk.Panic("grid: 2D (xz slice) simulations require vertical order 1; got Pv=%d", cfg.Pv)
	}
	if cfg.Ph < 2 || cfg.Ph > 8 {
		chk.Panic("grid: horizontal order must be in [2,8]; got %d", cfg.Ph)
	}
	if cfg.Pv < 1 || cfg.Pv > 8 {
		chk.Panic("grid: vertical order must be in [1,8]; got %d", cfg.Pv)
	}
	stretch := cfg.Stretch
	if stretch == nil {
		stretch = GalChenSomerville{}
	}

	g := &Grid{
		Phys:      cfg.Phys,
		Eq:        eqset.New(cfg.Phys, cfg.Dim),
		Stagger:   cfg.Stagger,
		VelRep:    cfg.VelRep,
		Bounds:    cfg.Bounds,
		Ph:        cfg.Ph,
		Pv:        cfg.Pv,
		Stretch:   stretch,
		NTracers:  cfg.NTracers,
		NElemA:    cfg.NPatchA * cfg.NElemA,
		NElemB:    cfg.NPatchB * cfg.NElemB,
		SlotIndex: make(map[string]int),
	}

	g.Topo = mesh.NewCartesianTopology(cfg.NPatchA, cfg.NPatchB, cfg.NElemA, cfg.NElemB, cfg.Halo,
		cfg.LateralA == Periodic, cfg.LateralB == Periodic)

	pv := cfg.Pv
	if cfg.Dim == 2 {
		pv = 1 // a single vertical element stack of order 1 is still valid; NElemV still varies
	}
	bounds := make([]float64, cfg.NElemV+1)
	for i := range bounds {
		bounds[i] = float64(i) / float64(cfg.NElemV)
	}
	g.VLayout = colop.NewLayout(pv, bounds)

	return g
}

// InitializeData allocates coordinate, metric, topography, Jacobian, state,
// reference-state and tendency arrays sized to each patch (§4.4
// "InitializeData"). slotNames must include at least 4 entries (§3 "State
// slots") to provide the RK stage work space; tendency slots are named
// "tend0".."tendN-1".
func (o *Grid) InitializeData(slotNames []string, nTendencies int) {
	if len(slotNames) < 4 {
		chk.Panic("grid: at least 4 state slots are required (RK stage workspace), got %d", len(slotNames))
	}
	o.Patches = make([]*GridPatch, len(o.Topo.Boxes))
	for i, box := range o.Topo.Boxes {
		o.Patches[i] = newGridPatch(o, box, o.Ph, o.Pv)
	}
	o.evaluateHorizontalCoords()

	nLevel := o.VLayout.NNode()
	nEdge := o.VLayout.NInterface()

	allNames := append(append([]string{}, slotNames...), tendencyNames(nTendencies)...)
	o.SlotNames = allNames
	o.SlotIndex = make(map[string]int, len(allNames))
	for idx, name := range allNames {
		o.SlotIndex[name] = idx
	}
	for _, p := range o.Patches {
		p.Slots = make([]*StateSlot, len(allNames))
		for idx, name := range allNames {
			p.Slots[idx] = newStateSlot(name, p.NA, p.NB, nLevel, nEdge, o.NTracers)
		}
	}

	// reference state: one time-independent instance per patch, not
	// duplicated across the RK work slots (§3 "State slots")
	for _, p := range o.Patches {
		p.refState = newStateSlot("reference", p.NA, p.NB, nLevel, nEdge, o.NTracers)
	}

	if o.ShowMsg {
		io.Pf(">> InitializeData: %d patches, %d state slots, %d tracers\n", len(o.Patches), len(allNames), o.NTracers)
	}
}

func tendencyNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = io.Sf("tend%d", i)
	}
	return names
}

// Slot returns the patch-local state slot with the given name
func (p *GridPatch) Slot(name string) *StateSlot {
	idx, ok := p.grid.SlotIndex[name]
	if !ok {
		chk.Panic("grid: no such state slot %q", name)
	}
	return p.Slots[idx]
}

// RefStateSlot returns this patch's time-independent reference state
func (p *GridPatch) RefStateSlot() *StateSlot { return p.refState }
