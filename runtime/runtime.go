// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package runtime is the FEM-analogue orchestrator (§3 "Domain/runtime
// separation"): it owns the Grid, the Integrator and the output Writer,
// and drives the stage/step time loop the way the teacher's fem.FEM.Run
// drives the stage loop, including onexit's CPU-time report.
package runtime

import (
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/dynacore/config"
	"github.com/cpmech/dynacore/dynerr"
	"github.com/cpmech/dynacore/grid"
	"github.com/cpmech/dynacore/horiz"
	"github.com/cpmech/dynacore/integrator"
	"github.com/cpmech/dynacore/output"
	"github.com/cpmech/dynacore/phys"
	"github.com/cpmech/dynacore/testcase"
	"github.com/cpmech/dynacore/vert"
)

// slot names this package wires into grid.InitializeData; the caller never
// needs to know them, mirroring the teacher's fem.Domain owning its own
// equation numbering.
const (
	slotActive  = "active"
	slotBackup  = "backup"
	slotStage1  = "stage1"
	slotStage2  = "stage2"
	slotStage3  = "stage3"
	slotPred    = "predictor"
	slotHVisc   = "hvisc"
	nTendencies = 4
)

// Run owns one simulation end to end (§3 "runtime.Run — owns the Grid, the
// integrator.Integrator, the Summary-equivalent output writer").
type Run struct {
	Cfg        *config.Data
	Grid       *grid.Grid
	Integrator *integrator.Integrator
	Writer     *output.Writer
	ShowMsg    bool
}

// New builds the Grid, the horizontal/vertical operators, the Integrator
// and the output Writer from cfg, and populates the initial state from the
// named test case (§4.4 "InitializeData", §4.9 "test-case registry").
func New(cfg *config.Data, showMsg bool) (*Run, error) {
	tc, err := lookupTestCase(cfg.TestCase)
	if err != nil {
		return nil, err
	}

	stagger, err := lookupStagger(cfg.Stagger)
	if err != nil {
		return nil, err
	}

	lateral := grid.Reflective
	if cfg.Periodic {
		lateral = grid.Periodic
	}

	g := grid.New(grid.Config{
		Phys: phys.NewEarth(cfg.RefLatDeg),
		Bounds: grid.Bounds{
			XMin: cfg.XMin, XMax: cfg.XMax,
			YMin: cfg.YMin, YMax: cfg.YMax,
			ZMin: 0, ZMax: tc.GetZtop(),
			RefLatDeg: cfg.RefLatDeg,
		},
		Stagger:  stagger,
		VelRep:   grid.Contravariant,
		Ph:       cfg.Horder,
		Pv:       cfg.Vorder,
		NElemA:   cfg.ResX,
		NElemB:   cfg.ResY,
		NElemV:   cfg.Levels,
		Halo:     cfg.Halo,
		NPatchA:  cfg.NPatchA,
		NPatchB:  cfg.NPatchB,
		LateralA: lateral,
		LateralB: lateral,
		NTracers: tc.GetTracerCount(),
		Dim:      cfg.Dim,
	})
	g.Verbose = showMsg
	g.ShowMsg = showMsg

	slotNames := []string{slotActive, slotBackup, slotStage1, slotStage2, slotStage3, slotPred, slotHVisc}
	g.InitializeData(slotNames, nTendencies)

	if err := g.EvaluateTopography(tc); err != nil {
		return nil, err
	}
	if err := g.EvaluateGeometricTerms(tc.GetZtop()); err != nil {
		return nil, err
	}
	if err := g.EvaluateTestCase(slotActive, 0, tc); err != nil {
		return nil, err
	}

	h := horiz.New(g, horiz.Config{NuScalar: cfg.NuScalar, NuDiv: cfg.NuDiv, ReferenceLength: cfg.ReferenceLength})
	vcfg := vert.DefaultConfig(cfg.DeltaT)
	vcfg.NewtonTol = cfg.NewtonTol
	vcfg.MaxNewton = cfg.MaxNewton
	vcfg.GMRESTol = cfg.GMRESTol
	vcfg.MaxGMRES = cfg.MaxGMRES
	v := vert.New(g, vcfg)

	scheme, err := lookupScheme(cfg.Scheme)
	if err != nil {
		return nil, err
	}
	it := integrator.New(g, h, v, integrator.Config{
		Scheme:            scheme,
		DeltaT:            cfg.DeltaT,
		UseReferenceState: cfg.UseReference && tc.HasReferenceState(),
	}, integrator.Slots{
		Active:                slotActive,
		Stage:                 []string{slotStage1, slotStage2, slotStage3},
		ExpTendency:           []string{"tend0", "tend1", "tend2"},
		ImpTendency:           []string{"tend3", slotStage1, slotStage2},
		Predictor:             slotPred,
		HyperviscosityScratch: slotHVisc,
	})

	w, err := output.New(g, output.Config{OutputDir: cfg.DirOut, FnKey: cfg.Key, EncType: cfg.EncType})
	if err != nil {
		return nil, err
	}

	return &Run{Cfg: cfg, Grid: g, Integrator: it, Writer: w, ShowMsg: showMsg}, nil
}

// Execute runs the time loop from t=0 to cfg.EndTime, writing output frames
// every cfg.OutputDeltaT and retrying a failed step with a halved time step
// from the saved "active" slot, up to cfg.MaxHalvings times (§5
// "Cancellation and timeouts": "the driver may... trigger a Δt halving and
// retry of the step from the saved active slot").
func (o *Run) Execute() (err error) {
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	t := 0.0
	nextOutput := 0.0
	frame := 0
	nominalDt := o.Integrator.Cfg.DeltaT

	for t < o.Cfg.EndTime-1e-12 {
		dt := nominalDt
		if t+dt > o.Cfg.EndTime {
			dt = o.Cfg.EndTime - t
		}

		backupSlot(o.Grid, slotBackup, slotActive)
		halvings := 0
		for {
			o.Integrator.Cfg.DeltaT = dt
			stepErr := o.Integrator.Step()
			if stepErr == nil {
				break
			}
			if !dynerr.IsCategory(stepErr, dynerr.Solver) || halvings >= o.Cfg.MaxHalvings {
				return stepErr
			}
			backupSlot(o.Grid, slotActive, slotBackup)
			dt *= 0.5
			halvings++
			if o.ShowMsg {
				io.Pf("> step failed at t=%v, halving dt to %v (attempt %d)\n", t, dt, halvings)
			}
		}
		t += dt

		if t+1e-9 >= nextOutput {
			f := o.Writer.Sample(slotActive, t, o.Cfg.UseReference)
			if err := o.Writer.Write(f, frame); err != nil {
				return err
			}
			nextOutput += o.Cfg.OutputDeltaT
			frame++
		}
	}
	return nil
}

// onexit mirrors the teacher's fem.FEM.onexit: report success/failure and
// elapsed CPU time.
func (o *Run) onexit(cputime time.Time, prevErr error) error {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
		} else {
			io.PfRed("> Failed: %v\n", prevErr)
		}
		io.Pf("> CPU time = %v\n", time.Since(cputime))
	}
	return prevErr
}

func backupSlot(g *grid.Grid, dst, src string) {
	for _, p := range g.Patches {
		p.Slot(dst).CopyFrom(p.Slot(src))
	}
}

func lookupTestCase(name string) (testcase.TestCase, error) {
	switch name {
	case "bubble":
		return testcase.NewThermalBubble(), nil
	case "gravitywave":
		return testcase.NewInertialGravityWave(), nil
	}
	return nil, dynerr.New(dynerr.Configuration, "runtime: unknown test case %q", name)
}

func lookupStagger(name string) (grid.Stagger, error) {
	switch name {
	case "levels":
		return grid.LEVELS, nil
	case "interfaces":
		return grid.INTERFACES, nil
	case "charney_phillips":
		return grid.CHARNEY_PHILLIPS, nil
	}
	return 0, dynerr.New(dynerr.Configuration, "runtime: unknown vertical staggering %q", name)
}

func lookupScheme(name string) (integrator.Scheme, error) {
	switch name {
	case "strang":
		return integrator.Strang, nil
	case "ark2":
		return integrator.ARK2Scheme, nil
	case "ark3":
		return integrator.ARK3Scheme, nil
	case "ark4":
		return integrator.ARK4Scheme, nil
	}
	return 0, dynerr.New(dynerr.Configuration, "runtime: unknown time-integration scheme %q", name)
}
