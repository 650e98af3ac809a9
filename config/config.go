// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config implements the input data read from a (.json) simulation
// description file (§2 "Configuration"), grounded on the teacher's
// inp.ReadSim (JSON-tagged Data struct, encoding/json + chk.Panic
// validation, derived output directory/key).
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds everything needed to build a Grid, an Integrator and a Writer
// for one run (§6 "Persisted geometry", §6 "Command-line surface").
type Data struct {
	// description and output
	Desc    string `json:"desc"`
	DirOut  string `json:"dirout"`
	EncType string `json:"enctype"` // "gob" (default) or "json"

	// persisted geometry (§6 "Persisted geometry")
	XMin, XMax float64 `json:"xmin"`
	YMin, YMax float64 `json:"ymin"`
	ResX       int     `json:"resolution_x"` // horizontal elements along x, per patch row
	ResY       int     `json:"resolution_y"`
	Levels     int     `json:"levels"` // vertical elements
	Horder     int     `json:"horizontal_order"`
	Vorder     int     `json:"vertical_order"`
	NPatchA    int     `json:"npatcha"`
	NPatchB    int     `json:"npatchb"`
	Halo       int     `json:"halo"`
	RefLatDeg  float64 `json:"reflatdeg"`
	Periodic   bool    `json:"periodic"` // lateral BC: periodic if true, reflective otherwise
	Dim        int     `json:"dim"`      // 2 (x-z slice) or 3
	Stagger    string  `json:"stagger"`  // "levels", "interfaces" or "charney_phillips"

	// test case
	TestCase string `json:"testcase"` // "bubble" or "gravitywave"

	// time stepping (§6 "Command-line surface")
	DeltaT       float64 `json:"delta_t"`
	OutputDeltaT float64 `json:"output_delta_t"`
	EndTime      float64 `json:"end_time"`
	RestartFile  string  `json:"restart_file"`
	Scheme       string  `json:"scheme"` // "strang", "ark2", "ark3" or "ark4"
	UseReference bool    `json:"use_reference"`

	// JFNK/GMRES solver options
	NewtonTol   float64 `json:"newton_tol"`
	MaxNewton   int     `json:"max_newton"`
	GMRESTol    float64 `json:"gmres_tol"`
	MaxGMRES    int     `json:"max_gmres"`
	MaxHalvings int     `json:"max_halvings"`

	// hyperviscosity
	NuScalar        float64 `json:"nu_scalar"`
	NuDiv           float64 `json:"nu_div"`
	ReferenceLength float64 `json:"reference_length"`

	// derived
	Key string `json:"-"`
}

// SetDefault fills the zero-valued polynomial orders, patch counts, halo,
// dimensionality, staggering, test case, scheme, encoding, solver options and
// reference length with defaults, the way the teacher's SolverData.SetDefault
// does. Domain bounds, resolutions, levels, time-stepping values, reference
// latitude and hyperviscosity coefficients are left as given.
func (o *Data) SetDefault() {
	if o.Horder == 0 {
		o.Horder = 4
	}
	if o.Vorder == 0 {
		o.Vorder = 4
	}
	if o.NPatchA == 0 {
		o.NPatchA = 1
	}
	if o.NPatchB == 0 {
		o.NPatchB = 1
	}
	if o.Halo == 0 {
		o.Halo = 1
	}
	if o.Dim == 0 {
		o.Dim = 3
	}
	if o.Stagger == "" {
		o.Stagger = "levels"
	}
	if o.TestCase == "" {
		o.TestCase = "bubble"
	}
	if o.Scheme == "" {
		o.Scheme = "ark2"
	}
	if o.EncType != "json" {
		o.EncType = "gob"
	}
	if o.NewtonTol == 0 {
		o.NewtonTol = 1e-8
	}
	if o.MaxNewton == 0 {
		o.MaxNewton = 20
	}
	if o.GMRESTol == 0 {
		o.GMRESTol = 1e-10
	}
	if o.MaxGMRES == 0 {
		o.MaxGMRES = 40
	}
	if o.MaxHalvings == 0 {
		o.MaxHalvings = 4
	}
	if o.ReferenceLength == 0 {
		o.ReferenceLength = 1000
	}
}

// Read loads a simulation description from a JSON file and applies defaults
// (§2 "Configuration"), deriving DirOut and Key from the file path the way
// inp.ReadSim derives o.DirOut/o.Key from simfilepath.
func Read(fnamepath string) *Data {
	var o Data
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("config: cannot read simulation file %q", fnamepath)
	}
	o.SetDefault()
	if err := json.Unmarshal(b, &o); err != nil {
		chk.Panic("config: cannot unmarshal simulation file %q: %v", fnamepath, err)
	}
	o.SetDefault()

	fnkey := io.FnKey(filepath.Base(fnamepath))
	o.Key = fnkey
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "dynacore", fnkey)
	}
	return &o
}
