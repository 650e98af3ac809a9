// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// BindFlags registers the CLI surface named in §6 ("resolution_x,
// resolution_y, levels, horizontal_order, vertical_order, delta_t,
// output_delta_t, end_time, restart_file, output_dir") on fs, writing the
// parsed values into o. Bind to a Data separate from the one Read returns and
// copy across only the flags actually set, via ApplyFlag from fs.Visit, so
// unset flags leave the simulation file's values alone.
func (o *Data) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&o.ResX, "resolution_x", o.ResX, "number of horizontal elements along x per patch row")
	fs.IntVar(&o.ResY, "resolution_y", o.ResY, "number of horizontal elements along y per patch column")
	fs.IntVar(&o.Levels, "levels", o.Levels, "number of vertical elements")
	fs.IntVar(&o.Horder, "horizontal_order", o.Horder, "horizontal spectral-element polynomial order")
	fs.IntVar(&o.Vorder, "vertical_order", o.Vorder, "vertical finite-element polynomial order")
	fs.Float64Var(&o.DeltaT, "delta_t", o.DeltaT, "time step in seconds")
	fs.Float64Var(&o.OutputDeltaT, "output_delta_t", o.OutputDeltaT, "output cadence in seconds")
	fs.Float64Var(&o.EndTime, "end_time", o.EndTime, "simulation end time in seconds")
	fs.StringVar(&o.RestartFile, "restart_file", o.RestartFile, "previously written frame to restart from")
	fs.StringVar(&o.DirOut, "output_dir", o.DirOut, "output directory")
}

// ApplyFlag copies the value of the named flag from src into dst; used with
// flag.Visit so only flags the user actually set on the command line
// override the simulation file (§6 "Command-line surface").
func ApplyFlag(dst, src *Data, name string) {
	switch name {
	case "resolution_x":
		dst.ResX = src.ResX
	case "resolution_y":
		dst.ResY = src.ResY
	case "levels":
		dst.Levels = src.Levels
	case "horizontal_order":
		dst.Horder = src.Horder
	case "vertical_order":
		dst.Vorder = src.Vorder
	case "delta_t":
		dst.DeltaT = src.DeltaT
	case "output_delta_t":
		dst.OutputDeltaT = src.OutputDeltaT
	case "end_time":
		dst.EndTime = src.EndTime
	case "restart_file":
		if src.RestartFile != "" && io.FnExt(src.RestartFile) == "" {
			chk.Panic("dynacore/config: -restart_file %q has no extension", src.RestartFile)
		}
		dst.RestartFile = src.RestartFile
	case "output_dir":
		dst.DirOut = src.DirOut
	}
}
