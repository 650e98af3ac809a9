// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/cpmech/dynacore/config"
	"github.com/cpmech/dynacore/runtime"
)

func main() {

	verbose := true

	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\ndynacore -- a non-hydrostatic atmospheric dynamical core\n\n")
	}

	var flagVals config.Data
	flagVals.SetDefault()
	flagVals.BindFlags(flag.CommandLine)
	flag.Parse()

	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("please provide a simulation file. Ex.: bubble.json")
	}
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".json"
	}

	cfg := config.Read(fnamepath)
	flag.Visit(func(f *flag.Flag) { config.ApplyFlag(cfg, &flagVals, f.Name) })

	run, err := runtime.New(cfg, verbose && mpi.Rank() == 0)
	if err != nil {
		chk.Panic("cannot build simulation: %v", err)
	}
	if err := run.Execute(); err != nil {
		chk.Panic("simulation failed: %v", err)
	}
}
