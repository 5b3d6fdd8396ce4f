// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gmd drives a material model through a user-prescribed loading path and
// tabulates the single-point response.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/tjfulle/gmd/driver"
	"github.com/tjfulle/gmd/inp"
	"github.com/tjfulle/gmd/mat"
	"github.com/tjfulle/gmd/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".gmd", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nGmd -- Go Material Driver\n\n")
		io.Pf("Copyright 2016 The Gmd Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot results", "doplot", doplot,
		))
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}

	// material model
	mdl, err := mat.New(sim.Mat.Model)
	if err != nil {
		chk.Panic("cannot allocate material model:\n%v", err)
	}
	err = mdl.Init(sim.Mat.Prms)
	if err != nil {
		chk.Panic("cannot initialise material model:\n%v", err)
	}

	// loading path
	pth, err := sim.BuildPath()
	if err != nil {
		chk.Panic("cannot build loading path:\n%v", err)
	}
	if verbose {
		io.Pf("%v\n", pth)
	}

	// run
	drv := driver.New(mdl)
	drv.Silent = !verbose
	drv.TermTime = sim.Data.TermTime
	drv.UseTangent = sim.Data.UseTangent
	drv.CheckJ = sim.Data.CheckJ
	res := new(out.Results)
	err = drv.Run(pth, res)
	if err != nil {
		chk.Panic("driver failed:\n%v", err)
	}

	// results
	err = out.WriteTable(sim.Data.DirOut, sim.FnKey, res)
	if err != nil {
		chk.Panic("cannot write results:\n%v", err)
	}
	if verbose {
		io.Pf("> Results written to %s\n", io.Sf("%s/%s.res", sim.Data.DirOut, sim.FnKey))
	}

	// plot
	if doplot {
		plotter := out.NewPlotter()
		plotter.SaveDir = sim.Data.DirOut
		plotter.SaveFnk = sim.FnKey
		err = plotter.Plot([][]string{
			{"eps11", "sig11"},
			{"time", "pres"},
			{"time", "eqeps"},
			{"time", "evol"},
		}, res)
		if err != nil {
			chk.Panic("cannot plot results:\n%v", err)
		}
	}
}
