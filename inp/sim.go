// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.gmd) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/tjfulle/gmd/path"
)

// Data holds global data for simulations
type Data struct {
	Desc       string  `json:"desc"`       // description of simulation
	DirOut     string  `json:"dirout"`     // directory for output; e.g. /tmp/gmd
	TermTime   float64 `json:"termtime"`   // stop after reaching this time; 0 means run the whole path
	UseTangent bool    `json:"usetangent"` // use the model tangent in the stress sub-solve
	CheckJ     bool    `json:"checkj"`     // cross-check the model tangent numerically
}

// MatData holds the material model selection and its parameters
type MatData struct {
	Model string     `json:"model"` // model name. ex: lin-elast, von-mises, visco-elast
	Prms  dbf.Params `json:"prms"`  // model parameters
}

// PathData holds the loading path specification. Format selects the front
// end: "default" (literal legs in Lines), "table" (numeric Rows or an
// external File with named columns), or "functions" (closed-form functions of
// time referenced by name).
type PathData struct {

	// scale factors
	Kappa     float64 `json:"kappa"`     // κ: strain measure parameter
	Amplitude float64 `json:"amplitude"` // peak-value multiplier; default = 1
	RateFac   float64 `json:"ratfac"`    // rate multiplier; default = 1
	StepFac   float64 `json:"nfac"`      // step-count multiplier; default = 1
	Ndumps    int     `json:"ndumps"`    // output dumps per leg; 0 means default
	Estar     float64 `json:"estar"`     // strain unit multiplier; default = 1
	Tstar     float64 `json:"tstar"`     // time unit multiplier; default = 1
	Sstar     float64 `json:"sstar"`     // stress unit multiplier; default = 1
	Fstar     float64 `json:"fstar"`     // deformation gradient unit multiplier; default = 1
	Efstar    float64 `json:"efstar"`    // electric field unit multiplier; default = 1
	Dstar     float64 `json:"dstar"`     // displacement unit multiplier; default = 1

	// front-end selection
	Format string `json:"format"` // "default", "table" or "functions"

	// "default" format
	Lines [][]string `json:"lines"` // literal legs: [time, steps, control, targets...]

	// "table" format
	Rows    [][]float64 `json:"rows"`    // numeric rows (first selected column is the time)
	File    string      `json:"file"`    // external table file with named columns
	Colkeys []string    `json:"colkeys"` // column names to read from File (first is the time)
	Tfmt    string      `json:"tfmt"`    // "time" (absolute) or "dt" (increments); default = "time"
	Cols    []int       `json:"cols"`    // column selection for Rows; nil means all
	Cfmt    string      `json:"cfmt"`    // control format. ex: "EEEEEE", "SSSEEE"

	// "functions" format
	Ttime  float64   `json:"ttime"`     // termination time
	Nsteps int       `json:"nsteps"`    // number of sampling steps
	Fcns   []string  `json:"functions"` // function names, one per control slot
	Scales []float64 `json:"scales"`    // scale per function; nil means all ones
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data      `json:"data"`      // global data
	Mat       MatData   `json:"material"`  // material data
	PathData  PathData  `json:"path"`      // loading path data
	Functions FuncsData `json:"functions"` // time functions

	// derived
	FnKey string // filename key of the simulation file
}

// ReadSim reads and parses a simulation file, setting the defaults
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// derived data and defaults
	fn := filepath.Base(simfilepath)
	o.FnKey = io.FnKey(fn)
	if o.Data.DirOut == "" {
		o.Data.DirOut = "/tmp/gmd"
	}
	if o.Mat.Model == "" {
		return nil, chk.Err("ReadSim: simulation file %q does not name a material model", simfilepath)
	}
	return
}

// Factors returns the path scale factors, with unset entries at their
// neutral values
func (o *Simulation) Factors() *path.Factors {
	fac := path.NewFactors()
	pd := &o.PathData
	fac.Kappa = pd.Kappa
	fac.Ndumps = pd.Ndumps
	setNonzero(&fac.Amplitude, pd.Amplitude)
	setNonzero(&fac.RateFac, pd.RateFac)
	setNonzero(&fac.StepFac, pd.StepFac)
	setNonzero(&fac.Estar, pd.Estar)
	setNonzero(&fac.Tstar, pd.Tstar)
	setNonzero(&fac.Sstar, pd.Sstar)
	setNonzero(&fac.Fstar, pd.Fstar)
	setNonzero(&fac.Efstar, pd.Efstar)
	setNonzero(&fac.Dstar, pd.Dstar)
	return fac
}

// BuildPath assembles and normalizes the loading path
func (o *Simulation) BuildPath() (pth *path.Path, err error) {
	pd := &o.PathData
	var raw []*path.RawLeg
	switch pd.Format {
	case "", "default":
		if len(pd.Lines) == 0 {
			return nil, chk.Err("BuildPath: the default path format needs \"lines\"")
		}
		raw, err = path.FromLines(pd.Lines)

	case "table":
		rows := pd.Rows
		if pd.File != "" {
			rows, err = o.readTableFile()
			if err != nil {
				return
			}
		}
		if len(rows) == 0 {
			return nil, chk.Err("BuildPath: the table path format needs \"rows\" or \"file\"")
		}
		tfmt := pd.Tfmt
		if tfmt == "" {
			tfmt = "time"
		}
		raw, err = path.FromTable(rows, tfmt, pd.Cols, pd.Cfmt)

	case "functions":
		fcns := make([]dbf.T, len(pd.Fcns))
		for i, name := range pd.Fcns {
			fcns[i], err = o.Functions.Get(name)
			if err != nil {
				return
			}
		}
		scales := pd.Scales
		if scales == nil {
			scales = make([]float64, len(fcns))
			for i := range scales {
				scales[i] = 1
			}
		}
		raw, err = path.FromFunctions(pd.Ttime, pd.Nsteps, pd.Cfmt, fcns, scales)

	default:
		return nil, chk.Err("BuildPath: unknown path format %q", pd.Format)
	}
	if err != nil {
		return
	}
	return path.Normalize(raw, o.Factors(), o.Data.TermTime)
}

// readTableFile reads the named columns of an external table file into rows
func (o *Simulation) readTableFile() (rows [][]float64, err error) {
	pd := &o.PathData
	if len(pd.Colkeys) < 2 {
		return nil, chk.Err("BuildPath: reading %q needs \"colkeys\" (time column first)", pd.File)
	}
	_, tab, err := io.ReadTable(pd.File)
	if err != nil {
		return nil, chk.Err("BuildPath: cannot read table file %q:\n%v", pd.File, err)
	}
	cols := make([][]float64, len(pd.Colkeys))
	n := -1
	for j, key := range pd.Colkeys {
		col, ok := tab[key]
		if !ok {
			return nil, chk.Err("BuildPath: table file %q has no column named %q", pd.File, key)
		}
		if n < 0 {
			n = len(col)
		}
		if len(col) != n {
			return nil, chk.Err("BuildPath: columns of table file %q have different lengths", pd.File)
		}
		cols[j] = col
	}
	rows = make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, len(cols))
		for j := range cols {
			rows[i][j] = cols[j][i]
		}
	}
	return
}

func setNonzero(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
