// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// FromLines parses a literal leg table. Each line holds one leg:
//   [termination_time, num_steps, control_format, target0, target1, ...]
// Empty lines are skipped. Termination times must not decrease.
func FromLines(lines [][]string) (raw []*RawLeg, err error) {
	finalTime := 0.0
	legnum := 1
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		if len(line) < 3 {
			return nil, chk.Err("path: leg %d must have at least [time, steps, control]. got %d items", legnum, len(line))
		}
		ttime, err := strconv.ParseFloat(line[0], 64)
		if err != nil {
			return nil, chk.Err("path: expected float for termination time of leg %d. got %q", legnum, line[0])
		}
		if ttime < 0 {
			return nil, chk.Err("path: expected positive termination time in leg %d. got %g", legnum, ttime)
		}
		if ttime < finalTime {
			return nil, chk.Err("path: expected time to increase monotonically in leg %d", legnum)
		}
		finalTime = ttime
		nsteps, err := strconv.Atoi(line[1])
		if err != nil {
			return nil, chk.Err("path: expected integer number of steps in leg %d. got %q", legnum, line[1])
		}
		if nsteps < 0 {
			return nil, chk.Err("path: expected positive number of steps in leg %d. got %d", legnum, nsteps)
		}
		control, err := ParseControl(line[2])
		if err != nil {
			return nil, err
		}
		err = CheckControl(control, legnum)
		if err != nil {
			return nil, err
		}
		c := make([]float64, 0, len(line)-3)
		for i, tok := range line[3:] {
			val, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, chk.Err("path: component %d of leg %d must be a float. got %q", i+1, legnum, tok)
			}
			c = append(c, val)
		}
		if len(c) != len(control) {
			return nil, chk.Err("path: len(C)=%d != len(control)=%d in leg %d", len(c), len(control), legnum)
		}
		raw = append(raw, &RawLeg{Ttime: ttime, Nsteps: nsteps, Control: control, C: c})
		legnum++
	}
	return
}

// FromFunctions builds raw legs by sampling closed-form functions of time.
// One function (with a scale) drives each control slot; the path is sampled
// at nsteps points over [0, ttime], each sample becoming a 1-step leg. When a
// temperature slot is controlled, the leg at time zero carries its initial
// value so the integrator starts from the right temperature.
func FromFunctions(ttime float64, nsteps int, cfmt string, fcns []dbf.T, scales []float64) (raw []*RawLeg, err error) {
	if ttime < 0 {
		return nil, chk.Err("path: expected positive termination time. got %g", ttime)
	}
	if nsteps < 2 {
		return nil, chk.Err("path: function paths need at least 2 steps. got %d", nsteps)
	}
	control, err := ParseControl(cfmt)
	if err != nil {
		return nil, err
	}
	err = CheckControl(control, 1)
	if err != nil {
		return nil, err
	}
	if len(fcns) != len(control) {
		return nil, chk.Err("path: len(functions)=%d != len(control)=%d", len(fcns), len(control))
	}
	if len(scales) != len(fcns) {
		return nil, chk.Err("path: len(scales)=%d != len(functions)=%d", len(scales), len(fcns))
	}

	// initial leg: zero targets except a controlled temperature
	c0 := make([]float64, len(control))
	for i, k := range control {
		if k == Temperature {
			c0[i] = scales[i] * fcns[i].F(0, nil)
		}
	}
	raw = append(raw, &RawLeg{Ttime: 0, Nsteps: 1, Control: control, C: c0})

	// sampled legs
	T := utl.LinSpace(0, ttime, nsteps)
	for _, t := range T[1:] {
		c := make([]float64, len(control))
		for i := range control {
			c[i] = scales[i] * fcns[i].F(t, nil)
		}
		raw = append(raw, &RawLeg{Ttime: t, Nsteps: 1, Control: control, C: c})
	}
	return
}

// FromTable builds raw legs from rows of floating-point columns (e.g. an
// external data file). cols selects and orders the columns to use (nil means
// all); the first selected column is the time, given either as absolute
// ("time") or as a per-row increment ("dt"); the remaining columns are the
// targets, one per control slot of cfmt. Each row becomes a 1-step leg.
func FromTable(rows [][]float64, tfmt string, cols []int, cfmt string) (raw []*RawLeg, err error) {
	if tfmt != "time" && tfmt != "dt" {
		return nil, chk.Err("path: table time format must be \"time\" or \"dt\". got %q", tfmt)
	}
	control, err := ParseControl(cfmt)
	if err != nil {
		return nil, err
	}
	err = CheckControl(control, 1)
	if err != nil {
		return nil, err
	}
	ttime := 0.0
	finalTime := 0.0
	legnum := 1
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		sel := cols
		if len(sel) == 0 {
			sel = utl.IntRange(len(row))
		}
		vals := make([]float64, 0, len(sel))
		for _, j := range sel {
			if j < 0 || j >= len(row) {
				return nil, chk.Err("path: requested column %d not found in leg %d", j, legnum)
			}
			vals = append(vals, row[j])
		}
		if tfmt == "dt" {
			ttime += vals[0]
		} else {
			ttime = vals[0]
		}
		if ttime < 0 {
			return nil, chk.Err("path: expected positive termination time in leg %d. got %g", legnum, ttime)
		}
		if ttime < finalTime {
			return nil, chk.Err("path: expected time to increase monotonically in leg %d", legnum)
		}
		finalTime = ttime
		c := vals[1:]
		if len(c) != len(control) {
			return nil, chk.Err("path: len(C)=%d != len(control)=%d in leg %d", len(c), len(control), legnum)
		}
		raw = append(raw, &RawLeg{Ttime: ttime, Nsteps: 1, Control: control, C: c})
		legnum++
	}
	return
}
