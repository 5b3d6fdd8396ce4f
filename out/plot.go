// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

// Plotter draws x-y views of the collected results
type Plotter struct {

	// output
	SaveDir string  // directory to save figure
	SaveFnk string  // filename key of figure
	FigEps  bool    // save eps instead of png
	FigProp float64 // figure proportion: height = width * prop
	FigWid  float64 // figure width in points
	PngRes  int     // png resolution [dpi]

	// style
	Clr string // color
	Ls  string // line style
	Mrk string // marker
}

// NewPlotter returns a plotter with default settings
func NewPlotter() *Plotter {
	return &Plotter{
		SaveDir: "/tmp/gmd",
		SaveFnk: "gmd_results",
		FigProp: 0.75,
		FigWid:  400,
		PngRes:  150,
		Clr:     "red",
		Ls:      "-",
		Mrk:     "",
	}
}

// Plot draws one subplot per (x, y) pair of series names and saves the
// figure. Example pairs: {{"eps11", "sig11"}, {"time", "pres"}}.
func (o *Plotter) Plot(pairs [][]string, res *Results) (err error) {
	if len(pairs) == 0 {
		return chk.Err("out: nothing to plot")
	}
	plt.Reset(true, &plt.A{Eps: o.FigEps, Prop: o.FigProp, WidthPt: o.FigWid, Dpi: o.PngRes})
	ncol := 1
	if len(pairs) > 1 {
		ncol = 2
	}
	nrow := (len(pairs) + ncol - 1) / ncol
	for k, pair := range pairs {
		if len(pair) != 2 {
			return chk.Err("out: plot pair %d must have exactly two series names. got %v", k, pair)
		}
		x, e := res.Get(pair[0])
		if e != nil {
			return e
		}
		y, e := res.Get(pair[1])
		if e != nil {
			return e
		}
		plt.Subplot(nrow, ncol, k+1)
		plt.Plot(x, y, &plt.A{C: o.Clr, Ls: o.Ls, M: o.Mrk})
		plt.Gll(pair[0], pair[1], nil)
	}
	return plt.Save(o.SaveDir, o.SaveFnk)
}
