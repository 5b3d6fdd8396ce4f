// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// tableCols is the column layout of the output table
var tableCols = []string{
	"time", "dt",
	"eps11", "eps22", "eps33", "eps12", "eps23", "eps13",
	"sig11", "sig22", "sig33", "sig12", "sig23", "sig13",
	"eqeps", "evol", "pres", "rho", "temp",
}

// WriteTable writes the collected results as a whitespace-separated text
// table to dirout/fnkey.res
func WriteTable(dirout, fnkey string, res *Results) (err error) {
	if res.Len() == 0 {
		return chk.Err("out: no results to write")
	}
	cols := make([][]float64, len(tableCols))
	var hdr, tab bytes.Buffer
	for j, name := range tableCols {
		cols[j], err = res.Get(name)
		if err != nil {
			return
		}
		io.Ff(&hdr, "%23s", name)
	}
	io.Ff(&hdr, "\n")
	for i := 0; i < res.Len(); i++ {
		for j := range cols {
			io.Ff(&tab, "%23.15e", cols[j][i])
		}
		io.Ff(&tab, "\n")
	}
	io.WriteFileVD(dirout, fnkey+".res", &hdr, &tab)
	return
}
