// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out collects, tabulates and plots the snapshots dumped by the
// driver
package out

import (
	"github.com/cpmech/gosl/chk"

	"github.com/tjfulle/gmd/driver"
)

// component labels of the Mandel tensor slots
var labels = []string{"11", "22", "33", "12", "23", "13"}

// Results is an in-memory sink accumulating the dumped snapshots
type Results struct {
	Snaps []*driver.Snapshot
}

// Dump implements driver.Sink
func (o *Results) Dump(snap *driver.Snapshot) error {
	o.Snaps = append(o.Snaps, snap)
	return nil
}

// Len returns the number of collected snapshots
func (o *Results) Len() int { return len(o.Snaps) }

// Last returns the most recent snapshot (nil when empty)
func (o *Results) Last() *driver.Snapshot {
	if len(o.Snaps) == 0 {
		return nil
	}
	return o.Snaps[len(o.Snaps)-1]
}

// Time returns the time series
func (o *Results) Time() []float64 {
	return o.scalars(func(s *driver.Snapshot) float64 { return s.Time })
}

// Sig returns the series of stress component i (Mandel)
func (o *Results) Sig(i int) []float64 {
	return o.scalars(func(s *driver.Snapshot) float64 { return s.Sig[i] })
}

// Eps returns the series of strain component i (Mandel)
func (o *Results) Eps(i int) []float64 {
	return o.scalars(func(s *driver.Snapshot) float64 { return s.Eps[i] })
}

// Get returns a named series. The available names are "time", "dt", "temp",
// "eqeps", "evol", "pres", "rho", and the tensor components "sig11" ...
// "sig13", "eps11" ... "eps13", "d11" ... "d13", "dsig11" ... "dsig13".
func (o *Results) Get(name string) ([]float64, error) {
	switch name {
	case "time":
		return o.Time(), nil
	case "dt":
		return o.scalars(func(s *driver.Snapshot) float64 { return s.Dtime }), nil
	case "temp":
		return o.scalars(func(s *driver.Snapshot) float64 { return s.Temp }), nil
	case "eqeps":
		return o.scalars(func(s *driver.Snapshot) float64 { return s.EqEps }), nil
	case "evol":
		return o.scalars(func(s *driver.Snapshot) float64 { return s.Evol }), nil
	case "pres":
		return o.scalars(func(s *driver.Snapshot) float64 { return s.Pres }), nil
	case "rho":
		return o.scalars(func(s *driver.Snapshot) float64 { return s.Rho }), nil
	}
	for i, lbl := range labels {
		switch name {
		case "sig" + lbl:
			return o.Sig(i), nil
		case "eps" + lbl:
			return o.Eps(i), nil
		case "d" + lbl:
			return o.scalars(func(s *driver.Snapshot) float64 { return s.D[i] }), nil
		case "dsig" + lbl:
			return o.scalars(func(s *driver.Snapshot) float64 { return s.DSig[i] }), nil
		}
	}
	return nil, chk.Err("out: unknown series %q", name)
}

func (o *Results) scalars(pick func(*driver.Snapshot) float64) (res []float64) {
	res = make([]float64, len(o.Snaps))
	for i, s := range o.Snaps {
		res[i] = pick(s)
	}
	return
}
