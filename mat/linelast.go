// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "github.com/cpmech/gosl/fun/dbf"

// LinElast implements hypoelastic isotropic elasticity: the stress rate is
// linear in the rate of deformation
type LinElast struct {
	Isotropic
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(prms dbf.Params) (err error) {
	return o.Isotropic.Init(prms)
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "K", V: 10},
		&dbf.P{N: "G", V: 6},
		&dbf.P{N: "rho", V: 1},
	}
}

// GetRho returns density
func (o LinElast) GetRho() float64 { return o.Rho }

// InitState initialises the state with zero stress
func (o LinElast) InitState() (*State, error) {
	return NewState(0), nil
}

// Update computes the new stress from the rate of deformation
func (o *LinElast) Update(s *State, t, Δt, temp, Δtemp float64, f0, f [][]float64, ε, d, efield, ufield []float64) (err error) {
	Δε := make([]float64, Nsig)
	for i := 0; i < Nsig; i++ {
		Δε[i] = d[i] * Δt
	}
	o.ElastUpdate(s.Sig, Δε)
	return
}

// CalcD returns the (constant) elastic moduli
func (o *LinElast) CalcD(D [][]float64, s *State) (err error) {
	o.ElastD(D)
	return
}
