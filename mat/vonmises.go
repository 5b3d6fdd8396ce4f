// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/tsr"
)

// VonMises implements J2 plasticity with linear isotropic hardening
type VonMises struct {
	Isotropic
	qy0 float64   // initial yield stress (q at yield)
	H   float64   // hardening modulus
	ten []float64 // auxiliary tensor
}

// add model to factory
func init() {
	allocators["von-mises"] = func() Model { return new(VonMises) }
}

// Init initialises model
func (o *VonMises) Init(prms dbf.Params) (err error) {
	err = o.Isotropic.Init(prms)
	if err != nil {
		return
	}
	for _, p := range prms {
		switch p.N {
		case "qy0":
			o.qy0 = p.V
		case "H":
			o.H = p.V
		case "K", "G", "E", "nu", "rho":
		default:
			return chk.Err("von-mises: parameter named %q is incorrect", p.N)
		}
	}
	if o.qy0 <= 0 {
		return chk.Err("von-mises: initial yield stress must be positive. qy0=%g is invalid", o.qy0)
	}
	o.ten = make([]float64, Nsig)
	return
}

// GetPrms gets (an example) of parameters
func (o VonMises) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "K", V: 10},
		&dbf.P{N: "G", V: 6},
		&dbf.P{N: "qy0", V: 0.5},
		&dbf.P{N: "H", V: 0},
	}
}

// GetRho returns density
func (o VonMises) GetRho() float64 { return o.Rho }

// InitState initialises the state with zero stress and one hardening variable
func (o VonMises) InitState() (*State, error) {
	return NewState(1), nil
}

// Update updates stresses with a radial-return mapping
func (o *VonMises) Update(s *State, t, Δt, temp, Δtemp float64, f0, f [][]float64, ε, d, efield, ufield []float64) (err error) {

	// set flags
	s.Loading = false
	s.Dgam = 0

	// accessors
	σ := s.Sig
	α0 := &s.Alp[0]

	// trial stress
	var devΔε_i float64
	trΔε := (d[0] + d[1] + d[2]) * Δt
	for i := 0; i < Nsig; i++ {
		devΔε_i = d[i]*Δt - trΔε*tsr.Im[i]/3.0
		o.ten[i] = σ[i] + o.K*trΔε*tsr.Im[i] + 2.0*o.G*devΔε_i // ten := σtr
	}
	ptr, qtr := tsr.M_p(o.ten), tsr.M_q(o.ten)

	// trial yield function
	ftr := qtr - o.qy0 - o.H*(*α0)

	// elastic update
	if ftr <= 0.0 {
		copy(σ, o.ten) // σ := σtr
		return
	}

	// elastoplastic update: radial return, pressure unchanged
	var str_i float64
	s.Dgam = ftr / (3.0*o.G + o.H)
	*α0 += s.Dgam
	m := 1.0 - s.Dgam*3.0*o.G/qtr
	for i := 0; i < Nsig; i++ {
		str_i = o.ten[i] + ptr*tsr.Im[i]
		σ[i] = m*str_i - ptr*tsr.Im[i]
	}
	s.Loading = true
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
func (o *VonMises) CalcD(D [][]float64, s *State) (err error) {

	// elastic
	if !s.Loading {
		o.ElastD(D)
		return
	}

	// elastoplastic => consistent stiffness
	σ := s.Sig
	Δγ := s.Dgam
	p, q := tsr.M_p(σ), tsr.M_q(σ)
	qtr := q + Δγ*3.0*o.G
	m := 1.0 - Δγ*3.0*o.G/qtr
	nstr := tsr.SQ2by3 * qtr // norm(str)
	for i := 0; i < Nsig; i++ {
		o.ten[i] = (σ[i] + p*tsr.Im[i]) / (m * nstr) // ten := unit(str)
	}
	b2 := 6.0 * o.G * o.G * (Δγ/qtr - 1.0/(3.0*o.G+o.H))
	for i := 0; i < Nsig; i++ {
		for j := 0; j < Nsig; j++ {
			D[i][j] = 2.0*o.G*m*tsr.Psd[i][j] +
				o.K*tsr.Im[i]*tsr.Im[j] +
				b2*o.ten[i]*o.ten[j]
		}
	}
	return
}
