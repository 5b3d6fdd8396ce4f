// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/tsr"
)

// ViscoElast implements isotropic linear viscoelasticity with a Prony-series
// shear relaxation and an optional WLF time-temperature shift. K and G are the
// instantaneous (glassy) moduli; the deviatoric stress relaxes towards the
// long-term fraction Goo = 1 - Σgi of its elastic value, while the volumetric
// response stays elastic.
//
// Prony pairs are given as parameters g1, tau1, g2, tau2, ...; the WLF shift
// is enabled by giving C1, C2 and the reference temperature T0.
type ViscoElast struct {
	Isotropic
	g   []float64 // Prony shear coefficients
	τ   []float64 // Prony relaxation times
	goo float64   // long-term shear fraction = 1 - Σg
	wlf bool      // WLF shift enabled
	T0  float64   // WLF reference temperature
	C1  float64   // WLF C1
	C2  float64   // WLF C2
}

// add model to factory
func init() {
	allocators["visco-elast"] = func() Model { return new(ViscoElast) }
}

// Init initialises model
func (o *ViscoElast) Init(prms dbf.Params) (err error) {
	err = o.Isotropic.Init(prms)
	if err != nil {
		return
	}
	o.g, o.τ = nil, nil
	gs := map[int]float64{}
	τs := map[int]float64{}
	var hasC1, hasC2, hasT0 bool
	for _, p := range prms {
		switch p.N {
		case "C1":
			o.C1, hasC1 = p.V, true
		case "C2":
			o.C2, hasC2 = p.V, true
		case "T0":
			o.T0, hasT0 = p.V, true
		case "K", "G", "E", "nu", "rho":
		default:
			if idx, pfx, e := pronyIndex(p.N); e == nil {
				if pfx == "g" {
					gs[idx] = p.V
				} else {
					τs[idx] = p.V
				}
			} else {
				return chk.Err("visco-elast: parameter named %q is incorrect", p.N)
			}
		}
	}

	// assemble and validate the Prony series
	if len(gs) != len(τs) {
		return chk.Err("visco-elast: number of g coefficients (%d) and relaxation times (%d) do not match", len(gs), len(τs))
	}
	sum := 0.0
	for i := 1; i <= len(gs); i++ {
		g, okg := gs[i]
		τ, okτ := τs[i]
		if !okg || !okτ {
			return chk.Err("visco-elast: Prony pair %d is incomplete. give both g%d and tau%d", i, i, i)
		}
		if g <= 0 || τ <= 0 {
			return chk.Err("visco-elast: Prony pair %d must be positive. g=%g, tau=%g are invalid", i, g, τ)
		}
		o.g = append(o.g, g)
		o.τ = append(o.τ, τ)
		sum += g
	}
	o.goo = 1.0 - sum
	if o.goo < 0 {
		return chk.Err("visco-elast: Σgi = %g exceeds one. the long-term shear modulus would be negative", sum)
	}

	// WLF shift
	if hasC1 || hasC2 || hasT0 {
		if !(hasC1 && hasC2 && hasT0) {
			return chk.Err("visco-elast: the WLF shift needs all of C1, C2 and T0")
		}
		o.wlf = true
	}
	return
}

// GetPrms gets (an example) of parameters
func (o ViscoElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "K", V: 10},
		&dbf.P{N: "G", V: 6},
		&dbf.P{N: "g1", V: 0.35},
		&dbf.P{N: "tau1", V: 1},
	}
}

// GetRho returns density
func (o ViscoElast) GetRho() float64 { return o.Rho }

// InitState initialises the state. The internal variables hold the elastic
// stress followed by one deviatoric overstress tensor per Prony term.
func (o ViscoElast) InitState() (*State, error) {
	return NewState((1 + len(o.g)) * Nsig), nil
}

// Shift returns the WLF shift factor aT at the given temperature
func (o *ViscoElast) Shift(temp float64) float64 {
	if !o.wlf {
		return 1.0
	}
	θ := temp - o.T0
	return math.Pow(10.0, -o.C1*θ/(o.C2+θ))
}

// Update advances the elastic stress and the relaxation variables
func (o *ViscoElast) Update(s *State, t, Δt, temp, Δtemp float64, f0, f [][]float64, ε, d, efield, ufield []float64) (err error) {

	// elastic stress increment
	σe := s.Alp[:Nsig]
	sold := make([]float64, Nsig)
	trσe := σe[0] + σe[1] + σe[2]
	for i := 0; i < Nsig; i++ {
		sold[i] = σe[i] - trσe*tsr.Im[i]/3.0
	}
	Δε := make([]float64, Nsig)
	for i := 0; i < Nsig; i++ {
		Δε[i] = d[i] * Δt
	}
	o.ElastUpdate(σe, Δε)

	// new deviatoric elastic stress and its increment
	snew := make([]float64, Nsig)
	Δs := make([]float64, Nsig)
	trσe = σe[0] + σe[1] + σe[2]
	for i := 0; i < Nsig; i++ {
		snew[i] = σe[i] - trσe*tsr.Im[i]/3.0
		Δs[i] = snew[i] - sold[i]
	}

	// recursive convolution update of the overstresses (reduced time)
	Δtʹ := Δt / o.Shift(temp)
	for k := range o.g {
		h := s.Alp[(1+k)*Nsig : (2+k)*Nsig]
		r := Δtʹ / o.τ[k]
		e := math.Exp(-r)
		β := 1.0
		if r > 1e-12 {
			β = (1.0 - e) / r
		}
		for i := 0; i < Nsig; i++ {
			h[i] = e*h[i] + o.g[k]*β*Δs[i]
		}
	}

	// total stress: elastic volumetric part + relaxed deviatoric part
	for i := 0; i < Nsig; i++ {
		s.Sig[i] = σe[i] - snew[i] + o.goo*snew[i]
		for k := range o.g {
			s.Sig[i] += s.Alp[(1+k)*Nsig+i]
		}
	}
	return
}

// pronyIndex splits a Prony parameter name such as "g3" or "tau3"
func pronyIndex(name string) (idx int, pfx string, err error) {
	switch {
	case strings.HasPrefix(name, "tau"):
		pfx = "tau"
	case strings.HasPrefix(name, "g"):
		pfx = "g"
	default:
		return 0, "", chk.Err("not a Prony parameter: %q", name)
	}
	idx, e := strconv.Atoi(name[len(pfx):])
	if e != nil || idx < 1 {
		return 0, "", chk.Err("not a Prony parameter: %q", name)
	}
	return
}
