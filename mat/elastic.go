// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/tsr"
)

// Isotropic holds isotropic elastic constants and the mass density. Any pair
// of {K, G, E, nu} fixes the moduli; the remaining ones are derived.
type Isotropic struct {
	K   float64 // bulk modulus
	G   float64 // shear modulus
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Rho float64 // density
}

// Init derives the full set of constants from the given parameters
func (o *Isotropic) Init(prms dbf.Params) (err error) {
	var hasK, hasG, hasE, hasν bool
	for _, p := range prms {
		switch p.N {
		case "K":
			o.K, hasK = p.V, true
		case "G":
			o.G, hasG = p.V, true
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasν = p.V, true
		case "rho":
			o.Rho = p.V
		}
	}
	switch {
	case hasK && hasG:
	case hasE && hasν:
		o.K = o.E / (3.0 * (1.0 - 2.0*o.Nu))
		o.G = o.E / (2.0 * (1.0 + o.Nu))
	case hasE && hasG:
		o.K = o.E * o.G / (3.0 * (3.0*o.G - o.E))
	case hasK && hasν:
		o.G = 3.0 * o.K * (1.0 - 2.0*o.Nu) / (2.0 * (1.0 + o.Nu))
	case hasK && hasE:
		o.G = 3.0 * o.K * o.E / (9.0*o.K - o.E)
	case hasG && hasν:
		o.K = 2.0 * o.G * (1.0 + o.Nu) / (3.0 * (1.0 - 2.0*o.Nu))
	default:
		return chk.Err("mat: need a pair of elastic constants from {K, G, E, nu}")
	}
	if o.K <= 0 || o.G <= 0 {
		return chk.Err("mat: elastic constants must give positive moduli. K=%g, G=%g are invalid", o.K, o.G)
	}
	o.E = 9.0 * o.K * o.G / (3.0*o.K + o.G)
	o.Nu = (3.0*o.K - 2.0*o.G) / (2.0 * (3.0*o.K + o.G))
	return
}

// ElastD sets D to the isotropic elastic moduli (Mandel)
func (o *Isotropic) ElastD(D [][]float64) {
	for i := 0; i < Nsig; i++ {
		for j := 0; j < Nsig; j++ {
			D[i][j] = o.K*tsr.Im[i]*tsr.Im[j] + 2.0*o.G*tsr.Psd[i][j]
		}
	}
}

// ElastUpdate increments σ elastically for a given strain increment
func (o *Isotropic) ElastUpdate(σ, Δε []float64) {
	trΔε := Δε[0] + Δε[1] + Δε[2]
	for i := 0; i < Nsig; i++ {
		devΔε_i := Δε[i] - trΔε*tsr.Im[i]/3.0
		σ[i] += o.K*trΔε*tsr.Im[i] + 2.0*o.G*devΔε_i
	}
}
