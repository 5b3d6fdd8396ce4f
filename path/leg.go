// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Nsig is the number of slots of the normalized control/target arrays
// (symmetric tensor, Mandel basis)
const Nsig = 6

// DefaultTemp is the temperature assumed when a leg carries no temperature
// control
const DefaultTemp = 75.0

// DefaultNdumps is the number of output dumps per leg when unspecified
const DefaultNdumps = 20

// RawLeg holds one leg specification as produced by the front-end parsers,
// before normalization: a termination time, a step count, and one target
// value per control slot.
type RawLeg struct {
	Ttime   float64   // termination time
	Nsteps  int       // number of sub-steps
	Control []Kind    // control kind per slot
	C       []float64 // target value per slot
}

// Leg is one normalized segment of the loading history. The control/target
// arrays always have exactly Nsig slots holding strictly mechanical kinds
// (strain, strain rate, stress, stress rate) in the Mandel basis; electric
// field, temperature and user-field contributions are extracted into
// dedicated fields. Legs are immutable once built by Normalize and are owned
// by their Path.
type Leg struct {
	T0, T1    float64   // start/termination time (T0 == previous leg's T1)
	Nsteps    int       // number of sub-steps
	Control   []Kind    // [Nsig] control kind per tensor slot
	C         []float64 // [Nsig] target per tensor slot (Mandel)
	Ndumps    int       // requested number of output dumps over this leg
	EF        []float64 // [3] electric field at end of leg
	Temp      float64   // temperature at end of leg
	UserField []float64 // user-defined field values at end of leg
}

// Dtime returns this leg's duration
func (o *Leg) Dtime() float64 { return o.T1 - o.T0 }

// StressSlots returns the indices of the slots under stress or stress-rate
// control
func (o *Leg) StressSlots() (v []int) {
	for i, c := range o.Control {
		if c.IsStressKind() {
			v = append(v, i)
		}
	}
	return
}

// Factors holds the global scale factors applied to every leg during
// normalization. Amplitude may be used to increase or decrease the peak
// deformation without changing the rate; RateFac is the multiplier on strain
// and stress rates (and divides the time scale).
type Factors struct {
	Kappa     float64 // κ: Seth-Hill strain measure parameter
	Amplitude float64 // peak-value multiplier
	RateFac   float64 // rate multiplier (ratfac)
	StepFac   float64 // step-count multiplier (nfac)
	Ndumps    int     // dumps per leg; 0 → DefaultNdumps; < 0 → every step
	Estar     float64 // strain targets multiplier
	Tstar     float64 // time multiplier (must be positive)
	Sstar     float64 // stress targets multiplier
	Fstar     float64 // deformation gradient targets multiplier
	Efstar    float64 // electric field targets multiplier
	Dstar     float64 // displacement targets multiplier
}

// NewFactors returns factors with neutral (unit) values and κ=0
func NewFactors() *Factors {
	return &Factors{
		Amplitude: 1, RateFac: 1, StepFac: 1,
		Estar: 1, Tstar: 1, Sstar: 1, Fstar: 1, Efstar: 1, Dstar: 1,
	}
}

// Validate checks the factors and returns the derived per-kind multipliers
func (o *Factors) Validate() (efac, tfac, sfac, ffac, effac, dfac float64, err error) {
	if o.Tstar <= 0 {
		err = chk.Err("path: tstar must be positive. tstar=%g is invalid", o.Tstar)
		return
	}
	if o.RateFac == 0 {
		err = chk.Err("path: ratfac must be nonzero")
		return
	}
	if o.StepFac <= 0 {
		err = chk.Err("path: nfac must be positive. nfac=%g is invalid", o.StepFac)
		return
	}
	efac = o.Amplitude * o.Estar
	tfac = math.Abs(o.Amplitude) * o.Tstar / o.RateFac
	sfac = o.Amplitude * o.Sstar
	ffac = o.Amplitude * o.Fstar
	effac = o.Amplitude * o.Efstar
	dfac = o.Amplitude * o.Dstar
	return
}

// ndumps resolves the requested dump count
func (o *Factors) ndumps() int {
	if o.Ndumps == 0 {
		return DefaultNdumps
	}
	if o.Ndumps < 0 { // "all"
		return 100000000
	}
	return o.Ndumps
}
