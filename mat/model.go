// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements the material models driven by the single-element
// driver. Stress and strain tensors use the 6-component Mandel basis
// {11, 22, 33, √2・12, √2・23, √2・13}.
package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Nsig is the number of Mandel components of symmetric tensors
const Nsig = 6

// Model defines the interface for material models. Update advances the
// stress (and internal variables) held in s over one sub-step:
//  t, Δt        -- time at the end of the sub-step and its duration
//  temp, Δtemp  -- temperature at the end of the sub-step and its increment
//  f0, f        -- deformation gradient at the beginning/end [3][3]
//  ε, d         -- strain and rate of deformation at the end (Mandel)
//  efield       -- electric field [3]
//  ufield       -- user-defined field values
type Model interface {
	Init(prms dbf.Params) error
	GetPrms() dbf.Params
	GetRho() float64
	InitState() (*State, error)
	Update(s *State, t, Δt, temp, Δtemp float64, f0, f [][]float64, ε, d, efield, ufield []float64) error
}

// Tangential is implemented by models able to compute their own consistent
// tangent moduli; the driver falls back to a numerical tangent otherwise
type Tangential interface {
	CalcD(D [][]float64, s *State) error
}

// allocators holds the model allocators, keyed by model name
var allocators = map[string]func() Model{}

// New allocates a model by name
func New(name string) (Model, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("mat: cannot find model named %q", name)
	}
	return alloc(), nil
}

// Models returns the names of the available models
func Models() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}
