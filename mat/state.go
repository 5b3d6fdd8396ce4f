// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

// State holds the stress and internal variables of one material point
type State struct {
	Sig     []float64 // σ: current Cauchy stress (Mandel) [Nsig]
	Alp     []float64 // α: internal variables [nalp]
	Dgam    float64   // Δγ: increment of Lagrange multiplier (plasticity)
	Loading bool      // plastic loading took place in the last update
}

// NewState allocates a state with nalp internal variables
func NewState(nalp int) *State {
	return &State{
		Sig: make([]float64, Nsig),
		Alp: make([]float64, nalp),
	}
}

// Set copies another state into this one. Both states must have been
// allocated with the same sizes.
func (o *State) Set(other *State) {
	copy(o.Sig, other.Sig)
	copy(o.Alp, other.Alp)
	o.Dgam = other.Dgam
	o.Loading = other.Loading
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Alp))
	other.Set(o)
	return other
}
