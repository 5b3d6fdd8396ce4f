// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_iso01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iso01. elastic constants")

	var iso Isotropic
	err := iso.Init([]*dbf.P{
		&dbf.P{N: "E", V: 9},
		&dbf.P{N: "nu", V: 0.25},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "K", 1e-14, iso.K, 6)
	chk.Scalar(tst, "G", 1e-14, iso.G, 3.6)

	var iso2 Isotropic
	err = iso2.Init([]*dbf.P{
		&dbf.P{N: "K", V: iso.K},
		&dbf.P{N: "G", V: iso.G},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "E", 1e-14, iso2.E, 9)
	chk.Scalar(tst, "nu", 1e-14, iso2.Nu, 0.25)

	err = iso2.Init([]*dbf.P{&dbf.P{N: "E", V: 9}})
	if err == nil {
		tst.Errorf("Init should have failed with a single constant\n")
		return
	}

	_, err = New("no-such-model")
	if err == nil {
		tst.Errorf("New should have failed with an unknown model name\n")
	}
}

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01. uniaxial strain")

	mdl, err := New("lin-elast")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	K, G := 10.0, 6.0
	err = mdl.Init([]*dbf.P{
		&dbf.P{N: "K", V: K},
		&dbf.P{N: "G", V: G},
		&dbf.P{N: "rho", V: 2},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "rho", 1e-17, mdl.GetRho(), 2)

	s, err := mdl.InitState()
	if err != nil {
		tst.Errorf("InitState failed: %v\n", err)
		return
	}

	// 10 sub-steps of uniaxial straining up to e = 0.01
	e := 0.01
	nsteps := 10
	Δt := 0.1
	d := []float64{e / (float64(nsteps) * Δt), 0, 0, 0, 0, 0}
	ε := make([]float64, Nsig)
	for i := 0; i < nsteps; i++ {
		ε[0] += d[0] * Δt
		t := float64(i+1) * Δt
		err = mdl.Update(s, t, Δt, 75, 0, nil, nil, ε, d, nil, nil)
		if err != nil {
			tst.Errorf("Update failed: %v\n", err)
			return
		}
	}
	chk.Scalar(tst, "σ11", 1e-14, s.Sig[0], (K+4.0*G/3.0)*e)
	chk.Scalar(tst, "σ22", 1e-14, s.Sig[1], (K-2.0*G/3.0)*e)
	chk.Scalar(tst, "σ33", 1e-14, s.Sig[2], (K-2.0*G/3.0)*e)
	chk.Vector(tst, "σ shear", 1e-17, s.Sig[3:], []float64{0, 0, 0})

	// tangent moduli
	D := la.MatAlloc(Nsig, Nsig)
	err = mdl.(Tangential).CalcD(D, s)
	if err != nil {
		tst.Errorf("CalcD failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "D00", 1e-14, D[0][0], K+4.0*G/3.0)
	chk.Scalar(tst, "D01", 1e-14, D[0][1], K-2.0*G/3.0)
	chk.Scalar(tst, "D33", 1e-14, D[3][3], 2.0*G)
	chk.Scalar(tst, "D03", 1e-17, D[0][3], 0)
}

func Test_vm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm01. von Mises radial return")

	mdl, err := New("von-mises")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	K, G, qy0 := 10.0, 6.0, 0.5
	err = mdl.Init([]*dbf.P{
		&dbf.P{N: "K", V: K},
		&dbf.P{N: "G", V: G},
		&dbf.P{N: "qy0", V: qy0},
		&dbf.P{N: "H", V: 0},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	s, err := mdl.InitState()
	if err != nil {
		tst.Errorf("InitState failed: %v\n", err)
		return
	}

	// traceless straining: q = 3・G・γ while elastic, p stays zero
	γy := qy0 / (3.0 * G)
	d := []float64{1, -0.5, -0.5, 0, 0, 0} // ×γ̇
	γdot := 0.01
	for i := range d {
		d[i] *= γdot
	}
	Δt := 1.0
	nsteps := 20 // γ = 0.2・γ̇・Δt ... well past yield (γy ≈ 0.0278)
	var γ float64
	ε := make([]float64, Nsig)
	for i := 0; i < nsteps; i++ {
		γ += γdot * Δt
		for j := range d {
			ε[j] += d[j] * Δt
		}
		t := float64(i+1) * Δt
		err = mdl.Update(s, t, Δt, 75, 0, nil, nil, ε, d, nil, nil)
		if err != nil {
			tst.Errorf("Update failed: %v\n", err)
			return
		}
		q := tsr.M_q(s.Sig)
		p := tsr.M_p(s.Sig)
		chk.Scalar(tst, io.Sf("p (step %d)", i), 1e-14, p, 0)
		if γ <= γy {
			chk.Scalar(tst, io.Sf("q elastic (step %d)", i), 1e-13, q, 3.0*G*γ)
		} else {
			chk.Scalar(tst, io.Sf("q plastic (step %d)", i), 1e-13, q, qy0)
			if !s.Loading {
				tst.Errorf("expected plastic loading at γ=%g\n", γ)
				return
			}
		}
	}

	// hardening variable accumulated
	if s.Alp[0] <= 0 {
		tst.Errorf("expected positive hardening variable. α=%g\n", s.Alp[0])
		return
	}

	// consistent tangent must be symmetric
	D := la.MatAlloc(Nsig, Nsig)
	err = mdl.(Tangential).CalcD(D, s)
	if err != nil {
		tst.Errorf("CalcD failed: %v\n", err)
		return
	}
	for i := 0; i < Nsig; i++ {
		for j := i + 1; j < Nsig; j++ {
			chk.Scalar(tst, io.Sf("D[%d][%d] symmetry", i, j), 1e-12, D[i][j], D[j][i])
		}
	}
}

func Test_visco01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("visco01. stress relaxation and WLF shift")

	mdl, err := New("visco-elast")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	K, G := 10.0, 6.0
	g1, τ1 := 0.4, 1.0
	err = mdl.Init([]*dbf.P{
		&dbf.P{N: "K", V: K},
		&dbf.P{N: "G", V: G},
		&dbf.P{N: "g1", V: g1},
		&dbf.P{N: "tau1", V: τ1},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	s, err := mdl.InitState()
	if err != nil {
		tst.Errorf("InitState failed: %v\n", err)
		return
	}

	// near-instantaneous simple shear then hold
	γ := 0.01
	Δt0 := 1e-8
	ε := []float64{0, 0, 0, tsr.SQ2 * γ, 0, 0}
	d := []float64{0, 0, 0, tsr.SQ2 * γ / Δt0, 0, 0}
	err = mdl.Update(s, Δt0, Δt0, 75, 0, nil, nil, ε, d, nil, nil)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	σg := 2.0 * G * tsr.SQ2 * γ // glassy shear stress (Mandel)
	chk.Scalar(tst, "glassy σ12", 1e-10, s.Sig[3], σg)

	// hold: exact decay σ12(t) = (goo + g1・exp(-t/τ1))・σg
	goo := 1.0 - g1
	hold := []float64{0, 0, 0, 0, 0, 0}
	Δt := 0.05
	t := 0.0
	for i := 0; i < 200; i++ { // up to t = 10・τ1
		t += Δt
		err = mdl.Update(s, t, Δt, 75, 0, nil, nil, ε, hold, nil, nil)
		if err != nil {
			tst.Errorf("Update failed: %v\n", err)
			return
		}
	}
	chk.Scalar(tst, "relaxed σ12", 1e-6, s.Sig[3], (goo+g1*math.Exp(-t/τ1))*σg)
	chk.Vector(tst, "σ normals", 1e-10, s.Sig[:3], []float64{0, 0, 0})

	// WLF shift factor
	ve := mdl.(*ViscoElast)
	chk.Scalar(tst, "aT (no wlf)", 1e-17, ve.Shift(100), 1)
	err = ve.Init([]*dbf.P{
		&dbf.P{N: "K", V: K}, &dbf.P{N: "G", V: G},
		&dbf.P{N: "g1", V: g1}, &dbf.P{N: "tau1", V: τ1},
		&dbf.P{N: "C1", V: 17.44}, &dbf.P{N: "C2", V: 51.6}, &dbf.P{N: "T0", V: 75},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "aT(T0)", 1e-15, ve.Shift(75), 1)
	aT := ve.Shift(85)
	if aT >= 1 {
		tst.Errorf("expected aT < 1 above the reference temperature. aT=%g\n", aT)
		return
	}

	// Σg > 1 is rejected
	bad := new(ViscoElast)
	err = bad.Init([]*dbf.P{
		&dbf.P{N: "K", V: K}, &dbf.P{N: "G", V: G},
		&dbf.P{N: "g1", V: 0.7}, &dbf.P{N: "tau1", V: 1},
		&dbf.P{N: "g2", V: 0.5}, &dbf.P{N: "tau2", V: 10},
	})
	if err == nil {
		tst.Errorf("Init should have failed with Σg > 1\n")
	}
}
