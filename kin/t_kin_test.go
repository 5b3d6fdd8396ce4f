// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/tsr"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_kin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin01. stretch ↔ strain round trips")

	// diagonal stretch and one with shear (positive definite)
	Ulist := [][]float64{
		{1.2, 0.9, 1.05, 0, 0, 0},
		{1.1, 1.0, 0.95, 0.05 * tsr.SQ2, 0.02 * tsr.SQ2, 0},
	}
	for _, κ := range []float64{0, 1, 2, -2, 0.5} {
		for _, U := range Ulist {
			ε := make([]float64, Nsig)
			err := StrainFromStretch(ε, U, κ)
			if err != nil {
				tst.Errorf("StrainFromStretch failed: %v\n", err)
				return
			}
			Ub := make([]float64, Nsig)
			err = StretchFromStrain(Ub, ε, κ)
			if err != nil {
				tst.Errorf("StretchFromStrain failed: %v\n", err)
				return
			}
			chk.Vector(tst, io.Sf("U (κ=%g)", κ), 1e-12, Ub, U)
		}
	}

	// logarithmic measure of a diagonal stretch
	U := []float64{1.2, 0.9, 1.05, 0, 0, 0}
	ε := make([]float64, Nsig)
	err := StrainFromStretch(ε, U, 0)
	if err != nil {
		tst.Errorf("StrainFromStretch failed: %v\n", err)
		return
	}
	chk.Vector(tst, "ln(U)", 1e-14, ε, []float64{math.Log(1.2), math.Log(0.9), math.Log(1.05), 0, 0, 0})

	// inadmissible strain: κ・ε + 1 ≤ 0
	err = StretchFromStrain(make([]float64, Nsig), []float64{-1.5, 0, 0, 0, 0, 0}, 1)
	if err == nil {
		tst.Errorf("StretchFromStrain should have failed with κ・ε+1 ≤ 0\n")
	}
}

func Test_kin02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin02. rate of deformation from strain rates")

	// κ=0 and constant principal directions: d == dεdt exactly
	ε := []float64{0.01, -0.02, 0.005, 0, 0, 0}
	dεdt := []float64{0.1, 0, -0.05, 0, 0, 0}
	d := make([]float64, Nsig)
	err := RateOfDeformation(d, 1.0, 0, ε, dεdt)
	if err != nil {
		tst.Errorf("RateOfDeformation failed: %v\n", err)
		return
	}
	chk.Vector(tst, "d (κ=0)", 1e-14, d, dεdt)

	// κ≠0 diagonal: d_ii = ε̇_ii・½[1/(κ・εf+1) + 1/(κ・ε+1)]
	κ, Δt := 2.0, 0.1
	err = RateOfDeformation(d, Δt, κ, ε, dεdt)
	if err != nil {
		tst.Errorf("RateOfDeformation failed: %v\n", err)
		return
	}
	for i := 0; i < 3; i++ {
		εf := ε[i] + dεdt[i]*Δt
		x := ((1.0/(κ*εf+1.0))+(1.0/(κ*ε[i]+1.0)))/2.0
		chk.Scalar(tst, io.Sf("d%d", i), 1e-14, d[i], dεdt[i]*x)
	}

	// midpoint rate approximates the true logarithmic stretch rate
	// dln(U)/dt = ε̇/(κ・ε+1) for a uniaxial path ε(t) = ε̇・t
	rate := 0.1
	tref := 0.3
	Δt = 1e-3
	ε = []float64{rate * tref, 0, 0, 0, 0, 0}
	dεdt = []float64{rate, 0, 0, 0, 0, 0}
	err = RateOfDeformation(d, Δt, κ, ε, dεdt)
	if err != nil {
		tst.Errorf("RateOfDeformation failed: %v\n", err)
		return
	}
	dnum, _ := num.DerivCen5(tref+Δt/2.0, 1e-4, func(t float64) (float64, error) {
		u := math.Pow(κ*rate*t+1.0, 1.0/κ)
		return math.Log(u), nil
	})
	chk.Scalar(tst, "d0 vs num", 1e-7, d[0], dnum)
}

func Test_kin03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin03. exponential-map deformation update")

	// uniaxial strain-rate leg integrated in substeps reaches the target
	κ := 0.0
	target := 0.1
	nsteps := 200
	Δt := 1.0 / float64(nsteps)
	f := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	ε := make([]float64, Nsig)
	dεdt := []float64{target, 0, 0, 0, 0, 0}
	d := make([]float64, Nsig)
	err := RateOfDeformation(d, 1.0, κ, ε, dεdt)
	if err != nil {
		tst.Errorf("RateOfDeformation failed: %v\n", err)
		return
	}
	for n := 0; n < nsteps; n++ {
		err = UpdateDeformation(f, ε, Δt, κ, d)
		if err != nil {
			tst.Errorf("UpdateDeformation failed: %v\n", err)
			return
		}
	}
	chk.Scalar(tst, "ε00", 1e-10, ε[0], target)
	chk.Scalar(tst, "F00", 1e-10, f[0][0], math.Exp(target))
	chk.Scalar(tst, "F11", 1e-12, f[1][1], 1.0)

	// stretch recovered from F
	U := make([]float64, Nsig)
	err = RightStretch(U, f)
	if err != nil {
		tst.Errorf("RightStretch failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "U00", 1e-10, U[0], math.Exp(target))
}

func Test_qr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("qr01. QR factorization of deformation gradients")

	// pure stretch: rotation part is the identity
	a := [][]float64{{0.5, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	q := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	r := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	err := QR3(q, r, a)
	if err != nil {
		tst.Errorf("QR3 failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "q", 1e-15, q, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	chk.Matrix(tst, "r", 1e-15, r, a)

	// 90° rotation about x3: rotation part deviates from the identity
	c, s := math.Cos(math.Pi/2.0), math.Sin(math.Pi/2.0)
	a = [][]float64{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
	err = QR3(q, r, a)
	if err != nil {
		tst.Errorf("QR3 failed: %v\n", err)
		return
	}
	dev := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			e := q[i][j]
			if i == j {
				e -= 1.0
			}
			dev = math.Max(dev, math.Abs(e))
		}
	}
	if dev < 0.5 {
		tst.Errorf("rotation part should deviate from the identity. dev=%g\n", dev)
	}
}
