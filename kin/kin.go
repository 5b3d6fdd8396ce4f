// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kin implements the stateless kinematics conversions of the driver:
// the generalized (Seth-Hill) strain measure parameterized by κ, the
// rate-of-deformation tensor computed from prescribed strain rates, and the
// exponential-map update of the deformation gradient.
//
// Symmetric tensors are stored in the Mandel basis of the tsr package:
//   m = {a11, a22, a33, √2・a12, √2・a23, √2・a13}
// The deformation gradient is kept as a full 3×3 matrix.
//
// The strain measure is
//   κ ≠ 0:  ε = (U^κ - I) / κ
//   κ = 0:  ε = ln(U)
// where U is the right stretch tensor. κ=0 recovers the logarithmic measure;
// κ=2 the Green-Lagrange; κ=-2 the Almansi; κ=1 the Biot measure.
package kin

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"
)

// Nsig is the number of components of symmetric tensors in Mandel basis (3D)
const Nsig = 6

// applySpectral computes b := Σ_k f(λ_k)・P_k where λ_k and P_k are the
// eigenvalues and eigenprojectors of the symmetric tensor a (Mandel basis).
// a is preserved; b and a may coincide.
func applySpectral(b, a []float64, f func(λ float64) (float64, error)) (err error) {
	acpy := make([]float64, Nsig)
	copy(acpy, a)
	λ := make([]float64, 3)
	P := la.MatAlloc(3, Nsig)
	err = tsr.M_EigenValsProjsNum(P, λ, acpy)
	if err != nil {
		return
	}
	var v float64
	for i := 0; i < Nsig; i++ {
		b[i] = 0
	}
	for k := 0; k < 3; k++ {
		v, err = f(λ[k])
		if err != nil {
			return
		}
		for i := 0; i < Nsig; i++ {
			b[i] += v * P[k][i]
		}
	}
	return
}

// StrainFromStretch computes the generalized strain ε from the right stretch
// tensor U (both Mandel basis) for the Seth-Hill parameter κ
func StrainFromStretch(ε, U []float64, κ float64) (err error) {
	return applySpectral(ε, U, func(λ float64) (float64, error) {
		if λ <= 0 {
			return 0, chk.Err("kin: stretch eigenvalue must be positive. λ=%g is invalid", λ)
		}
		if κ == 0 {
			return math.Log(λ), nil
		}
		return (math.Pow(λ, κ) - 1.0) / κ, nil
	})
}

// StretchFromStrain computes the right stretch tensor U from the generalized
// strain ε (both Mandel basis); i.e. the inverse of StrainFromStretch.
// Fails if any principal value violates κ・λε + 1 > 0.
func StretchFromStrain(U, ε []float64, κ float64) (err error) {
	return applySpectral(U, ε, func(λ float64) (float64, error) {
		if κ == 0 {
			return math.Exp(λ), nil
		}
		q := κ*λ + 1.0
		if q <= 0 {
			return 0, chk.Err("kin: 1 + κ・ε must be positive. κ=%g and principal strain %g are inadmissible", κ, λ)
		}
		return math.Pow(q, 1.0/κ), nil
	})
}

// RateOfDeformation computes the symmetric part d of the velocity gradient
// corresponding to a prescribed strain rate dεdt at strain ε, over the
// increment Δt. With
//   L = dF/dt・F⁻¹ = dU/dt・U⁻¹   (rotation-free deformation)
// and U = U(ε;κ), the rate of the stretch is dU/dt = U・X・dε/dt where
// X = (κ・ε + I)⁻¹; X is centered on the half step. For κ=0 and deformation
// at constant principal directions, d equals dεdt exactly.
func RateOfDeformation(d []float64, Δt, κ float64, ε, dεdt []float64) (err error) {

	// matrix forms of current/final strain and strain rate
	e := la.MatAlloc(3, 3)
	de := la.MatAlloc(3, 3)
	tsr.Man2Ten(e, ε)
	tsr.Man2Ten(de, dεdt)
	εf := make([]float64, Nsig)
	for i := 0; i < Nsig; i++ {
		εf[i] = ε[i] + dεdt[i]*Δt
	}

	// stretch at end of increment
	U := make([]float64, Nsig)
	err = StretchFromStrain(U, εf, κ)
	if err != nil {
		return
	}
	u := la.MatAlloc(3, 3)
	tsr.Man2Ten(u, U)

	// X = ½・[(κ・εf + I)⁻¹ + (κ・ε + I)⁻¹]
	a := la.MatAlloc(3, 3)
	b := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = κ * (e[i][j] + de[i][j]*Δt)
			b[i][j] = κ * e[i][j]
		}
		a[i][i] += 1.0
		b[i][i] += 1.0
	}
	ai := la.MatAlloc(3, 3)
	bi := la.MatAlloc(3, 3)
	_, err = la.MatInv(ai, a, 1e-14)
	if err != nil {
		return chk.Err("kin: cannot invert κ・εf + I:\n%v", err)
	}
	_, err = la.MatInv(bi, b, 1e-14)
	if err != nil {
		return chk.Err("kin: cannot invert κ・ε + I:\n%v", err)
	}
	x := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x[i][j] = (ai[i][j] + bi[i][j]) / 2.0
		}
	}

	// dU/dt = U・X・dε/dt and L = dU/dt・U⁻¹
	ui := la.MatAlloc(3, 3)
	_, err = la.MatInv(ui, u, 1e-14)
	if err != nil {
		return chk.Err("kin: cannot invert stretch tensor:\n%v", err)
	}
	tmp := la.MatAlloc(3, 3)
	du := la.MatAlloc(3, 3)
	l := la.MatAlloc(3, 3)
	la.MatMul(tmp, 1, x, de)
	la.MatMul(du, 1, u, tmp)
	la.MatMul(l, 1, du, ui)

	// d = sym(L)
	sym := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sym[i][j] = (l[i][j] + l[j][i]) / 2.0
		}
	}
	tsr.Ten2Man(d, sym)
	return
}

// UpdateDeformation advances the deformation gradient f and the generalized
// strain ε (in place) over the increment Δt with the rate-of-deformation d:
//   F ← exp(Δt・d)・F,  U = √(Fᵀ・F),  ε = ε(U;κ)
// Fails if the updated deformation has non-positive determinant.
func UpdateDeformation(f [][]float64, ε []float64, Δt, κ float64, d []float64) (err error) {

	// incremental deformation: exp(Δt・d)
	a := make([]float64, Nsig)
	for i := 0; i < Nsig; i++ {
		a[i] = d[i] * Δt
	}
	em := make([]float64, Nsig)
	err = applySpectral(em, a, func(λ float64) (float64, error) { return math.Exp(λ), nil })
	if err != nil {
		return
	}
	dfm := la.MatAlloc(3, 3)
	tsr.Man2Ten(dfm, em)
	fnew := la.MatAlloc(3, 3)
	la.MatMul(fnew, 1, dfm, f)

	// admissibility
	fi := la.MatAlloc(3, 3)
	det, err := la.MatInv(fi, fnew, 1e-14)
	if err != nil {
		return chk.Err("kin: inadmissible deformation:\n%v", err)
	}
	if det <= 0 {
		return chk.Err("kin: inadmissible deformation. det(F)=%g would invert the volume", det)
	}
	la.MatCopy(f, 1, fnew)

	// updated stretch and strain
	U := make([]float64, Nsig)
	err = RightStretch(U, f)
	if err != nil {
		return
	}
	return StrainFromStretch(ε, U, κ)
}

// RightStretch computes the right stretch tensor U = √(Fᵀ・F) (Mandel basis)
func RightStretch(U []float64, f [][]float64) (err error) {
	c := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				c[i][j] += f[k][i] * f[k][j]
			}
		}
	}
	cm := make([]float64, Nsig)
	tsr.Ten2Man(cm, c)
	return applySpectral(U, cm, func(λ float64) (float64, error) {
		if λ <= 0 {
			return 0, chk.Err("kin: Fᵀ・F has non-positive eigenvalue %g", λ)
		}
		return math.Sqrt(λ), nil
	})
}
