// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/tjfulle/gmd/kin"
)

// solveStress finds the components d[v] of the rate of deformation such that
// the stress at the end of the sub-step matches the prescribed targets σt[v].
// The prescribed-strain slots of d are already set and stay untouched. On
// failure the best estimate found is kept and a warning is printed.
func (o *Driver) solveStress(t, Δt, temp, Δtemp float64, ef, ufield []float64, v []int, legnum, n int) (err error) {
	nv := len(v)
	J := la.MatAlloc(nv, nv)
	Ji := la.MatAlloc(nv, nv)

	// seed: solve J・Δd = Δσ/Δt with the tangent at the current state
	err = o.tangent(J, v, t, Δt, temp, Δtemp, ef, ufield)
	if err != nil {
		return chk.Err("driver: leg %d, step %d: cannot compute tangent:\n%v", legnum, n, err)
	}
	err = la.MatInvG(Ji, J, 1e-10)
	if err != nil {
		// singular tangent: fall back to a zero seed
		o.warn("leg %d, step %d: singular tangent while seeding. starting from a zero guess", legnum, n)
	} else {
		for i := 0; i < nv; i++ {
			for j := 0; j < nv; j++ {
				o.d[v[i]] += Ji[i][j] * (o.σt[v[j]] - o.state.Sig[v[j]]) / Δt
			}
		}
	}

	// Newton iterations from the seed; retry from a zero guess on failure
	conv, best, bestErr, err := o.newton(t, Δt, temp, Δtemp, ef, ufield, v, J, Ji)
	if err != nil {
		return chk.Err("driver: leg %d, step %d: %v", legnum, n, err)
	}
	if !conv {
		for _, i := range v {
			o.d[i] = 0
		}
		var best2 []float64
		var bestErr2 float64
		conv, best2, bestErr2, err = o.newton(t, Δt, temp, Δtemp, ef, ufield, v, J, Ji)
		if err != nil {
			return chk.Err("driver: leg %d, step %d: %v", legnum, n, err)
		}
		if bestErr2 < bestErr {
			best, bestErr = best2, bestErr2
		}
	}
	if !conv {
		for i, idx := range v {
			o.d[idx] = best[i]
		}
		o.warn("leg %d, step %d: stress sub-solve did not converge. keeping the best estimate (err=%g)", legnum, n, bestErr)
	}
	return
}

// newton runs the iterations on d[v] in place. It returns the convergence
// flag together with the best estimate seen and its relative error. J and Ji
// are scratch matrices of size len(v)×len(v).
func (o *Driver) newton(t, Δt, temp, Δtemp float64, ef, ufield []float64, v []int, J, Ji [][]float64) (conv bool, best []float64, bestErr float64, err error) {
	nv := len(v)
	σtr := make([]float64, Nsig)
	σerr := make([]float64, nv)
	best = make([]float64, nv)
	bestErr = math.MaxFloat64

	// residual scale
	dnom := 1.0
	for _, i := range v {
		dnom = math.Max(dnom, math.Abs(o.σt[i]))
	}

	for it := 0; it < o.NmaxIt; it++ {

		// trial stress with the current d
		err = o.trialSig(σtr, o.d, t, Δt, temp, Δtemp, ef, ufield)
		if err != nil {
			return
		}
		relerr := 0.0
		for i, idx := range v {
			σerr[i] = σtr[idx] - o.σt[idx]
			relerr += σerr[i] * σerr[i]
		}
		relerr = math.Sqrt(relerr) / dnom
		if math.IsNaN(relerr) {
			return false, best, bestErr, nil
		}
		if relerr < bestErr {
			bestErr = relerr
			for i, idx := range v {
				best[i] = o.d[idx]
			}
		}
		tol := o.Tol1
		if it >= o.NitTight {
			tol = o.Tol2
		}
		if relerr < tol {
			return true, best, bestErr, nil
		}

		// correction
		err = o.tangent(J, v, t, Δt, temp, Δtemp, ef, ufield)
		if err != nil {
			return
		}
		if e := la.MatInvG(Ji, J, 1e-10); e != nil {
			return false, best, bestErr, nil
		}
		for i := 0; i < nv; i++ {
			for j := 0; j < nv; j++ {
				o.d[v[i]] -= Ji[i][j] * σerr[j] / Δt
			}
		}

		// the strain increment must stay bounded
		depsmag := 0.0
		for _, idx := range v {
			depsmag += o.d[idx] * o.d[idx] * Δt * Δt
		}
		if math.Sqrt(depsmag) > o.DepsMax {
			return false, best, bestErr, nil
		}
	}
	return false, best, bestErr, nil
}

// trialSig integrates one sub-step from the committed state without
// committing anything, returning the resulting stress in σ
func (o *Driver) trialSig(σ, d []float64, t, Δt, temp, Δtemp float64, ef, ufield []float64) (err error) {
	o.sc.Set(o.state)
	la.MatCopy(o.ftr, 1, o.f)
	copy(o.εtr, o.ε)
	err = kin.UpdateDeformation(o.ftr, o.εtr, Δt, o.κ, d)
	if err != nil {
		return
	}
	err = o.Mdl.Update(o.sc, t, Δt, temp, Δtemp, o.f, o.ftr, o.εtr, d, ef, ufield)
	if err != nil {
		return
	}
	copy(σ, o.sc.Sig)
	return
}
