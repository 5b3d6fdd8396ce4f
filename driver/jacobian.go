// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/tjfulle/gmd/mat"
)

// tangent fills J (len(v)×len(v)) with the material stiffness dσ/dε over the
// slot subset v. The default is a centered finite-difference estimate around
// the current rate of deformation; with UseTangent, models providing their
// own consistent moduli are used instead (cross-checked against the numerical
// estimate when CheckJ is set).
func (o *Driver) tangent(J [][]float64, v []int, t, Δt, temp, Δtemp float64, ef, ufield []float64) (err error) {

	// model-provided moduli
	if o.UseTangent {
		if tgt, ok := o.Mdl.(mat.Tangential); ok {
			D := la.MatAlloc(Nsig, Nsig)
			err = tgt.CalcD(D, o.state)
			if err != nil {
				return
			}
			for i := range v {
				for j := range v {
					J[i][j] = D[v[i]][v[j]]
				}
			}
			if !o.CheckJ {
				return
			}
			Jnum := la.MatAlloc(len(v), len(v))
			err = o.fdTangent(Jnum, v, t, Δt, temp, Δtemp, ef, ufield)
			if err != nil {
				return
			}
			scale := 0.0
			diff := 0.0
			for i := range v {
				for j := range v {
					scale = math.Max(scale, math.Abs(Jnum[i][j]))
					diff = math.Max(diff, math.Abs(J[i][j]-Jnum[i][j]))
				}
			}
			if scale > 0 && diff/scale > o.TolJ {
				o.warn("model tangent deviates from the numerical one by %g (rel). using the numerical tangent", diff/scale)
				la.MatCopy(J, 1, Jnum)
			}
			return
		}
	}
	return o.fdTangent(J, v, t, Δt, temp, Δtemp, ef, ufield)
}

// fdTangent estimates the material stiffness over the slot subset v with
// centered differences of trial sub-steps
func (o *Driver) fdTangent(J [][]float64, v []int, t, Δt, temp, Δtemp float64, ef, ufield []float64) (err error) {

	// strain perturbation √eps, applied through the rate
	h := math.Sqrt(macheps)
	Δtʹ := Δt
	if Δtʹ < 1e-12 {
		Δtʹ = 1.0
	}

	dp := make([]float64, Nsig)
	σp := make([]float64, Nsig)
	σm := make([]float64, Nsig)
	for j, idx := range v {
		copy(dp, o.d)
		dp[idx] = o.d[idx] + h/(2.0*Δtʹ)
		err = o.trialSig(σp, dp, t, Δt, temp, Δtemp, ef, ufield)
		if err != nil {
			return
		}
		dp[idx] = o.d[idx] - h/(2.0*Δtʹ)
		err = o.trialSig(σm, dp, t, Δt, temp, Δtemp, ef, ufield)
		if err != nil {
			return
		}
		for i, row := range v {
			J[i][j] = (σp[row] - σm[row]) / h
		}
	}
	return
}
