// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"

	"github.com/tjfulle/gmd/kin"
)

// rotTol is the maximum deviation of the rotation part of a deformation
// gradient from the identity (rotations are not supported)
const rotTol = 1e-14

// Path is the ordered, time-monotonic sequence of normalized legs. It owns
// its legs: leg i starts where leg i-1 ends, the first leg starts at zero,
// and stress-type control never co-occurs with a nonzero κ.
type Path struct {
	Legs  []*Leg  // normalized legs in execution order
	Kappa float64 // κ used to normalize (and to integrate) this path
}

// Len returns the number of legs
func (o *Path) Len() int { return len(o.Legs) }

// Tf returns the termination time of the last leg (zero for an empty path)
func (o *Path) Tf() float64 {
	if len(o.Legs) == 0 {
		return 0
	}
	return o.Legs[len(o.Legs)-1].T1
}

// String returns a table with the normalized legs
func (o *Path) String() (l string) {
	l = io.Sf("%8s%8s%6s %-12s %s\n", "t0", "t1", "steps", "control", "targets")
	for _, leg := range o.Legs {
		cfmt := ""
		for _, c := range leg.Control {
			cfmt += c.String()
		}
		l += io.Sf("%8g%8g%6d %-12s %v\n", leg.T0, leg.T1, leg.Nsteps, cfmt, leg.C)
	}
	return
}

// Normalize builds a Path from raw legs. It applies the global scale factors,
// extracts non-mechanical contributions, resolves the composite modes in
// fixed priority order (deformation gradient → displacement → volumetric
// strain → pressure), pads the control/target arrays to Nsig slots, and
// enforces the admissibility rules. tterm > 0 cuts the path after the first
// leg terminating beyond it; tterm ≤ 0 means no cutoff.
func Normalize(raw []*RawLeg, fac *Factors, tterm float64) (o *Path, err error) {

	// factors
	efac, tfac, sfac, ffac, effac, dfac, err := fac.Validate()
	if err != nil {
		return
	}
	κ := fac.Kappa
	ndumps := fac.ndumps()
	if tterm <= 0 {
		tterm = 1e80
	}

	// stress control and nonzero κ are mutually exclusive across the table
	if κ != 0 {
		for i, rleg := range raw {
			for _, c := range rleg.Control {
				if c.IsStressKind() {
					return nil, chk.Err("path: κ must be zero with stress control. κ=%g and %q control in leg %d are inadmissible", κ, c.String(), i+1)
				}
			}
		}
	}

	o = &Path{Kappa: κ}
	prevEnd := 0.0
	for ileg, rleg := range raw {
		legnum := ileg + 1

		// basic checks
		if len(rleg.Control) != len(rleg.C) {
			return nil, chk.Err("path: len(C)=%d != len(control)=%d in leg %d", len(rleg.C), len(rleg.Control), legnum)
		}
		if rleg.Ttime < 0 {
			return nil, chk.Err("path: expected positive termination time in leg %d. t=%g is invalid", legnum, rleg.Ttime)
		}
		if rleg.Nsteps < 0 {
			return nil, chk.Err("path: expected positive number of steps in leg %d. nsteps=%d is invalid", legnum, rleg.Nsteps)
		}
		err = CheckControl(rleg.Control, legnum)
		if err != nil {
			return nil, err
		}

		// global factors
		ttime := tfac * rleg.Ttime
		nsteps := int(fac.StepFac * float64(rleg.Nsteps))
		if ttime < prevEnd {
			return nil, chk.Err("path: expected time to increase monotonically in leg %d", legnum)
		}
		if nsteps < 1 && ttime > prevEnd {
			nsteps = 1
		}

		// extract non-mechanical contributions
		ef := make([]float64, 3)
		temp := DefaultTemp
		var ufield []float64
		var control []Kind
		var c []float64
		j := 0
		for i, k := range rleg.Control {
			switch k {
			case ElecField:
				if j > 2 {
					return nil, chk.Err("path: more than 3 electric field components in leg %d", legnum)
				}
				ef[j] = effac * rleg.C[i]
				j++
			case Temperature:
				temp = rleg.C[i]
			case UserField:
				ufield = append(ufield, rleg.C[i])
			default:
				control = append(control, k)
				c = append(c, rleg.C[i])
			}
		}

		// resolve composite modes (fixed priority order)
		switch {
		case hasKind(control, DefGrad):
			control, c, err = defgradToStrain(c, ffac, κ, legnum)

		case hasKind(control, Displacement):
			control, c, err = displacementToStrain(c, dfac, κ, legnum)

		case len(control) == 1 && control[0] == Strain:
			control, c, err = volumetricToStrain(c[0], κ, legnum)

		case len(control) == 1 && control[0] == Stress:
			control, c = pressureToStress(c[0])
		}
		if err != nil {
			return nil, err
		}

		// pad to Nsig slots (missing slots default to zero strain)
		if len(control) > Nsig {
			return nil, chk.Err("path: too many mechanical control slots (%d) in leg %d", len(control), legnum)
		}
		for len(control) < Nsig {
			control = append(control, Strain)
			c = append(c, 0)
		}

		// per-slot scaling and admissibility
		for i, k := range control {
			switch k {
			case StrainRate, StressRate:
				c[i] *= fac.RateFac
			case Strain:
				c[i] *= efac
				if κ*c[i]+1 < 0 {
					return nil, chk.Err("path: 1 + κ・E[%d] must be positive in leg %d. κ=%g and E=%g are inadmissible", i, legnum, κ, c[i])
				}
			case Stress:
				c[i] *= sfac
			}
		}

		// initial-condition checks for a (numerically) zero termination time
		if math.Abs(ttime) < 1e-16 {
			for i, k := range control {
				if k == StressRate {
					return nil, chk.Err("path: initial stress rate is ambiguous (leg %d)", legnum)
				}
				if k == Stress && c[i] != 0 {
					return nil, chk.Err("path: nonzero initial stress is not yet supported (leg %d)", legnum)
				}
			}
		}

		// append normalized leg
		o.Legs = append(o.Legs, &Leg{
			T0:        prevEnd,
			T1:        ttime,
			Nsteps:    nsteps,
			Control:   control,
			C:         c,
			Ndumps:    ndumps,
			EF:        ef,
			Temp:      temp,
			UserField: ufield,
		})
		prevEnd = ttime
		if ttime > tterm {
			break
		}
	}
	return
}

// hasKind tells whether kind k occurs in control
func hasKind(control []Kind, k Kind) bool {
	for _, c := range control {
		if c == k {
			return true
		}
	}
	return false
}

// defgradToStrain converts a 9-component deformation-gradient specification
// into all-strain control. The deformation must have positive determinant and
// must be rotation free.
func defgradToStrain(c []float64, ffac, κ float64, legnum int) (control []Kind, ε []float64, err error) {
	if len(c) != 9 {
		return nil, nil, chk.Err("path: all 9 components of deformation gradient must be specified (leg %d)", legnum)
	}

	// scaled deformation gradient (row major)
	f := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			f[i][j] = ffac * c[3*i+j]
		}
	}

	// admissibility: det(F) > 0
	fi := la.MatAlloc(3, 3)
	det, err := la.MatInv(fi, f, 1e-16)
	if err != nil || det <= 0 {
		return nil, nil, chk.Err("path: inadmissible deformation gradient in leg %d gave a determinant of %g. the volume would invert", legnum, det)
	}

	// split rotation and stretch; reject rotations
	q := la.MatAlloc(3, 3)
	r := la.MatAlloc(3, 3)
	err = kin.QR3(q, r, f)
	if err != nil {
		return nil, nil, chk.Err("path: cannot factor deformation gradient in leg %d:\n%v", legnum, err)
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
	if dev > rotTol {
		return nil, nil, chk.Err("path: rotation encountered in leg %d. rotations are not supported", legnum)
	}

	// symmetric stretch U = qᵀ・r・q
	u := la.MatAlloc(3, 3)
	tmp := la.MatAlloc(3, 3)
	la.MatMul(tmp, 1, r, q)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				u[i][j] += q[k][i] * tmp[k][j]
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			s := (u[i][j] + u[j][i]) / 2.0
			u[i][j], u[j][i] = s, s
		}
	}
	um := make([]float64, Nsig)
	tsr.Ten2Man(um, u)

	// generalized strain
	ε = make([]float64, Nsig)
	err = kin.StrainFromStretch(ε, um, κ)
	if err != nil {
		return nil, nil, chk.Err("path: cannot convert deformation gradient of leg %d to strain:\n%v", legnum, err)
	}
	control = allStrain()
	return
}

// displacementToStrain converts a 3-component displacement specification
// (stretch U_ii = d_i + 1) into all-strain control
func displacementToStrain(c []float64, dfac, κ float64, legnum int) (control []Kind, ε []float64, err error) {
	if len(c) != 3 {
		return nil, nil, chk.Err("path: all 3 components of displacement must be specified (leg %d)", legnum)
	}
	um := make([]float64, Nsig)
	for i := 0; i < 3; i++ {
		um[i] = dfac*c[i] + 1.0
	}
	ε = make([]float64, Nsig)
	err = kin.StrainFromStretch(ε, um, κ)
	if err != nil {
		return nil, nil, chk.Err("path: cannot convert displacements of leg %d to strain:\n%v", legnum, err)
	}
	control = allStrain()
	return
}

// volumetricToStrain expands a single strain value, interpreted as the
// volumetric strain, into isotropic all-strain control
func volumetricToStrain(evol, κ float64, legnum int) (control []Kind, c []float64, err error) {
	if κ*evol+1 < 0 {
		return nil, nil, chk.Err("path: 1 + κ・ev must be positive in leg %d. κ=%g and ev=%g are inadmissible", legnum, κ, evol)
	}
	var eij float64
	if κ == 0 {
		eij = evol / 3.0
	} else {
		eij = (math.Pow(κ*evol+1.0, 1.0/3.0) - 1.0) / κ
	}
	control = allStrain()
	c = []float64{eij, eij, eij, 0, 0, 0}
	return
}

// pressureToStress expands a single stress value, interpreted as the
// pressure, into isotropic normal-stress control with zero shear strain
func pressureToStress(p float64) (control []Kind, c []float64) {
	s := -p
	control = []Kind{Stress, Stress, Stress, Strain, Strain, Strain}
	c = []float64{s, s, s, 0, 0, 0}
	return
}

// allStrain returns an all-strain control sequence
func allStrain() []Kind {
	return []Kind{Strain, Strain, Strain, Strain, Strain, Strain}
}
