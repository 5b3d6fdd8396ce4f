// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package driver integrates a material model along a normalized loading path,
// one sub-step at a time. Strain-type slots prescribe the motion directly;
// stress-type slots are enforced with a Newton sub-solve on the unknown
// components of the rate of deformation.
package driver

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"

	"github.com/tjfulle/gmd/kin"
	"github.com/tjfulle/gmd/mat"
	"github.com/tjfulle/gmd/path"
)

// Nsig is the number of Mandel components of symmetric tensors
const Nsig = 6

// numerical constants of the sub-solve
const (
	macheps = 2.220446049250313e-16 // smallest ε with 1+ε > 1 (float64)
)

// Snapshot holds the full driver state at one dumped sub-step
type Snapshot struct {
	Leg   int       // leg number (1-based)
	Step  int       // sub-step within the leg (0 for the leg-start dump)
	Time  float64   // time at the end of the sub-step
	Dtime float64   // sub-step duration
	Sig   []float64 // σ: stress (Mandel)
	Eps   []float64 // ε: strain (Mandel)
	D     []float64 // d: rate of deformation (Mandel)
	DSig  []float64 // σ̇: stress rate over the sub-step (Mandel)
	F     []float64 // deformation gradient, row major [9]
	Temp  float64   // temperature
	EqEps float64   // equivalent strain √(2/3・ε:ε)
	Evol  float64   // volumetric strain tr(ε)
	Pres  float64   // pressure -tr(σ)/3
	Rho   float64   // current density
}

// Sink receives the dumped snapshots
type Sink interface {
	Dump(snap *Snapshot) error
}

// Driver drives a material model along a path
type Driver struct {

	// input
	Mdl      mat.Model // material model
	Silent   bool      // do not print progress
	TermTime float64   // stop after the sub-step reaching this time (≤ 0: run the whole path)

	// sub-solve settings
	NmaxIt     int     // maximum Newton iterations
	NitTight   int     // iterations solved against Tol1 before relaxing to Tol2
	Tol1       float64 // tight residual tolerance
	Tol2       float64 // relaxed residual tolerance
	DepsMax    float64 // maximum admissible strain increment magnitude
	UseTangent bool    // use the model tangent (when available) instead of the numerical one
	CheckJ     bool    // cross-check the model tangent against the numerical one
	TolJ       float64 // relative tolerance of the tangent cross-check
	WarnMax    int     // maximum number of printed warnings

	// state
	state *mat.State
	κ     float64     // strain measure parameter of the path being run
	ε     []float64   // current strain (Mandel)
	d     []float64   // current rate of deformation (Mandel)
	f     [][]float64 // current deformation gradient
	f0    [][]float64 // deformation gradient at the beginning of the sub-step
	ρ     float64     // current density
	nwarn int         // warnings printed so far

	// scratch
	εf   []float64   // prescribed strain at the end of the sub-step
	dεdt []float64   // prescribed strain rate over the sub-step
	σt   []float64   // prescribed stress at the end of the sub-step
	σold []float64   // stress at the beginning of the sub-step
	sc   *mat.State  // trial state of the sub-solve
	ftr  [][]float64 // trial deformation gradient
	εtr  []float64   // trial strain
}

// New returns a driver with default sub-solve settings
func New(mdl mat.Model) *Driver {
	return &Driver{
		Mdl:      mdl,
		NmaxIt:   30,
		NitTight: 20,
		Tol1:     macheps,
		Tol2:     math.Sqrt(macheps),
		DepsMax:  0.2,
		TolJ:     0.005,
		WarnMax:  10,
	}
}

// State returns the current material state
func (o *Driver) State() *mat.State { return o.state }

// Run integrates the model along the path, dumping snapshots into sink
// (which may be nil)
func (o *Driver) Run(pth *path.Path, sink Sink) (err error) {

	// initialise state
	o.state, err = o.Mdl.InitState()
	if err != nil {
		return chk.Err("driver: cannot initialise state:\n%v", err)
	}
	o.ρ = o.Mdl.GetRho()
	o.ε = make([]float64, Nsig)
	o.d = make([]float64, Nsig)
	o.f = la.MatAlloc(3, 3)
	o.f0 = la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		o.f[i][i] = 1
		o.f0[i][i] = 1
	}
	o.εf = make([]float64, Nsig)
	o.dεdt = make([]float64, Nsig)
	o.σt = make([]float64, Nsig)
	o.σold = make([]float64, Nsig)
	o.sc = o.state.GetCopy()
	o.ftr = la.MatAlloc(3, 3)
	o.εtr = make([]float64, Nsig)

	// ambient fields at the start of the path
	o.κ = pth.Kappa
	κ := pth.Kappa
	temp := path.DefaultTemp
	ef := make([]float64, 3)
	var ufield []float64
	if pth.Len() > 0 {
		temp = pth.Legs[0].Temp
	}

	if !o.Silent {
		io.Pf("> Driving %d leg(s) to t = %g\n", pth.Len(), pth.Tf())
	}

	// dump initial state
	if err = o.dump(sink, 1, 0, 0, 0, temp); err != nil {
		return
	}

	// leg loop
	for ileg, leg := range pth.Legs {
		legnum := ileg + 1
		dtime := leg.Dtime()

		// zero-duration leg: set ambient fields only
		if dtime <= 0 {
			temp = leg.Temp
			copy(ef, leg.EF)
			ufield = cloneOrNil(leg.UserField)
			continue
		}

		// leg-start values
		Δt := dtime / float64(leg.Nsteps)
		ε0 := make([]float64, Nsig)
		σ0 := make([]float64, Nsig)
		copy(ε0, o.ε)
		copy(σ0, o.state.Sig)
		temp0 := temp
		ef0 := make([]float64, 3)
		copy(ef0, ef)
		v := leg.StressSlots()
		kdump := leg.Nsteps / leg.Ndumps
		if kdump < 1 {
			kdump = 1
		}
		if !o.Silent {
			io.Pf("> Leg %2d: t ∈ [%g, %g]  steps=%d  control=%v\n", legnum, leg.T0, leg.T1, leg.Nsteps, leg.Control)
		}

		// sub-step loop
		for n := 1; n <= leg.Nsteps; n++ {
			a := float64(n) / float64(leg.Nsteps)
			t := leg.T0 + a*dtime
			Δtemp := temp0 + a*(leg.Temp-temp0) - temp
			temp += Δtemp
			for i := 0; i < 3; i++ {
				ef[i] = ef0[i] + a*(leg.EF[i]-ef0[i])
			}
			if n == leg.Nsteps {
				ufield = cloneOrNil(leg.UserField)
			}

			// prescribed end-of-step targets
			for i, c := range leg.Control {
				switch c {
				case path.StrainRate:
					o.εf[i] = ε0[i] + leg.C[i]*(t-leg.T0)
				case path.Strain:
					o.εf[i] = ε0[i] + a*(leg.C[i]-ε0[i])
				case path.StressRate:
					o.σt[i] = σ0[i] + leg.C[i]*(t-leg.T0)
				case path.Stress:
					o.σt[i] = σ0[i] + a*(leg.C[i]-σ0[i])
				}
			}

			// rate of deformation of the prescribed slots
			for i := range o.dεdt {
				o.dεdt[i] = (o.εf[i] - o.ε[i]) / Δt
			}
			if len(v) == 0 {
				err = kin.RateOfDeformation(o.d, Δt, κ, o.ε, o.dεdt)
				if err != nil {
					return chk.Err("driver: leg %d, step %d: %v", legnum, n, err)
				}
			} else {
				// stress-driven: Newton sub-solve for the unknown slots
				// (κ = 0 here, so d and the strain rate coincide)
				copy(o.d, o.dεdt)
				for _, i := range v {
					o.d[i] = 0
				}
				err = o.solveStress(t, Δt, temp, Δtemp, ef, ufield, v, legnum, n)
				if err != nil {
					return
				}
			}

			// commit deformation and stress
			copy(o.σold, o.state.Sig)
			la.MatCopy(o.f0, 1, o.f)
			err = kin.UpdateDeformation(o.f, o.ε, Δt, κ, o.d)
			if err != nil {
				return chk.Err("driver: leg %d, step %d: %v", legnum, n, err)
			}
			err = o.Mdl.Update(o.state, t, Δt, temp, Δtemp, o.f0, o.f, o.ε, o.d, ef, ufield)
			if err != nil {
				return chk.Err("driver: leg %d, step %d: cannot update model:\n%v", legnum, n, err)
			}

			// density evolution
			trd := o.d[0] + o.d[1] + o.d[2]
			o.ρ *= math.Exp(-trd * Δt)

			// dump
			atEnd := n == leg.Nsteps || math.Abs(t-leg.T1) < 1e-12*math.Max(1, leg.T1)
			if n%kdump == 0 || atEnd {
				if err = o.dump(sink, legnum, n, t, Δt, temp); err != nil {
					return
				}
			}

			// early termination (strictly past the cutoff, so a leg ending
			// exactly at the termination time does not swallow the next one)
			if o.TermTime > 0 && t > o.TermTime {
				if !o.Silent {
					io.Pf("termination time %g reached at t = %g\n", o.TermTime, t)
				}
				return
			}
		}
		temp = leg.Temp
		copy(ef, leg.EF)
	}
	return
}

// dump computes the derived quantities and sends one snapshot to sink
func (o *Driver) dump(sink Sink, legnum, step int, t, Δt, temp float64) (err error) {
	if sink == nil {
		return
	}
	snap := &Snapshot{
		Leg:   legnum,
		Step:  step,
		Time:  t,
		Dtime: Δt,
		Sig:   cloneVec(o.state.Sig),
		Eps:   cloneVec(o.ε),
		D:     cloneVec(o.d),
		DSig:  make([]float64, Nsig),
		F:     make([]float64, 9),
		Temp:  temp,
		EqEps: math.Sqrt(2.0/3.0) * la.VecNorm(o.ε),
		Evol:  o.ε[0] + o.ε[1] + o.ε[2],
		Pres:  tsr.M_p(o.state.Sig),
		Rho:   o.ρ,
	}
	if Δt > 0 {
		for i := 0; i < Nsig; i++ {
			snap.DSig[i] = (o.state.Sig[i] - o.σold[i]) / Δt
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			snap.F[3*i+j] = o.f[i][j]
		}
	}
	return sink.Dump(snap)
}

// warn prints a warning, up to WarnMax of them
func (o *Driver) warn(msg string, args ...interface{}) {
	if o.nwarn >= o.WarnMax {
		return
	}
	o.nwarn++
	io.Pfred("driver: warning: "+msg+"\n", args...)
	if o.nwarn == o.WarnMax {
		io.Pfred("driver: warning: maximum number of warnings reached. suppressing the rest\n")
	}
}

func cloneVec(a []float64) (b []float64) {
	b = make([]float64, len(a))
	copy(b, a)
	return
}

func cloneOrNil(a []float64) []float64 {
	if a == nil {
		return nil
	}
	return cloneVec(a)
}
