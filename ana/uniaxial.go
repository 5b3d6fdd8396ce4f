// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides closed-form solutions of simple loading programmes on
// isotropic linear-elastic material, for verifying the driven responses
package ana

// UniaxialStrain returns the axial and lateral stresses of a uniaxial-strain
// programme with axial strain e
//  σ11 = (K + 4G/3)・e
//  σ22 = σ33 = (K - 2G/3)・e
func UniaxialStrain(K, G, e float64) (σ11, σ22 float64) {
	σ11 = (K + 4.0*G/3.0) * e
	σ22 = (K - 2.0*G/3.0) * e
	return
}

// UniaxialStress returns the axial and lateral strains of a uniaxial-stress
// programme with axial stress s (lateral stresses zero)
//  ε11 = s/E       with E = 9KG/(3K+G)
//  ε22 = ε33 = -ν・ε11
func UniaxialStress(K, G, s float64) (ε11, ε22 float64) {
	E := 9.0 * K * G / (3.0*K + G)
	ν := (3.0*K - 2.0*G) / (2.0 * (3.0*K + G))
	ε11 = s / E
	ε22 = -ν * ε11
	return
}

// Hydrostatic returns the volumetric strain of a hydrostatic programme with
// pressure p (compression positive)
//  evol = -p/K
func Hydrostatic(K, p float64) (evol float64) {
	return -p / K
}

// ShearYield returns the engineering shear strain at which an isotropic J2
// material with yield stress qy0 starts flowing under pure (traceless) shear
func ShearYield(G, qy0 float64) float64 {
	return qy0 / (3.0 * G)
}
