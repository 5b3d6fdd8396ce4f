// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// QR3 factorizes the 3×3 matrix a into an orthogonal matrix q and an upper
// triangular matrix r with positive diagonal (a = q・r), using modified
// Gram-Schmidt on the columns of a. With this sign convention, q is the
// identity whenever a is upper triangular with positive diagonal; for a
// deformation gradient this makes q the rotation part and r the stretch part.
func QR3(q, r, a [][]float64) (err error) {
	v := make([]float64, 3)
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			v[i] = a[i][j]
			r[i][j] = 0
		}
		for i := 0; i < j; i++ {
			dot := q[0][i]*v[0] + q[1][i]*v[1] + q[2][i]*v[2]
			r[i][j] = dot
			for k := 0; k < 3; k++ {
				v[k] -= dot * q[k][i]
			}
		}
		nrm := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		if nrm < 1e-14 {
			return chk.Err("kin: QR3 failed. columns of matrix are linearly dependent")
		}
		r[j][j] = nrm
		for k := 0; k < 3; k++ {
			q[k][j] = v[k] / nrm
		}
	}
	return
}
