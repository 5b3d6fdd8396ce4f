// Copyright 2016 The Gmd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package path implements the loading-path table of the driver: the control
// vocabulary, the front ends reading raw leg specifications, and the
// normalizer that turns raw legs into a uniform sequence of 6-slot
// symmetric-tensor control/target pairs.
package path

import "github.com/cpmech/gosl/chk"

// Kind defines what physical quantity the target of one control slot
// represents
type Kind int

// control kinds
const (
	StrainRate   Kind = 1 // D: strain rate
	Strain       Kind = 2 // E: strain
	StressRate   Kind = 3 // R: stress rate
	Stress       Kind = 4 // S: stress
	DefGrad      Kind = 5 // F: deformation gradient
	ElecField    Kind = 6 // P: electric field
	Temperature  Kind = 7 // T: temperature
	Displacement Kind = 8 // U: displacement
	UserField    Kind = 9 // X: user defined field
)

// letter2kind maps the letter aliases to control kinds
var letter2kind = map[byte]Kind{
	'D': StrainRate,
	'E': Strain,
	'R': StressRate,
	'S': Stress,
	'F': DefGrad,
	'P': ElecField,
	'T': Temperature,
	'U': Displacement,
	'X': UserField,
}

// kind2letter is the inverse of letter2kind
var kind2letter = map[Kind]byte{}

func init() {
	for l, k := range letter2kind {
		kind2letter[k] = l
	}
}

// String returns the letter alias of this kind
func (o Kind) String() string {
	l, ok := kind2letter[o]
	if !ok {
		return "?"
	}
	return string(l)
}

// IsRate tells whether this kind is a rate (strain rate or stress rate)
func (o Kind) IsRate() bool {
	return o == StrainRate || o == StressRate
}

// IsStressKind tells whether this kind prescribes stress or stress rate
func (o Kind) IsStressKind() bool {
	return o == Stress || o == StressRate
}

// IsMechanical tells whether this kind occupies a mechanical tensor slot
func (o Kind) IsMechanical() bool {
	switch o {
	case ElecField, Temperature, UserField:
		return false
	}
	return true
}

// ParseControl converts a control format string such as "222222", "ES" or
// "dde" into a sequence of kinds. Digits and letter aliases (case
// insensitive) may be mixed.
func ParseControl(cfmt string) (control []Kind, err error) {
	for i := 0; i < len(cfmt); i++ {
		c := cfmt[i]
		if c == ' ' {
			continue
		}
		var kind Kind
		if c >= '1' && c <= '9' {
			kind = Kind(c - '0')
		} else {
			u := c
			if u >= 'a' && u <= 'z' {
				u -= 'a' - 'A'
			}
			var ok bool
			kind, ok = letter2kind[u]
			if !ok {
				return nil, chk.Err("path: %q is not a valid control flag. choose from D, E, R, S, F, P, T, U, X (or 1..9)", string(c))
			}
		}
		control = append(control, kind)
	}
	return
}

// CheckControl verifies the combination rules of one leg's control sequence:
// deformation-gradient control must cover all 9 tensor components and may
// only co-occur with electric-field/user-field controls; displacement control
// must cover all 3 components under the same restriction; at most one
// temperature slot is allowed.
func CheckControl(control []Kind, legnum int) (err error) {
	ntemp, nmech, ndefgrad, ndisp := 0, 0, 0, 0
	for _, c := range control {
		if c < StrainRate || c > UserField {
			return chk.Err("path: unknown control kind %d in leg %d", int(c), legnum)
		}
		switch c {
		case Temperature:
			ntemp++
		case DefGrad:
			ndefgrad++
			nmech++
		case Displacement:
			ndisp++
			nmech++
		case ElecField, UserField:
		default:
			nmech++
		}
	}
	if ntemp > 1 {
		return chk.Err("path: multiple temperature fields in leg %d", legnum)
	}
	if ndefgrad > 0 {
		if ndefgrad != nmech {
			return chk.Err("path: mixed mode deformation not allowed with deformation gradient control (leg %d)", legnum)
		}
		if ndefgrad != 9 {
			return chk.Err("path: all 9 components of deformation gradient must be specified (leg %d)", legnum)
		}
	}
	if ndisp > 0 {
		if ndisp != nmech {
			return chk.Err("path: mixed mode deformation not allowed with displacement control (leg %d)", legnum)
		}
		if ndisp != 3 {
			return chk.Err("path: all 3 components of displacement must be specified (leg %d)", legnum)
		}
	}
	return
}
