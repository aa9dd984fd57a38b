// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Fixed is the set of fixed-point types implemented by this package.
type Fixed interface {
	Int16_16 | Uint16_16 | Uint8_8
}

// Number is the set of native numeric types accepted by the generic
// conversion functions.
type Number interface {
	constraints.Integer | constraints.Float
}

// Arith is the arithmetic method set shared by all fixed-point types.
type Arith[T any] interface {
	Fixed
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Quo(y T) T
	AddChecked(y T) (T, error)
	SubChecked(y T) (T, error)
	MulChecked(y T) (T, error)
	QuoChecked(y T) (T, error)
}

// A format describes the layout of a fixed-point type.
type format struct {
	name   string
	frac   uint  // fractional bits
	width  uint  // bits of the raw integer
	min    int64 // raw bounds
	max    int64
	signed bool
}

var (
	fmtInt16_16  = &format{"Int16_16", 16, 32, math.MinInt32, math.MaxInt32, true}
	fmtUint16_16 = &format{"Uint16_16", 16, 32, 0, math.MaxUint32, false}
	fmtUint8_8   = &format{"Uint8_8", 8, 16, 0, math.MaxUint16, false}
)

func formatOf[T Fixed]() *format {
	var z T
	switch any(z).(type) {
	case Int16_16:
		return fmtInt16_16
	case Uint16_16:
		return fmtUint16_16
	default:
		return fmtUint8_8
	}
}

// one returns 1 << f.frac.
func (f *format) one() int64 { return 1 << f.frac }

// clamp saturates r to the raw range of f and reports the direction of the
// adjustment.
func (f *format) clamp(r int64) (int64, Accuracy) {
	switch {
	case r > f.max:
		return f.max, Below
	case r < f.min:
		return f.min, Above
	}
	return r, Exact
}

// Accuracy describes the rounding error produced by a conversion, relative
// to the exact value.
type Accuracy int8

// Constants describing the Accuracy of a conversion.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

func (a Accuracy) String() string {
	switch a {
	case Below:
		return "Below"
	case Exact:
		return "Exact"
	case Above:
		return "Above"
	}
	return "Accuracy(" + strconv.Itoa(int(a)) + ")"
}

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

// Policy selects how an arithmetic operation resolves an overflow.
type Policy uint8

// Overflow policies.
const (
	Saturate Policy = iota // clamp to the type's Max or Min
	Check                  // report ErrOverflow
)

func (p Policy) String() string {
	switch p {
	case Saturate:
		return "saturate"
	case Check:
		return "check"
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// ParsePolicy returns the policy named s ("saturate" or "check").
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "saturate":
		return Saturate, nil
	case "check":
		return Check, nil
	}
	return 0, &Error{Op: "ParsePolicy", Err: ErrInvalidArgument}
}

// resolve is the overflow strategy shared by every arithmetic operator: it
// returns the value an overflowing operation op produces under p. positive
// is the sign of the exact result.
func resolve[T Fixed](p Policy, op string, positive bool) (T, error) {
	if p == Check {
		return 0, &Error{Op: op, Err: ErrOverflow}
	}
	f := formatOf[T]()
	if positive {
		return T(f.max), nil
	}
	return T(f.min), nil
}

// must returns z, panicking with err if it is not nil.
func must[T Fixed](z T, err error) T {
	if err != nil {
		panic(err)
	}
	return z
}
