// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"math"
)

// An Int16_16 is a signed Q16.16 fixed-point number: its two's complement
// int32 value, the raw value, is the number scaled by 2**16.
type Int16_16 int32

// Int16_16 constants.
const (
	Int16_16Zero         Int16_16 = 0
	Int16_16One          Int16_16 = 1 << 16
	Int16_16Epsilon      Int16_16 = 1
	Int16_16Max          Int16_16 = math.MaxInt32
	Int16_16Min          Int16_16 = math.MinInt32
	Int16_16Pi           Int16_16 = 205887
	Int16_16E            Int16_16 = 178145
	Int16_16PiOver2      Int16_16 = 102944
	Int16_16PiOver4      Int16_16 = 51472
	Int16_16TwoPi        Int16_16 = 411775
	Int16_16ThreePiOver4 Int16_16 = 154416
)

// Int16_16FromBits returns the Int16_16 whose raw value is b.
func Int16_16FromBits(b int32) Int16_16 { return Int16_16(b) }

// Bits returns the raw value of x.
func (x Int16_16) Bits() int32 { return int32(x) }

func (x Int16_16) add(y Int16_16, p Policy) (Int16_16, error) {
	s := x + y
	// overflow iff x and y have the same sign and s has the other one
	if (x^s)&(y^s) < 0 {
		return resolve[Int16_16](p, "Int16_16.Add", x >= 0)
	}
	return s, nil
}

func (x Int16_16) sub(y Int16_16, p Policy) (Int16_16, error) {
	d := x - y
	if (x^y)&(x^d) < 0 {
		return resolve[Int16_16](p, "Int16_16.Sub", x >= 0)
	}
	return d, nil
}

func (x Int16_16) mul(y Int16_16, p Policy) (Int16_16, error) {
	prod := int64(x) * int64(y)
	// the 17 top bits must all be copies of the sign bit
	if hi := prod >> 47; hi != 0 && hi != -1 {
		return resolve[Int16_16](p, "Int16_16.Mul", x^y >= 0)
	}
	r := prod>>16 + (prod>>15)&1
	if r > math.MaxInt32 {
		return resolve[Int16_16](p, "Int16_16.Mul", true)
	}
	return Int16_16(r), nil
}

func (x Int16_16) quo(y Int16_16, p Policy) (Int16_16, error) {
	const op = "Int16_16.Quo"
	if y == 0 {
		return 0, &Error{op, ErrDivideByZero}
	}
	neg := x^y < 0
	limit := uint64(math.MaxInt32)
	if neg {
		limit++
	}
	q, ok := divq(x.mag(), y.mag(), 16, limit)
	if !ok {
		return resolve[Int16_16](p, op, !neg)
	}
	if neg {
		return Int16_16(-int64(q)), nil
	}
	return Int16_16(q), nil
}

// mag returns |x| as an unsigned integer. mag(Int16_16Min) is 1<<31.
func (x Int16_16) mag() uint32 {
	m := uint32(x)
	if x < 0 {
		m = -m
	}
	return m
}

// Add returns the sum x+y, saturated to [Int16_16Min, Int16_16Max].
func (x Int16_16) Add(y Int16_16) Int16_16 { return must(x.add(y, Saturate)) }

// Sub returns the difference x-y, saturated to [Int16_16Min, Int16_16Max].
func (x Int16_16) Sub(y Int16_16) Int16_16 { return must(x.sub(y, Saturate)) }

// Mul returns the product x*y rounded half up, saturated to
// [Int16_16Min, Int16_16Max].
func (x Int16_16) Mul(y Int16_16) Int16_16 { return must(x.mul(y, Saturate)) }

// Quo returns the quotient x/y rounded to nearest, saturated to
// [Int16_16Min, Int16_16Max]. Quo panics with an *Error wrapping
// ErrDivideByZero if y is zero.
func (x Int16_16) Quo(y Int16_16) Int16_16 { return must(x.quo(y, Saturate)) }

// AddChecked is like Add but returns an error wrapping ErrOverflow instead
// of saturating.
func (x Int16_16) AddChecked(y Int16_16) (Int16_16, error) { return x.add(y, Check) }

// SubChecked is like Sub but returns an error wrapping ErrOverflow instead
// of saturating.
func (x Int16_16) SubChecked(y Int16_16) (Int16_16, error) { return x.sub(y, Check) }

// MulChecked is like Mul but returns an error wrapping ErrOverflow instead
// of saturating.
func (x Int16_16) MulChecked(y Int16_16) (Int16_16, error) { return x.mul(y, Check) }

// QuoChecked is like Quo but returns an error wrapping ErrOverflow instead
// of saturating, and an error wrapping ErrDivideByZero if y is zero.
func (x Int16_16) QuoChecked(y Int16_16) (Int16_16, error) { return x.quo(y, Check) }

// Neg returns -x. Neg(Int16_16Min) is Int16_16Max.
func (x Int16_16) Neg() Int16_16 {
	if x == Int16_16Min {
		return Int16_16Max
	}
	return -x
}

// Abs returns |x|. As with two's complement integers, Abs(Int16_16Min) is
// Int16_16Min.
func (x Int16_16) Abs() Int16_16 {
	mask := x >> 31
	return (x + mask) ^ mask
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x Int16_16) Sign() int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Int16_16) Cmp(y Int16_16) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// EqualWithin reports whether |x-y| <= delta. A zero delta tests for bit
// exact equality, a negative one always reports false.
func (x Int16_16) EqualWithin(y, delta Int16_16) bool {
	d := int64(x) - int64(y)
	if d < 0 {
		d = -d
	}
	return d <= int64(delta)
}

// Float64 returns the float64 value of x. The result is exact.
func (x Int16_16) Float64() float64 { return float64(x) / (1 << 16) }

// Float32 returns the float32 value nearest to x.
func (x Int16_16) Float32() float32 { return float32(x.Float64()) }

// Int returns the integer part of x, truncated toward zero.
func (x Int16_16) Int() int { return int(x / Int16_16One) }

// Floor returns the greatest integer value less than or equal to x.
func (x Int16_16) Floor() int { return int(x >> 16) }

// Ceil returns the least integer value greater than or equal to x.
func (x Int16_16) Ceil() int { return int((int64(x) + 1<<16 - 1) >> 16) }

// Round returns the nearest integer, rounding half up.
func (x Int16_16) Round() int { return int((int64(x) + 1<<15) >> 16) }

// Sqrt returns the square root of x, rounded to nearest. ok is false if x
// is negative.
func (x Int16_16) Sqrt() (z Int16_16, ok bool) {
	if x < 0 {
		return 0, false
	}
	return Int16_16(sqrtq(uint32(x), 32)), true
}

// SignedSqrt returns sign(x) * sqrt(|x|). This is not a square root for
// negative x; it is meant for values that were negated by a previous
// computation.
func (x Int16_16) SignedSqrt() Int16_16 {
	r := Int16_16(sqrtq(x.mag(), 32))
	if x < 0 {
		return -r
	}
	return r
}

// Uint16_16 converts x to an Uint16_16. Negative values saturate to zero.
func (x Int16_16) Uint16_16() (Uint16_16, Accuracy) { return convert[Uint16_16](x) }

// Uint8_8 converts x to an Uint8_8. The fraction is truncated toward zero
// and the result saturates to [0, Uint8_8Max].
func (x Int16_16) Uint8_8() (Uint8_8, Accuracy) { return convert[Uint8_8](x) }
