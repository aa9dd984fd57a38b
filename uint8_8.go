// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import "math"

// An Uint8_8 is an unsigned Q8.8 fixed-point number: its uint16 value is the
// number scaled by 2**8.
type Uint8_8 uint16

// Uint8_8 constants.
const (
	Uint8_8Zero    Uint8_8 = 0
	Uint8_8One     Uint8_8 = 1 << 8
	Uint8_8Epsilon Uint8_8 = 1
	Uint8_8Max     Uint8_8 = math.MaxUint16
	Uint8_8Min     Uint8_8 = 0
	Uint8_8Pi      Uint8_8 = 804
	Uint8_8E       Uint8_8 = 696
	Uint8_8PiOver2 Uint8_8 = 402
	Uint8_8PiOver4 Uint8_8 = 201
	Uint8_8TwoPi   Uint8_8 = 1608
)

// Uint8_8FromBits returns the Uint8_8 whose raw value is b.
func Uint8_8FromBits(b uint16) Uint8_8 { return Uint8_8(b) }

// Bits returns the raw value of x.
func (x Uint8_8) Bits() uint16 { return uint16(x) }

func (x Uint8_8) add(y Uint8_8, p Policy) (Uint8_8, error) {
	s := uint32(x) + uint32(y)
	if s > math.MaxUint16 {
		return resolve[Uint8_8](p, "Uint8_8.Add", true)
	}
	return Uint8_8(s), nil
}

func (x Uint8_8) sub(y Uint8_8, p Policy) (Uint8_8, error) {
	if y > x {
		return resolve[Uint8_8](p, "Uint8_8.Sub", false)
	}
	return x - y, nil
}

func (x Uint8_8) mul(y Uint8_8, p Policy) (Uint8_8, error) {
	prod := uint32(x) * uint32(y)
	r := prod>>8 + (prod>>7)&1
	if r > math.MaxUint16 {
		return resolve[Uint8_8](p, "Uint8_8.Mul", true)
	}
	return Uint8_8(r), nil
}

func (x Uint8_8) quo(y Uint8_8, p Policy) (Uint8_8, error) {
	const op = "Uint8_8.Quo"
	if y == 0 {
		return 0, &Error{op, ErrDivideByZero}
	}
	q, ok := divq(uint32(x), uint32(y), 8, math.MaxUint16)
	if !ok {
		return resolve[Uint8_8](p, op, true)
	}
	return Uint8_8(q), nil
}

// Add returns the sum x+y, saturated to Uint8_8Max.
func (x Uint8_8) Add(y Uint8_8) Uint8_8 { return must(x.add(y, Saturate)) }

// Sub returns the difference x-y, or zero if y > x.
func (x Uint8_8) Sub(y Uint8_8) Uint8_8 { return must(x.sub(y, Saturate)) }

// Mul returns the product x*y rounded half up, saturated to Uint8_8Max.
func (x Uint8_8) Mul(y Uint8_8) Uint8_8 { return must(x.mul(y, Saturate)) }

// Quo returns the quotient x/y rounded to nearest, saturated to Uint8_8Max.
// Quo panics with an *Error wrapping ErrDivideByZero if y is zero.
func (x Uint8_8) Quo(y Uint8_8) Uint8_8 { return must(x.quo(y, Saturate)) }

// AddChecked is like Add but returns an error wrapping ErrOverflow instead
// of saturating.
func (x Uint8_8) AddChecked(y Uint8_8) (Uint8_8, error) { return x.add(y, Check) }

// SubChecked is like Sub but returns an error wrapping ErrOverflow if y > x.
func (x Uint8_8) SubChecked(y Uint8_8) (Uint8_8, error) { return x.sub(y, Check) }

// MulChecked is like Mul but returns an error wrapping ErrOverflow instead
// of saturating.
func (x Uint8_8) MulChecked(y Uint8_8) (Uint8_8, error) { return x.mul(y, Check) }

// QuoChecked is like Quo but returns an error instead of saturating or
// panicking.
func (x Uint8_8) QuoChecked(y Uint8_8) (Uint8_8, error) { return x.quo(y, Check) }

// Cmp compares x and y and returns -1, 0 or +1 if x is less than, equal to
// or greater than y.
func (x Uint8_8) Cmp(y Uint8_8) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// EqualWithin reports whether |x-y| <= delta.
func (x Uint8_8) EqualWithin(y, delta Uint8_8) bool {
	if x < y {
		x, y = y, x
	}
	return x-y <= delta
}

// Float64 returns the float64 value of x. The result is exact.
func (x Uint8_8) Float64() float64 { return float64(x) / (1 << 8) }

// Float32 returns the float32 value of x. The result is exact.
func (x Uint8_8) Float32() float32 { return float32(x) / (1 << 8) }

// Int returns the integer part of x.
func (x Uint8_8) Int() int { return int(x >> 8) }

// Floor is the same as Int.
func (x Uint8_8) Floor() int { return int(x >> 8) }

// Ceil returns the least integer value greater than or equal to x.
func (x Uint8_8) Ceil() int { return (int(x) + 1<<8 - 1) >> 8 }

// Round returns the nearest integer, rounding half up.
func (x Uint8_8) Round() int { return (int(x) + 1<<7) >> 8 }

// Sqrt returns the square root of x, rounded to nearest.
func (x Uint8_8) Sqrt() Uint8_8 { return Uint8_8(sqrtq(uint32(x), 16)) }

// Int16_16 returns x as an Int16_16. The conversion is exact.
func (x Uint8_8) Int16_16() Int16_16 { return Int16_16(int32(x) << 8) }

// Uint16_16 returns x as an Uint16_16. The conversion is exact.
func (x Uint8_8) Uint16_16() Uint16_16 { return Uint16_16(uint32(x) << 8) }
