// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import "math"

// An Uint16_16 is an unsigned Q16.16 fixed-point number: its uint32 value is
// the number scaled by 2**16.
type Uint16_16 uint32

// Uint16_16 constants.
const (
	Uint16_16Zero    Uint16_16 = 0
	Uint16_16One     Uint16_16 = 1 << 16
	Uint16_16Epsilon Uint16_16 = 1
	Uint16_16Max     Uint16_16 = math.MaxUint32
	Uint16_16Min     Uint16_16 = 0
	Uint16_16Pi      Uint16_16 = 205887
	Uint16_16E       Uint16_16 = 178145
	Uint16_16PiOver2 Uint16_16 = 102944
	Uint16_16PiOver4 Uint16_16 = 51472
	Uint16_16TwoPi   Uint16_16 = 411775
)

// Uint16_16FromBits returns the Uint16_16 whose raw value is b.
func Uint16_16FromBits(b uint32) Uint16_16 { return Uint16_16(b) }

// Bits returns the raw value of x.
func (x Uint16_16) Bits() uint32 { return uint32(x) }

func (x Uint16_16) add(y Uint16_16, p Policy) (Uint16_16, error) {
	s := x + y
	if s < x {
		return resolve[Uint16_16](p, "Uint16_16.Add", true)
	}
	return s, nil
}

func (x Uint16_16) sub(y Uint16_16, p Policy) (Uint16_16, error) {
	if y > x {
		return resolve[Uint16_16](p, "Uint16_16.Sub", false)
	}
	return x - y, nil
}

func (x Uint16_16) mul(y Uint16_16, p Policy) (Uint16_16, error) {
	prod := uint64(x) * uint64(y)
	r := prod>>16 + (prod>>15)&1
	if r > math.MaxUint32 {
		return resolve[Uint16_16](p, "Uint16_16.Mul", true)
	}
	return Uint16_16(r), nil
}

func (x Uint16_16) quo(y Uint16_16, p Policy) (Uint16_16, error) {
	const op = "Uint16_16.Quo"
	if y == 0 {
		return 0, &Error{op, ErrDivideByZero}
	}
	q, ok := divq(uint32(x), uint32(y), 16, math.MaxUint32)
	if !ok {
		return resolve[Uint16_16](p, op, true)
	}
	return Uint16_16(q), nil
}

// Add returns the sum x+y, saturated to Uint16_16Max.
func (x Uint16_16) Add(y Uint16_16) Uint16_16 { return must(x.add(y, Saturate)) }

// Sub returns the difference x-y, or zero if y > x.
func (x Uint16_16) Sub(y Uint16_16) Uint16_16 { return must(x.sub(y, Saturate)) }

// Mul returns the product x*y rounded half up, saturated to Uint16_16Max.
func (x Uint16_16) Mul(y Uint16_16) Uint16_16 { return must(x.mul(y, Saturate)) }

// Quo returns the quotient x/y rounded to nearest, saturated to
// Uint16_16Max. Quo panics with an *Error wrapping ErrDivideByZero if y is
// zero.
func (x Uint16_16) Quo(y Uint16_16) Uint16_16 { return must(x.quo(y, Saturate)) }

// AddChecked is like Add but returns an error wrapping ErrOverflow instead
// of saturating.
func (x Uint16_16) AddChecked(y Uint16_16) (Uint16_16, error) { return x.add(y, Check) }

// SubChecked is like Sub but returns an error wrapping ErrOverflow if y > x.
func (x Uint16_16) SubChecked(y Uint16_16) (Uint16_16, error) { return x.sub(y, Check) }

// MulChecked is like Mul but returns an error wrapping ErrOverflow instead
// of saturating.
func (x Uint16_16) MulChecked(y Uint16_16) (Uint16_16, error) { return x.mul(y, Check) }

// QuoChecked is like Quo but returns an error instead of saturating or
// panicking.
func (x Uint16_16) QuoChecked(y Uint16_16) (Uint16_16, error) { return x.quo(y, Check) }

// Cmp compares x and y and returns -1, 0 or +1 if x is less than, equal to
// or greater than y.
func (x Uint16_16) Cmp(y Uint16_16) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// EqualWithin reports whether |x-y| <= delta.
func (x Uint16_16) EqualWithin(y, delta Uint16_16) bool {
	if x < y {
		x, y = y, x
	}
	return x-y <= delta
}

// Float64 returns the float64 value of x. The result is exact.
func (x Uint16_16) Float64() float64 { return float64(x) / (1 << 16) }

// Float32 returns the float32 value nearest to x.
func (x Uint16_16) Float32() float32 { return float32(x.Float64()) }

// Int returns the integer part of x.
func (x Uint16_16) Int() int { return int(x >> 16) }

// Floor is the same as Int.
func (x Uint16_16) Floor() int { return int(x >> 16) }

// Ceil returns the least integer value greater than or equal to x.
func (x Uint16_16) Ceil() int { return int((uint64(x) + 1<<16 - 1) >> 16) }

// Round returns the nearest integer, rounding half up.
func (x Uint16_16) Round() int { return int((uint64(x) + 1<<15) >> 16) }

// Sqrt returns the square root of x, rounded to nearest.
func (x Uint16_16) Sqrt() Uint16_16 { return Uint16_16(sqrtq(uint32(x), 32)) }

// Int16_16 converts x to an Int16_16, saturating to Int16_16Max.
func (x Uint16_16) Int16_16() (Int16_16, Accuracy) { return convert[Int16_16](x) }

// Uint8_8 converts x to an Uint8_8. The fraction is truncated and the result
// saturates to Uint8_8Max.
func (x Uint16_16) Uint8_8() (Uint8_8, Accuracy) { return convert[Uint8_8](x) }
