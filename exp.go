// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import "math"

// Exp arguments above which the result saturates, or below which it is
// rounded to zero.
const (
	expMaxInt16_16  Int16_16  = 681391  // ~10.3972
	expMinInt16_16  Int16_16  = -772243 // ~-11.7835
	expMaxUint16_16 Uint16_16 = 726817  // ~11.0903
	expMaxUint8_8   Uint8_8   = 1419    // ~5.5430
)

var (
	expInt16_16Cache = newCache1(func(k uint32) uint32 {
		return uint32(FromFloat[Int16_16](math.Exp(Int16_16(k).Float64())))
	})
	expUint16_16Cache = newCache1(func(k uint32) uint32 {
		return uint32(FromFloat[Uint16_16](math.Exp(Uint16_16(k).Float64())))
	})
	expUint8_8Cache = newCache1(func(k uint32) uint32 {
		return uint32(FromFloat[Uint8_8](math.Exp(Uint8_8(k).Float64())))
	})
)

// Exp returns e**x, saturated to Int16_16Max. Results below Int16_16Epsilon/2
// are zero.
func (x Int16_16) Exp() Int16_16 {
	switch {
	case x == 0:
		return Int16_16One
	case x == Int16_16One:
		return Int16_16E
	case x > expMaxInt16_16:
		return Int16_16Max
	case x < expMinInt16_16:
		return 0
	}
	return Int16_16(expInt16_16Cache.do(uint32(x)))
}

// Exp returns e**x, saturated to Uint16_16Max.
func (x Uint16_16) Exp() Uint16_16 {
	switch {
	case x == 0:
		return Uint16_16One
	case x == Uint16_16One:
		return Uint16_16E
	case x > expMaxUint16_16:
		return Uint16_16Max
	}
	return Uint16_16(expUint16_16Cache.do(uint32(x)))
}

// Exp returns e**x, saturated to Uint8_8Max.
func (x Uint8_8) Exp() Uint8_8 {
	switch {
	case x == 0:
		return Uint8_8One
	case x == Uint8_8One:
		return Uint8_8E
	case x > expMaxUint8_8:
		return Uint8_8Max
	}
	return Uint8_8(expUint8_8Cache.do(uint32(x)))
}
