// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

// Coefficients of the atan approximation
//
//	atan(r) = c1*r**3 - c2*r + pi/4
//
// with c1 = 0.1963 and c2 = 0.9817.
const (
	atanC1 Int16_16 = 12865
	atanC2 Int16_16 = 64337
)

var (
	sinCache   = newCache1(func(k uint32) uint32 { return uint32(sin(Int16_16(k))) })
	asinCache  = newCache1(func(k uint32) uint32 { return uint32(asin(Int16_16(k))) })
	atan2Cache = newCache2(func(y, x int32) int32 { return int32(atan2(Int16_16(y), Int16_16(x))) })
)

// sin evaluates the Maclaurin series of sin(x) up to x**11, after reducing x
// to [-Pi, Pi].
func sin(x Int16_16) Int16_16 {
	a := x % Int16_16TwoPi
	if a > Int16_16Pi {
		a -= Int16_16TwoPi
	} else if a < -Int16_16Pi {
		a += Int16_16TwoPi
	}

	a2 := a.Mul(a)
	term, sum := a, a
	// term(n) = term(n-2) * x**2 / (n*(n-1))
	for n := Int16_16(3); n <= 11; n += 2 {
		term = term.Mul(a2) / (n * (n - 1))
		if n&2 != 0 {
			sum -= term
		} else {
			sum += term
		}
	}

	switch {
	case sum > Int16_16One:
		return Int16_16One
	case sum < -Int16_16One:
		return -Int16_16One
	}
	return sum
}

// Sin returns the sine of the radian argument x.
func (x Int16_16) Sin() Int16_16 { return Int16_16(sinCache.do(uint32(x))) }

// Cos returns the cosine of the radian argument x.
func (x Int16_16) Cos() Int16_16 {
	return (x%Int16_16TwoPi + Int16_16PiOver2).Sin()
}

// Tan returns the tangent of the radian argument x. ok is false if x is
// PiOver2 or if its cosine rounds to zero.
//
// Near odd multiples of π/2 the cosine is off by up to a few dozen
// Epsilons, so results there may be far off or have the wrong sign even
// when ok is true.
func (x Int16_16) Tan() (z Int16_16, ok bool) {
	c := x.Cos()
	if c == 0 || x == Int16_16PiOver2 {
		return 0, false
	}
	return x.Sin().Quo(c), true
}

// atan2 computes atan(y/x) with a rational approximation whose error does
// not exceed 0.011 radians.
func atan2(y, x Int16_16) Int16_16 {
	switch {
	case y == 0:
		if x < 0 {
			return Int16_16Pi
		}
		return 0
	case x == 0:
		if y < 0 {
			return -Int16_16PiOver2
		}
		return Int16_16PiOver2
	}

	ay := int64(y.mag())
	var n, d int64
	var angle Int16_16
	if x > 0 {
		// r = (x - |y|) / (x + |y|)
		n, d, angle = int64(x)-ay, int64(x)+ay, Int16_16PiOver4
	} else {
		// r = (x + |y|) / (|y| - x)
		n, d, angle = int64(x)+ay, ay-int64(x), Int16_16ThreePiOver4
	}
	// |n| <= d, and d must fit in 32 bits.
	for d > 1<<32-1 {
		n >>= 1
		d >>= 1
	}
	m := n
	if m < 0 {
		m = -m
	}
	q, _ := divq(uint32(m), uint32(d), 16, 1<<16)
	r := Int16_16(q)
	if n < 0 {
		r = -r
	}

	angle += atanC1.Mul(r.Mul(r).Mul(r)) - atanC2.Mul(r)
	if y < 0 {
		return -angle
	}
	return angle
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value. The result is within 0.011
// radians of the exact value. Atan2 is exact along the axes:
//
//	Atan2(0, x >= 0) = 0
//	Atan2(0, x < 0) = Pi
//	Atan2(y > 0, 0) = PiOver2
//	Atan2(y < 0, 0) = -PiOver2
func Atan2(y, x Int16_16) Int16_16 { return Int16_16(atan2Cache.do(int32(y), int32(x))) }

// Atan returns the arc tangent of x, in radians.
func (x Int16_16) Atan() Int16_16 { return Atan2(x, Int16_16One) }

// asin computes asin(x) = atan(x / sqrt(1 - x**2)) for x in [-1, 1].
func asin(x Int16_16) Int16_16 {
	switch x {
	case Int16_16One:
		return Int16_16PiOver2
	case -Int16_16One:
		return -Int16_16PiOver2
	}
	// 1 - x**2 >= 2 * Int16_16Epsilon for |x| < 1
	s, _ := Int16_16One.Sub(x.Mul(x)).Sqrt()
	return x.Quo(s).Atan()
}

// Asin returns the arc sine of x, in radians. ok is false if x is not in
// [-1, 1].
func (x Int16_16) Asin() (z Int16_16, ok bool) {
	if x > Int16_16One || x < -Int16_16One {
		return 0, false
	}
	return Int16_16(asinCache.do(uint32(x))), true
}

// Acos returns the arc cosine of x, in radians. ok is false if x is not in
// [-1, 1].
func (x Int16_16) Acos() (z Int16_16, ok bool) {
	a, ok := x.Asin()
	if !ok {
		return 0, false
	}
	return Int16_16PiOver2 - a, true
}

// The unsigned types compute trigonometric functions through Int16_16. Each
// function returns ok == false if the result is negative, or undefined.

// toSigned returns x as an Int16_16 angle, reduced modulo 2*Pi.
func (x Uint16_16) toSigned() Int16_16 { return Int16_16(x % Uint16_16TwoPi) }

func toUint16_16(z Int16_16, ok bool) (Uint16_16, bool) {
	if !ok || z < 0 {
		return 0, false
	}
	return Uint16_16(z), true
}

// Sin returns the sine of the radian argument x.
func (x Uint16_16) Sin() (Uint16_16, bool) { return toUint16_16(x.toSigned().Sin(), true) }

// Cos returns the cosine of the radian argument x.
func (x Uint16_16) Cos() (Uint16_16, bool) { return toUint16_16(x.toSigned().Cos(), true) }

// Tan returns the tangent of the radian argument x.
func (x Uint16_16) Tan() (Uint16_16, bool) { return toUint16_16(x.toSigned().Tan()) }

// Asin returns the arc sine of x, in radians.
func (x Uint16_16) Asin() (Uint16_16, bool) {
	if x > Uint16_16One {
		return 0, false
	}
	return toUint16_16(Int16_16(x).Asin())
}

// Acos returns the arc cosine of x, in radians.
func (x Uint16_16) Acos() (Uint16_16, bool) {
	if x > Uint16_16One {
		return 0, false
	}
	return toUint16_16(Int16_16(x).Acos())
}

// Atan returns the arc tangent of x, in radians.
func (x Uint16_16) Atan() (Uint16_16, bool) {
	return Uint16_16Atan2(x, Uint16_16One)
}

// Uint16_16Atan2 returns the arc tangent of y/x, in radians.
func Uint16_16Atan2(y, x Uint16_16) (Uint16_16, bool) {
	for y > Uint16_16(Int16_16Max) || x > Uint16_16(Int16_16Max) {
		y >>= 1
		x >>= 1
	}
	return toUint16_16(Atan2(Int16_16(y), Int16_16(x)), true)
}

// Uint8_8 trigonometric functions compute in Uint16_16 and round the result
// to nearest.

func toUint8_8(z Uint16_16, ok bool) (Uint8_8, bool) {
	if !ok {
		return 0, false
	}
	r := (uint64(z) + 1<<7) >> 8
	if r > uint64(Uint8_8Max) {
		return Uint8_8Max, true
	}
	return Uint8_8(r), true
}

func (x Uint8_8) Sin() (Uint8_8, bool)  { return toUint8_8(x.Uint16_16().Sin()) }
func (x Uint8_8) Cos() (Uint8_8, bool)  { return toUint8_8(x.Uint16_16().Cos()) }
func (x Uint8_8) Tan() (Uint8_8, bool)  { return toUint8_8(x.Uint16_16().Tan()) }
func (x Uint8_8) Asin() (Uint8_8, bool) { return toUint8_8(x.Uint16_16().Asin()) }
func (x Uint8_8) Acos() (Uint8_8, bool) { return toUint8_8(x.Uint16_16().Acos()) }
func (x Uint8_8) Atan() (Uint8_8, bool) { return toUint8_8(x.Uint16_16().Atan()) }

// Uint8_8Atan2 returns the arc tangent of y/x, in radians.
func Uint8_8Atan2(y, x Uint8_8) (Uint8_8, bool) {
	return toUint8_8(Uint16_16Atan2(y.Uint16_16(), x.Uint16_16()))
}
