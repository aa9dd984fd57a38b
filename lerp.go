// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import "math/bits"

// Fraction is the set of unsigned types used as interpolation factors. A
// value t of a type with n bits stands for t / 2**n.
type Fraction interface {
	~uint8 | ~uint16 | ~uint32
}

// Lerp returns a + (b-a)*t, rounded toward negative infinity. The result is
// between a and b for any t.
func Lerp[T Fixed, F Fraction](a, b T, t F) T {
	n := uint(bits.Len64(uint64(^F(0))))
	d := int64(b) - int64(a)
	m := uint64(d)
	if d < 0 {
		m = uint64(-d)
	}
	hi, lo := bits.Mul64(m, uint64(t))
	q := lo>>n | hi<<(64-n)
	if d < 0 {
		if lo&(1<<n-1) != 0 {
			q++
		}
		return T(int64(a) - int64(q))
	}
	return T(int64(a) + int64(q))
}
