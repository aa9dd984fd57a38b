// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/bits"

	"github.com/db47h/fixed"
)

// Q0.32 constants
const (
	ln2    = 2977044472 // ln(2)
	log102 = 1292913986 // log10(2)
)

// Log2 returns the binary logarithm of x. There is no result for x <= 0.
// The error is within one Epsilon.
func Log2(x fixed.Int16_16) (fixed.Int16_16, bool) {
	if x <= 0 {
		return 0, false
	}
	// Binary digit-by-digit logarithm: with x = 2**k * m and 1 <= m < 2,
	// each squaring of m yields the next bit of log2(m).
	r := uint32(x)
	k := bits.Len32(r) - 1
	m := uint64(r) << (31 - k) // Q1.31
	var f uint32
	for i := 0; i < 17; i++ {
		m = m * m >> 31
		f <<= 1
		if m >= 1<<32 {
			m >>= 1
			f |= 1
		}
	}
	// round the 17 bits fraction to 16
	f = (f + 1) >> 1
	return fixed.Int16_16(int32(k-16)<<16 + int32(f)), true
}

// Ln returns the natural logarithm of x. There is no result for x <= 0.
// The error is within one Epsilon.
func Ln(x fixed.Int16_16) (fixed.Int16_16, bool) {
	z, ok := Log2(x)
	return scale(z, ln2), ok
}

// Log10 returns the decimal logarithm of x. There is no result for x <= 0.
func Log10(x fixed.Int16_16) (fixed.Int16_16, bool) {
	z, ok := Log2(x)
	return scale(z, log102), ok
}

// scale returns x*c/2**32 rounded half up. |x| < 2**21 so the product fits
// in an int64.
func scale(x fixed.Int16_16, c int64) fixed.Int16_16 {
	return fixed.Int16_16((int64(x)*c + 1<<31) >> 32)
}
