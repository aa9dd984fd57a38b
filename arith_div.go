// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

// divq returns round(rem * 2**frac / div) for the magnitudes rem and div
// (div != 0), rounding halves up. ok is false if the quotient exceeds limit.
//
// This is a restoring binary long division that only needs 32/32 bit
// divisions: the remainder is shifted left by as many bits as it has room
// for, one quotient "digit" is produced per step, and the quotient is
// computed with one extra bit that is used for rounding.
func divq(rem, div uint32, frac uint, limit uint64) (q uint64, ok bool) {
	bitPos := int(frac) + 1

	// if the divisor is divisible by 2**n, take advantage of it.
	for div&0xF == 0 && bitPos >= 4 {
		div >>= 4
		bitPos -= 4
	}

	max := limit<<1 | 1 // limit with the rounding bit
	carry := false      // bit 32 of the remainder
	for (rem != 0 || carry) && bitPos >= 0 {
		var d uint32
		if carry {
			// the 33 bits remainder is in [div, 2*div)
			d, rem = 1, rem-div
		} else {
			shift := clz32(rem)
			if shift > bitPos {
				shift = bitPos
			}
			rem <<= uint(shift)
			bitPos -= shift
			d, rem = rem/div, rem%div
		}
		q += uint64(d) << uint(bitPos)
		if q > max {
			return 0, false
		}
		carry = rem&(1<<31) != 0
		rem <<= 1
		bitPos--
	}

	q = (q + 1) >> 1
	if q > limit {
		return 0, false
	}
	return q, true
}
