// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

// sqrtq returns the square root of the fixed-point magnitude num with
// width/2 fractional bits, that is round(sqrt(num * 2**(width/2))), where
// width is 32 or 16.
//
// The digit-by-digit extraction runs twice so that no intermediate value
// needs more than width bits: the first pass yields the integer square root
// of num, the second one the remaining width/4 bits.
func sqrtq(num uint32, width uint) uint32 {
	half := width / 2
	var result uint32

	// second-to-top bit
	bit := uint32(1) << (width - 2)
	for bit > num {
		bit >>= 2
	}

	for n := 0; n < 2; n++ {
		for bit != 0 {
			if num >= result+bit {
				num -= result + bit
				result = result>>1 + bit
			} else {
				result >>= 1
			}
			bit >>= 2
		}

		if n == 0 {
			if num > 1<<half-1 {
				// num is too large to be shifted left by half bits: set the
				// next result bit (one half) manually:
				//  num = a - (result + 0.5)**2
				//      = num - result - 0.25
				num -= result
				num = num<<half - 1<<(half-2)
				result = result<<half + 1<<(half-1)
			} else {
				num <<= half
				result <<= half
			}
			bit = 1 << (half - 2)
		}
	}

	// round up if the next bit would have been 1
	if num > result {
		result++
	}
	return result
}
