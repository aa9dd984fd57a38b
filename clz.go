// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

// clz32Portable returns the number of leading zero bits in x, without relying
// on a count leading zeros instruction.
func clz32Portable(x uint32) int {
	if x == 0 {
		return 32
	}
	n := 0
	for x&0xF0000000 == 0 {
		x <<= 4
		n += 4
	}
	for x&0x80000000 == 0 {
		x <<= 1
		n++
	}
	return n
}
