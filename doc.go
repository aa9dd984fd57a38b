// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fixed implements deterministic binary fixed-point arithmetic.

Three formats are provided. Each one is a named integer type whose value is
the raw, scaled representation of the number:

	Int16_16   signed Q16.16,   raw int32,  value = raw / 65536
	Uint16_16  unsigned Q16.16, raw uint32, value = raw / 65536
	Uint8_8    unsigned Q8.8,   raw uint16, value = raw / 256

All operations are computed with integer instructions only (with the
exception of Exp, see below) and produce the same bits on every platform.
Values are immutable: every operation returns a new value.

The zero value of each type is 0. Values are created with the generic
constructors, or directly from their raw bits:

	x := fixed.FromInt[fixed.Int16_16](5)        // 5.0
	y := fixed.FromFloat[fixed.Int16_16](2.5)    // 2.5
	z := fixed.Int16_16FromBits(0x8000)          // 0.5

Since the types are integers, the Go comparison operators implement the
natural total order and bit-exact equality:

	fixed.FromInt[fixed.Int16_16](-1) < fixed.Int16_16One // true

# Overflow

Add, Sub, Mul and Quo saturate: a result that does not fit is clamped to
the type's Max or Min. The Checked variants (AddChecked, SubChecked, ...)
return an error wrapping ErrOverflow instead. Both variants share the same
algorithm and only differ in the Policy used to resolve the overflow.

Division by zero is a programmer error: Quo panics with an *Error wrapping
ErrDivideByZero, and QuoChecked returns that error.

# Transcendental functions

Exp, Sin, Cos, Tan, Asin, Acos, Atan and Atan2 are approximations trading
accuracy for speed. Functions whose result is undefined for some inputs
(Tan at odd multiples of π/2, Asin and Acos outside [-1, 1]) return a
second boolean result instead of an error.

Results of Exp, Sin, Asin and Atan2 are memoized in process-wide
direct-mapped tables of 4096 slots keyed on the raw input bits. A cache hit
always yields the same bits as a recomputation. Each slot is published
atomically, so the tables are safe for concurrent use without locking;
concurrent callers may evict each other's entries, which only costs a
recomputation.

Package github.com/db47h/fixed/math provides Pow and logarithms for
Int16_16, and package github.com/db47h/fixed/context chains operations
under a given Policy with a sticky error.
*/
package fixed
