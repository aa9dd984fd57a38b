// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides elementary functions for fixed-point numbers that are
// not part of the fixed package itself.
package math

import "github.com/db47h/fixed"

// Pow returns x**n. It returns an error wrapping fixed.ErrOverflow if the
// result is out of range, and fixed.ErrDivideByZero if x is 0 and n < 0.
// With a negative n, results smaller than 2 * fixed.Int16_16Epsilon may flush
// to zero.
func Pow(x fixed.Int16_16, n int) (fixed.Int16_16, error) {
	const op = "Pow"
	m := uint(n)
	if n < 0 {
		m = uint(-n)
	}
	z, ok := pow(x, m)
	if n >= 0 {
		if !ok {
			return 0, &fixed.Error{Op: op, Err: fixed.ErrOverflow}
		}
		return z, nil
	}
	if x == 0 {
		return 0, &fixed.Error{Op: op, Err: fixed.ErrDivideByZero}
	}
	if !ok {
		// |x**m| > Int16_16Max, so |1/x**m| < 2 * Epsilon
		return 0, nil
	}
	if z == 0 {
		// x**m underflowed.
		return 0, &fixed.Error{Op: op, Err: fixed.ErrOverflow}
	}
	return fixed.Int16_16One.QuoChecked(z)
}

// pow computes x**n by repeated squaring. It returns false if an
// intermediate result overflows.
func pow(x fixed.Int16_16, n uint) (fixed.Int16_16, bool) {
	if n == 0 {
		return fixed.Int16_16One, true
	}
	var err error
	z := x
	y := fixed.Int16_16One
	for n > 1 {
		if n%2 != 0 {
			if y, err = y.MulChecked(z); err != nil {
				return 0, false
			}
		}
		if z, err = z.MulChecked(z); err != nil {
			return 0, false
		}
		n /= 2
	}
	if y == fixed.Int16_16One {
		return z, true
	}
	z, err = z.MulChecked(y)
	return z, err == nil
}
