// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import "github.com/db47h/fixed"

// ops holds the functions of a format that are not covered by
// fixed.Arith. Functions without a result for their argument return false.
type ops[T any] struct {
	unary  map[string]func(T) (T, bool)
	binary map[string]func(T, T) (T, bool)
}

func always[T any](f func(T) T) func(T) (T, bool) {
	return func(x T) (T, bool) { return f(x), true }
}

func identity[T any](x T) (T, bool) { return x, true }

var int16Ops = &ops[fixed.Int16_16]{
	unary: map[string]func(fixed.Int16_16) (fixed.Int16_16, bool){
		"abs":   always(fixed.Int16_16.Abs),
		"sqrt":  fixed.Int16_16.Sqrt,
		"ssqrt": always(fixed.Int16_16.SignedSqrt),
		"exp":   always(fixed.Int16_16.Exp),
		"sin":   always(fixed.Int16_16.Sin),
		"cos":   always(fixed.Int16_16.Cos),
		"tan":   fixed.Int16_16.Tan,
		"asin":  fixed.Int16_16.Asin,
		"acos":  fixed.Int16_16.Acos,
		"atan":  always(fixed.Int16_16.Atan),
	},
	binary: map[string]func(fixed.Int16_16, fixed.Int16_16) (fixed.Int16_16, bool){
		"atan2": func(y, x fixed.Int16_16) (fixed.Int16_16, bool) { return fixed.Atan2(y, x), true },
	},
}

var uint16Ops = &ops[fixed.Uint16_16]{
	unary: map[string]func(fixed.Uint16_16) (fixed.Uint16_16, bool){
		"abs":  identity[fixed.Uint16_16],
		"sqrt": always(fixed.Uint16_16.Sqrt),
		"exp":  always(fixed.Uint16_16.Exp),
		"sin":  fixed.Uint16_16.Sin,
		"cos":  fixed.Uint16_16.Cos,
		"tan":  fixed.Uint16_16.Tan,
		"asin": fixed.Uint16_16.Asin,
		"acos": fixed.Uint16_16.Acos,
		"atan": fixed.Uint16_16.Atan,
	},
	binary: map[string]func(fixed.Uint16_16, fixed.Uint16_16) (fixed.Uint16_16, bool){
		"atan2": fixed.Uint16_16Atan2,
	},
}

var uint8Ops = &ops[fixed.Uint8_8]{
	unary: map[string]func(fixed.Uint8_8) (fixed.Uint8_8, bool){
		"abs":  identity[fixed.Uint8_8],
		"sqrt": always(fixed.Uint8_8.Sqrt),
		"exp":  always(fixed.Uint8_8.Exp),
		"sin":  fixed.Uint8_8.Sin,
		"cos":  fixed.Uint8_8.Cos,
		"tan":  fixed.Uint8_8.Tan,
		"asin": fixed.Uint8_8.Asin,
		"acos": fixed.Uint8_8.Acos,
		"atan": fixed.Uint8_8.Atan,
	},
	binary: map[string]func(fixed.Uint8_8, fixed.Uint8_8) (fixed.Uint8_8, bool){
		"atan2": fixed.Uint8_8Atan2,
	},
}
