// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math_test

import (
	"errors"
	gomath "math"
	"math/rand"
	"testing"

	"github.com/db47h/fixed"
	"github.com/db47h/fixed/math"
)

var rnd = rand.New(rand.NewSource(0x5eed))

func i16(f float64) fixed.Int16_16 { return fixed.FromFloat[fixed.Int16_16](f) }

func TestPow(t *testing.T) {
	for _, test := range []struct {
		x    fixed.Int16_16
		n    int
		want fixed.Int16_16
	}{
		{i16(2), 10, i16(1024)},
		{i16(-2), 15, fixed.Int16_16Min},
		{i16(-3), 3, i16(-27)},
		{i16(1.5), 3, i16(3.375)},
		{i16(0.5), 16, fixed.Int16_16Epsilon},
		{i16(0.5), 17, fixed.Int16_16Epsilon}, // rounds half up
		{i16(2), -2, i16(0.25)},
		{i16(-2), -15, -2},
		{i16(10), -5, 0},
		{i16(7), 0, fixed.Int16_16One},
		{0, 0, fixed.Int16_16One},
		{0, 5, 0},
		{fixed.Int16_16One, gomath.MinInt, fixed.Int16_16One},
		{fixed.Int16_16One.Neg(), gomath.MaxInt, fixed.Int16_16One.Neg()},
	} {
		got, err := math.Pow(test.x, test.n)
		if err != nil || got != test.want {
			t.Errorf("Pow(%v, %d) = %v, %v, expected %v", test.x, test.n, got, err, test.want)
		}
	}
	for _, test := range []struct {
		x   fixed.Int16_16
		n   int
		err error
	}{
		{i16(2), 15, fixed.ErrOverflow},
		{i16(-182), 2, fixed.ErrOverflow},
		{0, -1, fixed.ErrDivideByZero},
		{i16(0.001), -10, fixed.ErrOverflow},
	} {
		if _, err := math.Pow(test.x, test.n); !errors.Is(err, test.err) {
			t.Errorf("Pow(%v, %d): got error %v, expected %v", test.x, test.n, err, test.err)
		}
	}
}

func TestLog2(t *testing.T) {
	for _, test := range []struct {
		x, want fixed.Int16_16
	}{
		{fixed.Int16_16One, 0},
		{i16(8), i16(3)},
		{i16(0.5), i16(-1)},
		{fixed.Int16_16Epsilon, i16(-16)},
	} {
		if got, ok := math.Log2(test.x); !ok || got != test.want {
			t.Errorf("Log2(%v) = %v, %v, expected %v", test.x, got, ok, test.want)
		}
	}
	for _, x := range []fixed.Int16_16{0, -1, fixed.Int16_16Min} {
		if _, ok := math.Log2(x); ok {
			t.Errorf("Log2(%v) has a value", x)
		}
		if _, ok := math.Ln(x); ok {
			t.Errorf("Ln(%v) has a value", x)
		}
	}
	for i := 0; i < 1e5; i++ {
		x := fixed.Int16_16(rnd.Int31n(gomath.MaxInt32) + 1)
		want := gomath.Log2(x.Float64()) * (1 << 16)
		if got, _ := math.Log2(x); gomath.Abs(float64(got)-want) > 1 {
			t.Fatalf("Log2(%v) = %v, expected %v", x, got, want/(1<<16))
		}
		want = gomath.Log(x.Float64()) * (1 << 16)
		if got, _ := math.Ln(x); gomath.Abs(float64(got)-want) > 1 {
			t.Fatalf("Ln(%v) = %v, expected %v", x, got, want/(1<<16))
		}
	}
}

func TestLn(t *testing.T) {
	if got, _ := math.Ln(fixed.Int16_16E); got != fixed.Int16_16One {
		t.Errorf("Ln(E) = %v", got)
	}
	if got, _ := math.Log10(i16(1000)); got != i16(3) {
		t.Errorf("Log10(1000) = %v", got)
	}
	for _, x := range []fixed.Int16_16{i16(0.01), i16(0.5), i16(42), fixed.Int16_16Max} {
		want := gomath.Log10(x.Float64()) * (1 << 16)
		if got, _ := math.Log10(x); gomath.Abs(float64(got)-want) > 1 {
			t.Errorf("Log10(%v) = %v, expected %v", x, got, want/(1<<16))
		}
	}
}

func BenchmarkLog2(b *testing.B) {
	x := fixed.Int16_16(rnd.Int31n(gomath.MaxInt32) + 1)
	for i := 0; i < b.N; i++ {
		math.Log2(x)
	}
}
