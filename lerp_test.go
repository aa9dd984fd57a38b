// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import "testing"

func TestLerp(t *testing.T) {
	zero, ten := FromInt[Int16_16](0), FromInt[Int16_16](10)
	for _, test := range []struct {
		got, want Int16_16
	}{
		{Lerp(zero, ten, uint8(128)), FromInt[Int16_16](5)},
		{Lerp(ten, zero, uint8(128)), FromInt[Int16_16](5)},
		{Lerp(zero, ten, uint16(0)), zero},
		{Lerp(ten, zero, uint32(0)), ten},
		{Lerp(zero, ten, uint16(1<<14)), FromFloat[Int16_16](2.5)},
		{Lerp(Int16_16Min, Int16_16Max, uint32(1<<31)), -1},
		{Lerp(Int16_16Max, Int16_16Min, uint32(0xffffffff)), Int16_16Min},
		{Lerp(Int16_16Min, Int16_16Max, uint32(0xffffffff)), Int16_16Max - 1},
		// rounds toward -Inf
		{Lerp(Int16_16(0), Int16_16(1), uint8(128)), 0},
		{Lerp(Int16_16(1), Int16_16(0), uint8(128)), 0},
		{Lerp(Int16_16(-3), Int16_16(0), uint8(128)), -2},
		{Lerp(Int16_16(0), Int16_16(-3), uint8(128)), -2},
		{Lerp(Int16_16(-3), Int16_16(0), uint16(0x5555)), -3},
	} {
		if test.got != test.want {
			t.Errorf("got %#x, expected %#x", int32(test.got), int32(test.want))
		}
	}
	// 65535 * 255/256 = 65279.004
	if got := Lerp(Uint8_8(0), Uint8_8Max, uint8(255)); got != 0xfeff {
		t.Errorf("Uint8_8 Lerp = %#x, expected 0xfeff", uint16(got))
	}
	if got := Lerp(Uint8_8(0), Uint8_8(3), uint8(128)); got != 1 {
		t.Errorf("Uint8_8 Lerp(0, 3, 1/2) = %#x, expected 1", uint16(got))
	}
	if got := Lerp(Uint16_16Max, 0, uint16(0x8000)); got != 0x7fffffff {
		t.Errorf("Uint16_16 Lerp = %#x, expected 0x7fffffff", uint32(got))
	}
}

func TestLerpBounds(t *testing.T) {
	for i := 0; i < 1e5; i++ {
		a, b := Int16_16(rnd.Uint32()), Int16_16(rnd.Uint32())
		z := Lerp(a, b, uint32(rnd.Uint32()))
		lo, hi := min(a, b), max(a, b)
		if z < lo || z > hi {
			t.Fatalf("Lerp(%#x, %#x) = %#x out of bounds", int32(a), int32(b), int32(z))
		}
		if z := Lerp(a, b, uint8(rnd.Uint32())); z < lo || z > hi {
			t.Fatalf("Lerp(%#x, %#x) = %#x out of bounds", int32(a), int32(b), int32(z))
		}
	}
}
