// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"math"
	"sync"
	"testing"
)

func TestTrigIdentities(t *testing.T) {
	if got := Int16_16Zero.Sin(); got != 0 {
		t.Errorf("Sin(0) = %v", got)
	}
	if got := Int16_16Zero.Cos(); got != Int16_16One {
		t.Errorf("Cos(0) = %v", got)
	}
	if got := Int16_16PiOver2.Sin(); got != Int16_16One {
		t.Errorf("Sin(Pi/2) = %v", got)
	}
	if got := (-Int16_16PiOver2).Sin(); got != -Int16_16One {
		t.Errorf("Sin(-Pi/2) = %v", got)
	}
	if got := Int16_16Pi.Cos(); got != -Int16_16One {
		t.Errorf("Cos(Pi) = %v", got)
	}
	if got := Int16_16One.Atan(); got != Int16_16PiOver4 {
		t.Errorf("Atan(1) = %v", got)
	}
	if z, ok := Int16_16PiOver2.Tan(); ok {
		t.Errorf("Tan(Pi/2) = %v, expected no value", z)
	}
	if z, ok := Int16_16PiOver4.Tan(); !ok || !z.EqualWithin(Int16_16One, 8) {
		t.Errorf("Tan(Pi/4) = %v, %v", z, ok)
	}
	for _, x := range []Int16_16{Int16_16One + 1, -Int16_16One - 1, Int16_16Max, Int16_16Min} {
		if z, ok := x.Asin(); ok {
			t.Errorf("Asin(%v) = %v, expected no value", x, z)
		}
		if z, ok := x.Acos(); ok {
			t.Errorf("Acos(%v) = %v, expected no value", x, z)
		}
	}
	if z, _ := Int16_16One.Asin(); z != Int16_16PiOver2 {
		t.Errorf("Asin(1) = %v", z)
	}
	if z, _ := Int16_16One.Acos(); z != 0 {
		t.Errorf("Acos(1) = %v", z)
	}
	if z, _ := (-Int16_16One).Acos(); z != Int16_16Pi+1 {
		t.Errorf("Acos(-1) = %v", z)
	}
}

func TestAtan2Axes(t *testing.T) {
	for _, test := range []struct {
		y, x, want Int16_16
	}{
		{0, 0, 0},
		{0, Int16_16One, 0},
		{0, -Int16_16One, Int16_16Pi},
		{Int16_16One, 0, Int16_16PiOver2},
		{-Int16_16One, 0, -Int16_16PiOver2},
		{Int16_16One, -Int16_16One, Int16_16ThreePiOver4},
		{-Int16_16One, -Int16_16One, -Int16_16ThreePiOver4},
		{Int16_16Min, Int16_16Min, -Int16_16ThreePiOver4},
	} {
		if got := Atan2(test.y, test.x); got != test.want {
			t.Errorf("Atan2(%v, %v) = %v, expected %v", test.y, test.x, got, test.want)
		}
	}
}

func TestSin(t *testing.T) {
	for x := -Int16_16Pi; x <= Int16_16Pi; x += 13 {
		want := math.Round(math.Sin(x.Float64()) * (1 << 16))
		if got := float64(x.Sin()); math.Abs(got-want) > 40 {
			t.Fatalf("Sin(%v) = %v, expected %v", x, got/(1<<16), want/(1<<16))
		}
		want = math.Round(math.Cos(x.Float64()) * (1 << 16))
		if got := float64(x.Cos()); math.Abs(got-want) > 40 {
			t.Fatalf("Cos(%v) = %v, expected %v", x, got/(1<<16), want/(1<<16))
		}
	}
	for i := 0; i < 1e4; i++ {
		if z := Int16_16(rnd.Uint32()).Sin(); z > Int16_16One || z < -Int16_16One {
			t.Fatalf("Sin out of [-1, 1]: %v", z)
		}
	}
}

// TestTan checks Tan away from its poles, where the error of Sin and Cos
// is not amplified by more than 1/cos**2 <= 16.
func TestTan(t *testing.T) {
	for x := -Int16_16Pi; x <= Int16_16Pi; x += 97 {
		if math.Abs(math.Cos(x.Float64())) < 0.25 {
			continue
		}
		want := math.Tan(x.Float64())
		if got, ok := x.Tan(); !ok || math.Abs(got.Float64()-want) > 0.025 {
			t.Fatalf("Tan(%v) = %v, %v, expected %v", x, got, ok, want)
		}
	}
}

const atanTolerance = 0.011

func TestAtan2(t *testing.T) {
	for i := 0; i < 1e5; i++ {
		y := Int16_16(rnd.Uint32()) >> uint(rnd.Intn(32))
		x := Int16_16(rnd.Uint32()) >> uint(rnd.Intn(32))
		want := math.Atan2(y.Float64(), x.Float64())
		if got := Atan2(y, x).Float64(); math.Abs(got-want) > atanTolerance {
			t.Fatalf("Atan2(%v, %v) = %v, expected %v", y, x, got, want)
		}
	}
}

func TestAsin(t *testing.T) {
	for x := -Int16_16One; x <= Int16_16One; x += 7 {
		z, ok := x.Asin()
		if want := math.Asin(x.Float64()); !ok || math.Abs(z.Float64()-want) > atanTolerance {
			t.Fatalf("Asin(%v) = %v, %v, expected %v", x, z, ok, want)
		}
		z, ok = x.Acos()
		if want := math.Acos(x.Float64()); !ok || math.Abs(z.Float64()-want) > atanTolerance {
			t.Fatalf("Acos(%v) = %v, %v, expected %v", x, z, ok, want)
		}
	}
}

func TestExp(t *testing.T) {
	for _, test := range []struct {
		x, want Int16_16
	}{
		{0, Int16_16One},
		{Int16_16One, Int16_16E},
		{expMaxInt16_16 + 1, Int16_16Max},
		{Int16_16Max, Int16_16Max},
		{expMinInt16_16 - 1, 0},
		{Int16_16Min, 0},
		{-Int16_16One, 24109},
	} {
		if got := test.x.Exp(); got != test.want {
			t.Errorf("Exp(%v) = %v, expected %v", test.x, got, test.want)
		}
	}
	for x := expMinInt16_16; x <= expMaxInt16_16; x += 997 {
		if got, want := x.Exp(), FromFloat[Int16_16](math.Exp(x.Float64())); got != want {
			t.Fatalf("Exp(%v) = %v, expected %v", x, got, want)
		}
	}
	if got := expMaxInt16_16.Exp(); got < Int16_16Max-Int16_16One {
		t.Errorf("Exp(%v) = %v, expected ~32768", expMaxInt16_16, got)
	}

	if got := (expMaxUint16_16 + 1).Exp(); got != Uint16_16Max {
		t.Errorf("Uint16_16 Exp(%v) = %v", expMaxUint16_16+1, got)
	}
	if got := expMaxUint16_16.Exp(); got == Uint16_16Max || got < Uint16_16Max-Uint16_16One {
		t.Errorf("Uint16_16 Exp(%v) = %v", expMaxUint16_16, got)
	}
	if got := (2 * Uint16_16One).Exp(); got != FromFloat[Uint16_16](math.Exp(2)) {
		t.Errorf("Uint16_16 Exp(2) = %v", got)
	}
	if got := (expMaxUint8_8 + 1).Exp(); got != Uint8_8Max {
		t.Errorf("Uint8_8 Exp(%v) = %v", expMaxUint8_8+1, got)
	}
	if got := Uint8_8One.Exp(); got != Uint8_8E {
		t.Errorf("Uint8_8 Exp(1) = %v", got)
	}
	if got := (Uint8_8One / 2).Exp(); got != FromFloat[Uint8_8](math.Exp(0.5)) {
		t.Errorf("Uint8_8 Exp(0.5) = %v", got)
	}
}

func TestUnsignedTrig(t *testing.T) {
	if z, ok := Uint16_16PiOver2.Sin(); !ok || z != Uint16_16One {
		t.Errorf("Uint16_16 Sin(Pi/2) = %v, %v", z, ok)
	}
	if z, ok := (Uint16_16Pi + Uint16_16One/2).Sin(); ok {
		t.Errorf("Uint16_16 Sin(Pi+0.5) = %v, expected no value", z)
	}
	if z, ok := Uint16_16Zero.Cos(); !ok || z != Uint16_16One {
		t.Errorf("Uint16_16 Cos(0) = %v, %v", z, ok)
	}
	if z, ok := Uint16_16PiOver2.Tan(); ok {
		t.Errorf("Uint16_16 Tan(Pi/2) = %v, expected no value", z)
	}
	if z, ok := (Uint16_16One + 1).Asin(); ok {
		t.Errorf("Uint16_16 Asin(1+e) = %v, expected no value", z)
	}
	if z, ok := Uint16_16One.Acos(); !ok || z != 0 {
		t.Errorf("Uint16_16 Acos(1) = %v, %v", z, ok)
	}
	if z, ok := Uint16_16One.Atan(); !ok || z != Uint16_16PiOver4 {
		t.Errorf("Uint16_16 Atan(1) = %v, %v", z, ok)
	}
	if z, ok := Uint16_16Atan2(Uint16_16Max, Uint16_16Max); !ok || z != Uint16_16PiOver4 {
		t.Errorf("Uint16_16Atan2(Max, Max) = %v, %v", z, ok)
	}
	if z, ok := Uint16_16Max.Atan(); !ok || !z.EqualWithin(Uint16_16PiOver2, 721) {
		t.Errorf("Uint16_16 Atan(Max) = %v, %v", z, ok)
	}

	if z, ok := Uint8_8PiOver2.Sin(); !ok || !z.EqualWithin(Uint8_8One, 1) {
		t.Errorf("Uint8_8 Sin(Pi/2) = %v, %v", z, ok)
	}
	if z, ok := Uint8_8Pi.Cos(); ok {
		t.Errorf("Uint8_8 Cos(Pi) = %v, expected no value", z)
	}
	if z, ok := Uint8_8One.Atan(); !ok || z != Uint8_8PiOver4 {
		t.Errorf("Uint8_8 Atan(1) = %v, %v", z, ok)
	}
	if z, ok := Uint8_8Atan2(Uint8_8One, 0); !ok || z != Uint8_8PiOver2 {
		t.Errorf("Uint8_8Atan2(1, 0) = %v, %v", z, ok)
	}
	if z, ok := (Uint8_8One + 1).Asin(); ok {
		t.Errorf("Uint8_8 Asin(1+e) = %v, expected no value", z)
	}
}

func TestCacheTransparency(t *testing.T) {
	ResetCaches()
	for i := 0; i < 1e4; i++ {
		x := Int16_16(rnd.Uint32())
		// x and x+1<<16 share the same slot.
		y := x + 1<<16
		want, wantY := sin(x), sin(y)
		for j := 0; j < 2; j++ {
			if got := x.Sin(); got != want {
				t.Fatalf("Sin(%#x) = %#x, expected %#x", int32(x), int32(got), int32(want))
			}
			if got := y.Sin(); got != wantY {
				t.Fatalf("Sin(%#x) = %#x, expected %#x", int32(y), int32(got), int32(wantY))
			}
		}
		// (y, x) and (x, y) share the same slot.
		want, wantY = atan2(y, x), atan2(x, y)
		for j := 0; j < 2; j++ {
			if got := Atan2(y, x); got != want {
				t.Fatalf("Atan2(%#x, %#x) = %#x, expected %#x", int32(y), int32(x), int32(got), int32(want))
			}
			if got := Atan2(x, y); got != wantY {
				t.Fatalf("Atan2(%#x, %#x) = %#x, expected %#x", int32(x), int32(y), int32(got), int32(wantY))
			}
		}
		a := x % Int16_16One
		if got, _ := a.Asin(); got != asin(a) {
			t.Fatalf("Asin(%#x) = %#x, expected %#x", int32(a), int32(got), int32(asin(a)))
		}
		e := x >> 11
		if got, want := e.Exp(), e.Exp(); got != want {
			t.Fatalf("Exp(%#x) = %#x then %#x", int32(e), int32(got), int32(want))
		}
	}
}

func TestCacheConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	xs := make([]Int16_16, 1024)
	for i := range xs {
		// few distinct slots, many collisions
		xs[i] = Int16_16(rnd.Uint32()) &^ 0xfff0
	}
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1e4; i++ {
				x := xs[(i*7+g)%len(xs)]
				y := xs[(i*13+g)%len(xs)]
				if got := x.Sin(); got != sin(x) {
					t.Errorf("Sin(%#x) = %#x, expected %#x", int32(x), int32(got), int32(sin(x)))
					return
				}
				if got := Atan2(y, x); got != atan2(y, x) {
					t.Errorf("Atan2(%#x, %#x) = %#x", int32(y), int32(x), int32(got))
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func BenchmarkSin(b *testing.B) {
	x := Int16_16(rnd.Int31n(int32(Int16_16TwoPi)))
	var z Int16_16
	for i := 0; i < b.N; i++ {
		z = x.Sin()
	}
	_ = z
}

func BenchmarkSinUncached(b *testing.B) {
	x := Int16_16(rnd.Int31n(int32(Int16_16TwoPi)))
	var z Int16_16
	for i := 0; i < b.N; i++ {
		z = sin(x)
	}
	_ = z
}
