// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"math"
	"reflect"
	"unsafe"

	"github.com/govalues/decimal"
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
	ifixed "golang.org/x/image/math/fixed"
)

// FromInt returns i as a T. The result is unspecified if i is out of the
// range of T.
func FromInt[T Fixed, I constraints.Integer](i I) T {
	return T(int64(i) << formatOf[T]().frac)
}

// FromFloat returns the T nearest to f, rounding halves away from zero. The
// result is unspecified if f is out of the range of T or NaN.
func FromFloat[T Fixed, F constraints.Float](f F) T {
	return T(int64(math.Round(float64(f) * float64(formatOf[T]().one()))))
}

// ToFixed returns the T nearest to v, rounding halves away from zero. It
// returns an error wrapping ErrOverflow if v is NaN or out of the range of
// T.
func ToFixed[T Fixed, N Number](v N) (T, error) {
	f := formatOf[T]()
	// exact for any v whose scaled value is within the range of T.
	r := math.Round(float64(v) * float64(f.one()))
	if math.IsNaN(r) || r < float64(f.min) || r > float64(f.max) {
		return 0, &Error{"ToFixed", ErrOverflow}
	}
	return T(int64(r)), nil
}

// ToInteger returns the integer part of x, truncated toward zero and
// saturated to the range of I. The accuracy is relative to x.
func ToInteger[I constraints.Integer, T Fixed](x T) (I, Accuracy) {
	var z I
	lo, hi := intRange(^z < 0, unsafe.Sizeof(z)*8)
	i, acc := trunc(x)
	switch {
	case i < lo:
		return I(lo), Above
	case i > hi:
		return I(hi), Below
	}
	return I(i), acc
}

// trunc returns the integer part of x truncated toward zero.
func trunc[T Fixed](x T) (int64, Accuracy) {
	one := formatOf[T]().one()
	r := int64(x)
	i := r / one
	if i*one != r {
		return i, makeAcc(r < 0)
	}
	return i, Exact
}

func intRange(signed bool, bits uintptr) (lo, hi int64) {
	switch {
	case signed:
		return -1 << (bits - 1), 1<<(bits-1) - 1
	case bits >= 64:
		return 0, math.MaxInt64
	}
	return 0, 1<<bits - 1
}

// convert converts between fixed-point formats: the fraction is truncated
// toward zero and the result saturates to the range of D.
func convert[D, S Fixed](x S) (D, Accuracy) {
	sf, df := formatOf[S](), formatOf[D]()
	r := int64(x)
	acc := Exact
	if df.frac >= sf.frac {
		r <<= df.frac - sf.frac
	} else {
		sh := sf.frac - df.frac
		q := r / (1 << sh)
		if q<<sh != r {
			acc = makeAcc(r < 0)
		}
		r = q
	}
	r, cacc := df.clamp(r)
	if cacc != Exact {
		acc = cacc
	}
	return D(r), acc
}

// float64Of returns the exact float64 value of x.
func float64Of[T Fixed](x T) float64 {
	return float64(x) / float64(formatOf[T]().one())
}

// FromFloat16 returns the T nearest to h. The result is unspecified if h is
// out of the range of T, infinite or NaN.
func FromFloat16[T Fixed](h float16.Float16) T {
	return FromFloat[T](h.Float32())
}

func toFloat16[T Fixed](x T) float16.Float16 {
	return float16.Fromfloat32(float32(float64Of(x)))
}

// Float16 returns the half precision float nearest to x. Values above 65504
// become +Inf.
func (x Int16_16) Float16() float16.Float16  { return toFloat16(x) }
func (x Uint16_16) Float16() float16.Float16 { return toFloat16(x) }
func (x Uint8_8) Float16() float16.Float16   { return toFloat16(x) }

var decHalf = decimal.MustNew(5, 1)

// FromDecimal returns the T nearest to d, rounding halves away from zero. It
// returns an error wrapping ErrOverflow if d is out of the range of T.
func FromDecimal[T Fixed](d decimal.Decimal) (T, error) {
	const op = "FromDecimal"
	f := formatOf[T]()
	m, err := d.Mul(decimal.MustNew(f.one(), 0))
	if err != nil {
		return 0, &Error{op, ErrOverflow}
	}
	w := m.Trunc(0)
	frac, err := m.Sub(w)
	if err != nil {
		return 0, &Error{op, ErrOverflow}
	}
	if frac.CmpAbs(decHalf) >= 0 {
		w, err = w.Add(decimal.MustNew(int64(m.Sign()), 0))
		if err != nil {
			return 0, &Error{op, ErrOverflow}
		}
	}
	r, _, ok := w.Int64(0)
	if !ok || r < f.min || r > f.max {
		return 0, &Error{op, ErrOverflow}
	}
	return T(r), nil
}

func toDecimal[T Fixed](x T) decimal.Decimal {
	d, err := decimal.MustNew(int64(x), 0).Quo(decimal.MustNew(formatOf[T]().one(), 0))
	if err != nil {
		panic(err)
	}
	return d
}

// Decimal returns the value of x as a decimal. The result is exact unless it
// needs more than 19 significant digits.
func (x Int16_16) Decimal() decimal.Decimal  { return toDecimal(x) }
func (x Uint16_16) Decimal() decimal.Decimal { return toDecimal(x) }
func (x Uint8_8) Decimal() decimal.Decimal   { return toDecimal(x) }

// Int26_6 returns x rounded half up to a 26.6 fixed-point number.
func (x Int16_16) Int26_6() ifixed.Int26_6 {
	return ifixed.Int26_6((int64(x) + 1<<9) >> 10)
}

// Int16_16FromInt26_6 returns v as an Int16_16, saturated to
// [Int16_16Min, Int16_16Max].
func Int16_16FromInt26_6(v ifixed.Int26_6) (Int16_16, Accuracy) {
	r, acc := fmtInt16_16.clamp(int64(v) << 10)
	return Int16_16(r), acc
}

var (
	typeFloat16   = reflect.TypeOf(float16.Float16(0))
	typeDecimal   = reflect.TypeOf(decimal.Decimal{})
	typeInt26_6   = reflect.TypeOf(ifixed.Int26_6(0))
	typeInt16_16  = reflect.TypeOf(Int16_16(0))
	typeUint16_16 = reflect.TypeOf(Uint16_16(0))
	typeUint8_8   = reflect.TypeOf(Uint8_8(0))
)

// Convert returns x converted to a value of type t. Integers are truncated
// toward zero and saturated, other fixed-point types follow the rules of
// the conversion methods and strings hold the shortest decimal
// representation of x.
//
// Convert returns an error wrapping ErrInvalidArgument if t is nil and
// ErrUnsupportedConversion if x cannot be converted to t.
func Convert[T Fixed](x T, t reflect.Type) (any, error) {
	const op = "Convert"
	if t == nil {
		return nil, &Error{op, ErrInvalidArgument}
	}
	if t.PkgPath() == "time" {
		return nil, &Error{op, ErrUnsupportedConversion}
	}
	switch t {
	case typeFloat16:
		return toFloat16(x), nil
	case typeDecimal:
		return toDecimal(x), nil
	case typeInt26_6:
		z, _ := convert[Int16_16](x)
		return z.Int26_6(), nil
	case typeInt16_16:
		z, _ := convert[Int16_16](x)
		return z, nil
	case typeUint16_16:
		z, _ := convert[Uint16_16](x)
		return z, nil
	case typeUint8_8:
		z, _ := convert[Uint8_8](x)
		return z, nil
	}

	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, _ := trunc(x)
		lo, hi := intRange(true, uintptr(t.Bits()))
		v.SetInt(min(max(i, lo), hi))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, _ := trunc(x)
		_, hi := intRange(false, uintptr(t.Bits()))
		v.SetUint(uint64(min(max(i, 0), hi)))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64Of(x))
	case reflect.String:
		v.SetString(text(x, 'g', -1))
	default:
		return nil, &Error{op, ErrUnsupportedConversion}
	}
	return v.Interface(), nil
}
