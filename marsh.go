// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of fixed-point numbers.

package fixed

import (
	"encoding/binary"
	"fmt"

	"github.com/govalues/decimal"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const fixedGobVersion byte = 1

// appendBits appends the raw value of x to buf in big-endian order, using
// exactly the width of T.
func appendBits[T Fixed](buf []byte, x T) []byte {
	if formatOf[T]().width == 16 {
		return binary.BigEndian.AppendUint16(buf, uint16(x))
	}
	return binary.BigEndian.AppendUint32(buf, uint32(x))
}

func bitsFrom[T Fixed](buf []byte) (T, error) {
	f := formatOf[T]()
	if len(buf) != int(f.width/8) {
		return 0, fmt.Errorf("fixed: %s: invalid encoding length %d", f.name, len(buf))
	}
	if f.width == 16 {
		return T(binary.BigEndian.Uint16(buf)), nil
	}
	return T(binary.BigEndian.Uint32(buf)), nil
}

func gobEncode[T Fixed](x T) []byte {
	return appendBits([]byte{fixedGobVersion}, x)
}

func gobDecode[T Fixed](buf []byte) (T, error) {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		return 0, nil
	}
	if buf[0] != fixedGobVersion {
		return 0, fmt.Errorf("%s.GobDecode: encoding version %d not supported", formatOf[T]().name, buf[0])
	}
	return bitsFrom[T](buf[1:])
}

func unmarshalText[T Fixed](text []byte) (T, error) {
	d, err := decimal.Parse(string(text))
	if err == nil {
		var z T
		if z, err = FromDecimal[T](d); err == nil {
			return z, nil
		}
	}
	return 0, fmt.Errorf("fixed: cannot unmarshal %q into a *fixed.%s (%w)", text, formatOf[T]().name, err)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// encoding is the raw value in big-endian byte order.
func (x Int16_16) MarshalBinary() ([]byte, error) { return appendBits(nil, x), nil }

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (z *Int16_16) UnmarshalBinary(buf []byte) (err error) {
	*z, err = bitsFrom[Int16_16](buf)
	return err
}

// GobEncode implements the gob.GobEncoder interface.
func (x Int16_16) GobEncode() ([]byte, error) { return gobEncode(x), nil }

// GobDecode implements the gob.GobDecoder interface.
func (z *Int16_16) GobDecode(buf []byte) (err error) {
	*z, err = gobDecode[Int16_16](buf)
	return err
}

// MarshalText implements the encoding.TextMarshaler interface. The
// value is marshaled as its exact decimal representation.
func (x Int16_16) MarshalText() ([]byte, error) { return appendFixed(nil, x, 'f', -1), nil }

// UnmarshalText implements the encoding.TextUnmarshaler interface. The
// result is rounded to nearest, halves away from zero, and out of range
// values are an error.
func (z *Int16_16) UnmarshalText(text []byte) (err error) {
	*z, err = unmarshalText[Int16_16](text)
	return err
}

func (x Uint16_16) MarshalBinary() ([]byte, error) { return appendBits(nil, x), nil }

func (z *Uint16_16) UnmarshalBinary(buf []byte) (err error) {
	*z, err = bitsFrom[Uint16_16](buf)
	return err
}

func (x Uint16_16) GobEncode() ([]byte, error) { return gobEncode(x), nil }

func (z *Uint16_16) GobDecode(buf []byte) (err error) {
	*z, err = gobDecode[Uint16_16](buf)
	return err
}

func (x Uint16_16) MarshalText() ([]byte, error) { return appendFixed(nil, x, 'f', -1), nil }

func (z *Uint16_16) UnmarshalText(text []byte) (err error) {
	*z, err = unmarshalText[Uint16_16](text)
	return err
}

func (x Uint8_8) MarshalBinary() ([]byte, error) { return appendBits(nil, x), nil }

func (z *Uint8_8) UnmarshalBinary(buf []byte) (err error) {
	*z, err = bitsFrom[Uint8_8](buf)
	return err
}

func (x Uint8_8) GobEncode() ([]byte, error) { return gobEncode(x), nil }

func (z *Uint8_8) GobDecode(buf []byte) (err error) {
	*z, err = gobDecode[Uint8_8](buf)
	return err
}

func (x Uint8_8) MarshalText() ([]byte, error) { return appendFixed(nil, x, 'f', -1), nil }

func (z *Uint8_8) UnmarshalText(text []byte) (err error) {
	*z, err = unmarshalText[Uint8_8](text)
	return err
}
