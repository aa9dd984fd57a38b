// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The float64 value of any fixed-point number is exact, so formatting goes
// through strconv. The 'f' format with a negative precision yields the exact
// decimal value of x rather than the shortest representation of the float64,
// which can have fewer digits.

func appendFixed[T Fixed](buf []byte, x T, fmt byte, prec int) []byte {
	if fmt != 'f' || prec >= 0 {
		return strconv.AppendFloat(buf, float64Of(x), fmt, prec, 64)
	}
	// k/2**n has at most n decimals.
	buf = strconv.AppendFloat(buf, float64Of(x), 'f', int(formatOf[T]().frac), 64)
	i := len(buf)
	for buf[i-1] == '0' {
		i--
	}
	if buf[i-1] == '.' {
		i--
	}
	return buf[:i]
}

func text[T Fixed](x T, fmt byte, prec int) string {
	return string(appendFixed(make([]byte, 0, 24), x, fmt, prec))
}

// textLocale formats x with prec decimals using the digit grouping and
// decimal separator of the language tag. A negative prec selects the
// smallest number of decimals that represents x exactly.
func textLocale[T Fixed](x T, tag language.Tag, prec int) string {
	f := float64Of(x)
	if prec < 0 {
		s := text(x, 'f', -1)
		prec = 0
		if i := strings.IndexByte(s, '.'); i >= 0 {
			prec = len(s) - i - 1
		}
	}
	return message.NewPrinter(tag).Sprintf(fmt.Sprintf("%%.%df", prec), f)
}

func formatFixed[T Fixed](x T, s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s(%#x)", formatOf[T]().name, int64(x))
			return
		}
		if _, ok := s.Precision(); !ok {
			verb = 's'
		}
	case 'd':
		i, _ := trunc(x)
		fmt.Fprintf(s, fmt.FormatString(s, verb), i)
		return
	case 's':
	case 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X', 'b':
	default:
		fmt.Fprintf(s, "%%!%c(%s=%s)", verb, formatOf[T]().name, text(x, 'f', -1))
		return
	}
	if verb == 's' {
		fmt.Fprintf(s, fmt.FormatString(s, verb), text(x, 'f', -1))
		return
	}
	fmt.Fprintf(s, fmt.FormatString(s, verb), float64Of(x))
}

// String returns the exact decimal representation of x, like x.Text('f', -1).
func (x Int16_16) String() string { return text(x, 'f', -1) }

// Text converts x to a string according to the given format and precision,
// as strconv.FormatFloat does for float64 values.
func (x Int16_16) Text(fmt byte, prec int) string { return text(x, fmt, prec) }

// Append appends to buf the string form of x, as generated by x.Text, and
// returns the extended buffer.
func (x Int16_16) Append(buf []byte, fmt byte, prec int) []byte {
	return appendFixed(buf, x, fmt, prec)
}

// TextLocale formats x with prec decimals using the number formatting rules
// of the given language. A negative prec uses as many decimals as needed to
// represent x exactly.
func (x Int16_16) TextLocale(tag language.Tag, prec int) string { return textLocale(x, tag, prec) }

// Format implements fmt.Formatter. It accepts the floating-point verbs of
// the fmt package, %s and %v (the exact decimal value), %d (the integer
// part) and %+v which prints the raw value.
func (x Int16_16) Format(s fmt.State, verb rune) { formatFixed(x, s, verb) }

func (x Uint16_16) String() string                 { return text(x, 'f', -1) }
func (x Uint16_16) Text(fmt byte, prec int) string { return text(x, fmt, prec) }
func (x Uint16_16) Append(buf []byte, fmt byte, prec int) []byte {
	return appendFixed(buf, x, fmt, prec)
}
func (x Uint16_16) TextLocale(tag language.Tag, prec int) string { return textLocale(x, tag, prec) }
func (x Uint16_16) Format(s fmt.State, verb rune)                { formatFixed(x, s, verb) }

func (x Uint8_8) String() string                 { return text(x, 'f', -1) }
func (x Uint8_8) Text(fmt byte, prec int) string { return text(x, fmt, prec) }
func (x Uint8_8) Append(buf []byte, fmt byte, prec int) []byte {
	return appendFixed(buf, x, fmt, prec)
}
func (x Uint8_8) TextLocale(tag language.Tag, prec int) string { return textLocale(x, tag, prec) }
func (x Uint8_8) Format(s fmt.State, verb rune)                { formatFixed(x, s, verb) }
