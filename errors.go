// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import "errors"

// Error kinds. Errors returned or raised by this package wrap one of these;
// test for them with errors.Is.
var (
	ErrOverflow              = errors.New("overflow")
	ErrDivideByZero          = errors.New("division by zero")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

// An Error records a failed operation. Divisions by zero outside of the
// Checked functions panic with an *Error.
type Error struct {
	Op  string // operation, for instance "Int16_16.Quo"
	Err error  // one of the Err* kinds
}

func (e *Error) Error() string {
	return "fixed: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
