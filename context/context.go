// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides evaluation contexts for fixed-point numbers.
//
// A Context applies an overflow policy to all the arithmetic operations it
// performs:
//
//	func (c *Context[T]) BinaryOp(x, y T) T
//
// returns x.Op(y) if c's policy is fixed.Saturate, or the result of
// x.OpChecked(y) if the policy is fixed.Check.
//
// A Context catches errors: if an operation fails, it returns the zero value
// and further operations with the context will be no-ops (they simply return
// the zero value) until (*Context).Err is called to check for errors. With a
// saturating policy, the only possible error is a division by zero.
package context

import (
	"errors"
	"fmt"

	"github.com/db47h/fixed"
	"github.com/govalues/decimal"
)

// A Context is a wrapper around fixed-point operations that facilitates
// management of the overflow policy and error handling.
type Context[T fixed.Arith[T]] struct {
	policy fixed.Policy
	err    error
}

// New creates a new context with the given overflow policy.
func New[T fixed.Arith[T]](policy fixed.Policy) *Context[T] {
	return new(Context[T]).SetPolicy(policy)
}

// Policy returns the overflow policy of c.
func (c *Context[T]) Policy() fixed.Policy {
	return c.policy
}

// SetPolicy sets c's overflow policy and returns c.
func (c *Context[T]) SetPolicy(policy fixed.Policy) *Context[T] {
	c.policy = policy
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context[T]) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// Parse returns the value of the decimal string s, rounded to nearest.
// Malformed or out of range input sets c's error.
func (c *Context[T]) Parse(s string) T {
	if c.err != nil {
		return 0
	}
	d, err := decimal.Parse(s)
	if err != nil {
		c.err = fmt.Errorf("context: parse %q: %w", s, err)
		return 0
	}
	z, err := fixed.FromDecimal[T](d)
	if err != nil {
		c.err = err
	}
	return z
}

// Add returns x+y.
func (c *Context[T]) Add(x, y T) T { return c.apply(x.Add, x.AddChecked, y) }

// Sub returns x-y.
func (c *Context[T]) Sub(x, y T) T { return c.apply(x.Sub, x.SubChecked, y) }

// Mul returns x*y.
func (c *Context[T]) Mul(x, y T) T { return c.apply(x.Mul, x.MulChecked, y) }

// Quo returns x/y. A division by zero sets c's error.
func (c *Context[T]) Quo(x, y T) T { return c.apply(x.Quo, x.QuoChecked, y) }

// Sum returns the sum of xs, or 0 if xs is empty.
func (c *Context[T]) Sum(xs ...T) (z T) {
	for _, x := range xs {
		z = c.Add(z, x)
	}
	return z
}

func (c *Context[T]) apply(op func(T) T, checked func(T) (T, error), y T) (z T) {
	if c.err != nil {
		return z
	}
	if c.policy == fixed.Check {
		z, c.err = checked(y)
		return z
	}
	defer func() {
		if r := recover(); r != nil {
			var e *fixed.Error
			if err, ok := r.(error); !ok || !errors.As(err, &e) {
				panic(r)
			}
			c.err = e
			z = 0
		}
	}()
	return op(y)
}
