// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

// An Opt holds either a value or nothing. Functions with a restricted
// domain, like Tan or Asin, report undefined results as a missing value;
// Opt and its combinators let callers chain such functions without checking
// every intermediate result.
type Opt[T any] struct {
	v  T
	ok bool
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] { return Opt[T]{v, true} }

// None returns an empty Opt.
func None[T any]() Opt[T] { return Opt[T]{} }

// OptOf returns Some(v) if ok is true, None otherwise. It converts the
// results of the (T, bool) functions of this package.
func OptOf[T any](v T, ok bool) Opt[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Get returns the value held by o and whether there is one.
func (o Opt[T]) Get() (T, bool) { return o.v, o.ok }

// IsSome reports whether o holds a value.
func (o Opt[T]) IsSome() bool { return o.ok }

// Or returns the value held by o, or def if o is empty.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Map returns Some(f(v)) if o holds v, None otherwise.
func Map[T, U any](o Opt[T], f func(T) U) Opt[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.v))
}

// Map2 returns Some(f(u, v)) if a holds u and b holds v, None otherwise.
func Map2[T, U, V any](a Opt[T], b Opt[U], f func(T, U) V) Opt[V] {
	if !a.ok || !b.ok {
		return None[V]()
	}
	return Some(f(a.v, b.v))
}

// Then returns OptOf(f(v)) if o holds v, None otherwise.
func Then[T, U any](o Opt[T], f func(T) (U, bool)) Opt[U] {
	if !o.ok {
		return None[U]()
	}
	v, ok := f(o.v)
	return OptOf(v, ok)
}
