// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import "sync/atomic"

// Transcendental functions memoize their results in direct-mapped tables
// indexed by a hash of the raw input. A slot holds a single (input, result)
// pair that is replaced on every miss. Slots are read and written
// atomically, as a whole, so the tables can be shared by concurrent
// goroutines: a lookup either finds the result computed for the exact same
// input or recomputes it.

const (
	cacheBits = 12
	cacheSize = 1 << cacheBits
	cacheMask = cacheSize - 1
)

// A cache1 memoizes a function of one 32 bits raw value. Each slot packs the
// key in its upper 32 bits and the value in the lower ones.
type cache1 struct {
	f     func(uint32) uint32
	slots [cacheSize]atomic.Uint64
}

func newCache1(f func(uint32) uint32) *cache1 {
	c := &cache1{f: f}
	c.reset()
	caches = append(caches, c)
	return c
}

// reset fills all slots with the result for a zero input, so that an empty
// slot is never mistaken for a cached value.
func (c *cache1) reset() {
	e := uint64(c.f(0))
	for i := range c.slots {
		c.slots[i].Store(e)
	}
}

func (c *cache1) do(k uint32) uint32 {
	s := &c.slots[(k>>4)&cacheMask]
	if e := s.Load(); uint32(e>>32) == k {
		return uint32(e)
	}
	v := c.f(k)
	s.Store(uint64(k)<<32 | uint64(v))
	return v
}

type entry2 struct {
	y, x, v int32
}

// A cache2 memoizes a function of two 32 bits raw values. Slots point to
// immutable entries.
type cache2 struct {
	f     func(y, x int32) int32
	slots [cacheSize]atomic.Pointer[entry2]
}

func newCache2(f func(y, x int32) int32) *cache2 {
	c := &cache2{f: f}
	caches = append(caches, c)
	return c
}

func (c *cache2) reset() {
	for i := range c.slots {
		c.slots[i].Store(nil)
	}
}

func (c *cache2) do(y, x int32) int32 {
	k := uint32(y ^ x)
	k ^= k >> cacheBits
	s := &c.slots[k&cacheMask]
	if e := s.Load(); e != nil && e.y == y && e.x == x {
		return e.v
	}
	v := c.f(y, x)
	s.Store(&entry2{y, x, v})
	return v
}

var caches []interface{ reset() }

// ResetCaches clears the memoization tables of all transcendental
// functions.
func ResetCaches() {
	for _, c := range caches {
		c.reset()
	}
}
