//go:build !fixed_pure_go
// +build !fixed_pure_go

package fixed

import "math/bits"

// clz32 is intrinsified by the compiler on platforms with a count leading
// zeros instruction.
func clz32(x uint32) int {
	return bits.LeadingZeros32(x)
}
