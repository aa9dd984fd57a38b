//go:build fixed_pure_go
// +build fixed_pure_go

package fixed

func clz32(x uint32) int {
	return clz32Portable(x)
}
