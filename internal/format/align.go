package format

// Align8 returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + AlignMask) & ^AlignMask
}

// IsAligned reports whether n is a multiple of Align.
func IsAligned(n int) bool {
	return n&AlignMask == 0
}
