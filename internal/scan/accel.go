package scan

import "github.com/coregx/globx/simd"

// findByte returns the index of the first occurrence of b in s, or -1.
func findByte(s []byte, b byte) int {
	return simd.Memchr(s, b)
}

// findAnyN returns the index of the first occurrence of any byte in targets
// within s, or -1. It dispatches onto the SIMD package's fixed-arity memchr
// variants — Memchr/Memchr2/Memchr3, each a pure-Go SWAR scan that checks
// 8 bytes per step — rather than looping a byte at a time, since every call site
// here passes a small, fixed-at-compile-time target set (wildcard bytes,
// path separators).
func findAnyN(s []byte, targets []byte) int {
	switch len(targets) {
	case 0:
		return -1
	case 1:
		return simd.Memchr(s, targets[0])
	case 2:
		return simd.Memchr2(s, targets[0], targets[1])
	case 3:
		return simd.Memchr3(s, targets[0], targets[1], targets[2])
	default:
		best := simd.Memchr3(s, targets[0], targets[1], targets[2])
		if rest := findAnyN(s, targets[3:]); rest != -1 && (best == -1 || rest < best) {
			best = rest
		}
		return best
	}
}
