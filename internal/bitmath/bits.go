// Package bitmath provides the small numeric helpers the rest of the
// module builds on: bit-window access into packed integer fields,
// single-bit flag operations, and ordered min/max/clamp.
package bitmath

import (
	"cmp"
	"math/bits"
)

// Unsigned constrains to the unsigned integer types the bit-window
// helpers operate on.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// GB fetches n bits of x starting at bit s, aligned to the LSB.
// GB(0xFF, 2, 1) returns 0x01, not 0x04.
func GB[T Unsigned](x T, s, n uint8) T {
	return (x >> s) & (1<<n - 1)
}

// SB overwrites the n-bit window of *x starting at bit s with d.
// Bits of d beyond the window are discarded.
func SB[T Unsigned](x *T, s, n uint8, d T) {
	*x = *x&^((1<<n-1)<<s) | (d&(1<<n-1))<<s
}

// AB adds i to the n-bit window of *x starting at bit s. Overflow
// wraps within the window and never touches neighboring bits.
func AB[T Unsigned](x *T, s, n uint8, i T) {
	mask := T(1<<n-1) << s
	*x = *x&^mask | (*x+i<<s)&mask
}

// HasBit reports whether bit y of x is set.
func HasBit[T Unsigned](x T, y uint8) bool {
	return x&(1<<y) != 0
}

// SetBit returns x with bit y set.
func SetBit[T Unsigned](x T, y uint8) T {
	return x | 1<<y
}

// ClrBit returns x with bit y cleared.
func ClrBit[T Unsigned](x T, y uint8) T {
	return x &^ (1 << y)
}

// ToggleBit returns x with bit y flipped.
func ToggleBit[T Unsigned](x T, y uint8) T {
	return x ^ 1<<y
}

// CountBits returns the number of set bits in x.
func CountBits[T Unsigned](x T) int {
	return bits.OnesCount64(uint64(x))
}

// Min returns the smaller of a and b.
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp returns a limited to the interval [lo, hi]. lo must not
// exceed hi.
func Clamp[T cmp.Ordered](a, lo, hi T) T {
	if a <= lo {
		return lo
	}
	if a >= hi {
		return hi
	}
	return a
}

// IsInsideMM reports whether min <= x < max.
func IsInsideMM(x, min, max int) bool {
	return uint(x-min) < uint(max-min)
}

// IsInside1D reports whether x lies in the half-open window
// [base, base+size).
func IsInside1D(x, base, size int) bool {
	return uint(x-base) < uint(size)
}
