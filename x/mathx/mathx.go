// Package mathx carries the small integer helpers the drivers share:
// rounded division for baud and reload maths, power-of-two sizing for
// receive rings and range clamping for configuration fields.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. Reversed bounds are swapped first.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// CeilDiv divides and rounds up. A zero divisor yields zero instead of
// a fault, so callers can validate after the fact.
func CeilDiv[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// RoundDiv divides and rounds half up.
func RoundDiv[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// CeilPow2 rounds v up to the nearest power of two. Zero stays zero,
// and values above the type's top power wrap to zero; clamp first.
func CeilPow2[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](v T) T {
	if v == 0 {
		return 0
	}
	v--
	for shift := uint(1); shift < 64; shift <<= 1 {
		v |= v >> shift
	}
	return v + 1
}

// IsPow2 reports whether v is a power of two.
func IsPow2[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](v T) bool {
	return v != 0 && v&(v-1) == 0
}
