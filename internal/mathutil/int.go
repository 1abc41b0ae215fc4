package mathutil

import "math"

// IntMin returns the smaller of two ints (search: int-math).
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints (search: int-math).
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// WrappingAddU32 adds a signed delta to an unsigned tile coordinate, wrapping at the
// uint32 range boundary. The world is open-ended, so wrapping is the intended behavior
// (search: tile-wrap).
func WrappingAddU32(a uint32, delta int64) uint32 {
	return a + uint32(delta)
}

// WrapFloatToU32 reduces an integral float modulo 2^32. Any finite value is accepted,
// including ones far outside the int64 range (search: tile-wrap).
func WrapFloatToU32(v float64) uint32 {
	m := math.Mod(v, 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	if m >= 1<<32 {
		m = 0
	}
	return uint32(m)
}

// RoundToInt32 rounds half up, the way the rasterizer snaps rectangle edges (search: float-round).
func RoundToInt32(v float32) int32 {
	return int32(math.Floor(float64(v) + 0.5))
}

// TruncateToInt32 drops the fractional part toward zero (search: float-round).
func TruncateToInt32(v float32) int32 {
	return int32(v)
}
