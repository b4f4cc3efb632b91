package field

import (
	"math"
	"math/bits"
)

// IsPrime reports whether n is prime by trial division up to floor(sqrt(n)).
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	limit := Sqrt(n)
	for d := uint64(3); d <= limit; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Sqrt returns floor(sqrt(n)) exactly for every uint64.
//
// The float64 estimate can be off by one near 2^64, so it is corrected in both
// directions with a 128-bit square.
func Sqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && squareExceeds(r, n) {
		r--
	}
	for !squareExceeds(r+1, n) {
		r++
	}
	return r
}

// squareExceeds reports whether r*r > n without overflowing.
func squareExceeds(r, n uint64) bool {
	hi, lo := bits.Mul64(r, r)
	return hi != 0 || lo > n
}
