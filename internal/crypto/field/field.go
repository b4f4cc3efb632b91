package field

import (
	"errors"
	"math/bits"
)

var (
	// ErrNotPrime is returned by New when the modulus fails primality testing.
	ErrNotPrime = errors.New("field: modulus is not prime")

	// ErrNoInverse is returned by Inverse when gcd(a, p) != 1.
	ErrNoInverse = errors.New("field: element has no inverse")
)

// Field is the prime field Z/pZ with elements stored as uint64 in [0, p).
// Products are formed in 128 bits and reduced, so every p < 2^64 is supported.
type Field struct {
	p uint64
}

// New returns the field of characteristic p. p must be prime.
func New(p uint64) (Field, error) {
	if !IsPrime(p) {
		return Field{}, ErrNotPrime
	}
	return Field{p: p}, nil
}

// Unchecked returns the field of characteristic p without testing primality.
// The caller asserts that p is prime.
func Unchecked(p uint64) Field {
	return Field{p: p}
}

// Modulus returns p.
func (f Field) Modulus() uint64 {
	return f.p
}

// Reduce maps an arbitrary uint64 into [0, p).
func (f Field) Reduce(a uint64) uint64 {
	return a % f.p
}

// Add returns a + b mod p. a and b must be in [0, p).
func (f Field) Add(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= f.p {
		s -= f.p
	}
	return s
}

// Sub returns a - b mod p. a and b must be in [0, p).
// When a < b the modulus is added before subtracting so nothing goes negative.
func (f Field) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return (f.p - b) + a
}

// Neg returns -a mod p.
func (f Field) Neg(a uint64) uint64 {
	return f.Sub(0, a)
}

// Mul returns a * b mod p. Inputs are reduced first, so any uint64 is accepted.
func (f Field) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a%f.p, b%f.p)
	// hi < p because both factors are below p.
	_, r := bits.Div64(hi, lo, f.p)
	return r
}

// Square returns a^2 mod p.
func (f Field) Square(a uint64) uint64 {
	return f.Mul(a, a)
}

// Inverse returns a^-1 mod p using the extended Euclidean algorithm.
//
// The Bezout coefficient of a is tracked modulo p, so it is already normalized
// into [0, p) when the loop ends and no signed intermediate is needed.
func (f Field) Inverse(a uint64) (uint64, error) {
	r0, r1 := f.p, a%f.p
	t0, t1 := uint64(0), uint64(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, f.Sub(t0, f.Mul(q, t1))
	}
	if r0 != 1 {
		return 0, ErrNoInverse
	}
	return t0, nil
}
