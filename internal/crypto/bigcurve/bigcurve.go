// Package bigcurve is an arbitrary-precision implementation of affine
// short Weierstrass arithmetic. It has no width limit and serves as the
// reference that the fixed-width curves package is checked against.
package bigcurve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	zero  = big.NewInt(0)
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Point is an affine point. A nil coordinate is never a valid point.
type Point struct {
	X, Y *big.Int
}

// Equal reports whether both coordinates match.
func (p Point) Equal(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Curve is y^2 = x^3 + A*x + B over Z/PZ.
type Curve struct {
	P, A, B *big.Int
}

// New copies its arguments; A and B are reduced mod p.
func New(p, a, b *big.Int) *Curve {
	P := new(big.Int).Set(p)
	return &Curve{
		P: P,
		A: new(big.Int).Mod(a, P),
		B: new(big.Int).Mod(b, P),
	}
}

// Secp256k1 returns the secp256k1 parameters (a = 0, b = 7).
func Secp256k1() *Curve {
	params := secp256k1.S256().Params()
	return New(params.P, zero, params.B)
}

// Secp256k1Generator returns the secp256k1 base point G.
func Secp256k1Generator() Point {
	params := secp256k1.S256().Params()
	return Point{X: new(big.Int).Set(params.Gx), Y: new(big.Int).Set(params.Gy)}
}

func (c *Curve) mod(z *big.Int) *big.Int {
	return z.Mod(z, c.P)
}

// IsOnCurve reports whether pt satisfies the curve equation with coordinates in [0, P).
func (c *Curve) IsOnCurve(pt Point) bool {
	if pt.X == nil || pt.Y == nil {
		return false
	}
	if pt.X.Sign() < 0 || pt.Y.Sign() < 0 || pt.X.Cmp(c.P) >= 0 || pt.Y.Cmp(c.P) >= 0 {
		return false
	}
	lhs := c.mod(new(big.Int).Mul(pt.Y, pt.Y))

	rhs := new(big.Int).Mul(pt.X, pt.X)
	rhs.Mul(rhs, pt.X)
	rhs.Add(rhs, new(big.Int).Mul(c.A, pt.X))
	rhs.Add(rhs, c.B)
	c.mod(rhs)

	return lhs.Cmp(rhs) == 0
}

// Add returns P + Q. ok is false when the result is the point at infinity.
func (c *Curve) Add(P, Q Point) (Point, bool) {
	px, py := c.mod(new(big.Int).Set(P.X)), c.mod(new(big.Int).Set(P.Y))
	qx, qy := c.mod(new(big.Int).Set(Q.X)), c.mod(new(big.Int).Set(Q.Y))

	var num, den *big.Int
	if px.Cmp(qx) != 0 || py.Cmp(qy) != 0 {
		num = c.mod(new(big.Int).Sub(qy, py))
		den = c.mod(new(big.Int).Sub(qx, px))
	} else {
		num = new(big.Int).Mul(px, px)
		num.Mul(num, three)
		num.Add(num, c.A)
		c.mod(num)
		den = c.mod(new(big.Int).Mul(two, py))
	}
	if den.Sign() == 0 {
		return Point{}, false
	}
	inv, ok := Inverse(den, c.P)
	if !ok {
		return Point{}, false
	}
	lambda := c.mod(new(big.Int).Mul(num, inv))

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, px)
	x3.Sub(x3, qx)
	c.mod(x3)

	y3 := new(big.Int).Sub(px, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, py)
	c.mod(y3)

	return Point{X: x3, Y: y3}, true
}

// ExtendedGCD returns g = gcd(a, b) and x, y with a*x + b*y = g.
// a and b must be non-negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	if b.Sign() == 0 {
		return new(big.Int).Set(a), big.NewInt(1), big.NewInt(0)
	}
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	g, x1, y1 := ExtendedGCD(b, r)
	// x = y1, y = x1 - q*y1
	y = new(big.Int).Mul(q, y1)
	y.Sub(x1, y)
	return g, y1, y
}

// Inverse returns a^-1 mod m, normalized into [0, m).
func Inverse(a, m *big.Int) (*big.Int, bool) {
	g, x, _ := ExtendedGCD(new(big.Int).Mod(a, m), m)
	if g.Cmp(one) != 0 {
		return nil, false
	}
	return x.Mod(x, m), true
}
