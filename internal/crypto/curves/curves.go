package curves

import (
	"fmt"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
)

// Point is an affine point (X, Y) with both coordinates in [0, p).
// Points are plain values; two points are equal iff their coordinates are.
type Point struct {
	X, Y uint64
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Curve is the short Weierstrass curve y^2 = x^3 + a*x + b over a prime field.
type Curve struct {
	a, b  uint64
	field field.Field
}

// New returns the curve with coefficients a and b over f.
// Coefficients are reduced mod p; no singularity check is made.
func New(f field.Field, a, b uint64) *Curve {
	return &Curve{
		a:     f.Reduce(a),
		b:     f.Reduce(b),
		field: f,
	}
}

// A returns the coefficient of x.
func (c *Curve) A() uint64 { return c.a }

// B returns the constant coefficient.
func (c *Curve) B() uint64 { return c.b }

// Field returns the underlying prime field.
func (c *Curve) Field() field.Field { return c.field }

// Evaluate returns x^3 + a*x + b mod p.
func (c *Curve) Evaluate(x uint64) uint64 {
	f := c.field
	x = f.Reduce(x)
	x3 := f.Mul(f.Square(x), x)
	return f.Add(f.Add(x3, f.Mul(c.a, x)), c.b)
}

// IsOnCurve reports whether pt lies in the field and satisfies the curve equation.
func (c *Curve) IsOnCurve(pt Point) bool {
	p := c.field.Modulus()
	if pt.X >= p || pt.Y >= p {
		return false
	}
	return c.field.Square(pt.Y) == c.Evaluate(pt.X)
}

// Neg returns the reflection (x, -y) of pt.
func (c *Curve) Neg(pt Point) Point {
	f := c.field
	return Point{X: f.Reduce(pt.X), Y: f.Neg(f.Reduce(pt.Y))}
}
