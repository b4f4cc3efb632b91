package curves

// Add returns P + Q under the chord-and-tangent group law.
//
// ok is false when the chord or tangent is vertical, i.e. the sum is the point
// at infinity and has no affine representation. That outcome is not an error.
func (c *Curve) Add(P, Q Point) (sum Point, ok bool) {
	f := c.field
	P = Point{X: f.Reduce(P.X), Y: f.Reduce(P.Y)}
	Q = Point{X: f.Reduce(Q.X), Y: f.Reduce(Q.Y)}

	var lambda uint64
	if P != Q {
		dy := f.Sub(Q.Y, P.Y)
		dx := f.Sub(Q.X, P.X)
		if dx == 0 {
			return Point{}, false
		}
		inv, err := f.Inverse(dx)
		if err != nil {
			return Point{}, false
		}
		lambda = f.Mul(dy, inv)
	} else {
		if P.Y == 0 {
			return Point{}, false
		}
		// (3x^2 + a) / 2y
		num := f.Add(f.Mul(3, f.Square(P.X)), c.a)
		inv, err := f.Inverse(f.Add(P.Y, P.Y))
		if err != nil {
			// 2y == 0 only in characteristic 2
			return Point{}, false
		}
		lambda = f.Mul(num, inv)
	}

	x3 := f.Sub(f.Sub(f.Square(lambda), P.X), Q.X)
	y3 := f.Sub(f.Mul(lambda, f.Sub(P.X, x3)), P.Y)
	return Point{X: x3, Y: y3}, true
}

// Double returns 2P. ok is false when the tangent at P is vertical.
func (c *Curve) Double(P Point) (Point, bool) {
	return c.Add(P, P)
}
