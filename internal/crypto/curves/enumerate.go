package curves

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Points returns every affine point on the curve, sorted by (X, Y).
//
// This is an O(p^2) scan meant for small demonstration fields.
func (c *Curve) Points() []Point {
	set := make(map[Point]struct{})
	c.scan(0, c.field.Modulus(), func(pt Point) { set[pt] = struct{}{} })
	return sortedPoints(set)
}

// Enumerate computes the same set as Points, splitting the x range across
// workers goroutines. workers <= 0 selects GOMAXPROCS.
func (c *Curve) Enumerate(ctx context.Context, workers int) ([]Point, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := c.field.Modulus()
	if uint64(workers) > p {
		workers = int(p)
	}

	results := make([][]Point, workers)
	chunk := p / uint64(workers)
	if p%uint64(workers) != 0 {
		chunk++
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		start := uint64(w) * chunk
		if start >= p {
			break
		}
		end := start + chunk
		if end > p || end < start {
			end = p
		}
		g.Go(func() error {
			var local []Point
			for x := start; x < end; x++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				c.scan(x, x+1, func(pt Point) { local = append(local, pt) })
			}
			results[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := make(map[Point]struct{})
	for _, local := range results {
		for _, pt := range local {
			set[pt] = struct{}{}
		}
	}
	return sortedPoints(set), nil
}

// scan emits every point with x in [x0, x1). The reflection (x, p-y) is
// emitted alongside each root y != 0, so callers must de-duplicate.
func (c *Curve) scan(x0, x1 uint64, emit func(Point)) {
	f := c.field
	p := f.Modulus()
	for x := x0; x < x1; x++ {
		rhs := c.Evaluate(x)
		for y := uint64(0); y < p; y++ {
			if f.Square(y) != rhs {
				continue
			}
			emit(Point{X: x, Y: y})
			if y != 0 {
				emit(Point{X: x, Y: p - y})
			}
		}
	}
}

func sortedPoints(set map[Point]struct{}) []Point {
	pts := make([]Point, 0, len(set))
	for pt := range set {
		pts = append(pts, pt)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	return pts
}
