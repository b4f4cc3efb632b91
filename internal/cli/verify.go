package cli

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/bigcurve"
	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// verifySum recomputes P + Q with arbitrary-precision arithmetic and compares.
func verifySum(e *ecarith.Engine, P, Q, sum curves.Point) error {
	params := e.Params()
	ref := bigcurve.New(
		new(big.Int).SetUint64(params.P),
		new(big.Int).SetUint64(params.A),
		new(big.Int).SetUint64(params.B),
	)
	want, ok := ref.Add(bigPoint(P), bigPoint(Q))
	if !ok {
		return errors.Errorf("reference has no finite sum for %v + %v, got %v", P, Q, sum)
	}
	if !want.Equal(bigPoint(sum)) {
		return errors.Errorf("sum mismatch for %v + %v: got %v, reference (%s, %s)", P, Q, sum, want.X, want.Y)
	}
	return nil
}

func bigPoint(pt curves.Point) bigcurve.Point {
	return bigcurve.Point{X: new(big.Int).SetUint64(pt.X), Y: new(big.Int).SetUint64(pt.Y)}
}
