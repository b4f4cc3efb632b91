// Package ecarith is the public entry point for arithmetic on short
// Weierstrass curves y^2 = x^3 + ax + b over small prime fields.
package ecarith

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/internal/crypto/field"
)

// Point is an affine curve point.
type Point = curves.Point

// Parameters holds the field characteristic and curve coefficients.
type Parameters struct {
	P uint64 // prime field characteristic
	A uint64 // coefficient of x, 0 < A < P
	B uint64 // constant term, 0 < B < P
}

// Engine performs curve operations for one validated set of Parameters.
// It is immutable and safe for concurrent use.
type Engine struct {
	params Parameters
	curve  *curves.Curve
}

// Parse validates textual parameters in order: p must parse, p must be prime,
// then a and b must parse and lie strictly between 0 and p.
func Parse(p, a, b string) (*Engine, error) {
	pv, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
	if err != nil {
		return nil, newParamError("p", p, errors.Wrap(ErrInvalidInput, err.Error()))
	}
	f, err := newField(pv)
	if err != nil {
		return nil, err
	}

	av, err := parseCoefficient("a", a, pv)
	if err != nil {
		return nil, err
	}
	bv, err := parseCoefficient("b", b, pv)
	if err != nil {
		return nil, err
	}
	return newEngine(Parameters{P: pv, A: av, B: bv}, f), nil
}

// New validates params and returns an Engine for them.
func New(params Parameters) (*Engine, error) {
	f, err := newField(params.P)
	if err != nil {
		return nil, err
	}
	if err := checkCoefficient("a", params.A, params.P); err != nil {
		return nil, err
	}
	if err := checkCoefficient("b", params.B, params.P); err != nil {
		return nil, err
	}
	return newEngine(params, f), nil
}

func newEngine(params Parameters, f field.Field) *Engine {
	return &Engine{
		params: params,
		curve:  curves.New(f, params.A, params.B),
	}
}

func newField(p uint64) (field.Field, error) {
	f, err := field.New(p)
	if err != nil {
		return field.Field{}, newParamError("p", strconv.FormatUint(p, 10), errors.WithStack(ErrNotPrime))
	}
	return f, nil
}

func parseCoefficient(name, s string, p uint64) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, newParamError(name, s, errors.Wrap(ErrCoefficientOutOfRange, err.Error()))
	}
	if err := checkCoefficient(name, v, p); err != nil {
		return 0, err
	}
	return v, nil
}

func checkCoefficient(name string, v, p uint64) error {
	if v == 0 || v >= p {
		return newParamError(name, strconv.FormatUint(v, 10),
			errors.Wrapf(ErrCoefficientOutOfRange, "must satisfy 0 < %s < %d", name, p))
	}
	return nil
}

// Params returns the validated parameters.
func (e *Engine) Params() Parameters {
	return e.params
}

// Curve exposes the underlying curve.
func (e *Engine) Curve() *curves.Curve {
	return e.curve
}

// IsOnCurve reports whether pt satisfies y^2 = x^3 + ax + b mod p.
func (e *Engine) IsOnCurve(pt Point) bool {
	return e.curve.IsOnCurve(pt)
}

// Add returns P + Q. ok is false when the sum has no finite representation
// (vertical chord or tangent).
func (e *Engine) Add(P, Q Point) (sum Point, ok bool) {
	return e.curve.Add(P, Q)
}

// Points enumerates every affine point on the curve using workers goroutines.
func (e *Engine) Points(ctx context.Context, workers int) ([]Point, error) {
	return e.curve.Enumerate(ctx, workers)
}

// Inverse returns a^-1 mod p.
func (e *Engine) Inverse(a uint64) (uint64, error) {
	return e.curve.Field().Inverse(a)
}
