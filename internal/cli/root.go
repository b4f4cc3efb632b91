package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecarith/internal/logging"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// NewRootCommand returns the ecadd command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecadd <p> <a> <b>",
		Short: "Add two points on y^2 = x^3 + ax + b over the prime field F_p",
		Long: `ecadd validates the field characteristic p and the curve coefficients a and b,
then checks two points against the curve and prints their sum.

Every flag can also be set as ECADD_<FLAG> in the environment or in a --config file.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	registerFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := newViper(cmd.Flags())
		if err != nil {
			return err
		}
		cfg, err := loadConfig(v)
		if err != nil {
			return err
		}
		logger, err := logging.NewWithWriter(cfg.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		return Run(cmd.Context(), cmd.OutOrStdout(), logger, cfg, args[0], args[1], args[2])
	}
	return cmd
}

// Run validates p, a and b, then adds cfg.First and cfg.Second on the curve,
// writing line-oriented results to out.
func Run(ctx context.Context, out io.Writer, logger *zap.Logger, cfg *Config, p, a, b string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	e, err := ecarith.Parse(p, a, b)
	if err != nil {
		reportParamError(out, err, p)
		return err
	}
	params := e.Params()
	logger.Debug("parameters accepted", zap.Uint64("p", params.P), zap.Uint64("a", params.A), zap.Uint64("b", params.B))

	fmt.Fprintf(out, "%d is the finite field you have chosen\n", params.P)
	fmt.Fprintf(out, "Elliptic curve: y^2 = x^3 + %dx + %d (mod %d)\n", params.A, params.B, params.P)

	if cfg.Enumerate {
		if err := printPoints(ctx, out, logger, e, cfg); err != nil {
			return err
		}
	}

	if !e.IsOnCurve(cfg.First) || !e.IsOnCurve(cfg.Second) {
		logger.Info("point rejected", zap.Stringer("first", cfg.First), zap.Stringer("second", cfg.Second))
		fmt.Fprintln(out, "One or both points are not on the curve.")
		return nil
	}

	sum, ok := e.Add(cfg.First, cfg.Second)
	if !ok {
		fmt.Fprintln(out, "Point addition has no finite result (vertical tangent).")
		return nil
	}
	if cfg.Verify {
		if err := verifySum(e, cfg.First, cfg.Second, sum); err != nil {
			logger.Error("reference check failed", zap.Error(err))
			return err
		}
		logger.Info("sum matches arbitrary-precision reference", zap.Stringer("sum", sum))
	}
	fmt.Fprintf(out, "The result is: %v\n", sum)
	return nil
}

func printPoints(ctx context.Context, out io.Writer, logger *zap.Logger, e *ecarith.Engine, cfg *Config) error {
	p := e.Params().P
	if p > cfg.MaxEnumerate {
		return errors.Errorf("refusing to enumerate a field of size %d (limit %d, see --max-enumerate)", p, cfg.MaxEnumerate)
	}

	start := time.Now()
	pts, err := e.Points(ctx, cfg.Workers)
	if err != nil {
		return errors.Wrap(err, "enumerate points")
	}
	logger.Debug("enumerated points",
		zap.Uint64("p", p),
		zap.Int("count", len(pts)),
		zap.Int("workers", cfg.Workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	fmt.Fprintf(out, "Points on the curve (%d):\n", len(pts))
	for _, pt := range pts {
		fmt.Fprintf(out, "  %v\n", pt)
	}
	return nil
}

func reportParamError(out io.Writer, err error, p string) {
	switch {
	case errors.Is(err, ecarith.ErrInvalidInput):
		fmt.Fprintln(out, "The input is invalid")
	case errors.Is(err, ecarith.ErrNotPrime):
		fmt.Fprintf(out, "%s is not prime\n", strings.TrimSpace(p))
	case errors.Is(err, ecarith.ErrCoefficientOutOfRange):
		pv, _ := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		fmt.Fprintf(out, "%d is the finite field you have chosen\n", pv)
		fmt.Fprintf(out, "The values of a and b must lie strictly between 0 and %d\n", pv)
	}
}
