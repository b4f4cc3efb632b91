package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecarith/internal/cli"
	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

var _ = Describe("ecadd", func() {
	var (
		stdout *bytes.Buffer
		stderr *bytes.Buffer
	)

	execute := func(args ...string) error {
		cmd := cli.NewRootCommand()
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)
		cmd.SetArgs(args)
		return cmd.ExecuteContext(context.Background())
	}

	BeforeEach(func() {
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
	})

	Describe("parameter validation", func() {
		It("rejects an unparsable field characteristic", func() {
			err := execute("seven", "1", "1")
			Expect(err).To(MatchError(ecarith.ErrInvalidInput))
			Expect(stdout.String()).To(Equal("The input is invalid\n"))
		})

		It("rejects a composite field characteristic", func() {
			err := execute("8", "1", "1")
			Expect(err).To(MatchError(ecarith.ErrNotPrime))
			Expect(stdout.String()).To(Equal("8 is not prime\n"))
		})

		It("rejects coefficients outside (0, p)", func() {
			err := execute("7", "0", "1")
			Expect(err).To(MatchError(ecarith.ErrCoefficientOutOfRange))
			Expect(stdout.String()).To(ContainSubstring("7 is the finite field you have chosen"))
			Expect(stdout.String()).To(ContainSubstring("The values of a and b must lie strictly between 0 and 7"))
		})

		It("treats an unparsable coefficient as out of range", func() {
			err := execute("7", "1", "b")
			Expect(err).To(MatchError(ecarith.ErrCoefficientOutOfRange))
		})

		It("requires exactly three arguments", func() {
			Expect(execute("7", "1")).NotTo(Succeed())
			Expect(stdout.String()).To(BeEmpty())
		})
	})

	Describe("point addition", func() {
		It("adds the default points on the curve they come from", func() {
			Expect(execute("9739", "497", "1768", "--verify")).To(Succeed())
			Expect(stdout.String()).To(Equal(
				"9739 is the finite field you have chosen\n" +
					"Elliptic curve: y^2 = x^3 + 497x + 1768 (mod 9739)\n" +
					"The result is: (4215, 2162)\n"))
		})

		It("reports points that are not on the curve", func() {
			Expect(execute("7", "1", "1")).To(Succeed())
			Expect(stdout.String()).To(HaveSuffix("One or both points are not on the curve.\n"))
		})

		It("reports a vertical chord", func() {
			Expect(execute("7", "1", "1", "--first", "0,1", "--second", "0,6")).To(Succeed())
			Expect(stdout.String()).To(HaveSuffix("Point addition has no finite result (vertical tangent).\n"))
		})

		It("doubles a point when both are equal", func() {
			Expect(execute("7", "1", "1", "--first", "0,1", "--second", "0,1")).To(Succeed())
			Expect(stdout.String()).To(HaveSuffix("The result is: (2, 5)\n"))
		})

		It("rejects a malformed point", func() {
			err := execute("7", "1", "1", "--first", "0;1")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("--first"))
		})

		It("writes debug logs to stderr", func() {
			Expect(execute("7", "1", "1", "--first", "0,1", "--second", "2,2", "--verify", "--log-level", "debug")).To(Succeed())
			Expect(stdout.String()).To(HaveSuffix("The result is: (0, 6)\n"))
			Expect(stderr.String()).To(ContainSubstring("parameters accepted"))
			Expect(stderr.String()).To(ContainSubstring("sum matches arbitrary-precision reference"))
		})
	})

	Describe("enumeration", func() {
		It("prints every point", func() {
			Expect(execute("7", "1", "1", "--enumerate", "--workers", "2")).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring(
				"Points on the curve (4):\n  (0, 1)\n  (0, 6)\n  (2, 2)\n  (2, 5)\n"))
		})

		It("refuses fields above the limit", func() {
			err := execute("11", "1", "6", "--enumerate", "--max-enumerate", "7")
			Expect(err).To(MatchError(ContainSubstring("refusing to enumerate")))
		})
	})

	Describe("configuration sources", func() {
		AfterEach(func() {
			os.Unsetenv("ECADD_FIRST")
			os.Unsetenv("ECADD_SECOND")
		})

		It("reads points from the environment", func() {
			os.Setenv("ECADD_FIRST", "0,1")
			os.Setenv("ECADD_SECOND", "2,2")
			Expect(execute("7", "1", "1")).To(Succeed())
			Expect(stdout.String()).To(HaveSuffix("The result is: (0, 6)\n"))
		})

		It("prefers flags over the environment", func() {
			os.Setenv("ECADD_FIRST", "0,1")
			os.Setenv("ECADD_SECOND", "2,2")
			Expect(execute("7", "1", "1", "--second", "0,6")).To(Succeed())
			Expect(stdout.String()).To(HaveSuffix("Point addition has no finite result (vertical tangent).\n"))
		})

		It("reads a config file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "ecadd.yaml")
			Expect(os.WriteFile(path, []byte("first: \"2,2\"\nsecond: \"2,2\"\nenumerate: true\n"), 0o600)).To(Succeed())

			Expect(execute("7", "1", "1", "--config", path)).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring("Points on the curve (4):"))
			// 2*(2,2): lambda = 13/4 = 6*2 = 5, x3 = 25 - 4 = 0, y3 = 5*2 - 2 = 1
			Expect(stdout.String()).To(HaveSuffix("The result is: (0, 1)\n"))
		})

		It("fails on a missing config file", func() {
			err := execute("7", "1", "1", "--config", "/nonexistent/ecadd.yaml")
			Expect(err).To(MatchError(ContainSubstring("read config")))
		})
	})

	Describe("Run", func() {
		It("accepts a nil context", func() {
			cfg := &cli.Config{
				First:        curves.Point{X: 0, Y: 1},
				Second:       curves.Point{X: 2, Y: 2},
				MaxEnumerate: 100,
			}
			//nolint:staticcheck
			Expect(cli.Run(nil, stdout, zap.NewNop(), cfg, "7", "1", "1")).To(Succeed())
			Expect(stdout.String()).To(HaveSuffix("The result is: (0, 6)\n"))
		})
	})
})
