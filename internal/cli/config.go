package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
)

const envPrefix = "ECADD"

// Config is the resolved command configuration (flags, then environment,
// then config file, then defaults).
type Config struct {
	First        curves.Point // demonstration points added by the command
	Second       curves.Point
	Enumerate    bool   // print every point on the curve
	MaxEnumerate uint64 // largest p accepted by Enumerate
	Workers      int    // 0 => GOMAXPROCS
	Verify       bool   // cross-check the sum with the arbitrary-precision reference
	LogLevel     string
}

func registerFlags(fs *pflag.FlagSet) {
	fs.String("first", "2130,2999", "first point to add, as x,y")
	fs.String("second", "8592,2572", "second point to add, as x,y")
	fs.Bool("enumerate", false, "print every point on the curve")
	fs.Uint64("max-enumerate", 10007, "refuse to enumerate points when p exceeds this")
	fs.Int("workers", 0, "enumeration workers (default GOMAXPROCS)")
	fs.Bool("verify", false, "check the sum against the arbitrary-precision reference")
	fs.String("log-level", "warn", "log level: debug|info|warn|error")
	fs.String("config", "", "optional config file (yaml, json or toml)")
}

func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v, nil
}

func loadConfig(v *viper.Viper) (*Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	first, err := parsePoint(v.GetString("first"))
	if err != nil {
		return nil, errors.Wrap(err, "--first")
	}
	second, err := parsePoint(v.GetString("second"))
	if err != nil {
		return nil, errors.Wrap(err, "--second")
	}

	return &Config{
		First:        first,
		Second:       second,
		Enumerate:    v.GetBool("enumerate"),
		MaxEnumerate: v.GetUint64("max-enumerate"),
		Workers:      v.GetInt("workers"),
		Verify:       v.GetBool("verify"),
		LogLevel:     v.GetString("log-level"),
	}, nil
}

// parsePoint reads "x,y".
func parsePoint(s string) (curves.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return curves.Point{}, errors.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return curves.Point{}, errors.Wrapf(err, "point %q: x", s)
	}
	y, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return curves.Point{}, errors.Wrapf(err, "point %q: y", s)
	}
	return curves.Point{X: x, Y: y}, nil
}
