package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"go.firedancer.io/bignum/pkg/bigdecimal"
)

// Config is the optional ~/.bignumctl.yaml layout: default MathContext
// precision/rounding for `decimal` and default certainty for `prime`,
// following the teacher's gopkg.in/yaml.v3 config-loading convention.
type Config struct {
	Decimal struct {
		Precision uint32 `yaml:"precision"`
		Rounding  string `yaml:"rounding"`
	} `yaml:"decimal"`
	Prime struct {
		Certainty int `yaml:"certainty"`
	} `yaml:"prime"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bignumctl.yaml")
}

// loadConfig reads the yaml config at path, returning the built-in
// defaults (precision 10, HALF_UP, certainty 100) if the file does not
// exist; an unreadable or malformed existing file is an error.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Decimal.Precision = 10
	cfg.Decimal.Rounding = "HALF_UP"
	cfg.Prime.Certainty = 100

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("bignumctl: reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("bignumctl: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// parseRoundingMode maps a config/flag string to a bigdecimal.RoundingMode,
// accepting the spec.md §3 MathContext enum names case-insensitively.
func parseRoundingMode(s string) (bigdecimal.RoundingMode, error) {
	switch strings.ToUpper(s) {
	case "UP":
		return bigdecimal.Up, nil
	case "DOWN":
		return bigdecimal.Down, nil
	case "CEILING":
		return bigdecimal.Ceiling, nil
	case "FLOOR":
		return bigdecimal.Floor, nil
	case "HALF_UP", "HALFUP":
		return bigdecimal.HalfUp, nil
	case "HALF_DOWN", "HALFDOWN":
		return bigdecimal.HalfDown, nil
	case "HALF_EVEN", "HALFEVEN":
		return bigdecimal.HalfEven, nil
	case "UNNECESSARY":
		return bigdecimal.Unnecessary, nil
	default:
		return 0, fmt.Errorf("bignumctl: unknown rounding mode %q", s)
	}
}
