package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if ADAPTEST_CONFIG is set
//  3. env (prefix ADAPTEST_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("ADAPTEST_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: ADAPTEST_DB_PATH, ADAPTEST_P_SLIP, ...
	// Map env keys like ADAPTEST_P_SLIP -> p_slip (flat keys).
	envProvider := env.Provider("ADAPTEST_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "adaptest_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.PSlip <= 0 || c.PSlip >= 1 {
		return fmt.Errorf("p_slip must be in (0, 1), got %g", c.PSlip)
	}
	if c.PGuess <= 0 || c.PGuess >= 1 {
		return fmt.Errorf("p_guess must be in (0, 1), got %g", c.PGuess)
	}
	if c.LearnCap <= 0 || c.LearnCap >= 1 {
		return fmt.Errorf("learn_cap must be in (0, 1), got %g", c.LearnCap)
	}
	if c.LearnGrowth < 1 {
		return fmt.Errorf("learn_growth must be >= 1, got %g", c.LearnGrowth)
	}
	if c.SEThreshold <= 0 {
		return fmt.Errorf("se_threshold must be > 0, got %g", c.SEThreshold)
	}
	if c.DiagnosticMaxPerSkill <= 0 {
		return fmt.Errorf("diagnostic_max_per_skill must be > 0, got %d", c.DiagnosticMaxPerSkill)
	}
	if c.MaxPerSkill <= 0 || c.MinPerSkill < 0 || c.MinPerSkill > c.MaxPerSkill {
		return fmt.Errorf("per-skill constraints invalid: min %d, max %d", c.MinPerSkill, c.MaxPerSkill)
	}
	return nil
}
