// Package config defines engine configuration and its loading order:
// built-in defaults, then an optional YAML file, then environment variables.
package config

// Config contains process configuration for the adaptest CLI and engine.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DBPath is the SQLite database file. Empty means the default
	// XDG data path.
	DBPath string `koanf:"db_path"`

	// Knowledge-tracing parameters.
	PSlip       float64 `koanf:"p_slip"`
	PGuess      float64 `koanf:"p_guess"`
	FastFactor  float64 `koanf:"fast_factor"`
	LearnGrowth float64 `koanf:"learn_growth"`
	LearnCap    float64 `koanf:"learn_cap"`

	// Practice-session selection constraints.
	MaxPerSkill int `koanf:"max_per_skill"`
	MinPerSkill int `koanf:"min_per_skill"`

	// Diagnostic completion thresholds.
	SEThreshold           float64 `koanf:"se_threshold"`
	DiagnosticMaxPerSkill int     `koanf:"diagnostic_max_per_skill"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		PSlip:                 0.10,
		PGuess:                0.25,
		FastFactor:            0.7,
		LearnGrowth:           1.1,
		LearnCap:              0.15,
		MaxPerSkill:           10,
		MinPerSkill:           2,
		SEThreshold:           0.3,
		DiagnosticMaxPerSkill: 5,
	}
}
