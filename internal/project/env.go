package project

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides are manifest settings taken from the environment.
// Empty values leave the manifest untouched.
type EnvOverrides struct {
	Cast       string `env:"PRONOUNER_CAST"`
	Dictionary string `env:"PRONOUNER_DICTIONARY"`
	Dialogs    string `env:"PRONOUNER_DIALOGS"`
	Out        string `env:"PRONOUNER_OUT"`
	Jobs       int    `env:"PRONOUNER_JOBS"`
	Normalize  string `env:"PRONOUNER_NORMALIZE"`
	NoCache    bool   `env:"PRONOUNER_NO_CACHE"`
	CacheDir   string `env:"PRONOUNER_CACHE_DIR"`
}

// ParseEnv reads PRONOUNER_* variables.
func ParseEnv() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return EnvOverrides{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// ApplyEnv overlays o on the manifest. Paths from the environment are taken
// relative to the working directory, not the manifest.
func (m *Manifest) ApplyEnv(o EnvOverrides) error {
	cfg := m.Config
	if o.Cast != "" {
		cfg.Sources.Cast = absOr(o.Cast)
	}
	if o.Dictionary != "" {
		cfg.Sources.Dictionary = absOr(o.Dictionary)
	}
	if o.Dialogs != "" {
		cfg.Sources.Dialogs = absOr(o.Dialogs)
	}
	if o.Out != "" {
		cfg.Build.Out = absOr(o.Out)
	}
	if o.Jobs != 0 {
		cfg.Build.Jobs = o.Jobs
	}
	if o.Normalize != "" {
		cfg.Build.Normalize = o.Normalize
	}
	if o.NoCache {
		off := false
		cfg.Build.Cache = &off
	}
	if o.CacheDir != "" {
		cfg.Build.CacheDir = absOr(o.CacheDir)
	}
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	m.Config = cfg
	return nil
}

func absOr(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
