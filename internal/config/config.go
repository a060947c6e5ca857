package config

import (
	"tacgen/pkg/parser/codegen"

	"github.com/xyproto/env/v2"
)

// Config holds the settings read from the environment
type Config struct {
	Limits   codegen.Limits // resource ceilings of one compilation
	LogLevel string         // forced log level, empty for the flag-driven default
	NoColor  bool           // disable colored output
}

// Load reads the configuration, falling back to codegen.DefaultLimits for unset or invalid ceilings
func Load() Config {
	// the environment is cached on first use; pick up changes made since then
	env.Load()

	def := codegen.DefaultLimits()

	cfg := Config{
		Limits: codegen.Limits{
			MaxInstructions: env.Int("TACGEN_MAX_INSTRUCTIONS", def.MaxInstructions),
			MaxRecording:    env.Int("TACGEN_MAX_RECORDING", def.MaxRecording),
		},
		LogLevel: env.Str("TACGEN_LOG_LEVEL"),
		NoColor:  env.Bool("NO_COLOR"),
	}

	if cfg.Limits.MaxInstructions < 1 {
		cfg.Limits.MaxInstructions = def.MaxInstructions
	}
	if cfg.Limits.MaxRecording < 1 {
		cfg.Limits.MaxRecording = def.MaxRecording
	}

	return cfg
}
