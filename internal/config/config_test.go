package config

import (
	"tacgen/pkg/parser/codegen"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "Defaults",
			env:  map[string]string{},
			want: Config{Limits: codegen.DefaultLimits()},
		},
		{
			name: "Overrides",
			env: map[string]string{
				"TACGEN_MAX_INSTRUCTIONS": "50",
				"TACGEN_MAX_RECORDING":    "128",
				"TACGEN_LOG_LEVEL":        "debug",
				"NO_COLOR":                "1",
			},
			want: Config{
				Limits:   codegen.Limits{MaxInstructions: 50, MaxRecording: 128},
				LogLevel: "debug",
				NoColor:  true,
			},
		},
		{
			name: "InvalidCeilings",
			env: map[string]string{
				"TACGEN_MAX_INSTRUCTIONS": "many",
				"TACGEN_MAX_RECORDING":    "-3",
			},
			want: Config{Limits: codegen.DefaultLimits()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"TACGEN_MAX_INSTRUCTIONS", "TACGEN_MAX_RECORDING", "TACGEN_LOG_LEVEL", "NO_COLOR"} {
				t.Setenv(k, tt.env[k])
			}

			if diff := cmp.Diff(tt.want, Load()); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadSeesLaterChanges(t *testing.T) {
	t.Setenv("TACGEN_MAX_INSTRUCTIONS", "")
	if got := Load().Limits.MaxInstructions; got != codegen.DefaultLimits().MaxInstructions {
		t.Fatalf("first load: expected the default, got %d", got)
	}

	t.Setenv("TACGEN_MAX_INSTRUCTIONS", "77")
	if got := Load().Limits.MaxInstructions; got != 77 {
		t.Errorf("second load: expected 77, got %d", got)
	}
}
