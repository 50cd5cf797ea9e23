package logger

import (
	"testing"

	"github.com/mironco/blockbuilder/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LoggingConfig
		want zapcore.Level
	}{
		{"console production", config.LoggingConfig{Level: "warn", Format: "console"}, zapcore.WarnLevel},
		{"json production", config.LoggingConfig{Level: "debug", Format: "json"}, zapcore.DebugLevel},
		{"development", config.LoggingConfig{Level: "bogus", Development: true}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if !l.Core().Enabled(tt.want) {
				t.Errorf("level %v should be enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && l.Core().Enabled(tt.want-1) {
				t.Errorf("level %v should be disabled", tt.want-1)
			}
		})
	}
}

func TestVec3Field(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	zap.New(core).Info("box placed", Vec3("at", 1, 2, 3))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got, ok := entries[0].ContextMap()["at"].([]interface{})
	if !ok || len(got) != 3 {
		t.Fatalf("unexpected field %#v", entries[0].ContextMap()["at"])
	}
	if got[0] != float32(1) || got[2] != float32(3) {
		t.Errorf("field = %v", got)
	}
}
