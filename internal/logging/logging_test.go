package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewRespectsVerbose(t *testing.T) {
	quiet, err := New(false)
	if err != nil {
		t.Fatalf("New(false): %v", err)
	}
	if quiet.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug must be disabled without verbose")
	}
	if !quiet.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("warn must be enabled")
	}

	verbose, err := New(true)
	if err != nil {
		t.Fatalf("New(true): %v", err)
	}
	if !verbose.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug must be enabled with verbose")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected no-op logger")
	}
}
