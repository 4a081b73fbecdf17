package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected nop logger when no level is set")
	}
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	if err := Initialize("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !GetLogger().Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("warn should be enabled at warn level")
	}
	t.Cleanup(func() { _ = Initialize("") })
}
