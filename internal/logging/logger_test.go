package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Cleanup(func() { SetLogger(nil) })

	require.NoError(t, InitializeFromEnv())
	assert.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel), "expected nop logger")
}

func TestInitializeWritesToFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	path := filepath.Join(t.TempDir(), "aion.log")

	require.NoError(t, Initialize(Options{Level: "debug", File: path}))
	Named("wizard").Debug("Step transition", zap.String("to", "provider"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "wizard")
	assert.Contains(t, string(data), "Step transition")
	assert.Contains(t, string(data), "DEBUG")
	assert.NotContains(t, string(data), "\x1b[", "file output must not be colored")
}

func TestInitializeFromEnvFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(LogLevelEnvVar, "warn")
	t.Setenv(LogFileEnvVar, path)

	require.NoError(t, InitializeFromEnv())
	Info("dropped")
	Warn("kept")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)

	LogStepTransition(l, "language", "provider")
	LogConfigEvent(l, "/tmp/config.yaml", "saved", zap.String("language", "en"))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "Step transition", entries[0].Message)
	assert.Equal(t, "language", entries[0].ContextMap()["from"])
	assert.Equal(t, "provider", entries[0].ContextMap()["to"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "saved", entries[1].ContextMap()["event"])
	assert.Equal(t, "en", entries[1].ContextMap()["language"])
}

func TestSetLoggerNil(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	SetLogger(nil)
	assert.NotNil(t, GetLogger())
}
