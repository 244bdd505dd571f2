package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Setenv(LogFileEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is configured")
	}
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	t.Setenv(LogFileEnvVar, "")
	defer SetLogger(nil)

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitializeWritesToFile(t *testing.T) {
	path := t.TempDir() + "/troubleshooter.log"
	defer SetLogger(nil)

	if err := InitializeWithOptions(Options{Level: "info", OutputPath: path}); err != nil {
		t.Fatalf("InitializeWithOptions() error = %v", err)
	}
	Info("hello")
	Sync()
}

func TestSessionHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	id := NewSessionID()
	if len(id) != 36 {
		t.Fatalf("NewSessionID() = %q, want a UUID", id)
	}

	LogSessionStart(id, "wizard")
	LogTransition(id, "select_device", "mobile", "-/-/-", "mobile/-/-")
	LogRejected(id, "select_problem", "battery", errors.New("Out Of Order: select an operating system before a problem"))
	LogSessionEnd(id, false)

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("got %d log entries, want 4", len(entries))
	}

	if entries[1].Level != zapcore.DebugLevel || entries[1].Message != "Selection changed" {
		t.Errorf("transition entry = %v %q", entries[1].Level, entries[1].Message)
	}
	if got := entries[1].ContextMap()["after"]; got != "mobile/-/-" {
		t.Errorf("after field = %v", got)
	}
	if entries[2].Level != zapcore.WarnLevel {
		t.Errorf("rejected entry level = %v, want warn", entries[2].Level)
	}
	if got := entries[0].ContextMap()["session_id"]; got != id {
		t.Errorf("session_id = %v, want %v", got, id)
	}
}
