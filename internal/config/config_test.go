package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	t.Setenv(DirEnvVar, "")

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "troubleshooter") {
		t.Errorf("GetConfigDir() = %v, should contain 'troubleshooter'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnvVar, dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if got != dir {
		t.Errorf("GetConfigDir() = %v, want %v", got, dir)
	}

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", path)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Version != 1 {
		t.Errorf("New().Version = %v, want 1", cfg.Version)
	}
	if cfg.Preferences == nil {
		t.Fatal("New().Preferences should not be nil")
	}
	if !cfg.Preferences.AltScreen {
		t.Error("AltScreen should default to true")
	}
	if !cfg.Preferences.ShowProgress {
		t.Error("ShowProgress should default to true")
	}
	if cfg.Preferences.OutputFormat != FormatDetailed {
		t.Errorf("OutputFormat = %v, want %v", cfg.Preferences.OutputFormat, FormatDetailed)
	}
	if cfg.Preferences.LogLevel != "" {
		t.Errorf("LogLevel = %q, want silent", cfg.Preferences.LogLevel)
	}
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Preferences.OutputFormat != FormatDetailed {
		t.Errorf("missing file should give defaults, got %+v", cfg.Preferences)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := New()
	cfg.Preferences.AltScreen = false
	cfg.Preferences.OutputFormat = FormatJSON
	cfg.Preferences.LogLevel = "debug"
	cfg.Preferences.LogFile = "/tmp/ts.log"

	if err := cfg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# Troubleshooter Configuration File") {
		t.Error("saved file should start with the header comment")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after save")
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if *loaded.Preferences != *cfg.Preferences {
		t.Errorf("loaded preferences = %+v, want %+v", loaded.Preferences, cfg.Preferences)
	}
}

func TestLoadFileAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("preferences:\n  alt_screen: false\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Preferences.OutputFormat != FormatDetailed {
		t.Errorf("OutputFormat = %q, want default", cfg.Preferences.OutputFormat)
	}
	if cfg.Preferences.AltScreen {
		t.Error("explicit alt_screen: false should be kept")
	}
}

func TestLoadFileKeepsDefaultsForMissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"partial preferences", "preferences:\n  log_level: debug\n"},
		{"no preferences", "version: 1\n"},
		{"empty preferences", "preferences:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if !cfg.Preferences.AltScreen {
				t.Error("AltScreen should default to true")
			}
			if !cfg.Preferences.ShowProgress {
				t.Error("ShowProgress should default to true")
			}
			if cfg.Preferences.OutputFormat != FormatDetailed {
				t.Errorf("OutputFormat = %q, want %q", cfg.Preferences.OutputFormat, FormatDetailed)
			}
		})
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("preferences:\n  log_level: debug\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Preferences.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.Preferences.LogLevel)
	}
}

func TestLoadFileRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "preferences: [unterminated"},
		{"unknown format", "preferences:\n  output_format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile() should fail")
			}
		})
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Setenv(DirEnvVar, t.TempDir())

	path, err := CreateDefaultConfig(false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}

	if _, err := CreateDefaultConfig(false); err == nil {
		t.Error("second CreateDefaultConfig(false) should refuse to overwrite")
	}
	if _, err := CreateDefaultConfig(true); err != nil {
		t.Errorf("CreateDefaultConfig(true) error = %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if cfg.Preferences.OutputFormat != FormatDetailed {
		t.Errorf("reloaded config from %s = %+v", path, cfg.Preferences)
	}
}

func TestIsValidFormat(t *testing.T) {
	for _, f := range OutputFormats {
		if !IsValidFormat(f) {
			t.Errorf("IsValidFormat(%q) = false", f)
		}
	}
	if IsValidFormat("xml") {
		t.Error("IsValidFormat(xml) = true")
	}
}
