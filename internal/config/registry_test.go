package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/termform/internal/formerr"
)

func TestGetConfigDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if dir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(dir, appName) {
		t.Errorf("GetConfigDir() = %v, should contain %v", dir, appName)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(dir, "AppData") && !strings.Contains(dir, "LOCALAPPDATA") {
			t.Errorf("Windows config dir should be in AppData, got %v", dir)
		}
	default:
		if !strings.Contains(dir, ".config") && os.Getenv("XDG_CONFIG_HOME") == "" {
			t.Errorf("Unix config dir should be in .config, got %v", dir)
		}
	}
}

func TestGetConfigDirOverride(t *testing.T) {
	want := t.TempDir()
	t.Setenv(EnvConfigDir, want)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if dir != want {
		t.Errorf("GetConfigDir() = %v, want %v", dir, want)
	}

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if path != filepath.Join(want, configFile) {
		t.Errorf("GetConfigPath() = %v", path)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("Version = %v, want 1", reg.Version)
	}
	if reg.Forms == nil {
		t.Error("Forms map should be initialized")
	}
	if diff := cmp.Diff(DefaultPreferences(), reg.Preferences); diff != "" {
		t.Errorf("Preferences mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryEnsureForm(t *testing.T) {
	reg := &Registry{Version: 1}

	first := reg.EnsureForm("ticket.yaml")
	if first == nil {
		t.Fatal("EnsureForm() returned nil")
	}
	if again := reg.EnsureForm("ticket.yaml"); again != first {
		t.Error("EnsureForm() should return same instance for same key")
	}
	if other := reg.EnsureForm("builtin:shipping"); other == first {
		t.Error("EnsureForm() should create new instance for different key")
	}
	if reg.GetForm("missing") != nil {
		t.Error("GetForm() should return nil for unknown key")
	}
}

func TestRegistryRecordSubmission(t *testing.T) {
	reg := NewRegistry()

	before := time.Now()
	reg.RecordSubmission("ticket.yaml", "Support Ticket", "out/ticket.json")
	reg.RecordSubmission("ticket.yaml", "Support Ticket", "out/ticket2.json")
	after := time.Now()

	rec := reg.GetForm("ticket.yaml")
	if rec == nil {
		t.Fatal("form record should exist after RecordSubmission()")
	}
	if rec.Submissions != 2 {
		t.Errorf("Submissions = %d, want 2", rec.Submissions)
	}
	if rec.LastOutput != "out/ticket2.json" {
		t.Errorf("LastOutput = %v", rec.LastOutput)
	}
	if rec.LastSubmitted.Before(before) || rec.LastSubmitted.After(after) {
		t.Errorf("LastSubmitted = %v, should be between %v and %v", rec.LastSubmitted, before, after)
	}

	reg.RecordCancellation("ticket.yaml", "Support Ticket")
	if rec.Cancellations != 1 || rec.Submissions != 2 {
		t.Errorf("after cancellation got %+v", rec)
	}
}

func TestPreferencesValidate(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"", false},
		{"debug", false},
		{"WARN", false},
		{"verbose", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			p := &Preferences{LogLevel: tt.level}
			if err := p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	t.Setenv(EnvConfigDir, filepath.Join(t.TempDir(), "nested"))

	reg := NewRegistry()
	reg.Preferences.Theme = "light"
	reg.Preferences.ConfirmOverwrite = false
	reg.RecordSubmission("ticket.yaml", "Support Ticket", "ticket.json")

	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	path, _ := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "# termform configuration file") {
		t.Errorf("missing header comment:\n%s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after Save()")
	}

	loaded, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}

	if loaded.Preferences.Theme != "light" || loaded.Preferences.ConfirmOverwrite {
		t.Errorf("Preferences = %+v", loaded.Preferences)
	}
	rec := loaded.GetForm("ticket.yaml")
	if rec == nil {
		t.Fatal("form record should exist in loaded registry")
	}
	if rec.Submissions != 1 || rec.Title != "Support Ticket" || rec.LastOutput != "ticket.json" {
		t.Errorf("loaded record = %+v", rec)
	}
}

func TestLoadRegistryMissingFile(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	reg, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}
	if diff := cmp.Diff(NewRegistry(), reg); diff != "" {
		t.Errorf("missing config should give defaults (-want +got):\n%s", diff)
	}
}

func TestParseRegistry(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    bool
		wantConfig bool
		wantTheme  string
	}{
		{
			name:      "minimal",
			input:     "version: 1\n",
			wantTheme: "dark",
		},
		{
			name:      "preferences",
			input:     "version: 1\npreferences:\n  theme: light\n  log_level: debug\n",
			wantTheme: "light",
		},
		{
			name:       "wrong version",
			input:      "version: 2\n",
			wantErr:    true,
			wantConfig: true,
		},
		{
			name:       "bad log level",
			input:      "version: 1\npreferences:\n  log_level: loud\n",
			wantErr:    true,
			wantConfig: true,
		},
		{
			name:    "invalid yaml",
			input:   "version: [1\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := parseRegistry([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRegistry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if formerr.IsConfigError(err) != tt.wantConfig {
					t.Errorf("IsConfigError(%v) = %v, want %v", err, !tt.wantConfig, tt.wantConfig)
				}
				return
			}
			if reg.Preferences.Theme != tt.wantTheme {
				t.Errorf("Theme = %q, want %q", reg.Preferences.Theme, tt.wantTheme)
			}
			if reg.Forms == nil {
				t.Error("Forms map should be initialized")
			}
		})
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	path, err := CreateDefaultConfig(false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	if _, err := CreateDefaultConfig(false); !errors.Is(err, ErrConfigExists) {
		t.Errorf("second CreateDefaultConfig() error = %v, want ErrConfigExists", err)
	}
	if _, err := CreateDefaultConfig(true); err != nil {
		t.Errorf("forced CreateDefaultConfig() error = %v", err)
	}
}

func TestSaveFailureIsIOError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigDir, filepath.Join(blocker, "sub"))

	err := NewRegistry().Save()
	if !formerr.IsIOError(err) {
		t.Errorf("Save() error = %v, want I/O error", err)
	}
}

func BenchmarkEnsureForm(b *testing.B) {
	reg := NewRegistry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.EnsureForm("ticket.yaml")
	}
}
