package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SiteName != "Nothing Better Health" {
		t.Errorf("expected default site_name, got %q", cfg.SiteName)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.LogFormat != LogFormatConsole {
		t.Errorf("expected default log_format %q, got %q", LogFormatConsole, cfg.LogFormat)
	}
	if cfg.AlertDismissDelay != 300*time.Millisecond {
		t.Errorf("expected default alert_dismiss_delay 300ms, got %s", cfg.AlertDismissDelay)
	}
}

func TestDefaultConfigDoesNotAliasExcludes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AssetExclude[0] = "changed"
	if DefaultAssetExcludes[0] == "changed" {
		t.Error("DefaultConfig should copy DefaultAssetExcludes")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.nbh.yml")

	original := DefaultConfig()
	original.SiteName = "NBH Staging"
	original.Port = 9090
	original.LogFormat = LogFormatJSON
	original.AlertDismissDelay = 750 * time.Millisecond
	original.AssetInclude = []string{"images/**", "*.ico"}
	original.Server.ShutdownTimeout = 3 * time.Second

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.SiteName != original.SiteName {
		t.Errorf("site_name: got %q, want %q", loaded.SiteName, original.SiteName)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.LogFormat != original.LogFormat {
		t.Errorf("log_format: got %q, want %q", loaded.LogFormat, original.LogFormat)
	}
	if loaded.AlertDismissDelay != original.AlertDismissDelay {
		t.Errorf("alert_dismiss_delay: got %s, want %s", loaded.AlertDismissDelay, original.AlertDismissDelay)
	}
	if loaded.Server.ShutdownTimeout != original.Server.ShutdownTimeout {
		t.Errorf("server.shutdown_timeout: got %s, want %s", loaded.Server.ShutdownTimeout, original.Server.ShutdownTimeout)
	}
	if len(loaded.AssetInclude) != len(original.AssetInclude) {
		t.Fatalf("asset_include length: got %d, want %d", len(loaded.AssetInclude), len(original.AssetInclude))
	}
	for i, v := range loaded.AssetInclude {
		if v != original.AssetInclude[i] {
			t.Errorf("asset_include[%d]: got %q, want %q", i, v, original.AssetInclude[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("NBH_PORT", "3000")
	t.Setenv("NBH_LOG_FORMAT", "json")
	t.Setenv("NBH_ALERT_DISMISS_DELAY", "1s")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 3000 {
		t.Errorf("env override failed: got port %d, want 3000", loaded.Port)
	}
	if loaded.LogFormat != LogFormatJSON {
		t.Errorf("env override failed: got %q, want %q", loaded.LogFormat, LogFormatJSON)
	}
	if loaded.AlertDismissDelay != time.Second {
		t.Errorf("env override failed: got %s, want 1s", loaded.AlertDismissDelay)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty site name", func(c *Config) { c.SiteName = "" }, true},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"empty db path", func(c *Config) { c.DBPath = "" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"upper-case log level", func(c *Config) { c.LogLevel = "DEBUG" }, false},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"negative dismiss delay", func(c *Config) { c.AlertDismissDelay = -time.Second }, true},
		{"zero dismiss delay", func(c *Config) { c.AlertDismissDelay = 0 }, false},
		{"negative shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 4321
	if got := cfg.Addr(); got != ":4321" {
		t.Errorf("Addr() = %q, want %q", got, ":4321")
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"8080", false},
		{" 80 ", false},
		{"0", true},
		{"65536", true},
		{"http", true},
	}
	for _, tt := range tests {
		err := validatePort(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validatePort(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.png", []string{"**/*.png"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env, want string
	}{
		{"NBH_PORT", "port"},
		{"NBH_LOG_LEVEL", "log_level"},
		{"NBH_SERVER_READ_TIMEOUT", "server.read_timeout"},
		{"NBH_SERVER_SHUTDOWN_TIMEOUT", "server.shutdown_timeout"},
	}
	for _, tt := range tests {
		if got := envKey(tt.env); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestEnvOverridesServerTimeouts(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".nbh.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("NBH_SERVER_READ_TIMEOUT", "7s")
	t.Setenv("NBH_SERVER_SHUTDOWN_TIMEOUT", "2s")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.ReadTimeout != 7*time.Second {
		t.Errorf("read_timeout = %s, want 7s", loaded.Server.ReadTimeout)
	}
	if loaded.Server.ShutdownTimeout != 2*time.Second {
		t.Errorf("shutdown_timeout = %s, want 2s", loaded.Server.ShutdownTimeout)
	}
	if loaded.Server.WriteTimeout != DefaultConfig().Server.WriteTimeout {
		t.Errorf("write_timeout = %s, want default", loaded.Server.WriteTimeout)
	}
}
