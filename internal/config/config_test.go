package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/zapponejosh/bahire-hasab/internal/i18n"
)

func TestLoad_Defaults(t *testing.T) {
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 10s", cfg.ShutdownTimeout)
	}
	if cfg.UsesDatabase() {
		t.Errorf("UsesDatabase() = true with DatabasePath %q, want false", cfg.DatabasePath)
	}
	if cfg.Language() != i18n.Amharic {
		t.Errorf("Language() = %v, want %v", cfg.Language(), i18n.Amharic)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	t.Setenv("PORT", "3000")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_PATH", "/data/holidays.db")
	t.Setenv("DEFAULT_LANGUAGE", "en")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.DatabasePath != "/data/holidays.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/holidays.db")
	}
	if !cfg.UsesDatabase() {
		t.Error("UsesDatabase() = false, want true")
	}
	if cfg.Language() != i18n.English {
		t.Errorf("Language() = %v, want %v", cfg.Language(), i18n.English)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 30s", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv()

	t.Setenv("PORT", "0")
	t.Setenv("DEFAULT_LANGUAGE", "fr")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}

	// Every problem is reported, not just the first.
	for _, want := range []string{"PORT", "DEFAULT_LANGUAGE"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Load() error = %q, want mention of %s", err, want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Port:            8080,
		Env:             EnvDevelopment,
		ShutdownTimeout: 10 * time.Second,
		DefaultLanguage: "am",
		LogLevel:        "info",
		LogFormat:       "text",
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid development config", func(*Config) {}, false},
		{"valid production config with database", func(c *Config) {
			c.Env = EnvProduction
			c.DatabasePath = "/data/holidays.db"
			c.LogFormat = "json"
		}, false},
		{"english default language", func(c *Config) { c.DefaultLanguage = "english" }, false},
		{"invalid port - too low", func(c *Config) { c.Port = 0 }, true},
		{"invalid port - too high", func(c *Config) { c.Port = 70000 }, true},
		{"invalid environment", func(c *Config) { c.Env = "invalid" }, true},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }, true},
		{"unsupported language", func(c *Config) { c.DefaultLanguage = "om" }, true},
		{"invalid log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"invalid log format", func(c *Config) { c.LogFormat = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{Env: EnvProduction}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}

	cfg.Env = EnvDevelopment
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"PORT", "ENV", "DATABASE_PATH", "DEFAULT_LANGUAGE", "SHUTDOWN_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
