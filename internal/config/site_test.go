package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ConfigEnvVar, "")
	for _, key := range []string{
		"FITTERM_API_BASE_URL",
		"FITTERM_API_TIMEOUT",
		"FITTERM_LOG_FILE",
		"FITTERM_LOG_DEBUG",
		"FITTERM_UI_SCROLL_THRESHOLD",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadSiteConfigDefaults(t *testing.T) {
	isolate(t)

	config, err := LoadSiteConfig(nil)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.API.BaseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL '%s', got '%s'", DefaultBaseURL, config.API.BaseURL)
	}

	if config.API.Timeout != 0 {
		t.Errorf("Expected no timeout by default, got %v", config.API.Timeout)
	}

	if config.UI.ScrollThreshold != 50 {
		t.Errorf("Expected default scroll threshold 50, got %d", config.UI.ScrollThreshold)
	}

	if config.LoggingEnabled() {
		t.Error("Expected logging to be disabled by default")
	}
}

func TestLoadSiteConfigWithEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FITTERM_API_BASE_URL", "https://api.premrishi.fitness")
	t.Setenv("FITTERM_API_TIMEOUT", "15s")
	t.Setenv("FITTERM_LOG_DEBUG", "true")
	t.Setenv("FITTERM_UI_SCROLL_THRESHOLD", "80")

	config, err := LoadSiteConfig(nil)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.API.BaseURL != "https://api.premrishi.fitness" {
		t.Errorf("Unexpected base URL '%s'", config.API.BaseURL)
	}

	if config.API.Timeout != 15*time.Second {
		t.Errorf("Expected timeout 15s, got %v", config.API.Timeout)
	}

	if !config.Log.Debug {
		t.Error("Expected debug to be enabled")
	}

	if config.UI.ScrollThreshold != 80 {
		t.Errorf("Expected scroll threshold 80, got %d", config.UI.ScrollThreshold)
	}

	if config.LogPath() != "fitterm.log" {
		t.Errorf("Expected fallback log path, got '%s'", config.LogPath())
	}
}

func TestLoadSiteConfigFromFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[api]\nbase_url = \"https://file.example.com\"\ntimeout = \"3s\"\n\n[log]\nfile = \"/tmp/fitterm-test.log\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv(ConfigEnvVar, path)

	config, err := LoadSiteConfig(nil)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.API.BaseURL != "https://file.example.com" {
		t.Errorf("Unexpected base URL '%s'", config.API.BaseURL)
	}
	if config.API.Timeout != 3*time.Second {
		t.Errorf("Expected timeout 3s, got %v", config.API.Timeout)
	}
	if config.LogPath() != "/tmp/fitterm-test.log" {
		t.Errorf("Unexpected log path '%s'", config.LogPath())
	}
}

func TestLoadSiteConfigMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv(ConfigEnvVar, filepath.Join(t.TempDir(), "missing.toml"))

	if _, err := LoadSiteConfig(nil); err == nil {
		t.Error("Expected an error for a missing explicit config file")
	}
}

func TestLoadSiteConfigFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FITTERM_API_BASE_URL", "https://env.example.com")

	fs := pflag.NewFlagSet("fitterm", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--base-url", "https://flag.example.com", "--scroll-threshold", "5"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	config, err := LoadSiteConfig(fs)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.API.BaseURL != "https://flag.example.com" {
		t.Errorf("Expected flag to win, got '%s'", config.API.BaseURL)
	}
	if config.UI.ScrollThreshold != 5 {
		t.Errorf("Expected scroll threshold 5, got %d", config.UI.ScrollThreshold)
	}
}

func TestLoadSiteConfigUnchangedFlagsKeepEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FITTERM_API_BASE_URL", "https://env.example.com")

	fs := pflag.NewFlagSet("fitterm", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	config, err := LoadSiteConfig(fs)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.API.BaseURL != "https://env.example.com" {
		t.Errorf("Expected env to win over flag default, got '%s'", config.API.BaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  SiteConfig
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  SiteConfig{API: APIConfig{BaseURL: "https://example.com"}},
			wantErr: false,
		},
		{
			name:    "valid config with timeout",
			config:  SiteConfig{API: APIConfig{BaseURL: "http://localhost:8000", Timeout: 10 * time.Second}},
			wantErr: false,
		},
		{
			name:    "empty base URL",
			config:  SiteConfig{},
			wantErr: true,
		},
		{
			name:    "relative base URL",
			config:  SiteConfig{API: APIConfig{BaseURL: "/api"}},
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			config:  SiteConfig{API: APIConfig{BaseURL: "ftp://example.com"}},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			config:  SiteConfig{API: APIConfig{BaseURL: "https://example.com", Timeout: -time.Second}},
			wantErr: true,
		},
		{
			name:    "negative scroll threshold",
			config:  SiteConfig{API: APIConfig{BaseURL: "https://example.com"}, UI: UIConfig{ScrollThreshold: -1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToContactConfig(t *testing.T) {
	config := SiteConfig{API: APIConfig{BaseURL: " https://example.com ", Timeout: time.Second}}
	got := config.ToContactConfig()

	if got.BaseURL != "https://example.com" {
		t.Errorf("Expected trimmed base URL, got '%s'", got.BaseURL)
	}
	if got.Timeout != time.Second {
		t.Errorf("Expected timeout 1s, got %v", got.Timeout)
	}
}

func TestLegacyDebugVariableIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("FITTERM_DEBUG", "1")

	config, err := LoadSiteConfig(nil)
	if err != nil {
		t.Fatalf("LoadSiteConfig failed: %v", err)
	}
	if config.Log.Debug {
		t.Error("Expected only FITTERM_LOG_DEBUG to enable debug logging")
	}
	if config.LoggingEnabled() {
		t.Error("Expected logging to stay disabled")
	}
}
