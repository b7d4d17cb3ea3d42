package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"premrishi/fitterm/internal/contact"
	"premrishi/fitterm/internal/navigation"
)

const (
	EnvPrefix      = "FITTERM"
	ConfigEnvVar   = "FITTERM_CONFIG"
	DefaultBaseURL = "http://localhost:8000"
)

type SiteConfig struct {
	API APIConfig `mapstructure:"api"`
	Log LogConfig `mapstructure:"log"`
	UI  UIConfig  `mapstructure:"ui"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

type UIConfig struct {
	ScrollThreshold int `mapstructure:"scroll_threshold"`
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"base-url":         "api.base_url",
	"timeout":          "api.timeout",
	"log-file":         "log.file",
	"debug":            "log.debug",
	"scroll-threshold": "ui.scroll_threshold",
}

// RegisterFlags adds the flags LoadSiteConfig understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a TOML config file")
	fs.String("base-url", DefaultBaseURL, "base URL of the contact API")
	fs.Duration("timeout", 0, "contact request timeout (0 disables it)")
	fs.String("log-file", "", "write logs to this file")
	fs.Bool("debug", false, "enable debug logging")
	fs.Int("scroll-threshold", navigation.DefaultScrollThreshold, "scroll offset in pixels before the nav bar turns solid")
}

// LoadSiteConfig resolves configuration from defaults, an optional TOML
// file, FITTERM_* environment variables and flags, in increasing priority.
// flags may be nil.
func LoadSiteConfig(flags *pflag.FlagSet) (*SiteConfig, error) {
	v := viper.New()

	defaults := GetDefaultConfig()
	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("api.timeout", defaults.API.Timeout)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.debug", defaults.Log.Debug)
	v.SetDefault("ui.scroll_threshold", defaults.UI.ScrollThreshold)

	v.SetConfigType("toml")
	explicitPath := os.Getenv(ConfigEnvVar)
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			explicitPath = f.Value.String()
		}
	}
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "fitterm"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config SiteConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *SiteConfig) Validate() error {
	base := strings.TrimSpace(c.API.BaseURL)
	if base == "" {
		return fmt.Errorf("api base URL must not be empty")
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("invalid api base URL %q: %w", base, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("invalid api base URL %q (must be an absolute http or https URL)", base)
	}

	if c.API.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got: %v", c.API.Timeout)
	}

	if c.UI.ScrollThreshold < 0 {
		return fmt.Errorf("scroll threshold must be non-negative, got: %d", c.UI.ScrollThreshold)
	}

	return nil
}

func (c *SiteConfig) ToContactConfig() contact.Config {
	return contact.Config{
		BaseURL: strings.TrimSpace(c.API.BaseURL),
		Timeout: c.API.Timeout,
	}
}

// LoggingEnabled reports whether logs should be written anywhere.
func (c *SiteConfig) LoggingEnabled() bool {
	return c.Log.File != "" || c.Log.Debug
}

// LogPath returns the log destination, defaulting to fitterm.log when only
// debug is enabled.
func (c *SiteConfig) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return "fitterm.log"
}

func GetDefaultConfig() *SiteConfig {
	return &SiteConfig{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: 0,
		},
		UI: UIConfig{
			ScrollThreshold: navigation.DefaultScrollThreshold,
		},
	}
}
