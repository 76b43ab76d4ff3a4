// Package config loads server configuration documents and turns them
// into compiled option sets.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the tool-level knobs of the server process itself, as
// opposed to the configuration document it compiles. Precedence is
// CLI flags > environment > settings file > defaults.
type Settings struct {
	ConfigFile  string
	LogLevel    string
	LogFormat   string
	WatchConfig bool
}

// DefaultSettings returns process settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ConfigFile:  "mongooseim.toml",
		LogLevel:    "info",
		LogFormat:   "text",
		WatchConfig: false,
	}
}

// LoadSettings resolves process settings through viper. Environment
// variables use the MIM_ prefix, e.g. MIM_LOG_LEVEL.
func LoadSettings(settingsPath string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("config_file", "mongooseim.toml")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("watch_config", false)

	v.SetEnvPrefix("MIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if settingsPath != "" {
		v.SetConfigFile(settingsPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	s := &Settings{
		ConfigFile:  v.GetString("config_file"),
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		WatchConfig: v.GetBool("watch_config"),
	}

	if err := validateSettings(s); err != nil {
		return nil, err
	}

	return s, nil
}

func validateSettings(s *Settings) error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", s.LogLevel)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", s.LogFormat)
	}
	if s.ConfigFile == "" {
		return fmt.Errorf("config_file must not be empty")
	}
	return nil
}
