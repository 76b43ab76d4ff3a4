package cmd

import (
	"testing"

	"github.com/hateftavakkoli/MongooseIM/internal/core/config"
)

func TestApplySettings(t *testing.T) {
	reset := func() {
		configFile, logLevel, logFormat, watchConfig = "flag.toml", "debug", "json", false
	}
	s := &config.Settings{
		ConfigFile:  "resolved.toml",
		LogLevel:    "error",
		LogFormat:   "text",
		WatchConfig: true,
	}

	// no flags set explicitly: every knob comes from the settings
	reset()
	applySettings(s, func(string) bool { return false })
	if configFile != "resolved.toml" || logLevel != "error" || logFormat != "text" {
		t.Errorf("resolved = %q/%q/%q, want the settings values", configFile, logLevel, logFormat)
	}
	if !watchConfig {
		t.Errorf("watchConfig = false, want the settings value")
	}

	// an explicit flag wins over the resolved settings
	reset()
	applySettings(s, func(name string) bool { return name == "config" })
	if configFile != "flag.toml" {
		t.Errorf("configFile = %q, want the explicit flag value", configFile)
	}
	if logLevel != "error" || logFormat != "text" {
		t.Errorf("logging = %q/%q, want the settings values", logLevel, logFormat)
	}
}
