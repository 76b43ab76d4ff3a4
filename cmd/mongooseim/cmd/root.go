package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hateftavakkoli/MongooseIM/internal/core/config"
)

var (
	settingsFile string
	configFile   string
	logLevel     string
	logFormat    string
	watchConfig  bool
)

var rootCmd = &cobra.Command{
	Use:   "mongooseim",
	Short: "MongooseIM configuration toolchain",
	Long:  `Compiles multi-tenant messaging server configuration documents into runtime option sets.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.LoadSettings(settingsFile)
		if err != nil {
			return err
		}
		applySettings(s, cmd.Root().PersistentFlags().Changed)
		setupLogging()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchConfig {
			return runWatch(cmd, args)
		}
		return runCheck(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "process settings file (optional; environment uses the MIM_ prefix)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "mongooseim.toml", "configuration document path (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
}

// applySettings fills in every knob the operator did not set explicitly
// on the command line from the resolved process settings, keeping the
// flags > environment > settings file > defaults precedence.
func applySettings(s *config.Settings, changed func(string) bool) {
	if !changed("config") {
		configFile = s.ConfigFile
	}
	if !changed("log-level") {
		logLevel = s.LogLevel
	}
	if !changed("log-format") {
		logFormat = s.LogFormat
	}
	watchConfig = s.WatchConfig
}

func setupLogging() {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if logFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func Execute() error {
	return rootCmd.Execute()
}
