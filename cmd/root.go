package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/marcus/picksync/internal/config"
	"github.com/marcus/picksync/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version    string
	configPath string
	logLevel   string
	cfg        *config.Config
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "picksync",
	Short: "Sync Salesforce picklist labels and API names from spreadsheets",
	Long: `picksync - reconcile picklist value labels and API names in Salesforce
metadata XML against mapping spreadsheets.

Each tool backs up, loads mappings, updates the matching <value> entries,
strips XML namespaces and writes the result atomically.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		cfg = loaded
		setupLogging(cfg)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error")

	rootCmd.AddGroup(
		&cobra.Group{ID: "tools", Title: "Picklist Tools:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)
	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")
}

// currentConfig returns the loaded config, or defaults when commands run
// without the root pre-run hook (tests).
func currentConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

func setupLogging(c *config.Config) {
	var level slog.Level
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(c.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// lenientFlagNames lets --excel_dir and --excel-dir name the same flag.
func lenientFlagNames(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
