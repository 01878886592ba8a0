package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/brunobiangulo/tgschema"
	"github.com/brunobiangulo/tgschema/schema"
)

var (
	configPath string
	logLevel   string
	userAgent  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tgschema",
		Short: "Extract a typed schema from the Telegram Bot API documentation",
		Long: `tgschema reads the Telegram Bot API HTML documentation page and extracts
its recent changes, object types and methods into a typed schema.

The source is a URL or a local file; it defaults to ` + tgschema.DefaultSource + `.
Settings are read from --config (JSON or YAML), then TGSCHEMA_* environment
variables, then command-line flags.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", "User-Agent sent when fetching the page")

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers the config file, the environment and the flags, in that
// order, and installs the default logger.
func loadConfig(args []string, logTo io.Writer, jsonLogs bool) (tgschema.Config, error) {
	cfg := tgschema.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = tgschema.LoadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv(os.Getenv)

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if userAgent != "" {
		cfg.UserAgent = userAgent
	}
	if len(args) > 0 {
		cfg.Source = args[0]
	}

	level, err := tgschema.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return cfg, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if jsonLogs {
		slog.SetDefault(slog.New(slog.NewJSONHandler(logTo, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(logTo, opts)))
	}
	return cfg, nil
}

// extract runs one extraction of cfg.Source.
func extract(ctx context.Context, cfg tgschema.Config) (*schema.Schema, error) {
	e, err := tgschema.New(cfg)
	if err != nil {
		return nil, err
	}
	return e.Extract(ctx, "")
}
