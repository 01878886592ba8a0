package tgschema

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/brunobiangulo/tgschema/parser"
)

// DefaultSource is the published Bot API documentation page.
const DefaultSource = "https://core.telegram.org/bots/api"

// Config holds all configuration for an extraction run.
type Config struct {
	// Source is a URL or a filesystem path of the documentation page.
	Source string `json:"source" yaml:"source"`

	// Section boundaries. They must track the wording of the page headings.
	Types   parser.Selector `json:"types" yaml:"types"`
	Changes parser.Selector `json:"changes" yaml:"changes"`
	Methods parser.Selector `json:"methods" yaml:"methods"`

	// SkipMethods leaves Schema.Methods empty and does not require the
	// methods boundaries to be present.
	SkipMethods bool `json:"skip_methods" yaml:"skip_methods"`

	// HTTP retrieval
	HTTPTimeout time.Duration `json:"http_timeout" yaml:"http_timeout"`
	UserAgent   string        `json:"user_agent" yaml:"user_agent"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns a Config that reads the live documentation page.
func DefaultConfig() Config {
	return Config{
		Source:      DefaultSource,
		Types:       parser.TypesSelector,
		Changes:     parser.ChangesSelector,
		Methods:     parser.MethodsSelector,
		HTTPTimeout: 30 * time.Second,
		UserAgent:   "tgschema/1.0",
		LogLevel:    "info",
	}
}

// LoadConfig reads a JSON or YAML file (by extension) over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from TGSCHEMA_* environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("TGSCHEMA_SOURCE"); v != "" {
		c.Source = v
	}
	if v := getenv("TGSCHEMA_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("TGSCHEMA_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := getenv("TGSCHEMA_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTPTimeout = d
		} else {
			slog.Warn("config: ignoring invalid TGSCHEMA_HTTP_TIMEOUT", "value", v, "error", err)
		}
	}
}

// Validate checks that the configuration can drive an extraction.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("%w: source is empty", ErrInvalidConfig)
	}
	selectors := map[string]parser.Selector{"types": c.Types, "changes": c.Changes}
	if !c.SkipMethods {
		selectors["methods"] = c.Methods
	}
	for name, sel := range selectors {
		if err := sel.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
		}
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%w: http_timeout must not be negative", ErrInvalidConfig)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ParseLogLevel maps a level name to a slog.Level. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
