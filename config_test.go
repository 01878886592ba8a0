package tgschema

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultSource, cfg.Source)
	assert.Equal(t, "Available types", cfg.Types.StartText)
	assert.Equal(t, "InputFile", cfg.Types.StopText)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "tgschema.yaml", `
source: testdata/botapi.html
skip_methods: true
log_level: debug
types:
  start_tag: h3
  start_text: Available types
  stop_tag: h4
  stop_text: Sticker
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "testdata/botapi.html", cfg.Source)
	assert.True(t, cfg.SkipMethods)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Sticker", cfg.Types.StopText)

	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultConfig().Changes, cfg.Changes)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeConfig(t, "tgschema.json", `{"source": "https://example.org/api", "user_agent": "probe/2"}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/api", cfg.Source)
	assert.Equal(t, "probe/2", cfg.UserAgent)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeConfig(t, "broken.json", `{"source": `)
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TGSCHEMA_SOURCE":       "/tmp/api.html",
		"TGSCHEMA_LOG_LEVEL":    "warn",
		"TGSCHEMA_USER_AGENT":   "ci",
		"TGSCHEMA_HTTP_TIMEOUT": "5s",
	}
	cfg := DefaultConfig()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "/tmp/api.html", cfg.Source)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "ci", cfg.UserAgent)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestApplyEnvInvalidTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyEnv(func(k string) string {
		if k == "TGSCHEMA_HTTP_TIMEOUT" {
			return "soon"
		}
		return ""
	})
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, DefaultSource, cfg.Source)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"empty source", func(c *Config) { c.Source = "  " }, false},
		{"empty types tag", func(c *Config) { c.Types.StartTag = "" }, false},
		{"empty methods text", func(c *Config) { c.Methods.StopText = "" }, false},
		{"methods ignored when skipped", func(c *Config) {
			c.SkipMethods = true
			c.Methods = Config{}.Methods
		}, true},
		{"negative timeout", func(c *Config) { c.HTTPTimeout = -time.Second }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("trace")
	assert.Error(t, err)
}
