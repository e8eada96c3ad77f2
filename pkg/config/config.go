// Package config loads process settings for the qrgen commands from a JSON or
// YAML file plus environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-qrgen/pkg/history"
	"github.com/goliatone/go-qrgen/pkg/model"
)

// Environment variables read by ApplyEnv.
const (
	EnvAddr     = "QRGEN_ADDR"
	EnvLogLevel = "QRGEN_LOG_LEVEL"
)

// Config is the root settings document.
type Config struct {
	Render  model.RenderConfig `json:"render" yaml:"render"`
	Palette Palette            `json:"palette" yaml:"palette"`
	Server  Server             `json:"server" yaml:"server"`
	Logging Logging            `json:"logging" yaml:"logging"`
	History History            `json:"history" yaml:"history"`
}

// Palette names the go-theme manifest applied to the render colours. An empty
// theme keeps the configured colours.
type Palette struct {
	Theme   string `json:"theme" yaml:"theme"`
	Variant string `json:"variant" yaml:"variant"`
}

// Server configures the HTTP front-end.
type Server struct {
	Addr string `json:"addr" yaml:"addr"`
}

// Logging configures slog output.
type Logging struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// History configures the in-memory history.
type History struct {
	Capacity int `json:"capacity" yaml:"capacity"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Render:  model.DefaultRenderConfig(),
		Server:  Server{Addr: ":8080"},
		Logging: Logging{Level: "info", Format: "text"},
		History: History{Capacity: history.DefaultCapacity},
	}
}

// Load reads path and applies environment overrides. An empty path returns
// the defaults with overrides applied.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		cfg, err = Parse(data, path)
		if err != nil {
			return Config{}, err
		}
	}
	cfg = cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a JSON or YAML document over the defaults. JSON is tried
// first, then YAML.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Default(), nil
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err == nil {
		return cfg.normalise(), nil
	}

	cfg = Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	return cfg.normalise(), nil
}

// ApplyEnv overrides settings from the environment using lookup.
func (c Config) ApplyEnv(lookup func(string) (string, bool)) Config {
	if lookup == nil {
		return c
	}
	if value, ok := lookup(EnvAddr); ok && strings.TrimSpace(value) != "" {
		c.Server.Addr = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = strings.TrimSpace(value)
	}
	return c
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if err := c.Render.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("render: %w", err))
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging: unknown format %q", c.Logging.Format))
	}
	if c.History.Capacity < 1 {
		errs = append(errs, fmt.Errorf("history: capacity must be positive, got %d", c.History.Capacity))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l Logging) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

// NewLogger builds a slog logger writing to w. Unknown levels fall back to
// info.
func (l Logging) NewLogger(w io.Writer) *slog.Logger {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c Config) normalise() Config {
	c.Render = c.Render.WithDefaults()
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	c.Palette.Theme = strings.TrimSpace(c.Palette.Theme)
	c.Palette.Variant = strings.TrimSpace(c.Palette.Variant)
	return c
}
