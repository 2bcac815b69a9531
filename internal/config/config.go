// Package config loads gameshelf settings from defaults, an optional file and GAMESHELF_* variables.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"

	"gameshelf/internal/artwork"
	"gameshelf/internal/logging"
	"gameshelf/internal/nav"
	"gameshelf/internal/output"
)

const EnvPrefix = "GAMESHELF"

// Config contains the settings shared by every command.
// Use DefaultConfig() to get sensible defaults, then override as needed.
type Config struct {
	CatalogPath    string `mapstructure:"catalog_path" yaml:"catalog_path"`       // YAML catalog file; empty uses the embedded one
	HotOrientation string `mapstructure:"hot_orientation" yaml:"hot_orientation"` // vertical or horizontal (default: horizontal)
	GatePopular    bool   `mapstructure:"gate_popular" yaml:"gate_popular"`       // show Popular Games on Home only (default: false)
	InitialTab     string `mapstructure:"initial_tab" yaml:"initial_tab"`         // tab selected on mount (default: Home)
	ArtMode        string `mapstructure:"art_mode" yaml:"art_mode"`               // label or placeholder (default: label)
	Mouse          bool   `mapstructure:"mouse" yaml:"mouse"`                     // enable pointer events in the TUI (default: true)

	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
}

// LogConfig mirrors logging.Options. File is rotated once it reaches MaxSize megabytes.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"` // text or json
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// ServerConfig names the MCP implementation.
type ServerConfig struct {
	Name    string `mapstructure:"name" yaml:"name"`
	Version string `mapstructure:"version" yaml:"version"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		HotOrientation: output.Horizontal.String(),
		InitialTab:     nav.Home.String(),
		ArtMode:        artwork.ModeLabel,
		Mouse:          true,
		Log:            LogConfig{Level: "info", Format: "text", MaxSize: 10, MaxBackups: 3, MaxAge: 7},
		Server:         ServerConfig{Name: "gameshelf", Version: "1.0.0"},
	}
}

// WithCatalogPath returns a copy of the config reading catalogs from path.
func (c Config) WithCatalogPath(path string) Config {
	c.CatalogPath = path
	return c
}

// WithInitialTab returns a copy of the config with a different initial tab.
func (c Config) WithInitialTab(tab nav.Tab) Config {
	c.InitialTab = tab.String()
	return c
}

// WithGatePopular returns a copy of the config with popular gating enabled/disabled.
func (c Config) WithGatePopular(enabled bool) Config {
	c.GatePopular = enabled
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if _, err := output.ParseOrientation(c.HotOrientation); err != nil {
		return &ConfigError{Field: "hot_orientation", Message: "must be vertical or horizontal"}
	}
	if _, err := nav.ParseTab(c.InitialTab); err != nil {
		return &ConfigError{Field: "initial_tab", Message: "must be Home, Search or Profile"}
	}
	if _, err := artwork.ForMode(c.ArtMode); err != nil {
		return &ConfigError{Field: "art_mode", Message: "must be label or placeholder"}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return &ConfigError{Field: "log.level", Message: "must be debug, info, warn or error"}
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return &ConfigError{Field: "log.format", Message: "must be text or json"}
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		return &ConfigError{Field: "log", Message: "rotation limits must not be negative"}
	}
	if c.Server.Name == "" {
		return &ConfigError{Field: "server.name", Message: "must not be empty"}
	}
	return nil
}

// Router returns the content router settings. Call Validate first.
func (c Config) Router() output.RouterConfig {
	o, _ := output.ParseOrientation(c.HotOrientation)
	return output.RouterConfig{HotOrientation: o, GatePopular: c.GatePopular}
}

// Tab returns the initial tab, Home when unset or invalid.
func (c Config) Tab() nav.Tab {
	t, _ := nav.ParseTab(c.InitialTab)
	return t
}

// Resolver returns the art resolver for ArtMode, LabelResolver when invalid.
func (c Config) Resolver() artwork.Resolver {
	r, err := artwork.ForMode(c.ArtMode)
	if err != nil {
		return artwork.LabelResolver{}
	}
	return r
}

// Logging returns the logger options. fallback receives records when no log file is set.
func (c Config) Logging(fallback io.Writer) logging.Options {
	json, _ := logging.ParseFormat(c.Log.Format)
	return logging.Options{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAge,
		Compress:   c.Log.Compress,
		Fallback:   fallback,
		JSON:       json,
	}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

// Load merges defaults, the optional file at path and the environment, then validates.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("catalog_path", d.CatalogPath)
	v.SetDefault("hot_orientation", d.HotOrientation)
	v.SetDefault("gate_popular", d.GatePopular)
	v.SetDefault("initial_tab", d.InitialTab)
	v.SetDefault("art_mode", d.ArtMode)
	v.SetDefault("mouse", d.Mouse)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)
	v.SetDefault("server.name", d.Server.Name)
	v.SetDefault("server.version", d.Server.Version)
}
