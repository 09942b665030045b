package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the dev server.
// Zero values mean "unspecified" and are replaced by Defaults/ApplyDefaults.
type Config struct {
	Addr            string        `json:"addr" yaml:"addr" toml:"addr"`
	Production      bool          `json:"production" yaml:"production" toml:"production"`
	FixturesDir     string        `json:"fixtures_dir" yaml:"fixtures_dir" toml:"fixtures_dir"`
	StaticDir       string        `json:"static_dir" yaml:"static_dir" toml:"static_dir"`
	LogLevel        string        `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFile         string        `json:"log_file" yaml:"log_file" toml:"log_file"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
	CORS            CORS          `json:"cors" yaml:"cors" toml:"cors"`
}

// CORS is opt-in; when Enabled is false no CORS middleware is installed.
type CORS struct {
	Enabled bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	Origins []string `json:"origins" yaml:"origins" toml:"origins"`
	Methods []string `json:"methods" yaml:"methods" toml:"methods"`
	Headers []string `json:"headers" yaml:"headers" toml:"headers"`
}

const (
	DefaultAddr            = ":8080"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 5 * time.Second
)

// Defaults returns a Config with every field set to its default.
func Defaults() Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return cfg
}

// ApplyDefaults fills unspecified fields in place.
func ApplyDefaults(cfg *Config) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	if len(cfg.CORS.Methods) == 0 {
		cfg.CORS.Methods = []string{"GET", "OPTIONS"}
	}
	if len(cfg.CORS.Headers) == 0 {
		cfg.CORS.Headers = []string{"Accept", "Content-Type", "X-Request-Id"}
	}
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".json":
		var raw fileJSON
		if err := json.Unmarshal(b, &raw); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
		if cfg, err = raw.config(); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".toml":
		var raw fileTOML
		if err := toml.Unmarshal(b, &raw); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
		if cfg, err = raw.config(); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// fileJSON mirrors Config but keeps shutdown_timeout as a duration string
// ("10s"), since encoding/json only understands integer nanoseconds.
type fileJSON struct {
	Config
	ShutdownTimeout string `json:"shutdown_timeout"`
}

func (f fileJSON) config() (Config, error) {
	return withTimeout(f.Config, f.ShutdownTimeout)
}

// fileTOML is the TOML counterpart of fileJSON.
type fileTOML struct {
	Addr            string `toml:"addr"`
	Production      bool   `toml:"production"`
	FixturesDir     string `toml:"fixtures_dir"`
	StaticDir       string `toml:"static_dir"`
	LogLevel        string `toml:"log_level"`
	LogFile         string `toml:"log_file"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
	CORS            CORS   `toml:"cors"`
}

func (f fileTOML) config() (Config, error) {
	return withTimeout(Config{
		Addr:        f.Addr,
		Production:  f.Production,
		FixturesDir: f.FixturesDir,
		StaticDir:   f.StaticDir,
		LogLevel:    f.LogLevel,
		LogFile:     f.LogFile,
		CORS:        f.CORS,
	}, f.ShutdownTimeout)
}

func withTimeout(cfg Config, s string) (Config, error) {
	if s == "" {
		return cfg, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return cfg, fmt.Errorf("shutdown_timeout: %w", err)
	}
	cfg.ShutdownTimeout = d
	return cfg, nil
}
