package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces environment overrides, e.g. BOOKMOCK_ADDR.
const EnvPrefix = "BOOKMOCK"

// envOverrides lists the variables read once at startup, all under
// EnvPrefix. NodeEnv is looked up as BOOKMOCK_NODE_ENV first and then as the
// bare NODE_ENV.
type envOverrides struct {
	Addr            string        `split_words:"true"`
	NodeEnv         string        `envconfig:"NODE_ENV"`
	FixturesDir     string        `split_words:"true"`
	StaticDir       string        `split_words:"true"`
	LogLevel        string        `split_words:"true"`
	LogFile         string        `split_words:"true"`
	ShutdownTimeout time.Duration `split_words:"true"`
	CORSEnabled     *bool         `split_words:"true"`
	CORSOrigins     []string      `split_words:"true"`
}

// ApplyEnv overlays environment variables onto cfg. Unset variables leave
// the corresponding field untouched.
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if env.Addr != "" {
		cfg.Addr = env.Addr
	}
	if IsProduction(env.NodeEnv) {
		cfg.Production = true
	}
	if env.FixturesDir != "" {
		cfg.FixturesDir = env.FixturesDir
	}
	if env.StaticDir != "" {
		cfg.StaticDir = env.StaticDir
	}
	if env.LogLevel != "" {
		cfg.LogLevel = env.LogLevel
	}
	if env.LogFile != "" {
		cfg.LogFile = env.LogFile
	}
	if env.ShutdownTimeout > 0 {
		cfg.ShutdownTimeout = env.ShutdownTimeout
	}
	if env.CORSEnabled != nil {
		cfg.CORS.Enabled = *env.CORSEnabled
	}
	if len(env.CORSOrigins) > 0 {
		cfg.CORS.Origins = env.CORSOrigins
	}
	return nil
}
