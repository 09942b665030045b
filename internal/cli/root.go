package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"bookmock/internal/config"
)

// flagValues mirrors the command-line flags. Only flags the user actually
// set override file and environment values.
type flagValues struct {
	configPath      string
	addr            string
	production      bool
	fixturesDir     string
	staticDir       string
	logLevel        string
	logFile         string
	shutdownTimeout time.Duration
	corsEnabled     bool
	corsOrigins     []string
}

// Execute runs the bookmock command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := buildRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "bookmock:", err)
		return 1
	}
	return 0
}

func buildRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var fv flagValues

	root := &cobra.Command{
		Use:           "bookmock",
		Short:         "Development server answering the book API with static JSON fixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &fv)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	bindFlags(root.PersistentFlags(), &fv)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the mock server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &fv)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, stderr)
		},
	}
	routesCmd := &cobra.Command{
		Use:     "routes",
		Short:   "Print the mock routes and the resolved base path",
		Example: "  bookmock routes\n  NODE_ENV=production bookmock routes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &fv)
			if err != nil {
				return err
			}
			return printRoutes(cmd.OutOrStdout(), cfg)
		},
	}
	root.AddCommand(serveCmd, routesCmd)
	return root
}

func bindFlags(pf *pflag.FlagSet, fv *flagValues) {
	pf.StringVar(&fv.configPath, "config", "", "Path to a .yaml/.yml/.json/.toml config file")
	pf.StringVar(&fv.addr, "addr", config.DefaultAddr, "HTTP listen address (env BOOKMOCK_ADDR)")
	pf.BoolVar(&fv.production, "production", false, "Production mode: base path ./ (env NODE_ENV=production)")
	pf.StringVar(&fv.fixturesDir, "fixtures-dir", "", "Directory overriding the embedded fixtures")
	pf.StringVar(&fv.staticDir, "static-dir", "", "Serve unmatched GET requests from this directory")
	pf.StringVar(&fv.logLevel, "log-level", config.DefaultLogLevel, "Log level: off|error|info|debug")
	pf.StringVar(&fv.logFile, "log-file", "", "Write JSON logs to this file with rotation")
	pf.DurationVar(&fv.shutdownTimeout, "shutdown-timeout", config.DefaultShutdownTimeout, "Grace period for in-flight requests on shutdown")
	pf.BoolVar(&fv.corsEnabled, "cors-enabled", false, "Enable CORS")
	pf.StringSliceVar(&fv.corsOrigins, "cors-origins", nil, "Allowed CORS origins (comma separated)")
}

// resolveConfig layers defaults < config file < environment < flags.
func resolveConfig(cmd *cobra.Command, fv *flagValues) (config.Config, error) {
	var cfg config.Config
	if fv.configPath != "" {
		loaded, err := config.Load(fv.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = fv.addr
	}
	if flags.Changed("production") {
		cfg.Production = fv.production
	}
	if flags.Changed("fixtures-dir") {
		cfg.FixturesDir = fv.fixturesDir
	}
	if flags.Changed("static-dir") {
		cfg.StaticDir = fv.staticDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = fv.logFile
	}
	if flags.Changed("shutdown-timeout") {
		cfg.ShutdownTimeout = fv.shutdownTimeout
	}
	if flags.Changed("cors-enabled") {
		cfg.CORS.Enabled = fv.corsEnabled
	}
	if flags.Changed("cors-origins") {
		cfg.CORS.Origins = fv.corsOrigins
	}
	config.ApplyDefaults(&cfg)
	return cfg, nil
}
