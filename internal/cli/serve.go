package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookmock/internal/common/fsutil"
	"bookmock/internal/config"
	"bookmock/internal/fixtures"
	"bookmock/internal/httpapi"
)

// runServe listens on cfg.Addr and serves until ctx is canceled or SIGINT /
// SIGTERM arrives.
func runServe(ctx context.Context, cfg config.Config, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	return serve(ctx, ln, cfg, stderr)
}

// serve owns ln and closes it on return.
func serve(ctx context.Context, ln net.Listener, cfg config.Config, stderr io.Writer) error {
	logger, closer := newLogger(cfg, stderr)
	defer closer.Close()
	httpapi.SetLogger(logger)
	httpapi.SetLogLevel(cfg.LogLevel)

	routes, err := fixtures.Load(cfg.FixturesDir)
	if err != nil {
		_ = ln.Close()
		return fmt.Errorf("load fixtures: %w", err)
	}
	opts := httpapi.Options{
		Production: cfg.Production,
		CORS: httpapi.CORSOptions{
			Enabled:        cfg.CORS.Enabled,
			AllowedOrigins: cfg.CORS.Origins,
			AllowedMethods: cfg.CORS.Methods,
			AllowedHeaders: cfg.CORS.Headers,
		},
	}
	if cfg.StaticDir != "" {
		dir, err := fsutil.ResolveDir(cfg.StaticDir)
		if err != nil {
			_ = ln.Close()
			return fmt.Errorf("static dir: %w", err)
		}
		opts.StaticDir = dir
	}

	srv := &http.Server{
		Handler:           httpapi.NewMux(routes, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", ln.Addr().String()).
			Str("base_path", config.BasePath(cfg.Production)).
			Int("routes", len(routes)).
			Msg("bookmock listening")
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown")
		return err
	}
	logger.Info().Msg("bookmock stopped")
	return nil
}
