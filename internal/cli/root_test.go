package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func parse(t *testing.T, args ...string) (*cobra.Command, *flagValues) {
	t.Helper()
	fv := &flagValues{}
	cmd := &cobra.Command{Use: "test"}
	bindFlags(cmd.PersistentFlags(), fv)
	if err := cmd.ParseFlags(args); err != nil { t.Fatalf("parse flags: %v", err) }
	return cmd, fv
}

func TestResolveConfig_Defaults(t *testing.T) {
	cmd, fv := parse(t)
	cfg, err := resolveConfig(cmd, fv)
	if err != nil { t.Fatalf("resolve: %v", err) }
	if cfg.Addr != ":8080" || cfg.Production || cfg.LogLevel != "info" || cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestResolveConfig_Precedence(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "bookmock.yaml")
	if err := os.WriteFile(p, []byte("addr: :7000\nlog_level: debug\nfixtures_dir: /from/file\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("BOOKMOCK_LOG_LEVEL", "error")

	cmd, fv := parse(t, "--config", p, "--addr", ":7001")
	cfg, err := resolveConfig(cmd, fv)
	if err != nil { t.Fatalf("resolve: %v", err) }
	if cfg.Addr != ":7001" { t.Fatalf("flag should win: addr=%q", cfg.Addr) }
	if cfg.LogLevel != "error" { t.Fatalf("env should beat file: log_level=%q", cfg.LogLevel) }
	if cfg.FixturesDir != "/from/file" { t.Fatalf("file value lost: fixtures_dir=%q", cfg.FixturesDir) }
}

func TestResolveConfig_ProductionSources(t *testing.T) {
	cmd, fv := parse(t, "--production")
	cfg, err := resolveConfig(cmd, fv)
	if err != nil { t.Fatalf("resolve: %v", err) }
	if !cfg.Production { t.Fatalf("--production ignored") }

	t.Setenv("NODE_ENV", "production")
	cmd, fv = parse(t)
	if cfg, err = resolveConfig(cmd, fv); err != nil { t.Fatalf("resolve: %v", err) }
	if !cfg.Production { t.Fatalf("NODE_ENV=production ignored") }

	cmd, fv = parse(t, "--production=false")
	if cfg, err = resolveConfig(cmd, fv); err != nil { t.Fatalf("resolve: %v", err) }
	if cfg.Production { t.Fatalf("explicit --production=false should override NODE_ENV") }
}

func TestResolveConfig_BadConfigFile(t *testing.T) {
	cmd, fv := parse(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	if _, err := resolveConfig(cmd, fv); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestExecute_Routes(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Execute(context.Background(), []string{"routes"}, &out, &errOut); code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, errOut.String())
	}
	s := out.String()
	if !strings.Contains(s, "base path: /") || strings.Contains(s, "./") {
		t.Fatalf("unexpected base path line: %q", s)
	}
	for _, p := range []string{"/book/home", "/book/shelf", "/book/list", "/book/flat-list", "bookCategoryList.json"} {
		if !strings.Contains(s, p) { t.Fatalf("missing %s in %q", p, s) }
	}
}

func TestExecute_RoutesProduction(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Execute(context.Background(), []string{"routes", "--production"}, &out, &errOut); code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "base path: ./") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestExecute_FixtureErrorReportedOnce(t *testing.T) {
	var out, errOut bytes.Buffer
	dir := filepath.Join(t.TempDir(), "absent")
	args := []string{"serve", "--addr", "127.0.0.1:0", "--log-level", "off", "--fixtures-dir", dir}
	if code := Execute(context.Background(), args, &out, &errOut); code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if n := strings.Count(errOut.String(), "load fixtures"); n != 1 {
		t.Fatalf("fixture error printed %d times: %q", n, errOut.String())
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Execute(context.Background(), []string{"frobnicate"}, &out, &errOut); code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "bookmock:") { t.Fatalf("stderr=%q", errOut.String()) }
}
