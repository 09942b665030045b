package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":       LevelOff,
		"off":    LevelOff,
		"error":  LevelError,
		"info":   LevelInfo,
		"debug":  LevelDebug,
		"DEBUG":  LevelDebug,
		" info ": LevelInfo,
		"weird":  LevelInfo, // default
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?log=debug", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x?log=1", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("shorthand query override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
}

// captureLogger installs a zerolog logger writing into a buffer for the
// duration of the test.
func captureLogger(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger, prevLevel := zlog, defaultLogLevel
	t.Cleanup(func() { zlog, defaultLogLevel = prevLogger, prevLevel })
	SetLogger(zerolog.New(&buf))
	SetLogLevel(level)
	return &buf
}

func TestAccessLog_Info(t *testing.T) {
	buf := captureLogger(t, "info")
	h := NewMux(loadRoutes(t), Options{})
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/book/shelf", nil))
	out := buf.String()
	if !strings.Contains(out, `"path":"/book/shelf"`) || !strings.Contains(out, `"status":200`) {
		t.Fatalf("missing access log fields: %q", out)
	}
	if !strings.Contains(out, `"request_id"`) {
		t.Fatalf("missing request id: %q", out)
	}
	if strings.Contains(out, `"user_agent"`) {
		t.Fatalf("debug fields logged at info: %q", out)
	}
}

func TestAccessLog_DebugOverride(t *testing.T) {
	buf := captureLogger(t, "info")
	h := NewMux(loadRoutes(t), Options{})
	req := httptest.NewRequest(http.MethodGet, "/book/home?log=debug", nil)
	req.Header.Set("User-Agent", "reader-test")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if out := buf.String(); !strings.Contains(out, `"user_agent":"reader-test"`) {
		t.Fatalf("expected debug fields: %q", out)
	}
}

func TestAccessLog_OffAndErrorLevels(t *testing.T) {
	buf := captureLogger(t, "off")
	h := NewMux(loadRoutes(t), Options{})
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/book/home", nil))
	if buf.Len() != 0 {
		t.Fatalf("expected no log output, got %q", buf.String())
	}

	SetLogLevel("error")
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/book/home", nil))
	if buf.Len() != 0 {
		t.Fatalf("2xx logged at error level: %q", buf.String())
	}
}

func TestAccessLog_IgnoresStrayEnv(t *testing.T) {
	t.Setenv("BOOKMOCK_ACCESS_LOG", "off")
	buf := captureLogger(t, "info")
	h := NewMux(loadRoutes(t), Options{})
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/book/list", nil))
	if !strings.Contains(buf.String(), `"path":"/book/list"`) {
		t.Fatalf("configured level not honored: %q", buf.String())
	}
}

func TestLogLevelString(t *testing.T) {
	for _, l := range []LogLevel{LevelOff, LevelError, LevelInfo, LevelDebug} {
		if ParseLevel(l.String()) != l {
			t.Fatalf("round trip failed for %v", l)
		}
	}
}
