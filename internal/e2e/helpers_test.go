package e2e

import (
    "io"
    "net/http"
    "net/http/httptest"
    "os"
    "path/filepath"
    "testing"

    "bookmock/internal/fixtures"
    "bookmock/internal/httpapi"
)

// writeFixturesDir creates a temporary fixtures directory holding one file
// per table entry, each containing body.
func writeFixturesDir(t *testing.T, body func(fixtures.Source) string) string {
    t.Helper()
    dir := t.TempDir()
    for _, s := range fixtures.Table() {
        p := filepath.Join(dir, s.File)
        if err := os.WriteFile(p, []byte(body(s)), 0o644); err != nil {
            t.Fatalf("write fixture %s: %v", p, err)
        }
    }
    return dir
}

func newServerForDir(t *testing.T, fixturesDir string, opts httpapi.Options) *httptest.Server {
    t.Helper()
    routes, err := fixtures.Load(fixturesDir)
    if err != nil {
        t.Fatalf("load fixtures: %v", err)
    }
    srv := httptest.NewServer(httpapi.NewMux(routes, opts))
    t.Cleanup(srv.Close)
    return srv
}

func do(t *testing.T, req *http.Request) (*http.Response, []byte) {
    t.Helper()
    resp, err := http.DefaultTransport.RoundTrip(req)
    if err != nil { t.Fatalf("do req: %v", err) }
    defer resp.Body.Close()
    b, err := io.ReadAll(resp.Body)
    if err != nil { t.Fatalf("read body: %v", err) }
    return resp, b
}
