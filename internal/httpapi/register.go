package httpapi

import (
	"net/http"

	"bookmock/internal/fixtures"
)

// Router is the routing surface mock handlers are attached to.
// chi.Router satisfies it.
type Router interface {
	Get(pattern string, h http.HandlerFunc)
}

// Mock answers every GET on path with payload encoded as JSON. The request
// is ignored.
func Mock(r Router, path string, payload any) {
	r.Get(path, func(w http.ResponseWriter, _ *http.Request) {
		if err := writeJSON(w, http.StatusOK, payload); err != nil {
			logError(err, "fixture %s: write failed", path)
			return
		}
		fixtureResponsesTotal.WithLabelValues(path).Inc()
	})
}

// Register attaches one mock handler per route, in order.
func Register(r Router, routes []fixtures.Route) {
	for _, rt := range routes {
		Mock(r, rt.Path, rt.Payload)
	}
}
