package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookmock/internal/config"
	"bookmock/internal/fixtures"
	"bookmock/pkg/types"
)

// ConfigPath is the introspection endpoint reporting base path and routes.
const ConfigPath = "/__bookmock/config"

// NewMux builds the dev server router: middleware, the mock routes and the
// operational endpoints. Paths it does not know fall through to chi's
// default 404/405, or to opts.StaticDir when set.
func NewMux(routes []fixtures.Route, opts Options) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// /book/shelf/ routes like /book/shelf; HEAD falls back to the GET handler
	r.Use(middleware.StripSlashes)
	r.Use(middleware.GetHead)
	r.Use(AccessLog)
	r.Use(MetricsMiddleware)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if opts.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORS.AllowedOrigins,
			AllowedMethods: opts.CORS.AllowedMethods,
			AllowedHeaders: opts.CORS.AllowedHeaders,
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}

	Register(r, routes)

	info := types.ConfigResponse{
		BasePath:   config.BasePath(opts.Production),
		Production: opts.Production,
		Routes:     make([]types.RouteInfo, 0, len(routes)),
	}
	for _, rt := range routes {
		info.Routes = append(info.Routes, types.RouteInfo{Path: rt.Path, Fixture: rt.Name})
	}
	r.Get(ConfigPath, func(w http.ResponseWriter, r *http.Request) {
		_ = writeJSON(w, http.StatusOK, info)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	if opts.StaticDir != "" {
		files := http.FileServer(http.Dir(opts.StaticDir))
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				http.NotFound(w, r)
				return
			}
			files.ServeHTTP(w, r)
		})
	}

	return r
}
