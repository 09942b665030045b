package httpapi

// Options configures NewMux. The zero value serves the mock routes in
// development mode with no CORS and no static fallback.
type Options struct {
	// Production selects the production base path reported by the
	// introspection endpoint.
	Production bool
	// StaticDir, when set, serves unmatched GET requests from this
	// directory (typically the built front end).
	StaticDir string
	CORS      CORSOptions
}

// CORSOptions is opt-in. If disabled, no CORS middleware is added.
type CORSOptions struct {
	Enabled        bool
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}
