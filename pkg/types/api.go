package types

// RouteInfo describes one registered mock route.
type RouteInfo struct {
	// URL path answered by the route.
	// example: /book/shelf
	Path string `json:"path" example:"/book/shelf"`
	// Name of the fixture the route serves.
	// example: bookShelf
	Fixture string `json:"fixture" example:"bookShelf"`
}

// ConfigResponse is returned by GET /__bookmock/config.
type ConfigResponse struct {
	// Asset base path the front end should be built with.
	// example: /
	BasePath string `json:"basePath" example:"/"`
	// Whether the server runs in production mode.
	// example: false
	Production bool `json:"production" example:"false"`
	// Registered mock routes in registration order.
	Routes []RouteInfo `json:"routes"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: failed to encode fixture
	Error string `json:"error" example:"failed to encode fixture"`
	// HTTP status code.
	// example: 500
	Code int `json:"code" example:"500"`
}
