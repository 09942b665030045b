//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc feeds the static document below to the swag registry, which is
// where httpSwagger reads doc.json from.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string { return openAPISpec }

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}

// MountSwagger serves the Swagger UI under /swagger/.
func MountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

const openAPISpec = `{
  "swagger": "2.0",
  "info": {
    "title": "bookmock API",
    "description": "Mock book endpoints for local front-end development.",
    "version": "1.0"
  },
  "basePath": "/",
  "schemes": ["http"],
  "paths": {
    "/book/home": {
      "get": {"summary": "Home page fixture", "produces": ["application/json"], "responses": {"200": {"description": "fixture payload"}}}
    },
    "/book/shelf": {
      "get": {"summary": "Shelf fixture", "produces": ["application/json"], "responses": {"200": {"description": "fixture payload"}}}
    },
    "/book/list": {
      "get": {"summary": "Category list fixture", "produces": ["application/json"], "responses": {"200": {"description": "fixture payload"}}}
    },
    "/book/flat-list": {
      "get": {"summary": "Flat list fixture", "produces": ["application/json"], "responses": {"200": {"description": "fixture payload"}}}
    },
    "/__bookmock/config": {
      "get": {
        "summary": "Base path and registered routes",
        "produces": ["application/json"],
        "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ConfigResponse"}}}
      }
    },
    "/healthz": {
      "get": {"summary": "Liveness probe", "produces": ["text/plain"], "responses": {"200": {"description": "ok"}}}
    }
  },
  "definitions": {
    "types.RouteInfo": {
      "type": "object",
      "properties": {
        "path": {"type": "string", "example": "/book/shelf"},
        "fixture": {"type": "string", "example": "bookShelf"}
      }
    },
    "types.ConfigResponse": {
      "type": "object",
      "properties": {
        "basePath": {"type": "string", "example": "/"},
        "production": {"type": "boolean", "example": false},
        "routes": {"type": "array", "items": {"$ref": "#/definitions/types.RouteInfo"}}
      }
    },
    "types.ErrorResponse": {
      "type": "object",
      "properties": {
        "error": {"type": "string"},
        "code": {"type": "integer"}
      }
    }
  }
}`
