// Package httpkit is the thin layer handlers mount through: JSON endpoint
// registration, viewer identity, and the bearer-auth route grouping.
// Modules use it so they never import the platform http package directly
package httpkit

import (
	"net/http"

	phttp "chartbox/internal/platform/net/http"
)

type (
	// Router is the platform routing seam
	Router = phttp.Router

	// Handler is the platform handler type
	Handler = phttp.Handler
)

// PostJSON mounts a JSON-body handler under POST. The body is decoded and
// checked against the dto's validate tags before h runs
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// Post mounts a body-less handler under POST
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, phttp.CallHandler(h))
}

// Get mounts a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.CallHandler(h))
}
