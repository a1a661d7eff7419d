// Package http is the transport layer: a small Router seam over chi, the
// JSON reply envelope, and the handler adapters modules mount through
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the platform handler type used across the transport layer
type Handler = func(stdhttp.ResponseWriter, *stdhttp.Request)

// Router is the mounting surface modules see; chi stays behind it
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h stdhttp.Handler)
	Use(mw ...func(stdhttp.Handler) stdhttp.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux exposes the underlying handler for tests and the server
	Mux() stdhttp.Handler
}

// AdaptChi wraps a chi router in the Router seam. chi.Router covers both
// the root mux and every subrouter, so one adapter serves all levels
func AdaptChi(r chi.Router) Router { return chiRouter{r: r} }

type chiRouter struct{ r chi.Router }

func (c chiRouter) Get(p string, h Handler)    { c.r.Get(p, stdhttp.HandlerFunc(h)) }
func (c chiRouter) Post(p string, h Handler)   { c.r.Post(p, stdhttp.HandlerFunc(h)) }
func (c chiRouter) Put(p string, h Handler)    { c.r.Put(p, stdhttp.HandlerFunc(h)) }
func (c chiRouter) Patch(p string, h Handler)  { c.r.Patch(p, stdhttp.HandlerFunc(h)) }
func (c chiRouter) Delete(p string, h Handler) { c.r.Delete(p, stdhttp.HandlerFunc(h)) }

func (c chiRouter) Handle(p string, h stdhttp.Handler) { c.r.Handle(p, h) }

func (c chiRouter) Use(mw ...func(stdhttp.Handler) stdhttp.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Mux() stdhttp.Handler { return c.r }
