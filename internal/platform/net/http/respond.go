package http

import (
	"encoding/json"
	stdhttp "net/http"

	pnet "chartbox/internal/platform/net"
)

// Envelope aliases the shared wire envelope so handlers and tests name it
// through this package
type Envelope = pnet.Wire

// JSON writes v with the given status as application/json. Matches the
// write signature the auth middleware expects
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return-style handlers produce; Handle writes it
type Response struct {
	Status int
	Body   any
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a bare 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response whose status and envelope derive from err
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		emit(w, r, h(r))
	}
}

func emit(w stdhttp.ResponseWriter, r *stdhttp.Request, resp Response) {
	if resp.Status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}
	reqID := pnet.RequestID(r.Context())

	// an error body overrides the declared status
	if err, ok := resp.Body.(error); ok && err != nil {
		status, body := pnet.Error(err, reqID)
		JSON(w, status, body)
		return
	}

	_, body := pnet.OK(resp.Body, reqID)
	if resp.Status != 0 && resp.Status != stdhttp.StatusOK {
		body.StatusCode = resp.Status
		body.Status = stdhttp.StatusText(resp.Status)
	}
	JSON(w, body.StatusCode, body)
}
