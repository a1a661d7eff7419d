package httpkit

import (
	"compress/flate"
	"net/http"
	"strings"
	"time"

	perr "chartbox/internal/platform/errors"
	pnet "chartbox/internal/platform/net"
	phttp "chartbox/internal/platform/net/http"
	"chartbox/internal/platform/net/middleware"
)

// Viewer returns the authenticated account id from the request context.
// Only meaningful on routes mounted behind Protected
func Viewer(r *http.Request) (string, error) {
	aid := pnet.ViewerID(r.Context())
	if aid == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	return aid, nil
}

// OptionalViewer returns the account id, or empty when unauthenticated.
// Discovery endpoints use it for the per-row liked flag
func OptionalViewer(r *http.Request) string {
	return pnet.ViewerID(r.Context())
}

// Bearer extracts the raw token from the Authorization header. The scheme
// match is case-insensitive; a blank or schemeless header is unauthorized
func Bearer(r *http.Request) (string, error) {
	const scheme = "bearer "
	authz := r.Header.Get("Authorization")
	if len(authz) < len(scheme) || !strings.EqualFold(authz[:len(scheme)], scheme) {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	token := strings.TrimSpace(authz[len(scheme):])
	if token == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	return token, nil
}

// Auth adapts the session auth port into middleware that stamps the viewer
// on the request context, replying with the JSON envelope on rejection
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}

// Protected groups routes behind bearer auth
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(gr)
	})
}

// Public groups routes that accept but never require bearer auth: a valid
// token stamps the viewer for OptionalViewer, anything else stays anonymous
func Public(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(middleware.OptionalAuth(p))
		fn(gr)
	})
}

// CommonStack is the baseline middleware stack the API mounts under.
// Session auth is applied per route group, not here
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: time.Second}),
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
