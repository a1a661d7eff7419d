package middleware

import (
	"net/http"

	pnet "chartbox/internal/platform/net"
)

// AuthPort is the seam the accounts service implements for session auth
type AuthPort interface {
	// Parse returns the authenticated account id for the request
	Parse(r *http.Request) (accountID string, err error)
}

// Auth resolves the viewer and stamps it on the request context. A nil
// port leaves requests anonymous
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			aid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithViewer(r.Context(), aid)))
		})
	}
}

// OptionalAuth stamps the viewer when the request carries a resolvable
// credential and otherwise lets it through anonymous. It never rejects;
// public routes use it so an authenticated caller still gets viewer-aware
// responses
func OptionalAuth(p AuthPort) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p != nil {
				if aid, err := p.Parse(r); err == nil && aid != "" {
					r = r.WithContext(pnet.WithViewer(r.Context(), aid))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
