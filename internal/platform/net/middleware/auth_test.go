package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "chartbox/internal/platform/errors"
	pnet "chartbox/internal/platform/net"
	"chartbox/internal/platform/net/middleware"
)

type sessionPort struct {
	accountID string
	err       error
}

func (p sessionPort) Parse(*http.Request) (string, error) { return p.accountID, p.err }

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestAuth_StampsViewerOnContext(t *testing.T) {
	var seen string
	h := middleware.Auth(sessionPort{accountID: "acct-9"}, writeJSON)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = pnet.ViewerID(r.Context())
		}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/charts/list", nil))

	if seen != "acct-9" {
		t.Fatalf("viewer = %q, want acct-9", seen)
	}
}

func TestAuth_RejectedSessionShortCircuits(t *testing.T) {
	reached := false
	h := middleware.Auth(sessionPort{err: perr.Unauthorizedf("invalid or expired session")}, writeJSON)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { reached = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/charts/create", nil))

	if reached {
		t.Fatal("handler must not run on a rejected session")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var body pnet.Wire
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != perr.ErrorCodeUnauthorized {
		t.Fatalf("wire code = %d, want unauthorized", body.Code)
	}
}

func TestOptionalAuth_StampsViewerButNeverRejects(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.ViewerID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	// resolvable credential stamps the viewer
	rec := httptest.NewRecorder()
	middleware.OptionalAuth(sessionPort{accountID: "acct-9"})(next).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/charts/list", nil))
	if rec.Code != http.StatusOK || seen != "acct-9" {
		t.Fatalf("status = %d viewer = %q, want 200 acct-9", rec.Code, seen)
	}

	// a rejected credential passes through anonymous instead of 401ing
	rec = httptest.NewRecorder()
	middleware.OptionalAuth(sessionPort{err: perr.Unauthorizedf("invalid or expired session")})(next).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/charts/list", nil))
	if rec.Code != http.StatusOK || seen != "" {
		t.Fatalf("status = %d viewer = %q, want anonymous 200", rec.Code, seen)
	}
}

func TestAuth_NilPortIsAnonymousPassThrough(t *testing.T) {
	var seen string
	h := middleware.Auth(nil, writeJSON)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = pnet.ViewerID(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/charts/list", nil))

	if rec.Code != http.StatusOK || seen != "" {
		t.Fatalf("status = %d viewer = %q, want anonymous 200", rec.Code, seen)
	}
}
