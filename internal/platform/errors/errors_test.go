package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestCodeOfUnwrapsThroughForeignWrapping(t *testing.T) {
	inner := Validationf("page must be non-negative")
	outer := stderrs.Join(stderrs.New("listing charts"), inner)
	if !IsCode(outer, ErrorCodeValidation) {
		t.Fatalf("code = %v, want validation", CodeOf(outer))
	}
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatal("foreign errors must classify as unknown")
	}
}

func TestErrNotFoundIsDistinctFromStorageFailure(t *testing.T) {
	if !IsCode(ErrNotFound, ErrorCodeNotFound) {
		t.Fatal("ErrNotFound must carry the not-found code")
	}
	if IsCode(Wrap(stderrs.New("pool closed"), ErrorCodeDB, "fetch chart"), ErrorCodeNotFound) {
		t.Fatal("a wrapped storage failure must not read as not-found")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validationf("confirm flag required"), http.StatusBadRequest},
		{JSONErrf("empty body"), http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{Unauthorizedf("missing bearer token"), http.StatusUnauthorized},
		{Forbiddenf("moderator role required"), http.StatusForbidden},
		{Newf(ErrorCodeDuplicateKey, "chart already liked"), http.StatusConflict},
		{Newf(ErrorCodeInvalidArgument, "author references a missing account"), http.StatusUnprocessableEntity},
		{stderrs.New("unclassified"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestWireFromCarriesCodeMessageAndField(t *testing.T) {
	err := WithField(Validationf("rating out of range"), "rating")
	w := WireFrom(err)
	if w.Code != ErrorCodeValidation || w.Message != "rating out of range" || w.Field != "rating" {
		t.Fatalf("wire = %+v", w)
	}
}

func TestWithFieldCopies(t *testing.T) {
	base := Validationf("title required")
	with := WithField(base, "title")
	if e, _ := As(base); e.Field() != "" {
		t.Fatal("WithField must not mutate the original")
	}
	if e, _ := As(with); e.Field() != "title" {
		t.Fatal("field not attached")
	}
}

func TestRootFindsDeepestCause(t *testing.T) {
	cause := stderrs.New("connection refused")
	err := Wrap(Wrap(cause, ErrorCodeUnavailable, "ping"), ErrorCodeDB, "open store")
	if Root(err) != cause {
		t.Fatalf("Root = %v, want %v", Root(err), cause)
	}
}
