package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "chartbox/internal/platform/errors"
	"chartbox/internal/platform/net/http/bind"
)

// statusInput mirrors the chart status mutation dto
type statusInput struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=PUBLIC PRIVATE UNLISTED"`
}

type tagsInput struct {
	Tags []string `json:"tags" validate:"required,min=1,max=3,dive,required"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/charts/status", strings.NewReader(body))
}

func TestParseJSON_Valid(t *testing.T) {
	in, err := bind.ParseJSON[statusInput](post(`{"id":"ch_1","status":"UNLISTED"}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if in.ID != "ch_1" || in.Status != "UNLISTED" {
		t.Fatalf("bound %+v", in)
	}
}

func TestParseJSON_FailuresMapToTaxonomy(t *testing.T) {
	cases := []struct {
		name string
		body string
		code perr.ErrorCode
	}{
		{"malformed", `{"id":`, perr.ErrorCodeJSON},
		{"unknown field", `{"id":"ch_1","status":"PUBLIC","mod":true}`, perr.ErrorCodeJSON},
		{"trailing data", `{"id":"ch_1","status":"PUBLIC"}{}`, perr.ErrorCodeJSON},
		{"empty body", ``, perr.ErrorCodeJSON},
		{"missing id", `{"status":"PUBLIC"}`, perr.ErrorCodeValidation},
		{"status outside enum", `{"id":"ch_1","status":"DRAFT"}`, perr.ErrorCodeValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bind.ParseJSON[statusInput](post(tc.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := perr.CodeOf(err); got != tc.code {
				t.Fatalf("code = %v, want %v (err %v)", got, tc.code, err)
			}
		})
	}
}

func TestParseJSON_MessagesUseWireNames(t *testing.T) {
	_, err := bind.ParseJSON[tagsInput](post(`{"tags":["a","b","c","d"]}`))
	if err == nil {
		t.Fatal("expected error for four tags")
	}
	if msg := err.Error(); !strings.Contains(msg, "tags") {
		t.Fatalf("message should name the json field, got %q", msg)
	}
}

func TestParseJSON_EmptyBodyToleratedOnSafeMethods(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/charts/list", nil)
	in, err := bind.ParseJSON[statusInput](r)
	if err != nil {
		t.Fatalf("GET with no body should bind the zero dto: %v", err)
	}
	if in != (statusInput{}) {
		t.Fatalf("expected zero dto, got %+v", in)
	}
}
