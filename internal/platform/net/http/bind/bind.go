// Package bind decodes and validates JSON request bodies. Validation runs
// off each dto's validate tags, with failure messages keyed by json field
// names so callers see the wire name, not the Go one
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "chartbox/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// maxBodyBytes caps request bodies; chart metadata never comes close
const maxBodyBytes = 1 << 20

var (
	once       sync.Once
	validate   *validator.Validate
	translator ut.Translator
)

func setup() {
	locale := en.New()
	translator, _ = ut.New(locale, locale).GetTranslator("en")

	validate = validator.New(validator.WithRequiredStructEnabled())

	// report wire names in messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if tag == "" || tag == "-" {
			return fld.Name
		}
		if i := strings.Index(tag, ","); i >= 0 {
			tag = tag[:i]
		}
		return tag
	})

	_ = entrans.RegisterDefaultTranslations(validate, translator)
	shortTranslation("min", "{0} must be at least {1}")
	shortTranslation("max", "{0} must be at most {1}")
}

// shortTranslation swaps the stock message for a compact one
func shortTranslation(tag, text string) {
	_ = validate.RegisterTranslation(tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// ParseJSON decodes the body into T, rejecting unknown fields and trailing
// garbage, then validates the result. Failures map to the error taxonomy
// before any service logic runs
func ParseJSON[T any](r *http.Request) (T, error) {
	once.Do(setup)

	var zero T
	defer func() { _ = r.Body.Close() }()

	// peek one byte so an empty POST body reads as a caller mistake while
	// body-less GET and DELETE still bind a zero dto
	head := make([]byte, 1)
	n, _ := r.Body.Read(head)
	if n == 0 {
		switch r.Method {
		case http.MethodGet, http.MethodDelete, http.MethodHead, http.MethodOptions:
			return zero, nil
		}
		return zero, perr.JSONErrf("empty body")
	}

	body := io.LimitReader(io.MultiReader(bytes.NewReader(head[:n]), r.Body), maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := validate.Struct(dst); err != nil {
		field, msg := firstFailure(err)
		return zero, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
	}
	return dst, nil
}

// firstFailure reports the first failed field and its translated message
func firstFailure(err error) (field, message string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field(), fe.Translate(translator)
	}
	return "", "validation error"
}
