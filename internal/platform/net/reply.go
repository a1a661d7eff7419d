package net

import (
	"net/http"

	perr "chartbox/internal/platform/errors"
)

// Wire is the transport envelope; every reply carries it
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// OK builds a 200 envelope around data
func OK(data any, requestID string) (int, Wire) {
	return http.StatusOK, Wire{
		StatusCode: http.StatusOK,
		Status:     http.StatusText(http.StatusOK),
		RequestID:  requestID,
		Data:       data,
	}
}

// Error builds an envelope from the error taxonomy; nil degrades to OK
func Error(err error, requestID string) (int, Wire) {
	if err == nil {
		return OK(nil, requestID)
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		RequestID:  requestID,
	}
}
