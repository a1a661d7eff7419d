// Package net carries request-scoped identity and the transport envelope
// shared by every HTTP surface
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey uint8

const keyViewerID ctxKey = iota

// WithRequest stamps the request id where chi's middleware would put it,
// so injected and propagated ids read back the same way
func WithRequest(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, requestID)
}

// RequestID reads the request id, empty when absent
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithViewer stamps the authenticated account id
func WithViewer(ctx context.Context, accountID string) context.Context {
	if accountID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyViewerID, accountID)
}

// ViewerID reads the authenticated account id, empty when unauthenticated
func ViewerID(ctx context.Context) string {
	v, _ := ctx.Value(keyViewerID).(string)
	return v
}
