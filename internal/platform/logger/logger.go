// Package logger owns the process-wide zerolog root and derives scoped
// children from request context
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"chartbox/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger aliases zerolog.Logger so callers never import zerolog directly
type Logger = zerolog.Logger

// Options configure the root logger once, at process start
type Options struct {
	Level      string
	Format     string
	Service    string
	Writer     io.Writer
	WithCaller bool
}

// FromEnv reads LOG_* through the raw view, which cannot log and therefore
// cannot recurse into this package
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:      env.Get("LEVEL", "debug"),
		Format:     env.Get("FORMAT", "console"),
		Service:    env.Get("SERVICE", ""),
		WithCaller: env.GetBool("CALLER", false),
	}
}

var (
	setup sync.Once
	root  atomic.Pointer[zerolog.Logger]
	ready atomic.Bool
)

// Get returns the root logger, initializing from env on first use
func Get() *Logger {
	if !ready.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init builds the root logger; only the first call takes effect
func Init(opt Options) {
	setup.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var w io.Writer = os.Stdout
		if opt.Writer != nil {
			w = opt.Writer
		}
		if strings.EqualFold(opt.Format, "console") {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		}

		b := zerolog.New(w).Level(level(opt.Level)).With().Timestamp()
		if opt.Service != "" {
			b = b.Str("service", opt.Service)
		}
		l := b.Logger()
		if opt.WithCaller {
			l = l.With().Caller().Logger()
		}

		root.Store(&l)
		ready.Store(true)
	})
}

func level(s string) zerolog.Level {
	if lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s))); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}
	return zerolog.DebugLevel
}

type ctxKey uint8

const (
	keyRequestID ctxKey = iota
	keyViewerID
)

// WithRequest stamps request-scoped logging fields on ctx
func WithRequest(ctx context.Context, requestID, viewerID string) context.Context {
	if requestID != "" {
		ctx = context.WithValue(ctx, keyRequestID, requestID)
	}
	if viewerID != "" {
		ctx = context.WithValue(ctx, keyViewerID, viewerID)
	}
	return ctx
}

// C derives a child carrying request_id and viewer_id from ctx
func C(ctx context.Context) *Logger {
	b := Get().With()
	if v, ok := ctx.Value(keyRequestID).(string); ok && v != "" {
		b = b.Str("request_id", v)
	}
	if v, ok := ctx.Value(keyViewerID).(string); ok && v != "" {
		b = b.Str("viewer_id", v)
	}
	l := b.Logger()
	return &l
}

// Named derives a child tagged with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
