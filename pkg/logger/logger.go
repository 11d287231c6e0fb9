// Package logger provides a structured, levelled logger built on log/slog.
//
// A request-scoped logger pre-tagged with the request ID is injected by the
// Logger middleware; handlers and services retrieve it with WithCtx:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order placed", "order_id", order.ID, "total", order.TotalPrice)
//	// → time=... level=INFO msg="order placed" request_id=a1b2c3d4 order_id=7 total=400
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		handler = slog.NewJSONHandler(os.Stdout, opts) // structured JSON for log aggregators
	default:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		handler = slog.NewTextHandler(os.Stdout, opts) // human-readable for dev
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// AttachMongoSink tees every log record to an asynchronous MongoDB sink when
// LOG_MONGO_URI is configured. Returns the handler so the caller can Close()
// it on shutdown; returns (nil, nil) when no sink is configured.
func AttachMongoSink() (*MongoHandler, error) {
	uri := config.Get("LOG_MONGO_URI", "")
	if uri == "" {
		return nil, nil
	}

	mh, err := NewMongoHandler(
		uri,
		config.Get("LOG_MONGO_DB", "phenyl_shop"),
		config.Get("LOG_MONGO_COLLECTION", "logs"),
	)
	if err != nil {
		return nil, err
	}

	L = slog.New(teeHandler{primary: L.Handler(), secondary: mh})
	slog.SetDefault(L)
	return mh, nil
}

// teeHandler forwards each record to both handlers. The secondary sink never
// fails the primary path.
type teeHandler struct {
	primary   slog.Handler
	secondary slog.Handler
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return t.primary.Enabled(ctx, level)
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	_ = t.secondary.Handle(ctx, r.Clone())
	return t.primary.Handle(ctx, r)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return teeHandler{primary: t.primary.WithAttrs(attrs), secondary: t.secondary.WithAttrs(attrs)}
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return teeHandler{primary: t.primary.WithGroup(name), secondary: t.secondary.WithGroup(name)}
}

// ─────────────────────────────────────────────
// Context-aware logger
// ─────────────────────────────────────────────

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the request-scoped *slog.Logger stored in ctx, or the base
// logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
