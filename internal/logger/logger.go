package logger

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"product-catalog/internal/utils"

	"go.opentelemetry.io/otel/trace"
)

var (
	instance *slog.Logger
	once     sync.Once
)

func Instance() *slog.Logger {
	once.Do(func() {
		instance = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	})

	return instance
}

func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	enriched := enrich(ctx, attrs...)
	Instance().Info(msg, attrsToArgs(enriched)...)
	sendLog("info", msg, enriched)
}

func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	enriched := enrich(ctx, attrs...)
	Instance().Warn(msg, attrsToArgs(enriched)...)
	sendLog("warn", msg, enriched)
}

func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	enriched := enrich(ctx, attrs...)
	Instance().Error(msg, attrsToArgs(enriched)...)
	sendLog("error", msg, enriched)
}

// enrich stamps the active span's ids and the hostname onto the record.
func enrich(ctx context.Context, attrs ...slog.Attr) []slog.Attr {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		attrs = append(attrs,
			slog.String("trace_id", span.SpanContext().TraceID().String()),
			slog.String("span_id", span.SpanContext().SpanID().String()),
			slog.String("hostname", utils.GetHost()),
		)
	}

	return attrs
}

func attrsToArgs(attrs []slog.Attr) []any {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return args
}
