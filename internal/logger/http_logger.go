package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
)

// MaxBodyLogged caps how much of a body ends up in a log record.
const MaxBodyLogged = 1 << 20

var allowedHeaders = map[string]bool{
	"content-type":   true,
	"content-length": true,
	"user-agent":     true,
	"location":       true,
	"x-trace-id":     true,
	"traceparent":    true,
}

// CaptureBody reads r.Body up to MaxBodyLogged bytes and puts a fresh
// reader back so the handler still sees the full payload.
func CaptureBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyLogged))
	if err != nil {
		return nil, err
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

func HeaderAttrs(hdr http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(hdr))
	for name, values := range hdr {
		lower := strings.ToLower(name)
		if !allowedHeaders[lower] {
			continue
		}
		attrs = append(attrs, slog.String("http.header."+lower, strings.Join(values, ", ")))
	}
	return attrs
}

// BodyAttr renders a captured body as a single attribute. JSON bodies
// are compacted; anything else is logged as-is up to the cap.
func BodyAttr(contentType string, body []byte) []slog.Attr {
	if len(body) == 0 {
		return nil
	}
	ct, _, _ := mime.ParseMediaType(contentType)
	if ct == "application/json" {
		var compact bytes.Buffer
		if err := json.Compact(&compact, body); err == nil {
			return []slog.Attr{slog.String("http.body", compact.String())}
		}
	}
	return []slog.Attr{slog.String("http.body", string(body))}
}

// LogHTTPRequest collects request metadata, headers and body attrs.
func LogHTTPRequest(ctx context.Context, r *http.Request, direction string) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("http.direction", direction),
		slog.String("http.remote_addr", r.RemoteAddr),
		slog.String("http.method", r.Method),
		slog.String("http.path", r.URL.Path),
	}
	attrs = append(attrs, HeaderAttrs(r.Header)...)

	if body, err := CaptureBody(r); err == nil {
		attrs = append(attrs, BodyAttr(r.Header.Get("Content-Type"), body)...)
	}
	return attrs
}

// LogHTTPResponse collects response metadata; body is the buffered copy
// captured by the middleware's response writer.
func LogHTTPResponse(ctx context.Context, req *http.Request, header http.Header, status int, body io.Reader, durationMs int64, direction string) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("http.direction", direction),
		slog.String("http.remote_addr", req.RemoteAddr),
		slog.String("http.method", req.Method),
		slog.String("http.path", req.URL.Path),
		slog.Int("http.status", status),
		slog.Int64("duration_ms", durationMs),
	}
	attrs = append(attrs, HeaderAttrs(header)...)

	if body != nil {
		buf := new(bytes.Buffer)
		if _, err := io.Copy(buf, body); err == nil && buf.Len() > 0 {
			attrs = append(attrs, BodyAttr(header.Get("Content-Type"), buf.Bytes())...)
		}
	}
	return attrs
}
