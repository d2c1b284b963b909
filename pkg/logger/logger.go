/*
logger wraps a charmbracelet logger with context aware printing and an
HTTP middleware which logs every request with an identifier.
*/
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	// Packages
	log "github.com/charmbracelet/log"
	uuid "github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Logger struct {
	*log.Logger
}

type Opt func(*log.Options)

// requestKey is the context key for a request identifier
type requestKey struct{}

// statusWriter records the status code of a response
type statusWriter struct {
	http.ResponseWriter
	status int
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Header which carries the request identifier
	RequestIdHeader = "X-Request-Id"

	// Number of characters of a secret which may be logged
	redactVisible = 2
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a logger which writes to w at info level
func New(w io.Writer, opts ...Opt) *Logger {
	options := log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           log.InfoLevel,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Logger{log.NewWithOptions(w, options)}
}

// WithDebug logs at debug level
func WithDebug(debug bool) Opt {
	return func(o *log.Options) {
		if debug {
			o.Level = log.DebugLevel
		}
	}
}

// WithPrefix sets the prefix for every line
func WithPrefix(prefix string) Opt {
	return func(o *log.Options) {
		o.Prefix = prefix
	}
}

// WithJSON writes structured lines rather than text
func WithJSON() Opt {
	return func(o *log.Options) {
		o.Formatter = log.JSONFormatter
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Print logs at info level
func (l *Logger) Print(ctx context.Context, args ...any) {
	l.Logger.Info(fmt.Sprint(args...), keyvals(ctx)...)
}

// Printf logs at info level
func (l *Logger) Printf(ctx context.Context, format string, args ...any) {
	l.Logger.Info(fmt.Sprintf(format, args...), keyvals(ctx)...)
}

// Debugf logs at debug level
func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	l.Logger.Debug(fmt.Sprintf(format, args...), keyvals(ctx)...)
}

// WrapFunc logs the method, path, status and duration of every request.
// The request identifier is taken from the request header, or generated,
// and is returned in the response header.
func (l *Logger) WrapFunc(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get(RequestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, id)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r.WithContext(WithRequestId(r.Context(), id)))

		l.Logger.Info(r.Method+" "+r.URL.Path, "request", id, "status", sw.status, "elapsed", time.Since(start).Round(time.Millisecond))
	}
}

// WithRequestId returns a context carrying a request identifier
func WithRequestId(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestKey{}, id)
}

// RequestId returns the request identifier in a context, or empty string
func RequestId(ctx context.Context) string {
	if id, ok := ctx.Value(requestKey{}).(string); ok {
		return id
	}
	return ""
}

// Redact returns a secret in a form which can be logged
func Redact(secret string) string {
	switch {
	case secret == "":
		return ""
	case len(secret) <= redactVisible*4:
		return "****"
	default:
		return secret[:redactVisible] + "****"
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func keyvals(ctx context.Context) []any {
	if id := RequestId(ctx); id != "" {
		return []any{"request", id}
	}
	return nil
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Flush passes through so event streams are not buffered
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
