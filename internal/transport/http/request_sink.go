package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/oshokin/localapi-logger/internal/logger"
)

// RequestEntry describes one observed request.
type RequestEntry struct {
	// ID correlates the entry with other log lines of the same request.
	ID string
	// URL is the string form of the request URL.
	URL string
	// Method is the HTTP method, DefaultMethod when the request left it empty.
	Method string
	// Headers holds the request headers; multiple values are joined with ", ".
	// It is never nil.
	Headers map[string]string
}

// RequestSink receives entries for requests aimed at the local backend.
type RequestSink interface {
	// LogRequest records a single request entry.
	LogRequest(ctx context.Context, entry *RequestEntry)
}

// RequestSinkFunc adapts an ordinary function to the RequestSink interface.
type RequestSinkFunc func(ctx context.Context, entry *RequestEntry)

// LogRequest calls f(ctx, entry).
func (f RequestSinkFunc) LogRequest(ctx context.Context, entry *RequestEntry) {
	f(ctx, entry)
}

// LoggerSink writes request entries to the application logger.
type LoggerSink struct{}

// NewLoggerSink creates and returns a new instance of LoggerSink.
func NewLoggerSink() RequestSink {
	return &LoggerSink{}
}

// LogRequest writes the entry as a structured info-level log line.
func (s *LoggerSink) LogRequest(ctx context.Context, entry *RequestEntry) {
	logger.InfoKV(ctx, requestLogMessage,
		"request_id", entry.ID,
		"url", entry.URL,
		"method", entry.Method,
		"headers", entry.Headers)
}

// newRequestEntry builds an entry from req. The request itself is only read.
func newRequestEntry(req *http.Request, rawURL string) *RequestEntry {
	method := req.Method
	if method == "" {
		method = DefaultMethod
	}

	return &RequestEntry{
		ID:      uuid.New().String(),
		URL:     rawURL,
		Method:  method,
		Headers: flattenHeaders(req.Header),
	}
}

func flattenHeaders(header http.Header) map[string]string {
	result := make(map[string]string, len(header))

	for name, values := range header {
		result[name] = strings.Join(values, ", ")
	}

	return result
}
