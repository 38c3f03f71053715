package http

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/oshokin/localapi-logger/internal/logger"
	"github.com/oshokin/localapi-logger/internal/utils"
)

// LogTransport is a custom http.RoundTripper that dumps requests and responses at debug level.
// It wraps another http.RoundTripper and is a no-op unless the global level is debug.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// maxDumpLength is the maximum length of a logged request or response dump.
	maxDumpLength int64
}

// Static error definitions for better error handling.
var (
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
)

// NewLogTransport creates and returns a new instance of LogTransport.
// A nil next defaults to http.DefaultTransport.
// If maxDumpLength is less than or equal to 0, it defaults to DefaultMaxDumpLength.
func NewLogTransport(next http.RoundTripper, maxDumpLength int64) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	if maxDumpLength <= 0 {
		maxDumpLength = DefaultMaxDumpLength
	}

	return &LogTransport{
		next:          next,
		maxDumpLength: maxDumpLength,
	}
}

// RoundTrip executes a single HTTP transaction and logs the request and response.
// It implements the http.RoundTripper interface.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	// Skip logging if the logger is not at debug level.
	if !logger.IsDebugLevel() || req.URL == nil {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()

	requestDump := t.dumpRequest(req)

	startTime := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(startTime)

	if err != nil {
		logger.Debugf(ctx, "Request failed: %s %s | Error: %v", req.Method, req.URL.String(), err)

		return resp, err
	}

	logger.Debugf(ctx, "%s %s [%d] %s\nRequest: %s\nResponse: %s",
		req.Method, req.URL.String(), resp.StatusCode, duration, requestDump, t.dumpResponse(resp))

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	// DumpRequestOut restores req.Body, so the next transport still sends it.
	dump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		return err.Error()
	}

	return utils.Truncate(dump, t.maxDumpLength)
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	if resp == nil {
		return ""
	}

	// Binary bodies are left out of the dump.
	dump, err := httputil.DumpResponse(resp, utils.IsTextContentType(resp.Header.Get("Content-Type")))
	if err != nil {
		return err.Error()
	}

	return utils.Truncate(dump, t.maxDumpLength)
}
