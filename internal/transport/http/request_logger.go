package http

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/oshokin/localapi-logger/internal/config"
	"github.com/oshokin/localapi-logger/internal/logger"
	"github.com/oshokin/localapi-logger/internal/utils"
)

// RequestLogger is a custom http.RoundTripper that logs requests aimed at the local backend.
// It wraps another http.RoundTripper and never alters the request, the response or the error.
type RequestLogger struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// sink receives an entry for every matching request.
	sink RequestSink
	// backendMarker is the URL substring that identifies the local backend.
	backendMarker string
}

// NewRequestLogger creates and returns a new instance of RequestLogger.
// A nil next defaults to http.DefaultTransport, a nil sink to NewLoggerSink,
// and an empty backendMarker to config.DefaultBackendMarker.
func NewRequestLogger(next http.RoundTripper, sink RequestSink, backendMarker string) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	if sink == nil {
		sink = NewLoggerSink()
	}

	if backendMarker == "" {
		backendMarker = config.DefaultBackendMarker
	}

	return &RequestLogger{
		next:          next,
		sink:          sink,
		backendMarker: backendMarker,
	}
}

// RoundTrip reports the request to the sink if its URL contains the backend marker,
// then forwards it to the underlying RoundTripper and returns its result as is.
// It implements the http.RoundTripper interface.
func (t *RequestLogger) RoundTrip(req *http.Request) (*http.Response, error) {
	// Requests without a URL are left to the underlying transport to reject.
	if req != nil && req.URL != nil {
		if rawURL := req.URL.String(); strings.Contains(rawURL, t.backendMarker) {
			t.sink.LogRequest(req.Context(), newRequestEntry(req, rawURL))
		}
	}

	return t.next.RoundTrip(req)
}

// IsLocalHost reports whether host is one of the local-development host identifiers.
// The comparison is exact.
func IsLocalHost(host string, localHosts []string) bool {
	return slices.Contains(localHosts, host)
}

// InstallRequestLogger wraps next with a RequestLogger when the host reported by hostProvider
// is listed in cfg.LocalHosts. On any other host it returns next itself.
// A nil sink defaults to NewLoggerSink.
func InstallRequestLogger(
	ctx context.Context,
	cfg *config.Config,
	hostProvider utils.HostProvider,
	next http.RoundTripper,
	sink RequestSink,
) http.RoundTripper {
	host := hostProvider.GetHost()
	if !IsLocalHost(host, cfg.LocalHosts) {
		logger.Debugf(ctx, "Request logger is inactive on host '%s'", host)

		return next
	}

	logger.Info(ctx, activationMessage)

	return NewRequestLogger(next, sink, cfg.BackendMarker)
}
