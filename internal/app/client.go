package app

import (
	"context"
	"net/http"

	"github.com/oshokin/localapi-logger/internal/config"
	http_transport "github.com/oshokin/localapi-logger/internal/transport/http"
	"github.com/oshokin/localapi-logger/internal/utils"
)

// NewHTTPClient creates the HTTP client used by the CLI.
// The transport chain is: request logger (local hosts only) -> debug dump -> next.
// A nil sink writes request entries to the application logger.
func NewHTTPClient(
	ctx context.Context,
	cfg *config.Config,
	hostProvider utils.HostProvider,
	next http.RoundTripper,
	sink http_transport.RequestSink,
) *http.Client {
	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	dumpTransport := http_transport.NewLogTransport(next, cfg.ParsedMaxBodyPreview)

	return &http.Client{
		Transport: http_transport.InstallRequestLogger(ctx, cfg, hostProvider, dumpTransport, sink),
		Timeout:   timeout,
	}
}
