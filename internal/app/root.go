package app

import (
	"context"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/localapi-logger/internal/config"
	"github.com/oshokin/localapi-logger/internal/logger"
	"github.com/oshokin/localapi-logger/internal/utils"
)

// RequestOptions holds the request settings given on the command line.
type RequestOptions struct {
	// Method is the HTTP method for every URL.
	Method string
	// Headers are "Name: value" header arguments.
	Headers []string
	// Body is the request payload.
	Body string
}

// RunSummary counts the outcome of a command run.
type RunSummary struct {
	// Succeeded is the number of requests that produced a response.
	Succeeded int
	// Failed is the number of requests that produced an error.
	Failed int
	// TotalBytes is the number of response body bytes received.
	TotalBytes int64
}

// ExecuteRootCommand is the entry point for the application.
// It builds the HTTP client with the request logger and performs a request for every URL.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, opts *RequestOptions, urls []string) {
	hostProvider, err := utils.NewOriginHostProvider(cfg.OriginURL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to determine host: %v", err)
	}

	headers, err := ParseHeaders(opts.Headers)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse headers: %v", err)
	}

	client := NewHTTPClient(ctx, cfg, hostProvider, http.DefaultTransport, nil)

	summary := FetchURLs(ctx, client, cfg, opts.Method, headers, opts.Body, urls)

	PrintSummary(ctx, summary)
}

// FetchURLs performs one request per URL and logs each outcome.
// A failed request does not stop the remaining ones.
func FetchURLs(
	ctx context.Context,
	client *http.Client,
	cfg *config.Config,
	method string,
	headers http.Header,
	body string,
	urls []string,
) *RunSummary {
	summary := &RunSummary{}

	for _, rawURL := range urls {
		if ctx.Err() != nil {
			logger.Warn(ctx, "Interrupted, skipping remaining URLs")

			break
		}

		spec := &RequestSpec{
			Method:  method,
			URL:     rawURL,
			Headers: headers,
			Body:    body,
		}

		result, err := Fetch(ctx, client, spec, cfg.ParsedMaxBodyPreview)
		if err != nil {
			summary.Failed++

			logger.Errorf(ctx, "Request to %s failed: %v", rawURL, err)

			continue
		}

		summary.Succeeded++
		summary.TotalBytes += result.Size

		logger.Infof(ctx, "%s %s [%s] %s in %s",
			spec.methodOrDefault(), rawURL, result.Status, humanize.Bytes(uint64(result.Size)), result.Duration)

		if result.Preview != "" {
			logger.Infof(ctx, "Response: %s", result.Preview)
		}
	}

	return summary
}

// PrintSummary logs the totals of a run.
func PrintSummary(ctx context.Context, summary *RunSummary) {
	logger.Infof(ctx, "Requests: %d succeeded, %d failed, %s received",
		summary.Succeeded, summary.Failed, humanize.Bytes(uint64(summary.TotalBytes)))
}

func (s *RequestSpec) methodOrDefault() string {
	if s.Method == "" {
		return http.MethodGet
	}

	return s.Method
}
