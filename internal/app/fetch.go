package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oshokin/localapi-logger/internal/utils"
)

// RequestSpec describes a request issued by the CLI.
type RequestSpec struct {
	// Method is the HTTP method; empty means GET.
	Method string
	// URL is the target URL.
	URL string
	// Headers are sent with the request.
	Headers http.Header
	// Body is the request payload; empty means no body.
	Body string
}

// FetchResult summarizes a completed request.
type FetchResult struct {
	// Status is the status line, e.g. "200 OK".
	Status string
	// StatusCode is the numeric HTTP status.
	StatusCode int
	// ContentType is the response Content-Type header.
	ContentType string
	// Size is the number of body bytes received.
	Size int64
	// Preview is the beginning of a text body; empty for binary bodies or when disabled.
	Preview string
	// Duration is the time from sending the request to reading the whole body.
	Duration time.Duration
}

// Static error definitions for better error handling.
var (
	// ErrInvalidHeader indicates that a header argument is not in "Name: value" form.
	ErrInvalidHeader = errors.New("header must be in 'Name: value' form")
)

// ParseHeaders converts "Name: value" arguments into an http.Header.
func ParseHeaders(lines []string) (http.Header, error) {
	header := make(http.Header, len(lines))

	for _, line := range lines {
		name, value, found := strings.Cut(line, ":")

		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidHeader, line)
		}

		header.Add(name, strings.TrimSpace(value))
	}

	return header, nil
}

// Fetch performs spec with client and reads the response.
// maxPreview limits the returned preview; zero disables it.
func Fetch(ctx context.Context, client *http.Client, spec *RequestSpec, maxPreview int64) (*FetchResult, error) {
	var body io.Reader
	if spec.Body != "" {
		body = strings.NewReader(spec.Body)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for name, values := range spec.Headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	startTime := time.Now()

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck // Error on close is not critical here.

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	result := &FetchResult{
		Status:      resp.Status,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Duration:    time.Since(startTime),
	}

	if maxPreview > 0 && utils.IsTextContentType(result.ContentType) {
		result.Preview = utils.Truncate(data, maxPreview)
	}

	return result, nil
}
