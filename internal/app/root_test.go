package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/localapi-logger/internal/config"
	"github.com/oshokin/localapi-logger/internal/logger"
	http_transport "github.com/oshokin/localapi-logger/internal/transport/http"
	"github.com/oshokin/localapi-logger/internal/utils"
)

// newObservedContext returns a context whose logger is captured by an observer.
func newObservedContext() (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)

	return logger.ToContext(context.Background(), zap.New(core).Sugar()), logs
}

// newBackendConfig returns a validated configuration whose backend marker is serverURL's host.
// The trailing slash keeps the marker from matching a longer port number.
func newBackendConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()

	parsed, err := url.Parse(serverURL)
	require.NoError(t, err)

	cfg := config.NewDefaultConfig()
	cfg.BackendMarker = parsed.Host + "/"
	cfg.RequestTimeout = "5s"
	require.NoError(t, config.ValidateConfig(cfg))

	return cfg
}

// TestNewHTTPClient tests transport selection and timeout.
func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	cfg := config.NewDefaultConfig()
	require.NoError(t, config.ValidateConfig(cfg))

	ctx, _ := newObservedContext()
	next := http.DefaultTransport

	localClient := NewHTTPClient(ctx, cfg, utils.NewSimpleHostProvider("localhost"), next, nil)
	assert.IsType(t, &http_transport.RequestLogger{}, localClient.Transport)
	assert.Equal(t, 60*time.Second, localClient.Timeout)

	// On other hosts only the debug dump layer wraps next.
	remoteClient := NewHTTPClient(ctx, cfg, utils.NewSimpleHostProvider("example.com"), next, nil)
	assert.IsType(t, &http_transport.LogTransport{}, remoteClient.Transport)
}

// TestNewHTTPClient_DefaultTimeout tests the fallback for an unvalidated config.
func TestNewHTTPClient_DefaultTimeout(t *testing.T) {
	t.Parallel()

	ctx, _ := newObservedContext()
	client := NewHTTPClient(ctx, config.NewDefaultConfig(), utils.NewSimpleHostProvider("example.com"), nil, nil)

	assert.Equal(t, http_transport.DefaultTimeout, client.Timeout)
	assert.IsType(t, &http_transport.LogTransport{}, client.Transport)
}

// TestFetchURLs_LocalHost tests that requests to the backend are logged on a local host.
func TestFetchURLs_LocalHost(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("pong"))
	}))
	defer server.Close()

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	cfg := newBackendConfig(t, server.URL)
	ctx, logs := newObservedContext()

	var entries []*http_transport.RequestEntry

	sink := http_transport.RequestSinkFunc(func(_ context.Context, entry *http_transport.RequestEntry) {
		entries = append(entries, entry)
	})

	client := NewHTTPClient(ctx, cfg, utils.NewSimpleHostProvider("127.0.0.1"), http.DefaultTransport, sink)

	summary := FetchURLs(ctx, client, cfg, "", http.Header{"X": []string{"1"}}, "",
		[]string{server.URL + "/ping", closedURL + "/down", server.URL + "/again"})

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, int64(8), summary.TotalBytes)

	assert.Equal(t, 1, logs.FilterMessage("Request logger initialized for local development").Len())

	require.Len(t, entries, 2)
	assert.Equal(t, server.URL+"/ping", entries[0].URL)
	assert.Equal(t, http.MethodGet, entries[0].Method)
	assert.Equal(t, map[string]string{"X": "1"}, entries[0].Headers)
	assert.Equal(t, server.URL+"/again", entries[1].URL)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.Zero(t, logs.FilterMessage("API request").Len())

	assert.Equal(t, 2, logs.FilterMessage("Response: pong").Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

// TestFetchURLs_RemoteHost tests that nothing is logged by the request logger on other hosts.
func TestFetchURLs_RemoteHost(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	cfg := newBackendConfig(t, server.URL)
	ctx, logs := newObservedContext()

	client := NewHTTPClient(ctx, cfg, utils.NewSimpleHostProvider("example.com"), http.DefaultTransport, nil)

	summary := FetchURLs(ctx, client, cfg, http.MethodDelete, nil, "", []string{server.URL + "/api/items/1"})

	assert.Equal(t, 1, summary.Succeeded)
	assert.Zero(t, summary.Failed)
	assert.Zero(t, logs.FilterMessage("API request").Len())
	assert.Zero(t, logs.FilterMessage("Request logger initialized for local development").Len())
}

// TestFetchURLs_DebugDump tests that the client dumps exchanges when the log level is debug.
//
//nolint:paralleltest // Mutates the global log level.
func TestFetchURLs_DebugDump(t *testing.T) {
	originalLevel := logger.Level()
	defer logger.SetLevel(originalLevel)

	logger.SetLevel(zapcore.DebugLevel)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("pong"))
	}))
	defer server.Close()

	cfg := newBackendConfig(t, server.URL)
	ctx, logs := newObservedContext()

	client := NewHTTPClient(ctx, cfg, utils.NewSimpleHostProvider("localhost"), http.DefaultTransport, nil)

	summary := FetchURLs(ctx, client, cfg, http.MethodGet, nil, "", []string{server.URL + "/ping"})
	assert.Equal(t, 1, summary.Succeeded)

	dumps := logs.FilterMessageSnippet("GET " + server.URL + "/ping [200]").All()
	require.Len(t, dumps, 1)
	assert.Equal(t, zapcore.DebugLevel, dumps[0].Level)
	assert.Contains(t, dumps[0].Message, "Response: HTTP/1.1 200 OK")
	assert.Equal(t, 1, logs.FilterMessage("API request").Len())
}

// TestFetchURLs_CanceledContext tests that a canceled context stops the run.
func TestFetchURLs_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, logs := newObservedContext()
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	cfg := config.NewDefaultConfig()
	require.NoError(t, config.ValidateConfig(cfg))

	summary := FetchURLs(ctx, http.DefaultClient, cfg, "", nil, "", []string{"http://localhost:8080/a", "http://localhost:8080/b"})

	assert.Zero(t, summary.Succeeded)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, 1, logs.FilterMessage("Interrupted, skipping remaining URLs").Len())
}

// TestExecuteInitCommand tests that init writes a loadable configuration.
func TestExecuteInitCommand(t *testing.T) {
	t.Parallel()

	ctx, logs := newObservedContext()
	configPath := filepath.Join(t.TempDir(), "init.yaml")

	ExecuteInitCommand(ctx, configPath, false)

	_, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Configuration written to "+configPath).Len())

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	require.NoError(t, config.ValidateConfig(cfg))
	assert.Equal(t, config.DefaultBackendMarker, cfg.BackendMarker)
}
