package utils

//go:generate $MOCKGEN -source=host_provider.go -destination=mocks/host_provider_mock.go

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// HostProvider is an interface that defines a method for retrieving the host identifier
// of the environment the application runs in, e.g. "localhost" for a local front-end.
type HostProvider interface {
	// GetHost returns the current host identifier.
	GetHost() string
}

// SimpleHostProvider is a basic implementation of the HostProvider interface.
// It provides a static host identifier that is set during initialization.
type SimpleHostProvider struct {
	// host is the host identifier to return.
	host string
}

// OriginHostProvider derives the host identifier from a front-end origin URL.
type OriginHostProvider struct {
	// origin is the parsed origin URL.
	origin *url.URL
}

// Static error definitions for better error handling.
var (
	// ErrEmptyOriginHost indicates that the origin URL has no hostname.
	ErrEmptyOriginHost = errors.New("origin URL has no hostname")
)

// NewSimpleHostProvider creates and returns a new instance of SimpleHostProvider.
func NewSimpleHostProvider(host string) HostProvider {
	return &SimpleHostProvider{host: host}
}

// GetHost returns the static host identifier.
func (p *SimpleHostProvider) GetHost() string {
	return p.host
}

// NewOriginHostProvider parses origin and returns a provider reporting its hostname.
func NewOriginHostProvider(origin string) (HostProvider, error) {
	parsed, err := url.Parse(strings.TrimSpace(origin))
	if err != nil {
		return nil, fmt.Errorf("invalid origin URL: %w", err)
	}

	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("%w: '%s'", ErrEmptyOriginHost, origin)
	}

	return &OriginHostProvider{origin: parsed}, nil
}

// GetHost returns the hostname of the origin without port or IPv6 brackets.
func (p *OriginHostProvider) GetHost() string {
	return p.origin.Hostname()
}
