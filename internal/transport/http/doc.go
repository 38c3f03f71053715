// Package http provides the development request logger: an http.RoundTripper
// that reports requests aimed at the local backend and otherwise stays out of the way.
// The logger only installs itself when the application runs on a local-development host.
// LogTransport adds full request and response dumps when the log level is debug.
package http
