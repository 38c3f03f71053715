// Package app wires the configuration, the request logger and an HTTP client together
// and implements the commands of the localapi-logger CLI.
package app
