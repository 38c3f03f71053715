package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxDumpLength is the default maximum length of a debug request or response dump.
	DefaultMaxDumpLength = 4 * 1024

	// DefaultMethod is reported for requests that do not specify a method.
	DefaultMethod = "GET"

	// activationMessage is logged once when the request logger is installed.
	activationMessage = "Request logger initialized for local development"

	// requestLogMessage is the message of every logged request entry.
	requestLogMessage = "API request"
)
