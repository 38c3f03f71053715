// Package utils provides small helpers shared by the application:
// host identifier providers, content type checks, safe conversions and truncation.
package utils
