// Package logger wraps a zap sugared logger behind package-level helpers.
// A logger can be carried in a context; the helpers fall back to the global one.
// The global level is atomic so configuration can change it after startup.
package logger
