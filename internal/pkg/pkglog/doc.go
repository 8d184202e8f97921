// Package pkglog configures structured logging for the application.
//
// It sets up the default slog logger (JSON to stdout) and provides helpers to
// carry a correlation ID through context so every log line of a request can be
// tied together.
package pkglog
