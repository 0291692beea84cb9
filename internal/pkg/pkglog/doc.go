// Package pkglog configures the process-wide slog logger.
//
// Records are written as JSON with "ts", "severity" and "file" keys, and every
// record emitted with a request context carries that request's correlation id.
package pkglog
