// Package logger provides structured logging for the coatcheck tools.
//
// It wraps the standard library log/slog:
//
//   - JSON output by default, text for terminals
//   - Dynamic log level adjustment at runtime
//   - A process-wide default logger for package-level helpers
package logger
