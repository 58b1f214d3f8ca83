// Package logging provides the leveled, structured logger wiseio reports
// stream events through.
package logging

// Logger is the logging surface used by streams and openers.
//
// Every method takes a message and optional key-value pairs:
//
//	logger.Debug("file opened", "path", path, "mode", "read")
type Logger interface {
	// Debug records routine events: opens, closes, end of file.
	Debug(msg string, args ...any)

	Info(msg string, args ...any)

	Warn(msg string, args ...any)

	// Error records failures: open errors, I/O errors, mode mismatches
	// and broken preconditions.
	Error(msg string, args ...any)

	// With returns a Logger that adds args to every record.
	With(args ...any) Logger
}
