// Package logging provides structured logging for termform.
//
// This package wraps a global zap logger with convenience functions for the
// events the form engine produces: key dispatch, focus moves, validation
// failures, status transitions and output writes.
//
// # Log Levels
//
//   - Debug: Per-key dispatch and focus movement
//   - Info: Status transitions, output written
//   - Warn: Validation failures on submit
//   - Error: I/O failures
//
// # Silent by Default
//
// Logging is disabled unless a level is given explicitly or through the
// TERMFORM_LOG_LEVEL environment variable. The terminal UI owns stdout, so
// interactive runs should send logs to a file:
//
//	if err := logging.InitializeWithOutput("debug", "/tmp/termform.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.Info("Form submitted",
//	    zap.String("title", "Shipping Information"),
//	    zap.Int("fields", 9),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
