// Package logging provides structured logging for the troubleshooter.
//
// This package wraps a zap logger with convenience functions. Logging is
// silent by default so that the wizard and the resolve output stay clean.
//
// # Enabling Logs
//
// Set TROUBLESHOOTER_LOG_LEVEL to "debug", "info", "warn", or "error", or pass
// --log-level. Because the interactive wizard owns the terminal, point the
// output at a file with TROUBLESHOOTER_LOG_FILE or --log-file:
//
//	TROUBLESHOOTER_LOG_LEVEL=debug TROUBLESHOOTER_LOG_FILE=/tmp/ts.log troubleshooter
//
// # Session Logging
//
// Each wizard or resolve run gets a session ID (a UUID). Selection
// transitions are logged at debug level and rejected operations at warn:
//
//	logging.LogSessionStart(id, "wizard")
//	logging.LogTransition(id, "select_device", "mobile", "-/-/-", "mobile/-/-")
//	logging.LogRejected(id, "select_problem", "battery", err)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and SetLogger
// are expected to run once at startup.
package logging
