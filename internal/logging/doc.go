// Package logging provides structured logging for homeport.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the application. Because homeport is a full-screen terminal
// program, logging is silent by default: writing to stdout would corrupt the
// menu. Set HOMEPORT_LOG_LEVEL to enable output, and point HOMEPORT_LOG_FILE
// at a file when running the interactive menu.
//
// # Log Levels
//
//   - Debug: detailed tracing (menu rebuilds, filter changes, raw API payloads)
//   - Info: normal operations (entry created/deleted, teleport requested)
//   - Warn: non-fatal issues (watcher reconnects, icon fallbacks)
//   - Error: failures surfaced to the user or swallowed by design
//
// # Structured Logging
//
// All log functions use structured fields:
//
//	logging.Info("entry created",
//	    zap.String("owner", owner.Name),
//	    zap.String("name", entry.Name),
//	)
//
// # Configuration
//
// Initialize once at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
package logging
