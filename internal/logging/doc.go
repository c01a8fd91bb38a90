// Package logging provides structured logging for aion.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent unless a level is requested, either with --log-level or the
// AION_LOG_LEVEL environment variable.
//
// # Log Levels
//
//   - Debug: Step transitions, key handling, terminal state
//   - Info: Config loaded, created or saved
//   - Warn: Recoverable problems (unusable config moved aside, validation failures)
//   - Error: Terminal setup or I/O failures
//
// # Output
//
// Output goes to stderr, or to the file named by --log-file / AION_LOG_FILE.
// It never goes to stdout, where the setup wizard draws its interface.
//
// # Components
//
// Packages take a named child logger so entries carry their origin:
//
//	log := logging.Named("wizard")
//	logging.LogStepTransition(log, "language", "provider")
//
// # Configuration
//
//	if err := logging.Initialize(logging.Options{Level: "debug"}); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
package logging
