// Package ui renders the styled, non-interactive output of the aion CLI.
//
// The setup wizard lives in internal/wizard/tui. This package covers
// everything printed around it: the configuration summary shown by
// "aion config show", the result boxes printed after saving or validating,
// and the typed confirmation used by "aion config reset".
//
// # Components
//
//   - Header: bordered banner with a title, subtitle and aligned fields
//   - Result: success, failure or warning box with details and
//     troubleshooting tips
//   - Printer: writes components to an io.Writer at a fixed width
//
// Example:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.Println(ui.ConfigSummary(cfg, store.Path(), tr).SetWidth(p.Width()).Render())
//	p.PrintSuccess(tr.T(ui.Locale(cfg), "cli.saved"), nil)
//
// # Logging Integration
//
// Logging is controlled by AION_LOG_LEVEL. When unset, zap logging is
// silent so that only the curated output reaches the terminal.
package ui
