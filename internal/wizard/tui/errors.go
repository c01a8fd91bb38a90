package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aion-dev/aion/internal/config"
	"github.com/aion-dev/aion/internal/urls"
)

// ErrorType represents the category of error that ended a wizard session
type ErrorType int

const (
	// ErrTypeCancelled indicates the user quit or backed out of the first step
	ErrTypeCancelled ErrorType = iota
	// ErrTypeTerminalSetup indicates the terminal could not be prepared
	ErrTypeTerminalSetup
	// ErrTypeTerminalIO indicates a failure while the wizard was running
	ErrTypeTerminalIO
	// ErrTypeValidation indicates the final configuration failed validation
	ErrTypeValidation
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeCancelled:
		return "Cancelled"
	case ErrTypeTerminalSetup:
		return "Terminal Setup Error"
	case ErrTypeTerminalIO:
		return "Terminal I/O Error"
	case ErrTypeValidation:
		return "Validation Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// WizardError reports why a wizard session did not produce a configuration
type WizardError struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *WizardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *WizardError) Unwrap() error {
	return e.Err
}

// newCancelledError creates a cancellation error
func newCancelledError(reason string) *WizardError {
	return &WizardError{
		Type:    ErrTypeCancelled,
		Message: "wizard cancelled by user (" + reason + ")",
	}
}

// newTerminalSetupError creates a terminal setup error
func newTerminalSetupError(message string, err error) *WizardError {
	return &WizardError{
		Type:    ErrTypeTerminalSetup,
		Message: message,
		Err:     err,
	}
}

// newTerminalIOError creates a terminal I/O error
func newTerminalIOError(message string, err error) *WizardError {
	return &WizardError{
		Type:    ErrTypeTerminalIO,
		Message: message,
		Err:     err,
	}
}

// newValidationError wraps a config validation failure
func newValidationError(err error) *WizardError {
	return &WizardError{
		Type:    ErrTypeValidation,
		Message: "configuration is invalid",
		Err:     err,
	}
}

func errorType(err error) (ErrorType, bool) {
	var wErr *WizardError
	if errors.As(err, &wErr) {
		return wErr.Type, true
	}
	return 0, false
}

// IsCancelled checks if an error is a user cancellation
func IsCancelled(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeCancelled
}

// IsTerminalError checks if an error came from terminal setup or terminal I/O
func IsTerminalError(err error) bool {
	t, ok := errorType(err)
	return ok && (t == ErrTypeTerminalSetup || t == ErrTypeTerminalIO)
}

// IsValidationError checks if an error is a final validation failure.
// The wrapped config.ValidationError stays reachable through errors.As.
func IsValidationError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeValidation
}

// TroubleshootingHint returns user-friendly advice for an error
func TroubleshootingHint(err error) string {
	t, ok := errorType(err)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch t {
	case ErrTypeCancelled:
		return "Setup was cancelled. Nothing was saved. Run 'aion setup' to start again."

	case ErrTypeTerminalSetup:
		return strings.Join([]string{
			"The terminal could not be prepared for the setup wizard.",
			"Troubleshooting:",
			"  • Run aion directly in an interactive terminal (not piped or redirected)",
			"  • Try another terminal emulator (Windows Terminal, VS Code, iTerm2)",
			"  • Set AION_LOG_LEVEL=debug and AION_LOG_FILE to capture details",
		}, "\n")

	case ErrTypeTerminalIO:
		return strings.Join([]string{
			"The terminal stopped responding while the wizard was running.",
			"Troubleshooting:",
			"  • Try another terminal emulator (Windows Terminal, VS Code, iTerm2)",
			"  • If the terminal looks broken, run 'reset'",
			"  • Report the terminal you use at " + urls.Issues,
		}, "\n")

	case ErrTypeValidation:
		var vErr *config.ValidationError
		if errors.As(err, &vErr) {
			return fmt.Sprintf("The %s setting is invalid: %v. Run 'aion setup' to fix it.", vErr.Field, vErr.Err)
		}
		return "The configuration values are invalid. Check the error message for details."

	default:
		return "An error occurred. Please check the error message for details."
	}
}
