package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validation failures. Validate wraps exactly one of these in a *ValidationError,
// so callers can branch with errors.Is.
var (
	ErrUnsupportedVersion = errors.New("config version is not supported")
	ErrInvalidLanguage    = errors.New("language is invalid")
	ErrEmptyModel         = errors.New("provider model is empty")
	ErrMissingBaseURL     = errors.New("base_url is required for this provider")
	ErrMissingAPIKeyEnv   = errors.New("api_key_env is required for this provider")
	ErrUnknownProvider    = errors.New("provider kind is unknown")
)

// ValidationError reports the configuration field that failed validation.
type ValidationError struct {
	Field string // Dotted field path, e.g. "provider.base_url"
	Value string // Offending value, empty when the field is missing
	Err   error  // One of the Err* sentinels above
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %v (got %q)", e.Field, e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap returns the sentinel for errors.Is checks
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if err is (or wraps) a configuration validation error
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// Validate checks the configuration and returns the first violated rule.
// Checks run in a fixed order: version, language, model, then the fields
// the provider kind requires.
func (c Config) Validate() error {
	if c.Version != CurrentVersion {
		return &ValidationError{Field: "version", Value: strconv.Itoa(c.Version), Err: ErrUnsupportedVersion}
	}

	if !IsAllowedLanguage(c.Language) {
		return &ValidationError{Field: "language", Value: c.Language, Err: ErrInvalidLanguage}
	}

	if isBlank(c.Provider.Model) {
		return &ValidationError{Field: "provider.model", Err: ErrEmptyModel}
	}

	kind := c.Provider.Kind
	if !kind.Valid() {
		return &ValidationError{Field: "provider.kind", Value: string(kind), Err: ErrUnknownProvider}
	}
	if kind.RequiresBaseURL() && isBlank(c.Provider.BaseURL) {
		return &ValidationError{Field: "provider.base_url", Err: ErrMissingBaseURL}
	}
	if kind.RequiresAPIKey() && isBlank(c.Provider.APIKeyEnv) {
		return &ValidationError{Field: "provider.api_key_env", Err: ErrMissingAPIKeyEnv}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
