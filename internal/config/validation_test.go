package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate exercises every validation rule in isolation
func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantErr   error
		wantField string
	}{
		{"Valid: defaults", func(c *Config) {}, nil, ""},
		{"Valid: arabic", func(c *Config) { c.Language = "ar" }, nil, ""},
		{"Valid: openai", func(c *Config) { c.ApplyProviderDefaults(ProviderOpenAI) }, nil, ""},
		{"Valid: claude", func(c *Config) { c.ApplyProviderDefaults(ProviderClaude) }, nil, ""},
		{"Valid: openrouter", func(c *Config) { c.ApplyProviderDefaults(ProviderOpenRouter) }, nil, ""},
		{"Valid: ollama with key env", func(c *Config) { c.Provider.APIKeyEnv = "OLLAMA_KEY" }, nil, ""},
		{"Valid: openai with base url", func(c *Config) {
			c.ApplyProviderDefaults(ProviderOpenAI)
			c.Provider.BaseURL = "https://proxy.internal/v1"
		}, nil, ""},
		{"Invalid: version 0", func(c *Config) { c.Version = 0 }, ErrUnsupportedVersion, "version"},
		{"Invalid: version 2", func(c *Config) { c.Version = 2 }, ErrUnsupportedVersion, "version"},
		{"Invalid: language fr", func(c *Config) { c.Language = "fr" }, ErrInvalidLanguage, "language"},
		{"Invalid: empty language", func(c *Config) { c.Language = "" }, ErrInvalidLanguage, "language"},
		{"Invalid: empty model", func(c *Config) { c.Provider.Model = "" }, ErrEmptyModel, "provider.model"},
		{"Invalid: whitespace model", func(c *Config) { c.Provider.Model = " \t " }, ErrEmptyModel, "provider.model"},
		{"Invalid: ollama without base url", func(c *Config) { c.Provider.BaseURL = "" }, ErrMissingBaseURL, "provider.base_url"},
		{"Invalid: openrouter without base url", func(c *Config) {
			c.ApplyProviderDefaults(ProviderOpenRouter)
			c.Provider.BaseURL = "  "
		}, ErrMissingBaseURL, "provider.base_url"},
		{"Invalid: openrouter without key env", func(c *Config) {
			c.ApplyProviderDefaults(ProviderOpenRouter)
			c.Provider.APIKeyEnv = ""
		}, ErrMissingAPIKeyEnv, "provider.api_key_env"},
		{"Invalid: openai without key env", func(c *Config) {
			c.ApplyProviderDefaults(ProviderOpenAI)
			c.Provider.APIKeyEnv = ""
		}, ErrMissingAPIKeyEnv, "provider.api_key_env"},
		{"Invalid: claude without key env", func(c *Config) {
			c.ApplyProviderDefaults(ProviderClaude)
			c.Provider.APIKeyEnv = " "
		}, ErrMissingAPIKeyEnv, "provider.api_key_env"},
		{"Invalid: unknown provider", func(c *Config) { c.Provider.Kind = "gemini" }, ErrUnknownProvider, "provider.kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "Validate() = %v, want %v", err, tt.wantErr)
			assert.True(t, IsValidationError(err), "expected ValidationError, got %T", err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

// TestValidateOrder checks that the first failing rule wins
func TestValidateOrder(t *testing.T) {
	cfg := Defaults()
	cfg.Version = 9
	cfg.Language = "xx"
	cfg.Provider.Model = ""

	assert.ErrorIs(t, cfg.Validate(), ErrUnsupportedVersion)

	cfg.Version = CurrentVersion
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidLanguage)

	cfg.Language = "en"
	assert.ErrorIs(t, cfg.Validate(), ErrEmptyModel)
}

// TestValidateIsPure checks Validate does not modify its receiver
func TestValidateIsPure(t *testing.T) {
	cfg := Defaults()
	cfg.Provider.Model = " "
	before := cfg

	_ = cfg.Validate()
	_ = cfg.Validate()

	assert.Equal(t, before, cfg)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "language", Value: "fr", Err: ErrInvalidLanguage}
	assert.Equal(t, `language: language is invalid (got "fr")`, err.Error())

	err = &ValidationError{Field: "provider.model", Err: ErrEmptyModel}
	assert.Equal(t, "provider.model: provider model is empty", err.Error())

	assert.False(t, IsValidationError(errors.New("plain")))
	assert.False(t, IsValidationError(nil))
}
