package config

import "sort"

// CurrentVersion is the only configuration schema version this build understands.
const CurrentVersion = 1

// UIMode selects how aion presents itself after setup.
type UIMode string

const (
	UIModeTUI UIMode = "tui"
	UIModeCLI UIMode = "cli"
)

// ProviderKind identifies the AI provider backing the assistant.
type ProviderKind string

const (
	ProviderOpenAI     ProviderKind = "openai"
	ProviderClaude     ProviderKind = "claude"
	ProviderOpenRouter ProviderKind = "openrouter"
	ProviderOllama     ProviderKind = "ollama"
)

// Config is the complete application configuration.
// It is a plain value: copying it yields an independent configuration.
type Config struct {
	Version  int            `yaml:"version" mapstructure:"version"`
	Language string         `yaml:"language" mapstructure:"language"`
	UIMode   UIMode         `yaml:"ui_mode" mapstructure:"ui_mode"`
	Provider ProviderConfig `yaml:"provider" mapstructure:"provider"`
	Features Features       `yaml:"features" mapstructure:"features"`
	Caps     Capabilities   `yaml:"caps" mapstructure:"caps"`
}

// ProviderConfig selects a provider and the model it serves.
// BaseURL and APIKeyEnv are optional; an empty string means "not set".
type ProviderConfig struct {
	Kind      ProviderKind `yaml:"kind" mapstructure:"kind"`
	Model     string       `yaml:"model" mapstructure:"model"`
	BaseURL   string       `yaml:"base_url,omitempty" mapstructure:"base_url"`
	APIKeyEnv string       `yaml:"api_key_env,omitempty" mapstructure:"api_key_env"` // Name of the env var holding the key, never the key itself
}

// Features toggles optional assistant features.
type Features struct {
	SystemScan         bool `yaml:"system_scan" mapstructure:"system_scan"`
	WebInTerminal      bool `yaml:"web_in_terminal" mapstructure:"web_in_terminal"`
	CommandSuggestions bool `yaml:"command_suggestions" mapstructure:"command_suggestions"`
	SafeExecute        bool `yaml:"safe_execute" mapstructure:"safe_execute"`
}

// Capabilities describe what the assistant may do at runtime.
type Capabilities struct {
	ReadFiles   bool `yaml:"read_files" mapstructure:"read_files"`
	WriteFiles  bool `yaml:"write_files" mapstructure:"write_files"`
	Network     bool `yaml:"network" mapstructure:"network"`
	RunCommands bool `yaml:"run_commands" mapstructure:"run_commands"`
}

// allowedLanguages is the set of language codes a configuration may carry.
var allowedLanguages = []string{"ar", "en"}

// AllowedLanguages returns the sorted list of supported language codes.
func AllowedLanguages() []string {
	out := make([]string, len(allowedLanguages))
	copy(out, allowedLanguages)
	sort.Strings(out)
	return out
}

// IsAllowedLanguage reports whether code is a supported language.
func IsAllowedLanguage(code string) bool {
	for _, l := range allowedLanguages {
		if l == code {
			return true
		}
	}
	return false
}

// Defaults returns the canonical first-run configuration.
func Defaults() Config {
	cfg := Config{
		Version:  CurrentVersion,
		Language: "en",
		UIMode:   UIModeTUI,
		Features: Features{
			SystemScan:         true,
			WebInTerminal:      true,
			CommandSuggestions: true,
			SafeExecute:        true,
		},
		Caps: Capabilities{
			ReadFiles:   true,
			WriteFiles:  false,
			Network:     true,
			RunCommands: false,
		},
	}
	cfg.ApplyProviderDefaults(ProviderOllama)
	return cfg
}

// Clone returns an independent copy of the configuration.
func (c Config) Clone() Config {
	return c
}

// ApplyProviderDefaults switches the provider kind and resets the model,
// base URL and API key variable to the defaults of the new kind.
// All other fields are left untouched.
func (c *Config) ApplyProviderDefaults(kind ProviderKind) {
	c.Provider = ProviderConfig{
		Kind:      kind,
		Model:     kind.DefaultModel(),
		BaseURL:   kind.DefaultBaseURL(),
		APIKeyEnv: kind.DefaultAPIKeyEnv(),
	}
}

// ProviderKinds returns every known provider in menu order.
func ProviderKinds() []ProviderKind {
	return []ProviderKind{ProviderOpenAI, ProviderClaude, ProviderOpenRouter, ProviderOllama}
}

// Valid reports whether k is one of the known provider kinds.
func (k ProviderKind) Valid() bool {
	switch k {
	case ProviderOpenAI, ProviderClaude, ProviderOpenRouter, ProviderOllama:
		return true
	default:
		return false
	}
}

// DefaultModel returns the model selected when switching to this provider.
func (k ProviderKind) DefaultModel() string {
	switch k {
	case ProviderOpenAI:
		return "gpt-4.1-mini"
	case ProviderClaude:
		return "claude-3-5-sonnet-latest"
	case ProviderOpenRouter:
		return "openai/gpt-4o-mini"
	case ProviderOllama:
		return "mistral"
	default:
		return ""
	}
}

// DefaultBaseURL returns the endpoint used by the provider, or "" when the
// provider's SDK default applies.
func (k ProviderKind) DefaultBaseURL() string {
	switch k {
	case ProviderOpenRouter:
		return "https://openrouter.ai/api/v1"
	case ProviderOllama:
		return "http://localhost:11434"
	default:
		return ""
	}
}

// DefaultAPIKeyEnv returns the environment variable conventionally holding
// the provider's API key, or "" for keyless providers.
func (k ProviderKind) DefaultAPIKeyEnv() string {
	switch k {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderClaude:
		return "ANTHROPIC_API_KEY"
	case ProviderOpenRouter:
		return "OPENROUTER_API_KEY"
	default:
		return ""
	}
}

// RequiresAPIKey reports whether the provider needs api_key_env.
func (k ProviderKind) RequiresAPIKey() bool {
	switch k {
	case ProviderOpenAI, ProviderClaude, ProviderOpenRouter:
		return true
	default:
		return false
	}
}

// RequiresBaseURL reports whether the provider needs base_url.
func (k ProviderKind) RequiresBaseURL() bool {
	switch k {
	case ProviderOpenRouter, ProviderOllama:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable provider name.
func (k ProviderKind) DisplayName() string {
	switch k {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderClaude:
		return "Claude"
	case ProviderOpenRouter:
		return "OpenRouter"
	case ProviderOllama:
		return "Ollama"
	default:
		return string(k)
	}
}
