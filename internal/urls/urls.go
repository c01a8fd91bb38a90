package urls

import "github.com/aion-dev/aion/internal/config"

// Project pages
const (
	// Repository is the aion source repository
	Repository = "https://github.com/aion-dev/aion"

	// Issues is where bugs and terminal compatibility problems are reported
	Issues = "https://github.com/aion-dev/aion/issues"
)

// Provider pages where users obtain credentials or install the runtime
const (
	OpenAIAPIKeys     = "https://platform.openai.com/api-keys"
	AnthropicAPIKeys  = "https://console.anthropic.com/settings/keys"
	OpenRouterAPIKeys = "https://openrouter.ai/keys"

	// OllamaDownload is the local runtime installer; Ollama needs no API key
	OllamaDownload = "https://ollama.com/download"
)

// ForProvider returns the page where the provider's credentials (or, for
// Ollama, the runtime) can be obtained. Unknown kinds return "".
func ForProvider(kind config.ProviderKind) string {
	switch kind {
	case config.ProviderOpenAI:
		return OpenAIAPIKeys
	case config.ProviderClaude:
		return AnthropicAPIKeys
	case config.ProviderOpenRouter:
		return OpenRouterAPIKeys
	case config.ProviderOllama:
		return OllamaDownload
	default:
		return ""
	}
}
