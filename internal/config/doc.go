// Package config provides the aion configuration model and its on-disk store.
//
// The configuration is a plain value (Config) describing the UI language,
// the AI provider and model, optional features and runtime capabilities.
// Values are validated with Config.Validate before they are saved, and again
// after they are loaded.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/aion/config.yaml or $HOME/.config/aion/config.yaml
//   - macOS: $HOME/.config/aion/config.yaml
//   - Windows: %LOCALAPPDATA%\aion\config.yaml
//
// # Environment Overrides
//
// Every key can be overridden with an AION_ prefixed variable where dots
// become underscores, for example AION_PROVIDER_MODEL=llama3. Only Load
// applies them. LoadFile and LoadOrCreate return the file as written, so a
// configuration passed on to Save never picks up an override.
//
// # Security
//
// IMPORTANT: API keys are NEVER written to the configuration file. The
// provider's api_key_env field names the environment variable holding the key.
//
// # Usage Example
//
//	store, err := config.NewStore("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg, err := store.LoadOrCreate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg.ApplyProviderDefaults(config.ProviderClaude)
//	if err := store.Save(cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Config is a value type and safe to copy. Store serializes writes with a
// mutex and replaces the file atomically.
package config
