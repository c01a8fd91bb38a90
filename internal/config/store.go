package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/aion-dev/aion/internal/logging"
)

const (
	appName    = "aion"
	configFile = "config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. AION_PROVIDER_MODEL.
	EnvPrefix = "AION"
)

// ErrNotFound is returned by Load when the configuration file does not exist.
var ErrNotFound = errors.New("config file does not exist")

// configKeys lists every key bound to an environment override.
var configKeys = []string{
	"version",
	"language",
	"ui_mode",
	"provider.kind",
	"provider.model",
	"provider.base_url",
	"provider.api_key_env",
	"features.system_scan",
	"features.web_in_terminal",
	"features.command_suggestions",
	"features.safe_execute",
	"caps.read_files",
	"caps.write_files",
	"caps.network",
	"caps.run_commands",
}

// GetConfigDir returns the OS-appropriate configuration directory for aion:
//   - Linux: $XDG_CONFIG_HOME/aion or $HOME/.config/aion
//   - macOS: $HOME/.config/aion
//   - Windows: %LOCALAPPDATA%\aion
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			baseDir = filepath.Join(xdg, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Store loads and saves the configuration file.
type Store struct {
	path string
	log  *zap.Logger
	mu   sync.Mutex
}

// NewStore creates a store for the file at path.
// An empty path selects the OS default location.
func NewStore(path string) (*Store, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}
	return &Store{
		path: path,
		log:  logging.GetLogger().Named("config"),
	}, nil
}

// Path returns the configuration file location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the configuration file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the configuration file, applies AION_* environment overrides
// and validates the result.
func (s *Store) Load() (Config, error) {
	return s.read(true)
}

// LoadFile reads and validates the configuration file as written on disk,
// ignoring environment overrides. Use it when the result may be saved back.
func (s *Store) LoadFile() (Config, error) {
	return s.read(false)
}

func (s *Store) read(withEnv bool) (Config, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%s: %w", s.path, ErrNotFound)
		}
		return Config{}, fmt.Errorf("failed to stat config file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")

	// Provider fields get no defaults: they depend on the kind and are
	// reset as a group by ApplyProviderDefaults.
	def := Defaults()
	v.SetDefault("version", def.Version)
	v.SetDefault("language", def.Language)
	v.SetDefault("ui_mode", string(def.UIMode))
	v.SetDefault("features.system_scan", def.Features.SystemScan)
	v.SetDefault("features.web_in_terminal", def.Features.WebInTerminal)
	v.SetDefault("features.command_suggestions", def.Features.CommandSuggestions)
	v.SetDefault("features.safe_execute", def.Features.SafeExecute)
	v.SetDefault("caps.read_files", def.Caps.ReadFiles)
	v.SetDefault("caps.write_files", def.Caps.WriteFiles)
	v.SetDefault("caps.network", def.Caps.Network)
	v.SetDefault("caps.run_commands", def.Caps.RunCommands)

	if withEnv {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		for _, key := range configKeys {
			if err := v.BindEnv(key); err != nil {
				return Config{}, fmt.Errorf("binding %s env: %w", key, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	logging.LogConfigEvent(s.log, s.path, "loaded", zap.Bool("env_overrides", withEnv))
	return cfg, nil
}

// Save validates cfg and writes it to disk.
// The write is atomic: a temporary file is renamed over the target.
func (s *Store) Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# aion configuration file
# Written by 'aion setup'. API keys are never stored here: api_key_env names
# the environment variable that holds the key.
#
# Location: ` + s.path + `

`)
	data = append(header, data...)

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	logging.LogConfigEvent(s.log, s.path, "saved", zap.String("provider", string(cfg.Provider.Kind)))
	return nil
}

// LoadOrCreate loads the configuration file without environment overrides,
// creating it with Defaults when it is missing. A file that is unreadable or
// invalid on its own is moved aside to <path>.bak before the defaults are
// written. Overrides never decide whether the file is replaced, and the
// result is safe to pass to Save.
func (s *Store) LoadOrCreate() (Config, error) {
	cfg, err := s.LoadFile()
	if err == nil {
		return cfg, nil
	}

	if !errors.Is(err, ErrNotFound) {
		backup := s.path + ".bak"
		s.log.Warn("Config unusable, replacing with defaults",
			zap.String("path", s.path),
			zap.String("backup", backup),
			zap.Error(err),
		)
		if rerr := os.Rename(s.path, backup); rerr != nil {
			return Config{}, fmt.Errorf("failed to back up unusable config (%v): %w", err, rerr)
		}
	}

	cfg = Defaults()
	if err := s.Save(cfg); err != nil {
		return Config{}, err
	}
	logging.LogConfigEvent(s.log, s.path, "created")
	return cfg, nil
}
