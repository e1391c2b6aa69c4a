package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path, WEBSEARCH_CONFIG env, ./config.yaml, /etc/websearch/config.yaml)
//  3. Environment variable overrides
//  4. File reference resolution (_file suffix)
//  5. Validation
func Load(configPath string) (*Config, error) {
	// Start with defaults.
	cfg := Defaults()

	// Discover and load YAML config file.
	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	// Apply environment variable overrides.
	applyEnvOverrides(&cfg)

	// Resolve _file references.
	if err := resolveFileReferences(&cfg); err != nil {
		return nil, fmt.Errorf("resolving file references: %w", err)
	}

	// Validate.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile finds the config file path using the discovery order:
// 1. Explicit configPath argument
// 2. WEBSEARCH_CONFIG environment variable
// 3. ./config.yaml in the current directory
// 4. /etc/websearch/config.yaml
//
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string) string {
	// Explicit path takes priority.
	if configPath != "" {
		return configPath
	}

	// Check WEBSEARCH_CONFIG env var.
	if envPath := os.Getenv("WEBSEARCH_CONFIG"); envPath != "" {
		return envPath
	}

	// Check common locations.
	candidates := []string{
		"config.yaml",
		"/etc/websearch/config.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadYAMLFile reads and parses a YAML file into the Config struct.
// Fields not present in the YAML retain their current (default) values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps environment variables to config fields.
// The provider credential names (GOOGLE_API_KEY, GOOGLE_SEARCH_ENGINE_ID,
// OLLAMA_API_KEY, MAX_SNIPPET_LENGTH) keep the names the original
// deployment documentation uses; server-level settings use the
// WEBSEARCH_ prefix.
func applyEnvOverrides(cfg *Config) {
	// Provider credentials.
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		cfg.Providers.Google.APIKey = v
	}
	if v := os.Getenv("GOOGLE_SEARCH_ENGINE_ID"); v != "" {
		cfg.Providers.Google.EngineID = v
	}
	if v := os.Getenv("OLLAMA_API_KEY"); v != "" {
		cfg.Providers.Ollama.APIKey = v
	}
	if v := os.Getenv("OLLAMA_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Providers.Ollama.Enabled = &b
		}
	}
	if v := os.Getenv("SEARXNG_URL"); v != "" {
		cfg.Providers.SearXNG.URL = v
	}

	// Search settings.
	if v := os.Getenv("MAX_SNIPPET_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.MaxSnippetLength = n
		}
	}
	if v := os.Getenv("WEBSEARCH_CALL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Search.CallTimeout = d
		}
	}

	// Server settings.
	if v := os.Getenv("WEBSEARCH_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("WEBSEARCH_AUTH_TYPE"); v != "" {
		cfg.Auth.Type = v
	}
}

// resolveFileReferences reads _file fields and populates the corresponding
// value fields. For each field ending in _file, if the value field is empty
// and the file field is set, the file is read, whitespace is trimmed, and
// the value field is populated.
func resolveFileReferences(cfg *Config) error {
	// providers.google.api_key_file -> providers.google.api_key
	if cfg.Providers.Google.APIKeyFile != "" && cfg.Providers.Google.APIKey == "" {
		val, err := readSecretFile(cfg.Providers.Google.APIKeyFile)
		if err != nil {
			return fmt.Errorf("providers.google.api_key_file: %w", err)
		}
		cfg.Providers.Google.APIKey = val
	}

	// providers.ollama.api_key_file -> providers.ollama.api_key
	if cfg.Providers.Ollama.APIKeyFile != "" && cfg.Providers.Ollama.APIKey == "" {
		val, err := readSecretFile(cfg.Providers.Ollama.APIKeyFile)
		if err != nil {
			return fmt.Errorf("providers.ollama.api_key_file: %w", err)
		}
		cfg.Providers.Ollama.APIKey = val
	}

	// auth.api_keys[*].key_file -> auth.api_keys[*].key
	for i := range cfg.Auth.APIKeys {
		if cfg.Auth.APIKeys[i].KeyFile != "" && cfg.Auth.APIKeys[i].Key == "" {
			val, err := readSecretFile(cfg.Auth.APIKeys[i].KeyFile)
			if err != nil {
				return fmt.Errorf("auth.api_keys[%d].key_file: %w", i, err)
			}
			cfg.Auth.APIKeys[i].Key = val
		}
	}

	return nil
}

// readSecretFile reads a secret from a file and trims surrounding whitespace.
func readSecretFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
