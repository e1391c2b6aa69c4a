// Package config provides unified configuration for the websearch-mcp server.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (legacy names like GOOGLE_API_KEY
//     and WEBSEARCH_-prefixed names)
//  4. File reference resolution (_file suffix fields)
//  5. Validation
package config

import "time"

// Config holds all configuration for the websearch-mcp server.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Search        SearchConfig        `yaml:"search"`
	Providers     ProvidersConfig     `yaml:"providers"`
	Auth          AuthConfig          `yaml:"auth"`
	Observability ObservabilityConfig `yaml:"observability"`
	Debug         DebugConfig         `yaml:"debug"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`             // default: 8080
	ReadTimeout     time.Duration `yaml:"read_timeout"`     // default: 30s
	WriteTimeout    time.Duration `yaml:"write_timeout"`    // default: 120s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // default: 30s
}

// SearchConfig holds orchestration settings shared by all providers.
type SearchConfig struct {
	// CallTimeout bounds each individual provider invocation.
	CallTimeout time.Duration `yaml:"call_timeout"` // default: 15s

	// MaxSnippetLength truncates result snippets before formatting.
	// Zero disables truncation.
	MaxSnippetLength int `yaml:"max_snippet_length"` // default: 512
}

// ProvidersConfig holds the credential sets for every known back-end.
// Presence of credentials, not this struct, decides which providers are
// usable; that detection happens at registry construction.
type ProvidersConfig struct {
	Google  GoogleConfig  `yaml:"google"`
	Ollama  OllamaConfig  `yaml:"ollama"`
	SearXNG SearXNGConfig `yaml:"searxng"`
}

// GoogleConfig holds Google Custom Search credentials. The provider is
// usable only when both APIKey and EngineID are non-empty.
type GoogleConfig struct {
	APIKey     string `yaml:"api_key"`
	APIKeyFile string `yaml:"api_key_file"` // _file variant for api_key
	EngineID   string `yaml:"engine_id"`
}

// OllamaConfig holds Ollama web-search settings. The provider works
// without a key against a local instance; a key switches it to the
// hosted service with bearer authentication.
type OllamaConfig struct {
	Enabled    *bool  `yaml:"enabled"` // default: true
	APIKey     string `yaml:"api_key"`
	APIKeyFile string `yaml:"api_key_file"` // _file variant for api_key
	BaseURL    string `yaml:"base_url"`     // default: adapter-defined
}

// SearXNGConfig holds SearXNG settings. The provider is usable only when
// URL is non-empty.
type SearXNGConfig struct {
	URL string `yaml:"url"`
}

// AuthConfig holds authentication settings for the MCP endpoint.
type AuthConfig struct {
	Type    string         `yaml:"type"`     // "none", "apikey", or "jwt", default: "none"
	APIKeys []APIKeyConfig `yaml:"api_keys"` // API key entries for type=apikey
	JWT     JWTConfig      `yaml:"jwt"`      // JWKS settings for type=jwt
}

// APIKeyConfig describes a single API key entry.
type APIKeyConfig struct {
	Key     string `yaml:"key"`
	KeyFile string `yaml:"key_file"` // _file variant for key
	Subject string `yaml:"subject"`
}

// JWTConfig holds JWT/OIDC validation settings.
type JWTConfig struct {
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
	JWKSURL  string `yaml:"jwks_url"`
}

// ObservabilityConfig holds monitoring and instrumentation settings.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // default: true
	Path    string `yaml:"path"`    // default: "/metrics"
}

// DebugConfig holds debug logging settings. Environment variables
// (WEBSEARCH_DEBUG, WEBSEARCH_LOG_LEVEL) take precedence.
type DebugConfig struct {
	Categories string `yaml:"categories"` // comma-separated, e.g. "providers,search"
	Level      string `yaml:"level"`      // ERROR, WARN, INFO, DEBUG, TRACE
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	enabled := true
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    120 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Search: SearchConfig{
			CallTimeout:      15 * time.Second,
			MaxSnippetLength: 512,
		},
		Providers: ProvidersConfig{
			Ollama: OllamaConfig{
				Enabled: &enabled,
			},
		},
		Auth: AuthConfig{
			Type: "none",
		},
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: true,
				Path:    "/metrics",
			},
		},
	}
}

// OllamaEnabled reports whether the Ollama provider is switched on.
// An unset flag counts as enabled, matching the provider's keyless
// local mode.
func (c *Config) OllamaEnabled() bool {
	return c.Providers.Ollama.Enabled == nil || *c.Providers.Ollama.Enabled
}
