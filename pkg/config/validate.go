package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
//
// Validation does not decide provider usability; a config with no usable
// provider passes here and fails at registry construction instead.
func (c *Config) Validate() error {
	var errs []error

	// server.port must be positive.
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be > 0, got %d", c.Server.Port))
	}

	// search.call_timeout must be positive.
	if c.Search.CallTimeout <= 0 {
		errs = append(errs, fmt.Errorf("search.call_timeout must be > 0, got %v", c.Search.CallTimeout))
	}

	// search.max_snippet_length must not be negative (0 disables truncation).
	if c.Search.MaxSnippetLength < 0 {
		errs = append(errs, fmt.Errorf("search.max_snippet_length must be >= 0, got %d", c.Search.MaxSnippetLength))
	}

	// Google credentials come as a pair. Half a pair is a deployment
	// mistake worth failing loudly on instead of silently skipping the
	// provider.
	google := c.Providers.Google
	if (google.APIKey == "") != (google.EngineID == "") {
		errs = append(errs, fmt.Errorf("providers.google requires both api_key and engine_id (or neither)"))
	}

	// auth.type must be a known value.
	switch c.Auth.Type {
	case "none", "apikey", "jwt":
		// valid
	default:
		errs = append(errs, fmt.Errorf("auth.type must be \"none\", \"apikey\", or \"jwt\", got %q", c.Auth.Type))
	}

	// If auth.type is "apikey", at least one key must be configured.
	if c.Auth.Type == "apikey" && len(c.Auth.APIKeys) == 0 {
		errs = append(errs, fmt.Errorf("auth.api_keys must not be empty when auth.type is \"apikey\""))
	}

	// If auth.type is "jwt", a JWKS URL is required.
	if c.Auth.Type == "jwt" && c.Auth.JWT.JWKSURL == "" {
		errs = append(errs, fmt.Errorf("auth.jwt.jwks_url is required when auth.type is \"jwt\""))
	}

	return errors.Join(errs...)
}
