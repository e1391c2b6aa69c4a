package transport

import (
	"fmt"

	"websearch-mcp/pkg/auth"
	"websearch-mcp/pkg/auth/apikey"
	"websearch-mcp/pkg/auth/jwt"
	"websearch-mcp/pkg/auth/noop"
	"websearch-mcp/pkg/config"
)

// BuildAuthChain constructs the auth chain for the configured auth type.
//
//	none   — every request is accepted with an anonymous identity
//	apikey — static bearer keys, hashed at load time
//	jwt    — JWT validation against a JWKS endpoint
//
// With apikey and jwt the default decision is No: requests carrying no
// recognizable credentials are rejected.
func BuildAuthChain(cfg config.AuthConfig) (*auth.AuthChain, error) {
	switch cfg.Type {
	case "", "none":
		return &auth.AuthChain{
			Authenticators:  []auth.Authenticator{&noop.Authenticator{}},
			DefaultDecision: auth.Yes,
		}, nil

	case "apikey":
		entries := make([]apikey.RawKeyEntry, 0, len(cfg.APIKeys))
		for i, k := range cfg.APIKeys {
			if k.Key == "" {
				return nil, fmt.Errorf("auth.api_keys[%d]: key is empty", i)
			}
			subject := k.Subject
			if subject == "" {
				subject = fmt.Sprintf("apikey-%d", i)
			}
			entries = append(entries, apikey.RawKeyEntry{
				Key:      k.Key,
				Identity: auth.Identity{Subject: subject},
			})
		}
		return &auth.AuthChain{
			Authenticators:  []auth.Authenticator{apikey.New(entries)},
			DefaultDecision: auth.No,
		}, nil

	case "jwt":
		authn := jwt.New(jwt.Config{
			Issuer:   cfg.JWT.Issuer,
			Audience: cfg.JWT.Audience,
			JWKSURL:  cfg.JWT.JWKSURL,
		})
		return &auth.AuthChain{
			Authenticators:  []auth.Authenticator{authn},
			DefaultDecision: auth.No,
		}, nil

	default:
		return nil, fmt.Errorf("unknown auth type %q", cfg.Type)
	}
}
