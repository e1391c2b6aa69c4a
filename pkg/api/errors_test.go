package api

import (
	"errors"
	"testing"
)

func TestAPIErrorInterface(t *testing.T) {
	var _ error = &APIError{}
	var _ error = &AllProvidersFailedError{}
}

func TestAPIErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			"with param",
			&APIError{Type: ErrorTypeInvalidQuery, Param: "query", Message: "query must not be empty"},
			"invalid_query: query must not be empty (param: query)",
		},
		{
			"without param",
			&APIError{Type: ErrorTypeServerError, Message: "internal failure"},
			"server_error: internal failure",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("APIError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *APIError
		wantType  ErrorType
		wantParam string
	}{
		{"invalid query", NewInvalidQueryError("query", "query must not be empty"), ErrorTypeInvalidQuery, "query"},
		{"server error", NewServerError("internal failure"), ErrorTypeServerError, ""},
		{"no providers configured", NewNoProvidersConfiguredError("no search engines configured"), ErrorTypeNoProvidersConfigured, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", tt.err.Type, tt.wantType)
			}
			if tt.err.Param != tt.wantParam {
				t.Errorf("Param = %q, want %q", tt.err.Param, tt.wantParam)
			}
		})
	}
}

func TestAllProvidersFailedErrorText(t *testing.T) {
	err := &AllProvidersFailedError{Attempts: []Attempt{
		{Provider: "google", Outcome: OutcomeEmpty},
		{Provider: "ollama", Outcome: OutcomeNetwork, Err: errors.New("connection refused")},
	}}

	want := "all search providers failed: google=empty, ollama=network"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAllProvidersFailedErrorEmpty(t *testing.T) {
	err := &AllProvidersFailedError{}
	if got := err.Error(); got != "all search providers failed" {
		t.Errorf("Error() = %q", got)
	}
}
