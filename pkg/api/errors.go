package api

import (
	"fmt"
	"strings"
)

// ErrorType represents the category of an API error.
type ErrorType string

const (
	ErrorTypeServerError           ErrorType = "server_error"
	ErrorTypeInvalidQuery          ErrorType = "invalid_query"
	ErrorTypeUnauthorized          ErrorType = "unauthorized"
	ErrorTypeNoProvidersConfigured ErrorType = "no_providers_configured"
	ErrorTypeAllProvidersFailed    ErrorType = "all_providers_failed"
)

// APIError represents a structured error with type, param, and message.
type APIError struct {
	Type    ErrorType `json:"type"`
	Param   string    `json:"param,omitempty"`
	Message string    `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: %s (param: %s)", e.Type, e.Message, e.Param)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewInvalidQueryError creates an APIError for a query rejected before any
// provider call.
func NewInvalidQueryError(param, message string) *APIError {
	return &APIError{
		Type:    ErrorTypeInvalidQuery,
		Param:   param,
		Message: message,
	}
}

// NewServerError creates an APIError for internal server errors.
func NewServerError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeServerError,
		Message: message,
	}
}

// NewNoProvidersConfiguredError creates the startup-fatal APIError raised
// when credential detection yields an empty provider set.
func NewNoProvidersConfiguredError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeNoProvidersConfigured,
		Message: message,
	}
}

// AllProvidersFailedError is returned when every usable provider was
// attempted during one search and none produced results. Attempts holds
// exactly one record per usable provider, in the order they were tried.
type AllProvidersFailedError struct {
	Attempts []Attempt
}

// Error lists each attempted provider and its failure classification.
// The text is caller-visible; it never contains stack traces or raw
// vendor payloads.
func (e *AllProvidersFailedError) Error() string {
	if len(e.Attempts) == 0 {
		return "all search providers failed"
	}
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = a.String()
	}
	return "all search providers failed: " + strings.Join(parts, ", ")
}
