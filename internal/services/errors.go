package services

import (
	"errors"
	"fmt"
)

// ErrGeneratorNotConfigured is returned when the selected LLM provider has no API key.
var ErrGeneratorNotConfigured = errors.New("LLM generator is not configured")

// InputError means the request carried nothing to generate a resume from.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s", e.Message)
}

// UpstreamError wraps a failed call to the LLM provider.
type UpstreamError struct {
	Provider string
	Cause    error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s API call failed: %v", e.Provider, e.Cause)
	}
	return fmt.Sprintf("%s API call failed", e.Provider)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError means the generator output is not a JSON object even
// after fence stripping. Raw holds the cleaned text for logs only.
type MalformedResponseError struct {
	Raw   string
	Cause error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid JSON response from generator: %v", e.Cause)
	}
	return "invalid JSON response from generator"
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
