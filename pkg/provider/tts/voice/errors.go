package voice

import (
	"errors"
	"fmt"
)

// ErrUnknownVoice is matched (via errors.Is) by every [*ParseError].
var ErrUnknownVoice = errors.New("unknown voice")

// ParseError reports a voice name that is not part of a provider's catalog.
type ParseError struct {
	// Provider is the catalog that rejected the name (e.g. "gcloud").
	Provider string

	// Name is the voice string as supplied by the user.
	Name string

	// Suggestion is the closest catalog voice, or empty if none is close enough.
	Suggestion string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %s %q (did you mean %q?)", e.Provider, ErrUnknownVoice, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%s: %s %q", e.Provider, ErrUnknownVoice, e.Name)
}

// Unwrap returns [ErrUnknownVoice].
func (e *ParseError) Unwrap() error {
	return ErrUnknownVoice
}
