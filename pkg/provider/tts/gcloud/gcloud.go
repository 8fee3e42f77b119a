// Package gcloud describes the Google Cloud Text-to-Speech voice catalog and
// the settings needed to authenticate against the service.
//
// Voice names follow Google's "<language>-<region>-<type>-<variant>" scheme,
// e.g. "en-US-Wavenet-A". Lookups via [ParseVoice] are case-insensitive and
// always return the canonical spelling.
package gcloud

import (
	"errors"
	"strings"
)

const providerName = "gcloud"

// VoiceKind identifies a Google Cloud TTS voice. Its string value is the
// voice name expected by the Google API.
type VoiceKind string

// String returns the Google voice name.
func (v VoiceKind) String() string { return string(v) }

// LanguageCode returns the BCP-47 language code embedded in the voice name
// (e.g. "en-GB" for "en-GB-Wavenet-A").
func (v VoiceKind) LanguageCode() string {
	parts := strings.SplitN(string(v), "-", 3)
	if len(parts) < 2 {
		return string(v)
	}
	return parts[0] + "-" + parts[1]
}

// ParseVoice resolves name to a catalog voice. Unknown names return a
// *voice.ParseError.
func ParseVoice(name string) (VoiceKind, error) {
	return catalog.Parse(name)
}

// Voices returns every known Google voice.
func Voices() []VoiceKind {
	return catalog.Voices()
}

// Config holds the Google Cloud TTS credentials.
type Config struct {
	// Key is the Google Cloud API key used for the text:synthesize endpoint.
	Key string `yaml:"key"`
}

// Validate reports whether c carries everything needed to call the API.
func (c Config) Validate() error {
	if c.Key == "" {
		return errors.New("gcloud: key is required")
	}
	return nil
}
