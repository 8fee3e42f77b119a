// Package config provides the settings schema, loader, validation and hot
// reload support for atisvoice.
package config

import (
	"github.com/MrWong99/atisvoice/pkg/provider/tts"
	"github.com/MrWong99/atisvoice/pkg/provider/tts/aws"
	"github.com/MrWong99/atisvoice/pkg/provider/tts/gcloud"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root settings structure. It is typically loaded from a YAML
// file using [Load] or [LoadFromReader].
type Config struct {
	// LogLevel controls verbosity. Empty means info.
	LogLevel LogLevel `yaml:"log_level"`

	// TTS selects provider and voice in "[PREFIX:]VOICE" syntax
	// (e.g. "AWS:Brian"). Empty selects the Windows default voice.
	TTS string `yaml:"tts"`

	// Pronounce enables phonetic rendering of numbers in spoken text.
	Pronounce bool `yaml:"pronounce"`

	// GCloud holds Google Cloud credentials, used when TTS selects GC.
	GCloud gcloud.Config `yaml:"gcloud"`

	// AWS holds Amazon credentials, used when TTS selects AWS.
	AWS aws.Config `yaml:"aws"`
}

// Provider parses the TTS setting. See [tts.Parse].
func (c *Config) Provider() (tts.Provider, error) {
	return tts.Parse(c.TTS)
}

// TTSConfig returns the connection settings of the selected provider. It
// fails if the TTS setting names an unknown voice or if the selected
// provider's credentials are incomplete.
func (c *Config) TTSConfig() (tts.Config, error) {
	p, err := c.Provider()
	if err != nil {
		return nil, err
	}
	tc := tts.ConfigFor(p, c.GCloud, c.AWS)
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	return tc, nil
}
