package config

import "github.com/MrWong99/atisvoice/pkg/provider/tts"

// ConfigDiff describes what changed between two configs.
type ConfigDiff struct {
	LogLevelChanged bool
	NewLogLevel     LogLevel

	// ProviderChanged is true when the two TTS settings resolve to different
	// providers or voices. Spelling differences such as "aws:brian" versus
	// "AWS:Brian" are not a change.
	ProviderChanged bool
	NewProvider     tts.Provider

	PronounceChanged bool

	// CredentialsChanged is true when the credentials of the provider
	// selected by the new config differ.
	CredentialsChanged bool
}

// Changed reports whether any tracked field differs.
func (d ConfigDiff) Changed() bool {
	return d.LogLevelChanged || d.ProviderChanged || d.PronounceChanged || d.CredentialsChanged
}

// Diff compares old and new configs and returns what changed. Both configs
// are expected to have passed [Validate].
func Diff(old, new *Config) ConfigDiff {
	d := ConfigDiff{}

	if old.LogLevel != new.LogLevel {
		d.LogLevelChanged = true
		d.NewLogLevel = new.LogLevel
	}

	oldP, oldErr := old.Provider()
	newP, newErr := new.Provider()
	if newErr == nil && (oldErr != nil || !tts.Equal(oldP, newP)) {
		d.ProviderChanged = true
		d.NewProvider = newP
	}

	if old.Pronounce != new.Pronounce {
		d.PronounceChanged = true
	}

	if newErr == nil {
		switch newP.(type) {
		case tts.GoogleCloud:
			d.CredentialsChanged = old.GCloud != new.GCloud
		case tts.AmazonWebServices:
			d.CredentialsChanged = old.AWS != new.AWS
		}
	}

	return d
}
