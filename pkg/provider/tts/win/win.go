// Package win describes the voices of the Windows built-in speech engine.
//
// Windows needs no credentials; [Config] exists so every provider has a
// configuration value of its own.
package win

import "github.com/MrWong99/atisvoice/pkg/provider/tts/voice"

const providerName = "win"

// VoiceKind identifies an installed Windows voice by its display name.
type VoiceKind string

// Voices shipped with desktop and OneCore editions of Windows 10/11.
const (
	DavidDesktop VoiceKind = "Microsoft David Desktop"
	HazelDesktop VoiceKind = "Microsoft Hazel Desktop"
	ZiraDesktop  VoiceKind = "Microsoft Zira Desktop"

	David     VoiceKind = "Microsoft David"
	Mark      VoiceKind = "Microsoft Mark"
	Zira      VoiceKind = "Microsoft Zira"
	George    VoiceKind = "Microsoft George"
	Hazel     VoiceKind = "Microsoft Hazel"
	Susan     VoiceKind = "Microsoft Susan"
	Catherine VoiceKind = "Microsoft Catherine"
	James     VoiceKind = "Microsoft James"
	Heera     VoiceKind = "Microsoft Heera"
	Ravi      VoiceKind = "Microsoft Ravi"
	Linda     VoiceKind = "Microsoft Linda"
	Richard   VoiceKind = "Microsoft Richard"
)

var catalog = voice.NewCatalog(providerName,
	DavidDesktop, HazelDesktop, ZiraDesktop,
	David, Mark, Zira, George, Hazel, Susan, Catherine, James, Heera, Ravi, Linda, Richard,
)

// String returns the voice's display name.
func (v VoiceKind) String() string { return string(v) }

// ParseVoice resolves name to an installed voice. Unknown names return a
// *voice.ParseError.
func ParseVoice(name string) (VoiceKind, error) {
	return catalog.Parse(name)
}

// Voices returns every known Windows voice.
func Voices() []VoiceKind {
	return catalog.Voices()
}

// Config is the (empty) configuration of the Windows engine.
type Config struct{}

// Validate always succeeds.
func (Config) Validate() error { return nil }
