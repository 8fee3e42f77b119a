// Package tts selects the text-to-speech provider and voice used for spoken
// ATIS reports.
//
// A selection is written as a single flat string, "[PREFIX:]VOICE", so that it
// fits into a command-line flag or a single config field:
//
//	GC:en-GB-Standard-A          Google Cloud, voice en-GB-Standard-A
//	AWS:Brian                    Amazon Polly, voice Brian
//	WIN:Microsoft Zira Desktop   Windows built-in engine, given voice
//	WIN                          Windows built-in engine, default voice
//	en-US-Wavenet-A              no prefix: Google Cloud
//
// Prefixes are case-insensitive. Input that does not fit the grammar (an empty
// string, an unknown prefix) silently selects [Default] instead of failing;
// only a voice name missing from the chosen provider's catalog is an error.
package tts

import (
	"fmt"
	"strings"

	"github.com/MrWong99/atisvoice/pkg/provider/tts/aws"
	"github.com/MrWong99/atisvoice/pkg/provider/tts/gcloud"
	"github.com/MrWong99/atisvoice/pkg/provider/tts/win"
)

// Prefixes recognised by [Parse].
const (
	PrefixGoogleCloud       = "GC"
	PrefixAmazonWebServices = "AWS"
	PrefixWindows           = "WIN"
)

// Provider is the selected TTS backend together with its voice. It is a closed
// set: the only implementations are [GoogleCloud], [AmazonWebServices] and
// [Windows].
type Provider interface {
	// Name returns a short, stable identifier ("gcloud", "aws", "win")
	// suitable for log and metric attributes.
	Name() string

	// String returns a human-readable description of provider and voice.
	String() string

	isProvider()
}

// GoogleCloud selects Google Cloud Text-to-Speech.
type GoogleCloud struct {
	Voice gcloud.VoiceKind
}

// AmazonWebServices selects Amazon Polly.
type AmazonWebServices struct {
	Voice aws.VoiceKind
}

// Windows selects the Windows built-in speech engine. A nil Voice uses the
// system default voice.
type Windows struct {
	Voice *win.VoiceKind
}

func (GoogleCloud) isProvider()       {}
func (AmazonWebServices) isProvider() {}
func (Windows) isProvider()           {}

// Name implements [Provider].
func (GoogleCloud) Name() string { return "gcloud" }

// Name implements [Provider].
func (AmazonWebServices) Name() string { return "aws" }

// Name implements [Provider].
func (Windows) Name() string { return "win" }

func (p GoogleCloud) String() string {
	return fmt.Sprintf("Google Cloud (Voice: %s)", p.Voice)
}

func (p AmazonWebServices) String() string {
	return fmt.Sprintf("Amazon Web Services (Voice: %s)", p.Voice)
}

func (p Windows) String() string {
	return fmt.Sprintf("Windows built-in TTS (Voice: %s)", p.VoiceName())
}

// VoiceName returns the configured voice or "Default" when none is set.
func (p Windows) VoiceName() string {
	if p.Voice == nil {
		return "Default"
	}
	return p.Voice.String()
}

// Default returns the fallback provider: Windows with its default voice.
func Default() Provider {
	return Windows{}
}

// Parse reads a "[PREFIX:]VOICE" selection. The input is split on the first
// colon only, so voice names may themselves contain colons.
//
// Unknown prefixes and empty input yield [Default] with a nil error. A known
// prefix (or a bare voice name, which implies Google Cloud) followed by a voice
// missing from that provider's catalog returns the catalog's *voice.ParseError.
func Parse(s string) (Provider, error) {
	prefix, name, hasColon := strings.Cut(s, ":")
	if hasColon {
		switch {
		case strings.EqualFold(prefix, PrefixGoogleCloud):
			v, err := gcloud.ParseVoice(name)
			if err != nil {
				return nil, err
			}
			return GoogleCloud{Voice: v}, nil
		case strings.EqualFold(prefix, PrefixAmazonWebServices):
			v, err := aws.ParseVoice(name)
			if err != nil {
				return nil, err
			}
			return AmazonWebServices{Voice: v}, nil
		case strings.EqualFold(prefix, PrefixWindows):
			v, err := win.ParseVoice(name)
			if err != nil {
				return nil, err
			}
			return Windows{Voice: &v}, nil
		}
		return Default(), nil
	}

	if s == "" {
		return Default(), nil
	}
	if strings.EqualFold(s, PrefixWindows) {
		return Windows{}, nil
	}
	v, err := gcloud.ParseVoice(s)
	if err != nil {
		return nil, err
	}
	return GoogleCloud{Voice: v}, nil
}

// Format renders p in the syntax accepted by [Parse], always with an explicit
// prefix. A nil p formats as [Default].
func Format(p Provider) string {
	switch p := p.(type) {
	case GoogleCloud:
		return PrefixGoogleCloud + ":" + p.Voice.String()
	case AmazonWebServices:
		return PrefixAmazonWebServices + ":" + p.Voice.String()
	case Windows:
		if p.Voice == nil {
			return PrefixWindows
		}
		return PrefixWindows + ":" + p.Voice.String()
	}
	return PrefixWindows
}

// Equal reports whether a and b select the same provider and voice. Windows
// voices are compared by value, not by pointer.
func Equal(a, b Provider) bool {
	switch a := a.(type) {
	case GoogleCloud, AmazonWebServices:
		return a == b
	case Windows:
		bw, ok := b.(Windows)
		if !ok {
			return false
		}
		if a.Voice == nil || bw.Voice == nil {
			return a.Voice == nil && bw.Voice == nil
		}
		return *a.Voice == *bw.Voice
	}
	return a == nil && b == nil
}
