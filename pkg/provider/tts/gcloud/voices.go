package gcloud

import "github.com/MrWong99/atisvoice/pkg/provider/tts/voice"

// Google Cloud Text-to-Speech voices, grouped by locale.
const (
	EnAUStandardA VoiceKind = "en-AU-Standard-A"
	EnAUStandardB VoiceKind = "en-AU-Standard-B"
	EnAUStandardC VoiceKind = "en-AU-Standard-C"
	EnAUStandardD VoiceKind = "en-AU-Standard-D"

	EnAUWavenetA VoiceKind = "en-AU-Wavenet-A"
	EnAUWavenetB VoiceKind = "en-AU-Wavenet-B"
	EnAUWavenetC VoiceKind = "en-AU-Wavenet-C"
	EnAUWavenetD VoiceKind = "en-AU-Wavenet-D"

	EnGBStandardA VoiceKind = "en-GB-Standard-A"
	EnGBStandardB VoiceKind = "en-GB-Standard-B"
	EnGBStandardC VoiceKind = "en-GB-Standard-C"
	EnGBStandardD VoiceKind = "en-GB-Standard-D"
	EnGBStandardF VoiceKind = "en-GB-Standard-F"

	EnGBWavenetA VoiceKind = "en-GB-Wavenet-A"
	EnGBWavenetB VoiceKind = "en-GB-Wavenet-B"
	EnGBWavenetC VoiceKind = "en-GB-Wavenet-C"
	EnGBWavenetD VoiceKind = "en-GB-Wavenet-D"
	EnGBWavenetF VoiceKind = "en-GB-Wavenet-F"

	EnINStandardA VoiceKind = "en-IN-Standard-A"
	EnINStandardB VoiceKind = "en-IN-Standard-B"
	EnINStandardC VoiceKind = "en-IN-Standard-C"
	EnINStandardD VoiceKind = "en-IN-Standard-D"

	EnINWavenetA VoiceKind = "en-IN-Wavenet-A"
	EnINWavenetB VoiceKind = "en-IN-Wavenet-B"
	EnINWavenetC VoiceKind = "en-IN-Wavenet-C"
	EnINWavenetD VoiceKind = "en-IN-Wavenet-D"

	EnUSStandardB VoiceKind = "en-US-Standard-B"
	EnUSStandardC VoiceKind = "en-US-Standard-C"
	EnUSStandardD VoiceKind = "en-US-Standard-D"
	EnUSStandardE VoiceKind = "en-US-Standard-E"
	EnUSStandardG VoiceKind = "en-US-Standard-G"
	EnUSStandardH VoiceKind = "en-US-Standard-H"
	EnUSStandardI VoiceKind = "en-US-Standard-I"
	EnUSStandardJ VoiceKind = "en-US-Standard-J"

	EnUSWavenetA VoiceKind = "en-US-Wavenet-A"
	EnUSWavenetB VoiceKind = "en-US-Wavenet-B"
	EnUSWavenetC VoiceKind = "en-US-Wavenet-C"
	EnUSWavenetD VoiceKind = "en-US-Wavenet-D"
	EnUSWavenetE VoiceKind = "en-US-Wavenet-E"
	EnUSWavenetF VoiceKind = "en-US-Wavenet-F"
	EnUSWavenetG VoiceKind = "en-US-Wavenet-G"
	EnUSWavenetH VoiceKind = "en-US-Wavenet-H"
	EnUSWavenetI VoiceKind = "en-US-Wavenet-I"
	EnUSWavenetJ VoiceKind = "en-US-Wavenet-J"
)

var catalog = voice.NewCatalog(providerName,
	EnAUStandardA, EnAUStandardB, EnAUStandardC, EnAUStandardD,
	EnAUWavenetA, EnAUWavenetB, EnAUWavenetC, EnAUWavenetD,
	EnGBStandardA, EnGBStandardB, EnGBStandardC, EnGBStandardD, EnGBStandardF,
	EnGBWavenetA, EnGBWavenetB, EnGBWavenetC, EnGBWavenetD, EnGBWavenetF,
	EnINStandardA, EnINStandardB, EnINStandardC, EnINStandardD,
	EnINWavenetA, EnINWavenetB, EnINWavenetC, EnINWavenetD,
	EnUSStandardB, EnUSStandardC, EnUSStandardD, EnUSStandardE, EnUSStandardG, EnUSStandardH, EnUSStandardI, EnUSStandardJ,
	EnUSWavenetA, EnUSWavenetB, EnUSWavenetC, EnUSWavenetD, EnUSWavenetE, EnUSWavenetF, EnUSWavenetG, EnUSWavenetH, EnUSWavenetI, EnUSWavenetJ,
)
