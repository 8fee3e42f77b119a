package tts

import (
	"github.com/MrWong99/atisvoice/pkg/provider/tts/aws"
	"github.com/MrWong99/atisvoice/pkg/provider/tts/gcloud"
	"github.com/MrWong99/atisvoice/pkg/provider/tts/win"
)

// Config carries the connection settings of exactly one provider. Like
// [Provider] it is a closed set: [GoogleCloudConfig],
// [AmazonWebServicesConfig] and [WindowsConfig].
//
// A Config is built once at startup and treated as read-only afterwards.
type Config interface {
	// Name matches [Provider.Name] of the corresponding provider.
	Name() string

	// Validate reports missing or inconsistent settings.
	Validate() error

	isConfig()
}

// GoogleCloudConfig configures Google Cloud Text-to-Speech.
type GoogleCloudConfig struct {
	gcloud.Config
}

// AmazonWebServicesConfig configures Amazon Polly.
type AmazonWebServicesConfig struct {
	aws.Config
}

// WindowsConfig configures the Windows built-in engine.
type WindowsConfig struct {
	win.Config
}

func (GoogleCloudConfig) isConfig()       {}
func (AmazonWebServicesConfig) isConfig() {}
func (WindowsConfig) isConfig()           {}

// Name implements [Config].
func (GoogleCloudConfig) Name() string { return GoogleCloud{}.Name() }

// Name implements [Config].
func (AmazonWebServicesConfig) Name() string { return AmazonWebServices{}.Name() }

// Name implements [Config].
func (WindowsConfig) Name() string { return Windows{}.Name() }

// ConfigFor returns the Config variant matching p, populated from gc or ac.
// Only the settings of the selected provider are kept. A nil p is treated as
// [Default].
func ConfigFor(p Provider, gc gcloud.Config, ac aws.Config) Config {
	switch p.(type) {
	case GoogleCloud:
		return GoogleCloudConfig{Config: gc}
	case AmazonWebServices:
		return AmazonWebServicesConfig{Config: ac}
	}
	return WindowsConfig{}
}
