// Package aws describes the Amazon Polly voice catalog and the credentials
// needed to reach it.
//
// [Config.AWSConfig] turns the static key/secret/region settings into an
// SDK configuration that a Polly client can be built from.
package aws

import (
	"context"
	"errors"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

const providerName = "aws"

// VoiceKind identifies an Amazon Polly voice. Its string value is the Polly
// VoiceId.
type VoiceKind string

// String returns the Polly voice ID.
func (v VoiceKind) String() string { return string(v) }

// LanguageCode returns the Polly language code of the voice, or "" for a
// value outside the catalog.
func (v VoiceKind) LanguageCode() string { return languageCodes[v] }

// ParseVoice resolves name to a catalog voice. Unknown names return a
// *voice.ParseError.
func ParseVoice(name string) (VoiceKind, error) {
	return catalog.Parse(name)
}

// Voices returns every known Polly voice.
func Voices() []VoiceKind {
	return catalog.Voices()
}

// Config holds static AWS credentials for Amazon Polly.
type Config struct {
	// Key is the AWS access key ID.
	Key string `yaml:"key"`

	// Secret is the AWS secret access key.
	Secret string `yaml:"secret"`

	// Region is the AWS region hosting Polly (e.g. "eu-central-1").
	Region string `yaml:"region"`
}

// Validate returns a joined error naming every missing field.
func (c Config) Validate() error {
	var errs []error
	if c.Key == "" {
		errs = append(errs, errors.New("aws: key is required"))
	}
	if c.Secret == "" {
		errs = append(errs, errors.New("aws: secret is required"))
	}
	if c.Region == "" {
		errs = append(errs, errors.New("aws: region is required"))
	}
	return errors.Join(errs...)
}

// AWSConfig builds an SDK configuration using the static credentials and
// region from c. Shared config files and environment settings are still
// consulted for everything c does not override.
func (c Config) AWSConfig(ctx context.Context) (awssdk.Config, error) {
	if err := c.Validate(); err != nil {
		return awssdk.Config{}, err
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.Key, c.Secret, "")),
	)
	if err != nil {
		return awssdk.Config{}, fmt.Errorf("aws: load config: %w", err)
	}
	return cfg, nil
}
