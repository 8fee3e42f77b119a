package tts

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Setting holds a [Provider] that can be decoded from YAML or any
// encoding.TextUnmarshaler-aware format using the [Parse] syntax.
//
// The zero Setting resolves to [Default].
type Setting struct {
	p Provider
}

// NewSetting wraps p.
func NewSetting(p Provider) Setting {
	return Setting{p: p}
}

// Provider returns the selected provider, or [Default] for the zero value.
func (s Setting) Provider() Provider {
	if s.p == nil {
		return Default()
	}
	return s.p
}

// String implements fmt.Stringer.
func (s Setting) String() string {
	return s.Provider().String()
}

// MarshalText implements encoding.TextMarshaler.
func (s Setting) MarshalText() ([]byte, error) {
	return []byte(Format(s.Provider())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Setting) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}
	s.p = p
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Setting) MarshalYAML() (any, error) {
	return Format(s.Provider()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a scalar.
func (s *Setting) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("tts: line %d: provider setting must be a string", node.Line)
	}
	if err := s.UnmarshalText([]byte(node.Value)); err != nil {
		return fmt.Errorf("tts: line %d: %w", node.Line, err)
	}
	return nil
}

// Set implements flag.Value so a Setting can be bound directly to a
// command-line flag.
func (s *Setting) Set(v string) error {
	return s.UnmarshalText([]byte(v))
}
