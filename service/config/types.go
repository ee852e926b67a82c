package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings read from the optional YAML file.
type Config struct {
	Channel string            `yaml:"channel"`
	Output  string            `yaml:"output"`
	Timeout Duration          `yaml:"timeout"`
	Labels  map[string]string `yaml:"labels"`
}

// Duration decodes Go duration strings such as "1500ms".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: timeout must be a duration string: %w", node.Line, err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	d.Duration = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

type service struct{}

// Service is the interface for loading application configuration.
type Service interface {
	Load(path string) (Config, error)
}
