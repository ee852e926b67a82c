// Package config loads the optional YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/colmeia/colmeia-native/model"
	"github.com/colmeia/colmeia-native/service/channel"
	"github.com/colmeia/colmeia-native/service/deviceinfo"
	"github.com/colmeia/colmeia-native/service/output"
	"gopkg.in/yaml.v3"
)

// NewService creates a new config service.
func NewService() Service {
	return &service{}
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Channel: channel.DefaultName,
		Output:  string(output.FormatText),
	}
}

// Load reads path and fills unset fields from Default. An empty path returns
// Default unchanged.
func (s *service) Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Channel == "" {
		cfg.Channel = channel.DefaultName
	}

	if cfg.Output == "" {
		cfg.Output = string(output.FormatText)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Channel) == "" {
		return errors.New("channel name is empty")
	}

	if _, err := output.ParseFormat(c.Output); err != nil {
		return err
	}

	if c.Timeout.Duration < 0 {
		return fmt.Errorf("timeout %s is negative", c.Timeout.Duration)
	}

	for goos, label := range c.Labels {
		if _, ok := deviceinfo.DefaultLabel(goos); !ok {
			return fmt.Errorf("labels: unknown platform %q (supported: %s)", goos, strings.Join(deviceinfo.SupportedPlatforms(), ", "))
		}
		if label == "" || strings.IndexFunc(label, unicode.IsSpace) >= 0 {
			return fmt.Errorf("labels: label %q for %s must be a single non-empty word", label, goos)
		}
	}

	return nil
}

// ApplyFlags overrides file values with flags given on the command line.
func (c Config) ApplyFlags(flags model.Flags) Config {
	if flags.Set["output"] {
		c.Output = flags.Output
	}

	if flags.Set["timeout"] {
		c.Timeout = Duration{flags.Timeout}
	}

	return c
}
