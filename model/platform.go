package model

import (
	"fmt"
	"strings"
	"unicode"
)

// PlatformVersion identifies the running platform and its OS version.
type PlatformVersion struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// NewPlatformVersion validates both parts and returns the value. Neither part may
// be empty or contain whitespace.
func NewPlatformVersion(name, version string) (PlatformVersion, error) {
	if err := validatePart("platform name", name); err != nil {
		return PlatformVersion{}, err
	}

	if err := validatePart("platform version", version); err != nil {
		return PlatformVersion{}, err
	}

	return PlatformVersion{Name: name, Version: version}, nil
}

// String returns "<Name> <Version>".
func (p PlatformVersion) String() string {
	return p.Name + " " + p.Version
}

func validatePart(what, value string) error {
	if value == "" {
		return fmt.Errorf("%s is empty", what)
	}

	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%s %q contains whitespace", what, value)
	}

	return nil
}
