package model

import "time"

// Flags represents the command line flags.
type Flags struct {
	Method     string
	Output     string
	Timeout    time.Duration
	ConfigPath string
	Verbose    bool
	Version    bool

	// Set records which flags were given explicitly, keyed by long name.
	Set map[string]bool
}
