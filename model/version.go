// Package model defines the data structures used throughout the application.
package model

import "fmt"

// VersionInfo contains build-time metadata about the application.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("colmeia-native %s (commit %s, built %s)", v.Version, v.Commit, v.Date)
}
