// Package spinner shows a progress indicator while a channel call is in flight.
package spinner

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps a briandowns spinner that is only drawn when enabled.
type Spinner struct {
	loader *spinner.Spinner
}

// New creates a spinner writing to w with the given suffix. A disabled
// spinner ignores Start and Stop.
func New(w io.Writer, suffix string, enabled bool) *Spinner {
	if !enabled {
		return &Spinner{}
	}

	loader := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = suffix

	return &Spinner{loader: loader}
}

// Start begins drawing.
func (s *Spinner) Start() {
	if s.loader != nil {
		s.loader.Start()
	}
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	if s.loader != nil {
		s.loader.Stop()
	}
}
