// Package output provides a service for rendering results to the console.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/colmeia/colmeia-native/model"
	"github.com/colmeia/colmeia-native/shared/spinner"
)

// ParseFormat maps a flag or config value to a Format.
func ParseFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(format))); f {
	case FormatText, FormatJSON, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use text, json or table)", format)
	}
}

// NewService creates a new output service with the specified format
func NewService(format Format, opts Options) Service {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	return &service{
		format:   format,
		renderer: &realRenderer{},
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		colored:  opts.Interactive,
		spinner:  spinner.New(opts.Stderr, " Querying platform version...", opts.Interactive && format != FormatJSON),
	}
}

func (s *service) RenderCall(input model.RenderCallInput) error {
	switch s.format {
	case FormatJSON:
		return s.renderer.OutputCallJSON(s.stdout, input)
	case FormatTable:
		s.renderer.DrawCallTable(s.stdout, input, s.colored)
		return nil
	default:
		return s.printText(input)
	}
}

// printText mirrors the plugin's plain string reply; failures go to stderr.
func (s *service) printText(input model.RenderCallInput) error {
	if input.Err != nil {
		_, err := fmt.Fprintf(s.stderr, "%s: %s\n", input.Err.Code, input.Err.Message)
		return err
	}

	_, err := fmt.Fprintln(s.stdout, input.Value)
	return err
}

func (s *service) StartSpinner() {
	s.spinner.Start()
}

func (s *service) StopSpinner() {
	s.spinner.Stop()
}
