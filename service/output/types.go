package output

import (
	"io"

	"github.com/colmeia/colmeia-native/model"
	calltable "github.com/colmeia/colmeia-native/shared/call_table"
	jsonoutput "github.com/colmeia/colmeia-native/shared/json_output"
	"github.com/colmeia/colmeia-native/shared/spinner"
)

// Format represents the output format type
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// Renderer defines the interface for drawing call results
type Renderer interface {
	DrawCallTable(w io.Writer, input model.RenderCallInput, colored bool)
	OutputCallJSON(w io.Writer, input model.RenderCallInput) error
}

type realRenderer struct{}

func (r *realRenderer) DrawCallTable(w io.Writer, input model.RenderCallInput, colored bool) {
	calltable.DrawCallTable(w, input, colored)
}

func (r *realRenderer) OutputCallJSON(w io.Writer, input model.RenderCallInput) error {
	return jsonoutput.OutputCallJSON(w, input)
}

// Options configures where and how the service writes.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Interactive enables the spinner and colours.
	Interactive bool
}

// service is the internal implementation
type service struct {
	format   Format
	renderer Renderer
	stdout   io.Writer
	stderr   io.Writer
	colored  bool
	spinner  *spinner.Spinner
}

// Service defines the interface for output operations
type Service interface {
	RenderCall(input model.RenderCallInput) error
	StartSpinner()
	StopSpinner()
}
