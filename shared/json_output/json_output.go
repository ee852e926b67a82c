// Package jsonoutput renders channel call results as JSON.
package jsonoutput

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/colmeia/colmeia-native/model"
)

// OutputCallJSON writes the call result as an indented JSON document.
func OutputCallJSON(w io.Writer, input model.RenderCallInput) error {
	return printJSON(w, BuildCallReport(input))
}

// BuildCallReport builds the call JSON report model.
func BuildCallReport(input model.RenderCallInput) model.CallReportJSON {
	report := model.CallReportJSON{
		Channel: input.Channel,
		Method:  input.Method,
	}

	if input.Err != nil {
		report.Error = input.Err
		return report
	}

	report.Result = input.Value
	return report
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
