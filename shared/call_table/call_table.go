// Package calltable renders channel call results in a table format.
package calltable

import (
	"io"

	"github.com/colmeia/colmeia-native/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawCallTable renders one call as a single-row table titled with the channel name.
func DrawCallTable(w io.Writer, input model.RenderCallInput, colored bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(input.Channel)
	t.AppendHeader(table.Row{"Method", "Status", "Result"})

	status, result := "OK", input.Value
	statusColor := text.Colors{text.FgGreen}
	if input.Err != nil {
		status, result = string(input.Err.Code), input.Err.Message
		statusColor = text.Colors{text.FgRed}
	}

	if colored {
		status = statusColor.Sprint(status)
	}

	t.AppendRow(table.Row{input.Method, status, result})
	t.Render()
}
