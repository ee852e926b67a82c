package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/colmeia/colmeia-native/model"
	"github.com/colmeia/colmeia-native/service/channel"
	"github.com/colmeia/colmeia-native/service/output"
	"github.com/spf13/pflag"
)

// invokeAndRender performs one channel call and prints the response. A
// structured failure is rendered and then reported as errCallFailed.
func invokeAndRender(ctx context.Context, ch *channel.Channel, method string, timeout time.Duration, out output.Service) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out.StartSpinner()
	resp, err := ch.Invoke(ctx, method)
	out.StopSpinner()
	if err != nil {
		return fmt.Errorf("failed to invoke %s: %w", method, err)
	}

	input := model.RenderCallInput{
		Channel: ch.Name(),
		Method:  resp.Method.String(),
		Value:   resp.Value,
		Err:     resp.Err,
	}
	if err := out.RenderCall(input); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}

	if !resp.OK() {
		return errCallFailed
	}

	return nil
}

func runMethodsCommand(args []string, w io.Writer) error {
	fs := pflag.NewFlagSet("methods", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	format := fs.StringP("output", "o", "text", "Output format (text or json)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(fs.Args()) > 0 {
		return fmt.Errorf("usage: colmeia-native methods [--output text|json]")
	}

	methods := channel.Methods()

	switch *format {
	case "json":
		data, err := json.Marshal(methods)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "text":
		for _, m := range methods {
			if _, err := fmt.Fprintln(w, m); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format for methods: %s", *format)
	}
}
