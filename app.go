// Package main is the entry point for the colmeia-native application.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/colmeia/colmeia-native/model"
	"github.com/colmeia/colmeia-native/service/channel"
	"github.com/colmeia/colmeia-native/service/config"
	"github.com/colmeia/colmeia-native/service/deviceinfo"
	"github.com/colmeia/colmeia-native/service/flag"
	"github.com/colmeia/colmeia-native/service/output"
	"github.com/colmeia/colmeia-native/shared/ansi"
	"github.com/colmeia/colmeia-native/shared/banner"
	"github.com/colmeia/colmeia-native/shared/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errCallFailed marks a call whose structured error has already been rendered.
var errCallFailed = errors.New("call failed")

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, errCallFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "methods":
			return runMethodsCommand(os.Args[2:], os.Stdout)
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	if flags.Version {
		fmt.Println(versionInfo)
		return nil
	}

	logger := logging.New(os.Stderr, flags.Verbose)

	cfg, err := config.NewService().Load(flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg = cfg.ApplyFlags(flags)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	interactive := ansi.Enable(os.Stdout) && ansi.IsTerminal(os.Stderr)
	if format == output.FormatTable && interactive {
		banner.DrawBannerTitle(os.Stdout, banner.TerminalWidth(os.Stdout), true)
	}

	outputService := output.NewService(format, output.Options{Interactive: interactive})

	provider := deviceinfo.NewHostService(cfg.Labels, logger)

	ch, err := channel.Register(cfg.Channel, provider, logger)
	if err != nil {
		return fmt.Errorf("failed to register channel: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return invokeAndRender(ctx, ch, flags.Method, cfg.Timeout.Duration, outputService)
}
