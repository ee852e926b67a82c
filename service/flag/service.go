package flag

import (
	"github.com/colmeia/colmeia-native/model"
	"github.com/spf13/pflag"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	method := pflag.StringP("method", "m", "getPlatformVersion", "Channel method to invoke")
	output := pflag.StringP("output", "o", "text", "Output format (text, json, or table)")
	timeout := pflag.Duration("timeout", 0, "Abandon the call after this long (0 waits indefinitely)")
	configPath := pflag.String("config-path", "", "Path to colmeia-native YAML config file")
	verbose := pflag.Bool("verbose", false, "Log diagnostics to stderr")
	version := pflag.BoolP("version", "v", false, "Show version information")

	pflag.Parse()

	set := map[string]bool{}
	pflag.Visit(func(f *pflag.Flag) {
		set[f.Name] = true
	})

	flags := model.Flags{
		Method:     *method,
		Output:     *output,
		Timeout:    *timeout,
		ConfigPath: *configPath,
		Verbose:    *verbose,
		Version:    *version,
		Set:        set,
	}

	return flags, nil
}
