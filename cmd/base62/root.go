package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vdparikh/base62"
	xlog "github.com/vdparikh/base62/internal/log"
)

type rootOptions struct {
	preset     string
	alphabet   string
	radix      int
	configPath string
	logLevel   string
	console    bool

	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: xlog.WithComponent("cli")}

	cmd := &cobra.Command{
		Use:   "base62",
		Short: "Encode and decode numerals over arbitrary alphabets",
		Long: `base62 converts non-negative integers, byte strings and hex between
base 10 and a configurable alphabet (base62 by default).

The alphabet comes from --preset, --alphabet or a YAML --config file.
Flags override the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			xlog.Configure(xlog.Config{
				Level:   opts.logLevel,
				Output:  cmd.ErrOrStderr(),
				Console: opts.console,
			})
			opts.logger = xlog.WithComponent("cli").With().Str("command", cmd.Name()).Logger()
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.preset, "preset", "", "named alphabet (see 'base62 presets')")
	flags.StringVar(&opts.alphabet, "alphabet", "", "custom alphabet, one symbol per digit")
	flags.IntVar(&opts.radix, "radix", 0, "radix; defaults to the alphabet length")
	flags.StringVar(&opts.configPath, "config", "", "YAML file with preset, alphabet and radix")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error); LOG_LEVEL is used when empty")
	flags.BoolVar(&opts.console, "log-console", false, "human-readable log output")

	cmd.AddCommand(
		newEncodeCmd(opts),
		newDecodeCmd(opts),
		newEncodeBytesCmd(opts),
		newDecodeBytesCmd(opts),
		newEncodeHexCmd(opts),
		newDecodeHexCmd(opts),
		newConvertCmd(opts),
		newPresetsCmd(),
		newKeygenCmd(opts),
		newTokenizeCmd(opts),
		newDetokenizeCmd(opts),
	)
	return cmd
}

// converter resolves the configured Converter. --preset or --alphabet replace
// whatever the config file selected; --radix overrides the radix alone.
func (o *rootOptions) converter() (*base62.Converter, error) {
	var cfg base62.Config
	if o.configPath != "" {
		f, err := os.Open(o.configPath)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		cfg, err = base62.LoadConfig(f)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", o.configPath, err)
		}
	}

	if o.preset != "" || o.alphabet != "" {
		cfg = base62.Config{Preset: o.preset, Alphabet: o.alphabet}
	}
	if o.radix != 0 {
		cfg.Radix = o.radix
	}

	conv, err := cfg.Converter()
	if err != nil {
		return nil, err
	}

	o.logger.Debug().
		Str("alphabet", conv.Alphabet()).
		Int("radix", conv.Radix()).
		Msg("converter resolved")
	return conv, nil
}
