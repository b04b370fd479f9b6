package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdparikh/base62"
)

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode NUMERAL...",
		Short: "Encode base-10 integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := opts.converter()
			if err != nil {
				return err
			}
			for _, arg := range args {
				encoded, err := conv.Encode(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), encoded)
			}
			return nil
		},
	}
}

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode SYMBOLS...",
		Short: "Decode symbol strings to base-10 integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := opts.converter()
			if err != nil {
				return err
			}
			for _, arg := range args {
				decoded, err := conv.Decode(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), decoded)
			}
			return nil
		},
	}
}

func newEncodeBytesCmd(opts *rootOptions) *cobra.Command {
	var hexInput string

	cmd := &cobra.Command{
		Use:   "encode-bytes",
		Short: "Encode bytes from --hex or stdin, keeping leading zero bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conv, err := opts.converter()
			if err != nil {
				return err
			}

			var input []byte
			if cmd.Flags().Changed("hex") {
				input, err = hex.DecodeString(strings.ReplaceAll(hexInput, " ", ""))
				if err != nil {
					return fmt.Errorf("%w: %v", base62.ErrInvalidHex, err)
				}
			} else {
				input, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			opts.logger.Debug().Int("bytes", len(input)).Msg("encoding bytes")
			fmt.Fprintln(cmd.OutOrStdout(), conv.EncodeBytes(input))
			return nil
		},
	}
	cmd.Flags().StringVar(&hexInput, "hex", "", "input bytes as hex instead of stdin")
	return cmd
}

func newDecodeBytesCmd(opts *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "decode-bytes SYMBOLS",
		Short: "Decode a symbol string produced by encode-bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := opts.converter()
			if err != nil {
				return err
			}
			decoded, err := conv.DecodeBytes(args[0])
			if err != nil {
				return err
			}
			if raw {
				_, err = cmd.OutOrStdout().Write(decoded)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(decoded))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "write the raw bytes instead of hex")
	return cmd
}

func newEncodeHexCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode-hex HEX...",
		Short: "Encode a hex number; arguments are joined, so grouped input works",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := opts.converter()
			if err != nil {
				return err
			}
			encoded, err := conv.EncodeHex(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}
}

func newDecodeHexCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode-hex SYMBOLS...",
		Short: "Decode symbol strings to lowercase hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := opts.converter()
			if err != nil {
				return err
			}
			for _, arg := range args {
				decoded, err := conv.DecodeHex(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), decoded)
			}
			return nil
		},
	}
}

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert a signed integer between bases 2 and 62",
		Long: `Convert rewrites VALUE from base --from into base --to using the
digits 0-9, a-z, A-Z. It ignores the configured alphabet.
Use '--' before negative values: base62 convert --from 10 --to 16 -- -12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			converted, err := base62.ConvertBase(args[0], from, to)
			if err != nil {
				return err
			}
			opts.logger.Debug().Int("from", from).Int("to", to).Msg("converted")
			fmt.Fprintln(cmd.OutOrStdout(), converted)
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 10, "base of VALUE")
	cmd.Flags().IntVar(&to, "to", 62, "base of the output")
	return cmd
}
