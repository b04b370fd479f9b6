package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/google/tink/go/keyset"
	"github.com/spf13/cobra"

	"github.com/vdparikh/base62"
	"github.com/vdparikh/base62/tinkbase62"
)

func newKeygenCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a cleartext AES-SIV keyset for tokenize and detokenize",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handle, err := keyset.NewHandle(tinkbase62.KeyTemplate())
			if err != nil {
				return fmt.Errorf("generate keyset: %w", err)
			}

			if out == "" {
				return tinkbase62.WriteKeyset(handle, cmd.OutOrStdout())
			}

			f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
			if err != nil {
				return fmt.Errorf("create keyset file: %w", err)
			}
			if err := tinkbase62.WriteKeyset(handle, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			opts.logger.Info().
				Str("path", out).
				Uint32("primary_key_id", handle.KeysetInfo().GetPrimaryKeyId()).
				Msg("keyset written")
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "keyset file to create (stdout when empty)")
	return cmd
}

type tokenFlags struct {
	keysetPath     string
	associatedData string
}

func (f *tokenFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.keysetPath, "keyset", "", "cleartext JSON keyset from 'base62 keygen'")
	cmd.Flags().StringVar(&f.associatedData, "ad", "", "associated data bound to every token")
	_ = cmd.MarkFlagRequired("keyset")
}

func (f *tokenFlags) tokenizer(opts *rootOptions) (base62.Tokenizer, error) {
	conv, err := opts.converter()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(f.keysetPath)
	if err != nil {
		return nil, fmt.Errorf("open keyset: %w", err)
	}
	defer file.Close()

	handle, err := tinkbase62.ReadKeyset(file)
	if err != nil {
		return nil, err
	}
	return tinkbase62.New(handle, conv, []byte(f.associatedData))
}

func newTokenizeCmd(opts *rootOptions) *cobra.Command {
	var flags tokenFlags

	cmd := &cobra.Command{
		Use:   "tokenize [PLAINTEXT]",
		Short: "Deterministically encrypt PLAINTEXT (or stdin) into a token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := flags.tokenizer(opts)
			if err != nil {
				return err
			}

			var plaintext []byte
			if len(args) == 1 {
				plaintext = []byte(args[0])
			} else {
				plaintext, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			token, err := tok.Tokenize(plaintext)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newDetokenizeCmd(opts *rootOptions) *cobra.Command {
	var (
		flags  tokenFlags
		hexOut bool
	)

	cmd := &cobra.Command{
		Use:   "detokenize TOKEN",
		Short: "Recover the plaintext behind a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := flags.tokenizer(opts)
			if err != nil {
				return err
			}
			plaintext, err := tok.Detokenize(args[0])
			if err != nil {
				return err
			}
			if hexOut {
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(plaintext))
				return nil
			}
			_, err = cmd.OutOrStdout().Write(plaintext)
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&hexOut, "hex", false, "print the plaintext as hex")
	return cmd
}
