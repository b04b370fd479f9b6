// Command base62 encodes and decodes numerals, bytes and hex over configurable alphabets.
package main

import (
	"io"
	"os"

	xlog "github.com/vdparikh/base62/internal/log"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out, errOut io.Writer) error {
	xlog.Configure(xlog.Config{Output: errOut})

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		logger := xlog.WithComponent("cli")
		logger.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}
