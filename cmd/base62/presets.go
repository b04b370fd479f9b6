package main

import (
	"fmt"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/vdparikh/base62"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the named alphabets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRADIX\tALPHABET")
			for _, name := range base62.PresetNames() {
				alphabet, _ := base62.Preset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, utf8.RuneCountInString(alphabet), alphabet)
			}
			return w.Flush()
		},
	}
}
