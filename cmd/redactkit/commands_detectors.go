package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/redactkit/internal/detect"
)

func newDetectorsCmd(state *appState) *cobra.Command {
	var showPatterns bool
	cmd := &cobra.Command{
		Use:   "detectors",
		Short: "List the built-in detectors and whether each is enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := state.cfg.RedactOptions()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if showPatterns {
				fmt.Fprintln(tw, "CATEGORY\tLABEL\tENABLED\tPATTERN")
			} else {
				fmt.Fprintln(tw, "CATEGORY\tLABEL\tENABLED")
			}
			for _, d := range detect.DefaultRegistry().Detectors() {
				if showPatterns {
					fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", d.Category, d.Label, opts.Enabled(d.Category), d.Pattern.String())
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%t\n", d.Category, d.Label, opts.Enabled(d.Category))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&showPatterns, "patterns", false, "include the regular expression for each detector")
	return cmd
}
