package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/redactkit/internal/types"
)

func newSampleCmd(state *appState) *cobra.Command {
	var (
		flags    redactFlags
		output   outputFlags
		original bool
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Redact a built-in sample text to preview the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if original {
				fmt.Fprintln(cmd.OutOrStdout(), sampleText)
				return nil
			}
			opts, err := flags.apply(cmd.Flags(), state.cfg.RedactOptions())
			if err != nil {
				return err
			}
			res := state.engine.Redact(sampleText, opts)
			format, summary := output.resolve(cmd.Flags(), state)
			if err := writeResult(cmd, sampleText, res, format, summary); err != nil {
				return err
			}
			if format != types.OutputJSON {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	flags.bind(cmd.Flags())
	output.bind(cmd.Flags())
	cmd.Flags().BoolVar(&original, "original", false, "print the sample without redaction")
	return cmd
}
