package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/redactkit/internal/clipboard"
)

func newRedactCmd(state *appState) *cobra.Command {
	var (
		flags       redactFlags
		output      outputFlags
		toClipboard bool
	)
	cmd := &cobra.Command{
		Use:   "redact [file]",
		Short: "Redact personal data from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.apply(cmd.Flags(), state.cfg.RedactOptions())
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			res := state.engine.Redact(text, opts)
			format, summary := output.resolve(cmd.Flags(), state)
			if err := writeResult(cmd, text, res, format, summary); err != nil {
				return err
			}
			if toClipboard {
				if err := clipboard.CopyText(state.cfg.Clipboard.Backend, res.RedactedText); err != nil {
					return fmt.Errorf("copy: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied redacted text to clipboard.")
			}
			return nil
		},
	}
	flags.bind(cmd.Flags())
	output.bind(cmd.Flags())
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "also copy the redacted text to the clipboard")
	return cmd
}
