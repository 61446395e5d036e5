package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/redactkit/internal/clipboard"
	"github.com/suryansh-23/redactkit/internal/ui"
)

func newCopyCmd(state *appState) *cobra.Command {
	var (
		flags  redactFlags
		verify bool
	)
	cmd := &cobra.Command{
		Use:   "copy [file]",
		Short: "Redact input and copy the result to the clipboard without printing it",
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
			backend := state.cfg.Clipboard.Backend
			if err := clipboard.CopyText(backend, res.RedactedText); err != nil {
				return fmt.Errorf("copy: %w", err)
			}
			if verify {
				if err := clipboard.VerifyBytes(backend, []byte(res.RedactedText)); err != nil {
					return fmt.Errorf("verify: %w", err)
				}
			}
			stats := ui.Summarize(text, res)
			fmt.Fprintf(cmd.ErrOrStderr(), "Copied redacted text to clipboard (%s).\n", stats.Headline())
			return nil
		},
	}
	flags.bind(cmd.Flags())
	cmd.Flags().BoolVar(&verify, "verify", false, "read the clipboard back and compare")
	return cmd
}
