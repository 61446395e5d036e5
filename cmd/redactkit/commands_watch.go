package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/redactkit/internal/watch"
)

const clearScreen = "\x1b[H\x1b[2J"

func newWatchCmd(state *appState) *cobra.Command {
	var (
		flags    redactFlags
		output   outputFlags
		debounce time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-redact a file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.apply(cmd.Flags(), state.cfg.RedactOptions())
			if err != nil {
				return err
			}
			format, summary := output.resolve(cmd.Flags(), state)
			if !cmd.Flags().Changed("debounce") {
				debounce = time.Duration(state.cfg.Watch.DebounceMS) * time.Millisecond
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			interactive := isTerminal(cmd.OutOrStdout())
			err = watch.File(ctx, args[0], watch.Options{
				Debounce: debounce,
				Logger:   state.logger.Named("watch"),
			}, func(content []byte) error {
				text := string(content)
				res := state.engine.Redact(text, opts)
				if interactive {
					fmt.Fprint(cmd.OutOrStdout(), clearScreen)
				}
				return writeResult(cmd, text, res, format, summary)
			})
			if err != nil && ctx.Err() != nil {
				return nil
			}
			return err
		},
	}
	flags.bind(cmd.Flags())
	output.bind(cmd.Flags())
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "wait this long after a change before re-redacting")
	return cmd
}
