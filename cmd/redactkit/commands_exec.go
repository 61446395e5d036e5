package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/redactkit/internal/ansi"
	"github.com/suryansh-23/redactkit/internal/ptywrap"
)

func newExecCmd(state *appState) *cobra.Command {
	var (
		flags    redactFlags
		output   outputFlags
		keepANSI bool
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "exec -- <cmd...>",
		Short: "Run a command under a PTY and print its redacted output after it exits",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.ArgsLenAtDash() == -1 {
				return errors.New("exec requires -- before the command")
			}
			runArgs := cmd.Flags().Args()
			if len(runArgs) == 0 {
				return errors.New("exec requires a command after --")
			}
			opts, err := flags.apply(cmd.Flags(), state.cfg.RedactOptions())
			if err != nil {
				return err
			}
			format, summary := output.resolve(cmd.Flags(), state)

			child := exec.Command(runArgs[0], runArgs[1:]...)
			child.Env = os.Environ()
			captured, err := ptywrap.Run(cmd.Context(), child, ptywrap.Options{
				ForwardInput: true,
				RawMode:      true,
				Limit:        limit,
			})
			if err != nil {
				return err
			}
			state.logger.Debugw("exec captured", "bytes", len(captured.Output), "exit", captured.ExitCode, "truncated", captured.Truncated)

			raw := captured.Output
			if !keepANSI {
				raw = ansi.Clean(raw)
			}
			text := string(raw)
			res := state.engine.Redact(text, opts)
			if err := writeResult(cmd, text, res, format, summary); err != nil {
				return err
			}
			if captured.Truncated {
				fmt.Fprintf(cmd.ErrOrStderr(), "redactkit: output truncated at %d bytes\n", len(captured.Output))
			}
			if captured.ExitCode != 0 {
				return &exitCodeError{code: captured.ExitCode}
			}
			return nil
		},
	}
	flags.bind(cmd.Flags())
	output.bind(cmd.Flags())
	cmd.Flags().BoolVar(&keepANSI, "keep-ansi", false, "keep terminal escape sequences in the captured output")
	cmd.Flags().IntVar(&limit, "limit", ptywrap.DefaultLimit, "maximum bytes of output to capture")
	return cmd
}
