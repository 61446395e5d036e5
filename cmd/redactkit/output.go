package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/suryansh-23/redactkit/internal/redact"
	"github.com/suryansh-23/redactkit/internal/types"
	"github.com/suryansh-23/redactkit/internal/ui"
)

type jsonResult struct {
	redact.Result
	Summary *ui.Stats `json:"summary,omitempty"`
}

// readInput returns the named file, or stdin when no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// writeResult prints res to stdout. In text mode the summary goes to stderr
// so the redacted text stays pipeable.
func writeResult(cmd *cobra.Command, input string, res redact.Result, format types.OutputFormat, summary bool) error {
	out := cmd.OutOrStdout()
	if format == types.OutputJSON {
		payload := jsonResult{Result: res}
		if summary {
			stats := ui.Summarize(input, res)
			payload.Summary = &stats
		}
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}
	if _, err := io.WriteString(out, res.RedactedText); err != nil {
		return err
	}
	if summary {
		writeSummary(cmd.ErrOrStderr(), ui.Summarize(input, res))
	}
	return nil
}

func writeSummary(w io.Writer, stats ui.Stats) {
	if isTerminal(w) {
		fmt.Fprintln(w, "\n"+stats.Render())
		return
	}
	fmt.Fprint(w, stats.Plain())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
