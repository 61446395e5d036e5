package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/redactkit/internal/clipboard"
	"github.com/suryansh-23/redactkit/internal/detect"
)

func newDoctorCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Print environment and configuration diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, state)
		},
	}
}

func runDoctor(cmd *cobra.Command, state *appState) error {
	out := cmd.OutOrStdout()
	info := readEnvInfo()
	ver, _, _ := resolveVersion()
	opts := state.cfg.RedactOptions().Normalized()

	fmt.Fprintf(out, "version=%s\n", ver)
	fmt.Fprintf(out, "platform=%s\n", info.platform)
	fmt.Fprintf(out, "shell=%s\n", info.shell)
	fmt.Fprintf(out, "term=%s\n", info.term)
	fmt.Fprintf(out, "stdin_tty=%t\n", info.stdinTTY)
	fmt.Fprintf(out, "size=%dx%d\n", info.cols, info.rows)
	fmt.Fprintf(out, "config_path=%s\n", state.cfgPath)
	fmt.Fprintf(out, "config_found=%t\n", state.cfgFound)
	fmt.Fprintf(out, "detectors_enabled=%s\n", enabledCategoryNames(state))
	fmt.Fprintf(out, "detectors_registered=%d\n", detect.DefaultRegistry().Len())
	fmt.Fprintf(out, "redaction_char=%s\n", opts.RedactionChar)
	fmt.Fprintf(out, "preserve_length=%t\n", opts.PreserveLength)
	fmt.Fprintf(out, "overlap=%s\n", opts.Overlap)
	fmt.Fprintf(out, "allowlist_entries=%d\n", len(state.cfg.AllowlistValues()))
	fmt.Fprintf(out, "output_format=%s\n", state.cfg.Output.Format)
	backend, ok := clipboard.Available(state.cfg.Clipboard.Backend)
	if backend == "" {
		backend = "unresolved"
	}
	fmt.Fprintf(out, "clipboard_backend=%s\n", backend)
	fmt.Fprintf(out, "clipboard_available=%t\n", ok)
	fmt.Fprintf(out, "cache_enabled=%t\n", state.cache != nil)
	fmt.Fprintf(out, "cache_entries=%d\n", state.cache.Len())
	fmt.Fprintf(out, "debug=%t\n", state.cfg.Debug.Enabled)
	return nil
}

func enabledCategoryNames(state *appState) string {
	var names []string
	for _, c := range state.cfg.RedactOptions().EnabledCategories() {
		names = append(names, string(c))
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
