package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/redactkit/internal/config"
	"github.com/suryansh-23/redactkit/internal/debug"
)

func newRootCmd(state *appState) *cobra.Command {
	var (
		cfgPath   string
		debugFlag bool
	)

	rootCmd := &cobra.Command{
		Use:           "redactkit",
		Short:         "Detect and redact personal data in text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolvedPath, err := resolveConfigPath(cfgPath)
			if err != nil {
				return err
			}
			cfg, found, err := config.Load(resolvedPath)
			if err != nil {
				return err
			}
			applyOverrides(&cfg, debugFlag)
			state.cfg = cfg
			state.cfgFound = found
			state.cfgPath = resolvedPath
			state.logger = debug.NewWithWriter(cfg.Debug.Enabled, cfg.Debug.Format, os.Stderr)
			state.cache = ensureCache(state.cache, cfg)
			state.engine = newEngine(cfg, state.cache, state.logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable sanitized debug logging")

	rootCmd.AddCommand(newRedactCmd(state))
	rootCmd.AddCommand(newCopyCmd(state))
	rootCmd.AddCommand(newWatchCmd(state))
	rootCmd.AddCommand(newExecCmd(state))
	rootCmd.AddCommand(newDetectorsCmd(state))
	rootCmd.AddCommand(newSampleCmd(state))
	rootCmd.AddCommand(newInitCmd(&cfgPath))
	rootCmd.AddCommand(newResetCmd(&cfgPath))
	rootCmd.AddCommand(newDoctorCmd(state))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func applyOverrides(cfg *config.Config, debugFlag bool) {
	if debugFlag {
		cfg.Debug.Enabled = true
	}
}
