package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/suryansh-23/redactkit/internal/config"
	"github.com/suryansh-23/redactkit/internal/redact"
	"github.com/suryansh-23/redactkit/internal/types"
	"github.com/suryansh-23/redactkit/internal/ui"
)

// initChoices holds the values bound to the setup form.
type initChoices struct {
	categories     []string
	redactionChar  string
	preserveLength bool
	overlap        string
	format         string
	summary        bool
}

func choicesFromConfig(cfg config.Config) initChoices {
	opts := cfg.RedactOptions()
	var categories []string
	for _, c := range opts.EnabledCategories() {
		categories = append(categories, string(c))
	}
	overlap := string(opts.Overlap)
	if overlap == "" {
		overlap = string(types.OverlapSplice)
	}
	return initChoices{
		categories:     categories,
		redactionChar:  opts.RedactionChar,
		preserveLength: opts.PreserveLength,
		overlap:        overlap,
		format:         string(cfg.Output.Format),
		summary:        cfg.Output.Summary,
	}
}

func (c initChoices) options() redact.Options {
	var opts redact.Options
	for _, cat := range types.Categories() {
		opts.SetEnabled(cat, slices.Contains(c.categories, string(cat)))
	}
	opts.RedactionChar = c.redactionChar
	opts.PreserveLength = c.preserveLength
	opts.Overlap = types.OverlapPolicy(c.overlap)
	return opts
}

func (c initChoices) apply(cfg *config.Config) {
	cfg.SetRedactOptions(c.options())
	cfg.Output.Format = types.OutputFormat(c.format)
	cfg.Output.Summary = c.summary
}

func newInitCmd(cfgPath *string) *cobra.Command {
	var useDefaults bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Run the interactive settings wizard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(*cfgPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			cfg := config.DefaultConfig()
			if useDefaults {
				if configFileExists(path) {
					fmt.Fprintf(out, "Config exists, overwriting: %s\n", path)
				}
				if err := runSelfTest(out, cfg.RedactOptions()); err != nil {
					return err
				}
				if err := config.Write(path, cfg); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote config to %s\n", path)
				return nil
			}

			if existing, found, err := config.Load(path); err == nil && found {
				cfg = existing
			}
			choices := choicesFromConfig(cfg)
			overwrite := false

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewNote().Title("Environment").Description(envSummary()).Next(true),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Config exists. Overwrite?").Value(&overwrite),
				).WithHideFunc(func() bool { return !configFileExists(path) }),
				huh.NewGroup(
					huh.NewMultiSelect[string]().
						Title("Detect").
						Value(&choices.categories).
						Options(categoryOptions()...),
				),
				huh.NewGroup(
					huh.NewConfirm().
						Title("Preserve text length?").
						Description("Replace each character instead of inserting " + redact.Marker).
						Value(&choices.preserveLength),
					huh.NewInput().
						Title("Redaction character").
						Value(&choices.redactionChar).
						Validate(func(v string) error {
							if strings.TrimSpace(v) == "" {
								return errors.New("enter a character")
							}
							return nil
						}),
				),
				huh.NewGroup(
					huh.NewSelect[string]().Title("When detections overlap").Value(&choices.overlap).Options(
						huh.NewOption("Apply every match (default)", string(types.OverlapSplice)),
						huh.NewOption("Keep the earlier category", string(types.OverlapPriority)),
						huh.NewOption("Merge into one span", string(types.OverlapMerge)),
					),
				),
				huh.NewGroup(
					huh.NewSelect[string]().Title("Output format").Value(&choices.format).Options(
						huh.NewOption("Redacted text", string(types.OutputText)),
						huh.NewOption("JSON with detections", string(types.OutputJSON)),
					),
					huh.NewConfirm().Title("Show a detection summary?").Value(&choices.summary),
				),
			).WithTheme(ui.Theme())

			preview := func() string {
				return redact.Redact(sampleText, choices.options()).RedactedText
			}
			if err := runAnimatedForm(form, preview); err != nil {
				return err
			}
			if configFileExists(path) && !overwrite {
				return errors.New("init cancelled")
			}

			choices.apply(&cfg)
			if err := runSelfTest(out, cfg.RedactOptions()); err != nil {
				return err
			}
			if err := config.Write(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote config to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useDefaults, "default", false, "write default config without prompts")
	return cmd
}

func categoryOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(types.Categories()))
	for _, c := range types.Categories() {
		options = append(options, huh.NewOption(c.Label(), string(c)))
	}
	return options
}
