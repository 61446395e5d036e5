package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/suryansh-23/redactkit/internal/redact"
	"github.com/suryansh-23/redactkit/internal/types"
)

// redactFlags override the configured options for a single run. Only flags
// the user actually set are applied.
type redactFlags struct {
	emails         bool
	phoneNumbers   bool
	ssn            bool
	creditCards    bool
	names          bool
	addresses      bool
	only           []string
	char           string
	preserveLength bool
	overlap        string
}

func (f *redactFlags) bind(fs *pflag.FlagSet) {
	fs.BoolVar(&f.emails, "emails", true, "detect email addresses")
	fs.BoolVar(&f.phoneNumbers, "phone-numbers", true, "detect phone numbers")
	fs.BoolVar(&f.ssn, "ssn", true, "detect social security numbers")
	fs.BoolVar(&f.creditCards, "credit-cards", true, "detect credit card numbers")
	fs.BoolVar(&f.names, "names", false, "detect personal names")
	fs.BoolVar(&f.addresses, "addresses", false, "detect street addresses")
	fs.StringSliceVar(&f.only, "only", nil, "enable only these categories (comma-separated)")
	fs.StringVar(&f.char, "char", "", "redaction character")
	fs.BoolVar(&f.preserveLength, "preserve-length", true, "replace each character instead of inserting [REDACTED]")
	fs.StringVar(&f.overlap, "overlap", "", "overlap policy: splice, priority or merge")
}

func (f *redactFlags) apply(fs *pflag.FlagSet, opts redact.Options) (redact.Options, error) {
	toggles := []struct {
		flag     string
		category types.Category
		value    bool
	}{
		{"emails", types.CategoryEmail, f.emails},
		{"phone-numbers", types.CategoryPhoneNumber, f.phoneNumbers},
		{"ssn", types.CategorySSN, f.ssn},
		{"credit-cards", types.CategoryCreditCard, f.creditCards},
		{"names", types.CategoryName, f.names},
		{"addresses", types.CategoryAddress, f.addresses},
	}
	if fs.Changed("only") {
		for _, c := range types.Categories() {
			opts.SetEnabled(c, false)
		}
		for _, raw := range f.only {
			c, ok := types.ParseCategory(raw)
			if !ok {
				return opts, fmt.Errorf("unknown category %q", raw)
			}
			opts.SetEnabled(c, true)
		}
	}
	for _, t := range toggles {
		if fs.Changed(t.flag) {
			opts.SetEnabled(t.category, t.value)
		}
	}
	if fs.Changed("char") {
		opts.RedactionChar = f.char
	}
	if fs.Changed("preserve-length") {
		opts.PreserveLength = f.preserveLength
	}
	if fs.Changed("overlap") {
		policy := types.OverlapPolicy(strings.ToLower(strings.TrimSpace(f.overlap)))
		if !policy.Valid() {
			return opts, fmt.Errorf("unknown overlap policy %q", f.overlap)
		}
		opts.Overlap = policy
	}
	return opts, nil
}

// outputFlags control how a result is rendered.
type outputFlags struct {
	json    bool
	summary bool
}

func (f *outputFlags) bind(fs *pflag.FlagSet) {
	fs.BoolVar(&f.json, "json", false, "print the result as JSON")
	fs.BoolVar(&f.summary, "summary", false, "print a detection summary")
}

func (f *outputFlags) resolve(fs *pflag.FlagSet, state *appState) (types.OutputFormat, bool) {
	format := state.cfg.Output.Format
	if fs.Changed("json") {
		format = types.OutputText
		if f.json {
			format = types.OutputJSON
		}
	}
	summary := state.cfg.Output.Summary
	if fs.Changed("summary") {
		summary = f.summary
	}
	return format, summary
}
