package redact

import "strings"

// replacement returns the text substituted for a match spanning length codepoints.
func replacement(length int, opts Options) string {
	if !opts.PreserveLength {
		return Marker
	}
	if length <= 0 {
		return ""
	}
	return strings.Repeat(opts.RedactionChar, length)
}
