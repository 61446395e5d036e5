package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/suryansh-23/redactkit/internal/redact"
)

// runSelfTest redacts the sample text with opts and fails if any detected
// value survives in the output.
func runSelfTest(out io.Writer, opts redact.Options) error {
	res := redact.Redact(sampleText, opts)
	for _, d := range res.DetectedData {
		if strings.Contains(res.RedactedText, d.Value) {
			return fmt.Errorf("self-test failed: %s was not redacted", d.Type)
		}
	}
	fmt.Fprintf(out, "Self-test: %d of the sample's items redacted\n", len(res.DetectedData))
	return nil
}
