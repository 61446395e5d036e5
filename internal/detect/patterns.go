package detect

import "github.com/suryansh-23/redactkit/internal/types"

// spaceChars is the whitespace set used as a separator inside phone, card and
// address patterns. RE2's \s is ASCII only, so no-break and other Unicode
// spaces pasted from web pages are listed explicitly.
const spaceChars = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// Pattern sources for the built-in detectors, in RE2 syntax.
const (
	emailPattern      = `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`
	phonePattern      = `\(?\d{3}\)?` + phoneSep + `\d{3}` + phoneSep + `\d{4}|\+\d{1,3}` + phoneSep + `\d{1,4}` + phoneSep + `\d{1,4}` + phoneSep + `\d{1,9}`
	ssnPattern        = `\b\d{3}-?\d{2}-?\d{4}\b`
	creditCardPattern = `\b(?:\d{4}[-` + spaceChars + `]?){3}\d{4}\b`
	// Two capitalized words. High false-positive rate; off by default.
	namePattern    = `\b[A-Z][a-z]+ [A-Z][a-z]+\b`
	addressPattern = `(?i)\b\d+[` + spaceChars + `]+[A-Za-z` + spaceChars + `]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd|Court|Ct|Place|Pl)\b`
)

const phoneSep = `[-.` + spaceChars + `]?`

// DefaultDefinitions returns the built-in detector definitions in detection order.
func DefaultDefinitions() []Definition {
	return []Definition{
		{Category: types.CategoryEmail, Pattern: emailPattern},
		{Category: types.CategoryPhoneNumber, Pattern: phonePattern},
		{Category: types.CategorySSN, Pattern: ssnPattern},
		{Category: types.CategoryCreditCard, Pattern: creditCardPattern},
		{Category: types.CategoryName, Pattern: namePattern},
		{Category: types.CategoryAddress, Pattern: addressPattern},
	}
}
