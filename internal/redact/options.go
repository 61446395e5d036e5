package redact

import (
	"unicode/utf8"

	"github.com/suryansh-23/redactkit/internal/types"
)

const (
	// DefaultRedactionChar is used whenever no redaction character is supplied.
	DefaultRedactionChar = "█"
	// Marker replaces every match when length is not preserved.
	Marker = "[REDACTED]"
)

// Options selects categories and the replacement style for one call.
type Options struct {
	Emails       bool `json:"emails"`
	PhoneNumbers bool `json:"phoneNumbers"`
	SSN          bool `json:"ssn"`
	CreditCards  bool `json:"creditCards"`
	Names        bool `json:"names"`
	Addresses    bool `json:"addresses"`

	RedactionChar  string `json:"redactionChar"`
	PreserveLength bool   `json:"preserveLength"`

	// Overlap defaults to splice when empty.
	Overlap types.OverlapPolicy `json:"overlap,omitempty"`
}

// DefaultOptions mirrors the settings panel defaults.
func DefaultOptions() Options {
	return Options{
		Emails:         true,
		PhoneNumbers:   true,
		SSN:            true,
		CreditCards:    true,
		Names:          false,
		Addresses:      false,
		RedactionChar:  DefaultRedactionChar,
		PreserveLength: true,
		Overlap:        types.OverlapSplice,
	}
}

// Enabled reports whether category is switched on.
func (o Options) Enabled(category types.Category) bool {
	switch category {
	case types.CategoryEmail:
		return o.Emails
	case types.CategoryPhoneNumber:
		return o.PhoneNumbers
	case types.CategorySSN:
		return o.SSN
	case types.CategoryCreditCard:
		return o.CreditCards
	case types.CategoryName:
		return o.Names
	case types.CategoryAddress:
		return o.Addresses
	default:
		return false
	}
}

// SetEnabled switches category on or off. Unknown categories are ignored.
func (o *Options) SetEnabled(category types.Category, on bool) {
	switch category {
	case types.CategoryEmail:
		o.Emails = on
	case types.CategoryPhoneNumber:
		o.PhoneNumbers = on
	case types.CategorySSN:
		o.SSN = on
	case types.CategoryCreditCard:
		o.CreditCards = on
	case types.CategoryName:
		o.Names = on
	case types.CategoryAddress:
		o.Addresses = on
	}
}

// EnabledCategories lists the enabled categories in detection order.
func (o Options) EnabledCategories() []types.Category {
	var out []types.Category
	for _, c := range types.Categories() {
		if o.Enabled(c) {
			out = append(out, c)
		}
	}
	return out
}

// Normalized returns a copy with a single-glyph redaction character and a
// concrete overlap policy.
func (o Options) Normalized() Options {
	o.RedactionChar = NormalizeChar(o.RedactionChar)
	if o.Overlap == "" || !o.Overlap.Valid() {
		o.Overlap = types.OverlapSplice
	}
	return o
}

// NormalizeChar keeps the first glyph of s, falling back to DefaultRedactionChar.
func NormalizeChar(s string) string {
	if s == "" {
		return DefaultRedactionChar
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return DefaultRedactionChar
	}
	return s[:size]
}
