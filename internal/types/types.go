package types

import "strings"

// Category identifies a class of sensitive data.
type Category string

const (
	CategoryEmail       Category = "email"
	CategoryPhoneNumber Category = "phone_number"
	CategorySSN         Category = "ssn"
	CategoryCreditCard  Category = "credit_card"
	CategoryName        Category = "name"
	CategoryAddress     Category = "address"
)

// Categories returns every category in detection order.
func Categories() []Category {
	return []Category{
		CategoryEmail,
		CategoryPhoneNumber,
		CategorySSN,
		CategoryCreditCard,
		CategoryName,
		CategoryAddress,
	}
}

// Label returns the display label reported for detections.
func (c Category) Label() string {
	switch c {
	case CategoryEmail:
		return "Email"
	case CategoryPhoneNumber:
		return "Phone Number"
	case CategorySSN:
		return "SSN"
	case CategoryCreditCard:
		return "Credit Card"
	case CategoryName:
		return "Name"
	case CategoryAddress:
		return "Address"
	default:
		return string(c)
	}
}

// ParseCategory accepts a category key or its label, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	key := normalizeKey(s)
	for _, c := range Categories() {
		if key == string(c) || key == normalizeKey(c.Label()) {
			return c, true
		}
	}
	switch key {
	case "emails":
		return CategoryEmail, true
	case "phone", "phones", "phone_numbers":
		return CategoryPhoneNumber, true
	case "card", "cards", "credit_cards":
		return CategoryCreditCard, true
	case "names":
		return CategoryName, true
	case "addresses":
		return CategoryAddress, true
	}
	return "", false
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// OverlapPolicy controls how overlapping matches from different categories are handled.
type OverlapPolicy string

const (
	// OverlapSplice applies every match right to left without adjudication.
	OverlapSplice OverlapPolicy = "splice"
	// OverlapPriority keeps the match from the earliest category and drops overlaps.
	OverlapPriority OverlapPolicy = "priority"
	// OverlapMerge unions overlapping spans into a single composite match.
	OverlapMerge OverlapPolicy = "merge"
)

// OverlapPolicies lists the supported policies.
func OverlapPolicies() []OverlapPolicy {
	return []OverlapPolicy{OverlapSplice, OverlapPriority, OverlapMerge}
}

// Valid reports whether p is a known policy. The empty policy is treated as splice.
func (p OverlapPolicy) Valid() bool {
	switch p {
	case "", OverlapSplice, OverlapPriority, OverlapMerge:
		return true
	default:
		return false
	}
}

// OutputFormat selects how CLI results are rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)
