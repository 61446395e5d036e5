package allowlist

import (
	"fmt"
	"path"
	"strings"
)

// Match reports whether value matches any allowlist entry. Entries are
// path.Match globs compared against the whole value, case-insensitively.
func Match(entries []string, value string) (bool, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return false, nil
	}
	for _, entry := range entries {
		pattern := strings.ToLower(strings.TrimSpace(entry))
		if pattern == "" {
			continue
		}
		ok, err := path.Match(pattern, value)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Validate checks that every entry is a non-empty, well-formed pattern.
func Validate(entries []string) error {
	for i, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			return fmt.Errorf("entry %d is empty", i)
		}
		if _, err := path.Match(trimmed, "dummy"); err != nil {
			return fmt.Errorf("entry %d has invalid pattern: %w", i, err)
		}
	}
	return nil
}
