package detect

import (
	"iter"
	"unicode/utf8"

	"github.com/suryansh-23/redactkit/internal/types"
)

// Match is one located occurrence of a category. Start and End are
// half-open codepoint offsets into the scanned text.
type Match struct {
	Category types.Category
	Label    string
	Start    int
	End      int
	Value    string

	byteStart int
	byteEnd   int
}

// ByteSpan returns the half-open byte offsets of the match in the scanned
// text. ok is false for matches that were not produced by a scan.
func (m Match) ByteSpan() (start, end int, ok bool) {
	if m.byteEnd <= m.byteStart || m.byteEnd-m.byteStart != len(m.Value) {
		return 0, 0, false
	}
	return m.byteStart, m.byteEnd, true
}

// Len returns the span length in codepoints.
func (m Match) Len() int {
	return m.End - m.Start
}

// Overlaps reports whether the two spans share any offset.
func (m Match) Overlaps(other Match) bool {
	return m.Start < other.End && other.Start < m.End
}

// Matches groups scan output by category. Each slice is ordered left to right.
type Matches map[types.Category][]Match

// Count returns the total number of matches across categories.
func (m Matches) Count() int {
	total := 0
	for _, list := range m {
		total += len(list)
	}
	return total
}

// Selector decides which categories are scanned.
type Selector interface {
	Enabled(category types.Category) bool
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(types.Category) bool

// Enabled calls f.
func (f SelectorFunc) Enabled(category types.Category) bool {
	return f(category)
}

// Scanner runs the enabled detectors of a registry over text.
type Scanner struct {
	registry *Registry
}

// NewScanner returns a scanner bound to reg. A nil registry selects the built-in one.
func NewScanner(reg *Registry) *Scanner {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Scanner{registry: reg}
}

// Registry returns the registry the scanner was built with.
func (s *Scanner) Registry() *Registry {
	return s.registry
}

// Scan returns the matches of every enabled category. Disabled categories are
// not scanned at all.
func (s *Scanner) Scan(text string, sel Selector) Matches {
	found := make(Matches)
	if text == "" || sel == nil {
		return found
	}
	for _, det := range s.registry.detectors {
		if !sel.Enabled(det.Category) {
			continue
		}
		var list []Match
		for m := range det.All(text) {
			list = append(list, m)
		}
		if len(list) > 0 {
			found[det.Category] = list
		}
	}
	return found
}

// All yields the non-overlapping matches of d in text from left to right.
// Every range over the sequence starts a fresh scan; no cursor state outlives it.
func (d Detector) All(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if d.Pattern == nil || text == "" {
			return
		}
		var cur runeCursor
		for _, loc := range d.Pattern.FindAllStringIndex(text, -1) {
			if loc[1] <= loc[0] {
				continue
			}
			start := cur.advance(text, loc[0])
			end := cur.advance(text, loc[1])
			m := Match{
				Category: d.Category,
				Label:    d.Label,
				Start:    start,
				End:      end,
				Value:    text[loc[0]:loc[1]],

				byteStart: loc[0],
				byteEnd:   loc[1],
			}
			if !yield(m) {
				return
			}
		}
	}
}

// runeCursor converts monotonically increasing byte offsets to codepoint offsets.
type runeCursor struct {
	byteOff int
	runeOff int
}

func (c *runeCursor) advance(text string, to int) int {
	if to > c.byteOff {
		c.runeOff += utf8.RuneCountInString(text[c.byteOff:to])
		c.byteOff = to
	}
	return c.runeOff
}
