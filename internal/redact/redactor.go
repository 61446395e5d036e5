package redact

import (
	"strings"
	"unicode/utf8"

	"github.com/suryansh-23/redactkit/internal/detect"
)

// apply rewrites text by splicing a replacement over every match, right to
// left. matches must be in descending start order, as detect.Resolve returns
// them. Detections are recorded in application order. Bytes outside the
// spliced spans are copied through as is, invalid UTF-8 included.
func apply(text string, matches []detect.Match, opts Options) (string, []Detection) {
	if len(matches) == 0 {
		return text, nil
	}
	s := splicer{head: text, headRunes: utf8.RuneCountInString(text)}
	detections := make([]Detection, 0, len(matches))
	for _, m := range matches {
		detections = append(detections, Detection{
			Type:  m.Label,
			Value: m.Value,
			Start: m.Start,
			End:   m.End,
		})
		s.splice(m, replacement(m.Len(), opts))
	}
	return s.text(), detections
}

// splicer holds the text being rewritten as an untouched head followed by
// finished pieces. Splicing at or left of the head boundary only reslices the
// head, so disjoint matches cost one pass over the text.
//
// Matches arrive with descending starts, so after every splice the head is a
// prefix of the input and the byte offsets recorded by the scanner stay valid
// for it.
type splicer struct {
	head      string
	headRunes int
	pieces    []string // rightmost first
}

func (s *splicer) splice(m detect.Match, repl string) {
	rewound := false
	if m.End > s.headRunes {
		// The span reaches into text rewritten by an earlier splice.
		s.head = s.text()
		s.headRunes = utf8.RuneCountInString(s.head)
		s.pieces = nil
		rewound = true
	}
	start := clamp(m.Start, s.headRunes)
	end := clamp(m.End, s.headRunes)
	if end < start {
		end = start
	}

	byteStart, byteEnd, ok := m.ByteSpan()
	if !ok || rewound || start != m.Start || end != m.End || byteEnd > len(s.head) {
		byteStart = byteOffset(s.head, start)
		byteEnd = byteStart + byteOffset(s.head[byteStart:], end-start)
	}
	s.pieces = append(s.pieces, s.head[byteEnd:], repl)
	s.head = s.head[:byteStart]
	s.headRunes = start
}

func (s *splicer) text() string {
	n := len(s.head)
	for _, p := range s.pieces {
		n += len(p)
	}
	var b strings.Builder
	b.Grow(n)
	b.WriteString(s.head)
	for i := len(s.pieces) - 1; i >= 0; i-- {
		b.WriteString(s.pieces[i])
	}
	return b.String()
}

// byteOffset returns the byte index of codepoint n in text. Each invalid byte
// counts as one codepoint, matching utf8.RuneCountInString.
func byteOffset(text string, n int) int {
	off := 0
	for ; n > 0 && off < len(text); n-- {
		_, size := utf8.DecodeRuneInString(text[off:])
		off += size
	}
	return off
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
