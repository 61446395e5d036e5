// Package ansi removes terminal control sequences from captured output so
// detectors see the same text a reader would.
package ansi

import "bytes"

type escState int

const (
	stateText escState = iota
	stateEscStart
	stateCSI
	stateString
	stateStringEsc
)

// Strip returns data with CSI, OSC, DCS, SOS, PM and APC sequences and
// two-byte escapes removed. An unterminated trailing sequence is dropped.
func Strip(data []byte) []byte {
	out := make([]byte, 0, len(data))
	state := stateText
	osc := false
	for _, b := range data {
		switch state {
		case stateText:
			if b == 0x1b {
				state = stateEscStart
				continue
			}
			out = append(out, b)
		case stateEscStart:
			switch b {
			case '[':
				state = stateCSI
			case ']', 'P', 'X', '^', '_':
				osc = b == ']'
				state = stateString
			default:
				state = stateText
			}
		case stateCSI:
			if b >= 0x40 && b <= 0x7e {
				state = stateText
			}
		case stateString:
			switch {
			case osc && b == 0x07:
				state = stateText
			case b == 0x1b:
				state = stateStringEsc
			}
		case stateStringEsc:
			if b == '\\' {
				state = stateText
			} else {
				state = stateString
			}
		}
	}
	return out
}

// NormalizeNewlines rewrites CRLF, as emitted by a PTY line discipline, to LF.
func NormalizeNewlines(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
}

// Clean strips control sequences and normalizes line endings.
func Clean(data []byte) []byte {
	return NormalizeNewlines(Strip(data))
}
