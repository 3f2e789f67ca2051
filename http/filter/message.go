package filter

import "strings"

const arrow = "→"

// DefaultMessage derives a client message from a raw diagnostic text.
//
// The detail is whatever follows the first newline after the first arrow,
// with newlines removed and surrounding space trimmed, prefixed by the code:
// "[P2002]: Unique constraint failed". Without an arrow the whole text is
// used; with an arrow but no newline after it, the text after the arrow.
// An empty detail yields just "[P2002]".
func DefaultMessage(code, raw string) string {
	segment := raw
	if i := strings.Index(raw, arrow); i >= 0 {
		segment = raw[i:]
		if j := strings.IndexByte(segment, '\n'); j >= 0 {
			segment = segment[j+1:]
		} else {
			segment = segment[len(arrow):]
		}
	}

	detail := strings.TrimSpace(strings.ReplaceAll(segment, "\n", ""))
	if detail == "" {
		return "[" + code + "]"
	}
	return "[" + code + "]: " + detail
}
