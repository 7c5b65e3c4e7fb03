// Package extraction turns free-text engineering reports into structured
// intervention records. All inputs flow through here: the segmenter cuts
// a report into candidate statements and the matcher resolves each
// statement against the intervention pattern catalog.
package extraction

import (
	"iter"
	"strings"
)

// Segment splits raw report text into trimmed, non-empty statements.
// Statements end at sentence-terminating punctuation or newlines.
// The sequence is lazy and restartable: it is a pure function of the
// input and can be ranged over any number of times.
func Segment(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for i := 0; i <= len(text); i++ {
			if i < len(text) && !isBoundary(text[i]) {
				continue
			}
			stmt := strings.TrimSpace(text[start:i])
			start = i + 1
			if stmt == "" {
				continue
			}
			if !yield(stmt) {
				return
			}
		}
	}
}

// SegmentAll collects every statement into a slice.
func SegmentAll(text string) []string {
	var out []string
	for stmt := range Segment(text) {
		out = append(out, stmt)
	}
	return out
}

func isBoundary(b byte) bool {
	return b == '.' || b == ';' || b == '\n'
}
