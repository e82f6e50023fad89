// Package textfold normalizes user text for locale-insensitive matching.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining marks after NFD decomposition, so
// "terça" folds to "terca" and "próxima" to "proxima".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics. Length in runes may differ
// from the input only for exotic decompositions; for the Latin text this
// engine handles, offsets are preserved.
func Fold(s string) string {
	out, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		// Transform failures only happen on invalid UTF-8; matching on the
		// lowercased original is still better than dropping the input.
		return strings.ToLower(s)
	}
	return out
}

// Collapse trims s and squeezes internal whitespace runs to single spaces.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Span is a half-open [Start, End) rune interval.
type Span struct {
	Start int
	End   int
}

// RuneSpan converts a byte interval inside s into rune offsets.
// Folding keeps rune counts stable for the Latin scripts handled here, so
// rune spans computed on folded text address the original text as well.
func RuneSpan(s string, byteStart, byteEnd int) Span {
	start := len([]rune(s[:byteStart]))
	return Span{Start: start, End: start + len([]rune(s[byteStart:byteEnd]))}
}

// RemoveSpans deletes the given rune spans from s and collapses the rest.
// Overlapping spans are tolerated.
func RemoveSpans(s string, spans []Span) string {
	if len(spans) == 0 {
		return Collapse(s)
	}
	rs := []rune(s)
	keep := make([]bool, len(rs))
	for i := range keep {
		keep[i] = true
	}
	for _, sp := range spans {
		for i := max(sp.Start, 0); i < sp.End && i < len(rs); i++ {
			keep[i] = false
		}
	}
	var b strings.Builder
	for i, r := range rs {
		if keep[i] {
			b.WriteRune(r)
		} else {
			// Leave a gap so adjacent words do not merge.
			b.WriteRune(' ')
		}
	}
	return Collapse(b.String())
}
