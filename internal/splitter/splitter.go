// Package splitter breaks one utterance into independent clauses so a
// sentence encoding multiple commands is parsed as multiple results.
package splitter

import (
	"strings"

	"nl-command-parser/internal/langpack"
	"nl-command-parser/pkg/textfold"
)

// Clause is one splittable unit of the original utterance. Text is the raw
// segment (not trimmed, so concatenating clauses with their separating
// connector words reconstructs the input exactly) and Offset is its rune
// position within the utterance.
type Clause struct {
	Text   string
	Offset int
}

// Split cuts text at the pack's connector words ("and", "e", "y"). A
// connector inside a matched from-to time range ("9 to 10") never splits.
// A split is only taken when both sides carry non-space content; with no
// splittable boundary the whole text comes back as a single clause.
func Split(text string, pack langpack.Pack) []Clause {
	whole := []Clause{{Text: text, Offset: 0}}

	scan := pack.Lexicon().ConnectorScanner()
	if scan == nil || text == "" {
		return whole
	}

	// Connectors are located on folded text so matching is case and
	// diacritic insensitive; folding preserves rune counts, so rune spans
	// on the folded text address the original. If folding ever changes
	// the length the utterance is left unsplit.
	folded := textfold.Fold(text)
	orig := []rune(text)
	if len([]rune(folded)) != len(orig) {
		return whole
	}

	ranges := rangeSpans(folded, pack)

	var clauses []Clause
	prev := 0
	for _, m := range scan.FindAllStringIndex(folded, -1) {
		span := textfold.RuneSpan(folded, m[0], m[1])
		if inside(span, ranges) {
			continue
		}
		left := string(orig[prev:span.Start])
		right := string(orig[span.End:])
		if strings.TrimSpace(left) == "" || strings.TrimSpace(right) == "" {
			continue
		}
		clauses = append(clauses, Clause{Text: left, Offset: prev})
		prev = span.End
	}
	if len(clauses) == 0 {
		return whole
	}
	return append(clauses, Clause{Text: string(orig[prev:]), Offset: prev})
}

// rangeSpans collects the rune spans of every from-to time range match.
func rangeSpans(folded string, pack langpack.Pack) []textfold.Span {
	var spans []textfold.Span
	for _, m := range pack.FromToRangeGrammar().FindAllStringIndex(folded, -1) {
		spans = append(spans, textfold.RuneSpan(folded, m[0], m[1]))
	}
	return spans
}

func inside(s textfold.Span, spans []textfold.Span) bool {
	for _, r := range spans {
		if s.Start >= r.Start && s.End <= r.End {
			return true
		}
	}
	return false
}
