package metadata

import (
	"nl-command-parser/internal/langpack"
	"nl-command-parser/pkg/textfold"
)

// Title derives the residual title: the original clause text with the
// pack's command prefix and every recognized temporal and metadata span
// blanked out, then whitespace-collapsed. Spans are rune intervals computed
// against the folded clause; folding preserves rune counts, so they address
// the original text directly.
func Title(pack langpack.Pack, text string, spans []textfold.Span) string {
	folded := textfold.Fold(text)

	all := make([]textfold.Span, 0, len(spans)+1)
	all = append(all, spans...)
	if m := pack.CommandPrefixGrammar().FindStringIndex(folded); m != nil {
		all = append(all, textfold.RuneSpan(folded, m[0], m[1]))
	}
	return textfold.RemoveSpans(text, all)
}
