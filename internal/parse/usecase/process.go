package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"nl-command-parser/internal/langpack"
	"nl-command-parser/internal/metadata"
	"nl-command-parser/internal/model"
	"nl-command-parser/internal/parse"
	"nl-command-parser/internal/splitter"
	"nl-command-parser/internal/temporal"
	"nl-command-parser/pkg/textfold"
)

// Process runs the full pipeline over one utterance: pack detection, clause
// splitting, then per clause tokenize, resolve, extract and classify. It
// never fails on well-formed text; degenerate input still yields a result,
// with UNKNOWN or the view fallback carrying the uncertainty.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input parse.ProcessInput) (parse.ProcessOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return parse.ProcessOutput{}, parse.ErrEmptyInput
	}

	ref := input.ReferenceDate
	if ref.IsZero() {
		ref = time.Now()
	}

	pack := langpack.Detect(input.Text, uc.packs)
	clauses := splitter.Split(input.Text, pack)

	results := make([]parse.ParseResult, 0, len(clauses))
	for _, clause := range clauses {
		results = append(results, uc.processClause(pack, clause, ref))
	}

	uc.l.Debugf(ctx, "uc.Process user=%s locale=%s clauses=%d", sc.UserID, pack.Locale(), len(results))

	return parse.ProcessOutput{Results: results}, nil
}

// processClause interprets a single clause. Temporal and metadata spans are
// rune intervals on the folded clause; folding preserves rune counts, so
// the same spans drive title extraction on the raw clause.
func (uc *implUseCase) processClause(pack langpack.Pack, clause splitter.Clause, ref time.Time) parse.ParseResult {
	folded := textfold.Fold(clause.Text)

	tokens := uc.tokenizers[pack.Locale()].Tokenize(folded)
	temporalCtx := temporal.Resolve(tokens, ref)

	meta := uc.extractors[pack.Locale()].Extract(folded)

	spans := make([]textfold.Span, 0, len(tokens)+len(meta))
	for _, t := range tokens {
		spans = append(spans, t.Span)
	}
	for _, m := range meta {
		spans = append(spans, m.Span)
	}
	title := metadata.Title(pack, clause.Text, spans)

	ambiguity := uc.scorer.Score(folded, tokens, meta)

	return parse.ParseResult{
		ID:            uuid.New(),
		OriginalText:  strings.TrimSpace(clause.Text),
		Language:      pack.Locale(),
		Title:         title,
		Intent:        ambiguity.PrimaryIntent(),
		Temporal:      temporalCtx,
		Metadata:      meta,
		Ambiguity:     ambiguity,
		ReferenceDate: ref,
	}
}
