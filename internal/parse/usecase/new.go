package usecase

import (
	"nl-command-parser/internal/intent"
	"nl-command-parser/internal/langpack"
	"nl-command-parser/internal/metadata"
	"nl-command-parser/internal/temporal"
	"nl-command-parser/pkg/log"
)

// implUseCase is the private implementation of parse.UseCase. All per-pack
// machinery is compiled once here and never mutated afterwards, which makes
// Process safe for concurrent callers.
type implUseCase struct {
	packs      []langpack.Pack
	tokenizers map[string]*temporal.Tokenizer
	extractors map[string]*metadata.Extractor
	scorer     *intent.Scorer
	l          log.Logger
}

// New creates a new parse UseCase over the given language packs. Pack order
// matters: detection falls back to the first pack on a signal tie.
func New(l log.Logger, packs []langpack.Pack, cfg intent.Config) *implUseCase {
	tokenizers := make(map[string]*temporal.Tokenizer, len(packs))
	extractors := make(map[string]*metadata.Extractor, len(packs))
	for _, p := range packs {
		tokenizers[p.Locale()] = temporal.NewTokenizer(p)
		extractors[p.Locale()] = metadata.NewExtractor(p)
	}

	return &implUseCase{
		packs:      packs,
		tokenizers: tokenizers,
		extractors: extractors,
		scorer:     intent.NewScorer(cfg),
		l:          l,
	}
}
