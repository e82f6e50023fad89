package intent

import (
	"fmt"
	"regexp"
	"sort"

	"nl-command-parser/internal/langpack"
	"nl-command-parser/internal/metadata"
	"nl-command-parser/internal/temporal"
)

var (
	completionScan   = regexp.MustCompile(`\b(?:` + langpack.Alternation(completionCues) + `)\b`)
	cancellationScan = regexp.MustCompile(`\b(?:` + langpack.Alternation(cancellationCues) + `)\b`)
)

// Scorer ranks intents for one clause. It is stateless apart from its
// configuration; scoring builds a fresh accumulator per call.
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score classifies one clause. folded is the folded clause text (used only
// for cancellation cues); the token sets carry all other evidence.
func (s *Scorer) Score(folded string, temporalTokens []temporal.Token, metadataTokens []metadata.Token) Ambiguity {
	acc := newAccumulator()

	for _, tok := range temporalTokens {
		switch tok.Kind {
		case temporal.KindTimeRange:
			acc.apply(ruleTimeRange)
		case temporal.KindAbsoluteTime:
			acc.apply(ruleAbsoluteTime)
		case temporal.KindRelativeDay:
			if tok.DayOffset > 0 {
				acc.apply(ruleFutureReference)
			} else {
				acc.apply(rulePresentReference)
			}
		case temporal.KindRelativeWeek, temporal.KindWeekend:
			if tok.Scope == temporal.ScopeNextWeek {
				acc.apply(ruleFutureReference)
			} else {
				acc.apply(rulePresentReference)
			}
		case temporal.KindWeekday:
			if tok.Modifier == temporal.ModifierNext {
				acc.apply(ruleNextWeekday)
			} else {
				acc.apply(ruleBareWeekday)
			}
		default:
			acc.apply(ruleOtherTemporal)
		}
	}

	for _, tok := range metadataTokens {
		switch tok.Kind {
		case metadata.KindTag:
			acc.apply(ruleTag)
		case metadata.KindPriority:
			acc.apply(rulePriority)
		case metadata.KindLocation:
			acc.apply(ruleLocation)
		case metadata.KindReminder:
			acc.apply(ruleReminder)
		case metadata.KindNotes:
			acc.apply(ruleNotes)
		}
		if tok.Kind == metadata.KindTag || tok.Kind == metadata.KindNotes {
			if completionScan.MatchString(tok.Value) {
				acc.apply(ruleCompletionCue)
			}
		}
	}

	if cancellationScan.MatchString(folded) {
		acc.apply(ruleCancellationCue)
	}
	if len(temporalTokens) == 0 && len(metadataTokens) > 0 {
		acc.apply(ruleMetadataOnly)
	}
	if len(temporalTokens) > 0 && len(metadataTokens) == 0 {
		acc.apply(ruleTemporalOnly)
	}

	return s.rank(acc)
}

type accumulator struct {
	scores  map[Intent]float64
	reasons map[Intent][]string
}

func newAccumulator() *accumulator {
	return &accumulator{
		scores:  make(map[Intent]float64),
		reasons: make(map[Intent][]string),
	}
}

func (a *accumulator) apply(r rule) {
	for in, w := range r.weights {
		a.scores[in] += w
		a.reasons[in] = append(a.reasons[in], fmt.Sprintf("%s (+%.1f)", r.reason, w))
	}
}

// rank turns the raw scores into the capped, thresholded prediction list.
func (s *Scorer) rank(acc *accumulator) Ambiguity {
	var top float64
	for _, score := range acc.scores {
		if score > top {
			top = score
		}
	}

	divisor := s.cfg.NormalizationFloor
	if top > divisor {
		divisor = top
	}

	var preds []Prediction
	for in, score := range acc.scores {
		if score <= 0 {
			continue
		}
		conf := score / divisor
		if conf > 1.0 {
			conf = 1.0
		}
		if conf < s.cfg.MinConfidence {
			continue
		}
		reasons := sortedReasons(acc.reasons[in])
		reasons = append(reasons, fmt.Sprintf("score %.2f", score))
		preds = append(preds, Prediction{Intent: in, Confidence: conf, Reasoning: reasons})
	}

	if len(preds) == 0 {
		return Ambiguity{Predictions: []Prediction{{
			Intent:     View,
			Confidence: fallbackConfidence,
			Reasoning:  []string{"no clear intent indicators, defaulting to view"},
		}}}
	}

	sort.SliceStable(preds, func(i, j int) bool {
		if preds[i].Confidence != preds[j].Confidence {
			return preds[i].Confidence > preds[j].Confidence
		}
		return preds[i].Intent < preds[j].Intent
	})
	if len(preds) > s.cfg.MaxPredictions {
		preds = preds[:s.cfg.MaxPredictions]
	}

	ambiguous := len(preds) >= 2 && preds[0].Confidence-preds[1].Confidence < s.cfg.AmbiguityGap
	return Ambiguity{Predictions: preds, IsAmbiguous: ambiguous}
}

// sortedReasons keeps reasoning output deterministic regardless of map
// iteration order during accumulation.
func sortedReasons(reasons []string) []string {
	out := make([]string, len(reasons))
	copy(out, reasons)
	sort.Strings(out)
	return out
}
