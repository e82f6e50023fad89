// Package langpack holds the per-locale lexicons and compiled grammars the
// temporal pipeline matches against. Packs are immutable once constructed
// and safe to share across goroutines.
package langpack

import (
	"regexp"
	"time"

	"nl-command-parser/pkg/textfold"
)

// Weekday numbers use a fixed 1..7 convention with Sunday=1, independent of
// any first-weekday calendar configuration.
const (
	Sunday    = 1
	Monday    = 2
	Tuesday   = 3
	Wednesday = 4
	Thursday  = 5
	Friday    = 6
	Saturday  = 7
)

// PartOfDay is a coarse daypart attached to day-level phrases.
type PartOfDay int

const (
	PartNone PartOfDay = iota
	PartMorning
	PartAfternoon
	PartEvening
)

// RelativeDay is the payload of a relative-day word ("today", "amanhã").
// Words like "tonight" carry both a day offset and a daypart.
type RelativeDay struct {
	DayOffset int
	Part      PartOfDay
}

// Lexicon is the word-level configuration of a pack. All keys and entries
// are stored folded (lowercase, diacritics stripped) — see pkg/textfold.
type Lexicon struct {
	// Weekdays maps every recognized weekday spelling to 1..7 (Sunday=1).
	// Always includes the fixed English aliases "sun".."sat" as a
	// cross-language fallback.
	Weekdays map[string]int

	ThisWords  []string
	NextWords  []string
	Connectors []string

	// Months maps folded month names and abbreviations to time.Month.
	Months map[string]time.Month
	// MonthFirstDates reports whether numeric dates read month/day (en)
	// rather than day/month (pt, es).
	MonthFirstDates bool

	RelativeDays map[string]RelativeDay
	PartsOfDay   map[string]PartOfDay

	WeekWords    []string
	WeekendWords []string
	AtWords      []string
	FromWords    []string
	ToWords      []string

	// OrdinalDayPattern is a locale regex with exactly one capture group:
	// the day-of-month number ("24th", "dia 11º", "el 24").
	OrdinalDayPattern string

	// relativeDayScan and connectorScan are compiled once at pack
	// construction.
	relativeDayScan *regexp.Regexp
	connectorScan   *regexp.Regexp
}

// RelativeDayScanner returns the compiled alternation over RelativeDays keys.
func (l *Lexicon) RelativeDayScanner() *regexp.Regexp { return l.relativeDayScan }

// ConnectorScanner returns the compiled alternation over Connectors.
func (l *Lexicon) ConnectorScanner() *regexp.Regexp { return l.connectorScan }

// Pack is the per-locale temporal-parsing capability contract: the lexicon
// plus the six compiled grammars. Capture-group positions are fixed per
// grammar and documented next to the pattern templates in grammar.go.
type Pack interface {
	Locale() string
	Lexicon() *Lexicon

	WeekdayPhraseGrammar() *regexp.Regexp
	WeekReferenceGrammar() *regexp.Regexp
	BareWeekGrammar() *regexp.Regexp
	InlineWeekdayTimeGrammar() *regexp.Regexp
	FromToRangeGrammar() *regexp.Regexp
	CommandPrefixGrammar() *regexp.Regexp
}

// base carries the compiled state shared by all concrete packs.
type base struct {
	locale string
	lex    *Lexicon

	weekdayPhrase     *regexp.Regexp
	weekReference     *regexp.Regexp
	bareWeek          *regexp.Regexp
	inlineWeekdayTime *regexp.Regexp
	fromToRange       *regexp.Regexp
	commandPrefix     *regexp.Regexp
}

func (b *base) Locale() string                           { return b.locale }
func (b *base) Lexicon() *Lexicon                        { return b.lex }
func (b *base) WeekdayPhraseGrammar() *regexp.Regexp     { return b.weekdayPhrase }
func (b *base) WeekReferenceGrammar() *regexp.Regexp     { return b.weekReference }
func (b *base) BareWeekGrammar() *regexp.Regexp          { return b.bareWeek }
func (b *base) InlineWeekdayTimeGrammar() *regexp.Regexp { return b.inlineWeekdayTime }
func (b *base) FromToRangeGrammar() *regexp.Regexp       { return b.fromToRange }
func (b *base) CommandPrefixGrammar() *regexp.Regexp     { return b.commandPrefix }

// English is the en pack and the cross-language default.
type English struct{ *base }

// Portuguese is the pt-BR pack.
type Portuguese struct{ *base }

// Spanish is the es pack.
type Spanish struct{ *base }

// New returns the pack for a locale identifier ("en", "pt-BR", "es-MX"...).
// Unknown locales fall back to English rather than failing the parse; the
// English pack always carries the fixed sun..sat weekday aliases.
func New(locale string) Pack {
	switch normalizeLocale(locale) {
	case "pt":
		return NewPortuguese()
	case "es":
		return NewSpanish()
	default:
		return NewEnglish()
	}
}

func normalizeLocale(locale string) string {
	f := textfold.Fold(locale)
	if len(f) >= 2 {
		return f[:2]
	}
	return f
}

// All returns the supported packs in detection order (English first, so
// unmatched utterances default to it).
func All() []Pack {
	return []Pack{NewEnglish(), NewPortuguese(), NewSpanish()}
}

// AllPreferring returns All with the named pack moved to the front, making
// it the fallback for utterances with no locale signal at all.
func AllPreferring(locale string) []Pack {
	packs := All()
	want := normalizeLocale(locale)
	for i, p := range packs {
		if normalizeLocale(p.Locale()) == want {
			packs[0], packs[i] = packs[i], packs[0]
			break
		}
	}
	return packs
}

// Detect picks the pack governing an utterance. First pass: the first pack
// whose command-prefix grammar matches with a non-empty capture at offset 0
// wins. Second pass (utterances without an imperative verb): the pack whose
// lexical signals (weekday names, week references, relative-day words)
// produce the most matches wins. Default is the first pack in the list.
func Detect(text string, packs []Pack) Pack {
	if len(packs) == 0 {
		return NewEnglish()
	}

	folded := textfold.Fold(text)

	for _, p := range packs {
		if m := p.CommandPrefixGrammar().FindStringSubmatchIndex(folded); m != nil && m[0] == 0 && m[2] >= 0 && m[3] > m[2] {
			return p
		}
	}

	best := packs[0]
	bestScore := 0
	for _, p := range packs {
		score := signalCount(folded, p)
		if score > bestScore {
			best, bestScore = p, score
		}
	}
	return best
}

// signalCount counts locale-specific temporal signals in folded text.
func signalCount(folded string, p Pack) int {
	n := 0
	n += len(p.WeekdayPhraseGrammar().FindAllString(folded, -1))
	n += len(p.WeekReferenceGrammar().FindAllString(folded, -1))
	if scan := p.Lexicon().RelativeDayScanner(); scan != nil {
		n += len(scan.FindAllString(folded, -1))
	}
	return n
}
