// Package metadata extracts non-temporal evidence (tags, priority, location,
// reminders, notes) from clause text and derives the residual title. It runs
// independently of the temporal pipeline.
package metadata

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"nl-command-parser/internal/langpack"
	"nl-command-parser/pkg/textfold"
)

// Kind discriminates the metadata token variants.
type Kind int

const (
	KindTag Kind = iota + 1
	KindPriority
	KindLocation
	KindReminder
	KindNotes
)

func (k Kind) String() string {
	switch k {
	case KindTag:
		return "tag"
	case KindPriority:
		return "priority"
	case KindLocation:
		return "location"
	case KindReminder:
		return "reminder"
	case KindNotes:
		return "notes"
	default:
		return "unknown"
	}
}

// Level is the three-step priority scale. "Urgent" phrasings fold into high.
type Level int

const (
	LevelLow Level = iota + 1
	LevelMedium
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Token is one unit of non-temporal evidence. Value carries the tag name,
// location name or notes content; Level is set on priority tokens and
// ReminderOffset on reminder tokens. Confidence reflects how unambiguous the
// surrounding phrasing was.
type Token struct {
	Kind           Kind
	Value          string
	Level          Level
	ReminderOffset time.Duration
	Span           textfold.Span
	Confidence     float64
}

// Extractor holds the per-locale compiled scanners. Construct once per pack
// and reuse; it is immutable and safe for concurrent use.
type Extractor struct {
	pack      langpack.Pack
	keywords  localeKeywords
	stopWords map[string]struct{}

	hashtag  *regexp.Regexp
	tagWord  *regexp.Regexp
	priority *regexp.Regexp
	location *regexp.Regexp
	reminder *regexp.Regexp
	notes    *regexp.Regexp
}

func NewExtractor(pack langpack.Pack) *Extractor {
	kw := keywordsFor(pack.Locale())

	priorityWords := make([]string, 0, len(kw.priority))
	for word := range kw.priority {
		priorityWords = append(priorityWords, word)
	}

	stopWords := temporalStopWords(pack.Lexicon())
	for _, w := range kw.extraStopWords {
		stopWords[w] = struct{}{}
	}

	return &Extractor{
		pack:      pack,
		keywords:  kw,
		stopWords: stopWords,

		hashtag: regexp.MustCompile(`#([\pL\pN_-]+)`),
		tagWord: regexp.MustCompile(
			`(?i)\b(?:` + langpack.Alternation(kw.tagMarkers) + `)\s*:?\s*([\pL\pN_-]+)`),
		priority: regexp.MustCompile(
			`(?i)\b(` + langpack.Alternation(priorityWords) + `)\b`),
		location: regexp.MustCompile(
			`(?i)\b(?:` + langpack.Alternation(kw.locationPrepositions) + `)\s+(\pL[\pL\pN'-]*(?:\s+\pL[\pL\pN'-]*){0,2})`),
		reminder: regexp.MustCompile(
			`(?i)\b(\d+)\s*(` + langpack.Alternation(kw.reminderUnits) + `)\s+(?:` + langpack.Alternation(kw.beforeWords) + `)\b`),
		notes: regexp.MustCompile(
			`(?i)\b(?:` + langpack.Alternation(kw.notesMarkers) + `)\s*:\s*(.+)$`),
	}
}

type spanned struct {
	span textfold.Span
	tok  Token
}

// Extract scans folded clause text and returns the metadata tokens, ordered
// by match start. Overlapping matches are settled longest-span-first, so a
// notes tail absorbs anything written after its marker.
func (e *Extractor) Extract(folded string) []Token {
	var cands []spanned

	group := func(m []int, i int) string {
		if m[2*i] < 0 {
			return ""
		}
		return folded[m[2*i]:m[2*i+1]]
	}
	span := func(start, end int) textfold.Span {
		return textfold.RuneSpan(folded, start, end)
	}

	for _, m := range e.notes.FindAllStringSubmatchIndex(folded, -1) {
		cands = append(cands, spanned{span(m[0], m[1]), Token{
			Kind: KindNotes, Value: textfold.Collapse(group(m, 1)),
			Span: span(m[0], m[1]), Confidence: 0.8,
		}})
	}

	for _, m := range e.hashtag.FindAllStringSubmatchIndex(folded, -1) {
		cands = append(cands, spanned{span(m[0], m[1]), Token{
			Kind: KindTag, Value: group(m, 1),
			Span: span(m[0], m[1]), Confidence: 1.0,
		}})
	}
	for _, m := range e.tagWord.FindAllStringSubmatchIndex(folded, -1) {
		cands = append(cands, spanned{span(m[0], m[1]), Token{
			Kind: KindTag, Value: group(m, 1),
			Span: span(m[0], m[1]), Confidence: 0.8,
		}})
	}

	for _, m := range e.priority.FindAllStringSubmatchIndex(folded, -1) {
		entry := e.keywords.priority[textfold.Collapse(group(m, 1))]
		cands = append(cands, spanned{span(m[0], m[1]), Token{
			Kind: KindPriority, Level: entry.level,
			Span: span(m[0], m[1]), Confidence: entry.confidence,
		}})
	}

	for _, m := range e.reminder.FindAllStringSubmatchIndex(folded, -1) {
		n, _ := strconv.Atoi(group(m, 1))
		cands = append(cands, spanned{span(m[0], m[1]), Token{
			Kind: KindReminder, ReminderOffset: time.Duration(n) * unitDuration(group(m, 2)),
			Span: span(m[0], m[1]), Confidence: 0.9,
		}})
	}

	for _, m := range e.location.FindAllStringSubmatchIndex(folded, -1) {
		value := e.stripArticles(textfold.Collapse(group(m, 1)))
		if value == "" || e.temporalPhrase(value) {
			continue
		}
		cands = append(cands, spanned{span(m[0], m[1]), Token{
			Kind: KindLocation, Value: value,
			Span: span(m[0], m[1]), Confidence: 0.6,
		}})
	}

	return selectTokens(cands)
}

// temporalPhrase reports whether a candidate location value starts with a
// word owned by the temporal lexicon ("on friday", "no fim de semana"), in
// which case it is left for the temporal pipeline.
// stripArticles drops leading locale articles so "en la oficina" yields
// "oficina" and the temporal guard sees the content word.
func (e *Extractor) stripArticles(value string) string {
	for {
		first, rest, found := strings.Cut(value, " ")
		isArticle := false
		for _, a := range e.keywords.articles {
			if first == a {
				isArticle = true
				break
			}
		}
		if !isArticle {
			return value
		}
		if !found {
			return ""
		}
		value = rest
	}
}

func (e *Extractor) temporalPhrase(value string) bool {
	first, _, _ := strings.Cut(value, " ")
	_, ok := e.stopWords[first]
	return ok
}

// temporalStopWords collects the first word of every temporal lexicon entry.
func temporalStopWords(lex *langpack.Lexicon) map[string]struct{} {
	set := make(map[string]struct{})
	addFirst := func(entry string) {
		first, _, _ := strings.Cut(entry, " ")
		set[first] = struct{}{}
	}
	for w := range lex.Weekdays {
		addFirst(w)
	}
	for w := range lex.Months {
		addFirst(w)
	}
	for w := range lex.RelativeDays {
		addFirst(w)
	}
	for w := range lex.PartsOfDay {
		addFirst(w)
	}
	for _, w := range lex.WeekWords {
		addFirst(w)
	}
	for _, w := range lex.WeekendWords {
		addFirst(w)
	}
	for _, w := range lex.ThisWords {
		addFirst(w)
	}
	for _, w := range lex.NextWords {
		addFirst(w)
	}
	return set
}

func unitDuration(unit string) time.Duration {
	switch unit[0] {
	case 'm':
		return time.Minute
	case 'h':
		return time.Hour
	default:
		return 24 * time.Hour
	}
}

func selectTokens(cands []spanned) []Token {
	sort.SliceStable(cands, func(i, j int) bool {
		li := cands[i].span.End - cands[i].span.Start
		lj := cands[j].span.End - cands[j].span.Start
		if li != lj {
			return li > lj
		}
		return cands[i].span.Start < cands[j].span.Start
	})

	var picked []spanned
	for _, c := range cands {
		overlap := false
		for _, p := range picked {
			if c.span.Start < p.span.End && p.span.Start < c.span.End {
				overlap = true
				break
			}
		}
		if !overlap {
			picked = append(picked, c)
		}
	}

	tokens := make([]Token, 0, len(picked))
	for _, c := range picked {
		tokens = append(tokens, c.tok)
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Span.Start < tokens[j].Span.Start
	})
	return tokens
}
