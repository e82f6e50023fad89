package temporal

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"nl-command-parser/internal/langpack"
	"nl-command-parser/pkg/textfold"
)

// Tokenizer runs a pack's six grammars plus shared time/date/ordinal
// scanners over clause text. Construct once per pack and reuse; it is
// immutable and safe for concurrent use.
type Tokenizer struct {
	pack langpack.Pack

	nextWords    map[string]struct{}
	weekendWords map[string]struct{}

	absTime    *regexp.Regexp
	ordinal    *regexp.Regexp
	partOfDay  *regexp.Regexp
	monthFirst *regexp.Regexp
	dayFirst   *regexp.Regexp
	numeric    *regexp.Regexp
}

func NewTokenizer(pack langpack.Pack) *Tokenizer {
	lex := pack.Lexicon()

	months := make([]string, 0, len(lex.Months))
	for name := range lex.Months {
		months = append(months, name)
	}
	parts := make([]string, 0, len(lex.PartsOfDay))
	for name := range lex.PartsOfDay {
		parts = append(parts, name)
	}
	monthsAlt := langpack.Alternation(months)

	return &Tokenizer{
		pack:         pack,
		nextWords:    wordSet(lex.NextWords),
		weekendWords: wordSet(lex.WeekendWords),

		absTime: regexp.MustCompile(
			`(?i)\b(?:(` + langpack.Alternation(lex.AtWords) + `)\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm|h|hs|hrs)?\b`),
		ordinal:   regexp.MustCompile(`(?i)` + lex.OrdinalDayPattern),
		partOfDay: regexp.MustCompile(`(?i)\b(` + langpack.Alternation(parts) + `)\b`),
		monthFirst: regexp.MustCompile(
			`(?i)\b(` + monthsAlt + `)\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s*,?\s*(\d{4}))?\b`),
		dayFirst: regexp.MustCompile(
			`(?i)\b(\d{1,2})\s+(?:de\s+)?(` + monthsAlt + `)(?:\s+(?:de\s+|del\s+)?(\d{4}))?\b`),
		numeric: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`),
	}
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Scanner priority when two candidates of equal span length overlap. Lower
// beats higher; the dominant selection criterion is span length (specific,
// longer matches beat general ones).
const (
	prioFromTo = iota + 1
	prioInline
	prioWeekdayPhrase
	prioNamedDate
	prioNumericDate
	prioOrdinal
	prioRelativeDay
	prioPartOfDay
	prioWeekReference
	prioAbsTime
	prioBareWeek
)

type candidate struct {
	span   textfold.Span
	prio   int
	tokens []Token
}

// Tokenize scans folded clause text and returns non-overlapping tokens
// ordered by match start. Overlaps are settled longest-span-first, then by
// scanner priority, so "por la manana" (a daypart) beats the "manana"
// (tomorrow) inside it, and an inline weekday+time beats its bare weekday.
func (t *Tokenizer) Tokenize(folded string) []Token {
	lex := t.pack.Lexicon()
	var cands []candidate

	group := func(m []int, i int) string {
		if m[2*i] < 0 {
			return ""
		}
		return folded[m[2*i]:m[2*i+1]]
	}
	span := func(start, end int) textfold.Span {
		return textfold.RuneSpan(folded, start, end)
	}

	for _, m := range t.pack.FromToRangeGrammar().FindAllStringSubmatchIndex(folded, -1) {
		startSuf, endSuf := inheritSuffix(group(m, 4), group(m, 8))
		sh, sm, okStart := parseClock(group(m, 2), group(m, 3), startSuf)
		eh, em, okEnd := parseClock(group(m, 6), group(m, 7), endSuf)
		if !okStart || !okEnd {
			continue
		}
		cands = append(cands, candidate{
			span: span(m[0], m[1]),
			prio: prioFromTo,
			tokens: []Token{{
				Kind: KindTimeRange, Span: span(m[0], m[1]),
				Hour: sh, Minute: sm, EndHour: eh, EndMinute: em,
			}},
		})
	}

	for _, m := range t.pack.InlineWeekdayTimeGrammar().FindAllStringSubmatchIndex(folded, -1) {
		wd, okDay := lex.Weekdays[textfold.Collapse(group(m, 2))]
		if !okDay {
			continue
		}
		// A bare trailing number is not a time: require minutes, a
		// suffix, or an introducing at-word.
		if group(m, 3) == "" && group(m, 5) == "" && group(m, 6) == "" {
			continue
		}
		h, mn, okTime := parseClock(group(m, 4), group(m, 5), group(m, 6))
		if !okTime {
			continue
		}
		timeStart := m[8]
		if m[6] >= 0 {
			timeStart = m[6]
		}
		cands = append(cands, candidate{
			span: span(m[0], m[1]),
			prio: prioInline,
			tokens: []Token{
				{
					Kind: KindWeekday, Span: span(m[0], m[5]),
					Weekday: wd, Modifier: t.modifier(group(m, 1), ""),
				},
				{
					Kind: KindAbsoluteTime, Span: span(timeStart, m[1]),
					Hour: h, Minute: mn,
				},
			},
		})
	}

	for _, m := range t.pack.WeekdayPhraseGrammar().FindAllStringSubmatchIndex(folded, -1) {
		wd, ok := lex.Weekdays[textfold.Collapse(group(m, 2))]
		if !ok {
			continue
		}
		cands = append(cands, candidate{
			span: span(m[0], m[1]),
			prio: prioWeekdayPhrase,
			tokens: []Token{{
				Kind: KindWeekday, Span: span(m[0], m[1]),
				Weekday: wd, Modifier: t.modifier(group(m, 1), group(m, 3)),
			}},
		})
	}

	for _, m := range t.monthFirst.FindAllStringSubmatchIndex(folded, -1) {
		t.addDate(&cands, span(m[0], m[1]), lex, group(m, 1), group(m, 2), group(m, 3))
	}
	for _, m := range t.dayFirst.FindAllStringSubmatchIndex(folded, -1) {
		t.addDate(&cands, span(m[0], m[1]), lex, group(m, 2), group(m, 1), group(m, 3))
	}
	for _, m := range t.numeric.FindAllStringSubmatchIndex(folded, -1) {
		first, second := group(m, 1), group(m, 2)
		if !lex.MonthFirstDates {
			first, second = second, first
		}
		month, _ := strconv.Atoi(first)
		day, _ := strconv.Atoi(second)
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		cands = append(cands, candidate{
			span: span(m[0], m[1]),
			prio: prioNumericDate,
			tokens: []Token{{
				Kind: KindAbsoluteDate, Span: span(m[0], m[1]),
				Month: time.Month(month), Day: day, Year: parseYear(group(m, 3)),
			}},
		})
	}

	for _, m := range t.ordinal.FindAllStringSubmatchIndex(folded, -1) {
		day, _ := strconv.Atoi(group(m, 1))
		if day < 1 || day > 31 {
			continue
		}
		cands = append(cands, candidate{
			span: span(m[0], m[1]),
			prio: prioOrdinal,
			tokens: []Token{{
				Kind: KindOrdinalDay, Span: span(m[0], m[1]), Day: day,
			}},
		})
	}

	if scan := lex.RelativeDayScanner(); scan != nil {
		for _, m := range scan.FindAllStringIndex(folded, -1) {
			rel, ok := lex.RelativeDays[textfold.Collapse(folded[m[0]:m[1]])]
			if !ok {
				continue
			}
			cands = append(cands, candidate{
				span: span(m[0], m[1]),
				prio: prioRelativeDay,
				tokens: []Token{{
					Kind: KindRelativeDay, Span: span(m[0], m[1]),
					DayOffset: rel.DayOffset, Part: rel.Part,
				}},
			})
		}
	}

	for _, m := range t.partOfDay.FindAllStringSubmatchIndex(folded, -1) {
		part, ok := lex.PartsOfDay[textfold.Collapse(group(m, 1))]
		if !ok {
			continue
		}
		cands = append(cands, candidate{
			span: span(m[0], m[1]),
			prio: prioPartOfDay,
			tokens: []Token{{
				Kind: KindPartOfDay, Span: span(m[0], m[1]), Part: part,
			}},
		})
	}

	for _, m := range t.pack.WeekReferenceGrammar().FindAllStringSubmatchIndex(folded, -1) {
		kind := KindRelativeWeek
		if _, weekend := t.weekendWords[textfold.Collapse(group(m, 2))]; weekend {
			kind = KindWeekend
		}
		scope := ScopeThisWeek
		if t.modifier(group(m, 1), group(m, 3)) == ModifierNext {
			scope = ScopeNextWeek
		}
		cands = append(cands, candidate{
			span: span(m[0], m[1]),
			prio: prioWeekReference,
			tokens: []Token{{
				Kind: kind, Span: span(m[0], m[1]), Scope: scope,
			}},
		})
	}

	for _, m := range t.pack.BareWeekGrammar().FindAllStringSubmatchIndex(folded, -1) {
		cands = append(cands, candidate{
			span: span(m[0], m[1]),
			prio: prioBareWeek,
			tokens: []Token{{
				Kind: KindRelativeWeek, Span: span(m[0], m[1]), Scope: ScopeThisWeek,
			}},
		})
	}

	for _, m := range t.absTime.FindAllStringSubmatchIndex(folded, -1) {
		// A bare number never reads as a time.
		if group(m, 1) == "" && group(m, 3) == "" && group(m, 4) == "" {
			continue
		}
		h, mn, ok := parseClock(group(m, 2), group(m, 3), group(m, 4))
		if !ok {
			continue
		}
		cands = append(cands, candidate{
			span: span(m[0], m[1]),
			prio: prioAbsTime,
			tokens: []Token{{
				Kind: KindAbsoluteTime, Span: span(m[0], m[1]), Hour: h, Minute: mn,
			}},
		})
	}

	return selectNonOverlapping(cands)
}

func (t *Tokenizer) addDate(cands *[]candidate, sp textfold.Span, lex *langpack.Lexicon, monthText, dayText, yearText string) {
	month, ok := lex.Months[textfold.Collapse(monthText)]
	if !ok {
		return
	}
	day, _ := strconv.Atoi(dayText)
	if day < 1 || day > 31 {
		return
	}
	*cands = append(*cands, candidate{
		span: sp,
		prio: prioNamedDate,
		tokens: []Token{{
			Kind: KindAbsoluteDate, Span: sp,
			Month: month, Day: day, Year: parseYear(yearText),
		}},
	})
}

// modifier classifies a captured modifier word plus an optional postfix
// ("que vem"/"que viene", which always means next).
func (t *Tokenizer) modifier(word, postfix string) Modifier {
	if postfix != "" {
		return ModifierNext
	}
	if _, ok := t.nextWords[textfold.Collapse(word)]; ok {
		return ModifierNext
	}
	return ModifierNone
}

// inheritSuffix copies a meridiem marker across the sides of a from-to
// range, so "from 2 to 4pm" reads as 14:00-16:00.
func inheritSuffix(start, end string) (string, string) {
	if start == "" && (end == "am" || end == "pm") {
		start = end
	}
	if end == "" && (start == "am" || start == "pm") {
		end = start
	}
	return start, end
}

// parseClock normalizes an hour/minute/suffix capture to 24h clock values.
func parseClock(hourText, minText, suffix string) (hour, minute int, ok bool) {
	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return 0, 0, false
	}
	if minText != "" {
		minute, _ = strconv.Atoi(minText)
	}
	switch suffix {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

func parseYear(text string) int {
	if text == "" {
		return 0
	}
	year, _ := strconv.Atoi(text)
	if year < 100 {
		year += 2000
	}
	return year
}

// selectNonOverlapping keeps a maximal set of non-overlapping candidates,
// preferring longer spans, then lower scanner priority, and returns their
// tokens ordered by start offset.
func selectNonOverlapping(cands []candidate) []Token {
	sort.SliceStable(cands, func(i, j int) bool {
		li := cands[i].span.End - cands[i].span.Start
		lj := cands[j].span.End - cands[j].span.Start
		if li != lj {
			return li > lj
		}
		if cands[i].prio != cands[j].prio {
			return cands[i].prio < cands[j].prio
		}
		return cands[i].span.Start < cands[j].span.Start
	})

	var picked []candidate
	for _, c := range cands {
		if !overlapsAny(c.span, picked) {
			picked = append(picked, c)
		}
	}

	var tokens []Token
	for _, c := range picked {
		tokens = append(tokens, c.tokens...)
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Span.Start < tokens[j].Span.Start
	})
	return tokens
}

func overlapsAny(s textfold.Span, picked []candidate) bool {
	for _, p := range picked {
		if s.Start < p.span.End && p.span.Start < s.End {
			return true
		}
	}
	return false
}
