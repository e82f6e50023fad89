package langpack

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Grammar pattern sources below are written in an annotated form: '#' starts
// a comment running to end of line, and all whitespace is insignificant
// (use \s classes for real whitespace). mustCompileAnnotated strips both and
// compiles case-insensitively. A malformed pattern is a programmer error and
// panics at pack construction, so a pack can never be built with a missing
// grammar.

// Capture-group contracts (positions are fixed; the tokenizer addresses
// groups by index):
//
//	weekdayPhrase:      1=this/next modifier, 2=weekday name, 3=postfix modifier
//	weekReference:      1=this/next modifier, 2=week/weekend word, 3=postfix modifier
//	bareWeek:           1=week word
//	inlineWeekdayTime:  1=modifier, 2=weekday, 3=at-word, 4=hour, 5=minutes, 6=suffix
//	fromToRange:        1=from-word, 2=start hour, 3=start minutes, 4=start suffix,
//	                    5=to-word, 6=end hour, 7=end minutes, 8=end suffix
//	commandPrefix:      1=matched imperative prefix (must be non-empty at offset 0)
const (
	weekdayPhraseTemplate = `
		\b
		(?:(%[1]s)\s+)?        # 1: this/next modifier word
		(%[2]s)                # 2: weekday name, longest spelling first
		(?:\s+(%[3]s))?        # 3: postfix modifier ("que vem" / "que viene")
		\b
	`

	weekReferenceTemplate = `
		\b
		(?:(%[1]s)\s+)?        # 1: this/next modifier word
		(%[2]s)                # 2: week or weekend word
		(?:\s+(%[3]s))?        # 3: postfix modifier
		\b
	`

	bareWeekTemplate = `
		\b(%[1]s)\b            # 1: bare week word, loses to more specific grammars
	`

	inlineWeekdayTimeTemplate = `
		\b
		(?:(%[1]s)\s+)?        # 1: this/next modifier word
		(%[2]s)                # 2: weekday name
		\s+
		(?:(%[3]s)\s+)?        # 3: at-word introducing the time
		(\d{1,2})              # 4: hour
		(?::(\d{2}))?          # 5: minutes
		\s*
		(am|pm|h|hs|hrs)?      # 6: meridiem or locale hour suffix
		\b
	`

	fromToRangeTemplate = `
		\b
		(?:(%[1]s)\s+)?        # 1: from-word
		(\d{1,2})              # 2: start hour
		(?::(\d{2}))?          # 3: start minutes
		\s*(am|pm|h|hs|hrs)?   # 4: start suffix
		\s*(%[2]s)\s*          # 5: to-word
		(\d{1,2})              # 6: end hour
		(?::(\d{2}))?          # 7: end minutes
		\s*(am|pm|h|hs|hrs)?   # 8: end suffix
		\b
	`

	commandPrefixTemplate = `
		^\s*
		(%[1]s)                # 1: imperative prefix, longest phrase first
		\b
	`
)

// postfixModifiers are matched in every pack so the postfix capture group
// keeps its fixed position across locales.
var postfixModifiers = []string{"que vem", "que viene"}

// mustCompileAnnotated strips comments and whitespace from an annotated
// pattern source and compiles it case-insensitively. Panics on a malformed
// pattern (fail fast: a silently missing grammar causes systematic false
// negatives downstream).
func mustCompileAnnotated(src string) *regexp.Regexp {
	var b strings.Builder
	for _, line := range strings.Split(src, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, r := range line {
			switch r {
			case ' ', '\t', '\r':
				continue
			}
			b.WriteRune(r)
		}
	}
	return regexp.MustCompile(`(?i)` + b.String())
}

// Alternation renders words as a regex alternation, longest entry first so
// "segunda feira" is never shadowed by "segunda". Interior spaces become \s+.
func Alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	escaped := make([]string, len(sorted))
	for i, w := range sorted {
		escaped[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s+`)
	}
	return strings.Join(escaped, "|")
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// newBase compiles the six grammars for a lexicon. commandPrefixes are the
// locale's imperative boilerplate phrases, folded.
func newBase(locale string, lex *Lexicon, commandPrefixes []string) *base {
	modifiers := Alternation(append(append([]string{}, lex.ThisWords...), lex.NextWords...))
	weekdays := Alternation(mapKeys(lex.Weekdays))
	postfix := Alternation(postfixModifiers)
	weekAndWeekend := Alternation(append(append([]string{}, lex.WeekendWords...), lex.WeekWords...))

	lex.relativeDayScan = regexp.MustCompile(`(?i)\b(?:` + Alternation(mapKeys(lex.RelativeDays)) + `)\b`)
	lex.connectorScan = regexp.MustCompile(`(?i)\b(?:` + Alternation(lex.Connectors) + `)\b`)

	return &base{
		locale: locale,
		lex:    lex,
		weekdayPhrase: mustCompileAnnotated(fmt.Sprintf(
			weekdayPhraseTemplate, modifiers, weekdays, postfix)),
		weekReference: mustCompileAnnotated(fmt.Sprintf(
			weekReferenceTemplate, modifiers, weekAndWeekend, postfix)),
		bareWeek: mustCompileAnnotated(fmt.Sprintf(
			bareWeekTemplate, Alternation(lex.WeekWords))),
		inlineWeekdayTime: mustCompileAnnotated(fmt.Sprintf(
			inlineWeekdayTimeTemplate, modifiers, weekdays, Alternation(lex.AtWords))),
		fromToRange: mustCompileAnnotated(fmt.Sprintf(
			fromToRangeTemplate, Alternation(lex.FromWords), Alternation(lex.ToWords))),
		commandPrefix: mustCompileAnnotated(fmt.Sprintf(
			commandPrefixTemplate, Alternation(commandPrefixes))),
	}
}

// fixedEnglishAliases are registered in every pack regardless of locale, as
// a universal fallback.
var fixedEnglishAliases = map[string]int{
	"sun": Sunday, "mon": Monday, "tue": Tuesday, "wed": Wednesday,
	"thu": Thursday, "fri": Friday, "sat": Saturday,
}

// withEnglishAliases merges the fixed sun..sat aliases into a weekday map.
func withEnglishAliases(weekdays map[string]int) map[string]int {
	for alias, n := range fixedEnglishAliases {
		if _, ok := weekdays[alias]; !ok {
			weekdays[alias] = n
		}
	}
	return weekdays
}
