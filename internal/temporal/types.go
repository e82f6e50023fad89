// Package temporal turns clause text into typed temporal tokens and resolves
// a token sequence against a reference instant into a concrete date or date
// range.
package temporal

import (
	"time"

	"nl-command-parser/internal/langpack"
	"nl-command-parser/pkg/textfold"
)

// Kind discriminates the token variants. Exactly the payload fields listed
// next to each kind are meaningful on a token of that kind.
type Kind int

const (
	// KindAbsoluteTime: Hour, Minute.
	KindAbsoluteTime Kind = iota + 1
	// KindTimeRange: Hour, Minute, EndHour, EndMinute.
	KindTimeRange
	// KindRelativeDay: DayOffset, Part.
	KindRelativeDay
	// KindRelativeWeek: Scope.
	KindRelativeWeek
	// KindWeekend: Scope.
	KindWeekend
	// KindWeekday: Weekday (1..7, Sunday=1), Modifier.
	KindWeekday
	// KindOrdinalDay: Day.
	KindOrdinalDay
	// KindAbsoluteDate: Day, Month, Year (0 when unspecified).
	KindAbsoluteDate
	// KindPartOfDay: Part.
	KindPartOfDay
)

func (k Kind) String() string {
	switch k {
	case KindAbsoluteTime:
		return "absoluteTime"
	case KindTimeRange:
		return "timeRange"
	case KindRelativeDay:
		return "relativeDay"
	case KindRelativeWeek:
		return "relativeWeek"
	case KindWeekend:
		return "weekend"
	case KindWeekday:
		return "weekday"
	case KindOrdinalDay:
		return "ordinalDay"
	case KindAbsoluteDate:
		return "absoluteDate"
	case KindPartOfDay:
		return "partOfDay"
	default:
		return "unknown"
	}
}

// Modifier qualifies a weekday token.
type Modifier int

const (
	ModifierNone Modifier = iota
	ModifierNext
)

// WeekScope addresses the current or the following calendar week. Weeks run
// Monday through Sunday.
type WeekScope int

const (
	ScopeThisWeek WeekScope = iota
	ScopeNextWeek
)

// Token is one unit of temporal evidence, immutable once emitted. Span is
// the token's rune interval within the folded clause text; since folding
// preserves rune counts the span also addresses the original clause. Tokens
// are emitted in left-to-right scan order and the span drives rightmost-wins
// conflict resolution.
type Token struct {
	Kind Kind
	Span textfold.Span

	Hour      int
	Minute    int
	EndHour   int
	EndMinute int

	DayOffset int
	Part      langpack.PartOfDay

	Scope WeekScope

	Weekday  int
	Modifier Modifier

	Day   int
	Month time.Month
	Year  int
}

// DateRange is a bounded interval. End is inclusive for day-granular ranges
// (week, weekend, part-of-day) and the literal end instant for time ranges.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Context is the interpreter's resolution of one clause. When IsRangeQuery
// is false only FinalDate and FinalDateDuration are meaningful; when true
// DateRange is authoritative and FinalDate carries the range start as a
// default anchor.
type Context struct {
	FinalDate         time.Time
	FinalDateDuration time.Duration
	DateRange         *DateRange
	IsRangeQuery      bool
	Confidence        float64
	ResolvedTokens    []Token
	Conflicts         []string
}

// HasDate reports whether any temporal token constrained the result. A
// zero FinalDate with no range is the "no date constraint" sentinel.
func (c Context) HasDate() bool {
	return !c.FinalDate.IsZero() || c.DateRange != nil
}
