package temporal

import (
	"fmt"
	"time"

	"nl-command-parser/internal/langpack"
)

// Confidence drops by a fixed step per recorded conflict, floored so a
// heavily conflicted clause still surfaces a usable result.
const (
	conflictPenalty = 0.15
	confidenceFloor = 0.25

	// Instants carrying an explicit clock time default to a one hour slot.
	defaultEventDuration = time.Hour
)

// Resolve interprets a token sequence against a reference instant. Tokens
// must be ordered by span start (as emitted by Tokenize); later tokens win
// conflicts against earlier ones of the same kind. All calendar math runs in
// the reference instant's location.
func Resolve(tokens []Token, ref time.Time) Context {
	ctx := Context{Confidence: 1.0, ResolvedTokens: tokens}

	var timeTok, rangeTok, weekdayTok, relDayTok *Token
	var ordinalTok, dateTok, weekTok, weekendTok, partTok *Token

	keep := func(slot **Token, tok *Token, describe func(*Token) string) {
		if *slot != nil {
			ctx.Conflicts = append(ctx.Conflicts, fmt.Sprintf(
				"%s discarded, rightmost %s wins", describe(*slot), describe(tok)))
		}
		*slot = tok
	}

	for i := range tokens {
		tok := &tokens[i]
		switch tok.Kind {
		case KindAbsoluteTime:
			keep(&timeTok, tok, describeTime)
		case KindTimeRange:
			keep(&rangeTok, tok, describeRange)
		case KindWeekday:
			keep(&weekdayTok, tok, describeWeekday)
		case KindRelativeDay:
			keep(&relDayTok, tok, describeDay)
		case KindOrdinalDay:
			keep(&ordinalTok, tok, describeDay)
		case KindAbsoluteDate:
			keep(&dateTok, tok, describeDate)
		case KindRelativeWeek:
			weekTok = tok
		case KindWeekend:
			weekendTok = tok
		case KindPartOfDay:
			partTok = tok
		}
	}

	anchor, anchorKind, hasAnchor := resolveAnchor(&ctx, ref, dateTok, ordinalTok, weekdayTok, relDayTok, weekTok, timeTok)

	part := langpack.PartNone
	if partTok != nil {
		part = partTok.Part
	} else if relDayTok != nil {
		part = relDayTok.Part
	}

	switch {
	case rangeTok != nil:
		if timeTok != nil {
			ctx.Conflicts = append(ctx.Conflicts, fmt.Sprintf(
				"%s discarded, %s wins", describeTime(timeTok), describeRange(rangeTok)))
		}
		day := anchor
		if !hasAnchor {
			day = startOfDay(ref)
		}
		start := at(day, rangeTok.Hour, rangeTok.Minute, 0)
		end := at(day, rangeTok.EndHour, rangeTok.EndMinute, 0)
		if end.Before(start) {
			end = end.AddDate(0, 0, 1)
		}
		setRange(&ctx, start, end)

	case weekendTok != nil && !hasAnchor:
		ws := weekStart(ref)
		if weekendTok.Scope == ScopeNextWeek {
			ws = ws.AddDate(0, 0, 7)
		}
		setRange(&ctx, ws.AddDate(0, 0, 5), endOfDay(ws.AddDate(0, 0, 6)))

	case weekTok != nil && !hasAnchor && timeTok == nil:
		ws := weekStart(ref)
		if weekTok.Scope == ScopeNextWeek {
			ws = ws.AddDate(0, 0, 7)
		}
		setRange(&ctx, ws, endOfDay(ws.AddDate(0, 0, 6)))

	case timeTok != nil:
		day := anchor
		if !hasAnchor {
			day = startOfDay(ref)
		}
		ctx.FinalDate = at(day, timeTok.Hour, timeTok.Minute, 0)
		ctx.FinalDateDuration = defaultEventDuration

	case part != langpack.PartNone:
		day := anchor
		if !hasAnchor {
			day = startOfDay(ref)
		}
		startHour, endHour := partBounds(part)
		setRange(&ctx, at(day, startHour, 0, 0), at(day, endHour, 59, 59))

	case hasAnchor:
		// Relative-day and ordinal anchors keep the reference clock;
		// weekday and explicit-date anchors land at midnight.
		if anchorKind == KindRelativeDay || anchorKind == KindOrdinalDay {
			ctx.FinalDate = at(anchor, ref.Hour(), ref.Minute(), ref.Second())
		} else {
			ctx.FinalDate = anchor
		}
	}

	if n := len(ctx.Conflicts); n > 0 {
		ctx.Confidence = 1.0 - conflictPenalty*float64(n)
		if ctx.Confidence < confidenceFloor {
			ctx.Confidence = confidenceFloor
		}
	}
	return ctx
}

// resolveAnchor picks the day anchor with fixed precedence: explicit date,
// then ordinal day, then weekday, then relative day, then a week reference
// combined with a clock time. Overridden lower-precedence anchors are
// recorded as conflicts.
func resolveAnchor(ctx *Context, ref time.Time, dateTok, ordinalTok, weekdayTok, relDayTok, weekTok, timeTok *Token) (time.Time, Kind, bool) {
	override := func(tok *Token, describe func(*Token) string, winner string) {
		if tok != nil {
			ctx.Conflicts = append(ctx.Conflicts, fmt.Sprintf(
				"%s overridden by %s", describe(tok), winner))
		}
	}

	switch {
	case dateTok != nil:
		override(ordinalTok, describeDay, describeDate(dateTok))
		override(weekdayTok, describeWeekday, describeDate(dateTok))
		override(relDayTok, describeDay, describeDate(dateTok))
		year := dateTok.Year
		if year == 0 {
			year = ref.Year()
		}
		day := time.Date(year, dateTok.Month, dateTok.Day, 0, 0, 0, 0, ref.Location())
		if dateTok.Year == 0 && day.Before(startOfDay(ref)) {
			day = day.AddDate(1, 0, 0)
		}
		return day, KindAbsoluteDate, true

	case ordinalTok != nil:
		override(weekdayTok, describeWeekday, describeDay(ordinalTok))
		override(relDayTok, describeDay, describeDay(ordinalTok))
		day := time.Date(ref.Year(), ref.Month(), ordinalTok.Day, 0, 0, 0, 0, ref.Location())
		if ordinalTok.Day < ref.Day() {
			day = day.AddDate(0, 1, 0)
		}
		return day, KindOrdinalDay, true

	case weekdayTok != nil:
		override(relDayTok, describeDay, describeWeekday(weekdayTok))
		return resolveWeekday(ref, weekdayTok, weekTok), KindWeekday, true

	case relDayTok != nil:
		return startOfDay(ref).AddDate(0, 0, relDayTok.DayOffset), KindRelativeDay, true

	case weekTok != nil && timeTok != nil:
		// "next week at 11:00" reads as an instant seven days out, not
		// a week-long range.
		day := startOfDay(ref)
		if weekTok.Scope == ScopeNextWeek {
			day = day.AddDate(0, 0, 7)
		}
		return day, KindRelativeWeek, true
	}
	return time.Time{}, 0, false
}

// resolveWeekday finds the concrete day for a weekday token. Without a
// modifier it is the next occurrence strictly after the reference day; with
// an explicit "next" (or a next-week scope in the clause) it is the matching
// day inside the following calendar week; with a this-week scope it is the
// matching day inside the current week.
func resolveWeekday(ref time.Time, weekdayTok, weekTok *Token) time.Time {
	switch {
	case weekdayTok.Modifier == ModifierNext,
		weekTok != nil && weekTok.Scope == ScopeNextWeek:
		return weekdayWithin(weekStart(ref).AddDate(0, 0, 7), weekdayTok.Weekday)
	case weekTok != nil:
		return weekdayWithin(weekStart(ref), weekdayTok.Weekday)
	default:
		days := (weekdayTok.Weekday - weekdayNum(ref) + 7) % 7
		if days == 0 {
			days = 7
		}
		return startOfDay(ref).AddDate(0, 0, days)
	}
}

// weekdayWithin returns the day with the given weekday number inside the
// seven days starting at ws.
func weekdayWithin(ws time.Time, weekday int) time.Time {
	for i := 0; i < 7; i++ {
		day := ws.AddDate(0, 0, i)
		if weekdayNum(day) == weekday {
			return day
		}
	}
	return ws
}

// weekdayNum maps time.Weekday to the 1..7 Sunday=1 convention.
func weekdayNum(t time.Time) int {
	return int(t.Weekday()) + 1
}

// weekStart returns midnight of the Monday beginning t's week.
func weekStart(t time.Time) time.Time {
	back := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -back)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func at(day time.Time, hour, minute, second int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, day.Location())
}

func partBounds(part langpack.PartOfDay) (startHour, endHour int) {
	switch part {
	case langpack.PartMorning:
		return 6, 11
	case langpack.PartAfternoon:
		return 12, 17
	default:
		return 18, 22
	}
}

func setRange(ctx *Context, start, end time.Time) {
	ctx.DateRange = &DateRange{Start: start, End: end}
	ctx.IsRangeQuery = true
	ctx.FinalDate = start
	ctx.FinalDateDuration = end.Sub(start)
}

func describeTime(tok *Token) string {
	return fmt.Sprintf("time %02d:%02d", tok.Hour, tok.Minute)
}

func describeRange(tok *Token) string {
	return fmt.Sprintf("range %02d:%02d-%02d:%02d", tok.Hour, tok.Minute, tok.EndHour, tok.EndMinute)
}

func describeWeekday(tok *Token) string {
	return fmt.Sprintf("weekday %d", tok.Weekday)
}

func describeDay(tok *Token) string {
	if tok.Kind == KindOrdinalDay {
		return fmt.Sprintf("day of month %d", tok.Day)
	}
	return fmt.Sprintf("relative day %+d", tok.DayOffset)
}

func describeDate(tok *Token) string {
	return fmt.Sprintf("date %s %d", tok.Month, tok.Day)
}
