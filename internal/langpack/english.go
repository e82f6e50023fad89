package langpack

import "time"

var englishCommandPrefixes = []string{
	"please create an event", "create an event", "create event",
	"create a task", "create task", "create a reminder",
	"add a task", "add task", "add an event", "add event",
	"schedule a meeting", "schedule an event", "schedule",
	"set up a meeting", "set up",
	"remind me to", "remind me",
	"new task", "new event",
	"make an appointment", "book",
	"reschedule", "move", "push back", "postpone",
	"update", "change",
	"cancel", "delete", "remove",
	"mark as done", "mark done", "complete", "finish",
	"show me", "show", "view", "list",
	"plan", "organize",
}

// NewEnglish builds the en pack. English is also the detection default and
// every other pack inherits its sun..sat weekday aliases.
func NewEnglish() English {
	lex := &Lexicon{
		Weekdays: withEnglishAliases(map[string]int{
			"sunday":    Sunday,
			"monday":    Monday,
			"tuesday":   Tuesday,
			"tues":      Tuesday,
			"wednesday": Wednesday,
			"thursday":  Thursday,
			"thurs":     Thursday,
			"friday":    Friday,
			"saturday":  Saturday,
		}),

		ThisWords:  []string{"this"},
		NextWords:  []string{"next"},
		Connectors: []string{"and", "then"},

		Months: map[string]time.Month{
			"january": time.January, "jan": time.January,
			"february": time.February, "feb": time.February,
			"march": time.March, "mar": time.March,
			"april": time.April, "apr": time.April,
			"may":  time.May,
			"june": time.June, "jun": time.June,
			"july": time.July, "jul": time.July,
			"august": time.August, "aug": time.August,
			"september": time.September, "sept": time.September, "sep": time.September,
			"october": time.October, "oct": time.October,
			"november": time.November, "nov": time.November,
			"december": time.December, "dec": time.December,
		},
		MonthFirstDates: true,

		RelativeDays: map[string]RelativeDay{
			"today":              {DayOffset: 0},
			"tonight":            {DayOffset: 0, Part: PartEvening},
			"tomorrow":           {DayOffset: 1},
			"day after tomorrow": {DayOffset: 2},
		},
		PartsOfDay: map[string]PartOfDay{
			"morning":   PartMorning,
			"afternoon": PartAfternoon,
			"evening":   PartEvening,
			"night":     PartEvening,
		},

		WeekWords:    []string{"week"},
		WeekendWords: []string{"weekend"},
		AtWords:      []string{"at"},
		FromWords:    []string{"from"},
		ToWords:      []string{"to", "until", "till", "-"},

		OrdinalDayPattern: `\b(?:on\s+the\s+)?(\d{1,2})(?:st|nd|rd|th)\b`,
	}
	return English{newBase("en", lex, englishCommandPrefixes)}
}
