package temporal

import (
	"testing"
	"time"

	"nl-command-parser/internal/langpack"
	"nl-command-parser/pkg/textfold"
)

var saoPaulo = time.FixedZone("-03", -3*60*60)

// Thursday.
var reference = time.Date(2025, time.September, 11, 10, 0, 0, 0, saoPaulo)

func resolve(t *testing.T, locale, text string) Context {
	t.Helper()
	tokens := NewTokenizer(langpack.New(locale)).Tokenize(textfold.Fold(text))
	return Resolve(tokens, reference)
}

func TestResolveInstants(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		text   string
		want   time.Time
	}{
		{
			name:   "rightmost time wins",
			locale: "en",
			text:   "dinner with parents tonight 8pm at 7pm",
			want:   time.Date(2025, time.September, 11, 19, 0, 0, 0, saoPaulo),
		},
		{
			name:   "next weekday never past",
			locale: "en",
			text:   "next tue",
			want:   time.Date(2025, time.September, 16, 0, 0, 0, 0, saoPaulo),
		},
		{
			name:   "bare weekday is upcoming occurrence",
			locale: "en",
			text:   "fri",
			want:   time.Date(2025, time.September, 12, 0, 0, 0, 0, saoPaulo),
		},
		{
			name:   "weekday matching reference rolls a full week",
			locale: "en",
			text:   "thursday",
			want:   time.Date(2025, time.September, 18, 0, 0, 0, 0, saoPaulo),
		},
		{
			name:   "next week with time is an instant",
			locale: "en",
			text:   "next week at 11:00",
			want:   time.Date(2025, time.September, 18, 11, 0, 0, 0, saoPaulo),
		},
		{
			name:   "tomorrow with time",
			locale: "en",
			text:   "call mom tomorrow at 3pm",
			want:   time.Date(2025, time.September, 12, 15, 0, 0, 0, saoPaulo),
		},
		{
			name:   "tomorrow keeps reference clock",
			locale: "en",
			text:   "call mom tomorrow",
			want:   time.Date(2025, time.September, 12, 10, 0, 0, 0, saoPaulo),
		},
		{
			name:   "ordinal in current month keeps reference clock",
			locale: "en",
			text:   "pay rent on the 24th",
			want:   time.Date(2025, time.September, 24, 10, 0, 0, 0, saoPaulo),
		},
		{
			name:   "elapsed ordinal rolls to next month",
			locale: "pt-BR",
			text:   "pagar aluguel dia 5",
			want:   time.Date(2025, time.October, 5, 10, 0, 0, 0, saoPaulo),
		},
		{
			name:   "named date",
			locale: "en",
			text:   "dentist september 24",
			want:   time.Date(2025, time.September, 24, 0, 0, 0, 0, saoPaulo),
		},
		{
			name:   "elapsed named date rolls to next year",
			locale: "en",
			text:   "dentist march 3",
			want:   time.Date(2026, time.March, 3, 0, 0, 0, 0, saoPaulo),
		},
		{
			name:   "date overrides relative day",
			locale: "en",
			text:   "tomorrow september 24",
			want:   time.Date(2025, time.September, 24, 0, 0, 0, 0, saoPaulo),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := resolve(t, tt.locale, tt.text)
			if ctx.IsRangeQuery {
				t.Fatalf("unexpected range query: %+v", ctx.DateRange)
			}
			if !ctx.FinalDate.Equal(tt.want) {
				t.Errorf("FinalDate = %v, want %v", ctx.FinalDate, tt.want)
			}
		})
	}
}

func TestResolveCrossLanguage(t *testing.T) {
	utterances := map[string]string{
		"en":    "next Friday 11:00",
		"pt-BR": "próxima semana sex 11:00",
		"es":    "la próxima semana vie 11:00",
	}
	want := time.Date(2025, time.September, 19, 11, 0, 0, 0, saoPaulo)
	for locale, text := range utterances {
		t.Run(locale, func(t *testing.T) {
			ctx := resolve(t, locale, text)
			if !ctx.FinalDate.Equal(want) {
				t.Errorf("%q resolved to %v, want %v", text, ctx.FinalDate, want)
			}
		})
	}
}

func TestResolveRanges(t *testing.T) {
	tests := []struct {
		name      string
		locale    string
		text      string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "weekend of current week",
			locale:    "en",
			text:      "push back do laundry to weekend",
			wantStart: time.Date(2025, time.September, 13, 0, 0, 0, 0, saoPaulo),
			wantEnd:   time.Date(2025, time.September, 14, 23, 59, 59, 0, saoPaulo),
		},
		{
			name:      "next weekend",
			locale:    "en",
			text:      "trip next weekend",
			wantStart: time.Date(2025, time.September, 20, 0, 0, 0, 0, saoPaulo),
			wantEnd:   time.Date(2025, time.September, 21, 23, 59, 59, 0, saoPaulo),
		},
		{
			name:      "this week",
			locale:    "en",
			text:      "goals this week",
			wantStart: time.Date(2025, time.September, 8, 0, 0, 0, 0, saoPaulo),
			wantEnd:   time.Date(2025, time.September, 14, 23, 59, 59, 0, saoPaulo),
		},
		{
			name:      "next week without time is a range",
			locale:    "en",
			text:      "plan next week",
			wantStart: time.Date(2025, time.September, 15, 0, 0, 0, 0, saoPaulo),
			wantEnd:   time.Date(2025, time.September, 21, 23, 59, 59, 0, saoPaulo),
		},
		{
			name:      "from to anchored to tomorrow",
			locale:    "en",
			text:      "meeting from 2pm to 4pm tomorrow",
			wantStart: time.Date(2025, time.September, 12, 14, 0, 0, 0, saoPaulo),
			wantEnd:   time.Date(2025, time.September, 12, 16, 0, 0, 0, saoPaulo),
		},
		{
			name:      "weekday morning",
			locale:    "en",
			text:      "review friday morning",
			wantStart: time.Date(2025, time.September, 12, 6, 0, 0, 0, saoPaulo),
			wantEnd:   time.Date(2025, time.September, 12, 11, 59, 59, 0, saoPaulo),
		},
		{
			name:      "tonight without time",
			locale:    "en",
			text:      "dinner tonight",
			wantStart: time.Date(2025, time.September, 11, 18, 0, 0, 0, saoPaulo),
			wantEnd:   time.Date(2025, time.September, 11, 22, 59, 59, 0, saoPaulo),
		},
		{
			name:      "portuguese weekend",
			locale:    "pt-BR",
			text:      "viajar no fim de semana",
			wantStart: time.Date(2025, time.September, 13, 0, 0, 0, 0, saoPaulo),
			wantEnd:   time.Date(2025, time.September, 14, 23, 59, 59, 0, saoPaulo),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := resolve(t, tt.locale, tt.text)
			if !ctx.IsRangeQuery || ctx.DateRange == nil {
				t.Fatalf("expected range query, got %+v", ctx)
			}
			if !ctx.DateRange.Start.Equal(tt.wantStart) {
				t.Errorf("range start = %v, want %v", ctx.DateRange.Start, tt.wantStart)
			}
			if !ctx.DateRange.End.Equal(tt.wantEnd) {
				t.Errorf("range end = %v, want %v", ctx.DateRange.End, tt.wantEnd)
			}
			if !ctx.FinalDate.Equal(tt.wantStart) {
				t.Errorf("FinalDate = %v, want range start %v", ctx.FinalDate, tt.wantStart)
			}
		})
	}
}

func TestResolveConflicts(t *testing.T) {
	ctx := resolve(t, "en", "dinner with parents tonight 8pm at 7pm")
	if len(ctx.Conflicts) != 1 {
		t.Fatalf("conflicts = %v, want exactly one", ctx.Conflicts)
	}
	if ctx.Confidence >= 1.0 {
		t.Errorf("confidence = %v, want < 1.0", ctx.Confidence)
	}

	clean := resolve(t, "en", "call mom tomorrow at 3pm")
	if len(clean.Conflicts) != 0 || clean.Confidence != 1.0 {
		t.Errorf("clean parse: conflicts %v confidence %v", clean.Conflicts, clean.Confidence)
	}
	if clean.Confidence <= ctx.Confidence {
		t.Errorf("more conflicts must not raise confidence: %v vs %v", ctx.Confidence, clean.Confidence)
	}
}

func TestResolveSentinel(t *testing.T) {
	ctx := resolve(t, "en", "quarterly numbers")
	if ctx.HasDate() {
		t.Fatalf("expected no date constraint, got %+v", ctx)
	}
	if ctx.IsRangeQuery || !ctx.FinalDate.IsZero() {
		t.Errorf("sentinel context = %+v", ctx)
	}
}

func TestResolveDeterminism(t *testing.T) {
	first := resolve(t, "en", "move lunch to 1pm and dinner tonight 8pm")
	for i := 0; i < 5; i++ {
		again := resolve(t, "en", "move lunch to 1pm and dinner tonight 8pm")
		if !again.FinalDate.Equal(first.FinalDate) || again.Confidence != first.Confidence {
			t.Fatalf("iteration %d diverged: %+v vs %+v", i, again, first)
		}
	}
}
