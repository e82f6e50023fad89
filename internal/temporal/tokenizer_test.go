package temporal

import (
	"testing"

	"nl-command-parser/internal/langpack"
	"nl-command-parser/pkg/textfold"
)

func tokenize(t *testing.T, locale, text string) []Token {
	t.Helper()
	return NewTokenizer(langpack.New(locale)).Tokenize(textfold.Fold(text))
}

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		text   string
		want   []Kind
	}{
		{
			name:   "relative day plus time",
			locale: "en",
			text:   "call mom tomorrow at 3pm",
			want:   []Kind{KindRelativeDay, KindAbsoluteTime},
		},
		{
			name:   "inline weekday time",
			locale: "en",
			text:   "next friday 11:00",
			want:   []Kind{KindWeekday, KindAbsoluteTime},
		},
		{
			name:   "from to range",
			locale: "en",
			text:   "meeting from 2pm to 4pm tomorrow",
			want:   []Kind{KindTimeRange, KindRelativeDay},
		},
		{
			name:   "weekday with daypart",
			locale: "en",
			text:   "review friday morning",
			want:   []Kind{KindWeekday, KindPartOfDay},
		},
		{
			name:   "week reference beats bare week",
			locale: "en",
			text:   "push it to next week",
			want:   []Kind{KindRelativeWeek},
		},
		{
			name:   "weekend",
			locale: "en",
			text:   "laundry this weekend",
			want:   []Kind{KindWeekend},
		},
		{
			name:   "named date",
			locale: "en",
			text:   "dentist september 24",
			want:   []Kind{KindAbsoluteDate},
		},
		{
			name:   "ordinal day",
			locale: "en",
			text:   "pay rent on the 24th",
			want:   []Kind{KindOrdinalDay},
		},
		{
			name:   "bare number is not a time",
			locale: "en",
			text:   "buy 2 tickets",
			want:   nil,
		},
		{
			name:   "duplicate times stay separate",
			locale: "en",
			text:   "dinner with parents tonight 8pm at 7pm",
			want:   []Kind{KindRelativeDay, KindAbsoluteTime, KindAbsoluteTime},
		},
		{
			name:   "portuguese week plus inline weekday",
			locale: "pt-BR",
			text:   "próxima semana sex 11:00",
			want:   []Kind{KindRelativeWeek, KindWeekday, KindAbsoluteTime},
		},
		{
			name:   "portuguese day first date",
			locale: "pt-BR",
			text:   "consulta 24 de setembro",
			want:   []Kind{KindAbsoluteDate},
		},
		{
			name:   "spanish tomorrow is not morning",
			locale: "es",
			text:   "llamar mañana",
			want:   []Kind{KindRelativeDay},
		},
		{
			name:   "spanish morning phrase is a daypart",
			locale: "es",
			text:   "el viernes por la mañana",
			want:   []Kind{KindWeekday, KindPartOfDay},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(t, tt.locale, tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %v", len(got), kinds(got), tt.want)
			}
			for i := range got {
				if got[i].Kind != tt.want[i] {
					t.Errorf("token %d kind = %v, want %v", i, got[i].Kind, tt.want[i])
				}
			}
		})
	}
}

func TestTokenizePayloads(t *testing.T) {
	t.Run("inline weekday time", func(t *testing.T) {
		tokens := tokenize(t, "en", "next friday 11:00")
		if len(tokens) != 2 {
			t.Fatalf("got %d tokens", len(tokens))
		}
		wd, clock := tokens[0], tokens[1]
		if wd.Weekday != langpack.Friday || wd.Modifier != ModifierNext {
			t.Errorf("weekday = %d modifier %d", wd.Weekday, wd.Modifier)
		}
		if clock.Hour != 11 || clock.Minute != 0 {
			t.Errorf("time = %02d:%02d, want 11:00", clock.Hour, clock.Minute)
		}
	})

	t.Run("meridiem normalization", func(t *testing.T) {
		tokens := tokenize(t, "en", "at 12am or rather at 8pm")
		if len(tokens) != 2 {
			t.Fatalf("got %d tokens %v", len(tokens), kinds(tokens))
		}
		if tokens[0].Hour != 0 {
			t.Errorf("12am hour = %d, want 0", tokens[0].Hour)
		}
		if tokens[1].Hour != 20 {
			t.Errorf("8pm hour = %d, want 20", tokens[1].Hour)
		}
	})

	t.Run("range inherits meridiem", func(t *testing.T) {
		tokens := tokenize(t, "en", "from 2 to 4pm")
		if len(tokens) != 1 || tokens[0].Kind != KindTimeRange {
			t.Fatalf("tokens = %v", kinds(tokens))
		}
		r := tokens[0]
		if r.Hour != 14 || r.EndHour != 16 {
			t.Errorf("range = %d..%d, want 14..16", r.Hour, r.EndHour)
		}
	})

	t.Run("numeric date order follows locale", func(t *testing.T) {
		en := tokenize(t, "en", "due 9/15")
		pt := tokenize(t, "pt-BR", "entrega 15/9")
		if len(en) != 1 || len(pt) != 1 {
			t.Fatalf("en %v pt %v", kinds(en), kinds(pt))
		}
		if en[0].Month != 9 || en[0].Day != 15 {
			t.Errorf("en = %v %d", en[0].Month, en[0].Day)
		}
		if pt[0].Month != 9 || pt[0].Day != 15 {
			t.Errorf("pt = %v %d", pt[0].Month, pt[0].Day)
		}
	})

	t.Run("portuguese hour suffix", func(t *testing.T) {
		tokens := tokenize(t, "pt-BR", "reuniao as 14h")
		if len(tokens) != 1 || tokens[0].Kind != KindAbsoluteTime {
			t.Fatalf("tokens = %v", kinds(tokens))
		}
		if tokens[0].Hour != 14 {
			t.Errorf("hour = %d, want 14", tokens[0].Hour)
		}
	})

	t.Run("spans address folded text", func(t *testing.T) {
		text := "call mom tomorrow at 3pm"
		folded := textfold.Fold(text)
		for _, tok := range tokenize(t, "en", text) {
			runes := []rune(folded)
			if tok.Span.Start < 0 || tok.Span.End > len(runes) || tok.Span.Start >= tok.Span.End {
				t.Errorf("bad span %+v for %v", tok.Span, tok.Kind)
			}
		}
	})
}
