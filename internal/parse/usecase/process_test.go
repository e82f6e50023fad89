package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"nl-command-parser/internal/intent"
	"nl-command-parser/internal/langpack"
	"nl-command-parser/internal/model"
	"nl-command-parser/internal/parse"
	"nl-command-parser/internal/parse/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var saoPaulo = time.FixedZone("-03", -3*60*60)

// Thursday.
var reference = time.Date(2025, time.September, 11, 10, 0, 0, 0, saoPaulo)

func newUseCase() parse.UseCase {
	return usecase.New(&mockLogger{}, langpack.All(), intent.DefaultConfig())
}

func process(t *testing.T, uc parse.UseCase, text string) parse.ProcessOutput {
	t.Helper()
	out, err := uc.Process(context.Background(), model.Scope{UserID: "u-1"}, parse.ProcessInput{
		Text:          text,
		ReferenceDate: reference,
	})
	if err != nil {
		t.Fatalf("Process(%q): %v", text, err)
	}
	return out
}

func TestProcessEmptyInput(t *testing.T) {
	uc := newUseCase()

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := uc.Process(context.Background(), model.Scope{}, parse.ProcessInput{Text: text})
		if !errors.Is(err, parse.ErrEmptyInput) {
			t.Errorf("Process(%q) err = %v, want ErrEmptyInput", text, err)
		}
	}
}

func TestProcessSingleClause(t *testing.T) {
	uc := newUseCase()

	out := process(t, uc, "schedule sync next friday at 11:00 at the office #work")
	if len(out.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(out.Results))
	}
	r := out.Results[0]

	if r.Language != "en" {
		t.Errorf("Language = %q, want en", r.Language)
	}
	if r.Title != "sync" {
		t.Errorf("Title = %q, want %q", r.Title, "sync")
	}
	want := time.Date(2025, time.September, 19, 11, 0, 0, 0, saoPaulo)
	if !r.Temporal.FinalDate.Equal(want) {
		t.Errorf("FinalDate = %v, want %v", r.Temporal.FinalDate, want)
	}
	if r.Intent != intent.CreateEvent {
		t.Errorf("Intent = %s, want %s", r.Intent, intent.CreateEvent)
	}
	if len(r.Metadata) != 2 {
		t.Fatalf("got %d metadata tokens, want 2 (location + tag): %+v", len(r.Metadata), r.Metadata)
	}
	if r.ID == uuid.Nil {
		t.Error("ID not assigned")
	}
	if r.OriginalText != "schedule sync next friday at 11:00 at the office #work" {
		t.Errorf("OriginalText = %q", r.OriginalText)
	}
}

func TestProcessMultipleClauses(t *testing.T) {
	uc := newUseCase()

	out := process(t, uc, "pay rent tomorrow and cancel dinner friday")
	if len(out.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(out.Results))
	}

	first, second := out.Results[0], out.Results[1]
	if first.OriginalText != "pay rent tomorrow" {
		t.Errorf("first clause = %q", first.OriginalText)
	}
	wantFirst := time.Date(2025, time.September, 12, 10, 0, 0, 0, saoPaulo)
	if !first.Temporal.FinalDate.Equal(wantFirst) {
		t.Errorf("first FinalDate = %v, want %v", first.Temporal.FinalDate, wantFirst)
	}

	if second.OriginalText != "cancel dinner friday" {
		t.Errorf("second clause = %q", second.OriginalText)
	}
	if second.Intent != intent.CancelEvent {
		t.Errorf("second Intent = %s, want %s", second.Intent, intent.CancelEvent)
	}
	if second.Title != "dinner" {
		t.Errorf("second Title = %q, want %q", second.Title, "dinner")
	}
}

func TestProcessCrossLanguage(t *testing.T) {
	uc := newUseCase()

	tests := []struct {
		language string
		text     string
	}{
		{"en", "schedule sync next friday at 11:00"},
		{"pt-BR", "agendar sync próxima semana sex 11:00"},
		{"es", "recuérdame sync la próxima semana vie 11:00"},
	}

	want := time.Date(2025, time.September, 19, 11, 0, 0, 0, saoPaulo)
	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			out := process(t, uc, tt.text)
			if len(out.Results) != 1 {
				t.Fatalf("got %d results, want 1", len(out.Results))
			}
			r := out.Results[0]
			if r.Language != tt.language {
				t.Errorf("Language = %q, want %q", r.Language, tt.language)
			}
			if !r.Temporal.FinalDate.Equal(want) {
				t.Errorf("FinalDate = %v, want %v", r.Temporal.FinalDate, want)
			}
		})
	}
}

func TestProcessDegenerateText(t *testing.T) {
	uc := newUseCase()

	out := process(t, uc, "qwerty asdf zxcv")
	if len(out.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(out.Results))
	}
	r := out.Results[0]
	if r.Temporal.HasDate() {
		t.Errorf("FinalDate = %v, want sentinel", r.Temporal.FinalDate)
	}
	if r.Intent != intent.View {
		t.Errorf("Intent = %s, want fallback %s", r.Intent, intent.View)
	}
}

func TestProcessDefaultReferenceDate(t *testing.T) {
	uc := newUseCase()

	before := time.Now()
	out, err := uc.Process(context.Background(), model.Scope{}, parse.ProcessInput{Text: "call mom tomorrow"})
	if err != nil {
		t.Fatal(err)
	}
	ref := out.Results[0].ReferenceDate
	if ref.Before(before) || ref.After(time.Now()) {
		t.Errorf("default ReferenceDate = %v, want current time", ref)
	}
}

func TestProcessDeterminism(t *testing.T) {
	uc := newUseCase()
	const text = "marcar consulta sexta às 14h #saude e pagar aluguel amanhã"

	a := process(t, uc, text)
	b := process(t, uc, text)
	if len(a.Results) != len(b.Results) {
		t.Fatalf("result counts differ: %d vs %d", len(a.Results), len(b.Results))
	}
	for i := range a.Results {
		ra, rb := a.Results[i], b.Results[i]
		// IDs are freshly generated; everything else must be identical.
		if ra.Title != rb.Title || ra.Intent != rb.Intent ||
			!ra.Temporal.FinalDate.Equal(rb.Temporal.FinalDate) ||
			ra.Temporal.Confidence != rb.Temporal.Confidence ||
			len(ra.Metadata) != len(rb.Metadata) {
			t.Errorf("result %d differs between runs:\n%+v\n%+v", i, ra, rb)
		}
	}
}

func TestProcessConcurrentUse(t *testing.T) {
	uc := newUseCase()

	want := time.Date(2025, time.September, 19, 11, 0, 0, 0, saoPaulo)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			out, err := uc.Process(context.Background(), model.Scope{}, parse.ProcessInput{
				Text:          "schedule sync next friday at 11:00",
				ReferenceDate: reference,
			})
			if err != nil {
				t.Errorf("Process: %v", err)
				return
			}
			if !out.Results[0].Temporal.FinalDate.Equal(want) {
				t.Errorf("FinalDate = %v, want %v", out.Results[0].Temporal.FinalDate, want)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
