package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"nl-command-parser/internal/intent"
	"nl-command-parser/internal/langpack"
	"nl-command-parser/internal/middleware"
	parseHTTP "nl-command-parser/internal/parse/delivery/http"
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

type respEnvelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type parseData struct {
	Results []struct {
		ID           string `json:"id"`
		OriginalText string `json:"original_text"`
		Language     string `json:"language"`
		Title        string `json:"title"`
		Intent       string `json:"intent"`
		Temporal     struct {
			FinalDate    *string `json:"final_date"`
			IsRangeQuery bool    `json:"is_range_query"`
		} `json:"temporal"`
		IsAmbiguous bool `json:"is_ambiguous"`
	} `json:"results"`
}

func newRouter(cacheSize int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}
	uc := usecase.New(l, langpack.All(), intent.DefaultConfig())
	h := parseHTTP.New(l, uc, cacheSize, "UTC")
	mw := middleware.New(l, 0)

	r := gin.New()
	parseHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func post(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, respEnvelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestProcessEndpoint(t *testing.T) {
	r := newRouter(0)

	w, env := post(t, r, `{
		"text": "schedule sync next friday at 11:00",
		"reference_date": "2025-09-11T10:00:00-03:00"
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var data parseData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(data.Results))
	}
	res := data.Results[0]
	if res.Intent != "CREATE_EVENT" {
		t.Errorf("intent = %q, want CREATE_EVENT", res.Intent)
	}
	if res.Title != "sync" {
		t.Errorf("title = %q, want sync", res.Title)
	}
	if res.Temporal.FinalDate == nil || *res.Temporal.FinalDate != "2025-09-19T11:00:00-03:00" {
		t.Errorf("final_date = %v, want 2025-09-19T11:00:00-03:00", res.Temporal.FinalDate)
	}
	if res.Language != "en" {
		t.Errorf("language = %q, want en", res.Language)
	}
}

func TestProcessEndpointValidation(t *testing.T) {
	r := newRouter(0)

	tests := []struct {
		name string
		body string
	}{
		{"missing text", `{}`},
		{"blank text handled by usecase", `{"text": "   "}`},
		{"bad reference date", `{"text": "call mom", "reference_date": "friday"}`},
		{"bad timezone", `{"text": "call mom", "timezone": "Mars/Olympus"}`},
		{"malformed json", `{"text":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := post(t, r, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("code = %d, want 400", w.Code)
			}
		})
	}
}

func TestProcessEndpointNoDate(t *testing.T) {
	r := newRouter(0)

	w, env := post(t, r, `{"text": "show my tasks", "reference_date": "2025-09-11T10:00:00-03:00"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", w.Code)
	}
	var data parseData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data.Results[0].Temporal.FinalDate != nil {
		t.Errorf("final_date = %v, want absent", *data.Results[0].Temporal.FinalDate)
	}
}

func TestProcessEndpointCache(t *testing.T) {
	r := newRouter(16)
	const body = `{"text": "pay rent tomorrow", "reference_date": "2025-09-11T10:00:00-03:00"}`

	_, first := post(t, r, body)
	_, second := post(t, r, body)

	var a, b parseData
	if err := json.Unmarshal(first.Data, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(second.Data, &b); err != nil {
		t.Fatal(err)
	}
	// A cache hit returns the stored response, IDs included.
	if a.Results[0].ID != b.Results[0].ID {
		t.Errorf("cache miss: IDs differ (%s vs %s)", a.Results[0].ID, b.Results[0].ID)
	}
}
