package http

import (
	"time"

	"nl-command-parser/internal/intent"
	"nl-command-parser/internal/metadata"
	"nl-command-parser/internal/parse"
	"nl-command-parser/internal/temporal"
)

// --- Request DTOs ---

type processReq struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
	// ReferenceDate is RFC 3339; empty means "now".
	ReferenceDate string `json:"reference_date" binding:"omitempty"`
	// Timezone is an IANA zone name applied to the reference date.
	Timezone string `json:"timezone" binding:"omitempty"`
}

func (r processReq) toInput(defaultTimezone string) (parse.ProcessInput, error) {
	input := parse.ProcessInput{Text: r.Text}

	tzName := r.Timezone
	if tzName == "" && r.ReferenceDate == "" {
		// "now" is anchored in the service default zone unless the caller
		// picked one.
		tzName = defaultTimezone
	}

	var loc *time.Location
	if tzName != "" {
		var err error
		loc, err = time.LoadLocation(tzName)
		if err != nil {
			return input, errInvalidTimezone
		}
	}

	if r.ReferenceDate != "" {
		ref, err := time.Parse(time.RFC3339, r.ReferenceDate)
		if err != nil {
			return input, errInvalidReferenceDate
		}
		// Without an explicit timezone the date keeps its own offset.
		if loc != nil {
			ref = ref.In(loc)
		}
		input.ReferenceDate = ref
	} else if loc != nil {
		input.ReferenceDate = time.Now().In(loc)
	}

	return input, nil
}

// --- Response DTOs ---

type dateRangeResp struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type temporalResp struct {
	FinalDate       *time.Time     `json:"final_date,omitempty"`
	DurationMinutes int            `json:"duration_minutes,omitempty"`
	DateRange       *dateRangeResp `json:"date_range,omitempty"`
	IsRangeQuery    bool           `json:"is_range_query"`
	Confidence      float64        `json:"confidence"`
	Conflicts       []string       `json:"conflicts,omitempty"`
}

func newTemporalResp(ctx temporal.Context) temporalResp {
	resp := temporalResp{
		IsRangeQuery: ctx.IsRangeQuery,
		Confidence:   ctx.Confidence,
		Conflicts:    ctx.Conflicts,
	}
	if !ctx.FinalDate.IsZero() {
		d := ctx.FinalDate
		resp.FinalDate = &d
		resp.DurationMinutes = int(ctx.FinalDateDuration.Minutes())
	}
	if ctx.DateRange != nil {
		resp.DateRange = &dateRangeResp{Start: ctx.DateRange.Start, End: ctx.DateRange.End}
	}
	return resp
}

type metadataResp struct {
	Kind            string  `json:"kind"`
	Value           string  `json:"value,omitempty"`
	Level           string  `json:"level,omitempty"`
	ReminderMinutes int     `json:"reminder_minutes,omitempty"`
	Confidence      float64 `json:"confidence"`
}

func newMetadataResp(tokens []metadata.Token) []metadataResp {
	out := make([]metadataResp, len(tokens))
	for i, tok := range tokens {
		out[i] = metadataResp{
			Kind:       tok.Kind.String(),
			Value:      tok.Value,
			Confidence: tok.Confidence,
		}
		if tok.Kind == metadata.KindPriority {
			out[i].Level = tok.Level.String()
		}
		if tok.Kind == metadata.KindReminder {
			out[i].ReminderMinutes = int(tok.ReminderOffset.Minutes())
		}
	}
	return out
}

type predictionResp struct {
	Intent     string   `json:"intent"`
	Confidence float64  `json:"confidence"`
	Reasoning  []string `json:"reasoning"`
}

func newPredictionResp(preds []intent.Prediction) []predictionResp {
	out := make([]predictionResp, len(preds))
	for i, p := range preds {
		out[i] = predictionResp{
			Intent:     string(p.Intent),
			Confidence: p.Confidence,
			Reasoning:  p.Reasoning,
		}
	}
	return out
}

type resultResp struct {
	ID            string           `json:"id"`
	OriginalText  string           `json:"original_text"`
	Language      string           `json:"language"`
	Title         string           `json:"title"`
	Intent        string           `json:"intent"`
	Temporal      temporalResp     `json:"temporal"`
	Metadata      []metadataResp   `json:"metadata"`
	Predictions   []predictionResp `json:"predictions"`
	IsAmbiguous   bool             `json:"is_ambiguous"`
	ReferenceDate time.Time        `json:"reference_date"`
}

type processResp struct {
	Results []resultResp `json:"results"`
}

func (h *handler) newProcessResp(out parse.ProcessOutput) processResp {
	results := make([]resultResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = resultResp{
			ID:            r.ID.String(),
			OriginalText:  r.OriginalText,
			Language:      r.Language,
			Title:         r.Title,
			Intent:        string(r.Intent),
			Temporal:      newTemporalResp(r.Temporal),
			Metadata:      newMetadataResp(r.Metadata),
			Predictions:   newPredictionResp(r.Ambiguity.Predictions),
			IsAmbiguous:   r.Ambiguity.IsAmbiguous,
			ReferenceDate: r.ReferenceDate,
		}
	}
	return processResp{Results: results}
}
