// Package intent classifies a clause into ranked action intents from the
// shape of its temporal and metadata evidence. Scoring is a pure function
// over the token sets; ambiguity is surfaced, never resolved silently.
package intent

// Intent is the classified user action over a task or event entity.
type Intent string

const (
	CreateTask      Intent = "CREATE_TASK"
	CreateEvent     Intent = "CREATE_EVENT"
	RescheduleTask  Intent = "RESCHEDULE_TASK"
	RescheduleEvent Intent = "RESCHEDULE_EVENT"
	UpdateTask      Intent = "UPDATE_TASK"
	UpdateEvent     Intent = "UPDATE_EVENT"
	CancelTask      Intent = "CANCEL_TASK"
	CancelEvent     Intent = "CANCEL_EVENT"
	View            Intent = "VIEW"
	Plan            Intent = "PLAN"
	Unknown         Intent = "UNKNOWN"
)

// Prediction is one ranked intent candidate. Reasoning lists the evidence
// categories that fired plus the raw score, for debugging and testability;
// it is never fed back into scoring.
type Prediction struct {
	Intent     Intent
	Confidence float64
	Reasoning  []string
}

// Ambiguity is the ranked prediction list. IsAmbiguous is true when at
// least two predictions survive and the top two confidences sit closer than
// the configured gap.
type Ambiguity struct {
	Predictions []Prediction
	IsAmbiguous bool
}

// PrimaryIntent returns the highest-confidence prediction, or Unknown when
// nothing survived scoring.
func (a Ambiguity) PrimaryIntent() Intent {
	if len(a.Predictions) == 0 {
		return Unknown
	}
	return a.Predictions[0].Intent
}
