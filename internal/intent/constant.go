package intent

// Config carries the empirically tuned scorer thresholds. The values have
// no analytic derivation; changing them changes classification behavior, so
// they are exposed as configuration rather than buried in the scorer.
type Config struct {
	// NormalizationFloor is the minimum divisor when turning scores into
	// confidences: confidence = min(1, score/max(floor, topScore)).
	NormalizationFloor float64
	// MinConfidence drops predictions scoring below it.
	MinConfidence float64
	// AmbiguityGap is the confidence distance under which the top two
	// predictions are both surfaced as ambiguous.
	AmbiguityGap float64
	// MaxPredictions caps the ranked list.
	MaxPredictions int
}

func DefaultConfig() Config {
	return Config{
		NormalizationFloor: 10.0,
		MinConfidence:      0.2,
		AmbiguityGap:       0.3,
		MaxPredictions:     3,
	}
}

// fallbackConfidence is used for the single view prediction emitted when no
// rule fires at all.
const fallbackConfidence = 0.3

// rule is one additive evidence category. Multiple rules may fire for the
// same token; their weights accumulate.
type rule struct {
	reason  string
	weights map[Intent]float64
}

var (
	ruleTimeRange = rule{"time range", map[Intent]float64{
		CreateEvent: 3.0, RescheduleEvent: 2.5, UpdateEvent: 2.0,
		CreateTask: 1.0, RescheduleTask: 0.8,
	}}
	ruleAbsoluteTime = rule{"explicit time", map[Intent]float64{
		CreateEvent: 2.5, RescheduleEvent: 2.0, UpdateEvent: 1.5,
		CreateTask: 1.2, RescheduleTask: 1.0,
	}}
	ruleFutureReference = rule{"future reference", map[Intent]float64{
		CreateEvent: 2.0, CreateTask: 2.0,
	}}
	rulePresentReference = rule{"present reference", map[Intent]float64{
		UpdateEvent: 1.5, UpdateTask: 1.5,
		RescheduleEvent: 1.0, RescheduleTask: 1.0,
	}}
	ruleNextWeekday = rule{"next weekday", map[Intent]float64{
		CreateEvent: 1.8, CreateTask: 1.5,
	}}
	ruleBareWeekday = rule{"bare weekday", map[Intent]float64{
		RescheduleEvent: 1.5, RescheduleTask: 1.2,
	}}
	ruleOtherTemporal = rule{"temporal reference", map[Intent]float64{
		CreateEvent: 1.0, CreateTask: 1.0,
	}}

	ruleTag = rule{"tag", map[Intent]float64{
		CreateTask: 2.5, UpdateTask: 2.0, RescheduleTask: 1.5,
		CreateEvent: 0.5, UpdateEvent: 0.3,
	}}
	rulePriority = rule{"priority", map[Intent]float64{
		CreateTask: 3.0, UpdateTask: 2.5, RescheduleTask: 2.0,
	}}
	ruleLocation = rule{"location", map[Intent]float64{
		CreateEvent: 2.5, UpdateEvent: 2.0, RescheduleEvent: 1.5,
		CreateTask: 0.8, UpdateTask: 0.6,
	}}
	ruleReminder = rule{"reminder", map[Intent]float64{
		CreateEvent: 1.5, CreateTask: 1.3, UpdateEvent: 1.2, UpdateTask: 1.0,
	}}
	ruleNotes = rule{"notes", map[Intent]float64{
		CreateEvent: 1.0, CreateTask: 1.0, UpdateEvent: 0.8, UpdateTask: 0.8,
	}}

	ruleCompletionCue = rule{"completion cue", map[Intent]float64{
		CancelTask: 2.5, CancelEvent: 1.0,
	}}
	ruleCancellationCue = rule{"cancellation cue", map[Intent]float64{
		CancelEvent: 2.0, CancelTask: 1.8,
	}}
	ruleMetadataOnly = rule{"metadata without dates", map[Intent]float64{
		View: 2.0, UpdateEvent: 1.0, UpdateTask: 1.0,
	}}
	ruleTemporalOnly = rule{"dates without metadata", map[Intent]float64{
		CreateEvent: 1.5, CreateTask: 1.2,
	}}
)

// Lexical cues scanned during the final pass. Completion cues are looked for
// inside tag and notes values; cancellation cues in the clause text itself.
var (
	completionCues = []string{
		"done", "complete", "completed", "finished",
		"concluido", "concluida", "feito", "feita", "finalizado",
		"hecho", "hecha", "terminado", "terminada", "listo", "lista",
	}
	cancellationCues = []string{
		"cancel", "cancelled", "canceled", "delete", "remove",
		"cancelar", "excluir", "apagar", "remover",
		"eliminar", "borrar", "quitar",
	}
)
