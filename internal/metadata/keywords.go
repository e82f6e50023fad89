package metadata

type priorityEntry struct {
	level      Level
	confidence float64
}

// localeKeywords is the per-locale vocabulary of the extractor. All entries
// are folded (lowercase, diacritics stripped). Exact keyword matches carry
// confidence 1.0; contextual phrasings score lower.
type localeKeywords struct {
	tagMarkers           []string
	priority             map[string]priorityEntry
	locationPrepositions []string
	articles             []string
	reminderUnits        []string
	beforeWords          []string
	notesMarkers         []string
	extraStopWords       []string
}

func keywordsFor(locale string) localeKeywords {
	switch locale {
	case "pt-BR":
		return localeKeywords{
			tagMarkers: []string{"tag", "marcador", "etiqueta"},
			priority: map[string]priorityEntry{
				"urgente":          {LevelHigh, 1.0},
				"prioridade alta":  {LevelHigh, 1.0},
				"alta prioridade":  {LevelHigh, 1.0},
				"importante":       {LevelHigh, 0.7},
				"prioridade media": {LevelMedium, 1.0},
				"media prioridade": {LevelMedium, 0.9},
				"prioridade baixa": {LevelLow, 1.0},
				"baixa prioridade": {LevelLow, 0.9},
				"sem pressa":       {LevelLow, 0.5},
			},
			locationPrepositions: []string{"no", "na", "em"},
			articles:             []string{"o", "a", "os", "as"},
			reminderUnits:        []string{"minutos", "minuto", "min", "horas", "hora", "dias", "dia"},
			beforeWords:          []string{"antes"},
			notesMarkers:         []string{"nota", "notas", "obs", "observacao"},
			extraStopWords:       []string{"dia"},
		}
	case "es":
		return localeKeywords{
			tagMarkers: []string{"tag", "etiqueta"},
			priority: map[string]priorityEntry{
				"urgente":         {LevelHigh, 1.0},
				"prioridad alta":  {LevelHigh, 1.0},
				"alta prioridad":  {LevelHigh, 1.0},
				"importante":      {LevelHigh, 0.7},
				"prioridad media": {LevelMedium, 1.0},
				"prioridad baja":  {LevelLow, 1.0},
				"baja prioridad":  {LevelLow, 0.9},
				"sin prisa":       {LevelLow, 0.5},
			},
			locationPrepositions: []string{"en"},
			articles:             []string{"el", "la", "los", "las"},
			reminderUnits:        []string{"minutos", "minuto", "min", "horas", "hora", "dias", "dia"},
			beforeWords:          []string{"antes"},
			notesMarkers:         []string{"nota", "notas", "obs"},
			extraStopWords:       []string{"dia"},
		}
	default:
		return localeKeywords{
			tagMarkers: []string{"tagged", "tag"},
			priority: map[string]priorityEntry{
				"urgent":          {LevelHigh, 1.0},
				"asap":            {LevelHigh, 0.9},
				"critical":        {LevelHigh, 0.9},
				"high priority":   {LevelHigh, 1.0},
				"important":       {LevelHigh, 0.7},
				"medium priority": {LevelMedium, 1.0},
				"normal priority": {LevelMedium, 0.9},
				"low priority":    {LevelLow, 1.0},
				"whenever":        {LevelLow, 0.5},
			},
			locationPrepositions: []string{"at", "in"},
			articles:             []string{"the"},
			reminderUnits: []string{
				"minutes", "minute", "mins", "min",
				"hours", "hour", "hrs", "hr",
				"days", "day",
			},
			beforeWords:  []string{"before", "ahead", "in advance"},
			notesMarkers: []string{"notes", "note", "obs"},
		}
	}
}
