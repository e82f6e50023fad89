package langpack

import "time"

var spanishCommandPrefixes = []string{
	"crear un evento", "crear evento", "crear una tarea", "crear tarea", "crear",
	"agregar tarea", "agregar evento", "agregar", "anadir",
	"agendar una reunion", "agendar reunion", "agendar",
	"programar", "recuerdame",
	"nueva tarea", "nuevo evento",
	"reprogramar", "reagendar", "posponer", "aplazar", "mover", "cambiar", "actualizar",
	"cancelar", "eliminar", "borrar", "quitar",
	"completar", "terminar", "marcar como hecho",
	"mostrar", "muestrame", "listar", "ver",
	"planificar", "planear", "organizar",
}

// NewSpanish builds the es pack. Note the "manana" ambiguity: standalone it
// means tomorrow (a relative day); it only reads as the morning daypart when
// introduced by "por la", "de la" or "en la".
func NewSpanish() Spanish {
	lex := &Lexicon{
		Weekdays: withEnglishAliases(map[string]int{
			"domingo":   Sunday,
			"dom":       Sunday,
			"lunes":     Monday,
			"lun":       Monday,
			"martes":    Tuesday,
			"mar":       Tuesday,
			"miercoles": Wednesday,
			"mie":       Wednesday,
			"jueves":    Thursday,
			"jue":       Thursday,
			"viernes":   Friday,
			"vie":       Friday,
			"sabado":    Saturday,
			"sab":       Saturday,
		}),

		ThisWords:  []string{"este", "esta", "en este", "en esta"},
		NextWords:  []string{"proximo", "proxima", "el proximo", "la proxima", "siguiente", "el siguiente", "la siguiente"},
		Connectors: []string{"y", "luego"},

		Months: map[string]time.Month{
			"enero": time.January, "ene": time.January,
			"febrero": time.February, "feb": time.February,
			"marzo": time.March,
			"abril": time.April, "abr": time.April,
			"mayo": time.May, "may": time.May,
			"junio": time.June, "jun": time.June,
			"julio": time.July, "jul": time.July,
			"agosto": time.August, "ago": time.August,
			"septiembre": time.September, "setiembre": time.September, "sep": time.September,
			"octubre": time.October, "oct": time.October,
			"noviembre": time.November, "nov": time.November,
			"diciembre": time.December, "dic": time.December,
		},
		MonthFirstDates: false,

		RelativeDays: map[string]RelativeDay{
			"hoy":                 {DayOffset: 0},
			"esta noche":          {DayOffset: 0, Part: PartEvening},
			"manana":              {DayOffset: 1},
			"manana por la noche": {DayOffset: 1, Part: PartEvening},
			"pasado manana":       {DayOffset: 2},
		},
		PartsOfDay: map[string]PartOfDay{
			"por la manana": PartMorning,
			"de la manana":  PartMorning,
			"en la manana":  PartMorning,
			"tarde":         PartAfternoon,
			"por la tarde":  PartAfternoon,
			"de la tarde":   PartAfternoon,
			"noche":         PartEvening,
			"por la noche":  PartEvening,
			"de la noche":   PartEvening,
			"en la noche":   PartEvening,
		},

		WeekWords:    []string{"semana"},
		WeekendWords: []string{"fin de semana", "finde"},
		AtWords:      []string{"a las", "a la", "a"},
		FromWords:    []string{"de", "desde"},
		ToWords:      []string{"a las", "a", "hasta", "-"},

		OrdinalDayPattern: `\bel\s+(?:dia\s+)?(\d{1,2})\b`,
	}
	return Spanish{newBase("es", lex, spanishCommandPrefixes)}
}
