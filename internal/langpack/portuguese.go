package langpack

import "time"

var portugueseCommandPrefixes = []string{
	"criar um evento", "criar evento", "criar uma tarefa", "criar tarefa", "criar",
	"adicionar tarefa", "adicionar evento", "adicionar",
	"agendar uma reuniao", "agendar reuniao", "agendar",
	"marcar", "programar",
	"lembre-me de", "lembre me de", "me lembre de", "me lembra de",
	"nova tarefa", "novo evento",
	"remarcar", "reagendar", "adiar", "mudar", "atualizar", "alterar",
	"cancelar", "excluir", "apagar", "remover",
	"concluir", "finalizar", "marcar como feito",
	"mostrar", "mostre", "listar", "ver", "veja",
	"planejar", "organizar",
}

// NewPortuguese builds the pt-BR pack. All lexicon entries are stored
// folded, so "terça-feira" is keyed as "terca-feira"; both the hyphenated
// and spaced spellings of compound weekdays are registered.
func NewPortuguese() Portuguese {
	lex := &Lexicon{
		Weekdays: withEnglishAliases(map[string]int{
			"domingo":       Sunday,
			"dom":           Sunday,
			"segunda":       Monday,
			"segunda feira": Monday,
			"segunda-feira": Monday,
			"seg":           Monday,
			"terca":         Tuesday,
			"terca feira":   Tuesday,
			"terca-feira":   Tuesday,
			"ter":           Tuesday,
			"quarta":        Wednesday,
			"quarta feira":  Wednesday,
			"quarta-feira":  Wednesday,
			"qua":           Wednesday,
			"quinta":        Thursday,
			"quinta feira":  Thursday,
			"quinta-feira":  Thursday,
			"qui":           Thursday,
			"sexta":         Friday,
			"sexta feira":   Friday,
			"sexta-feira":   Friday,
			"sex":           Friday,
			"sabado":        Saturday,
			"sab":           Saturday,
		}),

		ThisWords:  []string{"esta", "nesta", "essa", "nessa", "este", "neste"},
		NextWords:  []string{"proxima", "na proxima", "a proxima", "proximo", "no proximo", "o proximo"},
		Connectors: []string{"e", "depois"},

		Months: map[string]time.Month{
			"janeiro": time.January, "jan": time.January,
			"fevereiro": time.February, "fev": time.February,
			"marco": time.March, "mar": time.March,
			"abril": time.April, "abr": time.April,
			"maio": time.May, "mai": time.May,
			"junho": time.June, "jun": time.June,
			"julho": time.July, "jul": time.July,
			"agosto": time.August, "ago": time.August,
			"setembro": time.September, "set": time.September,
			"outubro": time.October, "out": time.October,
			"novembro": time.November, "nov": time.November,
			"dezembro": time.December, "dez": time.December,
		},
		MonthFirstDates: false,

		RelativeDays: map[string]RelativeDay{
			"hoje":             {DayOffset: 0},
			"hoje a noite":     {DayOffset: 0, Part: PartEvening},
			"amanha":           {DayOffset: 1},
			"amanha a noite":   {DayOffset: 1, Part: PartEvening},
			"depois de amanha": {DayOffset: 2},
		},
		// "manha" alone never collides with "amanha": there is no word
		// boundary inside "amanha".
		PartsOfDay: map[string]PartOfDay{
			"manha":      PartMorning,
			"de manha":   PartMorning,
			"pela manha": PartMorning,
			"tarde":      PartAfternoon,
			"de tarde":   PartAfternoon,
			"a tarde":    PartAfternoon,
			"noite":      PartEvening,
			"de noite":   PartEvening,
			"a noite":    PartEvening,
		},

		WeekWords:    []string{"semana"},
		WeekendWords: []string{"fim de semana", "final de semana", "fds"},
		AtWords:      []string{"as", "a", "ao"},
		FromWords:    []string{"das", "da", "de", "desde"},
		ToWords:      []string{"as", "ate", "a", "-"},

		OrdinalDayPattern: `\b(?:no\s+)?dia\s+(\d{1,2})[ºo°]?\b`,
	}
	return Portuguese{newBase("pt-BR", lex, portugueseCommandPrefixes)}
}
