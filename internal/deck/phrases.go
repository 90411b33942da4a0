package deck

import "github.com/netrunner-run/coniuga/internal/verbs"

// contextPhrases holds adverbial context phrases keyed by person, then by
// conjugation class. Presentation variety only; never affects the expected
// answer.
var contextPhrases = map[verbs.Person]map[verbs.Class][]string{
	verbs.Io: {
		verbs.ClassAre:    {"sempre", "spesso", "ogni giorno", "raramente"},
		verbs.ClassEre:    {"a volte", "con piacere", "quando posso", "con interesse"},
		verbs.ClassIre:    {"con attenzione", "subito", "immediatamente", "con calma"},
		verbs.ClassIreIsc: {"di solito", "volentieri", "sempre", "con entusiasmo"},
	},
	verbs.Tu: {
		verbs.ClassAre:    {"ogni giorno", "spesso", "sempre", "mai"},
		verbs.ClassEre:    {"bene", "male", "quando puoi", "subito"},
		verbs.ClassIre:    {"troppo", "poco", "abbastanza", "velocemente"},
		verbs.ClassIreIsc: {"sempre", "mai", "qualche volta", "raramente"},
	},
	verbs.Lui: {
		verbs.ClassAre:    {"regolarmente", "spesso", "con attenzione", "bene"},
		verbs.ClassEre:    {"sempre", "solo", "raramente", "attentamente"},
		verbs.ClassIre:    {"molto", "poco", "abbastanza", "quando necessario"},
		verbs.ClassIreIsc: {"con cura", "spesso", "sempre", "rapidamente"},
	},
	verbs.Noi: {
		verbs.ClassAre:    {"insieme", "spesso", "ogni weekend", "raramente"},
		verbs.ClassEre:    {"quando possiamo", "sempre", "ogni sera", "con piacere"},
		verbs.ClassIre:    {"velocemente", "lentamente", "con calma", "con attenzione"},
		verbs.ClassIreIsc: {"regolarmente", "ogni settimana", "con impegno", "insieme"},
	},
	verbs.Voi: {
		verbs.ClassAre:    {"spesso", "sempre", "mai", "troppo"},
		verbs.ClassEre:    {"bene", "male", "quando potete", "insieme"},
		verbs.ClassIre:    {"con calma", "velocemente", "con passione", "abbastanza"},
		verbs.ClassIreIsc: {"spesso", "regolarmente", "in gruppo", "ogni giorno"},
	},
	verbs.Loro: {
		verbs.ClassAre:    {"ogni giorno", "sempre", "mai", "spesso"},
		verbs.ClassEre:    {"insieme", "separatamente", "quando possono", "bene"},
		verbs.ClassIre:    {"con entusiasmo", "lentamente", "molto", "poco"},
		verbs.ClassIreIsc: {"con interesse", "sempre", "regolarmente", "ogni settimana"},
	},
}

// objectPhrases holds direct-object phrases per verb.
var objectPhrases = map[string][]string{
	"mangiare":  {"la pizza", "la pasta", "il gelato", "la frutta"},
	"parlare":   {"italiano", "con gli amici", "al telefono", "di politica"},
	"studiare":  {"matematica", "storia", "italiano", "scienze"},
	"lavorare":  {"in ufficio", "da casa", "molto", "poco"},
	"leggere":   {"un libro", "il giornale", "una rivista", "delle email"},
	"scrivere":  {"una lettera", "un messaggio", "un'email", "un articolo"},
	"vedere":    {"un film", "la TV", "gli amici", "il paesaggio"},
	"bere":      {"acqua", "vino", "caffè", "una bibita"},
	"sentire":   {"la musica", "un rumore", "una voce", "il canto degli uccelli"},
	"dormire":   {"bene", "male", "poco", "troppo"},
	"capire":    {"la lezione", "il concetto", "il problema", "la domanda"},
	"finire":    {"il lavoro", "i compiti", "il libro", "la cena"},
	"preferire": {"il caffè", "la pizza", "restare a casa", "viaggiare"},
}

// genericObjects is the fallback for verbs without curated objects. The
// empty entry yields a bare "person ______." sentence.
var genericObjects = []string{"molto", "sempre", "bene", ""}
