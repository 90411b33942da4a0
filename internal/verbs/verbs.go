// Package verbs holds the Italian verb dataset and the conjugation synthesizer.
package verbs

// Person is one of the six grammatical subjects of the presente indicativo.
type Person string

// The six persons. Persons lists them in canonical order; use it wherever
// iteration order is observable.
const (
	Io   Person = "io"
	Tu   Person = "tu"
	Lui  Person = "lui"
	Noi  Person = "noi"
	Voi  Person = "voi"
	Loro Person = "loro"
)

// Persons is the canonical person order.
var Persons = []Person{Io, Tu, Lui, Noi, Voi, Loro}

// Pronoun returns the English subject pronoun for a person.
func (p Person) Pronoun() string {
	switch p {
	case Io:
		return "I"
	case Tu:
		return "you"
	case Lui:
		return "he"
	case Noi:
		return "we"
	case Voi:
		return "you all"
	default:
		return "they"
	}
}

// Class is a verb's regular inflection pattern, determined by its ending.
type Class string

// The four conjugation classes.
const (
	ClassAre    Class = "are"
	ClassEre    Class = "ere"
	ClassIre    Class = "ire"
	ClassIreIsc Class = "ire-isc"
)

// Classes lists the conjugation classes in presentation order.
var Classes = []Class{ClassAre, ClassEre, ClassIre, ClassIreIsc}

// Description returns a display label for the class.
func (c Class) Description() string {
	switch c {
	case ClassAre:
		return "-are verbs (First Conjugation)"
	case ClassEre:
		return "-ere verbs (Second Conjugation)"
	case ClassIre:
		return "-ire verbs (Third Conjugation)"
	case ClassIreIsc:
		return "-ire verbs with -isc (Third Conjugation)"
	default:
		return string(c)
	}
}

// Conjugations maps each person to a conjugated form.
type Conjugations map[Person]string

// Verb is one entry of the verb table. Tabulated verbs are immutable;
// irregular verbs carry explicit literal forms and never pass through the
// pattern synthesizer.
type Verb struct {
	Infinitive   string
	Meaning      string
	Class        Class
	Conjugations Conjugations
}

// patterns maps each class to its per-person suffixes. Used only to
// synthesize forms for verbs that are not tabulated.
var patterns = map[Class]Conjugations{
	ClassAre: {
		Io: "o", Tu: "i", Lui: "a", Noi: "iamo", Voi: "ate", Loro: "ano",
	},
	ClassEre: {
		Io: "o", Tu: "i", Lui: "e", Noi: "iamo", Voi: "ete", Loro: "ono",
	},
	ClassIre: {
		Io: "o", Tu: "i", Lui: "e", Noi: "iamo", Voi: "ite", Loro: "ono",
	},
	ClassIreIsc: {
		Io: "isco", Tu: "isci", Lui: "isce", Noi: "iamo", Voi: "ite", Loro: "iscono",
	},
}

// Pattern returns the suffix table for a class.
func Pattern(c Class) Conjugations {
	return patterns[c]
}

// table is the built-in verb set.
var table = []Verb{
	{
		Infinitive: "parlare",
		Meaning:    "to speak",
		Class:      ClassAre,
		Conjugations: Conjugations{
			Io: "parlo", Tu: "parli", Lui: "parla", Noi: "parliamo", Voi: "parlate", Loro: "parlano",
		},
	},
	{
		Infinitive: "mangiare",
		Meaning:    "to eat",
		Class:      ClassAre,
		Conjugations: Conjugations{
			Io: "mangio", Tu: "mangi", Lui: "mangia", Noi: "mangiamo", Voi: "mangiate", Loro: "mangiano",
		},
	},
	{
		Infinitive: "prendere",
		Meaning:    "to take",
		Class:      ClassEre,
		Conjugations: Conjugations{
			Io: "prendo", Tu: "prendi", Lui: "prende", Noi: "prendiamo", Voi: "prendete", Loro: "prendono",
		},
	},
	{
		Infinitive: "vedere",
		Meaning:    "to see",
		Class:      ClassEre,
		Conjugations: Conjugations{
			Io: "vedo", Tu: "vedi", Lui: "vede", Noi: "vediamo", Voi: "vedete", Loro: "vedono",
		},
	},
	{
		Infinitive: "dormire",
		Meaning:    "to sleep",
		Class:      ClassIre,
		Conjugations: Conjugations{
			Io: "dormo", Tu: "dormi", Lui: "dorme", Noi: "dormiamo", Voi: "dormite", Loro: "dormono",
		},
	},
	{
		Infinitive: "capire",
		Meaning:    "to understand",
		Class:      ClassIreIsc,
		Conjugations: Conjugations{
			Io: "capisco", Tu: "capisci", Lui: "capisce", Noi: "capiamo", Voi: "capite", Loro: "capiscono",
		},
	},
}

// All returns a copy of the built-in verb table.
func All() []Verb {
	out := make([]Verb, len(table))
	copy(out, table)
	return out
}

// Find looks up a verb by infinitive in the given table.
func Find(verbSet []Verb, infinitive string) (Verb, bool) {
	for _, v := range verbSet {
		if v.Infinitive == infinitive {
			return v, true
		}
	}
	return Verb{}, false
}

// ByClass groups a verb table by conjugation class, preserving table order
// within each class.
func ByClass(verbSet []Verb) map[Class][]Verb {
	grouped := make(map[Class][]Verb, len(Classes))
	for _, v := range verbSet {
		grouped[v.Class] = append(grouped[v.Class], v)
	}
	return grouped
}
