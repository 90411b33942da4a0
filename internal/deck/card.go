// Package deck builds fill-in-the-blank exercise cards from the verb table.
package deck

import "github.com/netrunner-run/coniuga/internal/verbs"

// Card is one exercise: a sentence with a blank bound to exactly one
// expected conjugated form. Cards are value objects; only the identity of
// mastered (verb, person) pairs is ever persisted.
type Card struct {
	Sentence    string
	Verb        string
	Person      verbs.Person
	Answer      string
	Translation string
}

// Key returns the composite (verb, person) identity used for mastery
// tracking.
func (c Card) Key() string {
	return c.Verb + "|" + string(c.Person)
}

// PairKey builds the mastery key for a (verb, person) pair.
func PairKey(infinitive string, person verbs.Person) string {
	return infinitive + "|" + string(person)
}

// Curated returns the hand-authored exemplar cards. These take precedence
// over synthesized cards for the pairs they cover.
func Curated() []Card {
	return []Card{
		{
			Sentence:    "Noi ______ la pizza.",
			Verb:        "mangiare",
			Person:      verbs.Noi,
			Answer:      "mangiamo",
			Translation: "We eat the pizza.",
		},
		{
			Sentence:    "Io ______ il libro.",
			Verb:        "leggere",
			Person:      verbs.Io,
			Answer:      "leggo",
			Translation: "I read the book.",
		},
		{
			Sentence:    "Loro ______ a scuola.",
			Verb:        "andare",
			Person:      verbs.Loro,
			Answer:      "vanno",
			Translation: "They go to school.",
		},
		{
			Sentence:    "Tu ______ italiano molto bene.",
			Verb:        "parlare",
			Person:      verbs.Tu,
			Answer:      "parli",
			Translation: "You speak Italian very well.",
		},
		{
			Sentence:    "Lei ______ la musica classica.",
			Verb:        "preferire",
			Person:      verbs.Lui,
			Answer:      "preferisce",
			Translation: "She prefers classical music.",
		},
		{
			Sentence:    "Voi ______ il caffè al mattino.",
			Verb:        "bere",
			Person:      verbs.Voi,
			Answer:      "bevete",
			Translation: "You all drink coffee in the morning.",
		},
		{
			Sentence:    "Io ______ la TV ogni sera.",
			Verb:        "guardare",
			Person:      verbs.Io,
			Answer:      "guardo",
			Translation: "I watch TV every evening.",
		},
		{
			Sentence:    "Lui ______ molto durante la settimana.",
			Verb:        "lavorare",
			Person:      verbs.Lui,
			Answer:      "lavora",
			Translation: "He works a lot during the week.",
		},
		{
			Sentence:    "Noi ______ in Italia l'estate prossima.",
			Verb:        "viaggiare",
			Person:      verbs.Noi,
			Answer:      "viaggiamo",
			Translation: "We travel to Italy next summer.",
		},
		{
			Sentence:    "Loro ______ la lezione di italiano.",
			Verb:        "capire",
			Person:      verbs.Loro,
			Answer:      "capiscono",
			Translation: "They understand the Italian lesson.",
		},
	}
}
