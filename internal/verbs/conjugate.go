package verbs

import (
	"math/rand"
	"strings"
)

// Stem returns the infinitive without its three-letter ending.
func Stem(infinitive string) string {
	if len(infinitive) < 3 {
		return ""
	}
	return infinitive[:len(infinitive)-3]
}

// ClassOf infers the conjugation class of an infinitive. -ire verbs known to
// take the -isc infix are recognized from the built-in table; everything else
// ending in -ire is treated as a plain third-conjugation verb.
func ClassOf(infinitive string) Class {
	switch {
	case strings.HasSuffix(infinitive, "are"):
		return ClassAre
	case strings.HasSuffix(infinitive, "ere"):
		return ClassEre
	}
	if v, ok := Find(table, infinitive); ok && v.Class == ClassIreIsc {
		return ClassIreIsc
	}
	return ClassIre
}

// Conjugate resolves a full Verb for an infinitive. A tabulated verb wins as
// a whole; otherwise the forms are synthesized from the class pattern.
func Conjugate(infinitive string) Verb {
	if v, ok := Find(table, infinitive); ok {
		return v
	}
	class := ClassOf(infinitive)
	stem := Stem(infinitive)
	pattern := patterns[class]

	forms := make(Conjugations, len(Persons))
	for _, p := range Persons {
		forms[p] = stem + pattern[p]
	}
	return Verb{
		Infinitive:   infinitive,
		Meaning:      "(Add meaning)",
		Class:        class,
		Conjugations: forms,
	}
}

// Hint returns a random verb in the same class as current, excluding current
// itself. The conjugation panel uses it to place a regular example next to
// an irregular verb.
func Hint(rnd *rand.Rand, verbSet []Verb, current Verb) (Verb, bool) {
	same := make([]Verb, 0, len(verbSet))
	for _, v := range verbSet {
		if v.Class == current.Class && v.Infinitive != current.Infinitive {
			same = append(same, v)
		}
	}
	if len(same) == 0 {
		return Verb{}, false
	}
	return same[rnd.Intn(len(same))], true
}
