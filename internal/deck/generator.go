package deck

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/netrunner-run/coniuga/internal/verbs"
)

// Generator builds decks of exercise cards. Phrase selection among
// candidates is uniform-random and affects presentation only.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Generator using the provided random source. Tests
// pass a fixed seed for deterministic phrase choices.
func NewWithRand(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Build produces the deck for a verb selection: curated exemplars first,
// then one synthesized card for every remaining (selected verb, person)
// pair, minus mastered pairs. Every pair appears at most once. An empty or
// fully unmatched selection falls back to the full curated list so the deck
// never goes empty while content exists.
func (g *Generator) Build(verbSet []verbs.Verb, selected []string, mastered map[string]bool) []Card {
	selectedSet := make(map[string]bool, len(selected))
	for _, infinitive := range selected {
		selectedSet[infinitive] = true
	}

	covered := make(map[string]bool)
	matched := 0
	var cards []Card
	for _, card := range Curated() {
		if len(selectedSet) > 0 && !selectedSet[card.Verb] {
			continue
		}
		covered[card.Key()] = true
		matched++
		if mastered[card.Key()] {
			continue
		}
		cards = append(cards, card)
	}

	for _, v := range verbSet {
		if !selectedSet[v.Infinitive] {
			continue
		}
		for _, person := range verbs.Persons {
			key := PairKey(v.Infinitive, person)
			if covered[key] {
				continue
			}
			covered[key] = true
			matched++
			if mastered[key] {
				continue
			}
			cards = append(cards, g.synthesize(v, person))
		}
	}

	// A selection that matches nothing falls back to the curated list. A
	// deck emptied by mastery stays empty; that is the terminal state.
	if matched == 0 {
		cards = cards[:0]
		for _, card := range Curated() {
			if mastered[card.Key()] {
				continue
			}
			cards = append(cards, card)
		}
	}
	return cards
}

func (g *Generator) synthesize(v verbs.Verb, person verbs.Person) Card {
	objects := objectPhrases[v.Infinitive]
	if len(objects) == 0 {
		objects = genericObjects
	}
	contexts := contextPhrases[person][v.Class]
	if len(contexts) == 0 {
		contexts = []string{""}
	}

	object := objects[g.rnd.Intn(len(objects))]
	context := contexts[g.rnd.Intn(len(contexts))]

	var sentence string
	switch {
	case context != "" && object != "":
		sentence = fmt.Sprintf("%s ______ %s %s.", person, context, object)
	case context != "":
		sentence = fmt.Sprintf("%s ______ %s.", person, context)
	case object != "":
		sentence = fmt.Sprintf("%s ______ %s.", person, object)
	default:
		sentence = fmt.Sprintf("%s ______.", person)
	}

	translation := person.Pronoun() + " " + strings.TrimPrefix(v.Meaning, "to ")
	if context != "" || object != "" {
		translation += "..."
	}

	return Card{
		Sentence:    sentence,
		Verb:        v.Infinitive,
		Person:      person,
		Answer:      v.Conjugations[person],
		Translation: translation,
	}
}
