package verbs

import (
	"math/rand"
	"testing"
)

func TestStem(t *testing.T) {
	if got := Stem("parlare"); got != "parl" {
		t.Fatalf("expected parl, got %q", got)
	}
	if got := Stem("io"); got != "" {
		t.Fatalf("expected empty stem for short input, got %q", got)
	}
}

func TestClassOf(t *testing.T) {
	cases := []struct {
		infinitive string
		want       Class
	}{
		{"lavorare", ClassAre},
		{"leggere", ClassEre},
		{"sentire", ClassIre},
		{"capire", ClassIreIsc},
	}
	for _, tc := range cases {
		if got := ClassOf(tc.infinitive); got != tc.want {
			t.Fatalf("ClassOf(%q) = %q, want %q", tc.infinitive, got, tc.want)
		}
	}
}

func TestConjugateTabulatedVerbWins(t *testing.T) {
	v := Conjugate("capire")
	if v.Meaning != "to understand" {
		t.Fatalf("expected tabulated verb, got %+v", v)
	}
	// Irregular noi form: capiamo, not cap+iamo from the isc pattern stem.
	if v.Conjugations[Noi] != "capiamo" {
		t.Fatalf("expected capiamo, got %q", v.Conjugations[Noi])
	}
}

func TestConjugateSynthesizesRegularForms(t *testing.T) {
	cases := []struct {
		infinitive string
		person     Person
		want       string
	}{
		{"lavorare", Lui, "lavora"},
		{"lavorare", Noi, "lavoriamo"},
		{"scrivere", Voi, "scrivete"},
		{"sentire", Loro, "sentono"},
		{"guardare", Io, "guardo"},
	}
	for _, tc := range cases {
		v := Conjugate(tc.infinitive)
		if got := v.Conjugations[tc.person]; got != tc.want {
			t.Fatalf("Conjugate(%q)[%s] = %q, want %q", tc.infinitive, tc.person, got, tc.want)
		}
	}
}

func TestSynthesisMatchesStemPlusSuffix(t *testing.T) {
	for _, infinitive := range []string{"lavorare", "scrivere", "sentire"} {
		v := Conjugate(infinitive)
		pattern := Pattern(v.Class)
		for _, p := range Persons {
			want := Stem(infinitive) + pattern[p]
			if got := v.Conjugations[p]; got != want {
				t.Fatalf("%s/%s: got %q, want stem+suffix %q", infinitive, p, got, want)
			}
		}
	}
}

func TestHintExcludesCurrentVerb(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	current, ok := Find(All(), "parlare")
	if !ok {
		t.Fatalf("parlare missing from table")
	}
	for i := 0; i < 50; i++ {
		hint, ok := Hint(rnd, All(), current)
		if !ok {
			t.Fatalf("expected a hint verb")
		}
		if hint.Infinitive == current.Infinitive {
			t.Fatalf("hint returned the current verb")
		}
		if hint.Class != current.Class {
			t.Fatalf("hint class %q does not match %q", hint.Class, current.Class)
		}
	}
}

func TestByClassGroupsAllVerbs(t *testing.T) {
	grouped := ByClass(All())
	total := 0
	for _, group := range grouped {
		total += len(group)
	}
	if total != len(All()) {
		t.Fatalf("grouped %d verbs, table has %d", total, len(All()))
	}
}
