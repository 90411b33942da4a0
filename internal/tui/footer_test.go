package tui

import (
	"strings"
	"testing"

	"github.com/netrunner-run/coniuga/internal/deck"
	"github.com/netrunner-run/coniuga/internal/session"
	"github.com/netrunner-run/coniuga/internal/storage"
	"github.com/netrunner-run/coniuga/internal/textdiff"
	"github.com/netrunner-run/coniuga/internal/verbs"
)

func newTestModel() *Model {
	controller := session.New(verbs.All(), deck.New(), storage.NewSettings(storage.NewMemory()))
	return NewModel(controller, verbs.All())
}

func TestRenderFooterFormats(t *testing.T) {
	m := newTestModel()

	out := m.renderFooter()
	if out == "" {
		t.Fatalf("expected footer output")
	}
	if !containsAll(out, []string{"card 1/", "score 0", "accuracy 0%"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func TestRenderFooterPickerCountsSelection(t *testing.T) {
	m := newTestModel()
	m.openPicker()

	out := m.renderFooter()
	want := "6 of 6 verbs selected"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestRenderDiffMarksPositions(t *testing.T) {
	out := renderDiff(textdiff.Diff("parl", "parla"))
	if !strings.Contains(out, "you typed:") {
		t.Fatalf("expected diff prefix, got %s", out)
	}
	if !strings.Contains(out, "a") {
		t.Fatalf("expected missing letter to be shown: %s", out)
	}
}

func TestRenderDiffCoversEverySegmentKind(t *testing.T) {
	cases := []struct {
		name     string
		answer   string
		expected string
	}{
		{"match", "parlo", "parlo"},
		{"wrong letter", "parla", "parlo"},
		{"missing tail", "parl", "parlo"},
		{"extra tail", "parloo", "parlo"},
	}
	for _, tc := range cases {
		segments := textdiff.Diff(tc.answer, tc.expected)
		out := renderDiff(segments)
		if out == "" {
			t.Fatalf("%s: expected rendered output", tc.name)
		}
		for _, seg := range segments {
			if !strings.Contains(out, seg.Text) {
				t.Fatalf("%s: segment %q missing from output: %s", tc.name, seg.Text, out)
			}
		}
	}
}

func TestConjugationExampleForIrregularVerb(t *testing.T) {
	irregular := verbs.Verb{
		Infinitive: "andare",
		Meaning:    "to go",
		Class:      verbs.ClassAre,
		Conjugations: verbs.Conjugations{
			verbs.Io: "vado", verbs.Tu: "vai", verbs.Lui: "va",
			verbs.Noi: "andiamo", verbs.Voi: "andate", verbs.Loro: "vanno",
		},
	}
	verbSet := append(verbs.All(), irregular)
	controller := session.New(verbSet, deck.New(), storage.NewSettings(storage.NewMemory()))
	m := NewModel(controller, verbSet)

	if _, ok := m.exampleFor(verbSet[0]); ok {
		t.Fatalf("regular verb should not get an example")
	}
	example, ok := m.exampleFor(irregular)
	if !ok {
		t.Fatalf("expected a regular example for an irregular verb")
	}
	if example.Class != irregular.Class || example.Infinitive == irregular.Infinitive {
		t.Fatalf("example %s does not fit %s", example.Infinitive, irregular.Infinitive)
	}
	if !isRegular(example) {
		t.Fatalf("example %s is not regular", example.Infinitive)
	}
}

func TestPickerOrderGroupsByClass(t *testing.T) {
	m := newTestModel()
	m.openPicker()

	if len(m.pickerVerbs) != len(verbs.All()) {
		t.Fatalf("expected all verbs in picker, got %d", len(m.pickerVerbs))
	}
	classIdx := map[verbs.Class]int{}
	for i, class := range verbs.Classes {
		classIdx[class] = i
	}
	lastClassIdx := -1
	for _, v := range m.pickerVerbs {
		idx := classIdx[v.Class]
		if idx < lastClassIdx {
			t.Fatalf("picker order not grouped by class: %s out of place", v.Infinitive)
		}
		lastClassIdx = idx
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
