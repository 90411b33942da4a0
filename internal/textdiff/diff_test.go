package textdiff

import "testing"

func opsOf(segments []Segment) []Op {
	ops := make([]Op, len(segments))
	for i, s := range segments {
		ops[i] = s.Op
	}
	return ops
}

func TestDiffEqualStrings(t *testing.T) {
	segments := Diff("parla", "parla")
	if len(segments) != 5 {
		t.Fatalf("expected 5 segments, got %d", len(segments))
	}
	for _, s := range segments {
		if s.Op != OK {
			t.Fatalf("expected all OK segments, got %v", opsOf(segments))
		}
	}
}

func TestDiffShortAnswerMarksMissing(t *testing.T) {
	segments := Diff("parl", "parla")
	if len(segments) != 5 {
		t.Fatalf("expected 5 segments, got %d", len(segments))
	}
	if segments[4].Op != Missing || segments[4].Text != "a" {
		t.Fatalf("expected trailing Missing 'a', got %+v", segments[4])
	}
}

func TestDiffLongAnswerMarksExtra(t *testing.T) {
	segments := Diff("parlano", "parla")
	if segments[5].Op != Extra || segments[5].Text != "n" {
		t.Fatalf("expected Extra 'n', got %+v", segments[5])
	}
	if segments[6].Op != Extra || segments[6].Text != "o" {
		t.Fatalf("expected Extra 'o', got %+v", segments[6])
	}
}

func TestDiffWrongCharShowsExpected(t *testing.T) {
	segments := Diff("parlo", "parla")
	if segments[4].Op != Wrong || segments[4].Text != "a" {
		t.Fatalf("expected Wrong with expected char, got %+v", segments[4])
	}
}

// A leading insertion shifts every later position; the positional diff flags
// them all. This behavior is part of the contract.
func TestDiffIsPositionalNotAligned(t *testing.T) {
	segments := Diff("xparla", "parla")
	wrong := 0
	for _, s := range segments {
		if s.Op == Wrong || s.Op == Extra {
			wrong++
		}
	}
	if wrong != len(segments) {
		t.Fatalf("expected every position flagged, got %v", opsOf(segments))
	}
}

func TestDiffEmptyAnswer(t *testing.T) {
	segments := Diff("", "va")
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	for _, s := range segments {
		if s.Op != Missing {
			t.Fatalf("expected Missing segments, got %v", opsOf(segments))
		}
	}
}
