package render

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Verb", "Meaning", "Class"}
	rows := [][]string{
		{"parlare", "to speak", "are"},
		{"capire", "to understand", "ire-isc"},
	}

	lines := FormatTable(headers, rows, nil)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Verb     Meaning        Class" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "parlare  to speak       are" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "capire   to understand  ire-isc" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableRightAligns(t *testing.T) {
	headers := []string{"Name", "Score"}
	rows := [][]string{
		{"marco", "9"},
		{"anna", "12"},
	}
	lines := FormatTable(headers, rows, map[int]bool{1: true})
	if lines[1] != "marco      9" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "anna      12" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := FormatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil for empty input, got %v", lines)
	}
}

func TestFormatTableRaggedRows(t *testing.T) {
	lines := FormatTable([]string{"A"}, [][]string{{"x", "extra"}}, nil)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1] != "x  extra" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}
