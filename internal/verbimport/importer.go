// Package verbimport loads custom verbs from spreadsheet files.
//
// A row carries the infinitive, an optional meaning, an optional class and
// optionally the six present-tense forms in person order (io, tu, lui, noi,
// voi, loro). Missing forms are synthesized from the regular pattern for the
// verb's class.
package verbimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/netrunner-run/coniuga/internal/verbs"
)

// Result summarizes an import run.
type Result struct {
	Imported int
	Skipped  int
	Errors   []string
}

// Import reads verbs from an .xlsx or .csv file.
func Import(path string) ([]verbs.Verb, Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return importCSV(path)
	case ".xlsx":
		return importXLSX(path)
	default:
		return nil, Result{}, fmt.Errorf("unsupported file type %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}

func importXLSX(path string) ([]verbs.Verb, Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, Result{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, Result{}, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, Result{}, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return parseRows(rows)
}

func importCSV(path string) ([]verbs.Verb, Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Result{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Result{}, fmt.Errorf("failed to read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]verbs.Verb, Result, error) {
	var out []verbs.Verb
	var result Result
	seen := map[string]bool{}

	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		verb, err := parseRow(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if seen[verb.Infinitive] {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: duplicate verb %s", i+1, verb.Infinitive))
			continue
		}
		seen[verb.Infinitive] = true
		out = append(out, verb)
		result.Imported++
	}
	return out, result, nil
}

// isHeader sniffs column titles so files exported with a header row work
// without a flag.
func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	return first == "verb" || first == "infinitive" || first == "infinito"
}

func parseRow(row []string) (verbs.Verb, error) {
	if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
		return verbs.Verb{}, fmt.Errorf("missing infinitive")
	}
	infinitive := strings.ToLower(strings.TrimSpace(row[0]))
	if verbs.Stem(infinitive) == "" {
		return verbs.Verb{}, fmt.Errorf("infinitive %q is too short", infinitive)
	}

	verb := verbs.Conjugate(infinitive)
	// Conjugate may hand back the built-in table's form map; clone before
	// applying row overrides.
	forms := make(verbs.Conjugations, len(verb.Conjugations))
	for person, form := range verb.Conjugations {
		forms[person] = form
	}
	verb.Conjugations = forms

	if len(row) > 1 && strings.TrimSpace(row[1]) != "" {
		verb.Meaning = strings.TrimSpace(row[1])
	}
	if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
		class, err := parseClass(strings.TrimSpace(row[2]))
		if err != nil {
			return verbs.Verb{}, err
		}
		if class != verb.Class {
			verb.Class = class
			verb.Conjugations = synthesize(infinitive, class)
		}
	}

	for i, person := range verbs.Persons {
		col := 3 + i
		if col < len(row) && strings.TrimSpace(row[col]) != "" {
			verb.Conjugations[person] = strings.ToLower(strings.TrimSpace(row[col]))
		}
	}
	return verb, nil
}

func parseClass(raw string) (verbs.Class, error) {
	candidate := verbs.Class(strings.ToLower(raw))
	for _, class := range verbs.Classes {
		if candidate == class {
			return class, nil
		}
	}
	return "", fmt.Errorf("unknown verb class %q", raw)
}

func synthesize(infinitive string, class verbs.Class) verbs.Conjugations {
	stem := verbs.Stem(infinitive)
	pattern := verbs.Pattern(class)
	forms := make(verbs.Conjugations, len(verbs.Persons))
	for _, person := range verbs.Persons {
		forms[person] = stem + pattern[person]
	}
	return forms
}
