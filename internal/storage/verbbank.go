package storage

import (
	"encoding/json"

	"github.com/netrunner-run/coniuga/internal/verbs"
)

// SaveVerb stores or replaces an imported verb.
func (s *Store) SaveVerb(v verbs.Verb) error {
	forms, err := json.Marshal(v.Conjugations)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO custom_verbs (infinitive, meaning, class, conjugations)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(infinitive) DO UPDATE SET
			meaning = excluded.meaning,
			class = excluded.class,
			conjugations = excluded.conjugations`,
		v.Infinitive, v.Meaning, string(v.Class), string(forms),
	)
	return err
}

// LoadVerbs returns all imported verbs in infinitive order.
func (s *Store) LoadVerbs() ([]verbs.Verb, error) {
	rows, err := s.db.Query(
		`SELECT infinitive, meaning, class, conjugations
		 FROM custom_verbs ORDER BY infinitive`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var out []verbs.Verb
	for rows.Next() {
		var v verbs.Verb
		var class, forms string
		if err := rows.Scan(&v.Infinitive, &v.Meaning, &class, &forms); err != nil {
			return nil, err
		}
		v.Class = verbs.Class(class)
		if err := json.Unmarshal([]byte(forms), &v.Conjugations); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MergeVerbs appends imported verbs to the built-in table, skipping
// infinitives the table already has. Built-in entries always win.
func MergeVerbs(builtin, imported []verbs.Verb) []verbs.Verb {
	out := make([]verbs.Verb, len(builtin), len(builtin)+len(imported))
	copy(out, builtin)
	for _, v := range imported {
		if _, ok := verbs.Find(builtin, v.Infinitive); ok {
			continue
		}
		out = append(out, v)
	}
	return out
}
