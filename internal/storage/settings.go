package storage

// Storage keys. Kept as constants to avoid magic strings at call sites.
const (
	keySelectedVerbs     = "selectedVerbs"
	keyTotalScore        = "totalScore"
	keyTotalAttempts     = "totalAttempts"
	keyAnsweredCorrectly = "answeredCorrectly"
	keyShowTranslation   = "showTranslation"
	keyShowConjugations  = "showConjugations"
)

var allKeys = []string{
	keySelectedVerbs,
	keyTotalScore,
	keyTotalAttempts,
	keyAnsweredCorrectly,
	keyShowTranslation,
	keyShowConjugations,
}

// Progress is the persisted slice of session state: counters plus the
// identity of mastered (verb, person) pairs.
type Progress struct {
	TotalScore        int
	TotalAttempts     int
	AnsweredCorrectly []string
}

// UIPrefs are the persisted display toggles.
type UIPrefs struct {
	ShowTranslation  bool
	ShowConjugations bool
}

// Settings reads and writes user state through a KV adapter. All writes are
// best effort; errors are returned for logging but callers never block on
// them.
type Settings struct {
	kv KV
}

// NewSettings wraps a KV adapter.
func NewSettings(kv KV) *Settings {
	return &Settings{kv: kv}
}

// SelectedVerbs loads the persisted verb selection, or nil when unset.
func (s *Settings) SelectedVerbs() []string {
	var selected []string
	s.kv.Get(keySelectedVerbs, &selected)
	return selected
}

// SaveSelectedVerbs persists the verb selection.
func (s *Settings) SaveSelectedVerbs(selected []string) error {
	return s.kv.Set(keySelectedVerbs, selected)
}

// Progress loads the persisted counters and mastered pairs.
func (s *Settings) Progress() Progress {
	var p Progress
	s.kv.Get(keyTotalScore, &p.TotalScore)
	s.kv.Get(keyTotalAttempts, &p.TotalAttempts)
	s.kv.Get(keyAnsweredCorrectly, &p.AnsweredCorrectly)
	return p
}

// SaveProgress persists counters and mastered pairs.
func (s *Settings) SaveProgress(p Progress) error {
	if err := s.kv.Set(keyTotalScore, p.TotalScore); err != nil {
		return err
	}
	if err := s.kv.Set(keyTotalAttempts, p.TotalAttempts); err != nil {
		return err
	}
	return s.kv.Set(keyAnsweredCorrectly, p.AnsweredCorrectly)
}

// ResetProgress clears counters and mastered pairs.
func (s *Settings) ResetProgress() error {
	return s.SaveProgress(Progress{AnsweredCorrectly: []string{}})
}

// UIPrefs loads the persisted display toggles.
func (s *Settings) UIPrefs() UIPrefs {
	var p UIPrefs
	s.kv.Get(keyShowTranslation, &p.ShowTranslation)
	s.kv.Get(keyShowConjugations, &p.ShowConjugations)
	return p
}

// SaveUIPrefs persists the display toggles.
func (s *Settings) SaveUIPrefs(p UIPrefs) error {
	if err := s.kv.Set(keyShowTranslation, p.ShowTranslation); err != nil {
		return err
	}
	return s.kv.Set(keyShowConjugations, p.ShowConjugations)
}

// ClearAll removes every key this application owns.
func (s *Settings) ClearAll() error {
	for _, key := range allKeys {
		if err := s.kv.Remove(key); err != nil {
			return err
		}
	}
	return nil
}
