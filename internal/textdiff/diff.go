package textdiff

// Op marks how a diff segment should be displayed.
type Op int

// Diff segment kinds.
const (
	// OK: the character matches; shown as-is.
	OK Op = iota
	// Wrong: both strings have a character at this index but they differ;
	// the expected character is shown highlighted.
	Wrong
	// Missing: the expected string has a character the answer lacks.
	Missing
	// Extra: the answer has a trailing character beyond the expected form;
	// shown struck through.
	Extra
)

// Segment is a single character of the rendered diff.
type Segment struct {
	Op   Op
	Text string
}

// Diff walks both strings index-by-index up to the longer length and marks
// each position. This is deliberately a positional diff, not an alignment
// diff: an insertion near the start shifts every later position out of
// alignment and gets flagged character by character. Kept for compatibility
// with the established feedback rendering.
func Diff(answer, expected string) []Segment {
	ra := []rune(answer)
	re := []rune(expected)
	maxLen := len(ra)
	if len(re) > maxLen {
		maxLen = len(re)
	}
	segments := make([]Segment, 0, maxLen)
	for i := 0; i < maxLen; i++ {
		switch {
		case i >= len(ra):
			segments = append(segments, Segment{Op: Missing, Text: string(re[i])})
		case i >= len(re):
			segments = append(segments, Segment{Op: Extra, Text: string(ra[i])})
		case ra[i] != re[i]:
			segments = append(segments, Segment{Op: Wrong, Text: string(re[i])})
		default:
			segments = append(segments, Segment{Op: OK, Text: string(re[i])})
		}
	}
	return segments
}
