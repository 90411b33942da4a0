// Package textdiff evaluates typed answers against expected forms.
package textdiff

import "strings"

// Result classifies a checked answer.
type Result int

// Answer classifications.
const (
	Incorrect Result = iota
	Almost
	Correct
)

// almostThreshold is the largest edit distance still reported as Almost. It
// tolerates a single typo or a missing accent without rewarding answers that
// are structurally different.
const almostThreshold = 2

// Normalize trims surrounding whitespace and lowercases. Case and outer
// whitespace are never significant when comparing answers.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Evaluate compares a typed answer to the expected form.
func Evaluate(answer, expected string) Result {
	a := Normalize(answer)
	b := Normalize(expected)
	if a == b {
		return Correct
	}
	if d := Distance(a, b); d > 0 && d <= almostThreshold {
		return Almost
	}
	return Incorrect
}

// IsAlmostCorrect reports whether an answer is within the typo tolerance of
// the expected form without being exactly right.
func IsAlmostCorrect(answer, expected string) bool {
	d := Distance(Normalize(answer), Normalize(expected))
	return d > 0 && d <= almostThreshold
}

// Distance computes the Levenshtein edit distance between two strings with
// unit costs for insert, delete and substitute.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	matrix := make([][]int, len(rb)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(ra)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(ra); j++ {
		matrix[0][j] = j
	}
	for i := 1; i <= len(rb); i++ {
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}
			matrix[i][j] = minInt(
				matrix[i-1][j-1]+1, // substitution
				minInt(
					matrix[i][j-1]+1, // insertion
					matrix[i-1][j]+1, // deletion
				),
			)
		}
	}
	return matrix[len(rb)][len(ra)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
