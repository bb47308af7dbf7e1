package quiz

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Record is a quiz question awaiting an answer. A Record exists for a
// user exactly while that user is in quiz mode.
type Record struct {
	// Question is the question text shown to the user.
	Question string `json:"question"`

	// Answer is the expected answer in canonical form: an uppercase
	// option letter for multiple choice, trimmed text otherwise.
	Answer string `json:"answer"`

	// Options are the multiple-choice options in display order, without
	// letter prefixes. Empty for free-text questions.
	Options []string `json:"options,omitempty"`
}

// Verdict is the outcome of checking a user's answer.
type Verdict struct {
	Correct bool

	// Expected carries the canonical expected answer, used by the
	// composer for the incorrect banner.
	Expected string

	// Question is the text of the question that was answered, carried
	// so outcome records can name it after the pending quiz is gone.
	Question string
}

// Normalize converts a raw answer to canonical form: surrounding
// whitespace is dropped and single-letter answers are uppercased.
func Normalize(answer string) string {
	answer = strings.TrimSpace(answer)
	if utf8.RuneCountInString(answer) == 1 {
		r, _ := utf8.DecodeRuneInString(answer)
		if unicode.IsLetter(r) {
			return strings.ToUpper(answer)
		}
	}
	return answer
}

// Check compares the user's raw input against the expected answer.
// Matching is exact after normalization and case folding; partial or
// substring matches are deliberately rejected to avoid false positives.
func (r *Record) Check(input string) Verdict {
	ok := strings.EqualFold(Normalize(input), Normalize(r.Answer))
	return Verdict{Correct: ok, Expected: Normalize(r.Answer), Question: r.Question}
}
