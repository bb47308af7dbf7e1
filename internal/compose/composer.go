// Package compose turns engine decisions into user-facing message
// strings. Everything here is pure formatting: fixed banners around
// generator output, never an error.
package compose

import (
	"fmt"
	"strings"

	"github.com/padhakulabs/padhaku/internal/lang"
	"github.com/padhakulabs/padhaku/internal/quiz"
)

// optionLetters label multiple-choice options in display order.
var optionLetters = []string{"A", "B", "C", "D", "E", "F"}

// Welcome returns the first-contact greeting.
func Welcome(tag lang.Tag) string {
	return pick(welcomeBanners, tag)
}

// Permission returns the scripted "may I ask you a question?" suffix.
func Permission(tag lang.Tag) string {
	return pick(permissionPrompts, tag)
}

// Apology returns the fixed message substituted when generation fails.
func Apology(tag lang.Tag) string {
	return pick(apologies, tag)
}

// StudyAnswer wraps generator output for a study question, substituting
// a fixed localized string when the backend returned nothing.
func StudyAnswer(generated string, tag lang.Tag) string {
	generated = strings.TrimSpace(generated)
	if generated == "" {
		return pick(emptyFallbacks, tag)
	}
	return generated
}

// VerdictBanner maps an answer verdict to its fixed banner text. The
// incorrect banner carries the expected answer.
func VerdictBanner(v quiz.Verdict, tag lang.Tag) string {
	if v.Correct {
		return pick(correctBanners, tag)
	}
	return fmt.Sprintf(pick(incorrectBanners, tag), v.Expected)
}

// Quiz renders a quiz record as a single message: the question followed
// by lettered options.
func Quiz(rec *quiz.Record, tag lang.Tag) string {
	var b strings.Builder
	b.WriteString(rec.Question)
	for i, opt := range rec.Options {
		if i >= len(optionLetters) {
			break
		}
		b.WriteString(fmt.Sprintf("\n%s) %s", optionLetters[i], opt))
	}
	return b.String()
}
