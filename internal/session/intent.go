package session

import (
	"github.com/padhakulabs/padhaku/internal/lang"
	"github.com/padhakulabs/padhaku/internal/quiz"
)

// Intent classifies what a turn is asking for. Exactly one primary
// intent is decided per turn; the reply sequence may carry additional
// scripted messages (permission prompt, follow-up question).
type Intent int

const (
	IntentAnswerStudyQuestion Intent = iota
	IntentNewQuizQuestion
	IntentValidateAnswer
	IntentAskPermissionForQuiz
	IntentWelcomeNewUser
)

func (i Intent) String() string {
	switch i {
	case IntentAnswerStudyQuestion:
		return "answer_study_question"
	case IntentNewQuizQuestion:
		return "new_quiz_question"
	case IntentValidateAnswer:
		return "validate_answer"
	case IntentAskPermissionForQuiz:
		return "ask_permission_for_quiz"
	case IntentWelcomeNewUser:
		return "welcome_new_user"
	default:
		return "unknown"
	}
}

// Decision is the engine's verdict on a single inbound turn.
type Decision struct {
	// Intent is the primary intent for the turn.
	Intent Intent

	// Language is the resolved response language.
	Language lang.Tag

	// Prompt is the resolved instruction template, set for study
	// questions.
	Prompt string

	// Verdict is set when Intent is IntentValidateAnswer.
	Verdict *quiz.Verdict

	// NewUser is true on a user's first observed turn.
	NewUser bool
}
