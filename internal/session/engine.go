package session

import (
	"context"
	"strings"

	"github.com/padhakulabs/padhaku/internal/compose"
	"github.com/padhakulabs/padhaku/internal/lang"
	"github.com/padhakulabs/padhaku/internal/llm"
	"github.com/padhakulabs/padhaku/internal/logger"
	"github.com/padhakulabs/padhaku/internal/prompt"
	"github.com/padhakulabs/padhaku/internal/quiz"
)

// fallbackUserID is assigned when the caller supplies no user id. All
// such callers share one session; a known degradation, not a crash.
const fallbackUserID = "default_user"

// quizTriggers are matched case-insensitively anywhere in a turn.
var quizTriggers = []string{"quiz", "question", "sawal", "प्रश्न"}

// ActivityRecorder receives best-effort turn and quiz-outcome records.
// Failures are logged and never affect a turn.
type ActivityRecorder interface {
	RecordTurn(userID, intent string) error
	RecordQuizResult(userID, question string, correct bool) error
}

// Engine is the per-turn orchestrator: it decides the interaction mode
// from session state, delegates text generation, mutates the session,
// and hands the composer everything needed for the reply sequence.
type Engine struct {
	store      Store
	classifier *lang.Classifier
	provider   llm.Provider
	quizzes    quiz.Generator
	activity   ActivityRecorder
	log        *logger.Logger

	legacyLastQuestion bool
	maxAnswerTokens    int
}

// Options configures an Engine.
type Options struct {
	Store      Store
	Classifier *lang.Classifier
	Provider   llm.Provider
	Quizzes    quiz.Generator
	Logger     *logger.Logger

	// Activity is optional; nil disables activity recording.
	Activity ActivityRecorder

	// LegacyLastQuestion enables recording each study query on the
	// session for the naive follow-up validation path.
	LegacyLastQuestion bool

	// MaxAnswerTokens caps study-answer generation. Zero means 1024.
	MaxAnswerTokens int
}

// NewEngine creates an Engine.
func NewEngine(opts Options) *Engine {
	if opts.MaxAnswerTokens == 0 {
		opts.MaxAnswerTokens = 1024
	}
	return &Engine{
		store:              opts.Store,
		classifier:         opts.Classifier,
		provider:           opts.Provider,
		quizzes:            opts.Quizzes,
		activity:           opts.Activity,
		log:                opts.Logger,
		legacyLastQuestion: opts.LegacyLastQuestion,
		maxAnswerTokens:    opts.MaxAnswerTokens,
	}
}

// resolveUserID substitutes the shared fallback id for empty callers.
func resolveUserID(userID string) string {
	if strings.TrimSpace(userID) == "" {
		return fallbackUserID
	}
	return userID
}

// containsTrigger reports whether text contains a quiz-trigger keyword.
func containsTrigger(text string) bool {
	folded := strings.ToLower(text)
	for _, kw := range quizTriggers {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// Decide resolves the primary intent for a turn. It consumes the active
// quiz atomically when there is one, so concurrent turns for the same
// user cannot both validate against the same question.
func (e *Engine) Decide(userID, rawText string) Decision {
	userID = resolveUserID(userID)
	trimmed := strings.TrimSpace(rawText)

	sess, seen := e.store.Get(userID)

	// Quiz mode: the turn is an answer to the pending question.
	if rec, ok := e.store.TakePendingQuiz(userID); ok {
		verdict := rec.Check(trimmed)
		return Decision{
			Intent:   IntentValidateAnswer,
			Language: sessionLanguage(sess),
			Verdict:  &verdict,
		}
	}

	// Keyword trigger: start a quiz without consulting the generator.
	if trimmed != "" && containsTrigger(trimmed) {
		tag := sess.Language
		if !tag.Valid() {
			tag = e.classifier.Classify(trimmed)
		}
		return Decision{
			Intent:   IntentNewQuizQuestion,
			Language: tag,
			NewUser:  !seen,
		}
	}

	// Default: a study question. Empty text falls through here too.
	tag := e.classifier.Classify(trimmed)
	return Decision{
		Intent:   IntentAnswerStudyQuestion,
		Language: tag,
		Prompt:   prompt.ForTag(tag),
		NewUser:  !seen,
	}
}

func sessionLanguage(sess UserSession) lang.Tag {
	if sess.Language.Valid() {
		return sess.Language
	}
	return lang.Fallback
}

// HandleTurn processes one inbound message and returns the ordered
// reply sequence. It is total: dependency failures are absorbed into
// fixed fallback messages and never surface to the caller.
func (e *Engine) HandleTurn(ctx context.Context, userID, rawText string) []string {
	userID = resolveUserID(userID)
	dec := e.Decide(userID, rawText)

	var messages []string

	switch dec.Intent {
	case IntentValidateAnswer:
		messages = e.validateTurn(ctx, userID, dec)
	case IntentNewQuizQuestion:
		messages = e.quizTurn(ctx, userID, dec)
	default:
		messages = e.studyTurn(ctx, userID, rawText, dec)
	}

	e.recordTurn(userID, dec.Intent)
	return messages
}

// validateTurn emits the verdict banner and immediately installs and
// asks the next question, keeping the user in quiz mode.
func (e *Engine) validateTurn(ctx context.Context, userID string, dec Decision) []string {
	messages := []string{compose.VerdictBanner(*dec.Verdict, dec.Language)}

	if e.activity != nil {
		if err := e.activity.RecordQuizResult(userID, dec.Verdict.Question, dec.Verdict.Correct); err != nil {
			e.log.Warn("record quiz result failed", "user_id", userID, "error", err.Error())
		}
	}

	return append(messages, e.askNext(ctx, userID, dec.Language)...)
}

// quizTurn starts quiz mode from a keyword trigger.
func (e *Engine) quizTurn(ctx context.Context, userID string, dec Decision) []string {
	var messages []string
	if dec.NewUser {
		messages = append(messages, compose.Welcome(dec.Language))
	}

	// Remember the language so quiz-only users get consistent banners
	// on later turns, same as the study path does.
	e.store.SetLanguage(userID, dec.Language)

	return append(messages, e.askNext(ctx, userID, dec.Language)...)
}

// askNext generates the next quiz question, installs it, and returns it
// rendered. The generation call happens before the store write, so no
// session lock is held while waiting on the backend.
func (e *Engine) askNext(ctx context.Context, userID string, tag lang.Tag) []string {
	rec, err := e.quizzes.Next(ctx, tag)
	if err != nil {
		// Only reachable when no fallback bank is wired behind the
		// generator; the user leaves quiz mode.
		e.log.Error("quiz generation failed with no fallback", "user_id", userID, "error", err.Error())
		return []string{compose.Apology(tag)}
	}

	e.store.SetPendingQuiz(userID, *rec)
	return []string{compose.Quiz(rec, tag)}
}

// studyTurn answers a study question via the generation backend and
// appends the scripted permission prompt.
func (e *Engine) studyTurn(ctx context.Context, userID, rawText string, dec Decision) []string {
	var messages []string
	if dec.NewUser {
		messages = append(messages, compose.Welcome(dec.Language))
	}

	// External call with no session lock held.
	answer, failed := e.generateAnswer(ctx, rawText, dec)
	if failed {
		messages = append(messages, compose.Apology(dec.Language))
	} else {
		messages = append(messages, compose.StudyAnswer(answer, dec.Language))
	}

	messages = append(messages, compose.Permission(dec.Language))

	// Persist turn state only after the slow call is done.
	e.store.SetLanguage(userID, dec.Language)
	if e.legacyLastQuestion {
		e.store.RecordLastQuestion(userID, rawText)
	}

	return messages
}

// generateAnswer calls the backend for a study answer. The second
// result is true when generation failed outright.
func (e *Engine) generateAnswer(ctx context.Context, rawText string, dec Decision) (string, bool) {
	ctx = llm.WithPurpose(ctx, "study-answer")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System:    dec.Prompt,
		UserText:  rawText,
		MaxTokens: e.maxAnswerTokens,
	})
	if err != nil {
		e.log.Warn("study answer generation failed", "error", err.Error())
		return "", true
	}
	return resp.Text(), false
}

func (e *Engine) recordTurn(userID string, intent Intent) {
	if e.activity == nil {
		return
	}
	if err := e.activity.RecordTurn(userID, intent.String()); err != nil {
		e.log.Warn("record turn failed", "user_id", userID, "error", err.Error())
	}
}
