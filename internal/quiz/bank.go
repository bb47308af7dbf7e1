package quiz

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/padhakulabs/padhaku/internal/lang"
)

//go:embed questions.json
var bankFS embed.FS

// Bank is a Generator backed by a fixed built-in question set. It never
// fails, which makes it the safety net behind the LLM generator: quiz
// mode must always be able to produce a next question.
type Bank struct {
	mu        sync.Mutex
	questions []Record
	lastIdx   int
}

// NewBank loads the embedded question set.
func NewBank() (*Bank, error) {
	data, err := bankFS.ReadFile("questions.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded questions: %w", err)
	}

	var questions []Record
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse embedded questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("embedded question bank is empty")
	}

	return &Bank{questions: questions, lastIdx: -1}, nil
}

// Next returns a random bank question, avoiding an immediate repeat.
// The language tag is ignored: bank questions carry their own language.
func (b *Bank) Next(_ context.Context, _ lang.Tag) (*Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := rand.IntN(len(b.questions))
	if idx == b.lastIdx && len(b.questions) > 1 {
		idx = (idx + 1) % len(b.questions)
	}
	b.lastIdx = idx

	q := b.questions[idx]
	return &q, nil
}

// Size returns the number of questions in the bank.
func (b *Bank) Size() int {
	return len(b.questions)
}
