package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/padhakulabs/padhaku/internal/lang"
	"github.com/padhakulabs/padhaku/internal/llm"
)

// Generator produces the next quiz question for a user.
type Generator interface {
	Next(ctx context.Context, tag lang.Tag) (*Record, error)
}

// Config tunes LLM-backed question generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation settings suited to short quiz output.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.9,
	}
}

const systemPrompt = `You write quiz questions for students preparing for Indian competitive exams.
Generate one multiple-choice question from GK, GS or Current Affairs.
Keep the question short and factual. Provide exactly 4 options and mark the correct one.
Do not repeat well-worn textbook examples; vary the topic on every request.`

var languageHints = map[lang.Tag]string{
	lang.English:  "Write the question and options in English.",
	lang.Hindi:    "Write the question and options in Hindi (Devanagari script).",
	lang.Hinglish: "Write the question and options in Hinglish (Hindi in Latin script, mixed with English terms).",
}

// LLMGenerator implements Generator using the generation backend.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates an LLMGenerator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before conversion.
type questionOutput struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Next generates one quiz question in the given language.
func (g *LLMGenerator) Next(ctx context.Context, tag lang.Tag) (*Record, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	hint, ok := languageHints[tag]
	if !ok {
		hint = languageHints[lang.Hinglish]
	}

	req := llm.Request{
		System:      systemPrompt,
		UserText:    hint,
		Schema:      questionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	if len(raw.Options) != 4 {
		return nil, fmt.Errorf("quiz response has %d options, want 4", len(raw.Options))
	}

	return &Record{
		Question: raw.Question,
		Answer:   Normalize(raw.Answer),
		Options:  raw.Options,
	}, nil
}
