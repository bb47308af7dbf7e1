package quiz

import (
	"context"

	"github.com/padhakulabs/padhaku/internal/lang"
	"github.com/padhakulabs/padhaku/internal/logger"
)

// FallbackGenerator is a decorator that serves from a backup Generator
// when the primary fails. With a Bank as backup, Next is total.
type FallbackGenerator struct {
	primary Generator
	backup  Generator
	log     *logger.Logger
}

// WithFallback wraps primary with a backup Generator.
func WithFallback(primary, backup Generator, log *logger.Logger) *FallbackGenerator {
	return &FallbackGenerator{primary: primary, backup: backup, log: log}
}

func (f *FallbackGenerator) Next(ctx context.Context, tag lang.Tag) (*Record, error) {
	rec, err := f.primary.Next(ctx, tag)
	if err == nil {
		return rec, nil
	}

	f.log.Warn("quiz generation fell back to question bank", "error", err.Error())
	return f.backup.Next(ctx, tag)
}
