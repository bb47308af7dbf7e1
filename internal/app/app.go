// Package app wires the service together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/padhakulabs/padhaku/internal/activity"
	"github.com/padhakulabs/padhaku/internal/config"
	"github.com/padhakulabs/padhaku/internal/lang"
	"github.com/padhakulabs/padhaku/internal/llm"
	"github.com/padhakulabs/padhaku/internal/logger"
	"github.com/padhakulabs/padhaku/internal/quiz"
	"github.com/padhakulabs/padhaku/internal/session"
	"github.com/padhakulabs/padhaku/internal/webhook"
)

// App is the assembled service.
type App struct {
	cfg      config.Config
	log      *logger.Logger
	server   *http.Server
	activity *activity.Store
}

// New assembles the service from configuration. The returned App owns
// the activity store; Run closes it on shutdown.
func New(ctx context.Context, cfg config.Config, log *logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, log)
	if err != nil {
		return nil, fmt.Errorf("init generation backend: %w", err)
	}

	bank, err := quiz.NewBank()
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	generator := quiz.WithFallback(
		quiz.NewGenerator(provider, quiz.DefaultConfig()),
		bank,
		log,
	)

	var act *activity.Store
	if cfg.DBPath != "" {
		act, err = activity.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open activity store: %w", err)
		}
	}

	engine := session.NewEngine(session.Options{
		Store:              session.NewMemoryStore(),
		Classifier:         lang.NewClassifier(lang.NewTrigramDetector(), log),
		Provider:           provider,
		Quizzes:            generator,
		Activity:           activityRecorder(act),
		Logger:             log,
		LegacyLastQuestion: cfg.LegacyLastQuestion,
	})

	handler := webhook.NewHandler(engine, act, log)
	router := webhook.NewRouter(ginMode(cfg.Mode), handler)

	return &App{
		cfg: cfg,
		log: log,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		activity: act,
	}, nil
}

// activityRecorder converts a possibly-nil store into the engine's
// optional recorder without producing a typed-nil interface.
func activityRecorder(act *activity.Store) session.ActivityRecorder {
	if act == nil {
		return nil
	}
	return act
}

func ginMode(mode string) string {
	if mode == "debug" {
		return "debug"
	}
	return "release"
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", "addr", a.cfg.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		a.closeActivity()
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := a.server.Shutdown(shutdownCtx)
	a.closeActivity()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

func (a *App) closeActivity() {
	if a.activity == nil {
		return
	}
	if err := a.activity.Close(); err != nil {
		a.log.Warn("close activity store", "error", err.Error())
	}
}
