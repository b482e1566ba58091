// Package app wires the submission pipeline from configuration. Both the
// HTTP server and the Lambda entry point start here.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rrinconline/sticker-lab-backend/artwork"
	"github.com/rrinconline/sticker-lab-backend/config"
	"github.com/rrinconline/sticker-lab-backend/logger"
	"github.com/rrinconline/sticker-lab-backend/notify"
	"github.com/rrinconline/sticker-lab-backend/pipeline"
	"github.com/rrinconline/sticker-lab-backend/services"
	"github.com/rrinconline/sticker-lab-backend/store"
	"github.com/rrinconline/sticker-lab-backend/templates"
)

type App struct {
	Config       *config.Config
	Orchestrator *pipeline.Orchestrator
	Health       *services.HealthService

	closeStore func()
}

// New builds every collaborator. Metrics are registered on reg.
func New(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) (*App, error) {
	log := logger.GetLogger()

	mailer, err := notify.NewMailer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build mailer: %w", err)
	}
	notifier := notify.NewNotifierWithRegistry(mailer, cfg.Mail.Sender(),
		time.Duration(cfg.Mail.TimeoutSeconds)*time.Second, reg)

	backend, closeStore, err := store.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build store: %w", err)
	}
	persister := store.NewPersisterWithRegistry(backend, cfg.Storage, reg)

	linker, err := artwork.NewLinker(ctx, cfg)
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("failed to build artwork linker: %w", err)
	}

	checks := map[string]services.Pinger{}
	if persister.Enabled() {
		checks["storage"] = persister
	}

	log.Infow("Submission pipeline configured",
		"mailProvider", cfg.Mail.Provider,
		"storageEnabled", persister.Enabled(),
		"storageBackend", cfg.Storage.Backend,
		"staffRecipients", len(cfg.Mail.StaffRecipients()))

	return &App{
		Config: cfg,
		Orchestrator: pipeline.NewWithRegistry(pipeline.Dependencies{
			Renderer: templates.NewRenderer(cfg.Mail.StaffRecipients()),
			Notifier: notifier,
			Recorder: persister,
			Artwork:  linker,
		}, reg),
		Health:     services.NewHealthService(checks, cfg.Server.Version),
		closeStore: closeStore,
	}, nil
}

// Close releases store connections.
func (a *App) Close() {
	a.closeStore()
}
