package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/draft"
	"resume-builder/internal/layout"
	"resume-builder/internal/logging"
	"resume-builder/internal/usecase"
	"resume-builder/internal/wizard"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Init("resume-builder")

	cfg, err := config.Load()
	if err != nil {
		logging.Logger.WithError(err).Fatal("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slot, err := newSlot(ctx, cfg)
	if err != nil {
		logging.Logger.WithError(err).Fatal("draft slot unavailable")
	}
	store := draft.NewStore(slot)
	if _, found := store.Restore(ctx); found {
		logging.Logger.Info("restored saved draft")
	}
	stopAutosave, err := store.StartAutosave(cfg.AutosaveInterval)
	if err != nil {
		logging.Logger.WithError(err).Fatal("autosave setup failed")
	}

	var renderer usecase.Renderer = infra.NewFPDFRenderer()
	if cfg.Renderer == config.RendererChromium {
		renderer = infra.NewChromedpRenderer(cfg.ChromePath)
	}
	var exportOpts []usecase.ExporterOption
	if cfg.ArtifactDir != "" {
		exportOpts = append(exportOpts, usecase.WithArtifactStore(infra.NewDirArtifactStore(cfg.ArtifactDir)))
	}
	engine := layout.NewEngine(layout.WithTimestamp(time.Now))
	exporter := usecase.NewExporter(engine, renderer, infra.NewQREncoder(), exportOpts...)

	aiClient := ai.NewClient(ai.Config{
		APIKey:     cfg.OpenAIAPIKey,
		BaseURL:    cfg.OpenAIBaseURL,
		Model:      cfg.AIModel,
		Timeout:    cfg.AITimeout,
		MaxRetries: 2,
	})

	h := httpadapter.NewHandler(store, wizard.New(store), exporter, aiClient, repo.NewSnapshotsRepo())
	app := httpadapter.NewApp(h, httpadapter.Options{AIRequestsPerMinute: cfg.AIRateLimit})

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.WithField("port", cfg.Port).Info("server listening")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		logging.Logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			logging.Logger.WithError(err).Error("server failed")
		}
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logging.Logger.WithError(err).Warn("shutdown incomplete")
	}
	stopAutosave()

	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.SaveCurrent(saveCtx); err != nil {
		logging.Logger.WithError(err).Error("final draft save failed")
	}
}

func newSlot(ctx context.Context, cfg *config.Config) (draft.Slot, error) {
	if cfg.DraftBackend == config.BackendRedis {
		client, err := infra.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return infra.NewRedisSlot(client, cfg.DraftKey), nil
	}
	return infra.NewFileSlot(cfg.DraftPath), nil
}
