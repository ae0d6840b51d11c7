package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"previewforge/internal/archive"
	"previewforge/internal/config"
	"previewforge/internal/handler"
	"previewforge/internal/server"
	"previewforge/internal/store"
)

type App struct {
	server *server.Server
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	records := store.NewFromConfig(cfg.Store.PostgresDSN, filepath.Join(cfg.Store.FileDir, "records.json"))

	var archives *archive.S3Store
	if cfg.Archive.Enabled {
		archives, err = archive.NewS3Store(archive.S3Config{
			Endpoint:  cfg.Archive.Endpoint,
			Region:    cfg.Archive.Region,
			AccessKey: cfg.Archive.AccessKey,
			SecretKey: cfg.Archive.SecretKey,
			Bucket:    cfg.Archive.Bucket,
			UseSSL:    cfg.Archive.UseSSL,
		})
		if err != nil {
			// Export still works without uploads; downloads are served inline.
			log.Printf("archive store disabled: %v", err)
			archives = nil
		}
	}

	h, err := handler.New(records, archives, cfg.Store.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build handler: %w", err)
	}

	mux := server.NewMux(h)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
