package main

import (
	"context"
	"log"
	"os"
	"time"

	"ministry-jobs-parser/internal/app"
	"ministry-jobs-parser/internal/config"
	"ministry-jobs-parser/internal/fetcher"
	"ministry-jobs-parser/internal/observability"
	"ministry-jobs-parser/internal/scraper"
	"ministry-jobs-parser/internal/storage"
	"ministry-jobs-parser/internal/storage/memory"
	"ministry-jobs-parser/internal/storage/mssql"
)

func main() {
	configPath := "configs/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := observability.NewLogger(observability.Options{
		LogPath:    cfg.Observability.LogPath,
		LogLevel:   cfg.Observability.LogLevel,
		MaxSizeMB:  cfg.Observability.MaxSizeMB,
		MaxBackups: cfg.Observability.MaxBackups,
		MaxAgeDays: cfg.Observability.MaxAgeDays,
	})
	defer func() {
		if err := logger.Close(); err != nil {
			log.Printf("Failed to close logger: %v", err)
		}
	}()

	catalog, err := config.LoadSourceCatalog(cfg.SourcesFile)
	if err != nil {
		log.Fatalf("Failed to load source catalog: %v", err)
	}

	var repo storage.Repository
	switch cfg.Storage.Driver {
	case "mssql":
		repo, err = mssql.NewRepository(cfg.Storage.DSN, cfg.GetCommandTimeout(), logger)
		if err != nil {
			log.Fatalf("Failed to open storage: %v", err)
		}
	case "memory":
		repo = memory.NewRepository()
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err.Error())
		}
	}()

	seed := make([]storage.Source, 0, len(catalog))
	for _, entry := range catalog {
		seed = append(seed, storage.Source{
			Name:   entry.Name,
			URL:    entry.URL,
			Active: true,
		})
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	seeded, err := repo.SeedSources(seedCtx, seed)
	cancelSeed()
	if err != nil {
		log.Fatalf("Failed to seed sources: %v", err)
	}
	if seeded > 0 {
		logger.Info("Seeded source catalog", "count", seeded)
	}

	f, err := fetcher.NewFetcher(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create fetcher: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Error("Failed to close fetcher", "error", err.Error())
		}
	}()

	orch := app.NewOrchestrator(cfg, logger, f, scraper.NewScraper(), repo)
	sched := app.NewScheduler(orch, logger, cfg.GetScanInterval(), cfg.Scheduler.RetentionDays)

	ctx, cancel := app.GracefulShutdown(logger)
	defer cancel()

	sched.Start(ctx)
	logger.Info("Pipeline stopped")
}
