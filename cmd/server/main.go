package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"techindex/adapters/excel"
	"techindex/domain/index"
	"techindex/internal"
	"techindex/internal/config"
	"techindex/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level))

	weights := index.DefaultWeights()
	if cfg.Data.WeightsFile != "" {
		presets, err := config.LoadPresets(cfg.Data.WeightsFile)
		if err != nil {
			log.Fatalf("failed to load weight presets: %v", err)
		}
		weights, err = presets.Get(cfg.Data.Preset)
		if err != nil {
			log.Fatalf("failed to select weight preset: %v", err)
		}
	}

	app := ui.NewApp(ui.Config{
		Port:                 cfg.Server.Port,
		MaxConcurrentUploads: cfg.Server.MaxConcurrentLoad,
		Weights:              weights,
		Logger:               logger,
	})

	if cfg.Data.ExcelFile != "" {
		reader := excel.NewDataReader(cfg.Data.ExcelFile)
		rows, err := reader.ReadRows(context.Background())
		if err != nil {
			log.Fatalf("failed to read %s: %v", cfg.Data.ExcelFile, err)
		}
		rep := app.Session().LoadRows(rows, cfg.Data.ExcelFile)
		if !rep.IsValid {
			logger.Warn("preloaded file failed validation: %v", rep.Errors)
		} else {
			logger.Info("preloaded %d countries from %s (%d warnings)",
				len(app.Session().Records()), cfg.Data.ExcelFile, len(rep.Warnings))
		}
	}

	log.Fatal(app.Start())
}
