package main

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/rs/cors"

	conversionapp "osmcad/internal/application/conversion"
	"osmcad/internal/config"
	"osmcad/internal/infrastructure/activity"
	"osmcad/internal/infrastructure/filesystem"
	"osmcad/internal/infrastructure/python"
	"osmcad/internal/logger"
	httptransport "osmcad/internal/transport/http"
)

func main() {
	cfg := config.Load()
	log := logger.Init("osmcad")

	store := filesystem.NewStore(cfg.UploadsDir, cfg.OutputsDir)
	if err := store.EnsureDirs(); err != nil {
		log.Fatal().Err(err).Msg("storage init failed")
	}

	runner := python.NewRunner(cfg.ConverterScript)
	recorder := activity.NewRecorder(cfg.ActivityLogFile)
	if cfg.ActivityLogFile != "" {
		_ = filesystem.EnsureParentDir(cfg.ActivityLogFile)
	}

	service := conversionapp.NewService(store, runner, runner, recorder, log, cfg.HistoryLimit)
	service.StartReaper(context.Background(),
		time.Duration(cfg.ReaperIntervalMins)*time.Minute,
		time.Duration(cfg.JobRetentionMins)*time.Minute)

	handler := httptransport.NewHandler(service, store)
	router := httptransport.NewRouter(handler)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	})

	if _, ok := runner.Locate(); !ok {
		log.Warn().Str("script", filepath.Clean(cfg.ConverterScript)).Msg("No converter runtime found; submissions will fail until one is installed")
	}

	log.Info().Str("addr", cfg.ServerAddr).Msg("Server started")
	if err := http.ListenAndServe(cfg.ServerAddr, c.Handler(router)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
