package main

import (
	"context"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"complaint-trends-service/internal/config"
	"complaint-trends-service/internal/controller"
	"complaint-trends-service/internal/db"
	httpserver "complaint-trends-service/internal/http"
	"complaint-trends-service/internal/logger"
	"complaint-trends-service/internal/repository"
	"complaint-trends-service/internal/service"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("connect db")
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool); err != nil {
		log.WithError(err).Fatal("migrate")
	}

	repo := repository.NewComplaintRepository(pool)

	var worker service.NotificationWorker
	if cfg.TrendNotifyEnabled {
		batchWorker := service.NewBatchNotificationWorker(repo, log.Entry, cfg.WorkerBufferSize, cfg.WorkerBatchSize, cfg.WorkerFlushEvery)
		defer batchWorker.Shutdown()
		worker = batchWorker
	}

	trendService := service.NewTrendService(repo, worker, log, cfg.TrendFacilityIgnoreWindow, cfg.TrendNotifyEnabled)
	trendController := controller.NewTrendController(trendService, cfg.TrendDefaultDays, cfg.TrendDefaultThreshold)

	server := httpserver.NewServer(cfg, trendController)

	log.WithField("addr", cfg.HTTPPort).Info("starting server")
	if err := server.Listen(cfg.HTTPPort); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
