package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/eventbroker/nats"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/metrics"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/provider/minio"
	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/service/thumbnail"
	"github.com/prometheus/client_golang/prometheus"
)

// mediaworker renders grid thumbnails for objects uploaded straight to MinIO
func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, cfg.Provider.Folder, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}
	logger.Info("minio adapter initialized")

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	thumbnailService := thumbnail.NewThumbnailService(minioAdapter, m, cfg.Provider.Folder, logger)

	// Initialize NATS consumer
	natsConsumer, err := nats.NewNATSConsumer(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to create NATS consumer", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS consumer initialized")

	// Subscribe to NATS
	if err := natsConsumer.Subscribe(ctx, thumbnailService); err != nil {
		logger.Error("failed to subscribe to NATS", "error", err)
		_ = natsConsumer.Close()
		os.Exit(1)
	}
	logger.Info("NATS subscription active")

	// metrics only, the worker serves no API
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           m.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start metrics server", "error", err)
		}
	}()

	// Wait for termination signal
	<-ctx.Done()
	logger.Info("gracefully shutting down media worker")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown metrics server", "error", err)
	}

	// Close waits for the message in progress
	if err := natsConsumer.Close(); err != nil {
		logger.Error("failed to close NATS consumer during shutdown", "error", err)
	}

	logger.Info("media worker shutdown complete")
}
