package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/chi"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/chi/v1/media"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/chi/v1/upload"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/chi/v1/usage"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/metrics"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/notification/websocket"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/provider/cloudinary"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/provider/minio"
	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/port"
	mediaservice "github.com/Charlelielataste/escoffier-gallery/internal/core/service/media"
	uploadservice "github.com/Charlelielataste/escoffier-gallery/internal/core/service/upload"
	usageservice "github.com/Charlelielataste/escoffier-gallery/internal/core/service/usage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	//provider
	provider, err := newProvider(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init media provider", "backend", cfg.Provider.Backend, "error", err)
		os.Exit(1)
	}
	if err := provider.CheckConfigured(); err != nil {
		// listing and usage report the error per request
		logger.Warn("media provider is not fully configured", "backend", provider.Name(), "error", err)
	}
	logger.Info("media provider initialized", "backend", provider.Name(), "folder", cfg.Provider.Folder)

	//metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	//services
	mediaService := mediaservice.NewMediaService(provider, m, cfg.Provider.Folder, cfg.Listing, logger)
	usageService := usageservice.NewUsageService(provider, logger)
	uploadService := uploadservice.NewUploadService(provider, m, cfg.Provider.Folder, cfg.Upload, logger)

	var wg sync.WaitGroup

	//usage stream
	var (
		hub  *websocket.Hub
		feed port.UsageFeed
	)
	if cfg.Usage.PollEnabled {
		hub = websocket.NewHub(logger)
		poller := usageservice.NewPoller(usageService, hub, m, cfg.Usage, logger)
		feed = poller

		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.Run(ctx)
		}()
		go func() {
			defer wg.Done()
			poller.Run(ctx)
		}()
	}

	//http
	handlers := chi.Handlers{
		Media:  media.NewMediaHandlerV1(mediaService, logger),
		Usage:  usage.NewUsageHandlerV1(usageService, feed, hub, cfg.Env, cfg.Server, cfg.Usage, logger),
		Upload: upload.NewUploadHandlerV1(uploadService, cfg.Upload, logger),
	}
	limiter := chi.NewRateLimiter(cfg.RateLimit)

	router := chi.NewRouter(logger, m, limiter, handlers, cfg.Server, cfg.Env)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func newLogger(env config.Env) *slog.Logger {
	if env.IsProd() {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func newProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.MediaProvider, error) {
	switch cfg.Provider.Backend {
	case "cloudinary":
		return cloudinary.NewAdapter(cfg.Cloudinary, logger)
	case "minio":
		initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return minio.NewAdapter(initCtx, cfg.Minio, cfg.Provider.Folder, logger)
	default:
		return nil, fmt.Errorf("unknown media provider %q, expected cloudinary or minio", cfg.Provider.Backend)
	}
}
