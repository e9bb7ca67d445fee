package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	post_service "post-sync-client/internal/application/service/post"
	"post-sync-client/internal/application/store"
	"post-sync-client/internal/application/theme"
	model "post-sync-client/internal/domain/models"
	ports "post-sync-client/internal/domain/ports/output"
	"post-sync-client/internal/infrastructure/config"
	delivery_http "post-sync-client/internal/infrastructure/inbound/http"
	post_http "post-sync-client/internal/infrastructure/inbound/http/post"
	"post-sync-client/internal/infrastructure/inbound/http/stream"
	metrics_server "post-sync-client/internal/infrastructure/inbound/metrics"
	"post-sync-client/internal/infrastructure/logger"
	http_client "post-sync-client/internal/infrastructure/outbound/client/post/http"
	memory_client "post-sync-client/internal/infrastructure/outbound/client/post/memory"
	prometheus_metrics "post-sync-client/internal/infrastructure/outbound/metrics/prometheus"
	"post-sync-client/internal/infrastructure/outbound/notify"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	metrics.SetServiceHealth(true)

	var remote ports.PostClient
	switch cfg.Remote.Mode {
	case config.RemoteModeMemory:
		log.Info("Using in-memory post collection")
		remote = memory_client.NewPostClient(log)
	default:
		log.Info("Using remote post collection",
			slog.String("base_url", cfg.Remote.BaseURL),
			slog.Duration("timeout", cfg.Remote.Timeout))
		remote = http_client.NewPostClient(cfg.Remote.BaseURL, cfg.Remote.Timeout, log)
	}
	postClient := post_service.NewPostClientMetricsDecorator(remote, log, metrics)

	hub := stream.NewHub(log, metrics)
	sink := notify.MultiSink{notify.NewLogSink(log), notify.NewBroadcastSink(hub)}

	cycler := theme.NewCycler(cfg.Theme.Interval, log)
	defer cycler.Stop()

	postService := post_service.NewPostSyncService(
		postClient,
		store.NewPostStore(),
		sink,
		log,
		metrics,
		post_service.WithThemeCycler(cycler),
	)

	unsubscribe := postService.Subscribe(func(state model.AppState) {
		hub.Broadcast(model.StreamMessage{Type: model.StreamMessageState, Data: state})
	})
	defer unsubscribe()

	if cfg.Theme.Autostart {
		cycler.Start()
	}

	go func() {
		if err := postService.Load(ctx); err != nil {
			log.Warn("Initial load failed", slog.String("error", err.Error()))
		}
	}()

	postHTTPAPI := post_http.NewPostHTTPAPI(postService, log)
	httpServer := delivery_http.NewServer(postHTTPAPI, postService, hub, cfg.HTTPServer.Address, cfg.HTTPServer.Port, log, metrics)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)
	cycler.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
