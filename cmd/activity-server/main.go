// cmd/activity-server/main.go
package main

import (
	"context"
	"encoding/json"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"activity-service/internal/common/config"
	"activity-service/internal/common/events"
	"activity-service/internal/common/logger"
	"activity-service/internal/common/metrics"
	"activity-service/internal/common/notify"
	"activity-service/internal/common/observability"
	"activity-service/internal/registry"
	"activity-service/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")

	zapLog.Info("Starting activity server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	var tracing *observability.Tracing
	if cfg.Tracing.Enabled {
		tracing, err = observability.NewTracing(cfg.App.Name, cfg.Tracing.JaegerEndpoint)
		if err != nil {
			zapLog.Fatal("tracing setup failed", zap.Error(err))
		}
		defer tracing.Shutdown()
	}

	ctx := context.Background()

	// --- Build the registry ---
	var reg *registry.Registry
	if cfg.Registry.CatalogPath != "" {
		reg, err = registry.LoadCatalog(cfg.Registry.CatalogPath)
		if err != nil {
			zapLog.Fatal("catalog load failed", zap.Error(err))
		}
		zapLog.Info("Registry loaded from catalog",
			zap.String("path", cfg.Registry.CatalogPath),
			zap.Int("activities", reg.Len()),
		)
	} else {
		reg = registry.NewSeeded()
		zapLog.Info("Registry seeded", zap.Int("activities", reg.Len()))
	}

	for _, name := range reg.Names() {
		if a, ok := reg.Get(name); ok {
			metrics.ActivityParticipants.WithLabelValues(name).Set(float64(len(a.Participants)))
			metrics.ActivityCapacity.WithLabelValues(name).Set(float64(a.MaxParticipants))
		}
	}

	// --- Event announcer ---
	publisher := events.New(cfg.Events, log)
	defer publisher.Close()
	if cfg.Events.Enabled {
		if err := publisher.Ping(ctx); err != nil {
			zapLog.Fatal("redis connection failed", zap.Error(err))
		}
		zapLog.Info("Event announcer connected",
			zap.String("address", cfg.Events.Redis.Address),
			zap.String("channel", cfg.Events.Channel),
		)
	}

	// --- Confirmation mailer ---
	var mailer notify.Mailer = notify.NopMailer{}
	if cfg.Notifications.Email.Enabled {
		sesMailer, err := notify.NewSESMailer(ctx, cfg.Notifications.AWS.Region, cfg.Notifications.Email.FromEmail)
		if err != nil {
			zapLog.Fatal("mailer setup failed", zap.Error(err))
		}
		mailer = sesMailer
		zapLog.Info("Confirmation mailer enabled",
			zap.String("from", cfg.Notifications.Email.FromEmail),
		)
	}

	// --- API Server ---
	srv := server.New(
		&server.Config{StaticIndexPath: cfg.Server.StaticIndexPath},
		reg, publisher, mailer, obs, log,
	)

	apiServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      srv.Handler(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("API server listening", zap.String("address", cfg.Server.Address))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("API server failed", zap.Error(err))
		}
	}()

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Server.MetricsAddress))
		if err := http.ListenAndServe(cfg.Server.MetricsAddress, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down API server", zap.Error(err))
	}

	zapLog.Info("Activity server stopped gracefully")
}
