package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ladle/internal/config"
	"ladle/internal/middleware"
	"ladle/internal/observability"
	"ladle/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		middleware.Logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.TracingEnabled {
		shutdown, err := observability.InitTracing(observability.TracingConfig{
			ServiceName:  "ladle-api",
			Environment:  cfg.Env,
			Enabled:      true,
			Exporter:     cfg.TracingExport,
			OTLPEndpoint: cfg.OTLPEndpoint,
			SamplerRatio: cfg.SamplerRatio,
		})
		if err != nil {
			middleware.Logger.Error("failed to init tracing", "error", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					middleware.Logger.Error("tracing shutdown failed", "error", err)
				}
			}()
		}
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		middleware.Logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := srv.Start(); err != nil {
			middleware.Logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	middleware.Logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		middleware.Logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	middleware.Logger.Info("server stopped cleanly")
}
