package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/srikanthsurna/swipe-project/internal/common"
	"github.com/srikanthsurna/swipe-project/internal/export"
	"github.com/srikanthsurna/swipe-project/internal/extract"
	"github.com/srikanthsurna/swipe-project/internal/llm/gemini"
	"github.com/srikanthsurna/swipe-project/internal/server"
	"github.com/srikanthsurna/swipe-project/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	invoker, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to create model client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := invoker.Close(); err != nil {
			logger.Warn("model client close error", "error", err)
		}
	}()

	records := store.New()
	service := extract.NewService(logger, invoker, records)
	exporter := export.NewService(records, logger)
	handler := server.NewHandler(logger, service, records, exporter)
	router := server.NewRouter(logger, handler)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: http.MaxBytesHandler(router, cfg.Server.MaxUploadBytes),
	}

	go func() {
		logger.Info("server starting", "addr", cfg.Server.Addr, "model", cfg.AI.Model)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
