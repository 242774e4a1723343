package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"igclean/internal/config"
	"igclean/internal/handler"
	"igclean/internal/http"
	"igclean/internal/service"
	"igclean/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	cleanService := service.NewCleanService()
	cleanHandler := handler.NewCleanHandler(cleanService)
	e := http.NewRouter(cleanHandler, cfg.StaticDir, cfg.RateLimit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "module", "main", "addr", cfg.Addr, "static_dir", cfg.StaticDir, "rate_limit", cfg.RateLimit)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Error("server failed", "module", "main", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", "module", "main")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "module", "main", "error", err)
		os.Exit(1)
	}
}
