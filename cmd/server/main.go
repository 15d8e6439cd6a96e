package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rafaelqg/painel-vendas/internal/config"
	"github.com/rafaelqg/painel-vendas/internal/httpx"
	"github.com/rafaelqg/painel-vendas/internal/ingest"
	"github.com/rafaelqg/painel-vendas/internal/store"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("config", slog.String("err", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	st := store.NewMemoryStore()
	fetcher := ingest.NewFetcher(ingest.NewHTTPClient(cfg.HTTPTimeout))

	r := httpx.NewRouter(logger, st, fetcher)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
