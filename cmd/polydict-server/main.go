package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/epinault/polydict/internal/config"
	"github.com/epinault/polydict/internal/history"
	"github.com/epinault/polydict/internal/memcache"
	"github.com/epinault/polydict/internal/search"
	"github.com/epinault/polydict/internal/server"
	"github.com/epinault/polydict/internal/translator"
	"github.com/epinault/polydict/internal/wiktionary"
	"github.com/epinault/polydict/internal/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load(os.Getenv("POLYDICT_CONFIG"))
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}

	db, err := history.Open(cfg.History.DatabasePath)
	if err != nil {
		return fmt.Errorf("history.Open() > %w", err)
	}
	defer func() {
		_ = db.Close()
	}()
	historyRepo := history.NewDBRepository(db)

	pool := worker.NewPool(cfg.Workers)
	pool.Start(context.Background())
	defer pool.Close()

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	reader := wiktionary.NewReader(
		wiktionary.NewClient(time.Duration(cfg.Wiktionary.TimeoutSeconds)*time.Second),
		ttl,
		cfg.Cache.MaxEntries,
	)
	fanout := translator.NewFanout(
		translator.NewMyMemoryClient(
			cfg.Translator.Endpoint,
			cfg.Translator.Email,
			time.Duration(cfg.Translator.TimeoutSeconds)*time.Second,
		),
		pool,
		memcache.New[string](ttl, cfg.Cache.MaxEntries),
		cfg.Translator.Sentinel,
	)

	service := search.NewService(reader, fanout, historyRepo)
	handler := server.NewHandler(service, historyRepo)

	slog.Default().Info("Starting server", slog.String("address", cfg.Server.Address))
	return http.ListenAndServe(
		cfg.Server.Address,
		server.CORSMiddleware(cfg.Server.AllowedOrigin, h2c.NewHandler(handler.Routes(), &http2.Server{})),
	)
}
