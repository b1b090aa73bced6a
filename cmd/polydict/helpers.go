package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/epinault/polydict/internal/config"
	"github.com/epinault/polydict/internal/history"
	"github.com/epinault/polydict/internal/memcache"
	"github.com/epinault/polydict/internal/search"
	"github.com/epinault/polydict/internal/translator"
	"github.com/epinault/polydict/internal/wiktionary"
	"github.com/epinault/polydict/internal/worker"
)

// app bundles the wired dependencies a command needs.
type app struct {
	cfg         *config.Config
	service     *search.Service
	historyRepo history.Repository

	pool *worker.Pool
	db   *sqlx.DB
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}

	db, err := history.Open(cfg.History.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("history.Open() > %w", err)
	}
	historyRepo := history.NewDBRepository(db)

	pool := worker.NewPool(cfg.Workers)
	pool.Start(ctx)

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	reader := wiktionary.NewReader(
		wiktionary.NewClient(time.Duration(cfg.Wiktionary.TimeoutSeconds)*time.Second),
		ttl,
		cfg.Cache.MaxEntries,
	)

	backend := translator.NewMyMemoryClient(
		cfg.Translator.Endpoint,
		cfg.Translator.Email,
		time.Duration(cfg.Translator.TimeoutSeconds)*time.Second,
	)
	fanout := translator.NewFanout(
		backend,
		pool,
		memcache.New[string](ttl, cfg.Cache.MaxEntries),
		cfg.Translator.Sentinel,
	)

	return &app{
		cfg:         cfg,
		service:     search.NewService(reader, fanout, historyRepo),
		historyRepo: historyRepo,
		pool:        pool,
		db:          db,
	}, nil
}

func (a *app) Close() {
	a.pool.Close()
	_ = a.db.Close()
}
