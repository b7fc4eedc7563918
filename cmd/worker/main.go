package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"

	"github.com/juribot/juribot-go/internal/advisory"
	"github.com/juribot/juribot-go/internal/caselaw"
	"github.com/juribot/juribot-go/internal/config"
	"github.com/juribot/juribot-go/internal/database"
	"github.com/juribot/juribot-go/internal/llm"
	"github.com/juribot/juribot-go/internal/queue"
	"github.com/juribot/juribot-go/internal/queue/workers"
	"github.com/juribot/juribot-go/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	gw, err := llm.NewGateway(ctx, cfg.LLM)
	if err != nil {
		slog.Error("failed to init llm gateway", "error", err)
		os.Exit(1)
	}

	st := store.New(db)
	advisorySvc := advisory.NewService(gw, cfg.Pipeline.AdvisoryMaxChars, slog.Default())
	caselawSvc := caselaw.NewService(caselaw.NewPgStore(db), gw, advisorySvc, slog.Default())

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	registry := queue.NewHandlersRegistry()

	advisoryWorker := workers.NewAdvisoryWorker(st, advisorySvc)
	caselawWorker := workers.NewCaseLawWorker(caselawSvc)

	registry.Register(queue.TypeAdvisoryGenerate, asynq.HandlerFunc(advisoryWorker.ProcessTask))
	registry.Register(queue.TypeCaseLawIndex, asynq.HandlerFunc(caselawWorker.ProcessTask))

	slog.Info("starting worker", "concurrency", 10)
	if err := srv.Run(registry.Mux()); err != nil {
		slog.Error("worker error", "error", err)
		os.Exit(1)
	}
}
