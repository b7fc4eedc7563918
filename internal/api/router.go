package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/juribot/juribot-go/internal/advisory"
	"github.com/juribot/juribot-go/internal/analysis"
	"github.com/juribot/juribot-go/internal/api/handlers"
	"github.com/juribot/juribot-go/internal/api/middleware"
	"github.com/juribot/juribot-go/internal/cache"
	"github.com/juribot/juribot-go/internal/caselaw"
	"github.com/juribot/juribot-go/internal/config"
	"github.com/juribot/juribot-go/internal/extract"
	"github.com/juribot/juribot-go/internal/llm"
	"github.com/juribot/juribot-go/internal/pipeline"
	"github.com/juribot/juribot-go/internal/queue"
	"github.com/juribot/juribot-go/internal/store"
	"github.com/juribot/juribot-go/internal/textclean"
)

type Router struct {
	mux   *chi.Mux
	db    *pgxpool.Pool
	redis *redis.Client
	cfg   *config.Config
	llmGW llm.Gateway
}

func NewRouter(ctx context.Context, db *pgxpool.Pool, rdb *redis.Client, cfg *config.Config) (*Router, error) {
	gw, err := llm.NewGateway(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("init llm gateway: %w", err)
	}
	return &Router{
		mux:   chi.NewRouter(),
		db:    db,
		redis: rdb,
		cfg:   cfg,
		llmGW: gw,
	}, nil
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	rl := middleware.NewRateLimiter(float64(rt.cfg.Server.RateLimitRPS), rt.cfg.Server.RateLimitBurst)
	r.Use(rl.Limit)

	// Health endpoints
	health := handlers.NewHealthHandler(rt.db, rt.redis)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	// Build the ingestion pipeline.
	ocr := extract.NewOCRService(rt.cfg.OCR.TesseractPath, rt.cfg.OCR.PdftoppmPath, rt.cfg.OCR.Languages, rt.cfg.OCR.RenderDPI)
	extractor := extract.NewExtractor(ocr, rt.cfg.Pipeline.ScannedThreshold)

	cleanOpts := textclean.DefaultOptions()
	if rt.cfg.Pipeline.HeaderFooterRepeat > 0 {
		cleanOpts.HeaderFooterRepeat = rt.cfg.Pipeline.HeaderFooterRepeat
	}
	cleaner := textclean.New(cleanOpts)

	var tagger analysis.EntityTagger
	if rt.cfg.Tagger.BaseURL != "" {
		tagger = analysis.NewHTTPTagger(rt.cfg.Tagger.BaseURL)
	}
	analyzer := analysis.New(tagger)

	logger := slog.Default()
	advisorySvc := advisory.NewService(rt.llmGW, rt.cfg.Pipeline.AdvisoryMaxChars, logger)
	pipe := pipeline.New(extractor, cleaner, analyzer, advisorySvc)

	st := store.New(rt.db)
	c := cache.NewCache(rt.redis)
	queueClient := queue.NewClient(rt.cfg.Redis)

	caselawSvc := caselaw.NewService(caselaw.NewPgStore(rt.db), rt.llmGW, advisorySvc, logger)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		docH := handlers.NewDocumentHandler(pipe, st, c)
		r.Route("/documents", func(r chi.Router) {
			r.Post("/analyze", docH.Analyze)
			r.Get("/", docH.List)
			r.Get("/{id}", docH.Get)
			r.Get("/{id}/analyses", docH.ListAnalyses)
		})

		advisoryH := handlers.NewAdvisoryHandler(advisorySvc, st, queueClient)
		r.Post("/documents/{id}/advisory", advisoryH.Generate)
		r.Post("/translate", advisoryH.Translate)
		r.Post("/costs/estimate", advisoryH.EstimateCosts)

		caselawH := handlers.NewCaseLawHandler(caselawSvc, st, queueClient)
		r.Route("/caselaw", func(r chi.Router) {
			r.Post("/search", caselawH.Search)
			r.Post("/index", caselawH.Index)
		})

		r.Get("/stats", docH.Stats)
	})

	return r
}
