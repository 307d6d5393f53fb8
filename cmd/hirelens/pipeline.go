package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hirelens/hirelens/internal/config"
	dbRedis "github.com/hirelens/hirelens/internal/db/redis"
	"github.com/hirelens/hirelens/internal/domain"
	"github.com/hirelens/hirelens/internal/metrics"
	"github.com/hirelens/hirelens/internal/repository/embcache"
	"github.com/hirelens/hirelens/internal/textproc"
	openaiTransport "github.com/hirelens/hirelens/internal/transport/openai"
	"github.com/hirelens/hirelens/internal/usecase/explain"
	"github.com/hirelens/hirelens/internal/usecase/ranking"
)

// pipeline bundles the wired services shared by the serve and rank commands.
type pipeline struct {
	Ranker    *ranking.Service
	Explainer *explain.Service
	Health    domain.HealthChecker

	closers []func()
}

// Close releases pipeline resources (the cache store, when enabled).
func (p *pipeline) Close() {
	for _, c := range p.closers {
		c()
	}
}

// buildPipeline is the composition root: OpenAI client, embedder chain
// (optionally wrapped in the Redis cache), ranking and explanation services.
func buildPipeline(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pipeline, error) {
	client := openaiTransport.NewClient(cfg.Embedding.APIKey, cfg.Embedding.BaseURL)

	base := openaiTransport.NewEmbedder(&openaiTransport.Config{
		Client:     client,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   cfg.Embedding.Provider,
		Logger:     logger,
	})

	p := &pipeline{Health: base}

	var embed ranking.Embedder = base
	if cfg.Cache.Enabled {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("create cache store: %w", err)
		}
		readiness := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			store.Close()
			return nil, fmt.Errorf("cache not ready: %w", err)
		}
		p.closers = append(p.closers, store.Close)

		embed = embcache.New(
			base, store, cfg.Embedding.Model,
			time.Duration(cfg.Cache.TTLHours)*time.Hour,
			metrics.EmbeddingCacheTotal, logger,
		)
		logger.Info("Embedding cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	p.Ranker = ranking.New(embed, textproc.DefaultLexicon(), logger)
	p.Explainer = explain.New(client, cfg.Explanation.Model, logger)
	return p, nil
}
