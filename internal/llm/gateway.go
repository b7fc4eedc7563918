package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/juribot/juribot-go/internal/config"
)

type gateway struct {
	providers        map[string]Provider
	defaultProvider  string
	fallbackProvider string
	maxRetries       int
}

// NewGateway builds the provider map from whatever keys are configured.
// Gemini is the primary advisory backend; Anthropic and OpenAI serve as
// fallbacks and OpenAI additionally provides embeddings.
func NewGateway(ctx context.Context, cfg config.LLMConfig) (Gateway, error) {
	g := &gateway{
		providers:        make(map[string]Provider),
		defaultProvider:  cfg.DefaultProvider,
		fallbackProvider: cfg.FallbackProvider,
		maxRetries:       cfg.MaxRetries,
	}

	if cfg.GeminiKey != "" {
		p, err := NewGeminiProvider(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("init gemini provider: %w", err)
		}
		g.providers["gemini"] = p
	}
	if cfg.AnthropicKey != "" {
		g.providers["anthropic"] = NewAnthropicProvider(cfg.AnthropicKey)
	}
	if cfg.OpenAIKey != "" {
		g.providers["openai"] = NewOpenAIProvider(cfg.OpenAIKey)
	}

	return g, nil
}

func (g *gateway) Provider(name string) (Provider, error) {
	p, ok := g.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %q not configured", name)
	}
	return p, nil
}

func (g *gateway) HasEmbeddings() bool {
	for name := range g.providers {
		if name == "gemini" || name == "openai" {
			return true
		}
	}
	return false
}

func (g *gateway) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	providerName := req.Provider
	if providerName == "" {
		providerName = g.defaultProvider
	}

	resp, err := g.completeWithRetry(ctx, providerName, req)
	if err != nil && g.fallbackProvider != "" && g.fallbackProvider != providerName {
		slog.Warn("primary provider failed, trying fallback",
			"primary", providerName,
			"fallback", g.fallbackProvider,
			"error", err,
		)
		return g.completeWithRetry(ctx, g.fallbackProvider, req)
	}
	return resp, err
}

func (g *gateway) completeWithRetry(ctx context.Context, providerName string, req CompletionRequest) (*CompletionResponse, error) {
	p, err := g.Provider(providerName)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * 500 * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			slog.Debug("retrying LLM call", "provider", providerName, "attempt", attempt)
		}

		resp, err := p.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("all retries exhausted for %s: %w", providerName, lastErr)
}

func (g *gateway) Embed(ctx context.Context, input []string) ([][]float32, error) {
	// Prefer the default provider when it can embed, otherwise fall back
	// to whichever configured provider can.
	for _, name := range []string{g.defaultProvider, "gemini", "openai"} {
		p, ok := g.providers[name]
		if !ok {
			continue
		}
		embeddings, err := p.Embed(ctx, input)
		if err == nil {
			return embeddings, nil
		}
		slog.Warn("embedding provider failed", "provider", name, "error", err)
	}
	return nil, fmt.Errorf("no embedding-capable provider configured")
}
