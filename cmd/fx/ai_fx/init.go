package ai_fx

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"
	"triptalk/internal/config"
	"triptalk/pkg/ai"
	"triptalk/pkg/logger"
	mem "triptalk/pkg/memcache"
)

var Module = fx.Provide(provideGenerator)

func provideGenerator(lc fx.Lifecycle, cfg config.Config, cache mem.GenerationCache, log *logger.Logger) (ai.Generator, error) {
	var gen ai.Generator
	switch cfg.AIProvider {
	case config.ProviderGemini:
		g, err := ai.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		gen = g
	case config.ProviderOpenAI:
		gen = ai.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		return nil, fmt.Errorf("unsupported AI_PROVIDER %q", cfg.AIProvider)
	}

	if closer, ok := gen.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}

	log.Info("generator ready", "provider", cfg.AIProvider, "cache_ttl", cfg.GenerationCacheTTL.String())
	if cache != nil {
		return ai.NewCachedGenerator(gen, cache, log), nil
	}
	return gen, nil
}
