package memcache_fx

import (
	"go.uber.org/fx"
	"triptalk/internal/config"
	mem "triptalk/pkg/memcache"
)

var Module = fx.Provide(provideGenerationCache)

// provideGenerationCache returns nil when caching is turned off.
func provideGenerationCache(cfg config.Config) mem.GenerationCache {
	if cfg.GenerationCacheTTL <= 0 {
		return nil
	}
	return mem.NewGenerationResults(cfg.GenerationCacheTTL)
}
