package ai

import (
	"context"

	mem "triptalk/pkg/memcache"
	"triptalk/pkg/logger"
)

// CachedGenerator answers repeated prompts from a GenerationCache. Only
// successful generations are cached.
type CachedGenerator struct {
	next  Generator
	cache mem.GenerationCache
	log   *logger.Logger
}

func NewCachedGenerator(next Generator, cache mem.GenerationCache, log *logger.Logger) *CachedGenerator {
	return &CachedGenerator{next: next, cache: cache, log: log}
}

func (c *CachedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if content, ok := c.cache.Get(prompt); ok {
		c.log.Debug("generation cache hit", "prompt_bytes", len(prompt))
		return content, nil
	}
	content, err := c.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	c.cache.Set(prompt, content)
	return content, nil
}
