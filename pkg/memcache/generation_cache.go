// pkg/memcache/generation_cache.go
package mem

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

type GenerationCache interface {
	// Get returns the document generated earlier for prompt, if it has not
	// expired.
	Get(prompt string) (string, bool)

	Set(prompt string, content string)

	Flush()
}

// GenerationResults keys generated documents by the SHA-256 of their prompt.
type GenerationResults struct {
	items *cache.Cache
}

// NewGenerationResults expires entries after ttl and sweeps expired entries
// every ttl/2.
func NewGenerationResults(ttl time.Duration) *GenerationResults {
	cleanup := ttl / 2
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &GenerationResults{
		items: cache.New(ttl, cleanup),
	}
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

func (g *GenerationResults) Get(prompt string) (string, bool) {
	v, ok := g.items.Get(promptKey(prompt))
	if !ok {
		return "", false
	}
	content, ok := v.(string)
	return content, ok
}

func (g *GenerationResults) Set(prompt string, content string) {
	g.items.Set(promptKey(prompt), content, cache.DefaultExpiration)
}

func (g *GenerationResults) Flush() {
	g.items.Flush()
}

func (g *GenerationResults) Len() int {
	return g.items.ItemCount()
}
