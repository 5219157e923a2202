package services

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

// Cache keys for the public list endpoints.
const (
	CacheKeyProjects        = "projects"
	CacheKeyExperiences     = "experiences"
	CacheKeySkills          = "skills"
	CacheKeySkillCategories = "skills:categories"
)

// ContentCache is an in-process read-through cache for public lists. A nil
// *ContentCache (CACHE_TTL=0) always calls through.
type ContentCache struct {
	store *cache.Cache

	mu sync.Mutex
	// generation is bumped by Flush. A load that started in an older
	// generation is returned but not stored.
	generation uint64
}

func NewContentCache(ttl time.Duration) *ContentCache {
	if ttl <= 0 {
		log.Info("Content cache disabled.")
		return nil
	}
	return &ContentCache{store: cache.New(ttl, 2*ttl)}
}

// Remember returns the cached value for key or stores what load produces.
// Failed loads are not cached.
func Remember[T any](c *ContentCache, key string, load func() (T, error)) (T, error) {
	if c == nil {
		return load()
	}
	if cached, found := c.store.Get(key); found {
		if v, ok := cached.(T); ok {
			log.Debugf("Cache hit for '%s'.", key)
			return v, nil
		}
	}

	c.mu.Lock()
	generation := c.generation
	c.mu.Unlock()

	v, err := load()
	if err != nil {
		return v, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != generation {
		log.Debugf("Cache flushed while loading '%s', not storing.", key)
		return v, nil
	}
	c.store.Set(key, v, cache.DefaultExpiration)
	return v, nil
}

// Flush drops every entry. Called after any successful mutation.
func (c *ContentCache) Flush() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.store.Flush()
}
