package handoff

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryKV keeps handoff values in process memory. Entries expire ttl after
// their last write.
type MemoryKV struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewMemoryKV creates a MemoryKV that purges expired entries every
// cleanupInterval.
func NewMemoryKV(ttl, cleanupInterval time.Duration) *MemoryKV {
	return &MemoryKV{cache: gocache.New(ttl, cleanupInterval), ttl: ttl}
}

func memoryKey(sid, key string) string { return sid + ":" + key }

func (m *MemoryKV) Get(_ context.Context, sid, key string) (string, bool, error) {
	v, ok := m.cache.Get(memoryKey(sid, key))
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	return s, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, sid, key, value string) error {
	m.cache.Set(memoryKey(sid, key), value, m.ttl)
	return nil
}

func (m *MemoryKV) Remove(_ context.Context, sid, key string) error {
	m.cache.Delete(memoryKey(sid, key))
	return nil
}

// Len reports the number of live entries.
func (m *MemoryKV) Len() int { return m.cache.ItemCount() }
