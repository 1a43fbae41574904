package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryItem struct {
	value     []byte // bytes serializados, igual que haría Redis
	expiresAt time.Time
}

// MemoryCache es el fallback cuando Redis no está disponible al arrancar.
type MemoryCache struct {
	mu         sync.RWMutex
	items      map[string]memoryItem
	defaultTTL time.Duration
}

var _ Cache = (*MemoryCache)(nil)

func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		items:      make(map[string]memoryItem),
		defaultTTL: defaultTTL,
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || time.Now().UTC().After(item.expiresAt) {
		return false, nil // miss o expirado
	}
	if err := json.Unmarshal(item.value, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, val any, ttlSecs int) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}

	ttl := c.defaultTTL
	if ttlSecs > 0 {
		ttl = time.Duration(ttlSecs) * time.Second
	}

	c.mu.Lock()
	c.items[key] = memoryItem{value: data, expiresAt: time.Now().UTC().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}
