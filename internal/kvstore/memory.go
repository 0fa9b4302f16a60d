package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-process store backed by freecache. Entries never expire,
// but freecache may evict them when sizeBytes is exhausted.
type MemoryStore struct {
	cache *freecache.Cache
}

func NewMemoryStore(sizeBytes int) *MemoryStore {
	return &MemoryStore{
		cache: freecache.NewCache(sizeBytes),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	val, err := s.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("memory get [%s]: %w", key, err)
	}
	return string(val), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	if err := s.cache.Set([]byte(key), []byte(value), 0); err != nil {
		return fmt.Errorf("memory set [%s]: %w", key, err)
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.cache.Clear()
	return nil
}
