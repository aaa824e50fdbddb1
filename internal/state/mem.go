package state

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemStore keeps values in process memory. Values never expire.
type MemStore struct {
	cache *cache.Cache
}

func NewMemStore() *MemStore {
	return &MemStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *MemStore) Get(_ context.Context, key string) (string, bool, error) {
	if x, found := s.cache.Get(key); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (s *MemStore) Set(_ context.Context, key string, val string) error {
	s.cache.Set(key, val, cache.NoExpiration)
	return nil
}
