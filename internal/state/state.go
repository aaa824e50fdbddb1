// Package state keeps small synced values, like the last picked category.
package state

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/petuhovskiy/notepick/internal/conf"
	"github.com/petuhovskiy/notepick/internal/repos"
)

var ErrUnknownBackend = fmt.Errorf("unknown state backend")

const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Store is a key-value store. Get returns ok=false for keys that were never set.
type Store interface {
	Get(ctx context.Context, key string) (val string, ok bool, err error)
	Set(ctx context.Context, key string, val string) error
}

var (
	_ Store = (*repos.SettingRepo)(nil)
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemStore)(nil)
)

// New creates the store configured by cfg.StateBackend.
func New(ctx context.Context, cfg *conf.App, db *gorm.DB) (Store, error) {
	switch cfg.StateBackend {
	case BackendPostgres, "":
		return repos.NewSettingRepo(db), nil
	case BackendRedis:
		return NewRedisStore(ctx, cfg.RedisURL)
	case BackendMemory:
		return NewMemStore(), nil
	default:
		return nil, fmt.Errorf("backend %q: %w", cfg.StateBackend, ErrUnknownBackend)
	}
}
