package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/petuhovskiy/notepick/internal/models"
)

// SettingRepo is a key-value store on top of the settings table.
type SettingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) *SettingRepo {
	return &SettingRepo{
		db: db,
	}
}

// Get returns the value for key. ok is false if the key was never set.
func (r *SettingRepo) Get(ctx context.Context, key string) (val string, ok bool, err error) {
	var settings []models.Setting
	err = r.db.
		WithContext(ctx).
		Where("key = ?", key).
		Limit(1).
		Find(&settings).
		Error
	if err != nil {
		return "", false, fmt.Errorf("get setting: %w", err)
	}
	if len(settings) == 0 {
		return "", false, nil
	}
	return settings[0].Val, true, nil
}

func (r *SettingRepo) Set(ctx context.Context, key string, val string) error {
	err := r.db.
		WithContext(ctx).
		Exec("INSERT INTO settings (key, val, updated_at) VALUES (?, ?, NOW()) ON CONFLICT (key) DO UPDATE SET val = EXCLUDED.val, updated_at = EXCLUDED.updated_at", key, val).
		Error
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}
