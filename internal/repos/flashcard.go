package repos

import (
	"time"

	"gorm.io/gorm"

	"github.com/petuhovskiy/notepick/internal/models"
)

type FlashcardRepo struct {
	db *gorm.DB
}

func NewFlashcardRepo(db *gorm.DB) *FlashcardRepo {
	return &FlashcardRepo{
		db: db,
	}
}

func (r *FlashcardRepo) Create(card *models.Flashcard) error {
	return r.db.Create(card).Error
}

// CountDue returns the number of cards scheduled at or before now.
func (r *FlashcardRepo) CountDue(now time.Time) (int64, error) {
	var n int64
	err := r.db.
		Model(&models.Flashcard{}).
		Where("next_repetition_at IS NOT NULL AND next_repetition_at <= ?", now).
		Count(&n).
		Error
	if err != nil {
		return 0, err
	}
	return n, nil
}
