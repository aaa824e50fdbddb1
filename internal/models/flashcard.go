package models

import (
	"time"

	"gorm.io/gorm"
)

type Flashcard struct {
	gorm.Model

	NoteID uint `gorm:"index"`

	// Nil for cards that were never scheduled.
	NextRepetitionAt *time.Time `gorm:"index"`
}
