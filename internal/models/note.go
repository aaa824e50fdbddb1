package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PropPriority is the property holding the note priority, stored as text.
const PropPriority = "priority"

// Note is a single document in the store. Tags are notes too.
type Note struct {
	gorm.Model

	// Title is used to find tag notes by name.
	Title string `gorm:"index"`

	Content string

	// Free-form properties, e.g. {"priority": "3"}.
	Properties datatypes.JSONMap `gorm:"type:jsonb"`
}

// NoteTag marks NoteID as tagged with the note TagID.
type NoteTag struct {
	NoteID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey;index"`
}

// NoteSource links a note to the note it was taken from.
type NoteSource struct {
	NoteID   uint `gorm:"primaryKey"`
	SourceID uint `gorm:"primaryKey"`

	// Sources are listed in ascending position.
	Position int
}
