package models

import "time"

// Setting is a synced key-value pair.
type Setting struct {
	Key       string `gorm:"primaryKey"`
	Val       string
	UpdatedAt time.Time
}
