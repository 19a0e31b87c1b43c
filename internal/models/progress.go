package models

import "time"

// ProgressRecord tracks how far a single student has advanced in their course.
// Each record is owned by exactly one student and only teachers may change it.
type ProgressRecord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"type:uuid;index;not null" json:"user_id"`
	ProgressPercent int       `gorm:"not null;default:0" json:"progress_percent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
