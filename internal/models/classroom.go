package models

import "time"

// ClassroomRecord stores the class assignment and grade for a student.
type ClassroomRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"user_id"`
	ClassName string    `gorm:"size:255;not null" json:"class_name"`
	Grade     int       `gorm:"not null;default:0" json:"grade"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
