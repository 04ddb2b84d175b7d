package model

import (
	"time"

	"gorm.io/gorm"
)

// Notification categories.
const (
	NotificationCategoryGrade = "grade"
)

// Notification is an append-only record delivered to a single user.
// The grading pipeline creates exactly one per successful call that
// reaches the notifier stage.
type Notification struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	Title     string         `json:"title" gorm:"not null"`
	Body      string         `json:"body" gorm:"type:text"`
	Category  string         `json:"category" gorm:"not null;index"`
	TestID    *uint          `json:"test_id,omitempty" gorm:"index"`
	Read      bool           `json:"read" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
