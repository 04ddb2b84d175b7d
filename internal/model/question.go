package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is read-only inside the grading subsystem; MaxPoints supplies
// the denominator for score aggregation.
type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	TestID      uint           `json:"test_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Prompt      string         `json:"prompt" gorm:"type:text;not null"`
	OrderInTest int            `json:"order_in_test" gorm:"not null"`
	MaxPoints   float64        `json:"max_points" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
