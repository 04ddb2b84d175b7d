package model

import (
	"time"

	"gorm.io/gorm"
)

// Attempt submission states.
const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusSubmitted  = "submitted"
)

// TestAttempt is one student's submission instance for a test. Score is a
// percentage in [0,100], nil until the first grading pass; only the
// grading pipeline's finalize stage writes it.
type TestAttempt struct {
	ID          uint                  `gorm:"primarykey" json:"id"`
	TestID      uint                  `json:"test_id" gorm:"not null;index"`
	Test        Test                  `json:"test,omitempty" gorm:"foreignKey:TestID"`
	StudentID   uint                  `json:"student_id" gorm:"not null;index"`
	Score       *float64              `json:"score,omitempty"`
	Status      string                `json:"status" gorm:"default:'submitted'"`
	SubmittedAt time.Time             `json:"submitted_at" gorm:"autoCreateTime"`
	Responses   []TestAttemptResponse `json:"responses,omitempty" gorm:"foreignKey:TestAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	DeletedAt   gorm.DeletedAt        `gorm:"index" json:"-"`
}
