package model

import (
	"time"

	"gorm.io/gorm"
)

// TestAttemptResponse is one attempt's answer to one question plus its
// grading metadata. PointsAwarded, IsCorrect and TeacherComment are nil
// until a grader sets them; the response mutator overwrites only the
// fields present in a grade entry.
type TestAttemptResponse struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	TestAttemptID  uint           `json:"test_attempt_id" gorm:"not null;index"`
	QuestionID     uint           `json:"question_id" gorm:"not null;index"`
	Question       Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Answer         string         `json:"answer" gorm:"type:text"`
	PointsAwarded  *float64       `json:"points_awarded,omitempty"`
	IsCorrect      *bool          `json:"is_correct,omitempty"`
	TeacherComment *string        `json:"teacher_comment,omitempty" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
