package model

import (
	"time"

	"gorm.io/gorm"
)

// Membership roles. Grading requires RoleTeacher or RoleAssistant.
const (
	RoleTeacher   = "teacher"
	RoleAssistant = "assistant"
	RoleStudent   = "student"
)

type ClassroomMember struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ClassroomID uint           `json:"classroom_id" gorm:"not null;index:idx_classroom_user,unique"`
	UserID      uint           `json:"user_id" gorm:"not null;index:idx_classroom_user,unique"`
	Role        string         `json:"role" gorm:"not null"` // "teacher", "assistant", "student"
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
