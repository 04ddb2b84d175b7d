package repository

import (
	"classpoint_backend/internal/model"

	"gorm.io/gorm"
)

type MembershipRepository interface {
	FindRole(classroomID, userID uint) (string, error)
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// FindRole returns the caller's role in a classroom, or
// gorm.ErrRecordNotFound when no membership row exists.
func (r *membershipRepository) FindRole(classroomID, userID uint) (string, error) {
	var member model.ClassroomMember
	err := r.db.Where("classroom_id = ? AND user_id = ?", classroomID, userID).First(&member).Error
	if err != nil {
		return "", err
	}
	return member.Role, nil
}
