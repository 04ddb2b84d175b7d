package service

import (
	"errors"

	"classpoint_backend/internal/model"
	"classpoint_backend/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MembershipService resolves a caller's role in a classroom and gates
// grading on it. This is the sole admission-control point of the
// grading subsystem; it runs before any mutation.
type MembershipService interface {
	ResolveRole(userID, classroomID uint) (string, error)
	AuthorizeGrader(userID, classroomID uint) error
}

type membershipService struct {
	membershipRepo repository.MembershipRepository
}

func NewMembershipService(membershipRepo repository.MembershipRepository) MembershipService {
	return &membershipService{membershipRepo: membershipRepo}
}

func (s *membershipService) ResolveRole(userID, classroomID uint) (string, error) {
	if userID == 0 {
		return "", NewError(KindUnauthenticated, "caller identity is required")
	}
	role, err := s.membershipRepo.FindRole(classroomID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", NewError(KindNotAMember, "user %d is not a member of classroom %d", userID, classroomID)
		}
		log.Error().Err(err).Uint("userID", userID).Uint("classroomID", classroomID).Msg("ResolveRole: membership lookup failed")
		return "", WrapError(KindStoreUnavailable, err, "could not resolve classroom membership")
	}
	return role, nil
}

// AuthorizeGrader succeeds only for teacher and assistant roles.
func (s *membershipService) AuthorizeGrader(userID, classroomID uint) error {
	role, err := s.ResolveRole(userID, classroomID)
	if err != nil {
		return err
	}
	if role != model.RoleTeacher && role != model.RoleAssistant {
		log.Warn().Uint("userID", userID).Uint("classroomID", classroomID).Str("role", role).Msg("AuthorizeGrader: role not allowed to grade")
		return NewError(KindForbidden, "role %q may not grade attempts", role)
	}
	return nil
}
