package service

import (
	"errors"
	"fmt"

	"classpoint_backend/internal/dto"
	"classpoint_backend/internal/model"
	"classpoint_backend/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// NotificationService creates and serves per-user notifications. Grade
// notifications are best-effort: the grading pipeline logs a failure
// here and still returns success to the caller.
type NotificationService interface {
	NotifyGraded(studentID uint, testID uint, testTitle string, displayScore float64) error
	ListForUser(userID uint) ([]dto.NotificationDTO, error)
	MarkRead(userID, notificationID uint) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// NotifyGraded appends exactly one "grade" notification for the student.
// The score it embeds is already rounded for display.
func (s *notificationService) NotifyGraded(studentID uint, testID uint, testTitle string, displayScore float64) error {
	notification := model.Notification{
		UserID:   studentID,
		Title:    "Your test has been graded",
		Body:     fmt.Sprintf("You scored %.1f%% on %q.", displayScore, testTitle),
		Category: model.NotificationCategoryGrade,
		TestID:   &testID,
	}
	if err := s.notificationRepo.Create(&notification); err != nil {
		return WrapError(KindNotificationFailed, err, "could not create grade notification")
	}
	log.Info().Uint("studentID", studentID).Uint("testID", testID).Float64("score", displayScore).Msg("NotifyGraded: grade notification created")
	return nil
}

func (s *notificationService) ListForUser(userID uint) ([]dto.NotificationDTO, error) {
	if userID == 0 {
		return nil, NewError(KindUnauthenticated, "caller identity is required")
	}
	notifications, err := s.notificationRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListForUser: failed to load notifications")
		return nil, WrapError(KindStoreUnavailable, err, "could not load notifications")
	}
	dtos := make([]dto.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		var d dto.NotificationDTO
		if err := copier.Copy(&d, &n); err != nil {
			log.Error().Err(err).Uint("notificationID", n.ID).Msg("ListForUser: failed to copy notification to DTO")
			continue
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *notificationService) MarkRead(userID, notificationID uint) error {
	if userID == 0 {
		return NewError(KindUnauthenticated, "caller identity is required")
	}
	if err := s.notificationRepo.MarkRead(notificationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewError(KindNotFound, "notification %d not found", notificationID)
		}
		return WrapError(KindStoreUnavailable, err, "could not mark notification read")
	}
	return nil
}
