package service

import (
	"errors"
	"sort"

	"classpoint_backend/internal/dto"
	"classpoint_backend/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestService serves the grading views: the queue of attempts for a
// test and the full detail of one attempt. Both are grader-only.
type TestService interface {
	ListAttempts(callerID, classroomID, testID uint) ([]dto.AttemptSummaryDTO, error)
	GetAttemptDetail(callerID, classroomID, attemptID uint) (*dto.AttemptDetailDTO, error)
}

type testService struct {
	membershipSvc MembershipService
	scoreSvc      ScoreService
	testRepo      repository.TestRepository
	attemptRepo   repository.TestAttemptRepository
}

func NewTestService(
	membershipSvc MembershipService,
	scoreSvc ScoreService,
	testRepo repository.TestRepository,
	attemptRepo repository.TestAttemptRepository,
) TestService {
	return &testService{
		membershipSvc: membershipSvc,
		scoreSvc:      scoreSvc,
		testRepo:      testRepo,
		attemptRepo:   attemptRepo,
	}
}

func (s *testService) ListAttempts(callerID, classroomID, testID uint) ([]dto.AttemptSummaryDTO, error) {
	if err := s.membershipSvc.AuthorizeGrader(callerID, classroomID); err != nil {
		return nil, err
	}
	if _, err := s.testRepo.FindByIDInClassroom(testID, classroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindNotFound, "test %d not found in classroom %d", testID, classroomID)
		}
		return nil, WrapError(KindStoreUnavailable, err, "could not load test")
	}

	attempts, err := s.attemptRepo.FindAllByTestWithCounts(testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("ListAttempts: failed to load attempts")
		return nil, WrapError(KindStoreUnavailable, err, "could not load attempts")
	}

	dtos := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, a := range attempts {
		dtos = append(dtos, dto.AttemptSummaryDTO{
			ID:              a.ID,
			TestID:          a.TestID,
			StudentID:       a.StudentID,
			Score:           a.Score,
			Status:          a.Status,
			SubmittedAt:     a.SubmittedAt,
			ResponseCount:   a.ResponseCount,
			GradedResponses: a.GradedResponses,
		})
	}
	return dtos, nil
}

func (s *testService) GetAttemptDetail(callerID, classroomID, attemptID uint) (*dto.AttemptDetailDTO, error) {
	if err := s.membershipSvc.AuthorizeGrader(callerID, classroomID); err != nil {
		return nil, err
	}

	attempt, err := s.attemptRepo.FindByIDWithDetails(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindAttemptNotFound, "attempt %d not found", attemptID)
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetAttemptDetail: failed to load attempt")
		return nil, WrapError(KindStoreUnavailable, err, "could not load attempt")
	}
	if attempt.Test.ClassroomID != classroomID {
		return nil, NewError(KindAttemptNotFound, "attempt %d not found", attemptID)
	}

	sort.SliceStable(attempt.Responses, func(i, j int) bool {
		return attempt.Responses[i].Question.OrderInTest < attempt.Responses[j].Question.OrderInTest
	})

	var attemptDTO dto.AttemptDTO
	if err := copier.Copy(&attemptDTO, attempt); err != nil {
		return nil, WrapError(KindStoreUnavailable, err, "could not prepare attempt detail")
	}
	if attempt.Score != nil {
		rounded := s.scoreSvc.RoundForDisplay(*attempt.Score)
		attemptDTO.DisplayScore = &rounded
	}

	responses := make([]dto.ResponseDTO, len(attempt.Responses))
	for i, resp := range attempt.Responses {
		if err := copier.Copy(&responses[i], &resp); err != nil {
			log.Error().Err(err).Uint("responseID", resp.ID).Msg("GetAttemptDetail: failed to copy response to DTO")
			return nil, WrapError(KindStoreUnavailable, err, "could not prepare attempt detail")
		}
	}

	return &dto.AttemptDetailDTO{
		Attempt:   attemptDTO,
		TestTitle: attempt.Test.Title,
		Responses: responses,
	}, nil
}
