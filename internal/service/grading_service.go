package service

import (
	"errors"
	"math"

	"classpoint_backend/internal/dto"
	"classpoint_backend/internal/model"
	"classpoint_backend/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GradingService runs the per-attempt grading pipeline:
// authorize → mutate responses → aggregate score → finalize → notify.
// The mutate→aggregate→finalize sequence executes inside a single
// transaction under a per-attempt lock, so concurrent grading calls on
// one attempt serialize while other attempts grade in parallel. The
// notification is created after commit and its failure never fails the
// call.
type GradingService interface {
	GradeAttempt(callerID, classroomID, testID, attemptID uint, grades []dto.GradeEntryDTO) (*dto.GradingResultDTO, error)
	RecomputeScore(callerID, classroomID, testID, attemptID uint) (*dto.GradingResultDTO, error)
}

type gradingService struct {
	membershipSvc   MembershipService
	scoreSvc        ScoreService
	notificationSvc NotificationService
	testRepo        repository.TestRepository
	attemptRepo     repository.TestAttemptRepository
	responseRepo    repository.ResponseRepository
	locks           *attemptLocks
	db              *gorm.DB // transactions span repositories, so the service owns the handle
}

func NewGradingService(
	membershipSvc MembershipService,
	scoreSvc ScoreService,
	notificationSvc NotificationService,
	testRepo repository.TestRepository,
	attemptRepo repository.TestAttemptRepository,
	responseRepo repository.ResponseRepository,
	db *gorm.DB,
) GradingService {
	return &gradingService{
		membershipSvc:   membershipSvc,
		scoreSvc:        scoreSvc,
		notificationSvc: notificationSvc,
		testRepo:        testRepo,
		attemptRepo:     attemptRepo,
		responseRepo:    responseRepo,
		locks:           newAttemptLocks(),
		db:              db,
	}
}

// GradeAttempt applies a batch of per-response grade overrides and
// recomputes the attempt's percentage over its full response set.
func (s *gradingService) GradeAttempt(callerID, classroomID, testID, attemptID uint, grades []dto.GradeEntryDTO) (*dto.GradingResultDTO, error) {
	if err := validateBatch(attemptID, grades); err != nil {
		return nil, err
	}
	if err := s.membershipSvc.AuthorizeGrader(callerID, classroomID); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(attemptID)
	defer unlock()

	attempt, test, err := s.loadAttempt(classroomID, testID, attemptID)
	if err != nil {
		return nil, err
	}

	var totalScore, totalPoints, percentage float64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		responses := s.responseRepo.WithTx(tx)
		for _, entry := range grades {
			if err := applyGradeEntry(responses, attemptID, entry); err != nil {
				return err
			}
		}

		var txErr error
		totalScore, totalPoints, percentage, txErr = s.aggregateAndFinalize(tx, attemptID)
		return txErr
	})
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GradeAttempt: grading transaction failed")
		return nil, err
	}

	log.Info().
		Uint("attemptID", attemptID).
		Uint("graderID", callerID).
		Int("entries", len(grades)).
		Float64("totalScore", totalScore).
		Float64("totalPoints", totalPoints).
		Float64("percentage", percentage).
		Msg("GradeAttempt: attempt graded")

	// Best-effort: the grading result stands even if the notification
	// cannot be created.
	displayScore := s.scoreSvc.RoundForDisplay(clampScore(percentage))
	if err := s.notificationSvc.NotifyGraded(attempt.StudentID, test.ID, test.Title, displayScore); err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Uint("studentID", attempt.StudentID).Msg("GradeAttempt: grade notification failed")
	}

	return s.buildResult(attemptID, totalScore, totalPoints)
}

// RecomputeScore re-runs aggregate→finalize without mutating any
// response. It repairs the window where a crash or disconnect landed
// between the response writes and the score write.
func (s *gradingService) RecomputeScore(callerID, classroomID, testID, attemptID uint) (*dto.GradingResultDTO, error) {
	if attemptID == 0 {
		return nil, NewError(KindInvalidBatch, "attempt id is required")
	}
	if err := s.membershipSvc.AuthorizeGrader(callerID, classroomID); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(attemptID)
	defer unlock()

	if _, _, err := s.loadAttempt(classroomID, testID, attemptID); err != nil {
		return nil, err
	}

	var totalScore, totalPoints, percentage float64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		totalScore, totalPoints, percentage, txErr = s.aggregateAndFinalize(tx, attemptID)
		return txErr
	})
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("RecomputeScore: transaction failed")
		return nil, err
	}

	log.Info().Uint("attemptID", attemptID).Float64("percentage", percentage).Msg("RecomputeScore: attempt score recomputed")
	return s.buildResult(attemptID, totalScore, totalPoints)
}

// aggregateAndFinalize reads the attempt's full response set inside the
// transaction (read-your-writes over the batch just applied), computes
// the percentage and persists it.
func (s *gradingService) aggregateAndFinalize(tx *gorm.DB, attemptID uint) (totalScore, totalPoints, percentage float64, err error) {
	responses, err := s.responseRepo.WithTx(tx).FindAllByAttempt(attemptID)
	if err != nil {
		return 0, 0, 0, WrapError(KindStoreUnavailable, err, "could not load responses for aggregation")
	}

	totalScore, totalPoints, percentage = s.scoreSvc.ComputeAttemptScore(responses)

	if err := s.attemptRepo.WithTx(tx).UpdateScore(attemptID, clampScore(percentage)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, 0, NewError(KindAttemptNotFound, "attempt %d not found", attemptID)
		}
		return 0, 0, 0, WrapError(KindStoreUnavailable, err, "could not persist attempt score")
	}
	return totalScore, totalPoints, percentage, nil
}

// clampScore keeps the persisted attempt score inside [0,100]. Over-max
// point awards are recorded on responses as given, but the attempt's
// percentage stays within its range.
func clampScore(percentage float64) float64 {
	if percentage > 100 {
		return 100
	}
	if percentage < 0 {
		return 0
	}
	return percentage
}

// validateBatch rejects structurally invalid batches before any store
// access. Point values must be finite and non-negative.
func validateBatch(attemptID uint, grades []dto.GradeEntryDTO) error {
	if attemptID == 0 {
		return NewError(KindInvalidBatch, "attempt id is required")
	}
	if len(grades) == 0 {
		return NewError(KindInvalidBatch, "grade list must not be empty")
	}
	for _, entry := range grades {
		if entry.ResponseID == 0 {
			return NewError(KindInvalidBatch, "every grade entry must name a response id")
		}
		if entry.PointsAwarded != nil {
			points := *entry.PointsAwarded
			if math.IsNaN(points) || math.IsInf(points, 0) {
				return NewError(KindInvalidGrade, "points awarded for response %d is not a finite number", entry.ResponseID)
			}
			if points < 0 {
				return NewError(KindInvalidGrade, "points awarded for response %d must not be negative", entry.ResponseID)
			}
		}
	}
	return nil
}

// loadAttempt resolves the attempt and rejects identifiers that do not
// line up (attempt outside the test, test outside the classroom).
func (s *gradingService) loadAttempt(classroomID, testID, attemptID uint) (*model.TestAttempt, *model.Test, error) {
	test, err := s.testRepo.FindByIDInClassroom(testID, classroomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, NewError(KindAttemptNotFound, "test %d not found in classroom %d", testID, classroomID)
		}
		return nil, nil, WrapError(KindStoreUnavailable, err, "could not load test")
	}
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, NewError(KindAttemptNotFound, "attempt %d not found", attemptID)
		}
		return nil, nil, WrapError(KindStoreUnavailable, err, "could not load attempt")
	}
	if attempt.TestID != testID {
		return nil, nil, NewError(KindAttemptNotFound, "attempt %d does not belong to test %d", attemptID, testID)
	}
	return attempt, test, nil
}

// applyGradeEntry overwrites exactly the fields present in the entry on
// a response that must belong to the attempt.
func applyGradeEntry(responses repository.ResponseRepository, attemptID uint, entry dto.GradeEntryDTO) error {
	resp, err := responses.FindByIDAndAttempt(entry.ResponseID, attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewError(KindResponseNotFound, "response %d does not belong to attempt %d", entry.ResponseID, attemptID)
		}
		return WrapError(KindStoreUnavailable, err, "could not load response %d", entry.ResponseID)
	}

	updates := map[string]interface{}{}
	if entry.PointsAwarded != nil {
		if *entry.PointsAwarded > resp.Question.MaxPoints {
			// Recorded as given; the cap is not enforced today.
			log.Warn().
				Uint("responseID", resp.ID).
				Float64("points", *entry.PointsAwarded).
				Float64("maxPoints", resp.Question.MaxPoints).
				Msg("applyGradeEntry: points exceed question max")
		}
		updates["points_awarded"] = *entry.PointsAwarded
	}
	if entry.IsCorrect != nil {
		updates["is_correct"] = *entry.IsCorrect
	}
	if entry.TeacherComment != nil {
		updates["teacher_comment"] = *entry.TeacherComment
	}
	if len(updates) == 0 {
		return nil
	}
	if err := responses.UpdateFields(resp.ID, updates); err != nil {
		return WrapError(KindStoreUnavailable, err, "could not update response %d", entry.ResponseID)
	}
	return nil
}

func (s *gradingService) buildResult(attemptID uint, totalScore, totalPoints float64) (*dto.GradingResultDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("buildResult: failed to reload attempt")
		return nil, WrapError(KindStoreUnavailable, err, "could not reload attempt")
	}
	var attemptDTO dto.AttemptDTO
	if err := copier.Copy(&attemptDTO, attempt); err != nil {
		return nil, WrapError(KindStoreUnavailable, err, "could not prepare grading response")
	}
	if attempt.Score != nil {
		rounded := s.scoreSvc.RoundForDisplay(*attempt.Score)
		attemptDTO.DisplayScore = &rounded
	}
	return &dto.GradingResultDTO{
		Attempt:     attemptDTO,
		TotalScore:  totalScore,
		TotalPoints: totalPoints,
	}, nil
}
