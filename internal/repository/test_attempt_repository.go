package repository

import (
	"classpoint_backend/internal/model"

	"gorm.io/gorm"
)

// AttemptWithCounts is one grading-queue row: the attempt plus how many
// of its responses exist and how many already carry points.
type AttemptWithCounts struct {
	model.TestAttempt
	ResponseCount   int
	GradedResponses int
}

type TestAttemptRepository interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) TestAttemptRepository
	FindByID(id uint) (*model.TestAttempt, error)
	FindByIDWithDetails(id uint) (*model.TestAttempt, error)
	FindAllByTestWithCounts(testID uint) ([]AttemptWithCounts, error)
	UpdateScore(id uint, score float64) error
}

type testAttemptRepository struct {
	db *gorm.DB
}

func NewTestAttemptRepository(db *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: db}
}

func (r *testAttemptRepository) WithTx(tx *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: tx}
}

func (r *testAttemptRepository) FindByID(id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindByIDWithDetails(id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.
		Preload("Test").
		Preload("Responses.Question").
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindAllByTestWithCounts(testID uint) ([]AttemptWithCounts, error) {
	var results []AttemptWithCounts
	err := r.db.Model(&model.TestAttempt{}).
		Select(`test_attempts.*,
			(SELECT COUNT(*) FROM test_attempt_responses r
				WHERE r.test_attempt_id = test_attempts.id AND r.deleted_at IS NULL) AS response_count,
			(SELECT COUNT(*) FROM test_attempt_responses r
				WHERE r.test_attempt_id = test_attempts.id AND r.points_awarded IS NOT NULL AND r.deleted_at IS NULL) AS graded_responses`).
		Where("test_attempts.test_id = ?", testID).
		Order("test_attempts.submitted_at DESC").
		Scan(&results).Error
	return results, err
}

// UpdateScore writes only the score column; the attempt record is
// otherwise owned by the submission flow.
func (r *testAttemptRepository) UpdateScore(id uint, score float64) error {
	res := r.db.Model(&model.TestAttempt{}).Where("id = ?", id).Update("score", score)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
