package repository

import (
	"classpoint_backend/internal/model"

	"gorm.io/gorm"
)

type ResponseRepository interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) ResponseRepository
	FindByIDAndAttempt(id, attemptID uint) (*model.TestAttemptResponse, error)
	FindAllByAttempt(attemptID uint) ([]model.TestAttemptResponse, error)
	UpdateFields(id uint, fields map[string]interface{}) error
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) WithTx(tx *gorm.DB) ResponseRepository {
	return &responseRepository{db: tx}
}

func (r *responseRepository) FindByIDAndAttempt(id, attemptID uint) (*model.TestAttemptResponse, error) {
	var resp model.TestAttemptResponse
	err := r.db.Preload("Question").
		Where("id = ? AND test_attempt_id = ?", id, attemptID).
		First(&resp).Error
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *responseRepository) FindAllByAttempt(attemptID uint) ([]model.TestAttemptResponse, error) {
	var responses []model.TestAttemptResponse
	err := r.db.Preload("Question").
		Where("test_attempt_id = ?", attemptID).
		Find(&responses).Error
	return responses, err
}

// UpdateFields applies a partial update: only the named columns are
// written, so fields absent from a grade entry keep their stored values.
func (r *responseRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&model.TestAttemptResponse{}).Where("id = ?", id).Updates(fields).Error
}
